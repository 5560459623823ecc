package discovery

import (
	"fmt"
	"time"
)

// Bridge is one discovered bridge server.
type Bridge struct {
	// Name is the advertised instance name (e.g. "mcdu-bridge-sim").
	Name string

	// Hostname is the mDNS hostname.
	Hostname string

	// IP is the address the bridge resolved to, IPv4 preferred.
	IP string

	// Port is the websocket listen port.
	Port int

	// Path is the websocket endpoint path from the TXT record, "/ws" when
	// not advertised.
	Path string

	// Metadata holds the remaining mDNS TXT record data.
	Metadata map[string]string

	// DiscoveredAt is when the advertisement was seen.
	DiscoveredAt time.Time
}

// String returns a human-readable one-liner for listings.
func (b *Bridge) String() string {
	return fmt.Sprintf("Bridge %s (%s) at %s:%d", b.Name, b.Hostname, b.IP, b.Port)
}

// URL returns the websocket URL the terminal connects to.
func (b *Bridge) URL() string {
	return fmt.Sprintf("ws://%s:%d%s", b.IP, b.Port, b.Path)
}

// GetMetadata retrieves a TXT value by key, or empty string if not present.
func (b *Bridge) GetMetadata(key string) string {
	if b.Metadata == nil {
		return ""
	}
	return b.Metadata[key]
}
