package discovery

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
)

func entryWith(instance string, ipv4 []net.IP, port int, txt []string) *zeroconf.ServiceEntry {
	entry := &zeroconf.ServiceEntry{
		HostName: instance + ".local.",
		Port:     port,
		Text:     txt,
		AddrIPv4: ipv4,
	}
	entry.Instance = instance
	return entry
}

// TestParseServiceEntry tests conversion of mDNS entries into bridges
func TestParseServiceEntry(t *testing.T) {
	cases := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantIP   string
		wantPath string
	}{
		{
			name: "Valid: full advertisement",
			entry: entryWith("mcdu-bridge-sim",
				[]net.IP{net.IPv4(192, 168, 4, 16)}, 8137,
				[]string{"path=/ws", "version=1"}),
			wantIP:   "192.168.4.16",
			wantPath: "/ws",
		},
		{
			name: "Valid: missing path falls back to default",
			entry: entryWith("mcdu-bridge-galley",
				[]net.IP{net.IPv4(10, 0, 0, 7)}, 8137, nil),
			wantIP:   "10.0.0.7",
			wantPath: DefaultPath,
		},
		{
			name:    "Invalid: no address",
			entry:   entryWith("mcdu-bridge-sim", nil, 8137, nil),
			wantNil: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := parseServiceEntry(tc.entry)
			if tc.wantNil {
				if b != nil {
					t.Fatalf("parseServiceEntry = %v, want nil", b)
				}
				return
			}
			if b == nil {
				t.Fatal("parseServiceEntry = nil")
			}
			if b.IP != tc.wantIP {
				t.Errorf("IP = %q, want %q", b.IP, tc.wantIP)
			}
			if b.Path != tc.wantPath {
				t.Errorf("Path = %q, want %q", b.Path, tc.wantPath)
			}
		})
	}
}

// TestParseServiceEntryTXT tests TXT record parsing including bare keys
func TestParseServiceEntryTXT(t *testing.T) {
	entry := entryWith("mcdu-bridge-sim",
		[]net.IP{net.IPv4(192, 168, 4, 16)}, 8137,
		[]string{"path=/ws", "name=CABIN SIM", "beta"})

	b := parseServiceEntry(entry)
	if b == nil {
		t.Fatal("parseServiceEntry = nil")
	}
	if got := b.GetMetadata("name"); got != "CABIN SIM" {
		t.Errorf("name = %q, want CABIN SIM", got)
	}
	if got := b.GetMetadata("beta"); got != "" {
		t.Errorf("bare key = %q, want empty", got)
	}
	if got := b.GetMetadata("absent"); got != "" {
		t.Errorf("absent key = %q, want empty", got)
	}
}

// TestBridgeURL tests the websocket URL composition
func TestBridgeURL(t *testing.T) {
	b := &Bridge{IP: "192.168.4.16", Port: 8137, Path: "/ws"}
	if got := b.URL(); got != "ws://192.168.4.16:8137/ws" {
		t.Errorf("URL = %q", got)
	}
}
