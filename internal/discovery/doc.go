// Package discovery locates MCDU bridge servers on the local network via
// multicast DNS.
//
// Bridges advertise the "_mcdu-bridge._tcp" service type. A terminal that is
// started without an explicit bridge URL scans for advertisements, and the
// bridge simulator registers one on startup. TXT records carry the websocket
// path and a human-readable bridge name.
//
// Requires multicast support on the network interface and mDNS (UDP port
// 5353) through the firewall.
package discovery
