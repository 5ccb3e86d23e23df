// Package node provides the in-memory registry of announced peers.
package node

import "fmt"

// Node represents one peer announced to the discovery server.
type Node struct {
	// Address is the peer's reachable IPv4 address in textual form.
	Address string `json:"address"`
	// AddressV6 is reserved for a future address family. It is accepted
	// on the wire but takes no part in matching or selection.
	AddressV6 string `json:"address_v6,omitempty"`
	Port      uint16 `json:"port"`
}

// Matches reports whether both nodes announce the same (address, port)
// pair. AddressV6 does not participate.
func (n Node) Matches(other Node) bool {
	return n.Address == other.Address && n.Port == other.Port
}

// String returns the node in address:port form, as used in transport responses.
func (n Node) String() string {
	return fmt.Sprintf("%s:%d", n.Address, n.Port)
}
