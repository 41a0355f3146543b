package dict

import (
	"errors"

	"github.com/pior/dict/internal"
	"github.com/zeebo/xxh3"
)

var ErrNoServers = errors.New("dict: no servers available")

// ServerList is an ordered list of equivalent DICT mirrors.
//
// Pick spreads lookups across the mirrors while keeping one word on one
// mirror: the word is hashed with xxh3 and mapped to an address with Jump
// Hash, so repeated lookups of the same word reuse the same server and
// adding a mirror moves as few words as possible.
type ServerList struct {
	addresses []string
}

// NewServerList builds a server list from one or more addresses.
func NewServerList(addresses ...string) (*ServerList, error) {
	if len(addresses) == 0 {
		return nil, ErrNoServers
	}
	return &ServerList{addresses: addresses}, nil
}

// Pick selects the mirror for a word.
func (s *ServerList) Pick(word string) string {
	if len(s.addresses) == 1 {
		return s.addresses[0]
	}
	return s.addresses[internal.JumpHash(xxh3.HashString(word), len(s.addresses))]
}

// Addresses returns the configured addresses in order.
func (s *ServerList) Addresses() []string {
	return s.addresses
}
