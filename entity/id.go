// Package entity implements the AVDECC data model: entity identifiers,
// discovered-entity snapshots, and the descriptor taxonomy addressed by
// AEM commands.
package entity

import "fmt"

// ID is a 64-bit EUI-64 entity identifier.
type ID uint64

// NullID is the distinguished null entity identifier, used as a
// placeholder owner/locked-by value and as the "no association" sentinel.
const NullID ID = 0

// IsNull reports whether id is the null identity.
func (id ID) IsNull() bool { return id == NullID }

func (id ID) String() string {
	return fmt.Sprintf("%016X", uint64(id))
}
