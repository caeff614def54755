package entity

import (
	"bytes"
	"fmt"
)

// FixedStringLength is the wire size of an AVDECC fixed string field
// (IEEE 1722.1 Clause 7.3.5): a 64-byte NUL-padded UTF-8 buffer.
const FixedStringLength = 64

// FixedString is the fixed-length string type carried by every AEM
// SET_NAME/GET_NAME payload and by descriptor name fields.
type FixedString [FixedStringLength]byte

// NewFixedString builds a FixedString from s, NUL-padding short strings.
// Strings longer than FixedStringLength-1 bytes are rejected rather than
// silently truncated: truncating a name is a surprising, hard-to-debug
// side effect for a caller who didn't ask for it.
func NewFixedString(s string) (FixedString, error) {
	var fs FixedString
	if len(s) >= FixedStringLength {
		return fs, fmt.Errorf("entity: name %q exceeds %d bytes", s, FixedStringLength-1)
	}
	copy(fs[:], s)
	return fs, nil
}

// String returns the Go string up to the first NUL byte (or the full
// buffer if unterminated).
func (fs FixedString) String() string {
	if i := bytes.IndexByte(fs[:], 0); i >= 0 {
		return string(fs[:i])
	}
	return string(fs[:])
}
