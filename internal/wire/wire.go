// Package wire implements the primitive byte-order encode/decode helpers
// shared by every AVDECC payload codec.
//
// IEEE 1722.1 packs all multi-byte fields in network byte order (big
// endian). Writer and Reader are thin, allocation-light wrappers around
// encoding/binary that let the protocol/* packages read and write a PDU
// payload field by field without repeating bounds checks at every call
// site.
package wire

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned by Reader methods when the remaining buffer
// is too small to hold the requested field. Codec packages translate this
// into a protocol-level status rather than letting it escape as a bare
// error.
var ErrShortBuffer = errors.New("wire: short buffer")

// Writer appends fields to a growing byte buffer in network byte order.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with capacity preallocated for size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

func (w *Writer) Uint8(v uint8)   { w.buf = append(w.buf, v) }
func (w *Writer) Uint16(v uint16) { w.buf = binary.BigEndian.AppendUint16(w.buf, v) }
func (w *Writer) Uint32(v uint32) { w.buf = binary.BigEndian.AppendUint32(w.buf, v) }
func (w *Writer) Uint64(v uint64) { w.buf = binary.BigEndian.AppendUint64(w.buf, v) }

// Raw appends a raw byte slice verbatim (used for MAC addresses, opaque
// TLV values and already-serialized sub-payloads).
func (w *Writer) Raw(v []byte) { w.buf = append(w.buf, v...) }

// FixedBytes appends exactly n bytes, zero-padding or truncating v to fit.
func (w *Writer) FixedBytes(v []byte, n int) {
	tmp := make([]byte, n)
	copy(tmp, v)
	w.buf = append(w.buf, tmp...)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Reader consumes fields from a fixed byte slice in network byte order.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps payload for sequential field reads.
func NewReader(payload []byte) *Reader {
	return &Reader{buf: payload}
}

// Remaining reports how many bytes are left unread.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) require(n int) error {
	if r.Remaining() < n {
		return ErrShortBuffer
	}
	return nil
}

func (r *Reader) Uint8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *Reader) Uint16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *Reader) Uint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) Uint64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// Bytes reads exactly n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	v := make([]byte, n)
	copy(v, r.buf[r.pos:r.pos+n])
	r.pos += n
	return v, nil
}

// Rest returns every remaining unread byte without advancing an error path.
func (r *Reader) Rest() []byte {
	v := r.buf[r.pos:]
	r.pos = len(r.buf)
	return v
}
