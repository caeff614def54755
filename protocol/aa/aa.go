// Package aa implements the AA (Address Access) sub-protocol of AECP: a
// TLV sequence that reads or writes arbitrary memory-mapped addresses on
// an entity, independent of the AEM descriptor model.
package aa

import (
	"github.com/opd-ai/avdeccore/internal/wire"
)

// Mode selects the operation a Tlv performs (IEEE 1722.1 Clause 9.2.1.3.3).
type Mode uint8

const (
	Read Mode = iota
	Write
	Execute
)

func (m Mode) String() string {
	switch m {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Execute:
		return "Execute"
	default:
		return "Unknown"
	}
}

// modeShift packs Mode into the top 3 bits of the 16-bit TLV header word,
// leaving the low 13 bits for Length.
const modeShift = 13
const lengthMask = 0x1fff

// tlvHeaderSize is Mode+Length packed into one 16-bit word, plus the
// 8-byte memory Address.
const tlvHeaderSize = 2 + 8

// Tlv is one Address Access TLV: a single read/write/execute operation
// against one memory address.
type Tlv struct {
	Mode       Mode
	Address    uint64
	MemoryData []byte
}

// Serialize encodes a sequence of TLVs as an AA command or response
// payload: a 16-bit TlvCount header followed by each TLV in order.
func Serialize(tlvs []Tlv) []byte {
	size := 2
	for _, t := range tlvs {
		size += tlvHeaderSize + len(t.MemoryData)
	}
	w := wire.NewWriter(size)
	w.Uint16(uint16(len(tlvs)))
	for _, t := range tlvs {
		header := (uint16(t.Mode) << modeShift) | (uint16(len(t.MemoryData)) & lengthMask)
		w.Uint16(header)
		w.Uint64(t.Address)
		w.Raw(t.MemoryData)
	}
	return w.Bytes()
}

// Deserialize decodes an AA command or response payload into its TLV
// sequence.
func Deserialize(payload []byte) ([]Tlv, error) {
	r := wire.NewReader(payload)
	count, err := r.Uint16()
	if err != nil {
		return nil, err
	}
	tlvs := make([]Tlv, 0, count)
	for i := uint16(0); i < count; i++ {
		header, err := r.Uint16()
		if err != nil {
			return nil, err
		}
		address, err := r.Uint64()
		if err != nil {
			return nil, err
		}
		length := header & lengthMask
		data, err := r.Bytes(int(length))
		if err != nil {
			return nil, err
		}
		tlvs = append(tlvs, Tlv{
			Mode:       Mode(header >> modeShift),
			Address:    address,
			MemoryData: data,
		})
	}
	return tlvs, nil
}
