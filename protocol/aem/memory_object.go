package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// MemoryObjectLengthPayloadSize is the wire size of a
// SET_MEMORY_OBJECT_LENGTH / GET_MEMORY_OBJECT_LENGTH command or
// response payload (IEEE 1722.1 Clause 7.4.72.1).
const MemoryObjectLengthPayloadSize = 2 + 2 + 8

// SerializeSetMemoryObjectLengthCommand builds a
// SET_MEMORY_OBJECT_LENGTH command payload.
func SerializeSetMemoryObjectLengthCommand(configurationIndex entity.ConfigurationIndex, memoryObjectIndex entity.MemoryObjectIndex, length uint64) []byte {
	w := wire.NewWriter(MemoryObjectLengthPayloadSize)
	w.Uint16(uint16(configurationIndex))
	w.Uint16(uint16(memoryObjectIndex))
	w.Uint64(length)
	return w.Bytes()
}

// SerializeGetMemoryObjectLengthCommand builds a
// GET_MEMORY_OBJECT_LENGTH command payload.
func SerializeGetMemoryObjectLengthCommand(configurationIndex entity.ConfigurationIndex, memoryObjectIndex entity.MemoryObjectIndex) []byte {
	w := wire.NewWriter(4)
	w.Uint16(uint16(configurationIndex))
	w.Uint16(uint16(memoryObjectIndex))
	return w.Bytes()
}

// MemoryObjectLengthResponse is the typed SET_MEMORY_OBJECT_LENGTH /
// GET_MEMORY_OBJECT_LENGTH response payload.
type MemoryObjectLengthResponse struct {
	ConfigurationIndex entity.ConfigurationIndex
	MemoryObjectIndex  entity.MemoryObjectIndex
	Length             uint64
}

// DeserializeMemoryObjectLengthResponse parses a
// SET_MEMORY_OBJECT_LENGTH or GET_MEMORY_OBJECT_LENGTH response payload.
func DeserializeMemoryObjectLengthResponse(payload []byte) (MemoryObjectLengthResponse, error) {
	r := wire.NewReader(payload)
	var resp MemoryObjectLengthResponse
	ci, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	moi, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	length, err := r.Uint64()
	if err != nil {
		return resp, err
	}
	resp.ConfigurationIndex = entity.ConfigurationIndex(ci)
	resp.MemoryObjectIndex = entity.MemoryObjectIndex(moi)
	resp.Length = length
	return resp, nil
}
