package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// StreamFormatPayloadSize is the wire size of a SET_STREAM_FORMAT /
// GET_STREAM_FORMAT command or response payload (IEEE 1722.1
// Clause 7.4.9.1). descriptorType distinguishes STREAM_INPUT from
// STREAM_OUTPUT; both share this shape.
const StreamFormatPayloadSize = 2 + 2 + 8

// SerializeSetStreamFormatCommand builds a SET_STREAM_FORMAT command
// payload.
func SerializeSetStreamFormatCommand(descriptorType entity.DescriptorType, descriptorIndex entity.StreamIndex, format entity.StreamFormat) []byte {
	w := wire.NewWriter(StreamFormatPayloadSize)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Uint64(uint64(format))
	return w.Bytes()
}

// SerializeGetStreamFormatCommand builds a GET_STREAM_FORMAT command
// payload: only the 4-byte descriptor address, with no StreamFormat
// field (Clause 7.4.10.1).
func SerializeGetStreamFormatCommand(descriptorType entity.DescriptorType, descriptorIndex entity.StreamIndex) []byte {
	w := wire.NewWriter(4)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	return w.Bytes()
}

// StreamFormatResponse is the typed SET_STREAM_FORMAT / GET_STREAM_FORMAT
// response payload.
type StreamFormatResponse struct {
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.StreamIndex
	StreamFormat    entity.StreamFormat
}

// DeserializeStreamFormatResponse parses a SET_STREAM_FORMAT or
// GET_STREAM_FORMAT response payload.
func DeserializeStreamFormatResponse(payload []byte) (StreamFormatResponse, error) {
	r := wire.NewReader(payload)
	var resp StreamFormatResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	sf, err := r.Uint64()
	if err != nil {
		return resp, err
	}
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.StreamIndex(di)
	resp.StreamFormat = entity.StreamFormat(sf)
	return resp, nil
}
