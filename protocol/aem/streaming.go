package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// StreamingControlPayloadSize is the wire size of a START_STREAMING /
// STOP_STREAMING command or response payload (IEEE 1722.1
// Clause 7.4.35.1): just the stream descriptor address.
const StreamingControlPayloadSize = 2 + 2

// SerializeStreamingControlCommand builds a START_STREAMING or
// STOP_STREAMING command payload; the two commands share this shape and
// are distinguished only by AemCommandType.
func SerializeStreamingControlCommand(descriptorType entity.DescriptorType, descriptorIndex entity.StreamIndex) []byte {
	w := wire.NewWriter(StreamingControlPayloadSize)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	return w.Bytes()
}

// StreamingControlResponse is the typed START_STREAMING / STOP_STREAMING
// response payload.
type StreamingControlResponse struct {
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.StreamIndex
}

// DeserializeStreamingControlResponse parses a START_STREAMING or
// STOP_STREAMING response payload.
func DeserializeStreamingControlResponse(payload []byte) (StreamingControlResponse, error) {
	r := wire.NewReader(payload)
	var resp StreamingControlResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.StreamIndex(di)
	return resp, nil
}
