package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// StreamInfoPayloadSize is the wire size of a SET_STREAM_INFO /
// GET_STREAM_INFO command or response payload (IEEE 1722.1
// Clause 7.4.16.1).
const StreamInfoPayloadSize = 2 + 2 + 4 + 8 + 8 + 4 + 6 + 1 + 1 + 8 + 2 + 2

// SerializeSetStreamInfoCommand builds a SET_STREAM_INFO command
// payload. Only StreamInfoFlags and StreamFormat are settable per
// Clause 7.4.16; the remaining fields are still serialized, with the
// values info holds, to keep the payload the fixed size a conformant
// responder expects.
func SerializeSetStreamInfoCommand(descriptorType entity.DescriptorType, descriptorIndex entity.StreamIndex, info entity.StreamInfo) []byte {
	return serializeStreamInfoPayload(descriptorType, descriptorIndex, info)
}

// SerializeGetStreamInfoCommand builds a GET_STREAM_INFO command
// payload; only the descriptor address is meaningful in the command
// direction.
func SerializeGetStreamInfoCommand(descriptorType entity.DescriptorType, descriptorIndex entity.StreamIndex) []byte {
	return serializeStreamInfoPayload(descriptorType, descriptorIndex, entity.StreamInfo{})
}

func serializeStreamInfoPayload(descriptorType entity.DescriptorType, descriptorIndex entity.StreamIndex, info entity.StreamInfo) []byte {
	w := wire.NewWriter(StreamInfoPayloadSize)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Uint32(info.StreamInfoFlags)
	w.Uint64(uint64(info.StreamFormat))
	w.Uint64(uint64(info.StreamID))
	w.Uint32(info.MsrpAccumulatedLatency)
	w.FixedBytes(info.StreamDestMac[:], 6)
	w.Uint8(info.MsrpFailureCode)
	w.Uint8(0) // reserved
	w.Uint64(uint64(info.MsrpFailureBridgeID))
	w.Uint16(info.StreamVlanID)
	w.Uint16(0) // reserved
	return w.Bytes()
}

// StreamInfoResponse is the typed SET_STREAM_INFO / GET_STREAM_INFO
// response payload. FromGet records which command produced it: a
// GET_STREAM_INFO response fully populates the dynamic fields, while a
// SET_STREAM_INFO response merely echoes the fields the controller set
// (IEEE 1722.1 Clause 7.4.16.2 edge case: readers must not treat a
// SET response's zeroed dynamic fields as authoritative).
type StreamInfoResponse struct {
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.StreamIndex
	Info            entity.StreamInfo
	FromGet         bool
}

// DeserializeStreamInfoResponse parses a SET_STREAM_INFO or
// GET_STREAM_INFO response payload. fromGet must be supplied by the
// caller (the router knows which command it dispatched); the wire
// shape alone doesn't distinguish the two.
func DeserializeStreamInfoResponse(payload []byte, fromGet bool) (StreamInfoResponse, error) {
	r := wire.NewReader(payload)
	var resp StreamInfoResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	flags, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	format, err := r.Uint64()
	if err != nil {
		return resp, err
	}
	streamID, err := r.Uint64()
	if err != nil {
		return resp, err
	}
	latency, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	mac, err := r.Bytes(6)
	if err != nil {
		return resp, err
	}
	failureCode, err := r.Uint8()
	if err != nil {
		return resp, err
	}
	if _, err := r.Uint8(); err != nil { // reserved
		return resp, err
	}
	bridgeID, err := r.Uint64()
	if err != nil {
		return resp, err
	}
	vlanID, err := r.Uint16()
	if err != nil {
		return resp, err
	}

	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.StreamIndex(di)
	resp.FromGet = fromGet
	resp.Info.StreamInfoFlags = flags
	resp.Info.StreamFormat = entity.StreamFormat(format)
	resp.Info.StreamID = entity.ID(streamID)
	resp.Info.MsrpAccumulatedLatency = latency
	copy(resp.Info.StreamDestMac[:], mac)
	resp.Info.MsrpFailureCode = failureCode
	resp.Info.MsrpFailureBridgeID = entity.ID(bridgeID)
	resp.Info.StreamVlanID = vlanID
	return resp, nil
}
