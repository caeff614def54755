package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// SamplingRatePayloadSize is the wire size of a SET_SAMPLING_RATE /
// GET_SAMPLING_RATE command or response payload (IEEE 1722.1
// Clause 7.4.21.1). The descriptor addressed may be an AUDIO_UNIT,
// VIDEO_CLUSTER or SENSOR_CLUSTER; the payload shape is identical.
const SamplingRatePayloadSize = 2 + 2 + 4

// SerializeSetSamplingRateCommand builds a SET_SAMPLING_RATE command
// payload.
func SerializeSetSamplingRateCommand(descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex, rate entity.SamplingRate) []byte {
	w := wire.NewWriter(SamplingRatePayloadSize)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Uint32(uint32(rate))
	return w.Bytes()
}

// SerializeGetSamplingRateCommand builds a GET_SAMPLING_RATE command
// payload.
func SerializeGetSamplingRateCommand(descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex) []byte {
	w := wire.NewWriter(4)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	return w.Bytes()
}

// SamplingRateResponse is the typed SET_SAMPLING_RATE /
// GET_SAMPLING_RATE response payload.
type SamplingRateResponse struct {
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.DescriptorIndex
	SamplingRate    entity.SamplingRate
}

// DeserializeSamplingRateResponse parses a SET_SAMPLING_RATE or
// GET_SAMPLING_RATE response payload.
func DeserializeSamplingRateResponse(payload []byte) (SamplingRateResponse, error) {
	r := wire.NewReader(payload)
	var resp SamplingRateResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	sr, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.DescriptorIndex(di)
	resp.SamplingRate = entity.SamplingRate(sr)
	return resp, nil
}
