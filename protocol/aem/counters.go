package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// GetCountersCommandPayloadSize is the wire size of a GET_COUNTERS
// command payload (IEEE 1722.1 Clause 7.4.42.1).
const GetCountersCommandPayloadSize = 2 + 2

// SerializeGetCountersCommand builds a GET_COUNTERS command payload.
// descriptorType selects which CounterValidFlags interpretation the
// caller must apply to the response (AVB_INTERFACE, CLOCK_DOMAIN,
// STREAM_INPUT or STREAM_OUTPUT; spec.md §4.1 edge case).
func SerializeGetCountersCommand(descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex) []byte {
	w := wire.NewWriter(GetCountersCommandPayloadSize)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	return w.Bytes()
}

// CountersResponse is the typed GET_COUNTERS response payload. The
// caller reinterprets ValidCounters against the AvbInterface/
// ClockDomain/StreamInput/StreamOutput flag type matching DescriptorType;
// this package doesn't do that reinterpretation itself since it has no
// way to know which one applies without the request context.
type CountersResponse struct {
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.DescriptorIndex
	ValidCounters   entity.CounterValidFlags
	Counters        entity.Counters
}

// DeserializeCountersResponse parses a GET_COUNTERS response payload.
func DeserializeCountersResponse(payload []byte) (CountersResponse, error) {
	r := wire.NewReader(payload)
	var resp CountersResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	valid, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.DescriptorIndex(di)
	resp.ValidCounters = entity.CounterValidFlags(valid)
	for i := range resp.Counters {
		v, err := r.Uint32()
		if err != nil {
			return resp, err
		}
		resp.Counters[i] = v
	}
	return resp, nil
}
