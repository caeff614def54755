package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// ClockSourcePayloadSize is the wire size of a SET_CLOCK_SOURCE /
// GET_CLOCK_SOURCE command or response payload (IEEE 1722.1
// Clause 7.4.23.1). The addressed descriptor is always CLOCK_DOMAIN.
const ClockSourcePayloadSize = 2 + 2 + 2 + 2

// SerializeSetClockSourceCommand builds a SET_CLOCK_SOURCE command
// payload.
func SerializeSetClockSourceCommand(clockDomainIndex entity.ClockDomainIndex, clockSourceIndex entity.ClockSourceIndex) []byte {
	w := wire.NewWriter(ClockSourcePayloadSize)
	w.Uint16(uint16(entity.DescriptorClockDomain))
	w.Uint16(uint16(clockDomainIndex))
	w.Uint16(uint16(clockSourceIndex))
	w.Uint16(0) // reserved
	return w.Bytes()
}

// SerializeGetClockSourceCommand builds a GET_CLOCK_SOURCE command
// payload.
func SerializeGetClockSourceCommand(clockDomainIndex entity.ClockDomainIndex) []byte {
	w := wire.NewWriter(4)
	w.Uint16(uint16(entity.DescriptorClockDomain))
	w.Uint16(uint16(clockDomainIndex))
	return w.Bytes()
}

// ClockSourceResponse is the typed SET_CLOCK_SOURCE / GET_CLOCK_SOURCE
// response payload.
type ClockSourceResponse struct {
	ClockDomainIndex entity.ClockDomainIndex
	ClockSourceIndex entity.ClockSourceIndex
}

// DeserializeClockSourceResponse parses a SET_CLOCK_SOURCE or
// GET_CLOCK_SOURCE response payload.
func DeserializeClockSourceResponse(payload []byte) (ClockSourceResponse, error) {
	r := wire.NewReader(payload)
	var resp ClockSourceResponse
	if _, err := r.Uint16(); err != nil { // DescriptorType, always CLOCK_DOMAIN
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	csi, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	resp.ClockDomainIndex = entity.ClockDomainIndex(di)
	resp.ClockSourceIndex = entity.ClockSourceIndex(csi)
	return resp, nil
}
