package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// writeDescriptorHeaderSize is the fixed WRITE_DESCRIPTOR command header
// ahead of the descriptor body (IEEE 1722.1 Clause 7.4.6.1). WRITE_DESCRIPTOR
// is reserved for future use by the standard and no conformant entity
// accepts it; the core still exposes the codec for completeness and
// because a test double can legitimately implement it.
const writeDescriptorHeaderSize = 2 + 2 + 2 + 2

// SerializeWriteDescriptorCommand builds a WRITE_DESCRIPTOR command
// payload carrying an opaque pre-serialized descriptor body.
func SerializeWriteDescriptorCommand(configurationIndex entity.ConfigurationIndex, descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex, body []byte) []byte {
	w := wire.NewWriter(writeDescriptorHeaderSize + len(body))
	w.Uint16(uint16(configurationIndex))
	w.Uint16(0) // reserved
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Raw(body)
	return w.Bytes()
}

// WriteDescriptorResponse is the typed WRITE_DESCRIPTOR response payload.
type WriteDescriptorResponse struct {
	ConfigurationIndex entity.ConfigurationIndex
	DescriptorType      entity.DescriptorType
	DescriptorIndex     entity.DescriptorIndex
}

// DeserializeWriteDescriptorResponse parses a WRITE_DESCRIPTOR response
// payload.
func DeserializeWriteDescriptorResponse(payload []byte) (WriteDescriptorResponse, error) {
	r := wire.NewReader(payload)
	var resp WriteDescriptorResponse
	ci, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	if _, err := r.Uint16(); err != nil { // reserved
		return resp, err
	}
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	resp.ConfigurationIndex = entity.ConfigurationIndex(ci)
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.DescriptorIndex(di)
	return resp, nil
}
