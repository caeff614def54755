package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// SetConfigurationPayloadSize is the wire size of a SET_CONFIGURATION
// command or response payload (IEEE 1722.1 Clause 7.4.7.1).
const SetConfigurationPayloadSize = 2 + 2

// SerializeSetConfigurationCommand builds a SET_CONFIGURATION command
// payload targeting the entity's top-level descriptor (DescriptorIndex
// is always 0 for this command, per Clause 7.4.7).
func SerializeSetConfigurationCommand(configurationIndex entity.ConfigurationIndex) []byte {
	w := wire.NewWriter(SetConfigurationPayloadSize)
	w.Uint16(0) // DescriptorIndex, reserved
	w.Uint16(uint16(configurationIndex))
	return w.Bytes()
}

// SetConfigurationResponse is the typed SET_CONFIGURATION response
// payload.
type SetConfigurationResponse struct {
	ConfigurationIndex entity.ConfigurationIndex
}

// DeserializeSetConfigurationResponse parses a SET_CONFIGURATION response
// payload.
func DeserializeSetConfigurationResponse(payload []byte) (SetConfigurationResponse, error) {
	r := wire.NewReader(payload)
	var resp SetConfigurationResponse
	if _, err := r.Uint16(); err != nil {
		return resp, err
	}
	ci, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	resp.ConfigurationIndex = entity.ConfigurationIndex(ci)
	return resp, nil
}
