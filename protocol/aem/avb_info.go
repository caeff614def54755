package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// GetAvbInfoCommandPayloadSize is the wire size of a GET_AVB_INFO command
// payload (IEEE 1722.1 Clause 7.4.40.1): the AVB_INTERFACE descriptor
// address.
const GetAvbInfoCommandPayloadSize = 2 + 2

// SerializeGetAvbInfoCommand builds a GET_AVB_INFO command payload.
func SerializeGetAvbInfoCommand(avbInterfaceIndex entity.AvbInterfaceIndex) []byte {
	w := wire.NewWriter(GetAvbInfoCommandPayloadSize)
	w.Uint16(uint16(entity.DescriptorAvbInterface))
	w.Uint16(uint16(avbInterfaceIndex))
	return w.Bytes()
}

// AvbInfoResponse is the typed GET_AVB_INFO response payload.
type AvbInfoResponse struct {
	AvbInterfaceIndex entity.AvbInterfaceIndex
	Info              entity.AvbInfo
}

// DeserializeAvbInfoResponse parses a GET_AVB_INFO response payload.
// MsrpMappings is the mappings-count bytes that follow the count field,
// one byte per mapping entry; any bytes after them are ignored
// (Clause 7.4.40.2 leaves the mapping encoding
// implementation-defined below the AVDECC layer; the core surfaces it
// as an opaque byte slice for the caller to interpret).
func DeserializeAvbInfoResponse(payload []byte) (AvbInfoResponse, error) {
	r := wire.NewReader(payload)
	var resp AvbInfoResponse
	if _, err := r.Uint16(); err != nil { // DescriptorType, always AVB_INTERFACE
		return resp, err
	}
	idx, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	gm, err := r.Uint64()
	if err != nil {
		return resp, err
	}
	delay, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	domain, err := r.Uint8()
	if err != nil {
		return resp, err
	}
	flags, err := r.Uint8()
	if err != nil {
		return resp, err
	}
	mappingsCount, err := r.Uint16()
	if err != nil {
		return resp, err
	}

	resp.AvbInterfaceIndex = entity.AvbInterfaceIndex(idx)
	resp.Info.GptpGrandmasterID = entity.ID(gm)
	resp.Info.PropagationDelay = delay
	resp.Info.GptpDomainNumber = domain
	resp.Info.Flags = flags
	mappings, err := r.Bytes(int(mappingsCount))
	if err != nil {
		return resp, err
	}
	resp.Info.MsrpMappings = mappings
	return resp, nil
}

// GetAsPathCommandPayloadSize is the wire size of a GET_AS_PATH command
// payload (IEEE 1722.1 Clause 7.4.41.1).
const GetAsPathCommandPayloadSize = 2

// SerializeGetAsPathCommand builds a GET_AS_PATH command payload.
func SerializeGetAsPathCommand(avbInterfaceIndex entity.AvbInterfaceIndex) []byte {
	w := wire.NewWriter(GetAsPathCommandPayloadSize)
	w.Uint16(uint16(avbInterfaceIndex))
	return w.Bytes()
}

// AsPathResponse is the typed GET_AS_PATH response payload.
type AsPathResponse struct {
	AvbInterfaceIndex entity.AvbInterfaceIndex
	Path              entity.AsPath
}

// DeserializeAsPathResponse parses a GET_AS_PATH response payload; Count
// clock identities of 8 bytes each follow the fixed header.
func DeserializeAsPathResponse(payload []byte) (AsPathResponse, error) {
	r := wire.NewReader(payload)
	var resp AsPathResponse
	idx, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	count, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	resp.AvbInterfaceIndex = entity.AvbInterfaceIndex(idx)
	resp.Path.Path = make([]entity.ID, 0, count)
	for i := uint16(0); i < count; i++ {
		id, err := r.Uint64()
		if err != nil {
			return resp, err
		}
		resp.Path.Path = append(resp.Path.Path, entity.ID(id))
	}
	return resp, nil
}
