package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// NameIndex selects which named attribute of a descriptor SET_NAME/GET_NAME
// addresses: distinct values name distinct attributes of the same
// descriptor (e.g. Entity.NameIndex=0 is the entity name, =1 is the group
// name; Configuration.NameIndex=0 is the object name).
type NameIndex uint16

// SetNamePayloadSize is the wire size of a SET_NAME command payload
// (IEEE 1722.1 Clause 7.4.17). GET_NAME's command payload omits the
// trailing name field; its response carries the same shape as SET_NAME.
const SetNamePayloadSize = 2 + 2 + 2 + 2 + entity.FixedStringLength
const GetNameCommandPayloadSize = 2 + 2 + 2 + 2

// SerializeSetNameCommand builds a SET_NAME command payload.
//
// For the Entity descriptor only DescriptorIndex=0 and
// ConfigurationIndex=0 are valid per IEEE 1722.1; other values are still
// serialized (the codec doesn't reject them) since a non-conformant
// responder might still return usable data, per spec.
func SerializeSetNameCommand(descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex, nameIndex NameIndex, configurationIndex entity.ConfigurationIndex, name entity.FixedString) []byte {
	w := wire.NewWriter(SetNamePayloadSize)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Uint16(uint16(nameIndex))
	w.Uint16(uint16(configurationIndex))
	w.Raw(name[:])
	return w.Bytes()
}

// SerializeGetNameCommand builds a GET_NAME command payload.
func SerializeGetNameCommand(descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex, nameIndex NameIndex, configurationIndex entity.ConfigurationIndex) []byte {
	w := wire.NewWriter(GetNameCommandPayloadSize)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Uint16(uint16(nameIndex))
	w.Uint16(uint16(configurationIndex))
	return w.Bytes()
}

// NameResponse is the typed SET_NAME / GET_NAME response payload.
type NameResponse struct {
	DescriptorType     entity.DescriptorType
	DescriptorIndex    entity.DescriptorIndex
	NameIndex          NameIndex
	ConfigurationIndex entity.ConfigurationIndex
	Name               entity.FixedString
}

// DeserializeNameResponse parses a SET_NAME or GET_NAME response payload.
func DeserializeNameResponse(payload []byte) (NameResponse, error) {
	r := wire.NewReader(payload)
	var resp NameResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	ni, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	ci, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	name, err := r.Bytes(entity.FixedStringLength)
	if err != nil {
		return resp, err
	}
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.DescriptorIndex(di)
	resp.NameIndex = NameIndex(ni)
	resp.ConfigurationIndex = entity.ConfigurationIndex(ci)
	copy(resp.Name[:], name)
	return resp, nil
}
