// Package adp implements the ADP (AVDECC Discovery Protocol) PDU codec:
// the EntityAvailable/EntityDeparting/EntityDiscover message carried as
// the body of every discovery-multicast frame.
//
// Framing below the ADP-specific fields (subtype byte, the common
// AVTPDU control header, and the destination entity ID field) is the
// transport package's concern; this package only encodes and decodes
// the fields that follow that common header, mirroring how the upstream
// ADPDU type layers on top of its AVTPDU control base.
package adp

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// MessageType is the ADP message kind carried in the common AVTPDU
// header's message_type field (IEEE 1722.1 Table 6.2).
type MessageType uint8

const (
	EntityAvailable MessageType = iota
	EntityDeparting
	EntityDiscover
)

func (m MessageType) String() string {
	switch m {
	case EntityAvailable:
		return "EntityAvailable"
	case EntityDeparting:
		return "EntityDeparting"
	case EntityDiscover:
		return "EntityDiscover"
	default:
		return "Unknown"
	}
}

// PayloadLength is the fixed size of the ADP-specific fields following
// the common AVTPDU header (IEEE 1722.1 Clause 6.2.1).
const PayloadLength = 8 + 4 + 2 + 2 + 2 + 2 + 4 + 4 + 8 + 4 + 2 + 2 + 8 + 4

// PDU is the decoded ADP payload: an entity's full discovery
// advertisement.
type PDU struct {
	EntityModelID          entity.VendorEntityModel
	EntityCapabilities     entity.EntityCapabilities
	TalkerStreamSources    uint16
	TalkerCapabilities     entity.TalkerCapabilities
	ListenerStreamSinks    uint16
	ListenerCapabilities   entity.ListenerCapabilities
	ControllerCapabilities entity.ControllerCapabilities
	AvailableIndex         uint32
	GptpGrandmasterID      entity.ID
	GptpDomainNumber       uint8
	IdentifyControlIndex   uint16
	InterfaceIndex         uint16
	AssociationID          entity.ID
}

// Serialize encodes the ADP-specific fields in the exact order the
// upstream protocol stack does.
func Serialize(pdu PDU) []byte {
	w := wire.NewWriter(PayloadLength)
	w.Uint64(uint64(pdu.EntityModelID))
	w.Uint32(uint32(pdu.EntityCapabilities))
	w.Uint16(pdu.TalkerStreamSources)
	w.Uint16(uint16(pdu.TalkerCapabilities))
	w.Uint16(pdu.ListenerStreamSinks)
	w.Uint16(uint16(pdu.ListenerCapabilities))
	w.Uint32(uint32(pdu.ControllerCapabilities))
	w.Uint32(pdu.AvailableIndex)
	w.Uint64(uint64(pdu.GptpGrandmasterID))
	w.Uint32(uint32(pdu.GptpDomainNumber) << 24) // reserved bits zero
	w.Uint16(pdu.IdentifyControlIndex)
	w.Uint16(pdu.InterfaceIndex)
	w.Uint64(uint64(pdu.AssociationID))
	w.Uint32(0) // reserved
	return w.Bytes()
}

// Deserialize decodes the ADP-specific fields. Frames shorter than
// PayloadLength are rejected rather than zero-filled: a short ADP frame
// is a malformed advertisement, not a partially-capable entity.
func Deserialize(payload []byte) (PDU, error) {
	var pdu PDU
	if len(payload) < PayloadLength {
		return pdu, wire.ErrShortBuffer
	}
	r := wire.NewReader(payload)

	entityModelID, err := r.Uint64()
	if err != nil {
		return pdu, err
	}
	entityCapabilities, err := r.Uint32()
	if err != nil {
		return pdu, err
	}
	talkerStreamSources, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	talkerCapabilities, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	listenerStreamSinks, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	listenerCapabilities, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	controllerCapabilities, err := r.Uint32()
	if err != nil {
		return pdu, err
	}
	availableIndex, err := r.Uint32()
	if err != nil {
		return pdu, err
	}
	gptpGrandmasterID, err := r.Uint64()
	if err != nil {
		return pdu, err
	}
	gptpWord, err := r.Uint32()
	if err != nil {
		return pdu, err
	}
	identifyControlIndex, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	interfaceIndex, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	associationID, err := r.Uint64()
	if err != nil {
		return pdu, err
	}

	pdu.EntityModelID = entity.VendorEntityModel(entityModelID)
	pdu.EntityCapabilities = entity.EntityCapabilities(entityCapabilities)
	pdu.TalkerStreamSources = talkerStreamSources
	pdu.TalkerCapabilities = entity.TalkerCapabilities(talkerCapabilities)
	pdu.ListenerStreamSinks = listenerStreamSinks
	pdu.ListenerCapabilities = entity.ListenerCapabilities(listenerCapabilities)
	pdu.ControllerCapabilities = entity.ControllerCapabilities(controllerCapabilities)
	pdu.AvailableIndex = availableIndex
	pdu.GptpGrandmasterID = entity.ID(gptpGrandmasterID)
	pdu.GptpDomainNumber = uint8(gptpWord >> 24)
	pdu.IdentifyControlIndex = identifyControlIndex
	pdu.InterfaceIndex = interfaceIndex
	pdu.AssociationID = entity.ID(associationID)
	return pdu, nil
}
