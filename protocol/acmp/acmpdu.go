// Package acmp implements the ACMP (AVDECC Connection Management
// Protocol) PDU codec: CONNECT_TX/RX, DISCONNECT_TX/RX, and the
// GET_TX/RX_STATE and GET_TX_CONNECTION queries, all sharing one fixed
// payload shape distinguished by MessageType and ControlStatus.
//
// Framing below these fields (subtype byte, common AVTPDU control
// header) is the transport package's concern, mirroring how the
// upstream ACMPDU type layers on top of its AVTPDU control base.
package acmp

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// MessageType is the ACMP message kind carried in the common AVTPDU
// header's message_type field (IEEE 1722.1 Table 8.1).
type MessageType uint8

const (
	ConnectTxCommand MessageType = iota
	ConnectTxResponse
	DisconnectTxCommand
	DisconnectTxResponse
	GetTxStateCommand
	GetTxStateResponse
	ConnectRxCommand
	ConnectRxResponse
	DisconnectRxCommand
	DisconnectRxResponse
	GetRxStateCommand
	GetRxStateResponse
	GetTxConnectionCommand
	GetTxConnectionResponse
)

func (m MessageType) String() string {
	switch m {
	case ConnectTxCommand:
		return "ConnectTxCommand"
	case ConnectTxResponse:
		return "ConnectTxResponse"
	case DisconnectTxCommand:
		return "DisconnectTxCommand"
	case DisconnectTxResponse:
		return "DisconnectTxResponse"
	case GetTxStateCommand:
		return "GetTxStateCommand"
	case GetTxStateResponse:
		return "GetTxStateResponse"
	case ConnectRxCommand:
		return "ConnectRxCommand"
	case ConnectRxResponse:
		return "ConnectRxResponse"
	case DisconnectRxCommand:
		return "DisconnectRxCommand"
	case DisconnectRxResponse:
		return "DisconnectRxResponse"
	case GetRxStateCommand:
		return "GetRxStateCommand"
	case GetRxStateResponse:
		return "GetRxStateResponse"
	case GetTxConnectionCommand:
		return "GetTxConnectionCommand"
	case GetTxConnectionResponse:
		return "GetTxConnectionResponse"
	default:
		return "Unknown"
	}
}

// ConnectionFlags carries the FAST_CONNECT / SAVED_STATE / STREAMING_WAIT
// etc. bits describing a stream connection (IEEE 1722.1 Table 8.3).
type ConnectionFlags uint16

const (
	ConnectionFlagClassB        ConnectionFlags = 1 << 0
	ConnectionFlagFastConnect   ConnectionFlags = 1 << 1
	ConnectionFlagSavedState    ConnectionFlags = 1 << 2
	ConnectionFlagStreamingWait ConnectionFlags = 1 << 3
	ConnectionFlagSupportsEncrypted ConnectionFlags = 1 << 4
	ConnectionFlagEncryptedPdu  ConnectionFlags = 1 << 5
	ConnectionFlagTalkerFailed  ConnectionFlags = 1 << 6
)

func (f ConnectionFlags) Has(flag ConnectionFlags) bool { return f&flag == flag }

// PayloadLength is the fixed size of the ACMP-specific fields following
// the common AVTPDU header (IEEE 1722.1 Clause 8.2.1).
const PayloadLength = 8 + 8 + 8 + 2 + 2 + 6 + 2 + 2 + 2 + 2 + 2

// PDU is the decoded ACMP payload common to every ACMP message type.
type PDU struct {
	ControllerEntityID entity.ID
	TalkerEntityID     entity.ID
	ListenerEntityID   entity.ID
	TalkerUniqueID     uint16
	ListenerUniqueID   uint16
	StreamDestMac      [6]byte
	ConnectionCount    uint16
	SequenceID         uint16
	Flags              ConnectionFlags
	StreamVlanID       uint16
}

// Serialize encodes the ACMP-specific fields in the exact order the
// upstream protocol stack does.
func Serialize(pdu PDU) []byte {
	w := wire.NewWriter(PayloadLength)
	w.Uint64(uint64(pdu.ControllerEntityID))
	w.Uint64(uint64(pdu.TalkerEntityID))
	w.Uint64(uint64(pdu.ListenerEntityID))
	w.Uint16(pdu.TalkerUniqueID)
	w.Uint16(pdu.ListenerUniqueID)
	w.FixedBytes(pdu.StreamDestMac[:], 6)
	w.Uint16(pdu.ConnectionCount)
	w.Uint16(pdu.SequenceID)
	w.Uint16(uint16(pdu.Flags))
	w.Uint16(pdu.StreamVlanID)
	w.Uint16(0) // reserved
	return w.Bytes()
}

// Deserialize decodes the ACMP-specific fields.
func Deserialize(payload []byte) (PDU, error) {
	var pdu PDU
	if len(payload) < PayloadLength {
		return pdu, wire.ErrShortBuffer
	}
	r := wire.NewReader(payload)

	controllerEntityID, err := r.Uint64()
	if err != nil {
		return pdu, err
	}
	talkerEntityID, err := r.Uint64()
	if err != nil {
		return pdu, err
	}
	listenerEntityID, err := r.Uint64()
	if err != nil {
		return pdu, err
	}
	talkerUniqueID, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	listenerUniqueID, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	streamDestMac, err := r.Bytes(6)
	if err != nil {
		return pdu, err
	}
	connectionCount, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	sequenceID, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	flags, err := r.Uint16()
	if err != nil {
		return pdu, err
	}
	streamVlanID, err := r.Uint16()
	if err != nil {
		return pdu, err
	}

	pdu.ControllerEntityID = entity.ID(controllerEntityID)
	pdu.TalkerEntityID = entity.ID(talkerEntityID)
	pdu.ListenerEntityID = entity.ID(listenerEntityID)
	pdu.TalkerUniqueID = talkerUniqueID
	pdu.ListenerUniqueID = listenerUniqueID
	copy(pdu.StreamDestMac[:], streamDestMac)
	pdu.ConnectionCount = connectionCount
	pdu.SequenceID = sequenceID
	pdu.Flags = ConnectionFlags(flags)
	pdu.StreamVlanID = streamVlanID
	return pdu, nil
}

// Key identifies one logical talker/listener connection independent of
// SequenceID. Nothing in this module correlates by Key: VirtualLink
// matches an ACMP response to its command by SequenceID alone.
type Key struct {
	TalkerEntityID   entity.ID
	TalkerUniqueID   uint16
	ListenerEntityID entity.ID
	ListenerUniqueID uint16
}

// KeyOf extracts the connection Key from a PDU.
func KeyOf(pdu PDU) Key {
	return Key{
		TalkerEntityID:   pdu.TalkerEntityID,
		TalkerUniqueID:   pdu.TalkerUniqueID,
		ListenerEntityID: pdu.ListenerEntityID,
		ListenerUniqueID: pdu.ListenerUniqueID,
	}
}
