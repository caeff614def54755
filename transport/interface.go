// Package transport defines the boundary between the controller
// capability core and the raw L2 Ethernet path: sending and receiving
// ADP, AECP and ACMP frames, and notifying observers of what arrives.
//
// This package never touches a real network socket itself. VirtualLink
// (virtual.go) is the in-memory reference implementation; a real
// Ethernet-backed Interface belongs outside
// this module's Non-goals (spec.md §1).
package transport

import (
	"net"

	"github.com/opd-ai/avdeccore/entity"
)

// MulticastMacAddress is the destination MAC every ADP and ACMP frame
// is sent to (IEEE 1722.1 Clause 6.2.1, 8.2.1).
var MulticastMacAddress = net.HardwareAddr{0x91, 0xe0, 0xf0, 0x01, 0x00, 0x00}

// MilanOUI identifies AECP frames carrying a Milan Vendor-Unique payload
// rather than an AEM payload (Milan Clause 5.2.1).
var MilanOUI = [3]byte{0x90, 0xe0, 0xf0}

// Subtype is the AVTP subtype byte selecting which AVDECC sub-protocol
// a frame carries (IEEE 1722.1 Clause 5.2.1).
type Subtype uint8

const (
	SubtypeAdp  Subtype = 0x7a
	SubtypeAecp Subtype = 0x7b
	SubtypeAcmp Subtype = 0x7c
)

// Frame is one decoded AVDECC L2 frame, with the transport-level
// envelope (source/destination MAC, subtype, message type, status) kept
// apart from the sub-protocol payload the protocol/* packages decode.
type Frame struct {
	SourceMac      net.HardwareAddr
	DestinationMac net.HardwareAddr
	Subtype        Subtype
	MessageType    uint8
	Status         uint8
	SequenceID     uint16
	ValidTime      uint8 // ADP only: advertisement lifetime, units of 2 seconds
	Payload        []byte
}

// Error is the transport-layer error taxonomy every Interface method
// reports through, mirroring the upstream protocol interface's error
// enum rather than a Go standard error so the controller can react to a
// TransportError by giving up on an interface rather than retrying.
type Error uint8

const (
	ErrorNone Error = iota
	ErrorTransport
	ErrorTimeout
	ErrorUnknownRemoteEntity
	ErrorUnknownLocalEntity
	ErrorInterfaceNotFound
	ErrorInterfaceInvalid
	ErrorNotSupported
	ErrorInternal
)

func (e Error) String() string {
	switch e {
	case ErrorNone:
		return "None"
	case ErrorTransport:
		return "Transport"
	case ErrorTimeout:
		return "Timeout"
	case ErrorUnknownRemoteEntity:
		return "UnknownRemoteEntity"
	case ErrorUnknownLocalEntity:
		return "UnknownLocalEntity"
	case ErrorInterfaceNotFound:
		return "InterfaceNotFound"
	case ErrorInterfaceInvalid:
		return "InterfaceInvalid"
	case ErrorNotSupported:
		return "NotSupported"
	case ErrorInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

func (e Error) Error() string { return "transport: " + e.String() }

// AecpResultHandler is invoked exactly once when an AECP command
// resolves: either a matching response arrived, or the command timed
// out, or the interface reported a transport failure.
type AecpResultHandler func(response Frame, err Error)

// AcmpResultHandler is invoked exactly once when an ACMP command
// resolves, matching AecpResultHandler's shape.
type AcmpResultHandler func(response Frame, err Error)

// Observer receives every notification an Interface produces. All
// methods must return promptly: a slow Observer blocks the interface's
// receive path (spec.md §6, grounded on ProtocolInterface::Observer).
type Observer interface {
	OnTransportError(iface Interface)
	OnAdpEntityAvailable(iface Interface, senderMac net.HardwareAddr, entityID entity.ID, snapshot entity.Snapshot)
	OnAdpEntityDeparting(iface Interface, senderMac net.HardwareAddr, entityID entity.ID)
	OnAecpCommand(iface Interface, frame Frame)
	OnAecpUnsolicitedResponse(iface Interface, frame Frame)
	OnAcmpSniffedCommand(iface Interface, frame Frame)
	OnAcmpSniffedResponse(iface Interface, frame Frame)
}

// Interface is the L2 transport boundary a controller instance drives.
// A real implementation would open a raw AF_PACKET (or equivalent)
// socket filtered to the AVDECC EtherType; VirtualLink is the in-memory
// stand-in this module ships.
type Interface interface {
	// MacAddress returns the local interface's hardware address.
	MacAddress() net.HardwareAddr

	// InterfaceIndex returns the local AVB_INTERFACE index this
	// transport corresponds to in the entity model.
	InterfaceIndex() entity.AvbInterfaceIndex

	// AddObserver registers an Observer for every notification this
	// Interface produces. Safe to call concurrently with frame delivery.
	AddObserver(observer Observer)

	// RemoveObserver unregisters a previously added Observer.
	RemoveObserver(observer Observer)

	// Shutdown stops all activity on the interface. It blocks until any
	// in-flight receive processing completes. Safe to call more than
	// once.
	Shutdown()

	// DiscoverRemoteEntities broadcasts an ADP EntityDiscover message.
	DiscoverRemoteEntities() Error

	// DiscoverRemoteEntity sends an ADP EntityDiscover message targeted
	// at entityID (a unicast-shaped discovery probe some entities honor
	// more promptly than the broadcast form).
	DiscoverRemoteEntity(entityID entity.ID) Error

	// SendAecpCommand sends an AECP command frame to macAddress and
	// arranges for onResult to run when the matching response arrives,
	// the command times out, or the send itself fails.
	SendAecpCommand(frame Frame, macAddress net.HardwareAddr, onResult AecpResultHandler) Error

	// SendAecpResponse sends an AECP response frame back to macAddress.
	SendAecpResponse(frame Frame, macAddress net.HardwareAddr) Error

	// SendAcmpCommand multicasts an ACMP command frame and arranges for
	// onResult to run when the matching response arrives or the command
	// times out.
	SendAcmpCommand(frame Frame, onResult AcmpResultHandler) Error

	// SendAcmpResponse multicasts an ACMP response frame.
	SendAcmpResponse(frame Frame) Error
}
