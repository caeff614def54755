// Package status implements the unified error taxonomy for the AVDECC
// controller core: one status type per sub-protocol (AEM, Address Access,
// Milan Vendor-Unique, ACMP), each a superset of the wire status codes
// plus the core-local kinds raised by the command issuer and response
// router (UnknownEntity, ProtocolError, InternalError) and the kinds
// originating in the protocol interface (TimedOut, Canceled, TransportError).
package status

// Kind identifies the class of a status value across every sub-protocol,
// used by callers that want to branch on a status without knowing which
// concrete sub-protocol type they're holding.
type Kind uint8

const (
	KindSuccess Kind = iota
	KindWireStatus
	KindUnknownEntity
	KindProtocolError
	KindInternalError
	KindTimedOut
	KindCanceled
	KindTransportError
)

// coreLocal holds the shared non-wire status values every sub-protocol
// status type embeds. The wire-specific codes live in the range below
// coreBase in each sub-protocol's own type.
type coreLocal uint8

const (
	coreSuccess coreLocal = iota
	coreUnknownEntity
	coreProtocolError
	coreInternalError
	coreTimedOut
	coreCanceled
	coreTransportError
)

func (c coreLocal) kind() Kind {
	switch c {
	case coreSuccess:
		return KindSuccess
	case coreUnknownEntity:
		return KindUnknownEntity
	case coreProtocolError:
		return KindProtocolError
	case coreInternalError:
		return KindInternalError
	case coreTimedOut:
		return KindTimedOut
	case coreCanceled:
		return KindCanceled
	case coreTransportError:
		return KindTransportError
	default:
		return KindWireStatus
	}
}

func (c coreLocal) String() string {
	switch c {
	case coreSuccess:
		return "Success"
	case coreUnknownEntity:
		return "UnknownEntity"
	case coreProtocolError:
		return "ProtocolError"
	case coreInternalError:
		return "InternalError"
	case coreTimedOut:
		return "TimedOut"
	case coreCanceled:
		return "Canceled"
	case coreTransportError:
		return "TransportError"
	default:
		return "Unknown"
	}
}

// Status is implemented by every sub-protocol status type.
type Status interface {
	error
	Success() bool
	Kind() Kind
}
