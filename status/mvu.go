package status

import "fmt"

// MvuStatus is the status of a Milan Vendor-Unique command/response.
type MvuStatus uint16

const (
	MvuSuccess        MvuStatus = 0
	MvuNotImplemented MvuStatus = 1

	mvuCoreBase       MvuStatus = 0x100
	MvuUnknownEntity  MvuStatus = mvuCoreBase + MvuStatus(coreUnknownEntity)
	MvuProtocolError  MvuStatus = mvuCoreBase + MvuStatus(coreProtocolError)
	MvuInternalError  MvuStatus = mvuCoreBase + MvuStatus(coreInternalError)
	MvuTimedOut       MvuStatus = mvuCoreBase + MvuStatus(coreTimedOut)
	MvuCanceled       MvuStatus = mvuCoreBase + MvuStatus(coreCanceled)
	MvuTransportError MvuStatus = mvuCoreBase + MvuStatus(coreTransportError)
)

func (s MvuStatus) Success() bool { return s == MvuSuccess }

func (s MvuStatus) Kind() Kind {
	if s < mvuCoreBase {
		if s == MvuSuccess {
			return KindSuccess
		}
		return KindWireStatus
	}
	return coreLocal(s - mvuCoreBase).kind()
}

func (s MvuStatus) Error() string {
	if s >= mvuCoreBase {
		return coreLocal(s - mvuCoreBase).String()
	}
	switch s {
	case MvuSuccess:
		return "Success"
	case MvuNotImplemented:
		return "NotImplemented"
	default:
		return fmt.Sprintf("MvuStatus(%d)", uint16(s))
	}
}
