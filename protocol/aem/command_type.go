// Package aem implements the AEM (AVDECC Entity Model) sub-protocol of
// AECP: command payload serialization, response payload deserialization,
// and the AemCommandType/DescriptorType-keyed dispatch surface the
// controller's response router switches on.
//
// The codec is stateless and pure: every Serialize* function takes
// typed arguments and returns a byte slice; every Deserialize*Response
// function takes a byte slice and returns typed values plus an error
// (wire.ErrShortBuffer on truncation, never a panic).
package aem

// CommandType is the closed AEM command/response type carried in the AECP
// AEM header's CommandType field (IEEE 1722.1 Table 7.127).
type CommandType uint16

const (
	AcquireEntity CommandType = iota
	LockEntity
	EntityAvailable
	ControllerAvailable
	ReadDescriptor
	WriteDescriptor
	SetConfiguration
	GetConfiguration
	SetStreamFormat
	GetStreamFormat
	SetStreamInfo
	GetStreamInfo
	SetName
	GetName
	SetSamplingRate
	GetSamplingRate
	SetClockSource
	GetClockSource
	StartStreaming
	StopStreaming
	RegisterUnsolicitedNotification
	DeregisterUnsolicitedNotification
	GetAvbInfo
	GetAsPath
	GetCounters
	StartOperation
	AbortOperation
	OperationStatus
	SetMemoryObjectLength
	GetMemoryObjectLength
	GetAudioMap
	AddAudioMappings
	RemoveAudioMappings
)

// headerUnsolicitedBit marks bit 15 of the 16-bit AECP AEM header word;
// CommandType occupies bits 14..0 of the same word (IEEE 1722.1
// Clause 9.2.1.1.5).
const headerUnsolicitedBit = uint16(1) << 15

// PackHeader builds the 16-bit AEM header word from its Unsolicited flag
// and CommandType.
func PackHeader(unsolicited bool, cmd CommandType) uint16 {
	v := uint16(cmd) & 0x7fff
	if unsolicited {
		v |= headerUnsolicitedBit
	}
	return v
}

// UnpackHeader splits a 16-bit AEM header word into its Unsolicited flag
// and CommandType.
func UnpackHeader(header uint16) (unsolicited bool, cmd CommandType) {
	return header&headerUnsolicitedBit != 0, CommandType(header & 0x7fff)
}

func (c CommandType) String() string {
	switch c {
	case AcquireEntity:
		return "AcquireEntity"
	case LockEntity:
		return "LockEntity"
	case EntityAvailable:
		return "EntityAvailable"
	case ControllerAvailable:
		return "ControllerAvailable"
	case ReadDescriptor:
		return "ReadDescriptor"
	case WriteDescriptor:
		return "WriteDescriptor"
	case SetConfiguration:
		return "SetConfiguration"
	case GetConfiguration:
		return "GetConfiguration"
	case SetStreamFormat:
		return "SetStreamFormat"
	case GetStreamFormat:
		return "GetStreamFormat"
	case SetStreamInfo:
		return "SetStreamInfo"
	case GetStreamInfo:
		return "GetStreamInfo"
	case SetName:
		return "SetName"
	case GetName:
		return "GetName"
	case SetSamplingRate:
		return "SetSamplingRate"
	case GetSamplingRate:
		return "GetSamplingRate"
	case SetClockSource:
		return "SetClockSource"
	case GetClockSource:
		return "GetClockSource"
	case StartStreaming:
		return "StartStreaming"
	case StopStreaming:
		return "StopStreaming"
	case RegisterUnsolicitedNotification:
		return "RegisterUnsolicitedNotification"
	case DeregisterUnsolicitedNotification:
		return "DeregisterUnsolicitedNotification"
	case GetAvbInfo:
		return "GetAvbInfo"
	case GetAsPath:
		return "GetAsPath"
	case GetCounters:
		return "GetCounters"
	case StartOperation:
		return "StartOperation"
	case AbortOperation:
		return "AbortOperation"
	case OperationStatus:
		return "OperationStatus"
	case SetMemoryObjectLength:
		return "SetMemoryObjectLength"
	case GetMemoryObjectLength:
		return "GetMemoryObjectLength"
	case GetAudioMap:
		return "GetAudioMap"
	case AddAudioMappings:
		return "AddAudioMappings"
	case RemoveAudioMappings:
		return "RemoveAudioMappings"
	default:
		return "Unknown"
	}
}
