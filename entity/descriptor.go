package entity

import "fmt"

// DescriptorType identifies the kind of AEM-addressable object in a
// descriptor address triple (ConfigurationIndex, DescriptorType,
// DescriptorIndex). Values and ordering follow IEEE 1722.1 Table 7.2.
type DescriptorType uint16

const (
	DescriptorEntity             DescriptorType = 0x0000
	DescriptorConfiguration      DescriptorType = 0x0001
	DescriptorAudioUnit          DescriptorType = 0x0002
	DescriptorVideoUnit          DescriptorType = 0x0003
	DescriptorSensorUnit         DescriptorType = 0x0004
	DescriptorStreamInput        DescriptorType = 0x0005
	DescriptorStreamOutput       DescriptorType = 0x0006
	DescriptorJackInput          DescriptorType = 0x0007
	DescriptorJackOutput         DescriptorType = 0x0008
	DescriptorAvbInterface       DescriptorType = 0x0009
	DescriptorClockSource        DescriptorType = 0x000a
	DescriptorMemoryObject       DescriptorType = 0x000b
	DescriptorLocale             DescriptorType = 0x000c
	DescriptorStrings            DescriptorType = 0x000d
	DescriptorStreamPortInput    DescriptorType = 0x000e
	DescriptorStreamPortOutput   DescriptorType = 0x000f
	DescriptorExternalPortInput  DescriptorType = 0x0010
	DescriptorExternalPortOutput DescriptorType = 0x0011
	DescriptorInternalPortInput  DescriptorType = 0x0012
	DescriptorInternalPortOutput DescriptorType = 0x0013
	DescriptorAudioCluster       DescriptorType = 0x0014
	DescriptorVideoCluster       DescriptorType = 0x0015
	DescriptorSensorCluster      DescriptorType = 0x0016
	DescriptorAudioMap           DescriptorType = 0x0017
	DescriptorVideoMap           DescriptorType = 0x0018
	DescriptorSensorMap          DescriptorType = 0x0019
	DescriptorControl            DescriptorType = 0x001a
	DescriptorSignalSelector     DescriptorType = 0x001b
	DescriptorMixer              DescriptorType = 0x001c
	DescriptorMatrix             DescriptorType = 0x001d
	DescriptorClockDomain        DescriptorType = 0x0024
	DescriptorInvalid            DescriptorType = 0xffff
)

func (d DescriptorType) String() string {
	switch d {
	case DescriptorEntity:
		return "Entity"
	case DescriptorConfiguration:
		return "Configuration"
	case DescriptorAudioUnit:
		return "AudioUnit"
	case DescriptorVideoUnit:
		return "VideoUnit"
	case DescriptorSensorUnit:
		return "SensorUnit"
	case DescriptorStreamInput:
		return "StreamInput"
	case DescriptorStreamOutput:
		return "StreamOutput"
	case DescriptorJackInput:
		return "JackInput"
	case DescriptorJackOutput:
		return "JackOutput"
	case DescriptorAvbInterface:
		return "AvbInterface"
	case DescriptorClockSource:
		return "ClockSource"
	case DescriptorMemoryObject:
		return "MemoryObject"
	case DescriptorLocale:
		return "Locale"
	case DescriptorStrings:
		return "Strings"
	case DescriptorStreamPortInput:
		return "StreamPortInput"
	case DescriptorStreamPortOutput:
		return "StreamPortOutput"
	case DescriptorExternalPortInput:
		return "ExternalPortInput"
	case DescriptorExternalPortOutput:
		return "ExternalPortOutput"
	case DescriptorInternalPortInput:
		return "InternalPortInput"
	case DescriptorInternalPortOutput:
		return "InternalPortOutput"
	case DescriptorAudioCluster:
		return "AudioCluster"
	case DescriptorVideoCluster:
		return "VideoCluster"
	case DescriptorSensorCluster:
		return "SensorCluster"
	case DescriptorAudioMap:
		return "AudioMap"
	case DescriptorVideoMap:
		return "VideoMap"
	case DescriptorSensorMap:
		return "SensorMap"
	case DescriptorControl:
		return "Control"
	case DescriptorSignalSelector:
		return "SignalSelector"
	case DescriptorMixer:
		return "Mixer"
	case DescriptorMatrix:
		return "Matrix"
	case DescriptorClockDomain:
		return "ClockDomain"
	case DescriptorInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("DescriptorType(0x%04x)", uint16(d))
	}
}

// DescriptorIndex, ConfigurationIndex, and friend index types complete the
// descriptor address triple. They're plain uint16 aliases: IEEE 1722.1
// indexes are always 16-bit and have no behavior of their own.
type (
	DescriptorIndex    uint16
	ConfigurationIndex uint16
	AudioUnitIndex     uint16
	StreamIndex        uint16
	JackIndex          uint16
	AvbInterfaceIndex  uint16
	ClockSourceIndex   uint16
	MemoryObjectIndex  uint16
	LocaleIndex        uint16
	StringsIndex       uint16
	StreamPortIndex    uint16
	ExternalPortIndex  uint16
	InternalPortIndex  uint16
	ClusterIndex       uint16
	MapIndex           uint16
	ClockDomainIndex   uint16
	ControlIndex       uint16
)

// SamplingRate is the nominal sampling rate field carried by audio units,
// video clusters and sensor clusters (IEEE 1722.1 Clause 7.3.12).
type SamplingRate uint32

// StreamFormat is an opaque 64-bit stream format identifier (IEEE 1722.1
// Clause 7.3.9); interpreting its bits is outside this core's scope.
type StreamFormat uint64

// OperationID identifies an in-progress memory-object operation.
type OperationID uint16

// MemoryObjectOperationType selects the kind of operation START_OPERATION
// begins (IEEE 1722.1 Table 7.15).
type MemoryObjectOperationType uint16

const (
	OperationStore MemoryObjectOperationType = iota
	OperationStoreAndReboot
	OperationRead
	OperationErase
	OperationUpload
)
