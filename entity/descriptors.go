package entity

// CommonDescriptor is the (DescriptorType, DescriptorIndex) header every
// AEM descriptor response carries ahead of its type-specific fields.
type CommonDescriptor struct {
	DescriptorType  DescriptorType
	DescriptorIndex DescriptorIndex
}

// VendorEntityModel packs an OUI-24 vendor ID, device ID and model ID
// into the single 64-bit field EntityDescriptor carries (IEEE 1722.1
// Clause 7.2.1).
type VendorEntityModel uint64

// MakeVendorEntityModel packs vendorID (OUI-24), deviceID and modelID.
func MakeVendorEntityModel(vendorID uint32, deviceID uint8, modelID uint32) VendorEntityModel {
	return VendorEntityModel(uint64(vendorID&0x00ffffff)<<40 | uint64(deviceID)<<32 | uint64(modelID))
}

// Split returns the vendorID, deviceID and modelID packed into v.
func (v VendorEntityModel) Split() (vendorID uint32, deviceID uint8, modelID uint32) {
	vendorID = uint32(v>>40) & 0x00ffffff
	deviceID = uint8(v >> 32)
	modelID = uint32(v)
	return
}

// EntityDescriptor is the ENTITY descriptor (IEEE 1722.1 Clause 7.2.1).
type EntityDescriptor struct {
	Common                 CommonDescriptor
	EntityID               ID
	VendorEntityModelID    VendorEntityModel
	EntityCapabilities     EntityCapabilities
	TalkerStreamSources    uint16
	TalkerCapabilities     TalkerCapabilities
	ListenerStreamSinks    uint16
	ListenerCapabilities   ListenerCapabilities
	ControllerCapabilities ControllerCapabilities
	AvailableIndex         uint32
	AssociationID          ID
	EntityName             FixedString
	VendorNameString       uint16
	ModelNameString        uint16
	FirmwareVersion        FixedString
	GroupName              FixedString
	SerialNumber           FixedString
	ConfigurationsCount    uint16
	CurrentConfiguration   uint16
}

// ConfigurationDescriptor is the CONFIGURATION descriptor (Clause 7.2.2).
type ConfigurationDescriptor struct {
	Common                CommonDescriptor
	ObjectName            FixedString
	LocalizedDescription  uint16
	DescriptorCounts      map[DescriptorType]uint16
}

// AudioUnitDescriptor is the AUDIO_UNIT descriptor (Clause 7.2.3).
type AudioUnitDescriptor struct {
	Common                   CommonDescriptor
	ObjectName               FixedString
	LocalizedDescription     uint16
	ClockDomainIndex         ClockDomainIndex
	NumberOfStreamInputPorts uint16
	BaseStreamInputPort      StreamPortIndex
	NumberOfStreamOutputPorts uint16
	BaseStreamOutputPort     StreamPortIndex
	CurrentSamplingRate      SamplingRate
	SamplingRates            []SamplingRate
}

// StreamDescriptor is the STREAM_INPUT / STREAM_OUTPUT descriptor
// (Clause 7.2.6).
type StreamDescriptor struct {
	Common               CommonDescriptor
	ObjectName           FixedString
	LocalizedDescription uint16
	ClockDomainIndex     ClockDomainIndex
	StreamFlags          uint16
	CurrentFormat        StreamFormat
	Formats              []StreamFormat
	AvbInterfaceIndex    AvbInterfaceIndex
	BufferLength         uint32
}

// JackDescriptor is the JACK_INPUT / JACK_OUTPUT descriptor (Clause 7.2.7).
type JackDescriptor struct {
	Common               CommonDescriptor
	ObjectName           FixedString
	LocalizedDescription uint16
	JackFlags            uint16
	JackType             uint16
	NumberOfControls     uint16
	BaseControl          ControlIndex
}

// AvbInterfaceDescriptor is the AVB_INTERFACE descriptor (Clause 7.2.8).
type AvbInterfaceDescriptor struct {
	Common               CommonDescriptor
	ObjectName           FixedString
	LocalizedDescription uint16
	MacAddress           [6]byte
	InterfaceFlags       uint16
	ClockIdentity        ID
	Priority1            uint8
	ClockClass           uint8
	OffsetScaledLogVariance uint16
	ClockAccuracy        uint8
	Priority2            uint8
	DomainNumber         uint8
	LogSyncInterval      int8
	LogAnnounceInterval  int8
	LogPdelayInterval    int8
	PortNumber           uint16
}

// ClockSourceDescriptor is the CLOCK_SOURCE descriptor (Clause 7.2.9).
type ClockSourceDescriptor struct {
	Common                   CommonDescriptor
	ObjectName               FixedString
	LocalizedDescription     uint16
	ClockSourceFlags         uint16
	ClockSourceType          uint16
	ClockSourceIdentifier    ID
	ClockSourceLocationType  DescriptorType
	ClockSourceLocationIndex DescriptorIndex
}

// MemoryObjectDescriptor is the MEMORY_OBJECT descriptor (Clause 7.2.10).
type MemoryObjectDescriptor struct {
	Common                CommonDescriptor
	ObjectName            FixedString
	LocalizedDescription  uint16
	MemoryObjectType      uint16
	TargetDescriptorType  DescriptorType
	TargetDescriptorIndex DescriptorIndex
	StartAddress          uint64
	MaximumLength         uint64
	Length                uint64
}

// LocaleDescriptor is the LOCALE descriptor (Clause 7.2.11).
type LocaleDescriptor struct {
	Common                    CommonDescriptor
	LocaleID                  FixedString
	NumberOfStringDescriptors uint16
	BaseStringDescriptorIndex StringsIndex
}

// StringsDescriptor is the STRINGS descriptor (Clause 7.2.12): up to seven
// localized strings per descriptor.
type StringsDescriptor struct {
	Common  CommonDescriptor
	Strings [7]FixedString
}

// StreamPortDescriptor is the STREAM_PORT_INPUT / STREAM_PORT_OUTPUT
// descriptor (Clause 7.2.13).
type StreamPortDescriptor struct {
	Common                 CommonDescriptor
	ClockDomainIndex       ClockDomainIndex
	PortFlags              uint16
	NumberOfControls       uint16
	BaseControl            ControlIndex
	NumberOfClusters       uint16
	BaseCluster            ClusterIndex
	NumberOfMaps           uint16
	BaseMap                MapIndex
}

// ExternalPortDescriptor is the EXTERNAL_PORT_INPUT / EXTERNAL_PORT_OUTPUT
// descriptor (Clause 7.2.14).
type ExternalPortDescriptor struct {
	Common              CommonDescriptor
	ClockDomainIndex    ClockDomainIndex
	PortFlags           uint16
	NumberOfControls    uint16
	BaseControl         ControlIndex
	SignalType          DescriptorType
	SignalIndex         DescriptorIndex
	SignalOutput        uint16
}

// InternalPortDescriptor is the INTERNAL_PORT_INPUT / INTERNAL_PORT_OUTPUT
// descriptor (Clause 7.2.15).
type InternalPortDescriptor struct {
	Common              CommonDescriptor
	ClockDomainIndex    ClockDomainIndex
	PortFlags           uint16
	NumberOfControls    uint16
	BaseControl         ControlIndex
	SignalType          DescriptorType
	SignalIndex         DescriptorIndex
	SignalOutput        uint16
}

// AudioClusterDescriptor is the AUDIO_CLUSTER descriptor (Clause 7.2.16).
type AudioClusterDescriptor struct {
	Common               CommonDescriptor
	ObjectName           FixedString
	LocalizedDescription uint16
	SignalType           DescriptorType
	SignalIndex          DescriptorIndex
	SignalOutput         uint16
	PathLatency          uint32
	BlockLatency         uint32
	ChannelCount         uint16
	Format               uint8
}

// VideoClusterDescriptor is the VIDEO_CLUSTER descriptor (Clause 7.2.17).
type VideoClusterDescriptor struct {
	Common               CommonDescriptor
	ObjectName           FixedString
	LocalizedDescription uint16
	CurrentSamplingRate  SamplingRate
	SamplingRates        []SamplingRate
}

// SensorClusterDescriptor is the SENSOR_CLUSTER descriptor (Clause 7.2.18).
type SensorClusterDescriptor struct {
	Common               CommonDescriptor
	ObjectName           FixedString
	LocalizedDescription uint16
	CurrentSamplingRate  SamplingRate
	SamplingRates        []SamplingRate
}

// AudioMapDescriptor is the AUDIO_MAP descriptor (Clause 7.2.19).
type AudioMapDescriptor struct {
	Common  CommonDescriptor
	Mappings []AudioMapping
}

// ClockDomainDescriptor is the CLOCK_DOMAIN descriptor (Clause 7.2.32).
type ClockDomainDescriptor struct {
	Common               CommonDescriptor
	ObjectName           FixedString
	LocalizedDescription uint16
	ClockSourceIndex     ClockSourceIndex
	ClockSources         []ClockSourceIndex
}

// AudioMapping is one entry in an audio mapping list (IEEE 1722.1
// Clause 7.3.16): which stream channel feeds which cluster channel.
type AudioMapping struct {
	StreamIndex    StreamIndex
	StreamChannel  uint16
	ClusterOffset  uint16
	ClusterChannel uint16
}

// StreamInfo is the GET/SET_STREAM_INFO dynamic information (Clause 7.4.16.2).
type StreamInfo struct {
	StreamInfoFlags         uint32
	StreamFormat            StreamFormat
	StreamID                ID
	MsrpAccumulatedLatency  uint32
	StreamDestMac           [6]byte
	MsrpFailureCode         uint8
	MsrpFailureBridgeID     ID
	StreamVlanID            uint16
}

// AvbInfo is the GET_AVB_INFO dynamic information (Clause 7.4.40).
type AvbInfo struct {
	GptpGrandmasterID      ID
	PropagationDelay       uint32
	GptpDomainNumber       uint8
	Flags                  uint8
	MsrpMappings           []uint8
}

// AsPath is the GET_AS_PATH dynamic information (Clause 7.4.41).
type AsPath struct {
	Path []ID
}

// MilanInfo is the Milan Vendor-Unique GET_MILAN_INFO response.
type MilanInfo struct {
	ProtocolVersion     uint32
	FeaturesFlags       uint32
	CertificationVersion uint32
}
