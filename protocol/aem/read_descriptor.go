package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// ReadDescriptorCommandPayloadSize is the wire size of a READ_DESCRIPTOR
// command payload (IEEE 1722.1 Clause 7.4.5.1).
const ReadDescriptorCommandPayloadSize = 2 + 2 + 2 + 2

// ReadDescriptorCommonResponseSize is the size of the header every
// READ_DESCRIPTOR response shares ahead of its descriptor-type-specific
// body, used by the router to dispatch on DescriptorType before parsing
// further (spec.md §4.1).
const ReadDescriptorCommonResponseSize = ReadDescriptorCommandPayloadSize

// SerializeReadDescriptorCommand builds a READ_DESCRIPTOR command
// payload. Reading the Entity Descriptor uses configurationIndex=0;
// reading a Configuration Descriptor passes the target configuration
// index as descriptorIndex, not configurationIndex (IEEE 1722.1
// Clause 7.4.5.1 — this is not an error, it's how the clause addresses
// configurations).
func SerializeReadDescriptorCommand(configurationIndex entity.ConfigurationIndex, descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex) []byte {
	w := wire.NewWriter(ReadDescriptorCommandPayloadSize)
	w.Uint16(uint16(configurationIndex))
	w.Uint16(0) // reserved
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	return w.Bytes()
}

// ReadDescriptorCommonResponse is the header shared by every
// READ_DESCRIPTOR response.
type ReadDescriptorCommonResponse struct {
	ConfigurationIndex entity.ConfigurationIndex
	DescriptorType     entity.DescriptorType
	DescriptorIndex    entity.DescriptorIndex
}

// DeserializeReadDescriptorCommonResponse parses the common header ahead
// of the descriptor-type-specific body, returning the number of bytes it
// consumed so the caller can continue reading the body from that offset.
func DeserializeReadDescriptorCommonResponse(payload []byte) (ReadDescriptorCommonResponse, int, error) {
	r := wire.NewReader(payload)
	var resp ReadDescriptorCommonResponse
	ci, err := r.Uint16()
	if err != nil {
		return resp, 0, err
	}
	if _, err := r.Uint16(); err != nil { // reserved
		return resp, 0, err
	}
	dt, err := r.Uint16()
	if err != nil {
		return resp, 0, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, 0, err
	}
	resp.ConfigurationIndex = entity.ConfigurationIndex(ci)
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.DescriptorIndex(di)
	return resp, ReadDescriptorCommonResponseSize, nil
}

func readFixedString(r *wire.Reader) (entity.FixedString, error) {
	var fs entity.FixedString
	b, err := r.Bytes(entity.FixedStringLength)
	if err != nil {
		return fs, err
	}
	copy(fs[:], b)
	return fs, nil
}

// DeserializeEntityDescriptorResponse parses the ENTITY descriptor body
// that follows the common READ_DESCRIPTOR header.
func DeserializeEntityDescriptorResponse(payload []byte, bodyOffset int, common ReadDescriptorCommonResponse) (entity.EntityDescriptor, error) {
	var d entity.EntityDescriptor
	d.Common = entity.CommonDescriptor{DescriptorType: common.DescriptorType, DescriptorIndex: common.DescriptorIndex}
	r := wire.NewReader(payload[bodyOffset:])

	eid, err := r.Uint64()
	if err != nil {
		return d, err
	}
	vem, err := r.Uint64()
	if err != nil {
		return d, err
	}
	ec, err := r.Uint32()
	if err != nil {
		return d, err
	}
	tss, err := r.Uint16()
	if err != nil {
		return d, err
	}
	tc, err := r.Uint16()
	if err != nil {
		return d, err
	}
	lss, err := r.Uint16()
	if err != nil {
		return d, err
	}
	lc, err := r.Uint16()
	if err != nil {
		return d, err
	}
	cc, err := r.Uint32()
	if err != nil {
		return d, err
	}
	avail, err := r.Uint32()
	if err != nil {
		return d, err
	}
	assoc, err := r.Uint64()
	if err != nil {
		return d, err
	}
	entityName, err := readFixedString(r)
	if err != nil {
		return d, err
	}
	vendorNameString, err := r.Uint16()
	if err != nil {
		return d, err
	}
	modelNameString, err := r.Uint16()
	if err != nil {
		return d, err
	}
	firmwareVersion, err := readFixedString(r)
	if err != nil {
		return d, err
	}
	groupName, err := readFixedString(r)
	if err != nil {
		return d, err
	}
	serialNumber, err := readFixedString(r)
	if err != nil {
		return d, err
	}
	configsCount, err := r.Uint16()
	if err != nil {
		return d, err
	}
	currentConfig, err := r.Uint16()
	if err != nil {
		return d, err
	}

	d.EntityID = entity.ID(eid)
	d.VendorEntityModelID = entity.VendorEntityModel(vem)
	d.EntityCapabilities = entity.EntityCapabilities(ec)
	d.TalkerStreamSources = tss
	d.TalkerCapabilities = entity.TalkerCapabilities(tc)
	d.ListenerStreamSinks = lss
	d.ListenerCapabilities = entity.ListenerCapabilities(lc)
	d.ControllerCapabilities = entity.ControllerCapabilities(cc)
	d.AvailableIndex = avail
	d.AssociationID = entity.ID(assoc)
	d.EntityName = entityName
	d.VendorNameString = vendorNameString
	d.ModelNameString = modelNameString
	d.FirmwareVersion = firmwareVersion
	d.GroupName = groupName
	d.SerialNumber = serialNumber
	d.ConfigurationsCount = configsCount
	d.CurrentConfiguration = currentConfig
	return d, nil
}

// DeserializeConfigurationDescriptorResponse parses the CONFIGURATION
// descriptor body that follows the common READ_DESCRIPTOR header. The
// descriptor counts table is a run of (DescriptorType, count) pairs whose
// length is given by descriptorCountsCount.
func DeserializeConfigurationDescriptorResponse(payload []byte, bodyOffset int, common ReadDescriptorCommonResponse) (entity.ConfigurationDescriptor, error) {
	var d entity.ConfigurationDescriptor
	d.Common = entity.CommonDescriptor{DescriptorType: common.DescriptorType, DescriptorIndex: common.DescriptorIndex}
	r := wire.NewReader(payload[bodyOffset:])

	objectName, err := readFixedString(r)
	if err != nil {
		return d, err
	}
	localizedDescription, err := r.Uint16()
	if err != nil {
		return d, err
	}
	descriptorCountsCount, err := r.Uint16()
	if err != nil {
		return d, err
	}
	descriptorCountsOffset, err := r.Uint16()
	if err != nil {
		return d, err
	}
	_ = descriptorCountsOffset

	d.ObjectName = objectName
	d.LocalizedDescription = localizedDescription
	d.DescriptorCounts = make(map[entity.DescriptorType]uint16, descriptorCountsCount)
	for i := uint16(0); i < descriptorCountsCount; i++ {
		dt, err := r.Uint16()
		if err != nil {
			return d, err
		}
		count, err := r.Uint16()
		if err != nil {
			return d, err
		}
		d.DescriptorCounts[entity.DescriptorType(dt)] = count
	}
	return d, nil
}

// DeserializeStreamDescriptorResponse parses a STREAM_INPUT or
// STREAM_OUTPUT descriptor body. numberOfFormats drives how many
// StreamFormat entries follow the fixed-size header, per IEEE 1722.1
// Clause 7.2.6.
func DeserializeStreamDescriptorResponse(payload []byte, bodyOffset int, common ReadDescriptorCommonResponse) (entity.StreamDescriptor, error) {
	var d entity.StreamDescriptor
	d.Common = entity.CommonDescriptor{DescriptorType: common.DescriptorType, DescriptorIndex: common.DescriptorIndex}
	r := wire.NewReader(payload[bodyOffset:])

	objectName, err := readFixedString(r)
	if err != nil {
		return d, err
	}
	localizedDescription, err := r.Uint16()
	if err != nil {
		return d, err
	}
	clockDomainIndex, err := r.Uint16()
	if err != nil {
		return d, err
	}
	streamFlags, err := r.Uint16()
	if err != nil {
		return d, err
	}
	currentFormat, err := r.Uint64()
	if err != nil {
		return d, err
	}
	numberOfFormats, err := r.Uint16()
	if err != nil {
		return d, err
	}
	avbInterfaceIndex, err := r.Uint16()
	if err != nil {
		return d, err
	}
	bufferLength, err := r.Uint32()
	if err != nil {
		return d, err
	}

	d.ObjectName = objectName
	d.LocalizedDescription = localizedDescription
	d.ClockDomainIndex = entity.ClockDomainIndex(clockDomainIndex)
	d.StreamFlags = streamFlags
	d.CurrentFormat = entity.StreamFormat(currentFormat)
	d.AvbInterfaceIndex = entity.AvbInterfaceIndex(avbInterfaceIndex)
	d.BufferLength = bufferLength
	d.Formats = make([]entity.StreamFormat, 0, numberOfFormats)
	for i := uint16(0); i < numberOfFormats; i++ {
		f, err := r.Uint64()
		if err != nil {
			return d, err
		}
		d.Formats = append(d.Formats, entity.StreamFormat(f))
	}
	return d, nil
}
