package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// getAudioMapHeaderSize is the size of a GET_AUDIO_MAP command payload
// (IEEE 1722.1 Clause 7.4.44.1). The response header ahead of the mapping
// table is larger: it adds NumberOfMaps, the mapping count and a reserved
// word.
const getAudioMapHeaderSize = 2 + 2 + 2

// SerializeGetAudioMapCommand builds a GET_AUDIO_MAP command payload.
// mapIndex paginates the mapping table; a responder whose mapping count
// exceeds what fits in one PDU returns NumberOfMaps > 1 and the caller
// must reissue the command incrementing mapIndex (spec.md §4.1 edge
// case: partial reads never hallucinate a final page).
func SerializeGetAudioMapCommand(descriptorType entity.DescriptorType, descriptorIndex entity.StreamPortIndex, mapIndex uint16) []byte {
	w := wire.NewWriter(getAudioMapHeaderSize)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Uint16(mapIndex)
	return w.Bytes()
}

// AudioMapResponse is the typed GET_AUDIO_MAP response payload.
type AudioMapResponse struct {
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.StreamPortIndex
	MapIndex        uint16
	NumberOfMaps    uint16
	Mappings        []entity.AudioMapping
}

// DeserializeAudioMapResponse parses a GET_AUDIO_MAP response payload.
func DeserializeAudioMapResponse(payload []byte) (AudioMapResponse, error) {
	r := wire.NewReader(payload)
	var resp AudioMapResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	mapIndex, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	numberOfMaps, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	numberOfMappings, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	if _, err := r.Uint16(); err != nil { // reserved
		return resp, err
	}

	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.StreamPortIndex(di)
	resp.MapIndex = mapIndex
	resp.NumberOfMaps = numberOfMaps
	resp.Mappings = make([]entity.AudioMapping, 0, numberOfMappings)
	for i := uint16(0); i < numberOfMappings; i++ {
		m, err := deserializeAudioMapping(r)
		if err != nil {
			return resp, err
		}
		resp.Mappings = append(resp.Mappings, m)
	}
	return resp, nil
}

func deserializeAudioMapping(r *wire.Reader) (entity.AudioMapping, error) {
	var m entity.AudioMapping
	streamIndex, err := r.Uint16()
	if err != nil {
		return m, err
	}
	streamChannel, err := r.Uint16()
	if err != nil {
		return m, err
	}
	clusterOffset, err := r.Uint16()
	if err != nil {
		return m, err
	}
	clusterChannel, err := r.Uint16()
	if err != nil {
		return m, err
	}
	m.StreamIndex = entity.StreamIndex(streamIndex)
	m.StreamChannel = streamChannel
	m.ClusterOffset = clusterOffset
	m.ClusterChannel = clusterChannel
	return m, nil
}

func serializeAudioMapping(w *wire.Writer, m entity.AudioMapping) {
	w.Uint16(uint16(m.StreamIndex))
	w.Uint16(m.StreamChannel)
	w.Uint16(m.ClusterOffset)
	w.Uint16(m.ClusterChannel)
}

// addOrRemoveAudioMappingsHeaderSize is the fixed ADD/REMOVE_AUDIO_MAPPINGS
// command header ahead of the mapping table (Clause 7.4.45.1, 7.4.46.1).
const addOrRemoveAudioMappingsHeaderSize = 2 + 2 + 2 + 2

// SerializeAddAudioMappingsCommand builds an ADD_AUDIO_MAPPINGS command
// payload.
func SerializeAddAudioMappingsCommand(descriptorType entity.DescriptorType, descriptorIndex entity.StreamPortIndex, mappings []entity.AudioMapping) []byte {
	return serializeAudioMappingsCommand(descriptorType, descriptorIndex, mappings)
}

// SerializeRemoveAudioMappingsCommand builds a REMOVE_AUDIO_MAPPINGS
// command payload; the two commands share this shape and are
// distinguished only by AemCommandType.
func SerializeRemoveAudioMappingsCommand(descriptorType entity.DescriptorType, descriptorIndex entity.StreamPortIndex, mappings []entity.AudioMapping) []byte {
	return serializeAudioMappingsCommand(descriptorType, descriptorIndex, mappings)
}

func serializeAudioMappingsCommand(descriptorType entity.DescriptorType, descriptorIndex entity.StreamPortIndex, mappings []entity.AudioMapping) []byte {
	w := wire.NewWriter(addOrRemoveAudioMappingsHeaderSize + len(mappings)*8)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Uint16(uint16(len(mappings)))
	w.Uint16(0) // reserved
	for _, m := range mappings {
		serializeAudioMapping(w, m)
	}
	return w.Bytes()
}

// AudioMappingsResponse is the typed ADD_AUDIO_MAPPINGS /
// REMOVE_AUDIO_MAPPINGS response payload.
type AudioMappingsResponse struct {
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.StreamPortIndex
	Mappings        []entity.AudioMapping
}

// DeserializeAudioMappingsResponse parses an ADD_AUDIO_MAPPINGS or
// REMOVE_AUDIO_MAPPINGS response payload (an echo of the command).
func DeserializeAudioMappingsResponse(payload []byte) (AudioMappingsResponse, error) {
	r := wire.NewReader(payload)
	var resp AudioMappingsResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	count, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	if _, err := r.Uint16(); err != nil { // reserved
		return resp, err
	}
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.StreamPortIndex(di)
	resp.Mappings = make([]entity.AudioMapping, 0, count)
	for i := uint16(0); i < count; i++ {
		m, err := deserializeAudioMapping(r)
		if err != nil {
			return resp, err
		}
		resp.Mappings = append(resp.Mappings, m)
	}
	return resp, nil
}
