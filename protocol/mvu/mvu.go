// Package mvu implements the Milan Vendor-Unique sub-protocol carried
// inside AECP frames bearing the Milan OUI-24 (90:E0:F0): currently just
// GET_MILAN_INFO, the capability probe a controller issues to tell a
// Milan-conformant entity apart from a plain IEEE 1722.1 one.
package mvu

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// CommandType is the closed MVU command/response type, carried the same
// way AEM's CommandType is (Milan Clause 7.4).
type CommandType uint16

const (
	GetMilanInfo CommandType = 0x0000
)

func (c CommandType) String() string {
	switch c {
	case GetMilanInfo:
		return "GetMilanInfo"
	default:
		return "Unknown"
	}
}

// FeaturesFlags is the Milan feature bitmap returned by GET_MILAN_INFO.
type FeaturesFlags uint32

const (
	FeaturesNone               FeaturesFlags = 0
	FeatureRedundancy          FeaturesFlags = 1 << 0
)

func (f FeaturesFlags) Has(flag FeaturesFlags) bool { return f&flag == flag }

// GetMilanInfoCommandPayloadSize is the wire size of a GET_MILAN_INFO
// command payload (Milan Clause 7.4.1).
const GetMilanInfoCommandPayloadSize = 2

// SerializeGetMilanInfoCommand builds a GET_MILAN_INFO command payload.
func SerializeGetMilanInfoCommand(configurationIndex entity.ConfigurationIndex) []byte {
	w := wire.NewWriter(GetMilanInfoCommandPayloadSize)
	w.Uint16(uint16(configurationIndex))
	return w.Bytes()
}

// GetMilanInfoResponsePayloadSize is the wire size of a GET_MILAN_INFO
// response payload.
const GetMilanInfoResponsePayloadSize = 2 + 4 + 4 + 4

// DeserializeGetMilanInfoCommand parses a GET_MILAN_INFO command
// payload, used by a test double acting as a Milan-conformant responder.
func DeserializeGetMilanInfoCommand(payload []byte) (entity.ConfigurationIndex, error) {
	r := wire.NewReader(payload)
	ci, err := r.Uint16()
	if err != nil {
		return 0, err
	}
	return entity.ConfigurationIndex(ci), nil
}

// SerializeGetMilanInfoResponse builds a GET_MILAN_INFO response
// payload, used by a test double acting as a Milan-conformant responder.
func SerializeGetMilanInfoResponse(configurationIndex entity.ConfigurationIndex, info entity.MilanInfo) []byte {
	w := wire.NewWriter(GetMilanInfoResponsePayloadSize)
	w.Uint16(uint16(configurationIndex))
	w.Uint32(info.ProtocolVersion)
	w.Uint32(info.FeaturesFlags)
	w.Uint32(info.CertificationVersion)
	return w.Bytes()
}

// GetMilanInfoResponse is the typed GET_MILAN_INFO response payload.
type GetMilanInfoResponse struct {
	ConfigurationIndex entity.ConfigurationIndex
	Info               entity.MilanInfo
}

// DeserializeGetMilanInfoResponse parses a GET_MILAN_INFO response
// payload.
func DeserializeGetMilanInfoResponse(payload []byte) (GetMilanInfoResponse, error) {
	r := wire.NewReader(payload)
	var resp GetMilanInfoResponse
	ci, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	protocolVersion, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	featuresFlags, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	certificationVersion, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	resp.ConfigurationIndex = entity.ConfigurationIndex(ci)
	resp.Info.ProtocolVersion = protocolVersion
	resp.Info.FeaturesFlags = featuresFlags
	resp.Info.CertificationVersion = certificationVersion
	return resp, nil
}
