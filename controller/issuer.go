package controller

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
	"github.com/opd-ai/avdeccore/protocol/aecp"
	"github.com/opd-ai/avdeccore/protocol/aem"
	"github.com/opd-ai/avdeccore/status"
	"github.com/opd-ai/avdeccore/transport"
)

// aemHeaderSize is the 16-bit AEM header word (Unsolicited bit + CommandType)
// every AEM command/response payload carries ahead of its body (IEEE
// 1722.1 Clause 9.2.1.1.5).
const aemHeaderSize = 2

// buildAemPayload prepends the AEM header word to a serialized command
// body.
func buildAemPayload(cmd aem.CommandType, body []byte) []byte {
	w := wire.NewWriter(aemHeaderSize + len(body))
	w.Uint16(aem.PackHeader(false, cmd))
	w.Raw(body)
	return w.Bytes()
}

// splitAemPayload separates an AEM payload into the Unsolicited flag and
// CommandType of its header word and the body that follows. It does not
// compare the CommandType with the command that was issued.
func splitAemPayload(payload []byte) (unsolicited bool, cmd aem.CommandType, body []byte, err error) {
	r := wire.NewReader(payload)
	header, err := r.Uint16()
	if err != nil {
		return false, 0, nil, err
	}
	unsolicited, cmd = aem.UnpackHeader(header)
	return unsolicited, cmd, r.Rest(), nil
}

// milanHeaderSize is the Milan OUI-24 plus the 16-bit MVU CommandType
// every MVU command/response payload carries ahead of its body.
const milanHeaderSize = 3 + 2

func buildMvuPayload(cmd uint16, body []byte) []byte {
	w := wire.NewWriter(milanHeaderSize + len(body))
	w.Raw(transport.MilanOUI[:])
	w.Uint16(cmd)
	w.Raw(body)
	return w.Bytes()
}

func splitMvuPayload(payload []byte) (body []byte, err error) {
	r := wire.NewReader(payload)
	if _, err := r.Bytes(3); err != nil { // OUI, unchecked: only one vendor-unique scheme is wired up
		return nil, err
	}
	if _, err := r.Uint16(); err != nil { // CommandType, always GetMilanInfo today
		return nil, err
	}
	return r.Rest(), nil
}

// issueAem issues an AEM command against targetID and invokes onResponse
// exactly once: with a core-local status and a nil body on cache miss
// or transport failure, or with the response Frame's AEM body and its
// wire status on completion (spec.md §4.4).
func (c *Controller) issueAem(targetID entity.ID, cmd aem.CommandType, body []byte, onResponse func(body []byte, st status.AemStatus)) {
	mac, ok := c.macFor(targetID)
	if !ok {
		onResponse(nil, status.AemUnknownEntity)
		return
	}
	frame := transport.Frame{
		SourceMac:      c.iface.MacAddress(),
		DestinationMac: mac,
		Subtype:        transport.SubtypeAecp,
		MessageType:    uint8(aecp.AemCommand),
		Payload:        buildAemPayload(cmd, body),
	}
	result := c.iface.SendAecpCommand(frame, mac, func(resp transport.Frame, terr transport.Error) {
		if terr != transport.ErrorNone {
			onResponse(nil, transportErrorToAemStatus(terr))
			return
		}
		_, _, respBody, err := splitAemPayload(resp.Payload)
		if err != nil {
			onResponse(nil, status.AemProtocolError)
			return
		}
		onResponse(respBody, status.AemStatus(resp.Status))
	})
	if result != transport.ErrorNone {
		onResponse(nil, transportErrorToAemStatus(result))
	}
}

// issueAa issues an Address Access command against targetID.
func (c *Controller) issueAa(targetID entity.ID, body []byte, onResponse func(body []byte, st status.AaStatus)) {
	mac, ok := c.macFor(targetID)
	if !ok {
		onResponse(nil, status.AaUnknownEntity)
		return
	}
	frame := transport.Frame{
		SourceMac:      c.iface.MacAddress(),
		DestinationMac: mac,
		Subtype:        transport.SubtypeAecp,
		MessageType:    uint8(aecp.AddressAccessCommand),
		Payload:        body,
	}
	result := c.iface.SendAecpCommand(frame, mac, func(resp transport.Frame, terr transport.Error) {
		if terr != transport.ErrorNone {
			onResponse(nil, transportErrorToAaStatus(terr))
			return
		}
		onResponse(resp.Payload, status.AaStatus(resp.Status))
	})
	if result != transport.ErrorNone {
		onResponse(nil, transportErrorToAaStatus(result))
	}
}

// issueMvu issues a Milan Vendor-Unique command against targetID.
func (c *Controller) issueMvu(targetID entity.ID, cmd uint16, body []byte, onResponse func(body []byte, st status.MvuStatus)) {
	mac, ok := c.macFor(targetID)
	if !ok {
		onResponse(nil, status.MvuUnknownEntity)
		return
	}
	frame := transport.Frame{
		SourceMac:      c.iface.MacAddress(),
		DestinationMac: mac,
		Subtype:        transport.SubtypeAecp,
		MessageType:    uint8(aecp.AvdeccUniqueCommand),
		Payload:        buildMvuPayload(cmd, body),
	}
	result := c.iface.SendAecpCommand(frame, mac, func(resp transport.Frame, terr transport.Error) {
		if terr != transport.ErrorNone {
			onResponse(nil, transportErrorToMvuStatus(terr))
			return
		}
		respBody, err := splitMvuPayload(resp.Payload)
		if err != nil {
			onResponse(nil, status.MvuProtocolError)
			return
		}
		onResponse(respBody, status.MvuStatus(resp.Status))
	})
	if result != transport.ErrorNone {
		onResponse(nil, transportErrorToMvuStatus(result))
	}
}

// issueAcmp multicasts an ACMP command. Unlike AEM/AA/MVU, ACMP has no
// discovery-cache lookup: the command is multicast and the talker/
// listener addressing lives inside the PDU fields themselves (spec.md
// §4.4).
func (c *Controller) issueAcmp(messageType uint8, body []byte, onResponse func(body []byte, st status.ControlStatus)) {
	frame := transport.Frame{
		SourceMac:   c.iface.MacAddress(),
		Subtype:     transport.SubtypeAcmp,
		MessageType: messageType,
		Payload:     body,
	}
	result := c.iface.SendAcmpCommand(frame, func(resp transport.Frame, terr transport.Error) {
		if terr != transport.ErrorNone {
			onResponse(nil, transportErrorToControlStatus(terr))
			return
		}
		onResponse(resp.Payload, status.ControlStatus(resp.Status))
	})
	if result != transport.ErrorNone {
		onResponse(nil, transportErrorToControlStatus(result))
	}
}
