package controller

import (
	"github.com/opd-ai/avdeccore/protocol/aecp"
	"github.com/opd-ai/avdeccore/protocol/aem"
	"github.com/opd-ai/avdeccore/status"
	"github.com/opd-ai/avdeccore/transport"
)

// handleUnhandledAecpCommand answers an AECP command this controller
// received rather than issued. A controller capability only ever
// consumes CONTROLLER_AVAILABLE locally: every other inbound command
// belongs to an entity-model implementation this module doesn't provide
// (spec.md §4.7). A self-addressed command (one this controller itself
// would have sent) is a responder misbehaving and is dropped rather than
// answered, since replying would race the real command issuer.
func (c *Controller) handleUnhandledAecpCommand(frame transport.Frame) {
	if frame.SourceMac.String() == c.iface.MacAddress().String() {
		c.log.Debug("dropping self-addressed AECP command")
		return
	}
	if aecp.MessageType(frame.MessageType) != aecp.AemCommand {
		return
	}
	_, cmd, _, err := splitAemPayload(frame.Payload)
	if err != nil {
		return
	}
	if cmd != aem.ControllerAvailable {
		c.log.WithField("command", cmd.String()).Debug("no local handler for inbound AEM command")
		return
	}
	response := transport.Frame{
		SourceMac:      frame.DestinationMac,
		DestinationMac: frame.SourceMac,
		Subtype:        transport.SubtypeAecp,
		MessageType:    uint8(aecp.AemResponse),
		Status:         uint8(status.AemSuccess),
		SequenceID:     frame.SequenceID,
		Payload:        buildAemPayload(aem.ControllerAvailable, nil),
	}
	c.iface.SendAecpResponse(response, frame.SourceMac)
}
