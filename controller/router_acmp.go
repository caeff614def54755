package controller

import (
	"github.com/opd-ai/avdeccore/protocol/acmp"
	"github.com/opd-ai/avdeccore/transport"
)

// routeAcmpSniffed dispatches an ACMP response frame this controller did
// not originate to the matching sniffed-notification Delegate method
// (spec.md §8 scenario 5). The Delegate receives only the decoded PDU:
// the response's status is neither checked nor passed on, so a failed
// response is delivered the same way as a successful one.
func (c *Controller) routeAcmpSniffed(frame transport.Frame) {
	pdu, err := acmp.Deserialize(frame.Payload)
	if err != nil {
		c.log.WithError(err).Debug("malformed sniffed ACMP payload")
		return
	}
	d := c.currentDelegate()
	if d == nil {
		return
	}
	switch acmp.MessageType(frame.MessageType) {
	case acmp.ConnectTxResponse:
		safeCall(func() { d.OnControllerConnectResponseSniffed(pdu) })
	case acmp.DisconnectTxResponse:
		safeCall(func() { d.OnControllerDisconnectResponseSniffed(pdu) })
	case acmp.ConnectRxResponse:
		safeCall(func() { d.OnListenerConnectResponseSniffed(pdu) })
	case acmp.DisconnectRxResponse:
		safeCall(func() { d.OnListenerDisconnectResponseSniffed(pdu) })
	case acmp.GetTxStateResponse:
		safeCall(func() { d.OnGetTalkerStreamStateResponseSniffed(pdu) })
	case acmp.GetRxStateResponse:
		safeCall(func() { d.OnGetListenerStreamStateResponseSniffed(pdu) })
	}
}
