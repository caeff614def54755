package controller

import (
	"net"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/avdeccore/discovery"
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/status"
	"github.com/opd-ai/avdeccore/transport"
)

// LenientAemPayloads names the policy for a non-success AEM response whose
// payload is too short to decode: false (the default) for
// status.AemProtocolError, true for the wire status with a zero-valued
// result. No code in this package reads it: issueAem reports
// status.AemProtocolError for any response whose AEM header cannot be
// read, whatever this variable holds, and no router here decodes
// solicited response bodies.
var LenientAemPayloads = false

// Controller is the AVDECC controller capability core: it owns a
// discovery cache and loop over one transport.Interface, issues AECP/AA/
// MVU/ACMP commands on behalf of a host, and routes every response or
// notification arriving on that interface to either a solicited
// completion handler or the registered Delegate.
//
// Constructing a Controller starts its discovery loop; Shutdown stops it
// and detaches from the transport. A Controller does not own the
// transport.Interface it's given — matching spec.md §5's resource
// lifecycle note that the capability core never owns its protocol
// interface.
type Controller struct {
	selfID entity.ID
	iface  transport.Interface
	cache  *discovery.Cache
	loop   *discovery.Loop
	log    *logrus.Entry

	// delegate is swapped behind atomic.Pointer rather than guarded by a
	// mutex: spec.md §9's open question about the shared mutable delegate
	// pointer is left unresolved by the original source, and an atomic
	// pointer swap is the minimum safe Go rendition that doesn't invent a
	// stronger discipline (lock, epoch, ...) the source never specified.
	delegate atomic.Pointer[Delegate]
}

// NewController constructs a Controller addressing selfID (the local
// entity this controller speaks as) over iface, registers itself as an
// observer of iface, and starts the discovery loop.
func NewController(selfID entity.ID, iface transport.Interface) *Controller {
	c := &Controller{
		selfID: selfID,
		iface:  iface,
		cache:  discovery.NewCache(),
		loop:   discovery.NewLoop(iface),
		log:    logrus.WithField("component", "controller.Controller"),
	}
	iface.AddObserver(c)
	c.loop.Start()
	return c
}

// SetDelegate installs delegate as the receiver of every lifecycle,
// unsolicited, and sniffed notification this controller produces. Passing
// nil detaches the current delegate.
func (c *Controller) SetDelegate(delegate Delegate) {
	if delegate == nil {
		c.delegate.Store(nil)
		return
	}
	c.delegate.Store(&delegate)
}

func (c *Controller) currentDelegate() Delegate {
	p := c.delegate.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Cache exposes the discovery cache this controller maintains, for a host
// that wants to enumerate currently-known entities without going through
// a command.
func (c *Controller) Cache() *discovery.Cache { return c.cache }

// Shutdown stops the discovery loop and detaches from the transport
// interface. It does not shut the interface down — the controller
// doesn't own it.
func (c *Controller) Shutdown() {
	c.loop.Stop()
	c.iface.RemoveObserver(c)
}

// macFor resolves targetID to a destination MAC via the discovery cache,
// reporting false on a cache miss (spec.md §5's linearizability
// guarantee: a command issued after an EntityOffline observation resolves
// UnknownEntity).
func (c *Controller) macFor(targetID entity.ID) (net.HardwareAddr, bool) {
	snap, ok := c.cache.Lookup(targetID)
	if !ok {
		return nil, false
	}
	return snap.AnyMacAddress()
}

// --- transport.Observer ---

func (c *Controller) OnTransportError(iface transport.Interface) {
	if d := c.currentDelegate(); d != nil {
		safeCall(func() { d.OnTransportError() })
	}
}

func (c *Controller) OnAdpEntityAvailable(iface transport.Interface, senderMac net.HardwareAddr, entityID entity.ID, snapshot entity.Snapshot) {
	if entityID == c.selfID {
		return
	}
	_, existed := c.cache.Lookup(entityID)
	c.cache.InsertOrReplace(c.selfID, snapshot)
	d := c.currentDelegate()
	if d == nil {
		return
	}
	if existed {
		safeCall(func() { d.OnEntityUpdate(entityID, snapshot) })
	} else {
		safeCall(func() { d.OnEntityOnline(entityID, snapshot) })
	}
}

func (c *Controller) OnAdpEntityDeparting(iface transport.Interface, senderMac net.HardwareAddr, entityID entity.ID) {
	removed := c.cache.Remove(entityID)
	if !removed {
		return
	}
	if d := c.currentDelegate(); d != nil {
		safeCall(func() { d.OnEntityOffline(entityID) })
	}
}

func (c *Controller) OnAecpCommand(iface transport.Interface, frame transport.Frame) {
	c.handleUnhandledAecpCommand(frame)
}

func (c *Controller) OnAecpUnsolicitedResponse(iface transport.Interface, frame transport.Frame) {
	entityID, ok := c.cache.LookupByMac(frame.SourceMac)
	if !ok {
		return
	}
	c.routeAecpResponse(frame, entityID)
}

func (c *Controller) OnAcmpSniffedCommand(iface transport.Interface, frame transport.Frame) {
	// Sniffed commands carry no completion surface; only sniffed
	// responses are meaningful to a bystander controller (spec.md §8
	// scenario 5).
}

func (c *Controller) OnAcmpSniffedResponse(iface transport.Interface, frame transport.Frame) {
	c.routeAcmpSniffed(frame)
}

// safeCall guards a Delegate invocation: failures in callback user code
// must not propagate into the transport's receive path (spec.md §7).
func safeCall(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// transportErrorToAemStatus maps a transport-level Error to the
// corresponding core-local AemStatus kind (spec.md §7: TimedOut/Canceled/
// TransportError originate in the protocol interface).
func transportErrorToAemStatus(err transport.Error) status.AemStatus {
	switch err {
	case transport.ErrorTimeout:
		return status.AemTimedOut
	case transport.ErrorTransport, transport.ErrorInterfaceNotFound, transport.ErrorInterfaceInvalid:
		return status.AemTransportError
	default:
		return status.AemInternalError
	}
}

func transportErrorToAaStatus(err transport.Error) status.AaStatus {
	switch err {
	case transport.ErrorTimeout:
		return status.AaTimedOut
	case transport.ErrorTransport, transport.ErrorInterfaceNotFound, transport.ErrorInterfaceInvalid:
		return status.AaTransportError
	default:
		return status.AaInternalError
	}
}

func transportErrorToMvuStatus(err transport.Error) status.MvuStatus {
	switch err {
	case transport.ErrorTimeout:
		return status.MvuTimedOut
	case transport.ErrorTransport, transport.ErrorInterfaceNotFound, transport.ErrorInterfaceInvalid:
		return status.MvuTransportError
	default:
		return status.MvuInternalError
	}
}

func transportErrorToControlStatus(err transport.Error) status.ControlStatus {
	switch err {
	case transport.ErrorTimeout:
		return status.ControlTimedOut
	case transport.ErrorTransport, transport.ErrorInterfaceNotFound, transport.ErrorInterfaceInvalid:
		return status.ControlTransportError
	default:
		return status.ControlInternalError
	}
}
