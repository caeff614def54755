package transport

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/protocol/aecp"
	"github.com/opd-ai/avdeccore/protocol/adp"
)

// errShortAdpPayload is returned when an ADP frame arrives without
// enough bytes to carry the leading entity-ID field VirtualLink expects.
var errShortAdpPayload = errors.New("transport: short ADP payload")

// VirtualNetwork is an in-memory Ethernet segment: every VirtualLink
// attached to the same VirtualNetwork can reach every other by MAC
// address, and every multicast send fans out to every other attached
// link, without opening a real socket.
type VirtualNetwork struct {
	mu    sync.Mutex
	links map[string]*VirtualLink // keyed by MAC address string
}

// NewVirtualNetwork returns an empty in-memory Ethernet segment.
func NewVirtualNetwork() *VirtualNetwork {
	return &VirtualNetwork{links: make(map[string]*VirtualLink)}
}

func (n *VirtualNetwork) attach(link *VirtualLink) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.links[link.mac.String()] = link
}

func (n *VirtualNetwork) detach(link *VirtualLink) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.links, link.mac.String())
}

func (n *VirtualNetwork) deliver(dest net.HardwareAddr, frame Frame) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if isBroadcastMac(dest) {
		for _, l := range n.links {
			if l.mac.String() == frame.SourceMac.String() {
				continue
			}
			l.receive(frame)
		}
		return
	}
	if l, ok := n.links[dest.String()]; ok {
		l.receive(frame)
	}
}

func isBroadcastMac(mac net.HardwareAddr) bool {
	return mac.String() == MulticastMacAddress.String()
}

// VirtualLink is the in-memory reference Interface implementation: one
// per simulated AVB_INTERFACE, attached to a VirtualNetwork shared by
// every other simulated entity in the test topology.
type VirtualLink struct {
	network        *VirtualNetwork
	mac            net.HardwareAddr
	interfaceIndex entity.AvbInterfaceIndex
	log            *logrus.Entry

	mu         sync.Mutex
	observers  []Observer
	pendingAecp map[pendingKey]pendingAecpCommand
	pendingAcmp map[pendingKey]pendingAcmpCommand
	nextSeq    uint16
	shutdown   bool
}

type pendingKey struct {
	mac string
	seq uint16
}

type pendingAecpCommand struct {
	onResult AecpResultHandler
	timer    *time.Timer
}

type pendingAcmpCommand struct {
	onResult AcmpResultHandler
	timer    *time.Timer
}

// aecpCommandTimeout mirrors the AVDECC-mandated AECP command timeout
// (IEEE 1722.1 Clause 9.2.1.2.5): a responder that doesn't answer within
// this window is presumed unreachable.
const aecpCommandTimeout = 250 * time.Millisecond

// acmpCommandTimeout mirrors the longer ACMP command timeout (IEEE
// 1722.1 Clause 8.2.2): connection setup waits on SRP reservations and
// gets more time than a plain AECP round trip.
const acmpCommandTimeout = 2 * time.Second

// NewVirtualLink attaches a new simulated interface to network with the
// given MAC address and AVB_INTERFACE index.
func NewVirtualLink(network *VirtualNetwork, mac net.HardwareAddr, interfaceIndex entity.AvbInterfaceIndex) *VirtualLink {
	link := &VirtualLink{
		network:        network,
		mac:            mac,
		interfaceIndex: interfaceIndex,
		log:            logrus.WithFields(logrus.Fields{"component": "transport.VirtualLink", "mac": mac.String()}),
		pendingAecp:    make(map[pendingKey]pendingAecpCommand),
		pendingAcmp:    make(map[pendingKey]pendingAcmpCommand),
	}
	network.attach(link)
	return link
}

func (l *VirtualLink) MacAddress() net.HardwareAddr { return l.mac }

func (l *VirtualLink) InterfaceIndex() entity.AvbInterfaceIndex { return l.interfaceIndex }

func (l *VirtualLink) AddObserver(observer Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, observer)
}

func (l *VirtualLink) RemoveObserver(observer Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, o := range l.observers {
		if o == observer {
			l.observers = append(l.observers[:i], l.observers[i+1:]...)
			return
		}
	}
}

func (l *VirtualLink) Shutdown() {
	l.mu.Lock()
	if l.shutdown {
		l.mu.Unlock()
		return
	}
	l.shutdown = true
	pendingAecp := l.pendingAecp
	pendingAcmp := l.pendingAcmp
	for _, p := range pendingAecp {
		p.timer.Stop()
	}
	for _, p := range pendingAcmp {
		p.timer.Stop()
	}
	l.pendingAecp = make(map[pendingKey]pendingAecpCommand)
	l.pendingAcmp = make(map[pendingKey]pendingAcmpCommand)
	l.mu.Unlock()

	for _, p := range pendingAecp {
		p.onResult(Frame{}, ErrorInterfaceInvalid)
	}
	for _, p := range pendingAcmp {
		p.onResult(Frame{}, ErrorInterfaceInvalid)
	}
	l.network.detach(l)
}

func (l *VirtualLink) DiscoverRemoteEntities() Error {
	return l.broadcast(Frame{
		SourceMac:      l.mac,
		DestinationMac: MulticastMacAddress,
		Subtype:        SubtypeAdp,
		MessageType:    uint8(adp.EntityDiscover),
	})
}

func (l *VirtualLink) DiscoverRemoteEntity(entityID entity.ID) Error {
	// The virtual transport has no per-entity-ID addressing below the
	// ADP layer (the real network doesn't either — ADP is always
	// multicast); the controller distinguishes responses by EntityID
	// once decoded. The targeted entityID still rides along as the
	// payload so a future responder could choose to reply only to it.
	payload := make([]byte, 8)
	id := uint64(entityID)
	for i := 7; i >= 0; i-- {
		payload[i] = byte(id)
		id >>= 8
	}
	return l.broadcast(Frame{
		SourceMac:      l.mac,
		DestinationMac: MulticastMacAddress,
		Subtype:        SubtypeAdp,
		MessageType:    uint8(adp.EntityDiscover),
		Payload:        payload,
	})
}

func (l *VirtualLink) broadcast(frame Frame) Error {
	l.mu.Lock()
	shutdown := l.shutdown
	l.mu.Unlock()
	if shutdown {
		return ErrorInterfaceInvalid
	}
	l.network.deliver(MulticastMacAddress, frame)
	return ErrorNone
}

func (l *VirtualLink) SendAecpCommand(frame Frame, macAddress net.HardwareAddr, onResult AecpResultHandler) Error {
	l.mu.Lock()
	if l.shutdown {
		l.mu.Unlock()
		return ErrorInterfaceInvalid
	}
	seq := l.nextSeq
	l.nextSeq++
	frame.SourceMac = l.mac
	frame.DestinationMac = macAddress
	frame.Subtype = SubtypeAecp
	frame.SequenceID = seq

	key := pendingKey{mac: macAddress.String(), seq: seq}
	timer := time.AfterFunc(aecpCommandTimeout, func() { l.expireAecp(key) })
	l.pendingAecp[key] = pendingAecpCommand{onResult: onResult, timer: timer}
	l.mu.Unlock()

	l.network.deliver(macAddress, frame)
	return ErrorNone
}

func (l *VirtualLink) SendAecpResponse(frame Frame, macAddress net.HardwareAddr) Error {
	l.mu.Lock()
	shutdown := l.shutdown
	l.mu.Unlock()
	if shutdown {
		return ErrorInterfaceInvalid
	}
	frame.SourceMac = l.mac
	frame.DestinationMac = macAddress
	frame.Subtype = SubtypeAecp
	l.network.deliver(macAddress, frame)
	return ErrorNone
}

func (l *VirtualLink) SendAcmpCommand(frame Frame, onResult AcmpResultHandler) Error {
	l.mu.Lock()
	if l.shutdown {
		l.mu.Unlock()
		return ErrorInterfaceInvalid
	}
	seq := l.nextSeq
	l.nextSeq++
	frame.SourceMac = l.mac
	frame.DestinationMac = MulticastMacAddress
	frame.Subtype = SubtypeAcmp
	frame.SequenceID = seq

	key := pendingKey{mac: MulticastMacAddress.String(), seq: seq}
	timer := time.AfterFunc(acmpCommandTimeout, func() { l.expireAcmp(key) })
	l.pendingAcmp[key] = pendingAcmpCommand{onResult: onResult, timer: timer}
	l.mu.Unlock()

	l.network.deliver(MulticastMacAddress, frame)
	return ErrorNone
}

func (l *VirtualLink) SendAcmpResponse(frame Frame) Error {
	l.mu.Lock()
	shutdown := l.shutdown
	l.mu.Unlock()
	if shutdown {
		return ErrorInterfaceInvalid
	}
	frame.SourceMac = l.mac
	frame.DestinationMac = MulticastMacAddress
	frame.Subtype = SubtypeAcmp
	l.network.deliver(MulticastMacAddress, frame)
	return ErrorNone
}

func (l *VirtualLink) expireAecp(key pendingKey) {
	l.mu.Lock()
	p, ok := l.pendingAecp[key]
	if ok {
		delete(l.pendingAecp, key)
	}
	l.mu.Unlock()
	if ok {
		p.onResult(Frame{}, ErrorTimeout)
	}
}

func (l *VirtualLink) expireAcmp(key pendingKey) {
	l.mu.Lock()
	p, ok := l.pendingAcmp[key]
	if ok {
		delete(l.pendingAcmp, key)
	}
	l.mu.Unlock()
	if ok {
		p.onResult(Frame{}, ErrorTimeout)
	}
}

// receive is invoked by the owning VirtualNetwork when a frame is
// addressed to this link, either directly or via multicast fan-out.
func (l *VirtualLink) receive(frame Frame) {
	switch frame.Subtype {
	case SubtypeAdp:
		l.receiveAdp(frame)
	case SubtypeAecp:
		l.receiveAecp(frame)
	case SubtypeAcmp:
		l.receiveAcmp(frame)
	}
}

func (l *VirtualLink) receiveAdp(frame Frame) {
	l.log.WithField("messageType", frame.MessageType).Trace("received ADP frame")

	msgType := adp.MessageType(frame.MessageType)
	if msgType == adp.EntityDiscover {
		// A discovery probe, not an advertisement; nothing to decode or
		// hand to observers.
		return
	}

	l.mu.Lock()
	observers := append([]Observer(nil), l.observers...)
	l.mu.Unlock()
	if len(observers) == 0 {
		return
	}

	if msgType == adp.EntityDeparting {
		entityID, err := entityIDFromPayload(frame.Payload)
		if err != nil {
			l.log.WithError(err).Warn("malformed ADP EntityDeparting frame")
			return
		}
		for _, o := range observers {
			o.OnAdpEntityDeparting(l, frame.SourceMac, entityID)
		}
		return
	}

	entityID, err := entityIDFromPayload(frame.Payload)
	if err != nil {
		l.log.WithError(err).Warn("malformed ADP EntityAvailable frame: missing entity ID")
		return
	}
	pdu, err := adp.Deserialize(frame.Payload[8:])
	if err != nil {
		l.log.WithError(err).Warn("malformed ADP EntityAvailable frame")
		return
	}
	snapshot := snapshotFromAdpPdu(entityID, l.interfaceIndex, frame.SourceMac, pdu, validTimeFromFrame(frame))
	for _, o := range observers {
		o.OnAdpEntityAvailable(l, frame.SourceMac, entityID, snapshot)
	}
}

// entityIDFromPayload extracts the advertising entity's ID. In a real
// deployment this rides in the common AVTPDU header (the stream_id
// field, reinterpreted as an EntityID for ADP); the virtual transport
// carries it as the leading 8 bytes of Payload for the same reason
// Frame keeps the sub-protocol envelope and body separate.
func entityIDFromPayload(payload []byte) (entity.ID, error) {
	if len(payload) < 8 {
		return entity.NullID, errShortAdpPayload
	}
	var id uint64
	for i := 0; i < 8; i++ {
		id = id<<8 | uint64(payload[i])
	}
	return entity.ID(id), nil
}

func snapshotFromAdpPdu(entityID entity.ID, ifaceIndex entity.AvbInterfaceIndex, senderMac net.HardwareAddr, pdu adp.PDU, validTime time.Duration) entity.Snapshot {
	snap := entity.Snapshot{
		EntityID:               entityID,
		EntityModelID:          entity.ID(pdu.EntityModelID),
		EntityCapabilities:     pdu.EntityCapabilities,
		TalkerStreamSources:    pdu.TalkerStreamSources,
		TalkerCapabilities:     pdu.TalkerCapabilities,
		ListenerStreamSinks:    pdu.ListenerStreamSinks,
		ListenerCapabilities:   pdu.ListenerCapabilities,
		ControllerCapabilities: pdu.ControllerCapabilities,
		InterfacesInfo:         map[entity.AvbInterfaceIndex]entity.InterfaceInfo{},
	}
	if pdu.EntityCapabilities.Has(entity.EntityCapAemIdentifyControlIndex) {
		idx := pdu.IdentifyControlIndex
		snap.IdentifyControlIndex = &idx
	}
	if pdu.AssociationID != entity.NullID {
		assoc := pdu.AssociationID
		snap.AssociationID = &assoc
	}
	gm := pdu.GptpGrandmasterID
	domain := pdu.GptpDomainNumber
	snap.InterfacesInfo[ifaceIndex] = entity.InterfaceInfo{
		MacAddress:        senderMac,
		ValidTime:         validTime,
		AvailableIndex:    pdu.AvailableIndex,
		GptpGrandmasterID: &gm,
		GptpDomainNumber:  &domain,
	}
	return snap
}

func validTimeFromFrame(frame Frame) time.Duration {
	return time.Duration(frame.ValidTime) * 2 * time.Second
}

func (l *VirtualLink) receiveAecp(frame Frame) {
	key := pendingKey{mac: frame.SourceMac.String(), seq: frame.SequenceID}
	l.mu.Lock()
	p, ok := l.pendingAecp[key]
	if ok {
		delete(l.pendingAecp, key)
		p.timer.Stop()
	}
	l.mu.Unlock()

	if ok {
		p.onResult(frame, ErrorNone)
		return
	}

	l.mu.Lock()
	observers := append([]Observer(nil), l.observers...)
	l.mu.Unlock()
	for _, o := range observers {
		// A response with no matching pending command can only be
		// unsolicited: every solicited response was already claimed
		// above by its SendAecpCommand caller.
		if aecpMessageTypeIsResponse(frame.MessageType) {
			o.OnAecpUnsolicitedResponse(l, frame)
		} else {
			o.OnAecpCommand(l, frame)
		}
	}
}

// aecpMessageTypeIsResponse reports whether messageType is one of the
// AECP response message types (AEM_RESPONSE, ADDRESS_ACCESS_RESPONSE,
// VENDOR_UNIQUE_RESPONSE all use an odd value; the matching command
// uses the even value immediately below it, IEEE 1722.1 Table 9.2).
func aecpMessageTypeIsResponse(messageType uint8) bool {
	return aecp.MessageType(messageType).IsResponse()
}

func (l *VirtualLink) receiveAcmp(frame Frame) {
	key := pendingKey{mac: MulticastMacAddress.String(), seq: frame.SequenceID}
	l.mu.Lock()
	p, ok := l.pendingAcmp[key]
	if ok {
		delete(l.pendingAcmp, key)
		p.timer.Stop()
	}
	l.mu.Unlock()

	if ok {
		p.onResult(frame, ErrorNone)
		return
	}

	l.mu.Lock()
	observers := append([]Observer(nil), l.observers...)
	l.mu.Unlock()
	for _, o := range observers {
		if frame.MessageType%2 == 1 {
			o.OnAcmpSniffedResponse(l, frame)
		} else {
			o.OnAcmpSniffedCommand(l, frame)
		}
	}
}
