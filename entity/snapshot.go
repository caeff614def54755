package entity

import (
	"net"
	"time"
)

// InterfaceInfo is the per-AvbInterfaceIndex information carried in ADP's
// EntityAvailable message: the interface's MAC address, how long the
// advertisement remains valid, its available-index sequence counter, and
// (if locked to gPTP) the grandmaster's identity and domain number.
type InterfaceInfo struct {
	MacAddress        net.HardwareAddr
	ValidTime         time.Duration // wire units of 2s, stored as a Duration
	AvailableIndex    uint32
	GptpGrandmasterID *ID
	GptpDomainNumber  *uint8
}

// Snapshot is the common and per-interface information this core caches
// for a discovered entity. It's an immutable value: Lookup returns a copy
// so callers can use it without holding the discovery cache's lock.
type Snapshot struct {
	EntityID               ID
	EntityModelID          ID
	EntityCapabilities     EntityCapabilities
	TalkerStreamSources    uint16
	TalkerCapabilities     TalkerCapabilities
	ListenerStreamSinks    uint16
	ListenerCapabilities   ListenerCapabilities
	ControllerCapabilities ControllerCapabilities
	IdentifyControlIndex   *uint16
	AssociationID          *ID
	InterfacesInfo         map[AvbInterfaceIndex]InterfaceInfo
}

// AnyMacAddress returns a MAC address this entity advertises on one of its
// interfaces, for unicast targeting: the MAC of the interface with the
// lowest AvbInterfaceIndex, so the choice does not depend on map
// iteration order. It reports false when there is no interface or that
// interface's MAC is empty.
func (s Snapshot) AnyMacAddress() (net.HardwareAddr, bool) {
	var best AvbInterfaceIndex
	var found bool
	for idx := range s.InterfacesInfo {
		if !found || idx < best {
			best = idx
			found = true
		}
	}
	if !found {
		return nil, false
	}
	mac := s.InterfacesInfo[best].MacAddress
	return mac, len(mac) > 0
}

// Clone returns a deep copy safe to hand to a caller outside the
// discovery cache's lock.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.IdentifyControlIndex != nil {
		v := *s.IdentifyControlIndex
		out.IdentifyControlIndex = &v
	}
	if s.AssociationID != nil {
		v := *s.AssociationID
		out.AssociationID = &v
	}
	if s.InterfacesInfo != nil {
		out.InterfacesInfo = make(map[AvbInterfaceIndex]InterfaceInfo, len(s.InterfacesInfo))
		for k, v := range s.InterfacesInfo {
			mac := make(net.HardwareAddr, len(v.MacAddress))
			copy(mac, v.MacAddress)
			v.MacAddress = mac
			if v.GptpGrandmasterID != nil {
				id := *v.GptpGrandmasterID
				v.GptpGrandmasterID = &id
			}
			if v.GptpDomainNumber != nil {
				d := *v.GptpDomainNumber
				v.GptpDomainNumber = &d
			}
			out.InterfacesInfo[k] = v
		}
	}
	return out
}
