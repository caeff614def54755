package controller

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/protocol/aecp"
	"github.com/opd-ai/avdeccore/protocol/aem"
	"github.com/opd-ai/avdeccore/status"
	"github.com/opd-ai/avdeccore/transport"
)

// routeAecpResponse dispatches an AECP frame this controller did not
// originate as a solicited command (i.e. one delivered through
// Observer.OnAecpUnsolicitedResponse) into the matching Delegate
// notification. Only AEM carries unsolicited notifications in this
// model (spec.md §6); AA and MVU responses with no matching outstanding
// command are logged and dropped.
func (c *Controller) routeAecpResponse(frame transport.Frame, entityID entity.ID) {
	if aecp.MessageType(frame.MessageType) != aecp.AemResponse {
		c.log.WithField("messageType", frame.MessageType).Debug("dropping non-AEM unsolicited AECP response")
		return
	}
	unsolicited, cmd, body, err := splitAemPayload(frame.Payload)
	if err != nil {
		c.log.WithError(err).Debug("malformed unsolicited AEM response header")
		return
	}
	if !unsolicited {
		return
	}
	if !status.AemStatus(frame.Status).Success() {
		// Unsolicited notifications only ever report success (spec.md §7):
		// a responder that sends one with a failing status is itself
		// nonconformant, and there's no caller to report the failure to.
		return
	}
	d := c.currentDelegate()
	if d == nil {
		return
	}
	c.dispatchAemNotification(d, entityID, cmd, body)
}

func (c *Controller) dispatchAemNotification(d Delegate, entityID entity.ID, cmd aem.CommandType, body []byte) {
	switch cmd {
	case aem.AcquireEntity:
		resp, err := aem.DeserializeAcquireEntityResponse(body)
		if err != nil {
			return
		}
		if resp.Flags.IsRelease() {
			safeCall(func() {
				d.OnEntityReleased(entityID, resp.OwnerID, resp.DescriptorType, resp.DescriptorIndex)
			})
		} else {
			safeCall(func() {
				d.OnEntityAcquired(entityID, resp.OwnerID, resp.DescriptorType, resp.DescriptorIndex)
			})
		}
	case aem.LockEntity:
		resp, err := aem.DeserializeLockEntityResponse(body)
		if err != nil {
			return
		}
		if resp.Flags.IsUnlock() {
			safeCall(func() {
				d.OnEntityUnlocked(entityID, resp.LockedID, resp.DescriptorType, resp.DescriptorIndex)
			})
		} else {
			safeCall(func() {
				d.OnEntityLocked(entityID, resp.LockedID, resp.DescriptorType, resp.DescriptorIndex)
			})
		}
	case aem.SetConfiguration:
		resp, err := aem.DeserializeSetConfigurationResponse(body)
		if err != nil {
			return
		}
		safeCall(func() { d.OnConfigurationChanged(entityID, resp.ConfigurationIndex) })
	case aem.SetStreamFormat:
		resp, err := aem.DeserializeStreamFormatResponse(body)
		if err != nil {
			return
		}
		if resp.DescriptorType == entity.DescriptorStreamInput {
			safeCall(func() { d.OnStreamInputFormatChanged(entityID, resp.DescriptorIndex, resp.StreamFormat) })
		} else {
			safeCall(func() { d.OnStreamOutputFormatChanged(entityID, resp.DescriptorIndex, resp.StreamFormat) })
		}
	case aem.SetStreamInfo:
		resp, err := aem.DeserializeStreamInfoResponse(body, false)
		if err != nil {
			return
		}
		if resp.DescriptorType == entity.DescriptorStreamInput {
			safeCall(func() { d.OnStreamInputInfoChanged(entityID, resp.DescriptorIndex, resp.Info) })
		} else {
			safeCall(func() { d.OnStreamOutputInfoChanged(entityID, resp.DescriptorIndex, resp.Info) })
		}
	case aem.StartStreaming:
		resp, err := aem.DeserializeStreamingControlResponse(body)
		if err != nil {
			return
		}
		if resp.DescriptorType == entity.DescriptorStreamInput {
			safeCall(func() { d.OnStreamInputStarted(entityID, resp.DescriptorIndex) })
		} else {
			safeCall(func() { d.OnStreamOutputStarted(entityID, resp.DescriptorIndex) })
		}
	case aem.StopStreaming:
		resp, err := aem.DeserializeStreamingControlResponse(body)
		if err != nil {
			return
		}
		if resp.DescriptorType == entity.DescriptorStreamInput {
			safeCall(func() { d.OnStreamInputStopped(entityID, resp.DescriptorIndex) })
		} else {
			safeCall(func() { d.OnStreamOutputStopped(entityID, resp.DescriptorIndex) })
		}
	case aem.SetName:
		c.dispatchNameChanged(d, entityID, body)
	case aem.SetSamplingRate:
		resp, err := aem.DeserializeSamplingRateResponse(body)
		if err != nil {
			return
		}
		switch resp.DescriptorType {
		case entity.DescriptorAudioUnit:
			safeCall(func() {
				d.OnAudioUnitSamplingRateChanged(entityID, entity.AudioUnitIndex(resp.DescriptorIndex), resp.SamplingRate)
			})
		case entity.DescriptorAudioCluster:
			safeCall(func() {
				d.OnAudioClusterSamplingRateChanged(entityID, entity.ClusterIndex(resp.DescriptorIndex), resp.SamplingRate)
			})
		case entity.DescriptorVideoCluster:
			safeCall(func() {
				d.OnVideoClusterSamplingRateChanged(entityID, entity.ClusterIndex(resp.DescriptorIndex), resp.SamplingRate)
			})
		case entity.DescriptorSensorCluster:
			safeCall(func() {
				d.OnSensorClusterSamplingRateChanged(entityID, entity.ClusterIndex(resp.DescriptorIndex), resp.SamplingRate)
			})
		}
	case aem.SetClockSource:
		resp, err := aem.DeserializeClockSourceResponse(body)
		if err != nil {
			return
		}
		safeCall(func() { d.OnClockSourceChanged(entityID, resp.ClockDomainIndex, resp.ClockSourceIndex) })
	case aem.GetAvbInfo:
		resp, err := aem.DeserializeAvbInfoResponse(body)
		if err != nil {
			return
		}
		safeCall(func() { d.OnAvbInfoChanged(entityID, resp.AvbInterfaceIndex, resp.Info) })
	case aem.GetAsPath:
		resp, err := aem.DeserializeAsPathResponse(body)
		if err != nil {
			return
		}
		safeCall(func() { d.OnAsPathChanged(entityID, resp.AvbInterfaceIndex, resp.Path) })
	case aem.GetCounters:
		c.dispatchCountersChanged(d, entityID, body)
	case aem.AddAudioMappings:
		resp, err := aem.DeserializeAudioMappingsResponse(body)
		if err != nil {
			return
		}
		if resp.DescriptorType == entity.DescriptorStreamPortInput {
			safeCall(func() { d.OnStreamPortInputAudioMappingsAdded(entityID, resp.DescriptorIndex, resp.Mappings) })
		} else {
			safeCall(func() { d.OnStreamPortOutputAudioMappingsAdded(entityID, resp.DescriptorIndex, resp.Mappings) })
		}
	case aem.RemoveAudioMappings:
		resp, err := aem.DeserializeAudioMappingsResponse(body)
		if err != nil {
			return
		}
		if resp.DescriptorType == entity.DescriptorStreamPortInput {
			safeCall(func() { d.OnStreamPortInputAudioMappingsRemoved(entityID, resp.DescriptorIndex, resp.Mappings) })
		} else {
			safeCall(func() { d.OnStreamPortOutputAudioMappingsRemoved(entityID, resp.DescriptorIndex, resp.Mappings) })
		}
	case aem.OperationStatus:
		resp, err := aem.DeserializeOperationResponse(body)
		if err != nil {
			return
		}
		safeCall(func() {
			d.OnOperationStatus(entityID, resp.DescriptorType, resp.DescriptorIndex, resp.OperationID, uint16(resp.OperationType))
		})
	case aem.DeregisterUnsolicitedNotification:
		safeCall(func() { d.OnDeregisteredFromUnsolicitedNotifications(entityID) })
	default:
		c.log.WithField("command", cmd.String()).Debug("unhandled unsolicited AEM notification")
	}
}

func (c *Controller) dispatchNameChanged(d Delegate, entityID entity.ID, body []byte) {
	resp, err := aem.DeserializeNameResponse(body)
	if err != nil {
		return
	}
	if resp.NameIndex != 0 && !(resp.DescriptorType == entity.DescriptorEntity && resp.NameIndex == 1) {
		c.log.WithField("descriptorType", resp.DescriptorType.String()).WithField("nameIndex", resp.NameIndex).Debug("unknown name index in unsolicited SET_NAME")
		return
	}
	switch resp.DescriptorType {
	case entity.DescriptorEntity:
		if resp.NameIndex == 1 {
			safeCall(func() { d.OnEntityGroupNameChanged(entityID, resp.Name) })
		} else {
			safeCall(func() { d.OnEntityNameChanged(entityID, resp.Name) })
		}
	case entity.DescriptorConfiguration:
		safeCall(func() { d.OnConfigurationNameChanged(entityID, entity.ConfigurationIndex(resp.DescriptorIndex), resp.Name) })
	case entity.DescriptorAudioUnit:
		safeCall(func() { d.OnAudioUnitNameChanged(entityID, entity.AudioUnitIndex(resp.DescriptorIndex), resp.Name) })
	case entity.DescriptorStreamInput:
		safeCall(func() { d.OnStreamInputNameChanged(entityID, entity.StreamIndex(resp.DescriptorIndex), resp.Name) })
	case entity.DescriptorStreamOutput:
		safeCall(func() { d.OnStreamOutputNameChanged(entityID, entity.StreamIndex(resp.DescriptorIndex), resp.Name) })
	case entity.DescriptorAvbInterface:
		safeCall(func() { d.OnAvbInterfaceNameChanged(entityID, entity.AvbInterfaceIndex(resp.DescriptorIndex), resp.Name) })
	case entity.DescriptorClockSource:
		safeCall(func() { d.OnClockSourceNameChanged(entityID, entity.ClockSourceIndex(resp.DescriptorIndex), resp.Name) })
	case entity.DescriptorClockDomain:
		safeCall(func() { d.OnClockDomainNameChanged(entityID, entity.ClockDomainIndex(resp.DescriptorIndex), resp.Name) })
	case entity.DescriptorMemoryObject:
		safeCall(func() { d.OnMemoryObjectNameChanged(entityID, entity.MemoryObjectIndex(resp.DescriptorIndex), resp.Name) })
	case entity.DescriptorAudioCluster:
		safeCall(func() { d.OnAudioClusterNameChanged(entityID, entity.ClusterIndex(resp.DescriptorIndex), resp.Name) })
	}
}

func (c *Controller) dispatchCountersChanged(d Delegate, entityID entity.ID, body []byte) {
	resp, err := aem.DeserializeCountersResponse(body)
	if err != nil {
		return
	}
	switch resp.DescriptorType {
	case entity.DescriptorStreamInput:
		safeCall(func() {
			d.OnStreamInputCountersChanged(entityID, entity.StreamIndex(resp.DescriptorIndex), resp.ValidCounters, resp.Counters)
		})
	case entity.DescriptorStreamOutput:
		safeCall(func() {
			d.OnStreamOutputCountersChanged(entityID, entity.StreamIndex(resp.DescriptorIndex), resp.ValidCounters, resp.Counters)
		})
	case entity.DescriptorAvbInterface:
		safeCall(func() {
			d.OnAvbInterfaceCountersChanged(entityID, entity.AvbInterfaceIndex(resp.DescriptorIndex), resp.ValidCounters, resp.Counters)
		})
	case entity.DescriptorClockDomain:
		safeCall(func() {
			d.OnClockDomainCountersChanged(entityID, entity.ClockDomainIndex(resp.DescriptorIndex), resp.ValidCounters, resp.Counters)
		})
	}
}
