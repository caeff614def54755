// Package controller implements the AVDECC controller capability core: the
// command issuer that turns a Delegate-surface call into an AECP/ACMP
// frame, the response router that turns an arriving frame back into a
// typed completion or notification, and the Controller type tying both to
// a transport.Interface and a discovery.Cache.
package controller

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/protocol/acmp"
	"github.com/opd-ai/avdeccore/status"
)

// Delegate receives every notification the controller produces that isn't
// a solicited completion: lifecycle events, unsolicited AEM change
// notifications, and sniffed ACMP traffic. A Controller has at most one
// Delegate at a time (see Controller.SetDelegate); a nil Delegate means
// notifications are silently dropped, which is a valid configuration for
// a controller that only issues commands and reads their completions.
type Delegate interface {
	// Lifecycle.
	OnTransportError()
	OnEntityOnline(entityID entity.ID, snapshot entity.Snapshot)
	OnEntityOffline(entityID entity.ID)
	OnEntityUpdate(entityID entity.ID, snapshot entity.Snapshot)

	// Unsolicited AEM change notifications (success-only; fired only when
	// the arriving response has the Unsolicited bit set).
	OnEntityAcquired(entityID entity.ID, ownerID entity.ID, descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex)
	OnEntityReleased(entityID entity.ID, ownerID entity.ID, descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex)
	OnEntityLocked(entityID entity.ID, lockedID entity.ID, descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex)
	OnEntityUnlocked(entityID entity.ID, lockedID entity.ID, descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex)
	OnConfigurationChanged(entityID entity.ID, configurationIndex entity.ConfigurationIndex)
	OnStreamInputFormatChanged(entityID entity.ID, descriptorIndex entity.StreamIndex, format entity.StreamFormat)
	OnStreamOutputFormatChanged(entityID entity.ID, descriptorIndex entity.StreamIndex, format entity.StreamFormat)
	OnStreamInputInfoChanged(entityID entity.ID, descriptorIndex entity.StreamIndex, info entity.StreamInfo)
	OnStreamOutputInfoChanged(entityID entity.ID, descriptorIndex entity.StreamIndex, info entity.StreamInfo)
	OnStreamInputStarted(entityID entity.ID, descriptorIndex entity.StreamIndex)
	OnStreamOutputStarted(entityID entity.ID, descriptorIndex entity.StreamIndex)
	OnStreamInputStopped(entityID entity.ID, descriptorIndex entity.StreamIndex)
	OnStreamOutputStopped(entityID entity.ID, descriptorIndex entity.StreamIndex)
	OnStreamInputCountersChanged(entityID entity.ID, descriptorIndex entity.StreamIndex, validCounters entity.CounterValidFlags, counters entity.Counters)
	OnStreamOutputCountersChanged(entityID entity.ID, descriptorIndex entity.StreamIndex, validCounters entity.CounterValidFlags, counters entity.Counters)
	OnStreamInputNameChanged(entityID entity.ID, descriptorIndex entity.StreamIndex, name entity.FixedString)
	OnStreamOutputNameChanged(entityID entity.ID, descriptorIndex entity.StreamIndex, name entity.FixedString)
	OnEntityNameChanged(entityID entity.ID, name entity.FixedString)
	OnEntityGroupNameChanged(entityID entity.ID, name entity.FixedString)
	OnConfigurationNameChanged(entityID entity.ID, configurationIndex entity.ConfigurationIndex, name entity.FixedString)
	OnAudioUnitNameChanged(entityID entity.ID, descriptorIndex entity.AudioUnitIndex, name entity.FixedString)
	OnAudioUnitSamplingRateChanged(entityID entity.ID, descriptorIndex entity.AudioUnitIndex, rate entity.SamplingRate)
	OnAvbInterfaceNameChanged(entityID entity.ID, descriptorIndex entity.AvbInterfaceIndex, name entity.FixedString)
	OnAvbInterfaceCountersChanged(entityID entity.ID, descriptorIndex entity.AvbInterfaceIndex, validCounters entity.CounterValidFlags, counters entity.Counters)
	OnAvbInfoChanged(entityID entity.ID, descriptorIndex entity.AvbInterfaceIndex, info entity.AvbInfo)
	OnAsPathChanged(entityID entity.ID, descriptorIndex entity.AvbInterfaceIndex, path entity.AsPath)
	OnClockSourceChanged(entityID entity.ID, descriptorIndex entity.ClockDomainIndex, clockSourceIndex entity.ClockSourceIndex)
	OnClockSourceNameChanged(entityID entity.ID, descriptorIndex entity.ClockSourceIndex, name entity.FixedString)
	OnClockDomainNameChanged(entityID entity.ID, descriptorIndex entity.ClockDomainIndex, name entity.FixedString)
	OnClockDomainCountersChanged(entityID entity.ID, descriptorIndex entity.ClockDomainIndex, validCounters entity.CounterValidFlags, counters entity.Counters)
	OnMemoryObjectNameChanged(entityID entity.ID, descriptorIndex entity.MemoryObjectIndex, name entity.FixedString)
	OnMemoryObjectLengthChanged(entityID entity.ID, descriptorIndex entity.MemoryObjectIndex, length uint64)
	OnAudioClusterNameChanged(entityID entity.ID, descriptorIndex entity.ClusterIndex, name entity.FixedString)
	OnAudioClusterSamplingRateChanged(entityID entity.ID, descriptorIndex entity.ClusterIndex, rate entity.SamplingRate)
	OnVideoClusterSamplingRateChanged(entityID entity.ID, descriptorIndex entity.ClusterIndex, rate entity.SamplingRate)
	OnSensorClusterSamplingRateChanged(entityID entity.ID, descriptorIndex entity.ClusterIndex, rate entity.SamplingRate)
	OnStreamPortInputAudioMappingsAdded(entityID entity.ID, descriptorIndex entity.StreamPortIndex, mappings []entity.AudioMapping)
	OnStreamPortInputAudioMappingsRemoved(entityID entity.ID, descriptorIndex entity.StreamPortIndex, mappings []entity.AudioMapping)
	OnStreamPortInputAudioMappingsChanged(entityID entity.ID, descriptorIndex entity.StreamPortIndex)
	OnStreamPortOutputAudioMappingsAdded(entityID entity.ID, descriptorIndex entity.StreamPortIndex, mappings []entity.AudioMapping)
	OnStreamPortOutputAudioMappingsRemoved(entityID entity.ID, descriptorIndex entity.StreamPortIndex, mappings []entity.AudioMapping)
	OnStreamPortOutputAudioMappingsChanged(entityID entity.ID, descriptorIndex entity.StreamPortIndex)
	OnOperationStatus(entityID entity.ID, descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex, operationID entity.OperationID, percentComplete uint16)
	OnDeregisteredFromUnsolicitedNotifications(entityID entity.ID)

	// ACMP sniffed notifications: traffic this controller observed on the
	// wire but did not originate. Only the decoded PDU is passed; the
	// response's status is not, and responses are delivered whatever
	// their status.
	OnControllerConnectResponseSniffed(pdu acmp.PDU)
	OnControllerDisconnectResponseSniffed(pdu acmp.PDU)
	OnListenerConnectResponseSniffed(pdu acmp.PDU)
	OnListenerDisconnectResponseSniffed(pdu acmp.PDU)
	OnGetTalkerStreamStateResponseSniffed(pdu acmp.PDU)
	OnGetListenerStreamStateResponseSniffed(pdu acmp.PDU)
}

// statusOf adapts a status.Status down to the coarse success/fail check
// every unsolicited-notification rule needs without importing status into
// every router file's call sites.
func statusOf(s status.Status) bool { return s.Success() }
