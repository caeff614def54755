package entity

// CounterValidFlags is the 32-bit bitset in a GET_COUNTERS response
// marking which of the 32 counter words are meaningful for the responding
// descriptor type. The router reinterprets it under one of the
// descriptor-specific types below (IEEE 1722.1 Clause 7.4.42).
type CounterValidFlags uint32

// Counters is the raw 32-word counter block every GET_COUNTERS response
// carries, regardless of descriptor type.
type Counters [32]uint32

// AvbInterfaceCounterValidFlags names the bits of CounterValidFlags that
// apply to an AVB_INTERFACE descriptor's counters.
type AvbInterfaceCounterValidFlags uint32

const (
	AvbInterfaceCounterLinkUp        AvbInterfaceCounterValidFlags = 1 << 0
	AvbInterfaceCounterLinkDown      AvbInterfaceCounterValidFlags = 1 << 1
	AvbInterfaceCounterFramesTx      AvbInterfaceCounterValidFlags = 1 << 2
	AvbInterfaceCounterFramesRx      AvbInterfaceCounterValidFlags = 1 << 3
	AvbInterfaceCounterRxCrcError    AvbInterfaceCounterValidFlags = 1 << 4
	AvbInterfaceCounterGptpGmChanged AvbInterfaceCounterValidFlags = 1 << 5
)

// ClockDomainCounterValidFlags names the bits of CounterValidFlags that
// apply to a CLOCK_DOMAIN descriptor's counters.
type ClockDomainCounterValidFlags uint32

const (
	ClockDomainCounterLocked   ClockDomainCounterValidFlags = 1 << 0
	ClockDomainCounterUnlocked ClockDomainCounterValidFlags = 1 << 1
)

// StreamInputCounterValidFlags names the bits of CounterValidFlags that
// apply to a STREAM_INPUT descriptor's counters.
type StreamInputCounterValidFlags uint32

const (
	StreamInputCounterMediaLocked      StreamInputCounterValidFlags = 1 << 0
	StreamInputCounterMediaUnlocked    StreamInputCounterValidFlags = 1 << 1
	StreamInputCounterStreamReset      StreamInputCounterValidFlags = 1 << 2
	StreamInputCounterSeqNumMismatch   StreamInputCounterValidFlags = 1 << 3
	StreamInputCounterMediaReset       StreamInputCounterValidFlags = 1 << 4
	StreamInputCounterTimestampUncertain StreamInputCounterValidFlags = 1 << 5
	StreamInputCounterTimestampValid   StreamInputCounterValidFlags = 1 << 6
	StreamInputCounterTimestampNotValid StreamInputCounterValidFlags = 1 << 7
	StreamInputCounterUnsupportedFormat StreamInputCounterValidFlags = 1 << 8
	StreamInputCounterLateTimestamp    StreamInputCounterValidFlags = 1 << 9
	StreamInputCounterEarlyTimestamp   StreamInputCounterValidFlags = 1 << 10
	StreamInputCounterFramesRx         StreamInputCounterValidFlags = 1 << 11
	StreamInputCounterFramesTx         StreamInputCounterValidFlags = 1 << 12
)

// StreamOutputCounterValidFlags names the bits of CounterValidFlags that
// apply to a STREAM_OUTPUT descriptor's counters.
type StreamOutputCounterValidFlags uint32

const (
	StreamOutputCounterStreamStart StreamOutputCounterValidFlags = 1 << 0
	StreamOutputCounterStreamStop  StreamOutputCounterValidFlags = 1 << 1
	StreamOutputCounterFramesTx    StreamOutputCounterValidFlags = 1 << 2
)
