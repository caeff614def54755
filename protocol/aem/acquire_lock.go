package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// AcquireEntityPayloadSize is the wire size of an ACQUIRE_ENTITY command
// or response payload (IEEE 1722.1 Clause 7.4.1.1).
const AcquireEntityPayloadSize = 4 + 8 + 2 + 2

// SerializeAcquireEntityCommand builds an ACQUIRE_ENTITY command payload.
// The same shape serializes a RELEASE_ENTITY request: set
// AcquireFlagsRelease in flags.
func SerializeAcquireEntityCommand(flags AcquireEntityFlags, ownerID entity.ID, descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex) []byte {
	w := wire.NewWriter(AcquireEntityPayloadSize)
	w.Uint32(uint32(flags))
	w.Uint64(uint64(ownerID))
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	return w.Bytes()
}

// AcquireEntityResponse is the typed ACQUIRE_ENTITY / RELEASE_ENTITY
// response payload.
type AcquireEntityResponse struct {
	Flags           AcquireEntityFlags
	OwnerID         entity.ID
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.DescriptorIndex
}

// DeserializeAcquireEntityResponse parses an ACQUIRE_ENTITY or
// RELEASE_ENTITY response payload (same wire shape as the command).
func DeserializeAcquireEntityResponse(payload []byte) (AcquireEntityResponse, error) {
	r := wire.NewReader(payload)
	var resp AcquireEntityResponse
	flags, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	owner, err := r.Uint64()
	if err != nil {
		return resp, err
	}
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	resp.Flags = AcquireEntityFlags(flags)
	resp.OwnerID = entity.ID(owner)
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.DescriptorIndex(di)
	return resp, nil
}

// LockEntityPayloadSize is the wire size of a LOCK_ENTITY command or
// response payload (IEEE 1722.1 Clause 7.4.2.1).
const LockEntityPayloadSize = AcquireEntityPayloadSize

// SerializeLockEntityCommand builds a LOCK_ENTITY command payload. The
// same shape serializes an UNLOCK_ENTITY request: set LockFlagsUnlock.
func SerializeLockEntityCommand(flags LockEntityFlags, lockedID entity.ID, descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex) []byte {
	w := wire.NewWriter(LockEntityPayloadSize)
	w.Uint32(uint32(flags))
	w.Uint64(uint64(lockedID))
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	return w.Bytes()
}

// LockEntityResponse is the typed LOCK_ENTITY / UNLOCK_ENTITY response
// payload.
type LockEntityResponse struct {
	Flags           LockEntityFlags
	LockedID        entity.ID
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.DescriptorIndex
}

// DeserializeLockEntityResponse parses a LOCK_ENTITY or UNLOCK_ENTITY
// response payload.
func DeserializeLockEntityResponse(payload []byte) (LockEntityResponse, error) {
	r := wire.NewReader(payload)
	var resp LockEntityResponse
	flags, err := r.Uint32()
	if err != nil {
		return resp, err
	}
	locked, err := r.Uint64()
	if err != nil {
		return resp, err
	}
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	resp.Flags = LockEntityFlags(flags)
	resp.LockedID = entity.ID(locked)
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.DescriptorIndex(di)
	return resp, nil
}
