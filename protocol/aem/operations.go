package aem

import (
	"github.com/opd-ai/avdeccore/entity"
	"github.com/opd-ai/avdeccore/internal/wire"
)

// MemoryBuffer is an opaque payload carried by START_OPERATION and
// OPERATION_STATUS: firmware images, upload/download buffers, and other
// vendor-defined operation data (IEEE 1722.1 Clause 7.4.53).
type MemoryBuffer []byte

// startOperationHeaderSize is the fixed portion of a START_OPERATION
// command or response ahead of the MemoryBuffer payload.
const startOperationHeaderSize = 2 + 2 + 2 + 2

// SerializeStartOperationCommand builds a START_OPERATION command
// payload; operationID is 0 in the command direction and assigned by
// the responder.
func SerializeStartOperationCommand(descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex, operationType entity.MemoryObjectOperationType, buffer MemoryBuffer) []byte {
	w := wire.NewWriter(startOperationHeaderSize + len(buffer))
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Uint16(0) // OperationID, assigned by responder
	w.Uint16(uint16(operationType))
	w.Raw(buffer)
	return w.Bytes()
}

// SerializeAbortOperationCommand builds an ABORT_OPERATION command
// payload (IEEE 1722.1 Clause 7.4.54.1).
func SerializeAbortOperationCommand(descriptorType entity.DescriptorType, descriptorIndex entity.DescriptorIndex, operationID entity.OperationID) []byte {
	w := wire.NewWriter(6)
	w.Uint16(uint16(descriptorType))
	w.Uint16(uint16(descriptorIndex))
	w.Uint16(uint16(operationID))
	return w.Bytes()
}

// OperationResponse is the typed START_OPERATION / OPERATION_STATUS
// response payload.
type OperationResponse struct {
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.DescriptorIndex
	OperationID     entity.OperationID
	OperationType   entity.MemoryObjectOperationType
	Buffer          MemoryBuffer
}

// DeserializeOperationResponse parses a START_OPERATION or
// OPERATION_STATUS response payload.
func DeserializeOperationResponse(payload []byte) (OperationResponse, error) {
	r := wire.NewReader(payload)
	var resp OperationResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	oid, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	ot, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.DescriptorIndex(di)
	resp.OperationID = entity.OperationID(oid)
	resp.OperationType = entity.MemoryObjectOperationType(ot)
	resp.Buffer = MemoryBuffer(r.Rest())
	return resp, nil
}

// AbortOperationResponse is the typed ABORT_OPERATION response payload.
type AbortOperationResponse struct {
	DescriptorType  entity.DescriptorType
	DescriptorIndex entity.DescriptorIndex
	OperationID     entity.OperationID
}

// DeserializeAbortOperationResponse parses an ABORT_OPERATION response
// payload.
func DeserializeAbortOperationResponse(payload []byte) (AbortOperationResponse, error) {
	r := wire.NewReader(payload)
	var resp AbortOperationResponse
	dt, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	di, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	oid, err := r.Uint16()
	if err != nil {
		return resp, err
	}
	resp.DescriptorType = entity.DescriptorType(dt)
	resp.DescriptorIndex = entity.DescriptorIndex(di)
	resp.OperationID = entity.OperationID(oid)
	return resp, nil
}
