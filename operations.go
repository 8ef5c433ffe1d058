package secureownable

import (
	"github.com/particlecs/secureownable/sdk/evm/bindings"
	"github.com/particlecs/secureownable/types"
)

// WorkflowKind selects which workflow template applies to an operation type.
type WorkflowKind uint8

const (
	// WorkflowTwoPhase is the temporal workflow: request now, approve after
	// the timelock elapses, cancel after the cool-down.
	WorkflowTwoPhase WorkflowKind = iota
	// WorkflowSinglePhase is the meta-transaction workflow: one role signs
	// off-chain, the broadcaster submits request and approval in one
	// transaction.
	WorkflowSinglePhase
)

// OperationDescriptor binds an operation type to its workflow template, role
// requirements, and the contract handlers its meta-transactions must target.
// The table is built once at startup; no per-call string lookups.
type OperationDescriptor struct {
	Type         types.OperationType
	Workflow     WorkflowKind
	RequestRole  Role
	ApproveRoles []Role
	// CancelRole mirrors RequestRole: cancellation is restricted to the role
	// that opened the request.
	CancelRole Role

	handlers map[types.TxAction]string
}

var operationDescriptors = map[types.OperationType]OperationDescriptor{
	types.OwnershipTransfer: {
		Type:         types.OwnershipTransfer,
		Workflow:     WorkflowTwoPhase,
		RequestRole:  RoleRecovery,
		ApproveRoles: []Role{RoleOwner, RoleRecovery},
		CancelRole:   RoleRecovery,
		handlers: map[types.TxAction]string{
			types.ActionApprove: "transferOwnershipApprovalWithMetaTx",
			types.ActionCancel:  "transferOwnershipCancellationWithMetaTx",
		},
	},
	types.BroadcasterUpdate: {
		Type:         types.BroadcasterUpdate,
		Workflow:     WorkflowTwoPhase,
		RequestRole:  RoleOwner,
		ApproveRoles: []Role{RoleOwner},
		CancelRole:   RoleOwner,
		handlers: map[types.TxAction]string{
			types.ActionApprove: "updateBroadcasterApprovalWithMetaTx",
			types.ActionCancel:  "updateBroadcasterCancellationWithMetaTx",
		},
	},
	types.RecoveryUpdate: {
		Type:        types.RecoveryUpdate,
		Workflow:    WorkflowSinglePhase,
		RequestRole: RoleOwner,
		handlers: map[types.TxAction]string{
			types.ActionRequestAndApprove: "updateRecoveryRequestAndApprove",
		},
	},
	types.TimelockUpdate: {
		Type:        types.TimelockUpdate,
		Workflow:    WorkflowSinglePhase,
		RequestRole: RoleOwner,
		handlers: map[types.TxAction]string{
			types.ActionRequestAndApprove: "updateTimeLockRequestAndApprove",
		},
	},
}

// DescriptorFor returns the workflow descriptor for an operation type.
func DescriptorFor(opType types.OperationType) (OperationDescriptor, bool) {
	d, ok := operationDescriptors[opType]

	return d, ok
}

// HandlerName returns the contract method a meta-transaction for the given
// action must target.
func (d OperationDescriptor) HandlerName(action types.TxAction) (string, error) {
	name, ok := d.handlers[action]
	if !ok {
		return "", NewUnsupportedOperationError(d.Type, action)
	}

	return name, nil
}

// HandlerSelector returns the 4-byte selector of the handler for the given
// action.
func (d OperationDescriptor) HandlerSelector(action types.TxAction) ([4]byte, error) {
	name, err := d.HandlerName(action)
	if err != nil {
		return [4]byte{}, err
	}

	return bindings.MethodID(name)
}
