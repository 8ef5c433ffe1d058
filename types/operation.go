package types

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// OperationType identifies the kind of secure operation managed by a
// SecureOwnable contract. On the wire an operation type is the keccak256
// hash of its name.
type OperationType string

const (
	OwnershipTransfer OperationType = "OWNERSHIP_TRANSFER"
	BroadcasterUpdate OperationType = "BROADCASTER_UPDATE"
	RecoveryUpdate    OperationType = "RECOVERY_UPDATE"
	TimelockUpdate    OperationType = "TIMELOCK_UPDATE"

	// ExecSafeTx is registered by GuardianSafe-style modules built on top of
	// SecureOwnable. The core workflows never create it, but records read
	// back from such contracts decode to it.
	ExecSafeTx OperationType = "EXEC_SAFE_TX"
)

// operationTypeHashes maps the keccak256 hash of each known operation type
// back to its name. Built once at package init.
var operationTypeHashes = func() map[common.Hash]OperationType {
	m := make(map[common.Hash]OperationType)
	for _, t := range []OperationType{
		OwnershipTransfer,
		BroadcasterUpdate,
		RecoveryUpdate,
		TimelockUpdate,
		ExecSafeTx,
	} {
		m[t.Hash()] = t
	}

	return m
}()

// Hash returns the bytes32 representation of the operation type used by the
// contract. Hex-encoded extension types produced by OperationTypeFromHash
// round-trip unchanged.
func (t OperationType) Hash() common.Hash {
	if len(t) == 2+2*common.HashLength && strings.HasPrefix(string(t), "0x") {
		return common.HexToHash(string(t))
	}

	return crypto.Keccak256Hash([]byte(t))
}

// OperationTypeFromHash resolves a bytes32 operation type read from the
// contract. Unknown hashes are preserved as their hex encoding so that
// extension types registered by derived contracts still round-trip.
func OperationTypeFromHash(h common.Hash) OperationType {
	if t, ok := operationTypeHashes[h]; ok {
		return t
	}

	return OperationType("0x" + hex.EncodeToString(h.Bytes()))
}

// ExecutionType determines which workflow variant applies to an operation.
type ExecutionType uint8

const (
	ExecutionTypeNone ExecutionType = iota
	// ExecutionTypeStandard is the two-phase temporal workflow: request now,
	// approve once the timelock elapses.
	ExecutionTypeStandard
	// ExecutionTypeRaw is the single-phase meta-transaction workflow: one
	// role signs off-chain, the broadcaster submits.
	ExecutionTypeRaw
)

// String returns the human readable name of the execution type.
func (e ExecutionType) String() string {
	switch e {
	case ExecutionTypeNone:
		return "NONE"
	case ExecutionTypeStandard:
		return "STANDARD"
	case ExecutionTypeRaw:
		return "RAW"
	default:
		return "UNKNOWN"
	}
}

// TxStatus is the lifecycle state of an operation record.
type TxStatus uint8

const (
	TxStatusUndefined TxStatus = iota
	TxStatusPending
	TxStatusCancelled
	TxStatusCompleted
	TxStatusFailed
	TxStatusRejected
)

// String returns the human readable name of the status.
func (s TxStatus) String() string {
	switch s {
	case TxStatusUndefined:
		return "UNDEFINED"
	case TxStatusPending:
		return "PENDING"
	case TxStatusCancelled:
		return "CANCELLED"
	case TxStatusCompleted:
		return "COMPLETED"
	case TxStatusFailed:
		return "FAILED"
	case TxStatusRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether the status can no longer change. Records only
// ever move PENDING -> {COMPLETED, CANCELLED, REJECTED, FAILED}.
func (s TxStatus) IsTerminal() bool {
	switch s {
	case TxStatusCancelled, TxStatusCompleted, TxStatusFailed, TxStatusRejected:
		return true
	default:
		return false
	}
}

// PaymentDetails carries the optional payment metadata of payment-capable
// operation types.
type PaymentDetails struct {
	Recipient         common.Address `json:"recipient"`
	NativeTokenAmount *big.Int       `json:"nativeTokenAmount"`
	ERC20TokenAddress common.Address `json:"erc20TokenAddress"`
	ERC20TokenAmount  *big.Int       `json:"erc20TokenAmount"`
}

// TxRecord is the client-side mirror of an on-chain pending or completed
// operation. The contract remains the single source of truth; records are
// never mutated locally, only re-read.
type TxRecord struct {
	TxID          *big.Int       `json:"txId" validate:"required"`
	Requester     common.Address `json:"requester"`
	Target        common.Address `json:"target"`
	OperationType OperationType  `json:"operationType" validate:"required"`
	ExecutionType ExecutionType  `json:"executionType"`

	// ExecutionOptions is the opaque encoded payload carrying the concrete
	// new value of the update, pre-computed by the contract.
	ExecutionOptions []byte `json:"executionOptions"`

	// ReleaseTime is the unix timestamp after which a STANDARD operation
	// becomes approvable.
	ReleaseTime uint64   `json:"releaseTime"`
	Status      TxStatus `json:"status"`

	Payment *PaymentDetails `json:"payment,omitempty"`
}
