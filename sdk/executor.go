package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/particlecs/secureownable/types"
)

// Executor is the read-write gateway to a SecureOwnable contract. It extends
// Inspector with the state-changing entry points; implementations require a
// connected signer at construction.
type Executor interface {
	Inspector

	// TransferOwnershipRequest opens a two-phase ownership transfer to the
	// recovery address.
	TransferOwnershipRequest(ctx context.Context, contract string) (types.TransactionResult, error)

	// TransferOwnershipDelayedApproval approves a pending ownership transfer
	// once its release time has passed.
	TransferOwnershipDelayedApproval(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error)

	// TransferOwnershipCancellation cancels a pending ownership transfer.
	TransferOwnershipCancellation(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error)

	// UpdateBroadcasterRequest opens a two-phase broadcaster change.
	UpdateBroadcasterRequest(ctx context.Context, contract string, newBroadcaster common.Address) (types.TransactionResult, error)

	// UpdateBroadcasterDelayedApproval approves a pending broadcaster change.
	UpdateBroadcasterDelayedApproval(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error)

	// UpdateBroadcasterCancellation cancels a pending broadcaster change.
	UpdateBroadcasterCancellation(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error)

	// TransferOwnershipApprovalWithMetaTx submits an owner-signed approval of
	// a pending ownership transfer.
	TransferOwnershipApprovalWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error)

	// TransferOwnershipCancellationWithMetaTx submits a signed cancellation
	// of a pending ownership transfer.
	TransferOwnershipCancellationWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error)

	// UpdateBroadcasterApprovalWithMetaTx submits an owner-signed approval of
	// a pending broadcaster change.
	UpdateBroadcasterApprovalWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error)

	// UpdateBroadcasterCancellationWithMetaTx submits a signed cancellation
	// of a pending broadcaster change.
	UpdateBroadcasterCancellationWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error)

	// UpdateRecoveryRequestAndApprove submits an owner-signed single-phase
	// recovery address change.
	UpdateRecoveryRequestAndApprove(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error)

	// UpdateTimeLockRequestAndApprove submits an owner-signed single-phase
	// timelock period change.
	UpdateTimeLockRequestAndApprove(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error)

	// MakePayment settles the payment metadata of a payment-capable
	// operation.
	MakePayment(ctx context.Context, contract string, payment types.PaymentDetails, metaTx types.MetaTransaction) (types.TransactionResult, error)
}
