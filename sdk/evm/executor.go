package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/particlecs/secureownable/sdk"
	"github.com/particlecs/secureownable/sdk/evm/bindings"
	"github.com/particlecs/secureownable/types"
)

var _ sdk.Executor = (*Executor)(nil)

// ErrNoTransactOpts is returned when an Executor is constructed without
// signing material.
var ErrNoTransactOpts = errors.New("executor requires transact opts with a signer")

// Executor is the read-write gateway to SecureOwnable contracts on EVM
// chains. It requires connected signing material at construction; callers
// that only read should use Inspector instead.
type Executor struct {
	*Inspector
	auth *bind.TransactOpts
}

// NewExecutor creates a new Executor for EVM chains.
func NewExecutor(client sdk.ContractDeployBackend, auth *bind.TransactOpts) (*Executor, error) {
	if auth == nil || auth.Signer == nil {
		return nil, ErrNoTransactOpts
	}

	return &Executor{
		Inspector: NewInspector(client),
		auth:      auth,
	}, nil
}

// result wraps a submitted transaction with a receipt waiter that fails when
// the transaction reverted on chain.
func (e *Executor) result(tx *gethtypes.Transaction) types.TransactionResult {
	client := e.client

	return types.NewTransactionResult(tx.Hash().Hex(), tx, func(ctx context.Context) (*gethtypes.Receipt, error) {
		receipt, err := bind.WaitMined(ctx, client, tx)
		if err != nil {
			return nil, fmt.Errorf("failed waiting for transaction %s: %w", tx.Hash().Hex(), err)
		}
		if receipt.Status != gethtypes.ReceiptStatusSuccessful {
			return receipt, fmt.Errorf("transaction %s reverted on chain", tx.Hash().Hex())
		}

		return receipt, nil
	})
}

func (e *Executor) transact(
	ctx context.Context,
	contract string,
	fn func(*bindings.SecureOwnable, *bind.TransactOpts) (*gethtypes.Transaction, error),
) (types.TransactionResult, error) {
	so, err := bindings.NewSecureOwnable(common.HexToAddress(contract), e.client)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to bind SecureOwnable at %s: %w", contract, err)
	}

	opts := *e.auth
	opts.Context = ctx

	tx, err := fn(so, &opts)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return e.result(tx), nil
}

// TransferOwnershipRequest opens a two-phase ownership transfer.
func (e *Executor) TransferOwnershipRequest(ctx context.Context, contract string) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.TransferOwnershipRequest(opts)
	})
}

// TransferOwnershipDelayedApproval approves a pending ownership transfer.
func (e *Executor) TransferOwnershipDelayedApproval(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.TransferOwnershipDelayedApproval(opts, txID)
	})
}

// TransferOwnershipCancellation cancels a pending ownership transfer.
func (e *Executor) TransferOwnershipCancellation(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.TransferOwnershipCancellation(opts, txID)
	})
}

// UpdateBroadcasterRequest opens a two-phase broadcaster change.
func (e *Executor) UpdateBroadcasterRequest(ctx context.Context, contract string, newBroadcaster common.Address) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.UpdateBroadcasterRequest(opts, newBroadcaster)
	})
}

// UpdateBroadcasterDelayedApproval approves a pending broadcaster change.
func (e *Executor) UpdateBroadcasterDelayedApproval(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.UpdateBroadcasterDelayedApproval(opts, txID)
	})
}

// UpdateBroadcasterCancellation cancels a pending broadcaster change.
func (e *Executor) UpdateBroadcasterCancellation(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.UpdateBroadcasterCancellation(opts, txID)
	})
}

// TransferOwnershipApprovalWithMetaTx submits a signed ownership transfer
// approval.
func (e *Executor) TransferOwnershipApprovalWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.TransferOwnershipApprovalWithMetaTx(opts, toBindingMetaTransaction(metaTx))
	})
}

// TransferOwnershipCancellationWithMetaTx submits a signed ownership transfer
// cancellation.
func (e *Executor) TransferOwnershipCancellationWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.TransferOwnershipCancellationWithMetaTx(opts, toBindingMetaTransaction(metaTx))
	})
}

// UpdateBroadcasterApprovalWithMetaTx submits a signed broadcaster change
// approval.
func (e *Executor) UpdateBroadcasterApprovalWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.UpdateBroadcasterApprovalWithMetaTx(opts, toBindingMetaTransaction(metaTx))
	})
}

// UpdateBroadcasterCancellationWithMetaTx submits a signed broadcaster change
// cancellation.
func (e *Executor) UpdateBroadcasterCancellationWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.UpdateBroadcasterCancellationWithMetaTx(opts, toBindingMetaTransaction(metaTx))
	})
}

// UpdateRecoveryRequestAndApprove submits a signed single-phase recovery
// address change.
func (e *Executor) UpdateRecoveryRequestAndApprove(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.UpdateRecoveryRequestAndApprove(opts, toBindingMetaTransaction(metaTx))
	})
}

// UpdateTimeLockRequestAndApprove submits a signed single-phase timelock
// period change.
func (e *Executor) UpdateTimeLockRequestAndApprove(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.UpdateTimeLockRequestAndApprove(opts, toBindingMetaTransaction(metaTx))
	})
}

// MakePayment settles the payment metadata of a payment-capable operation.
func (e *Executor) MakePayment(ctx context.Context, contract string, payment types.PaymentDetails, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	return e.transact(ctx, contract, func(so *bindings.SecureOwnable, opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return so.MakePayment(opts, toBindingPayment(payment), toBindingMetaTransaction(metaTx))
	})
}
