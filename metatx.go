package secureownable

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/particlecs/secureownable/sdk"
	"github.com/particlecs/secureownable/types"
)

// MetaTxBuilder assembles unsigned meta-transactions. The contract gateway
// computes the canonical digest and parameters, so the payload is
// deterministic and independent of client-side encoding mistakes. The
// builder enforces the deadline and handler-selector invariants before any
// chain call.
type MetaTxBuilder struct {
	gateway  sdk.Inspector
	contract string
	validate *validator.Validate
	now      func() time.Time
}

// NewMetaTxBuilder creates a builder bound to a contract address.
func NewMetaTxBuilder(gateway sdk.Inspector, contract string) *MetaTxBuilder {
	return &MetaTxBuilder{
		gateway:  gateway,
		contract: contract,
		validate: validator.New(),
		now:      time.Now,
	}
}

// checkParams validates the signer-chosen parameters and pins the handler
// selector to the one recognized for the operation type and action. An
// unset selector is filled in; a mismatched one is rejected.
func (b *MetaTxBuilder) checkParams(
	params types.MetaTransactionParams,
	opType types.OperationType,
	action types.TxAction,
) (types.MetaTransactionParams, error) {
	if err := b.validate.Struct(params); err != nil {
		return params, fmt.Errorf("invalid meta transaction params: %w", err)
	}
	if err := ValidateDeadline(params.Deadline, b.now()); err != nil {
		return params, err
	}

	desc, ok := DescriptorFor(opType)
	if !ok {
		return params, NewUnsupportedOperationError(opType, action)
	}

	expected, err := desc.HandlerSelector(action)
	if err != nil {
		return params, err
	}

	if params.HandlerSelector == ([4]byte{}) {
		params.HandlerSelector = expected
	} else if params.HandlerSelector != expected {
		name, _ := desc.HandlerName(action)

		return params, NewSelectorMismatchError(name, expected, params.HandlerSelector)
	}

	return params, nil
}

// BuildForNew assembles an unsigned meta-transaction for a not-yet-existing
// operation (the single-phase requestAndApprove path).
func (b *MetaTxBuilder) BuildForNew(
	ctx context.Context,
	requester common.Address,
	target common.Address,
	opType types.OperationType,
	execType types.ExecutionType,
	executionOptions []byte,
	value *big.Int,
	gasLimit uint64,
	params types.MetaTransactionParams,
) (types.MetaTransaction, error) {
	params, err := b.checkParams(params, opType, types.ActionRequestAndApprove)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	metaTx, err := b.gateway.GenerateUnsignedMetaTransactionForNew(
		ctx, b.contract, requester, target, opType, execType, executionOptions, value, gasLimit, params)
	if err != nil {
		return types.MetaTransaction{}, fmt.Errorf("failed to generate unsigned meta transaction: %w", err)
	}

	return metaTx, nil
}

// BuildForExisting assembles an unsigned meta-transaction approving
// (isApproval=true) or cancelling (isApproval=false) an already requested
// PENDING operation.
func (b *MetaTxBuilder) BuildForExisting(
	ctx context.Context,
	txID *big.Int,
	params types.MetaTransactionParams,
	isApproval bool,
) (types.MetaTransaction, error) {
	rec, err := b.gateway.GetOperation(ctx, b.contract, txID)
	if err != nil {
		return types.MetaTransaction{}, fmt.Errorf("failed to read operation %v: %w", txID, err)
	}
	if rec.Status != types.TxStatusPending {
		return types.MetaTransaction{}, NewOperationNotPendingError(rec.TxID, rec.Status)
	}

	action := types.ActionApprove
	if !isApproval {
		action = types.ActionCancel
	}

	params, err = b.checkParams(params, rec.OperationType, action)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	metaTx, err := b.gateway.GenerateUnsignedMetaTransactionForExisting(ctx, b.contract, txID, params, isApproval)
	if err != nil {
		return types.MetaTransaction{}, fmt.Errorf("failed to generate unsigned meta transaction: %w", err)
	}

	return metaTx, nil
}
