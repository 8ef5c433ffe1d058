package mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/particlecs/secureownable/types"
)

// Executor is a mock implementation of sdk.Executor.
type Executor struct {
	Inspector
}

// NewExecutor creates a new Executor mock and registers expectation
// assertions on test cleanup.
func NewExecutor(t interface {
	mock.TestingT
	Cleanup(func())
}) *Executor {
	m := &Executor{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *Executor) TransferOwnershipRequest(ctx context.Context, contract string) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) TransferOwnershipDelayedApproval(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, txID)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) TransferOwnershipCancellation(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, txID)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) UpdateBroadcasterRequest(ctx context.Context, contract string, newBroadcaster common.Address) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, newBroadcaster)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) UpdateBroadcasterDelayedApproval(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, txID)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) UpdateBroadcasterCancellation(ctx context.Context, contract string, txID *big.Int) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, txID)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) TransferOwnershipApprovalWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, metaTx)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) TransferOwnershipCancellationWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, metaTx)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) UpdateBroadcasterApprovalWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, metaTx)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) UpdateBroadcasterCancellationWithMetaTx(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, metaTx)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) UpdateRecoveryRequestAndApprove(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, metaTx)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) UpdateTimeLockRequestAndApprove(ctx context.Context, contract string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, metaTx)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}

func (_m *Executor) MakePayment(ctx context.Context, contract string, payment types.PaymentDetails, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	ret := _m.Called(ctx, contract, payment, metaTx)

	return ret.Get(0).(types.TransactionResult), ret.Error(1)
}
