// Package mocks provides testify mocks for the sdk gateway interfaces. They
// follow the mockery conventions used across our test suites.
package mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/particlecs/secureownable/types"
)

// Inspector is a mock implementation of sdk.Inspector.
type Inspector struct {
	mock.Mock
}

// NewInspector creates a new Inspector mock and registers expectation
// assertions on test cleanup.
func NewInspector(t interface {
	mock.TestingT
	Cleanup(func())
}) *Inspector {
	m := &Inspector{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *Inspector) Owner(ctx context.Context, contract string) (common.Address, error) {
	ret := _m.Called(ctx, contract)

	return ret.Get(0).(common.Address), ret.Error(1)
}

func (_m *Inspector) Broadcaster(ctx context.Context, contract string) (common.Address, error) {
	ret := _m.Called(ctx, contract)

	return ret.Get(0).(common.Address), ret.Error(1)
}

func (_m *Inspector) RecoveryAddress(ctx context.Context, contract string) (common.Address, error) {
	ret := _m.Called(ctx, contract)

	return ret.Get(0).(common.Address), ret.Error(1)
}

func (_m *Inspector) TimeLockPeriodInDays(ctx context.Context, contract string) (uint64, error) {
	ret := _m.Called(ctx, contract)

	return ret.Get(0).(uint64), ret.Error(1)
}

func (_m *Inspector) GetOperation(ctx context.Context, contract string, txID *big.Int) (types.TxRecord, error) {
	ret := _m.Called(ctx, contract, txID)

	return ret.Get(0).(types.TxRecord), ret.Error(1)
}

func (_m *Inspector) GetOperationHistory(ctx context.Context, contract string) ([]types.TxRecord, error) {
	ret := _m.Called(ctx, contract)

	var r0 []types.TxRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]types.TxRecord)
	}

	return r0, ret.Error(1)
}

func (_m *Inspector) GetSupportedOperationTypes(ctx context.Context, contract string) ([]types.OperationType, error) {
	ret := _m.Called(ctx, contract)

	var r0 []types.OperationType
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]types.OperationType)
	}

	return r0, ret.Error(1)
}

func (_m *Inspector) TransferOwnershipExecutionOptions(ctx context.Context, contract string, newOwner common.Address) ([]byte, error) {
	ret := _m.Called(ctx, contract, newOwner)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_m *Inspector) UpdateBroadcasterExecutionOptions(ctx context.Context, contract string, newBroadcaster common.Address) ([]byte, error) {
	ret := _m.Called(ctx, contract, newBroadcaster)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_m *Inspector) UpdateRecoveryExecutionOptions(ctx context.Context, contract string, newRecovery common.Address) ([]byte, error) {
	ret := _m.Called(ctx, contract, newRecovery)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_m *Inspector) UpdateTimeLockExecutionOptions(ctx context.Context, contract string, periodInDays uint64) ([]byte, error) {
	ret := _m.Called(ctx, contract, periodInDays)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_m *Inspector) GenerateUnsignedMetaTransactionForNew(
	ctx context.Context,
	contract string,
	requester common.Address,
	target common.Address,
	operationType types.OperationType,
	executionType types.ExecutionType,
	executionOptions []byte,
	value *big.Int,
	gasLimit uint64,
	params types.MetaTransactionParams,
) (types.MetaTransaction, error) {
	ret := _m.Called(ctx, contract, requester, target, operationType, executionType, executionOptions, value, gasLimit, params)

	return ret.Get(0).(types.MetaTransaction), ret.Error(1)
}

func (_m *Inspector) GenerateUnsignedMetaTransactionForExisting(
	ctx context.Context,
	contract string,
	txID *big.Int,
	params types.MetaTransactionParams,
	isApproval bool,
) (types.MetaTransaction, error) {
	ret := _m.Called(ctx, contract, txID, params, isApproval)

	return ret.Get(0).(types.MetaTransaction), ret.Error(1)
}
