package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/particlecs/secureownable/sdk"
	"github.com/particlecs/secureownable/sdk/evm/bindings"
	"github.com/particlecs/secureownable/types"
)

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector is the read-only gateway to SecureOwnable contracts on EVM
// chains. It holds no signing material and can be shared freely.
type Inspector struct {
	client sdk.ContractDeployBackend
}

// NewInspector creates a new Inspector for EVM chains.
func NewInspector(client sdk.ContractDeployBackend) *Inspector {
	return &Inspector{client: client}
}

func (i *Inspector) bound(contract string) (*bindings.SecureOwnable, error) {
	so, err := bindings.NewSecureOwnable(common.HexToAddress(contract), i.client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind SecureOwnable at %s: %w", contract, err)
	}

	return so, nil
}

// Owner returns the current owner of the contract.
func (i *Inspector) Owner(ctx context.Context, contract string) (common.Address, error) {
	so, err := i.bound(contract)
	if err != nil {
		return common.Address{}, err
	}

	return so.Owner(&bind.CallOpts{Context: ctx})
}

// Broadcaster returns the current broadcaster of the contract.
func (i *Inspector) Broadcaster(ctx context.Context, contract string) (common.Address, error) {
	so, err := i.bound(contract)
	if err != nil {
		return common.Address{}, err
	}

	return so.GetBroadcaster(&bind.CallOpts{Context: ctx})
}

// RecoveryAddress returns the current recovery address of the contract.
func (i *Inspector) RecoveryAddress(ctx context.Context, contract string) (common.Address, error) {
	so, err := i.bound(contract)
	if err != nil {
		return common.Address{}, err
	}

	return so.GetRecoveryAddress(&bind.CallOpts{Context: ctx})
}

// TimeLockPeriodInDays returns the timelock period applied to two-phase
// operations.
func (i *Inspector) TimeLockPeriodInDays(ctx context.Context, contract string) (uint64, error) {
	so, err := i.bound(contract)
	if err != nil {
		return 0, err
	}

	period, err := so.GetTimeLockPeriodInDays(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, err
	}

	return period.Uint64(), nil
}

// GetOperation returns the record for a single operation id.
func (i *Inspector) GetOperation(ctx context.Context, contract string, txID *big.Int) (types.TxRecord, error) {
	so, err := i.bound(contract)
	if err != nil {
		return types.TxRecord{}, err
	}

	rec, err := so.GetOperation(&bind.CallOpts{Context: ctx}, txID)
	if err != nil {
		return types.TxRecord{}, err
	}

	return toTxRecord(rec), nil
}

// GetOperationHistory returns all operation records known to the contract.
func (i *Inspector) GetOperationHistory(ctx context.Context, contract string) ([]types.TxRecord, error) {
	so, err := i.bound(contract)
	if err != nil {
		return nil, err
	}

	recs, err := so.GetOperationHistory(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, err
	}

	out := make([]types.TxRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, toTxRecord(r))
	}

	return out, nil
}

// GetSupportedOperationTypes returns the operation types the contract
// recognizes.
func (i *Inspector) GetSupportedOperationTypes(ctx context.Context, contract string) ([]types.OperationType, error) {
	so, err := i.bound(contract)
	if err != nil {
		return nil, err
	}

	hashes, err := so.GetSupportedOperationTypes(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, err
	}

	out := make([]types.OperationType, 0, len(hashes))
	for _, h := range hashes {
		out = append(out, types.OperationTypeFromHash(common.Hash(h)))
	}

	return out, nil
}

// TransferOwnershipExecutionOptions pre-encodes an ownership transfer.
func (i *Inspector) TransferOwnershipExecutionOptions(ctx context.Context, contract string, newOwner common.Address) ([]byte, error) {
	so, err := i.bound(contract)
	if err != nil {
		return nil, err
	}

	return so.TransferOwnershipExecutionOptions(&bind.CallOpts{Context: ctx}, newOwner)
}

// UpdateBroadcasterExecutionOptions pre-encodes a broadcaster change.
func (i *Inspector) UpdateBroadcasterExecutionOptions(ctx context.Context, contract string, newBroadcaster common.Address) ([]byte, error) {
	so, err := i.bound(contract)
	if err != nil {
		return nil, err
	}

	return so.UpdateBroadcasterExecutionOptions(&bind.CallOpts{Context: ctx}, newBroadcaster)
}

// UpdateRecoveryExecutionOptions pre-encodes a recovery address change.
func (i *Inspector) UpdateRecoveryExecutionOptions(ctx context.Context, contract string, newRecovery common.Address) ([]byte, error) {
	so, err := i.bound(contract)
	if err != nil {
		return nil, err
	}

	return so.UpdateRecoveryExecutionOptions(&bind.CallOpts{Context: ctx}, newRecovery)
}

// UpdateTimeLockExecutionOptions pre-encodes a timelock period change.
func (i *Inspector) UpdateTimeLockExecutionOptions(ctx context.Context, contract string, periodInDays uint64) ([]byte, error) {
	so, err := i.bound(contract)
	if err != nil {
		return nil, err
	}

	return so.UpdateTimeLockExecutionOptions(&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(periodInDays))
}

// GenerateUnsignedMetaTransactionForNew asks the contract to compute the
// canonical digest and parameters for a not-yet-existing operation.
func (i *Inspector) GenerateUnsignedMetaTransactionForNew(
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
	so, err := i.bound(contract)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	if value == nil {
		value = big.NewInt(0)
	}

	metaTx, err := so.GenerateUnsignedMetaTransactionForNew(
		&bind.CallOpts{Context: ctx},
		requester,
		target,
		operationType.Hash(),
		uint8(executionType),
		executionOptions,
		value,
		new(big.Int).SetUint64(gasLimit),
		toBindingParams(params),
	)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	return toMetaTransaction(metaTx), nil
}

// GenerateUnsignedMetaTransactionForExisting asks the contract to compute the
// canonical digest for approving or cancelling a pending operation.
func (i *Inspector) GenerateUnsignedMetaTransactionForExisting(
	ctx context.Context,
	contract string,
	txID *big.Int,
	params types.MetaTransactionParams,
	isApproval bool,
) (types.MetaTransaction, error) {
	so, err := i.bound(contract)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	metaTx, err := so.GenerateUnsignedMetaTransactionForExisting(
		&bind.CallOpts{Context: ctx}, txID, toBindingParams(params), isApproval)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	return toMetaTransaction(metaTx), nil
}
