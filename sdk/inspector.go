package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/particlecs/secureownable/types"
)

// Inspector is the read-only gateway to a SecureOwnable contract. Methods
// surface transport failures only; they never return business errors.
type Inspector interface {
	// Owner returns the current owner of the contract.
	Owner(ctx context.Context, contract string) (common.Address, error)

	// Broadcaster returns the role authorized to submit signed
	// meta-transactions.
	Broadcaster(ctx context.Context, contract string) (common.Address, error)

	// RecoveryAddress returns the emergency role authorized to initiate
	// ownership transfer.
	RecoveryAddress(ctx context.Context, contract string) (common.Address, error)

	// TimeLockPeriodInDays returns the delay applied between request and
	// approvability of two-phase operations.
	TimeLockPeriodInDays(ctx context.Context, contract string) (uint64, error)

	// GetOperation returns the record for a single operation id.
	GetOperation(ctx context.Context, contract string, txID *big.Int) (types.TxRecord, error)

	// GetOperationHistory returns all records known to the contract.
	GetOperationHistory(ctx context.Context, contract string) ([]types.TxRecord, error)

	// GetSupportedOperationTypes returns the operation types the contract
	// recognizes, including extension types registered by derived modules.
	GetSupportedOperationTypes(ctx context.Context, contract string) ([]types.OperationType, error)

	// TransferOwnershipExecutionOptions pre-encodes the calldata fragment
	// representing an ownership transfer, so the exact on-chain payload is
	// deterministic before a request or meta-tx is built.
	TransferOwnershipExecutionOptions(ctx context.Context, contract string, newOwner common.Address) ([]byte, error)

	// UpdateBroadcasterExecutionOptions pre-encodes a broadcaster change.
	UpdateBroadcasterExecutionOptions(ctx context.Context, contract string, newBroadcaster common.Address) ([]byte, error)

	// UpdateRecoveryExecutionOptions pre-encodes a recovery address change.
	UpdateRecoveryExecutionOptions(ctx context.Context, contract string, newRecovery common.Address) ([]byte, error)

	// UpdateTimeLockExecutionOptions pre-encodes a timelock period change.
	UpdateTimeLockExecutionOptions(ctx context.Context, contract string, periodInDays uint64) ([]byte, error)

	// GenerateUnsignedMetaTransactionForNew asks the contract to compute the
	// canonical digest and parameters for a not-yet-existing operation.
	GenerateUnsignedMetaTransactionForNew(
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
	) (types.MetaTransaction, error)

	// GenerateUnsignedMetaTransactionForExisting asks the contract to compute
	// the canonical digest for approving or cancelling an already pending
	// operation.
	GenerateUnsignedMetaTransactionForExisting(
		ctx context.Context,
		contract string,
		txID *big.Int,
		params types.MetaTransactionParams,
		isApproval bool,
	) (types.MetaTransaction, error)
}
