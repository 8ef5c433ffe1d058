package secureownable

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	cselectors "github.com/smartcontractkit/chain-selectors"
	"github.com/spf13/cast"

	"github.com/particlecs/secureownable/sdk"
	"github.com/particlecs/secureownable/types"
)

// Manager orchestrates the secure-operation workflows of a single
// SecureOwnable contract. It composes the role/timing validator, the
// meta-transaction builder, the contract gateway, and the
// pending-transaction store.
//
// The manager holds no contract state of its own: the contract is the single
// source of truth, and every precondition is re-checked on chain. The
// client-side checks exist to fail fast before gas is spent.
type Manager struct {
	contract  string
	chainID   uint64
	inspector sdk.Inspector
	executor  sdk.Executor
	builder   *MetaTxBuilder
	store     PendingStore
	now       func() time.Time
}

// NewManager creates a read-only manager. State-changing operations return
// ErrSignerRequired.
func NewManager(inspector sdk.Inspector, store PendingStore, contract string, chainID uint64) *Manager {
	return &Manager{
		contract:  contract,
		chainID:   chainID,
		inspector: inspector,
		builder:   NewMetaTxBuilder(inspector, contract),
		store:     store,
		now:       time.Now,
	}
}

// NewManagerWithExecutor creates a read-write manager. The executor carries
// the connected signer used for transaction submission.
func NewManagerWithExecutor(executor sdk.Executor, store PendingStore, contract string, chainID uint64) *Manager {
	m := NewManager(executor, store, contract, chainID)
	m.executor = executor

	return m
}

// ChainMismatchError is returned when the caller is connected to a different
// chain than the one the manager was constructed for.
type ChainMismatchError struct {
	Expected uint64
	Got      uint64
}

func (e *ChainMismatchError) Error() string {
	return fmt.Sprintf("caller is connected to chain %d, contract lives on chain %d", e.Got, e.Expected)
}

func (m *Manager) requireExecutor() error {
	if m.executor == nil {
		return ErrSignerRequired
	}

	return nil
}

func (m *Manager) requireCaller(caller types.CallerContext) error {
	if caller.IsZero() {
		return ErrSenderRequired
	}
	if caller.ChainID != 0 && caller.ChainID != m.chainID {
		return &ChainMismatchError{Expected: m.chainID, Got: caller.ChainID}
	}

	return nil
}

// resolveRole reads the address currently holding a role.
func (m *Manager) resolveRole(ctx context.Context, role Role) (common.Address, error) {
	switch role {
	case RoleOwner:
		return m.inspector.Owner(ctx, m.contract)
	case RoleBroadcaster:
		return m.inspector.Broadcaster(ctx, m.contract)
	case RoleRecovery:
		return m.inspector.RecoveryAddress(ctx, m.contract)
	default:
		return common.Address{}, fmt.Errorf("unknown role %q", role)
	}
}

// validateRoles checks that the caller holds at least one of the given
// roles, resolving the current holders from the contract.
func (m *Manager) validateRoles(ctx context.Context, caller types.CallerContext, roles ...Role) error {
	holders := make([]RoleHolder, 0, len(roles))
	for _, role := range roles {
		addr, err := m.resolveRole(ctx, role)
		if err != nil {
			return err
		}
		holders = append(holders, RoleHolder{Role: role, Address: addr})
	}

	return ValidateCallerRole(caller.Address, holders...)
}

// timelockPeriod reads the contract's timelock period as a duration.
func (m *Manager) timelockPeriod(ctx context.Context) (time.Duration, error) {
	days, err := m.inspector.TimeLockPeriodInDays(ctx, m.contract)
	if err != nil {
		return 0, err
	}

	return time.Duration(days) * 24 * time.Hour, nil
}

// ValidateContract checks that the configured address exposes the
// SecureOwnable read interface. Used by contract import flows before a
// manager is put to work.
func (m *Manager) ValidateContract(ctx context.Context) error {
	addr := common.HexToAddress(m.contract)
	if _, err := m.inspector.Owner(ctx, m.contract); err != nil {
		return NewInvalidContractError(addr, err)
	}
	if _, err := m.inspector.GetSupportedOperationTypes(ctx, m.contract); err != nil {
		return NewInvalidContractError(addr, err)
	}

	return nil
}

// Refresh re-reads the contract and returns a new immutable snapshot. The
// previous snapshot, if any, should be discarded by the caller.
func (m *Manager) Refresh(ctx context.Context) (types.SecureContractInfo, error) {
	info := types.SecureContractInfo{
		Address: common.HexToAddress(m.contract),
		ChainID: m.chainID,
	}

	var err error
	if info.Owner, err = m.inspector.Owner(ctx, m.contract); err != nil {
		return types.SecureContractInfo{}, err
	}
	if info.Broadcaster, err = m.inspector.Broadcaster(ctx, m.contract); err != nil {
		return types.SecureContractInfo{}, err
	}
	if info.RecoveryAddress, err = m.inspector.RecoveryAddress(ctx, m.contract); err != nil {
		return types.SecureContractInfo{}, err
	}
	if info.TimeLockPeriodInDays, err = m.inspector.TimeLockPeriodInDays(ctx, m.contract); err != nil {
		return types.SecureContractInfo{}, err
	}
	if info.OperationHistory, err = m.inspector.GetOperationHistory(ctx, m.contract); err != nil {
		return types.SecureContractInfo{}, err
	}
	if info.SupportedOperationTypes, err = m.inspector.GetSupportedOperationTypes(ctx, m.contract); err != nil {
		return types.SecureContractInfo{}, err
	}

	// Chain name is cosmetic; an unknown chain id leaves it empty.
	if details, derr := cselectors.GetChainDetailsByChainIDAndFamily(cast.ToString(m.chainID), cselectors.FamilyEVM); derr == nil {
		info.ChainName = details.ChainName
	}

	return info, nil
}

// TransferOwnershipRequest opens a two-phase ownership transfer. Only the
// recovery address may initiate.
func (m *Manager) TransferOwnershipRequest(ctx context.Context, caller types.CallerContext) (types.TransactionResult, error) {
	if err := m.requireExecutor(); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.requireCaller(caller); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.validateRoles(ctx, caller, RoleRecovery); err != nil {
		return types.TransactionResult{}, err
	}

	return m.executor.TransferOwnershipRequest(ctx, m.contract)
}

// TransferOwnershipApprove approves a pending ownership transfer once its
// release time has passed. Owner or recovery may approve.
func (m *Manager) TransferOwnershipApprove(ctx context.Context, caller types.CallerContext, txID *big.Int) (types.TransactionResult, error) {
	if err := m.requireExecutor(); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.requireCaller(caller); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.validateRoles(ctx, caller, RoleOwner, RoleRecovery); err != nil {
		return types.TransactionResult{}, err
	}

	rec, err := m.inspector.GetOperation(ctx, m.contract, txID)
	if err != nil {
		return types.TransactionResult{}, err
	}
	if err := ValidateApprovable(rec, m.now()); err != nil {
		return types.TransactionResult{}, err
	}

	return m.executor.TransferOwnershipDelayedApproval(ctx, m.contract, txID)
}

// TransferOwnershipCancel cancels a pending ownership transfer after the
// cool-down. Cancellation is restricted to the requesting role (recovery).
func (m *Manager) TransferOwnershipCancel(ctx context.Context, caller types.CallerContext, txID *big.Int) (types.TransactionResult, error) {
	if err := m.requireExecutor(); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.requireCaller(caller); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.validateRoles(ctx, caller, RoleRecovery); err != nil {
		return types.TransactionResult{}, err
	}

	rec, err := m.inspector.GetOperation(ctx, m.contract, txID)
	if err != nil {
		return types.TransactionResult{}, err
	}
	period, err := m.timelockPeriod(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}
	if err := ValidateCancellable(rec, period, m.now()); err != nil {
		return types.TransactionResult{}, err
	}

	return m.executor.TransferOwnershipCancellation(ctx, m.contract, txID)
}

// UpdateBroadcasterRequest opens a two-phase broadcaster change. Owner only.
func (m *Manager) UpdateBroadcasterRequest(ctx context.Context, caller types.CallerContext, newBroadcaster common.Address) (types.TransactionResult, error) {
	if err := m.requireExecutor(); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.requireCaller(caller); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.validateRoles(ctx, caller, RoleOwner); err != nil {
		return types.TransactionResult{}, err
	}

	current, err := m.inspector.Broadcaster(ctx, m.contract)
	if err != nil {
		return types.TransactionResult{}, err
	}
	if newBroadcaster == current {
		return types.TransactionResult{}, NewNoOpChangeError("broadcaster")
	}

	return m.executor.UpdateBroadcasterRequest(ctx, m.contract, newBroadcaster)
}

// UpdateBroadcasterApprove approves a pending broadcaster change once its
// release time has passed. Owner only.
func (m *Manager) UpdateBroadcasterApprove(ctx context.Context, caller types.CallerContext, txID *big.Int) (types.TransactionResult, error) {
	if err := m.requireExecutor(); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.requireCaller(caller); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.validateRoles(ctx, caller, RoleOwner); err != nil {
		return types.TransactionResult{}, err
	}

	rec, err := m.inspector.GetOperation(ctx, m.contract, txID)
	if err != nil {
		return types.TransactionResult{}, err
	}
	if err := ValidateApprovable(rec, m.now()); err != nil {
		return types.TransactionResult{}, err
	}

	return m.executor.UpdateBroadcasterDelayedApproval(ctx, m.contract, txID)
}

// UpdateBroadcasterCancel cancels a pending broadcaster change after the
// cool-down. Owner only.
func (m *Manager) UpdateBroadcasterCancel(ctx context.Context, caller types.CallerContext, txID *big.Int) (types.TransactionResult, error) {
	if err := m.requireExecutor(); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.requireCaller(caller); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.validateRoles(ctx, caller, RoleOwner); err != nil {
		return types.TransactionResult{}, err
	}

	rec, err := m.inspector.GetOperation(ctx, m.contract, txID)
	if err != nil {
		return types.TransactionResult{}, err
	}
	period, err := m.timelockPeriod(ctx)
	if err != nil {
		return types.TransactionResult{}, err
	}
	if err := ValidateCancellable(rec, period, m.now()); err != nil {
		return types.TransactionResult{}, err
	}

	return m.executor.UpdateBroadcasterCancellation(ctx, m.contract, txID)
}

// signAndStore signs the digest of an assembled meta-transaction and places
// it in the pending-transaction store for the broadcaster to pick up.
func (m *Manager) signAndStore(
	metaTx types.MetaTransaction,
	signer Signer,
	opType types.OperationType,
	action types.TxAction,
) (types.MetaTransaction, error) {
	sig, err := signer.Sign(metaTx.Message.Bytes())
	if err != nil {
		return types.MetaTransaction{}, fmt.Errorf("failed to sign meta transaction: %w", err)
	}
	metaTx.Signature = sig

	payload, err := json.Marshal(metaTx)
	if err != nil {
		return types.MetaTransaction{}, fmt.Errorf("failed to encode signed meta transaction: %w", err)
	}

	key := "0"
	if metaTx.TxRecord.TxID != nil {
		key = metaTx.TxRecord.TxID.String()
	}
	if err := m.store.Store(key, string(payload), EntryMetadata{Type: opType, Action: action}); err != nil {
		return types.MetaTransaction{}, fmt.Errorf("failed to store signed meta transaction: %w", err)
	}

	return metaTx, nil
}

// signExisting is the shared path of the approve/cancel-by-meta-tx flows.
func (m *Manager) signExisting(
	ctx context.Context,
	caller types.CallerContext,
	signer Signer,
	txID *big.Int,
	params types.MetaTransactionParams,
	opType types.OperationType,
	action types.TxAction,
	roles ...Role,
) (types.MetaTransaction, error) {
	if err := m.requireCaller(caller); err != nil {
		return types.MetaTransaction{}, err
	}
	if err := m.validateRoles(ctx, caller, roles...); err != nil {
		return types.MetaTransaction{}, err
	}

	// The record must be of the operation type this flow handles. Otherwise
	// the payload would be stored under the wrong type and handed to a
	// handler its selector does not target.
	rec, err := m.inspector.GetOperation(ctx, m.contract, txID)
	if err != nil {
		return types.MetaTransaction{}, err
	}
	if rec.OperationType != opType {
		return types.MetaTransaction{}, NewOperationTypeMismatchError(txID, opType, rec.OperationType)
	}

	if params.ChainID == 0 {
		params.ChainID = m.chainID
	}
	if params.Signer == (common.Address{}) {
		params.Signer = caller.Address
	}
	if params.HandlerContract == (common.Address{}) {
		params.HandlerContract = common.HexToAddress(m.contract)
	}

	metaTx, err := m.builder.BuildForExisting(ctx, txID, params, action == types.ActionApprove)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	return m.signAndStore(metaTx, signer, opType, action)
}

// SignTransferOwnershipApproval has the owner (or recovery) sign an approval
// of a pending ownership transfer during the timelock window. The resulting
// payload is stored for the broadcaster.
func (m *Manager) SignTransferOwnershipApproval(ctx context.Context, caller types.CallerContext, signer Signer, txID *big.Int, params types.MetaTransactionParams) (types.MetaTransaction, error) {
	return m.signExisting(ctx, caller, signer, txID, params,
		types.OwnershipTransfer, types.ActionApprove, RoleOwner, RoleRecovery)
}

// SignTransferOwnershipCancellation has the recovery address sign a
// cancellation of a pending ownership transfer.
func (m *Manager) SignTransferOwnershipCancellation(ctx context.Context, caller types.CallerContext, signer Signer, txID *big.Int, params types.MetaTransactionParams) (types.MetaTransaction, error) {
	return m.signExisting(ctx, caller, signer, txID, params,
		types.OwnershipTransfer, types.ActionCancel, RoleRecovery)
}

// SignBroadcasterUpdateApproval has the owner sign an approval of a pending
// broadcaster change.
func (m *Manager) SignBroadcasterUpdateApproval(ctx context.Context, caller types.CallerContext, signer Signer, txID *big.Int, params types.MetaTransactionParams) (types.MetaTransaction, error) {
	return m.signExisting(ctx, caller, signer, txID, params,
		types.BroadcasterUpdate, types.ActionApprove, RoleOwner)
}

// SignBroadcasterUpdateCancellation has the owner sign a cancellation of a
// pending broadcaster change.
func (m *Manager) SignBroadcasterUpdateCancellation(ctx context.Context, caller types.CallerContext, signer Signer, txID *big.Int, params types.MetaTransactionParams) (types.MetaTransaction, error) {
	return m.signExisting(ctx, caller, signer, txID, params,
		types.BroadcasterUpdate, types.ActionCancel, RoleOwner)
}

// signNew is the shared path of the single-phase requestAndApprove flows.
func (m *Manager) signNew(
	ctx context.Context,
	caller types.CallerContext,
	signer Signer,
	opType types.OperationType,
	executionOptions []byte,
	params types.MetaTransactionParams,
) (types.MetaTransaction, error) {
	if params.ChainID == 0 {
		params.ChainID = m.chainID
	}
	if params.Signer == (common.Address{}) {
		params.Signer = caller.Address
	}
	if params.HandlerContract == (common.Address{}) {
		params.HandlerContract = common.HexToAddress(m.contract)
	}

	metaTx, err := m.builder.BuildForNew(ctx, caller.Address, common.HexToAddress(m.contract),
		opType, types.ExecutionTypeRaw, executionOptions, nil, 0, params)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	return m.signAndStore(metaTx, signer, opType, types.ActionRequestAndApprove)
}

// SignRecoveryUpdate has the owner sign a single-phase recovery address
// change. The new address must differ from the current recovery address and
// from the current owner.
func (m *Manager) SignRecoveryUpdate(ctx context.Context, caller types.CallerContext, signer Signer, newRecovery common.Address, params types.MetaTransactionParams) (types.MetaTransaction, error) {
	if err := m.requireCaller(caller); err != nil {
		return types.MetaTransaction{}, err
	}
	if err := m.validateRoles(ctx, caller, RoleOwner); err != nil {
		return types.MetaTransaction{}, err
	}

	current, err := m.inspector.RecoveryAddress(ctx, m.contract)
	if err != nil {
		return types.MetaTransaction{}, err
	}
	if newRecovery == current {
		return types.MetaTransaction{}, NewInvalidRecoveryAddressError(newRecovery, "equals the current recovery address")
	}
	owner, err := m.inspector.Owner(ctx, m.contract)
	if err != nil {
		return types.MetaTransaction{}, err
	}
	if newRecovery == owner {
		return types.MetaTransaction{}, NewInvalidRecoveryAddressError(newRecovery, "equals the current owner")
	}

	executionOptions, err := m.inspector.UpdateRecoveryExecutionOptions(ctx, m.contract, newRecovery)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	return m.signNew(ctx, caller, signer, types.RecoveryUpdate, executionOptions, params)
}

// SignTimeLockUpdate has the owner sign a single-phase timelock period
// change. The new period must lie within the allowed bounds and differ from
// the current period.
func (m *Manager) SignTimeLockUpdate(ctx context.Context, caller types.CallerContext, signer Signer, periodInDays uint64, params types.MetaTransactionParams) (types.MetaTransaction, error) {
	if err := m.requireCaller(caller); err != nil {
		return types.MetaTransaction{}, err
	}
	if err := m.validateRoles(ctx, caller, RoleOwner); err != nil {
		return types.MetaTransaction{}, err
	}
	if err := ValidateTimelockPeriod(periodInDays); err != nil {
		return types.MetaTransaction{}, err
	}

	current, err := m.inspector.TimeLockPeriodInDays(ctx, m.contract)
	if err != nil {
		return types.MetaTransaction{}, err
	}
	if periodInDays == current {
		return types.MetaTransaction{}, NewNoOpChangeError("timelock period")
	}

	executionOptions, err := m.inspector.UpdateTimeLockExecutionOptions(ctx, m.contract, periodInDays)
	if err != nil {
		return types.MetaTransaction{}, err
	}

	return m.signNew(ctx, caller, signer, types.TimelockUpdate, executionOptions, params)
}

// Broadcast submits the stored unbroadcast signed meta-transaction matching
// the operation type and action. Only the broadcaster may submit. On success
// (mined receipt) the stored entry is marked broadcasted; on failure the
// entry is left untouched so it can be resubmitted.
func (m *Manager) Broadcast(ctx context.Context, caller types.CallerContext, opType types.OperationType, action types.TxAction) (types.TransactionResult, error) {
	if err := m.requireExecutor(); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.requireCaller(caller); err != nil {
		return types.TransactionResult{}, err
	}
	if err := m.validateRoles(ctx, caller, RoleBroadcaster); err != nil {
		return types.TransactionResult{}, err
	}

	desc, ok := DescriptorFor(opType)
	if !ok {
		return types.TransactionResult{}, NewUnsupportedOperationError(opType, action)
	}
	handler, err := desc.HandlerName(action)
	if err != nil {
		return types.TransactionResult{}, err
	}

	entries, err := m.store.List()
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to list pending transactions: %w", err)
	}

	var entry *StoreEntry
	for _, e := range entries {
		if e.Metadata.Type == opType && e.Metadata.Action == action && !e.Metadata.Broadcasted {
			entry = &e

			break
		}
	}
	if entry == nil {
		return types.TransactionResult{}, NewNoPendingSignatureError(opType, action)
	}

	var metaTx types.MetaTransaction
	if err := json.Unmarshal([]byte(entry.SignedPayload), &metaTx); err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to decode stored meta transaction %s: %w", entry.TxID, err)
	}

	// The payload's pinned selector must target the handler about to be
	// called, and its signature must recover to the signer it names. Both
	// would revert on chain; failing here costs the broadcaster no gas.
	expected, err := desc.HandlerSelector(action)
	if err != nil {
		return types.TransactionResult{}, err
	}
	if metaTx.Params.HandlerSelector != expected {
		return types.TransactionResult{}, NewSelectorMismatchError(handler, expected, metaTx.Params.HandlerSelector)
	}

	sig, err := types.NewSignatureFromBytes(metaTx.Signature)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("stored meta transaction %s is not signed: %w", entry.TxID, err)
	}
	recovered, err := sig.Recover(metaTx.Message)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to recover signer of meta transaction %s: %w", entry.TxID, err)
	}
	if recovered != metaTx.Params.Signer {
		return types.TransactionResult{}, NewInvalidSignatureError(metaTx.Params.Signer, recovered)
	}

	result, err := m.submitMetaTx(ctx, handler, metaTx)
	if err != nil {
		return types.TransactionResult{}, err
	}

	if _, err := result.Wait(ctx); err != nil {
		return result, err
	}

	meta := entry.Metadata
	meta.Broadcasted = true
	if err := m.store.Store(entry.TxID, entry.SignedPayload, meta); err != nil {
		return result, fmt.Errorf("failed to mark meta transaction %s as broadcasted: %w", entry.TxID, err)
	}

	return result, nil
}

// submitMetaTx dispatches a signed meta-transaction to the executor entry
// point matching its handler.
func (m *Manager) submitMetaTx(ctx context.Context, handler string, metaTx types.MetaTransaction) (types.TransactionResult, error) {
	switch handler {
	case "transferOwnershipApprovalWithMetaTx":
		return m.executor.TransferOwnershipApprovalWithMetaTx(ctx, m.contract, metaTx)
	case "transferOwnershipCancellationWithMetaTx":
		return m.executor.TransferOwnershipCancellationWithMetaTx(ctx, m.contract, metaTx)
	case "updateBroadcasterApprovalWithMetaTx":
		return m.executor.UpdateBroadcasterApprovalWithMetaTx(ctx, m.contract, metaTx)
	case "updateBroadcasterCancellationWithMetaTx":
		return m.executor.UpdateBroadcasterCancellationWithMetaTx(ctx, m.contract, metaTx)
	case "updateRecoveryRequestAndApprove":
		return m.executor.UpdateRecoveryRequestAndApprove(ctx, m.contract, metaTx)
	case "updateTimeLockRequestAndApprove":
		return m.executor.UpdateTimeLockRequestAndApprove(ctx, m.contract, metaTx)
	default:
		return types.TransactionResult{}, fmt.Errorf("no executor entry point for handler %q", handler)
	}
}
