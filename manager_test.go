package secureownable

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/particlecs/secureownable/sdk/evm/bindings"
	"github.com/particlecs/secureownable/sdk/mocks"
	"github.com/particlecs/secureownable/types"
)

var (
	ownerAddr       = common.HexToAddress("0x1111111111111111111111111111111111111111")
	broadcasterAddr = common.HexToAddress("0x2222222222222222222222222222222222222222")
	recoveryAddr    = common.HexToAddress("0x3333333333333333333333333333333333333333")
	strangerAddr    = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

const testChainID uint64 = 1337

func testManager(t *testing.T) (*Manager, *mocks.Executor, *InMemoryStore) {
	t.Helper()

	executor := mocks.NewExecutor(t)
	store := NewInMemoryStore()
	m := NewManagerWithExecutor(executor, store, testContract, testChainID)
	m.now = func() time.Time { return testNow }
	m.builder.now = m.now

	return m, executor, store
}

func caller(addr common.Address) types.CallerContext {
	return types.CallerContext{Address: addr, ChainID: testChainID}
}

func minedResult(hash string) types.TransactionResult {
	return types.NewTransactionResult(hash, nil, func(_ context.Context) (*gethtypes.Receipt, error) {
		return &gethtypes.Receipt{Status: gethtypes.ReceiptStatusSuccessful}, nil
	})
}

func revertedResult(hash string) types.TransactionResult {
	return types.NewTransactionResult(hash, nil, func(_ context.Context) (*gethtypes.Receipt, error) {
		return &gethtypes.Receipt{Status: gethtypes.ReceiptStatusFailed}, fmt.Errorf("transaction %s reverted", hash)
	})
}

func Test_Manager_ReadOnlyRejectsWrites(t *testing.T) {
	t.Parallel()

	inspector := mocks.NewInspector(t)
	m := NewManager(inspector, NewInMemoryStore(), testContract, testChainID)

	_, err := m.TransferOwnershipRequest(t.Context(), caller(recoveryAddr))
	require.ErrorIs(t, err, ErrSignerRequired)

	_, err = m.Broadcast(t.Context(), caller(broadcasterAddr), types.OwnershipTransfer, types.ActionApprove)
	require.ErrorIs(t, err, ErrSignerRequired)
}

func Test_Manager_RequiresCaller(t *testing.T) {
	t.Parallel()

	m, _, _ := testManager(t)

	_, err := m.TransferOwnershipRequest(t.Context(), types.CallerContext{})
	require.ErrorIs(t, err, ErrSenderRequired)
}

func Test_Manager_RejectsWrongChain(t *testing.T) {
	t.Parallel()

	m, _, _ := testManager(t)

	_, err := m.TransferOwnershipRequest(t.Context(), types.CallerContext{
		Address: recoveryAddr,
		ChainID: testChainID + 1,
	})

	var cerr *ChainMismatchError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, testChainID, cerr.Expected)
}

func Test_Manager_TransferOwnershipRequest(t *testing.T) {
	t.Parallel()

	t.Run("only recovery may request", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)

		_, err := m.TransferOwnershipRequest(t.Context(), caller(ownerAddr))

		var uerr *UnauthorizedRoleError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, []Role{RoleRecovery}, uerr.ExpectedRoles)
	})

	t.Run("recovery request is submitted", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)
		executor.On("TransferOwnershipRequest", mock.Anything, testContract).
			Return(minedResult("0xaaa"), nil)

		result, err := m.TransferOwnershipRequest(t.Context(), caller(recoveryAddr))
		require.NoError(t, err)
		assert.Equal(t, "0xaaa", result.Hash)
	})
}

func Test_Manager_TransferOwnershipApprove(t *testing.T) {
	t.Parallel()

	txID := big.NewInt(5)
	release := testNow.Add(24 * time.Hour)
	pending := types.TxRecord{
		TxID:          txID,
		Status:        types.TxStatusPending,
		OperationType: types.OwnershipTransfer,
		ReleaseTime:   uint64(release.Unix()),
	}

	t.Run("before the release time nothing is submitted", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)
		executor.On("GetOperation", mock.Anything, testContract, txID).Return(pending, nil)

		_, err := m.TransferOwnershipApprove(t.Context(), caller(ownerAddr), txID)

		var rerr *NotYetReleasableError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, uint64(release.Unix()), rerr.ReleaseTime)
	})

	t.Run("owner approves once released", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		m.now = func() time.Time { return release }
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)
		executor.On("GetOperation", mock.Anything, testContract, txID).Return(pending, nil)
		executor.On("TransferOwnershipDelayedApproval", mock.Anything, testContract, txID).
			Return(minedResult("0xbbb"), nil)

		result, err := m.TransferOwnershipApprove(t.Context(), caller(ownerAddr), txID)
		require.NoError(t, err)
		assert.Equal(t, "0xbbb", result.Hash)
	})

	t.Run("recovery may also approve", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		m.now = func() time.Time { return release }
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)
		executor.On("GetOperation", mock.Anything, testContract, txID).Return(pending, nil)
		executor.On("TransferOwnershipDelayedApproval", mock.Anything, testContract, txID).
			Return(minedResult("0xccc"), nil)

		_, err := m.TransferOwnershipApprove(t.Context(), caller(recoveryAddr), txID)
		require.NoError(t, err)
	})
}

func Test_Manager_TransferOwnershipCancel(t *testing.T) {
	t.Parallel()

	const timelockDays uint64 = 2

	txID := big.NewInt(5)
	release := testNow.Add(time.Duration(timelockDays) * 24 * time.Hour)
	pending := types.TxRecord{
		TxID:          txID,
		Status:        types.TxStatusPending,
		OperationType: types.OwnershipTransfer,
		ReleaseTime:   uint64(release.Unix()),
	}

	t.Run("within cool-down nothing is submitted", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)
		executor.On("GetOperation", mock.Anything, testContract, txID).Return(pending, nil)
		executor.On("TimeLockPeriodInDays", mock.Anything, testContract).Return(timelockDays, nil)

		_, err := m.TransferOwnershipCancel(t.Context(), caller(recoveryAddr), txID)

		var cerr *CancelCooldownActiveError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("after cool-down recovery cancels", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		m.now = func() time.Time { return testNow.Add(CancelCooldown) }
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)
		executor.On("GetOperation", mock.Anything, testContract, txID).Return(pending, nil)
		executor.On("TimeLockPeriodInDays", mock.Anything, testContract).Return(timelockDays, nil)
		executor.On("TransferOwnershipCancellation", mock.Anything, testContract, txID).
			Return(minedResult("0xddd"), nil)

		_, err := m.TransferOwnershipCancel(t.Context(), caller(recoveryAddr), txID)
		require.NoError(t, err)
	})

	t.Run("owner may not cancel", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)

		_, err := m.TransferOwnershipCancel(t.Context(), caller(ownerAddr), txID)

		var uerr *UnauthorizedRoleError
		require.ErrorAs(t, err, &uerr)
	})
}

func Test_Manager_UpdateBroadcasterRequest(t *testing.T) {
	t.Parallel()

	newBroadcaster := common.HexToAddress("0x5555555555555555555555555555555555555555")

	t.Run("same broadcaster is a no-op change", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("Broadcaster", mock.Anything, testContract).Return(broadcasterAddr, nil)

		_, err := m.UpdateBroadcasterRequest(t.Context(), caller(ownerAddr), broadcasterAddr)

		var nerr *NoOpChangeError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, "broadcaster", nerr.Field)
	})

	t.Run("owner requests a new broadcaster", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("Broadcaster", mock.Anything, testContract).Return(broadcasterAddr, nil)
		executor.On("UpdateBroadcasterRequest", mock.Anything, testContract, newBroadcaster).
			Return(minedResult("0xeee"), nil)

		_, err := m.UpdateBroadcasterRequest(t.Context(), caller(ownerAddr), newBroadcaster)
		require.NoError(t, err)
	})
}

// Exercises the full meta-transaction round trip of a broadcaster update
// approval: the owner signs during the timelock window, the payload lands in
// the store, and the broadcaster later submits it. A reverted submission
// leaves the entry in place for resubmission.
func Test_Manager_SignAndBroadcast(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := NewPrivateKeySigner(key)
	signerAddr := crypto.PubkeyToAddress(key.PublicKey)

	approvalSelector, err := bindings.MethodID("updateBroadcasterApprovalWithMetaTx")
	require.NoError(t, err)

	txID := big.NewInt(11)
	pending := types.TxRecord{
		TxID:          txID,
		Status:        types.TxStatusPending,
		OperationType: types.BroadcasterUpdate,
		ReleaseTime:   uint64(testNow.Add(48 * time.Hour).Unix()),
	}
	unsigned := types.MetaTransaction{
		TxRecord: pending,
		Params: types.MetaTransactionParams{
			ChainID:         testChainID,
			HandlerContract: common.HexToAddress(testContract),
			HandlerSelector: approvalSelector,
			Deadline:        uint64(testNow.Add(time.Hour).Unix()),
			Signer:          signerAddr,
		},
		Message: crypto.Keccak256Hash([]byte("digest")),
	}

	m, executor, store := testManager(t)
	executor.On("Owner", mock.Anything, testContract).Return(signerAddr, nil)
	executor.On("Broadcaster", mock.Anything, testContract).Return(broadcasterAddr, nil)
	executor.On("GetOperation", mock.Anything, testContract, txID).Return(pending, nil)
	executor.On("GenerateUnsignedMetaTransactionForExisting",
		mock.Anything, testContract, txID, mock.Anything, true).
		Return(unsigned, nil)

	params := types.MetaTransactionParams{
		Deadline: uint64(testNow.Add(time.Hour).Unix()),
	}

	metaTx, err := m.SignBroadcasterUpdateApproval(t.Context(), caller(signerAddr), signer, txID, params)
	require.NoError(t, err)
	require.True(t, metaTx.Signed())

	// The signature must recover to the signing key over the raw digest.
	pub, err := crypto.SigToPub(metaTx.Message.Bytes(), normalizedSig(metaTx.Signature))
	require.NoError(t, err)
	assert.Equal(t, signerAddr, crypto.PubkeyToAddress(*pub))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entry := entries[txID.String()]
	assert.Equal(t, types.BroadcasterUpdate, entry.Metadata.Type)
	assert.Equal(t, types.ActionApprove, entry.Metadata.Action)
	assert.False(t, entry.Metadata.Broadcasted)

	t.Run("only the broadcaster may submit", func(t *testing.T) {
		_, err := m.Broadcast(t.Context(), caller(strangerAddr), types.BroadcasterUpdate, types.ActionApprove)

		var uerr *UnauthorizedRoleError
		require.ErrorAs(t, err, &uerr)
	})

	t.Run("no entry for the requested action", func(t *testing.T) {
		_, err := m.Broadcast(t.Context(), caller(broadcasterAddr), types.BroadcasterUpdate, types.ActionCancel)

		var perr *NoPendingSignatureError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("reverted submission leaves the entry for resubmission", func(t *testing.T) {
		executor.On("UpdateBroadcasterApprovalWithMetaTx", mock.Anything, testContract, mock.Anything).
			Return(revertedResult("0xbad"), nil).Once()

		_, err := m.Broadcast(t.Context(), caller(broadcasterAddr), types.BroadcasterUpdate, types.ActionApprove)
		require.Error(t, err)

		entries, err := store.List()
		require.NoError(t, err)
		assert.False(t, entries[txID.String()].Metadata.Broadcasted)
	})

	t.Run("broadcaster resubmits and the entry is marked", func(t *testing.T) {
		executor.On("UpdateBroadcasterApprovalWithMetaTx", mock.Anything, testContract, mock.Anything).
			Return(minedResult("0xfff"), nil).
			Once().
			Run(func(args mock.Arguments) {
				got := args.Get(2).(types.MetaTransaction)
				assert.Equal(t, metaTx.Signature, got.Signature)
				assert.Equal(t, metaTx.Message, got.Message)
			})

		result, err := m.Broadcast(t.Context(), caller(broadcasterAddr), types.BroadcasterUpdate, types.ActionApprove)
		require.NoError(t, err)
		assert.Equal(t, "0xfff", result.Hash)

		entries, err := store.List()
		require.NoError(t, err)
		assert.True(t, entries[txID.String()].Metadata.Broadcasted)
	})

	t.Run("nothing left to broadcast afterwards", func(t *testing.T) {
		_, err := m.Broadcast(t.Context(), caller(broadcasterAddr), types.BroadcasterUpdate, types.ActionApprove)

		var perr *NoPendingSignatureError
		require.ErrorAs(t, err, &perr)
	})
}

// The approve/cancel signing flows must refuse records of another operation
// type; otherwise the payload would be stored under the wrong type and the
// broadcaster would submit it to a handler its selector does not target.
func Test_Manager_SignRejectsWrongOperationType(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := NewPrivateKeySigner(key)

	txID := big.NewInt(12)
	pending := types.TxRecord{
		TxID:          txID,
		Status:        types.TxStatusPending,
		OperationType: types.BroadcasterUpdate,
		ReleaseTime:   uint64(testNow.Add(48 * time.Hour).Unix()),
	}

	m, executor, store := testManager(t)
	executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
	executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)
	executor.On("GetOperation", mock.Anything, testContract, txID).Return(pending, nil)

	params := types.MetaTransactionParams{
		Deadline: uint64(testNow.Add(time.Hour).Unix()),
	}

	_, err = m.SignTransferOwnershipApproval(t.Context(), caller(ownerAddr), signer, txID, params)

	var merr *OperationTypeMismatchError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, types.OwnershipTransfer, merr.Expected)
	assert.Equal(t, types.BroadcasterUpdate, merr.Got)

	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// A stored payload whose pinned selector targets a different handler must be
// rejected before any submission.
func Test_Manager_BroadcastRejectsForeignSelector(t *testing.T) {
	t.Parallel()

	foreignSelector, err := bindings.MethodID("updateBroadcasterApprovalWithMetaTx")
	require.NoError(t, err)

	payload, err := json.Marshal(types.MetaTransaction{
		TxRecord: types.TxRecord{TxID: big.NewInt(13), OperationType: types.OwnershipTransfer},
		Params:   types.MetaTransactionParams{HandlerSelector: foreignSelector},
	})
	require.NoError(t, err)

	m, executor, store := testManager(t)
	executor.On("Broadcaster", mock.Anything, testContract).Return(broadcasterAddr, nil)
	require.NoError(t, store.Store("13", string(payload), EntryMetadata{
		Type:   types.OwnershipTransfer,
		Action: types.ActionApprove,
	}))

	_, err = m.Broadcast(t.Context(), caller(broadcasterAddr), types.OwnershipTransfer, types.ActionApprove)

	var serr *SelectorMismatchError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, foreignSelector, serr.Got)
}

// A stored signature that does not recover to the signer named in the
// payload must be rejected before any submission.
func Test_Manager_BroadcastRejectsForeignSigner(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	selector, err := bindings.MethodID("transferOwnershipApprovalWithMetaTx")
	require.NoError(t, err)

	digest := crypto.Keccak256Hash([]byte("digest"))
	sig, err := NewPrivateKeySigner(key).Sign(digest.Bytes())
	require.NoError(t, err)

	payload, err := json.Marshal(types.MetaTransaction{
		TxRecord: types.TxRecord{TxID: big.NewInt(14), OperationType: types.OwnershipTransfer},
		Params: types.MetaTransactionParams{
			HandlerSelector: selector,
			Signer:          strangerAddr,
		},
		Message:   digest,
		Signature: sig,
	})
	require.NoError(t, err)

	m, executor, store := testManager(t)
	executor.On("Broadcaster", mock.Anything, testContract).Return(broadcasterAddr, nil)
	require.NoError(t, store.Store("14", string(payload), EntryMetadata{
		Type:   types.OwnershipTransfer,
		Action: types.ActionApprove,
	}))

	_, err = m.Broadcast(t.Context(), caller(broadcasterAddr), types.OwnershipTransfer, types.ActionApprove)

	var verr *InvalidSignatureError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, strangerAddr, verr.Signer)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), verr.Recovered)
}

// normalizedSig maps the contract-facing 27/28 recovery id back to the 0/1
// convention SigToPub expects.
func normalizedSig(sig []byte) []byte {
	out := make([]byte, len(sig))
	copy(out, sig)
	if out[crypto.RecoveryIDOffset] >= 27 {
		out[crypto.RecoveryIDOffset] -= 27
	}

	return out
}

func Test_Manager_SignRecoveryUpdate(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := NewPrivateKeySigner(key)

	newRecovery := common.HexToAddress("0x6666666666666666666666666666666666666666")
	params := types.MetaTransactionParams{
		Deadline: uint64(testNow.Add(time.Hour).Unix()),
	}

	t.Run("new recovery equal to current is rejected", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)

		_, err := m.SignRecoveryUpdate(t.Context(), caller(ownerAddr), signer, recoveryAddr, params)

		var rerr *InvalidRecoveryAddressError
		require.ErrorAs(t, err, &rerr)
	})

	t.Run("new recovery equal to owner is rejected", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)

		_, err := m.SignRecoveryUpdate(t.Context(), caller(ownerAddr), signer, ownerAddr, params)

		var rerr *InvalidRecoveryAddressError
		require.ErrorAs(t, err, &rerr)
	})

	t.Run("signed and stored for the broadcaster", func(t *testing.T) {
		t.Parallel()

		execOptions := []byte{0xca, 0xfe}
		unsigned := types.MetaTransaction{
			TxRecord: types.TxRecord{TxID: big.NewInt(0), OperationType: types.RecoveryUpdate},
			Message:  crypto.Keccak256Hash([]byte("recovery digest")),
		}

		m, executor, store := testManager(t)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)
		executor.On("UpdateRecoveryExecutionOptions", mock.Anything, testContract, newRecovery).
			Return(execOptions, nil)
		executor.On("GenerateUnsignedMetaTransactionForNew",
			mock.Anything, testContract, ownerAddr, common.HexToAddress(testContract),
			types.RecoveryUpdate, types.ExecutionTypeRaw, execOptions, (*big.Int)(nil), uint64(0), mock.Anything).
			Return(unsigned, nil)

		metaTx, err := m.SignRecoveryUpdate(t.Context(), caller(ownerAddr), signer, newRecovery, params)
		require.NoError(t, err)
		assert.True(t, metaTx.Signed())

		entries, err := store.List()
		require.NoError(t, err)
		require.Len(t, entries, 1)

		entry := entries["0"]
		assert.Equal(t, types.RecoveryUpdate, entry.Metadata.Type)
		assert.Equal(t, types.ActionRequestAndApprove, entry.Metadata.Action)

		var stored types.MetaTransaction
		require.NoError(t, json.Unmarshal([]byte(entry.SignedPayload), &stored))
		assert.Equal(t, metaTx.Signature, stored.Signature)
	})
}

func Test_Manager_SignTimeLockUpdate(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := NewPrivateKeySigner(key)

	params := types.MetaTransactionParams{
		Deadline: uint64(testNow.Add(time.Hour).Unix()),
	}

	t.Run("period outside bounds is rejected", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)

		_, err := m.SignTimeLockUpdate(t.Context(), caller(ownerAddr), signer, MaxTimelockPeriodInDays+1, params)

		var terr *TimelockOutOfRangeError
		require.ErrorAs(t, err, &terr)
	})

	t.Run("unchanged period is a no-op change", func(t *testing.T) {
		t.Parallel()

		m, executor, _ := testManager(t)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("TimeLockPeriodInDays", mock.Anything, testContract).Return(uint64(7), nil)

		_, err := m.SignTimeLockUpdate(t.Context(), caller(ownerAddr), signer, 7, params)

		var nerr *NoOpChangeError
		require.ErrorAs(t, err, &nerr)
	})

	t.Run("signed and stored for the broadcaster", func(t *testing.T) {
		t.Parallel()

		execOptions := []byte{0xbe, 0xef}
		unsigned := types.MetaTransaction{
			TxRecord: types.TxRecord{TxID: big.NewInt(0), OperationType: types.TimelockUpdate},
			Message:  crypto.Keccak256Hash([]byte("timelock digest")),
		}

		m, executor, store := testManager(t)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("TimeLockPeriodInDays", mock.Anything, testContract).Return(uint64(7), nil)
		executor.On("UpdateTimeLockExecutionOptions", mock.Anything, testContract, uint64(14)).
			Return(execOptions, nil)
		executor.On("GenerateUnsignedMetaTransactionForNew",
			mock.Anything, testContract, ownerAddr, common.HexToAddress(testContract),
			types.TimelockUpdate, types.ExecutionTypeRaw, execOptions, (*big.Int)(nil), uint64(0), mock.Anything).
			Return(unsigned, nil)

		metaTx, err := m.SignTimeLockUpdate(t.Context(), caller(ownerAddr), signer, 14, params)
		require.NoError(t, err)
		assert.True(t, metaTx.Signed())

		entries, err := store.List()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, types.ActionRequestAndApprove, entries["0"].Metadata.Action)
	})
}

func Test_Manager_Refresh(t *testing.T) {
	t.Parallel()

	history := []types.TxRecord{{TxID: big.NewInt(1), Status: types.TxStatusCompleted}}
	supported := []types.OperationType{types.OwnershipTransfer, types.BroadcasterUpdate}

	executor := mocks.NewExecutor(t)
	m := NewManagerWithExecutor(executor, NewInMemoryStore(), testContract, testChainID)

	executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
	executor.On("Broadcaster", mock.Anything, testContract).Return(broadcasterAddr, nil)
	executor.On("RecoveryAddress", mock.Anything, testContract).Return(recoveryAddr, nil)
	executor.On("TimeLockPeriodInDays", mock.Anything, testContract).Return(uint64(7), nil)
	executor.On("GetOperationHistory", mock.Anything, testContract).Return(history, nil)
	executor.On("GetSupportedOperationTypes", mock.Anything, testContract).Return(supported, nil)

	info, err := m.Refresh(t.Context())
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress(testContract), info.Address)
	assert.Equal(t, ownerAddr, info.Owner)
	assert.Equal(t, broadcasterAddr, info.Broadcaster)
	assert.Equal(t, recoveryAddr, info.RecoveryAddress)
	assert.Equal(t, uint64(7), info.TimeLockPeriodInDays)
	assert.Equal(t, uint64(7*types.MinutesPerDay), info.TimeLockPeriodInMinutes())
	assert.Equal(t, testChainID, info.ChainID)
	assert.Equal(t, history, info.OperationHistory)
	assert.Equal(t, supported, info.SupportedOperationTypes)
}

func Test_Manager_ValidateContract(t *testing.T) {
	t.Parallel()

	t.Run("valid contract", func(t *testing.T) {
		t.Parallel()

		executor := mocks.NewExecutor(t)
		m := NewManagerWithExecutor(executor, NewInMemoryStore(), testContract, testChainID)
		executor.On("Owner", mock.Anything, testContract).Return(ownerAddr, nil)
		executor.On("GetSupportedOperationTypes", mock.Anything, testContract).
			Return([]types.OperationType{types.OwnershipTransfer}, nil)

		require.NoError(t, m.ValidateContract(t.Context()))
	})

	t.Run("address without the read interface", func(t *testing.T) {
		t.Parallel()

		executor := mocks.NewExecutor(t)
		m := NewManagerWithExecutor(executor, NewInMemoryStore(), testContract, testChainID)
		executor.On("Owner", mock.Anything, testContract).
			Return(common.Address{}, assert.AnError)

		err := m.ValidateContract(t.Context())

		var cerr *InvalidContractError
		require.ErrorAs(t, err, &cerr)
		require.ErrorIs(t, err, assert.AnError)
	})
}
