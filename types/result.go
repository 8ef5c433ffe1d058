package types

import (
	"context"
	"errors"

	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// ErrNoReceiptWaiter is returned by TransactionResult.Wait when the result
// was constructed without a receipt waiter (e.g. in tests).
var ErrNoReceiptWaiter = errors.New("transaction result has no receipt waiter")

// ReceiptWaiter blocks until the transaction is mined and returns its
// receipt, or an error if mining failed or the context was cancelled.
type ReceiptWaiter func(ctx context.Context) (*gethtypes.Receipt, error)

// TransactionResult represents a submitted blockchain transaction.
// It contains the hash of the transaction and the transaction itself.
// Users of this struct should cast RawTransaction to the appropriate type.
type TransactionResult struct {
	Hash           string `json:"hash"`
	RawTransaction any    `json:"tx"`

	waiter ReceiptWaiter
}

// NewTransactionResult creates a TransactionResult. waiter may be nil for
// results that will never be awaited.
func NewTransactionResult(hash string, rawTx any, waiter ReceiptWaiter) TransactionResult {
	return TransactionResult{Hash: hash, RawTransaction: rawTx, waiter: waiter}
}

// Wait blocks until the transaction is mined. It returns an error if the
// transaction reverted on chain.
func (r TransactionResult) Wait(ctx context.Context) (*gethtypes.Receipt, error) {
	if r.waiter == nil {
		return nil, ErrNoReceiptWaiter
	}

	return r.waiter(ctx)
}
