package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TxAction tags what a signed meta-transaction does when broadcast. The
// pending-transaction store indexes entries by operation type and action.
type TxAction string

const (
	// ActionApprove approves an existing PENDING two-phase operation.
	ActionApprove TxAction = "approve"
	// ActionCancel cancels an existing PENDING two-phase operation.
	ActionCancel TxAction = "cancel"
	// ActionRequestAndApprove creates and executes a single-phase operation
	// in one transaction.
	ActionRequestAndApprove TxAction = "requestAndApprove"
)

// MetaTransactionParams are the signer-chosen parameters of a
// meta-transaction: who signs, when the signature expires, how much the
// broadcaster may pay for gas, and which handler the broadcaster is expected
// to invoke.
type MetaTransactionParams struct {
	ChainID         uint64         `json:"chainId" validate:"required"`
	Nonce           uint64         `json:"nonce"`
	HandlerContract common.Address `json:"handlerContract"`
	HandlerSelector [4]byte        `json:"handlerSelector"`

	// Deadline is the unix timestamp after which the signature is no longer
	// accepted by the contract. Must be strictly in the future at signing
	// time.
	Deadline    uint64         `json:"deadline" validate:"required"`
	MaxGasPrice *big.Int       `json:"maxGasPrice"`
	Signer      common.Address `json:"signer" validate:"required"`
}

// MetaTransaction is an off-chain-signed operation. It wraps either a full
// TxRecord (new-operation variant) or a TxID reference to an already
// requested operation (existing-operation variant).
//
// Lifecycle: built unsigned by the builder, signed by the role holder,
// persisted in the pending-transaction store, fetched and submitted by the
// broadcaster, and finally marked broadcasted once mined. A signature is
// valid for exactly one execution attempt recognized by the contract.
type MetaTransaction struct {
	TxRecord TxRecord              `json:"txRecord"`
	Params   MetaTransactionParams `json:"params"`

	// Message is the digest computed by the contract over the record and
	// params. This is what the role holder signs.
	Message   common.Hash `json:"message"`
	Signature []byte      `json:"signature,omitempty"`

	// Broadcasted is set once the submission transaction is mined. It is
	// monotonic: it never transitions back to false.
	Broadcasted bool `json:"broadcasted"`
}

// Signed reports whether the meta-transaction carries a signature.
func (m MetaTransaction) Signed() bool {
	return len(m.Signature) > 0
}
