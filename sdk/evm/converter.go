package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/particlecs/secureownable/sdk/evm/bindings"
	"github.com/particlecs/secureownable/types"
)

// toTxRecord converts a binding record into the client-side model.
func toTxRecord(r bindings.SecureOperationTxRecord) types.TxRecord {
	rec := types.TxRecord{
		TxID:             r.TxId,
		Requester:        r.Requester,
		Target:           r.Target,
		OperationType:    types.OperationTypeFromHash(common.Hash(r.OperationType)),
		ExecutionType:    types.ExecutionType(r.ExecutionType),
		ExecutionOptions: r.ExecutionOptions,
		Status:           types.TxStatus(r.Status),
	}
	if r.ReleaseTime != nil {
		rec.ReleaseTime = r.ReleaseTime.Uint64()
	}

	// A zero-valued payment tuple means the operation type is not
	// payment-capable.
	hasPayment := r.Payment.Recipient != (common.Address{}) ||
		r.Payment.Erc20TokenAddress != (common.Address{}) ||
		isNonZero(r.Payment.NativeTokenAmount) ||
		isNonZero(r.Payment.Erc20TokenAmount)
	if hasPayment {
		rec.Payment = &types.PaymentDetails{
			Recipient:         r.Payment.Recipient,
			NativeTokenAmount: r.Payment.NativeTokenAmount,
			ERC20TokenAddress: r.Payment.Erc20TokenAddress,
			ERC20TokenAmount:  r.Payment.Erc20TokenAmount,
		}
	}

	return rec
}

func isNonZero(v *big.Int) bool {
	return v != nil && v.Sign() != 0
}

// toBindingTxRecord converts a client-side record into its binding shape.
func toBindingTxRecord(r types.TxRecord) bindings.SecureOperationTxRecord {
	rec := bindings.SecureOperationTxRecord{
		TxId:             r.TxID,
		Requester:        r.Requester,
		Target:           r.Target,
		OperationType:    r.OperationType.Hash(),
		ExecutionType:    uint8(r.ExecutionType),
		ExecutionOptions: r.ExecutionOptions,
		ReleaseTime:      new(big.Int).SetUint64(r.ReleaseTime),
		Status:           uint8(r.Status),
		Payment: bindings.SecureOperationPaymentDetails{
			NativeTokenAmount: big.NewInt(0),
			Erc20TokenAmount:  big.NewInt(0),
		},
	}
	if r.TxID == nil {
		rec.TxId = big.NewInt(0)
	}
	if r.Payment != nil {
		rec.Payment = toBindingPayment(*r.Payment)
	}

	return rec
}

func toBindingPayment(p types.PaymentDetails) bindings.SecureOperationPaymentDetails {
	out := bindings.SecureOperationPaymentDetails{
		Recipient:         p.Recipient,
		NativeTokenAmount: p.NativeTokenAmount,
		Erc20TokenAddress: p.ERC20TokenAddress,
		Erc20TokenAmount:  p.ERC20TokenAmount,
	}
	if out.NativeTokenAmount == nil {
		out.NativeTokenAmount = big.NewInt(0)
	}
	if out.Erc20TokenAmount == nil {
		out.Erc20TokenAmount = big.NewInt(0)
	}

	return out
}

// toBindingParams converts meta-transaction params into their binding shape.
func toBindingParams(p types.MetaTransactionParams) bindings.SecureOperationMetaTxParams {
	maxGasPrice := p.MaxGasPrice
	if maxGasPrice == nil {
		maxGasPrice = big.NewInt(0)
	}

	return bindings.SecureOperationMetaTxParams{
		ChainId:         new(big.Int).SetUint64(p.ChainID),
		Nonce:           new(big.Int).SetUint64(p.Nonce),
		HandlerContract: p.HandlerContract,
		HandlerSelector: p.HandlerSelector,
		Deadline:        new(big.Int).SetUint64(p.Deadline),
		MaxGasPrice:     maxGasPrice,
		Signer:          p.Signer,
	}
}

// toMetaTransaction converts a binding meta-transaction into the client-side
// model.
func toMetaTransaction(m bindings.SecureOperationMetaTransaction) types.MetaTransaction {
	out := types.MetaTransaction{
		TxRecord: toTxRecord(m.TxRecord),
		Params: types.MetaTransactionParams{
			HandlerContract: m.Params.HandlerContract,
			HandlerSelector: m.Params.HandlerSelector,
			MaxGasPrice:     m.Params.MaxGasPrice,
			Signer:          m.Params.Signer,
		},
		Message:   common.Hash(m.Message),
		Signature: m.Signature,
	}
	if m.Params.ChainId != nil {
		out.Params.ChainID = m.Params.ChainId.Uint64()
	}
	if m.Params.Nonce != nil {
		out.Params.Nonce = m.Params.Nonce.Uint64()
	}
	if m.Params.Deadline != nil {
		out.Params.Deadline = m.Params.Deadline.Uint64()
	}

	return out
}

// toBindingMetaTransaction converts a client-side meta-transaction into its
// binding shape for submission.
func toBindingMetaTransaction(m types.MetaTransaction) bindings.SecureOperationMetaTransaction {
	return bindings.SecureOperationMetaTransaction{
		TxRecord:  toBindingTxRecord(m.TxRecord),
		Params:    toBindingParams(m.Params),
		Message:   m.Message,
		Signature: m.Signature,
	}
}
