// Package bindings contains the hand-maintained Go bindings for the
// SecureOwnable contract ABI surface consumed by this SDK. The shapes follow
// the abigen conventions so generated bindings can replace them later
// without touching callers.
package bindings

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// SecureOperationPaymentDetails is an auto generated low-level Go binding around an user-defined struct.
type SecureOperationPaymentDetails struct {
	Recipient         common.Address
	NativeTokenAmount *big.Int
	Erc20TokenAddress common.Address
	Erc20TokenAmount  *big.Int
}

// SecureOperationTxRecord is an auto generated low-level Go binding around an user-defined struct.
type SecureOperationTxRecord struct {
	TxId             *big.Int
	Requester        common.Address
	Target           common.Address
	OperationType    [32]byte
	ExecutionType    uint8
	ExecutionOptions []byte
	ReleaseTime      *big.Int
	Status           uint8
	Payment          SecureOperationPaymentDetails
}

// SecureOperationMetaTxParams is an auto generated low-level Go binding around an user-defined struct.
type SecureOperationMetaTxParams struct {
	ChainId         *big.Int
	Nonce           *big.Int
	HandlerContract common.Address
	HandlerSelector [4]byte
	Deadline        *big.Int
	MaxGasPrice     *big.Int
	Signer          common.Address
}

// SecureOperationMetaTransaction is an auto generated low-level Go binding around an user-defined struct.
type SecureOperationMetaTransaction struct {
	TxRecord  SecureOperationTxRecord
	Params    SecureOperationMetaTxParams
	Message   [32]byte
	Signature []byte
}

// SecureOwnableMetaData contains all meta data concerning the SecureOwnable contract.
var SecureOwnableMetaData = &bind.MetaData{
	ABI: `[
{"type":"function","stateMutability":"view","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}]},
{"type":"function","stateMutability":"view","name":"getBroadcaster","inputs":[],"outputs":[{"name":"","type":"address"}]},
{"type":"function","stateMutability":"view","name":"getRecoveryAddress","inputs":[],"outputs":[{"name":"","type":"address"}]},
{"type":"function","stateMutability":"view","name":"getTimeLockPeriodInDays","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","stateMutability":"view","name":"getOperation","inputs":[{"name":"txId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]}]},
{"type":"function","stateMutability":"view","name":"getOperationHistory","inputs":[],"outputs":[{"name":"","type":"tuple[]","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]}]},
{"type":"function","stateMutability":"view","name":"getSupportedOperationTypes","inputs":[],"outputs":[{"name":"","type":"bytes32[]"}]},
{"type":"function","stateMutability":"view","name":"transferOwnershipExecutionOptions","inputs":[{"name":"newOwner","type":"address"}],"outputs":[{"name":"","type":"bytes"}]},
{"type":"function","stateMutability":"view","name":"updateBroadcasterExecutionOptions","inputs":[{"name":"newBroadcaster","type":"address"}],"outputs":[{"name":"","type":"bytes"}]},
{"type":"function","stateMutability":"view","name":"updateRecoveryExecutionOptions","inputs":[{"name":"newRecoveryAddress","type":"address"}],"outputs":[{"name":"","type":"bytes"}]},
{"type":"function","stateMutability":"view","name":"updateTimeLockExecutionOptions","inputs":[{"name":"newTimeLockPeriodInDays","type":"uint256"}],"outputs":[{"name":"","type":"bytes"}]},
{"type":"function","stateMutability":"view","name":"generateUnsignedMetaTransactionForNew","inputs":[{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"value","type":"uint256"},{"name":"gasLimit","type":"uint256"},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]}],"outputs":[{"name":"","type":"tuple","components":[{"name":"txRecord","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"message","type":"bytes32"},{"name":"signature","type":"bytes"}]}]},
{"type":"function","stateMutability":"view","name":"generateUnsignedMetaTransactionForExisting","inputs":[{"name":"txId","type":"uint256"},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"isApproval","type":"bool"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"txRecord","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"message","type":"bytes32"},{"name":"signature","type":"bytes"}]}]},
{"type":"function","stateMutability":"nonpayable","name":"transferOwnershipRequest","inputs":[],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"transferOwnershipDelayedApproval","inputs":[{"name":"txId","type":"uint256"}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"transferOwnershipCancellation","inputs":[{"name":"txId","type":"uint256"}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"updateBroadcasterRequest","inputs":[{"name":"newBroadcaster","type":"address"}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"updateBroadcasterDelayedApproval","inputs":[{"name":"txId","type":"uint256"}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"updateBroadcasterCancellation","inputs":[{"name":"txId","type":"uint256"}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"transferOwnershipApprovalWithMetaTx","inputs":[{"name":"metaTx","type":"tuple","components":[{"name":"txRecord","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"message","type":"bytes32"},{"name":"signature","type":"bytes"}]}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"transferOwnershipCancellationWithMetaTx","inputs":[{"name":"metaTx","type":"tuple","components":[{"name":"txRecord","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"message","type":"bytes32"},{"name":"signature","type":"bytes"}]}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"updateBroadcasterApprovalWithMetaTx","inputs":[{"name":"metaTx","type":"tuple","components":[{"name":"txRecord","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"message","type":"bytes32"},{"name":"signature","type":"bytes"}]}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"updateBroadcasterCancellationWithMetaTx","inputs":[{"name":"metaTx","type":"tuple","components":[{"name":"txRecord","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"message","type":"bytes32"},{"name":"signature","type":"bytes"}]}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"updateRecoveryRequestAndApprove","inputs":[{"name":"metaTx","type":"tuple","components":[{"name":"txRecord","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"message","type":"bytes32"},{"name":"signature","type":"bytes"}]}],"outputs":[]},
{"type":"function","stateMutability":"nonpayable","name":"updateTimeLockRequestAndApprove","inputs":[{"name":"metaTx","type":"tuple","components":[{"name":"txRecord","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"message","type":"bytes32"},{"name":"signature","type":"bytes"}]}],"outputs":[]},
{"type":"function","stateMutability":"payable","name":"makePayment","inputs":[{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]},{"name":"metaTx","type":"tuple","components":[{"name":"txRecord","type":"tuple","components":[{"name":"txId","type":"uint256"},{"name":"requester","type":"address"},{"name":"target","type":"address"},{"name":"operationType","type":"bytes32"},{"name":"executionType","type":"uint8"},{"name":"executionOptions","type":"bytes"},{"name":"releaseTime","type":"uint256"},{"name":"status","type":"uint8"},{"name":"payment","type":"tuple","components":[{"name":"recipient","type":"address"},{"name":"nativeTokenAmount","type":"uint256"},{"name":"erc20TokenAddress","type":"address"},{"name":"erc20TokenAmount","type":"uint256"}]}]},{"name":"params","type":"tuple","components":[{"name":"chainId","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"handlerContract","type":"address"},{"name":"handlerSelector","type":"bytes4"},{"name":"deadline","type":"uint256"},{"name":"maxGasPrice","type":"uint256"},{"name":"signer","type":"address"}]},{"name":"message","type":"bytes32"},{"name":"signature","type":"bytes"}]}],"outputs":[]}
]`,
}

// SecureOwnable is a Go binding around the SecureOwnable contract.
type SecureOwnable struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewSecureOwnable creates a new instance of SecureOwnable, bound to a specific deployed contract.
func NewSecureOwnable(address common.Address, backend bind.ContractBackend) (*SecureOwnable, error) {
	parsed, err := SecureOwnableMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &SecureOwnable{
		address:  address,
		abi:      *parsed,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
	}, nil
}

// MethodID returns the 4-byte selector of a contract method by its ABI name.
func MethodID(name string) ([4]byte, error) {
	parsed, err := SecureOwnableMetaData.GetAbi()
	if err != nil {
		return [4]byte{}, err
	}

	method, ok := parsed.Methods[name]
	if !ok {
		return [4]byte{}, errors.New("method not found in SecureOwnable ABI: " + name)
	}

	return [4]byte(method.ID), nil
}

// Address returns the contract address the binding is bound to.
func (s *SecureOwnable) Address() common.Address {
	return s.address
}

// Owner is a free data retrieval call binding the contract method owner.
func (s *SecureOwnable) Owner(opts *bind.CallOpts) (common.Address, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "owner"); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// GetBroadcaster is a free data retrieval call binding the contract method getBroadcaster.
func (s *SecureOwnable) GetBroadcaster(opts *bind.CallOpts) (common.Address, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "getBroadcaster"); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// GetRecoveryAddress is a free data retrieval call binding the contract method getRecoveryAddress.
func (s *SecureOwnable) GetRecoveryAddress(opts *bind.CallOpts) (common.Address, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "getRecoveryAddress"); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// GetTimeLockPeriodInDays is a free data retrieval call binding the contract method getTimeLockPeriodInDays.
func (s *SecureOwnable) GetTimeLockPeriodInDays(opts *bind.CallOpts) (*big.Int, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "getTimeLockPeriodInDays"); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// GetOperation is a free data retrieval call binding the contract method getOperation.
func (s *SecureOwnable) GetOperation(opts *bind.CallOpts, txId *big.Int) (SecureOperationTxRecord, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "getOperation", txId); err != nil {
		return SecureOperationTxRecord{}, err
	}

	return *abi.ConvertType(out[0], new(SecureOperationTxRecord)).(*SecureOperationTxRecord), nil
}

// GetOperationHistory is a free data retrieval call binding the contract method getOperationHistory.
func (s *SecureOwnable) GetOperationHistory(opts *bind.CallOpts) ([]SecureOperationTxRecord, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "getOperationHistory"); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]SecureOperationTxRecord)).(*[]SecureOperationTxRecord), nil
}

// GetSupportedOperationTypes is a free data retrieval call binding the contract method getSupportedOperationTypes.
func (s *SecureOwnable) GetSupportedOperationTypes(opts *bind.CallOpts) ([][32]byte, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "getSupportedOperationTypes"); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([][32]byte)).(*[][32]byte), nil
}

// TransferOwnershipExecutionOptions is a free data retrieval call binding the contract method transferOwnershipExecutionOptions.
func (s *SecureOwnable) TransferOwnershipExecutionOptions(opts *bind.CallOpts, newOwner common.Address) ([]byte, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "transferOwnershipExecutionOptions", newOwner); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]byte)).(*[]byte), nil
}

// UpdateBroadcasterExecutionOptions is a free data retrieval call binding the contract method updateBroadcasterExecutionOptions.
func (s *SecureOwnable) UpdateBroadcasterExecutionOptions(opts *bind.CallOpts, newBroadcaster common.Address) ([]byte, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "updateBroadcasterExecutionOptions", newBroadcaster); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]byte)).(*[]byte), nil
}

// UpdateRecoveryExecutionOptions is a free data retrieval call binding the contract method updateRecoveryExecutionOptions.
func (s *SecureOwnable) UpdateRecoveryExecutionOptions(opts *bind.CallOpts, newRecoveryAddress common.Address) ([]byte, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "updateRecoveryExecutionOptions", newRecoveryAddress); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]byte)).(*[]byte), nil
}

// UpdateTimeLockExecutionOptions is a free data retrieval call binding the contract method updateTimeLockExecutionOptions.
func (s *SecureOwnable) UpdateTimeLockExecutionOptions(opts *bind.CallOpts, newTimeLockPeriodInDays *big.Int) ([]byte, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "updateTimeLockExecutionOptions", newTimeLockPeriodInDays); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]byte)).(*[]byte), nil
}

// GenerateUnsignedMetaTransactionForNew is a free data retrieval call binding the contract method generateUnsignedMetaTransactionForNew.
func (s *SecureOwnable) GenerateUnsignedMetaTransactionForNew(
	opts *bind.CallOpts,
	requester common.Address,
	target common.Address,
	operationType [32]byte,
	executionType uint8,
	executionOptions []byte,
	value *big.Int,
	gasLimit *big.Int,
	params SecureOperationMetaTxParams,
) (SecureOperationMetaTransaction, error) {
	var out []any
	err := s.contract.Call(opts, &out, "generateUnsignedMetaTransactionForNew",
		requester, target, operationType, executionType, executionOptions, value, gasLimit, params)
	if err != nil {
		return SecureOperationMetaTransaction{}, err
	}

	return *abi.ConvertType(out[0], new(SecureOperationMetaTransaction)).(*SecureOperationMetaTransaction), nil
}

// GenerateUnsignedMetaTransactionForExisting is a free data retrieval call binding the contract method generateUnsignedMetaTransactionForExisting.
func (s *SecureOwnable) GenerateUnsignedMetaTransactionForExisting(
	opts *bind.CallOpts,
	txId *big.Int,
	params SecureOperationMetaTxParams,
	isApproval bool,
) (SecureOperationMetaTransaction, error) {
	var out []any
	err := s.contract.Call(opts, &out, "generateUnsignedMetaTransactionForExisting", txId, params, isApproval)
	if err != nil {
		return SecureOperationMetaTransaction{}, err
	}

	return *abi.ConvertType(out[0], new(SecureOperationMetaTransaction)).(*SecureOperationMetaTransaction), nil
}

// TransferOwnershipRequest is a paid mutator transaction binding the contract method transferOwnershipRequest.
func (s *SecureOwnable) TransferOwnershipRequest(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "transferOwnershipRequest")
}

// TransferOwnershipDelayedApproval is a paid mutator transaction binding the contract method transferOwnershipDelayedApproval.
func (s *SecureOwnable) TransferOwnershipDelayedApproval(opts *bind.TransactOpts, txId *big.Int) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "transferOwnershipDelayedApproval", txId)
}

// TransferOwnershipCancellation is a paid mutator transaction binding the contract method transferOwnershipCancellation.
func (s *SecureOwnable) TransferOwnershipCancellation(opts *bind.TransactOpts, txId *big.Int) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "transferOwnershipCancellation", txId)
}

// UpdateBroadcasterRequest is a paid mutator transaction binding the contract method updateBroadcasterRequest.
func (s *SecureOwnable) UpdateBroadcasterRequest(opts *bind.TransactOpts, newBroadcaster common.Address) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "updateBroadcasterRequest", newBroadcaster)
}

// UpdateBroadcasterDelayedApproval is a paid mutator transaction binding the contract method updateBroadcasterDelayedApproval.
func (s *SecureOwnable) UpdateBroadcasterDelayedApproval(opts *bind.TransactOpts, txId *big.Int) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "updateBroadcasterDelayedApproval", txId)
}

// UpdateBroadcasterCancellation is a paid mutator transaction binding the contract method updateBroadcasterCancellation.
func (s *SecureOwnable) UpdateBroadcasterCancellation(opts *bind.TransactOpts, txId *big.Int) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "updateBroadcasterCancellation", txId)
}

// TransferOwnershipApprovalWithMetaTx is a paid mutator transaction binding the contract method transferOwnershipApprovalWithMetaTx.
func (s *SecureOwnable) TransferOwnershipApprovalWithMetaTx(opts *bind.TransactOpts, metaTx SecureOperationMetaTransaction) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "transferOwnershipApprovalWithMetaTx", metaTx)
}

// TransferOwnershipCancellationWithMetaTx is a paid mutator transaction binding the contract method transferOwnershipCancellationWithMetaTx.
func (s *SecureOwnable) TransferOwnershipCancellationWithMetaTx(opts *bind.TransactOpts, metaTx SecureOperationMetaTransaction) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "transferOwnershipCancellationWithMetaTx", metaTx)
}

// UpdateBroadcasterApprovalWithMetaTx is a paid mutator transaction binding the contract method updateBroadcasterApprovalWithMetaTx.
func (s *SecureOwnable) UpdateBroadcasterApprovalWithMetaTx(opts *bind.TransactOpts, metaTx SecureOperationMetaTransaction) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "updateBroadcasterApprovalWithMetaTx", metaTx)
}

// UpdateBroadcasterCancellationWithMetaTx is a paid mutator transaction binding the contract method updateBroadcasterCancellationWithMetaTx.
func (s *SecureOwnable) UpdateBroadcasterCancellationWithMetaTx(opts *bind.TransactOpts, metaTx SecureOperationMetaTransaction) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "updateBroadcasterCancellationWithMetaTx", metaTx)
}

// UpdateRecoveryRequestAndApprove is a paid mutator transaction binding the contract method updateRecoveryRequestAndApprove.
func (s *SecureOwnable) UpdateRecoveryRequestAndApprove(opts *bind.TransactOpts, metaTx SecureOperationMetaTransaction) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "updateRecoveryRequestAndApprove", metaTx)
}

// UpdateTimeLockRequestAndApprove is a paid mutator transaction binding the contract method updateTimeLockRequestAndApprove.
func (s *SecureOwnable) UpdateTimeLockRequestAndApprove(opts *bind.TransactOpts, metaTx SecureOperationMetaTransaction) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "updateTimeLockRequestAndApprove", metaTx)
}

// MakePayment is a paid mutator transaction binding the contract method makePayment.
func (s *SecureOwnable) MakePayment(opts *bind.TransactOpts, payment SecureOperationPaymentDetails, metaTx SecureOperationMetaTransaction) (*gethtypes.Transaction, error) {
	return s.contract.Transact(opts, "makePayment", payment, metaTx)
}
