package types

import "github.com/ethereum/go-ethereum/common"

// MinutesPerDay converts the contract's day-denominated timelock period into
// the minute-denominated view used by clients.
const MinutesPerDay = 24 * 60

// SecureContractInfo is an aggregate client-side snapshot of a SecureOwnable
// contract. It is rebuilt by re-reading the contract and never mutated in
// place.
type SecureContractInfo struct {
	Address               common.Address `json:"address"`
	Owner                 common.Address `json:"owner"`
	Broadcaster           common.Address `json:"broadcaster"`
	RecoveryAddress       common.Address `json:"recoveryAddress"`
	TimeLockPeriodInDays  uint64         `json:"timeLockPeriodInDays"`
	ChainID               uint64         `json:"chainId"`
	ChainName             string         `json:"chainName"`
	OperationHistory      []TxRecord     `json:"operationHistory"`
	SupportedOperationTypes []OperationType `json:"supportedOperationTypes"`
}

// TimeLockPeriodInMinutes returns the timelock period converted to minutes.
func (i SecureContractInfo) TimeLockPeriodInMinutes() uint64 {
	return i.TimeLockPeriodInDays * MinutesPerDay
}
