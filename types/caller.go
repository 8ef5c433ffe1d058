package types

import "github.com/ethereum/go-ethereum/common"

// CallerContext identifies the wallet on whose behalf an orchestrator call
// is made. It is passed explicitly into every call rather than read from
// ambient connection state.
type CallerContext struct {
	Address common.Address
	ChainID uint64
}

// IsZero reports whether no caller address was supplied.
func (c CallerContext) IsZero() bool {
	return c.Address == (common.Address{})
}
