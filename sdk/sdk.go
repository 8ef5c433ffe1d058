// Package sdk defines the capability interfaces the workflow orchestrator
// depends on to talk to a SecureOwnable contract. Read-only access and
// read-write access are split into separate interfaces selected at
// construction time, so read-only consumers never carry signing material.
package sdk

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// ContractDeployBackend is the chain transport required by gateway
// implementations: contract calls plus receipt lookups.
type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}
