package secureownable

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer is a strategy for signing meta-transaction digests. The digest is
// the final message computed by the contract, so implementations must not
// apply any additional prefixing.
type Signer interface {
	Sign(digest []byte) ([]byte, error)
	GetAddress() (common.Address, error)
}

var _ Signer = &PrivateKeySigner{}

// PrivateKeySigner signs digests using an in-memory private key.
type PrivateKeySigner struct {
	pk *ecdsa.PrivateKey
}

// NewPrivateKeySigner creates a new PrivateKeySigner.
func NewPrivateKeySigner(pk *ecdsa.PrivateKey) *PrivateKeySigner {
	return &PrivateKeySigner{pk: pk}
}

// Sign signs the digest using the private key. The recovery id is adjusted
// to the 27/28 convention expected by the contract's ecrecover.
func (s *PrivateKeySigner) Sign(digest []byte) ([]byte, error) {
	sig, err := crypto.Sign(digest, s.pk)
	if err != nil {
		return nil, err
	}

	if sig[crypto.RecoveryIDOffset] < 27 {
		sig[crypto.RecoveryIDOffset] += 27
	}

	return sig, nil
}

// GetAddress returns the address of the signer.
func (s *PrivateKeySigner) GetAddress() (common.Address, error) {
	return crypto.PubkeyToAddress(s.pk.PublicKey), nil
}
