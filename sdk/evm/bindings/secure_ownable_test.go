package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MethodID(t *testing.T) {
	t.Parallel()

	handlers := []string{
		"transferOwnershipApprovalWithMetaTx",
		"transferOwnershipCancellationWithMetaTx",
		"updateBroadcasterApprovalWithMetaTx",
		"updateBroadcasterCancellationWithMetaTx",
		"updateRecoveryRequestAndApprove",
		"updateTimeLockRequestAndApprove",
	}

	seen := make(map[[4]byte]string, len(handlers))
	for _, name := range handlers {
		selector, err := MethodID(name)
		require.NoError(t, err, name)
		assert.NotEqual(t, [4]byte{}, selector, name)

		clash, dup := seen[selector]
		require.False(t, dup, "%s and %s share a selector", name, clash)
		seen[selector] = name
	}
}

func Test_MethodID_UnknownMethod(t *testing.T) {
	t.Parallel()

	_, err := MethodID("definitelyNotInTheABI")
	require.Error(t, err)
}
