package routing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_FormatsKindAndMessage(t *testing.T) {
	err := newError(InvalidConfiguration, "mutation_rate must be within [0,1], got %v", 2.5)
	require.Equal(t, "InvalidConfiguration: mutation_rate must be within [0,1], got 2.5", err.Error())
}

func TestKind_StringIsExhaustive(t *testing.T) {
	cases := map[Kind]string{
		InvalidInstance:      "InvalidInstance",
		InvalidConfiguration: "InvalidConfiguration",
		OperatorDegenerate:   "OperatorDegenerate",
		Cancelled:            "Cancelled",
	}
	for k, want := range cases {
		require.Equal(t, want, k.String())
	}
	require.Equal(t, "Unknown", Kind(99).String())
}
