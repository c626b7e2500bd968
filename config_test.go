package routing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolverConfig_ValidateRejectsBadGenerations(t *testing.T) {
	cfg := NewSolverConfig()
	cfg.NumGenerations = 0
	err := cfg.Validate(10)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, InvalidConfiguration, rerr.Kind)
}

func TestSolverConfig_ValidateRejectsBadMutationRate(t *testing.T) {
	cfg := NewSolverConfig()
	cfg.NumGenerations = 10
	cfg.MutationRate = 1.5
	require.Error(t, cfg.Validate(10))
}

func TestSolverConfig_ValidateDerivesPopulationSize(t *testing.T) {
	cfg := NewSolverConfig()
	cfg.NumGenerations = 10
	require.NoError(t, cfg.Validate(1000))
	require.Greater(t, cfg.PopulationSize, 0)
}

func TestDerivePopulationSize_ClipsToBounds(t *testing.T) {
	require.Equal(t, 25, derivePopulationSize(2))
	require.LessOrEqual(t, derivePopulationSize(1<<30), 10000)
}

func TestSolverConfig_ValidateRejectsUnknownOperatorTags(t *testing.T) {
	cfg := NewSolverConfig()
	cfg.NumGenerations = 5
	cfg.Crossover = CrossoverKind(77)
	require.Error(t, cfg.Validate(10))
}
