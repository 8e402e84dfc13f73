package scorer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mind-screen-go/internal/feature"
	"mind-screen-go/pkg/artifact"
	"mind-screen-go/pkg/scorer"
)

func TestLogisticScorer_SigmoidOfLinearSum(t *testing.T) {
	weights := artifact.ModelWeights{
		Intercept:    0,
		Coefficients: map[string]float64{"a": 1, "b": 2},
	}
	s := scorer.NewLogisticScorer(weights)

	// z = 1*1 + 2*0.5 = 2, sigmoid(2) ≈ 0.8808
	p, err := s.Score(context.Background(), feature.FeatureVector{
		Columns: []string{"a", "b"},
		Values:  []float64{1, 0.5},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.8807970779778823, p, 1e-12)
}

func TestLogisticScorer_InterceptOnly(t *testing.T) {
	weights := artifact.ModelWeights{
		Intercept:    0,
		Coefficients: map[string]float64{"a": 3},
	}
	s := scorer.NewLogisticScorer(weights)

	// z = 0 → p = 0.5
	p, err := s.Score(context.Background(), feature.FeatureVector{
		Columns: []string{"a"},
		Values:  []float64{0},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)
}

func TestLogisticScorer_AppliesScaler(t *testing.T) {
	weights := artifact.ModelWeights{
		Intercept:    0,
		Coefficients: map[string]float64{"a": 1},
		Scaler: &artifact.ScalerParams{
			Mean:  map[string]float64{"a": 10},
			Scale: map[string]float64{"a": 2},
		},
	}
	s := scorer.NewLogisticScorer(weights)

	// 标准化后 (14-10)/2 = 2 → sigmoid(2)
	p, err := s.Score(context.Background(), feature.FeatureVector{
		Columns: []string{"a"},
		Values:  []float64{14},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.8807970779778823, p, 1e-12)
}

func TestLogisticScorer_ColumnWithoutScalerEntryUsesRawValue(t *testing.T) {
	weights := artifact.ModelWeights{
		Intercept:    0,
		Coefficients: map[string]float64{"a": 1, "onehot": 1},
		Scaler: &artifact.ScalerParams{
			Mean:  map[string]float64{"a": 0},
			Scale: map[string]float64{"a": 1},
		},
	}
	s := scorer.NewLogisticScorer(weights)

	p, err := s.Score(context.Background(), feature.FeatureVector{
		Columns: []string{"a", "onehot"},
		Values:  []float64{1, 1},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.8807970779778823, p, 1e-12)
}

func TestLogisticScorer_MissingCoefficient(t *testing.T) {
	weights := artifact.ModelWeights{
		Intercept:    0,
		Coefficients: map[string]float64{"a": 1},
	}
	s := scorer.NewLogisticScorer(weights)

	_, err := s.Score(context.Background(), feature.FeatureVector{
		Columns: []string{"a", "unknown"},
		Values:  []float64{1, 1},
	})

	assert.Error(t, err)
}
