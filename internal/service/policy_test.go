package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mind-screen-go/internal/model"
	"mind-screen-go/internal/service"
)

func TestClassifyProbability_Thresholds(t *testing.T) {
	cases := []struct {
		probability float64
		want        model.RiskLevel
	}{
		{0.0, model.RiskLow},
		{0.29, model.RiskLow},
		{0.30, model.RiskModerate},
		{0.69, model.RiskModerate},
		{0.70, model.RiskHigh},
		{1.0, model.RiskHigh},
	}

	for _, c := range cases {
		got := service.ClassifyProbability(c.probability)
		assert.Equal(t, c.want, got.Level, "probability %v", c.probability)
		assert.Equal(t, c.probability, got.Probability)
	}
}

func TestClassifyProbability_GlyphsAndAdvice(t *testing.T) {
	low := service.ClassifyProbability(0.1)
	assert.Equal(t, "🟢", low.Glyph)
	assert.Contains(t, low.Advice, "healthy habits")

	moderate := service.ClassifyProbability(0.5)
	assert.Equal(t, "🟡", moderate.Glyph)
	assert.Contains(t, moderate.Advice, "wellness check-in")

	high := service.ClassifyProbability(0.9)
	assert.Equal(t, "🔴", high.Glyph)
	assert.Contains(t, high.Advice, "mental health professional")
}

func TestClassifyProbability_Rendering(t *testing.T) {
	got := service.ClassifyProbability(0.82)

	assert.Equal(t, "🔴 HIGH RISK", got.Assessment())
	assert.Equal(t, "82.00%", got.ProbabilityText())
}
