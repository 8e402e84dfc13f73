// Package service 包含了应用的业务逻辑层。
package service

import "mind-screen-go/internal/model"

// 风险分档阈值：概率低于 0.30 为 LOW，低于 0.70 为 MODERATE，
// 其余为 HIGH。恰好 0.30 归入 MODERATE，恰好 0.70 归入 HIGH。
const (
	moderateThreshold = 0.30
	highThreshold     = 0.70
)

// 各档位的建议文案，与训练侧应用保持一字不差。
const (
	adviceLow      = "Continue your healthy habits! Regular exercise and mindfulness can maintain this state."
	adviceModerate = "You are showing some signs of stress. Consider a wellness check-in or guided meditation."
	adviceHigh     = "Risk detected. We recommend speaking with a mental health professional or using a support hotline."
)

// ClassifyProbability 把模型输出的正类概率映射为离散的风险评估。
func ClassifyProbability(p float64) model.RiskAssessment {
	switch {
	case p >= highThreshold:
		return model.RiskAssessment{Level: model.RiskHigh, Glyph: "🔴", Probability: p, Advice: adviceHigh}
	case p >= moderateThreshold:
		return model.RiskAssessment{Level: model.RiskModerate, Glyph: "🟡", Probability: p, Advice: adviceModerate}
	default:
		return model.RiskAssessment{Level: model.RiskLow, Glyph: "🟢", Probability: p, Advice: adviceLow}
	}
}
