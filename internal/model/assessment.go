package model

import "fmt"

// RiskLevel 表示三档风险等级。
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// RiskAssessment 是一次筛查的评估结果，仅在请求内存活，不做任何持久化。
type RiskAssessment struct {
	Level       RiskLevel
	Glyph       string
	Probability float64
	Advice      string
}

// Assessment 返回展示用的评估标题，例如 "🔴 HIGH RISK"。
func (r RiskAssessment) Assessment() string {
	return fmt.Sprintf("%s %s RISK", r.Glyph, r.Level)
}

// ProbabilityText 返回保留两位小数的百分比文本，例如 "82.00%"。
func (r RiskAssessment) ProbabilityText() string {
	return fmt.Sprintf("%.2f%%", r.Probability*100)
}

// ScreeningResult 是 predict 接口的响应数据。
type ScreeningResult struct {
	Assessment  string `json:"assessment"`
	Probability string `json:"probability"`
	Advice      string `json:"advice"`
}

// ScreeningOptions 是 options 接口的响应数据，
// 给前端表单提供与训练词表一致的下拉选项。
type ScreeningOptions struct {
	Genders               []string `json:"genders"`
	Statuses              []string `json:"statuses"`
	PressureLevels        []string `json:"pressureLevels"`
	SatisfactionLevels    []string `json:"satisfactionLevels"`
	FinancialStressLevels []string `json:"financialStressLevels"`
	SleepDurations        []string `json:"sleepDurations"`
	DietaryHabits         []string `json:"dietaryHabits"`
	YesNo                 []string `json:"yesNo"`
}

// ScreeningInfo 是 info 接口的响应数据。
type ScreeningInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
