package service

import (
	"context"
	"fmt"

	"mind-screen-go/internal/feature"
	"mind-screen-go/internal/model"
	"mind-screen-go/pkg/log"
	"mind-screen-go/pkg/scorer"
)

// ScreeningService 定义了风险筛查的业务逻辑接口。
type ScreeningService interface {
	PredictRisk(ctx context.Context, answers *model.SurveyAnswers) (*model.ScreeningResult, error)
	Options() model.ScreeningOptions
	Info() model.ScreeningInfo
}

type screeningService struct {
	assembler  *feature.Assembler
	riskScorer scorer.Scorer
}

// NewScreeningService 创建一个新的 ScreeningService 实例。
func NewScreeningService(assembler *feature.Assembler, riskScorer scorer.Scorer) ScreeningService {
	return &screeningService{
		assembler:  assembler,
		riskScorer: riskScorer,
	}
}

// PredictRisk 执行一次完整的筛查：校验答卷、装配特征行、打分、分档。
// 整个过程不落任何持久化状态，日志也不记录答卷内容。
func (s *screeningService) PredictRisk(ctx context.Context, answers *model.SurveyAnswers) (*model.ScreeningResult, error) {
	vec, err := s.assembler.Assemble(answers)
	if err != nil {
		return nil, err
	}
	log.Debugf("[ScreeningService] 特征行装配完成, 列数: %d", vec.Len())

	prob, err := s.riskScorer.Score(ctx, vec)
	if err != nil {
		return nil, fmt.Errorf("风险打分失败: %w", err)
	}
	if prob < 0 || prob > 1 {
		return nil, fmt.Errorf("打分器返回越界概率: %v", prob)
	}

	assessment := ClassifyProbability(prob)
	log.Infof("[ScreeningService] 筛查完成, 风险档位: %s, 概率: %s",
		assessment.Level, assessment.ProbabilityText())

	return &model.ScreeningResult{
		Assessment:  assessment.Assessment(),
		Probability: assessment.ProbabilityText(),
		Advice:      assessment.Advice,
	}, nil
}

// Options 返回与训练词表一致的表单选项目录。
func (s *screeningService) Options() model.ScreeningOptions {
	return model.ScreeningOptions{
		Genders:               feature.GenderOptions,
		Statuses:              feature.StatusOptions,
		PressureLevels:        feature.PressureLabels,
		SatisfactionLevels:    feature.SatisfactionLabels,
		FinancialStressLevels: feature.FinancialStressLabels,
		SleepDurations:        feature.SleepDurationOptions,
		DietaryHabits:         feature.DietaryHabitsOptions,
		YesNo:                 feature.YesNoOptions,
	}
}

// Info 返回筛查服务的标题与知情同意说明。
func (s *screeningService) Info() model.ScreeningInfo {
	return model.ScreeningInfo{
		Title: "AI Depression Risk Screener",
		Description: "Welcome to a secure, AI-powered platform designed to assess depression risk " +
			"using validated lifestyle and behavioral indicators. Your privacy is our priority. " +
			"All information provided is handled securely, anonymized, and never shared with third parties. " +
			"By using this platform, you provide informed consent for your data to be processed solely for " +
			"depression risk prediction and research-driven improvement of the system.",
	}
}
