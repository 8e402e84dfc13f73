// Package scorer provides probability scorers over assembled feature rows.
package scorer

import (
	"context"

	"mind-screen-go/internal/feature"
)

// Scorer 定义风险打分器：输入对齐后的特征行，返回正类（class 1）概率。
// 任何满足该接口的概率模型都可以替换使用。
type Scorer interface {
	Score(ctx context.Context, vec feature.FeatureVector) (float64, error)
}
