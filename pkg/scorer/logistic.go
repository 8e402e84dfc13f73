package scorer

import (
	"context"
	"fmt"
	"math"

	"mind-screen-go/internal/feature"
	"mind-screen-go/pkg/artifact"
)

// LogisticScorer 在进程内回放训练导出的逻辑回归管线：
// 按列标准化、线性层求和，再过 sigmoid 得到正类概率。
type LogisticScorer struct {
	weights artifact.ModelWeights
}

// NewLogisticScorer 基于工件中的权重创建打分器。
func NewLogisticScorer(weights artifact.ModelWeights) *LogisticScorer {
	return &LogisticScorer{weights: weights}
}

// Score 计算特征行的正类概率。
// 特征行的每一列都必须在权重表中有对应系数，否则说明 schema 与模型不匹配。
func (s *LogisticScorer) Score(_ context.Context, vec feature.FeatureVector) (float64, error) {
	z := s.weights.Intercept
	for i, col := range vec.Columns {
		coef, ok := s.weights.Coefficients[col]
		if !ok {
			return 0, fmt.Errorf("模型权重中缺少列 %q 的系数", col)
		}

		v := vec.Values[i]
		if s.weights.Scaler != nil {
			if mean, ok := s.weights.Scaler.Mean[col]; ok {
				scale := s.weights.Scaler.Scale[col]
				if scale == 0 {
					scale = 1
				}
				v = (v - mean) / scale
			}
		}
		z += coef * v
	}

	p := 1 / (1 + math.Exp(-z))
	if math.IsNaN(p) {
		return 0, fmt.Errorf("打分结果非法: z=%v", z)
	}
	return p, nil
}
