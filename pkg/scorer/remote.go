package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mind-screen-go/internal/config"
	"mind-screen-go/internal/feature"
	"mind-screen-go/pkg/log"
)

// RemoteScorer 调用独立部署的模型服务完成打分，
// 用于模型不在本进程内加载的部署形态。
type RemoteScorer struct {
	cfg    config.RemoteScorerConfig
	client *http.Client
}

// NewRemoteScorer 创建一个远程打分客户端。
func NewRemoteScorer(cfg config.RemoteScorerConfig) *RemoteScorer {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteScorer{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Columns []string  `json:"columns"`
	Values  []float64 `json:"values"`
}

type predictResponse struct {
	Probability float64 `json:"probability"`
}

// Score 把特征行 POST 给模型服务并读取正类概率。
func (s *RemoteScorer) Score(ctx context.Context, vec feature.FeatureVector) (float64, error) {
	log.Debugf("[RemoteScorer] 开始调用模型服务, 特征列数: %d", vec.Len())

	reqBytes, err := json.Marshal(predictRequest{Columns: vec.Columns, Values: vec.Values})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.cfg.BaseURL+"/predict", bytes.NewReader(reqBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Errorf("[RemoteScorer] 调用模型服务失败, error: %v", err)
		return 0, fmt.Errorf("failed to call model server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("[RemoteScorer] 模型服务返回非 200 状态码: %s", resp.Status)
		return 0, fmt.Errorf("model server returned non-200 status: %s", resp.Status)
	}

	var predictResp predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictResp); err != nil {
		log.Errorf("[RemoteScorer] 解析模型服务响应失败, error: %v", err)
		return 0, fmt.Errorf("failed to decode predict response: %w", err)
	}

	if predictResp.Probability < 0 || predictResp.Probability > 1 {
		log.Warnf("[RemoteScorer] 模型服务返回越界概率: %v", predictResp.Probability)
		return 0, fmt.Errorf("model server returned out-of-range probability: %v", predictResp.Probability)
	}

	log.Debugf("[RemoteScorer] 模型服务返回概率: %.4f", predictResp.Probability)
	return predictResp.Probability, nil
}
