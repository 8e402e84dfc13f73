// Package artifact 负责在进程启动时加载训练导出的只读工件：
// 特征列清单、标签编码器词表和逻辑回归权重。
// 工件一经加载便不再变更，可被任意多个请求并发读取。
package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mind-screen-go/internal/config"
	"mind-screen-go/internal/feature"
)

// Bundle 汇总推理所需的全部工件。
type Bundle struct {
	FeatureNames []string
	Encoders     map[string]*feature.LabelEncoder
	Model        ModelWeights
}

// ModelWeights 是训练侧导出的逻辑回归管线权重。
type ModelWeights struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
	Scaler       *ScalerParams      `json:"scaler"`
}

// ScalerParams 是标准化层的均值与缩放参数，按列名索引。
type ScalerParams struct {
	Mean  map[string]float64 `json:"mean"`
	Scale map[string]float64 `json:"scale"`
}

// featureMetadata 对应 feature_metadata.json 的结构。
type featureMetadata struct {
	FeatureNames []string `json:"feature_names"`
}

// encoderDoc 对应 label_encoders.json 中单个编码器的结构，
// 类别编码等于其在 classes 中的下标。
type encoderDoc struct {
	Classes []string `json:"classes"`
}

// fetcher 按文件名读取一份工件文档。
type fetcher func(ctx context.Context, name string) ([]byte, error)

// Load 根据配置从本地目录或 MinIO 加载全部工件并完成解析校验。
func Load(ctx context.Context, cfg config.ArtifactsConfig) (*Bundle, error) {
	var fetch fetcher
	switch cfg.Source {
	case "", "local":
		fetch = localFetcher(cfg.LocalDir)
	case "minio":
		src, err := newMinioSource(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		fetch = src.fetch
	default:
		return nil, fmt.Errorf("未知的工件来源 %q", cfg.Source)
	}

	metaRaw, err := fetch(ctx, cfg.FeatureMetadataFile)
	if err != nil {
		return nil, fmt.Errorf("读取特征清单工件失败: %w", err)
	}
	var meta featureMetadata
	if err := json.Unmarshal(metaRaw, &meta); err != nil {
		return nil, fmt.Errorf("解析特征清单工件失败: %w", err)
	}
	if len(meta.FeatureNames) == 0 {
		return nil, fmt.Errorf("特征清单工件中 feature_names 为空")
	}

	encRaw, err := fetch(ctx, cfg.LabelEncodersFile)
	if err != nil {
		return nil, fmt.Errorf("读取标签编码器工件失败: %w", err)
	}
	var encDocs map[string]encoderDoc
	if err := json.Unmarshal(encRaw, &encDocs); err != nil {
		return nil, fmt.Errorf("解析标签编码器工件失败: %w", err)
	}
	encoders := make(map[string]*feature.LabelEncoder, len(encDocs))
	for field, doc := range encDocs {
		if len(doc.Classes) == 0 {
			return nil, fmt.Errorf("标签编码器 %q 的类别列表为空", field)
		}
		encoders[field] = feature.NewLabelEncoder(doc.Classes)
	}
	for _, field := range feature.EncodedFields {
		if encoders[field] == nil {
			return nil, fmt.Errorf("标签编码器工件缺少列 %q", field)
		}
	}

	modelRaw, err := fetch(ctx, cfg.ModelFile)
	if err != nil {
		return nil, fmt.Errorf("读取模型权重工件失败: %w", err)
	}
	var weights ModelWeights
	if err := json.Unmarshal(modelRaw, &weights); err != nil {
		return nil, fmt.Errorf("解析模型权重工件失败: %w", err)
	}
	if len(weights.Coefficients) == 0 {
		return nil, fmt.Errorf("模型权重工件中 coefficients 为空")
	}

	return &Bundle{
		FeatureNames: meta.FeatureNames,
		Encoders:     encoders,
		Model:        weights,
	}, nil
}

// localFetcher 从本地目录读取工件文件。
func localFetcher(dir string) fetcher {
	return func(_ context.Context, name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	}
}
