package artifact

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"mind-screen-go/internal/config"
	"mind-screen-go/pkg/log"
)

// minioSource 从 MinIO 存储桶拉取工件文档。
type minioSource struct {
	client *minio.Client
	bucket string
}

// newMinioSource 初始化 MinIO 客户端并确认存储桶存在。
// 工件桶由训练侧维护，这里只读，不做创建。
func newMinioSource(ctx context.Context, cfg config.MinIOConfig) (*minioSource, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化 MinIO 客户端失败: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("检查 MinIO 存储桶失败: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("工件存储桶 %q 不存在", cfg.BucketName)
	}

	log.Infof("[ArtifactStore] MinIO 工件源就绪, bucket: %s", cfg.BucketName)
	return &minioSource{client: client, bucket: cfg.BucketName}, nil
}

// fetch 读取存储桶中的一个工件对象。
func (s *minioSource) fetch(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("获取工件对象 %q 失败: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("读取工件对象 %q 失败: %w", name, err)
	}
	log.Debugf("[ArtifactStore] 已拉取工件对象 %s, %d 字节", name, len(data))
	return data, nil
}
