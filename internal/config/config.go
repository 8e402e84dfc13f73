// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Artifacts ArtifactsConfig `mapstructure:"artifacts"`
	Scorer    ScorerConfig    `mapstructure:"scorer"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// ArtifactsConfig 存储训练工件（模型权重、标签编码器、特征列清单）的加载配置。
// Source 为 "local" 时从本地目录读取，为 "minio" 时从对象存储读取。
type ArtifactsConfig struct {
	Source              string      `mapstructure:"source"`
	LocalDir            string      `mapstructure:"local_dir"`
	FeatureMetadataFile string      `mapstructure:"feature_metadata_file"`
	LabelEncodersFile   string      `mapstructure:"label_encoders_file"`
	ModelFile           string      `mapstructure:"model_file"`
	MinIO               MinIOConfig `mapstructure:"minio"`
}

// MinIOConfig 存储 MinIO 对象存储的配置。
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
}

// ScorerConfig 存储风险打分器的配置。
// Provider 为 "logistic" 时在进程内回放导出的逻辑回归权重，
// 为 "remote" 时调用外部模型服务。
type ScorerConfig struct {
	Provider string             `mapstructure:"provider"`
	Remote   RemoteScorerConfig `mapstructure:"remote"`
}

// RemoteScorerConfig 存储外部模型服务的配置。
type RemoteScorerConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
func Init(configPath string) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("读取配置文件失败: %w", err))
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("无法将配置解析到结构体中: %w", err))
	}
}
