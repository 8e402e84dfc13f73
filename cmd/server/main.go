// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"mind-screen-go/internal/config"
	"mind-screen-go/internal/feature"
	"mind-screen-go/internal/handler"
	"mind-screen-go/internal/middleware"
	"mind-screen-go/internal/service"
	"mind-screen-go/pkg/artifact"
	"mind-screen-go/pkg/log"
	"mind-screen-go/pkg/scorer"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 加载训练工件（特征清单、标签编码器、模型权重），之后全程只读
	bundle, err := artifact.Load(context.Background(), cfg.Artifacts)
	if err != nil {
		log.Fatal("加载模型工件失败", err)
	}
	log.Infof("模型工件加载完成, 特征列数: %d", len(bundle.FeatureNames))

	// 4. 初始化特征装配器与打分器
	assembler, err := feature.NewAssembler(bundle.FeatureNames, bundle.Encoders)
	if err != nil {
		log.Fatal("初始化特征装配器失败", err)
	}

	provider := cfg.Scorer.Provider
	if provider == "" {
		provider = "logistic"
	}
	var riskScorer scorer.Scorer
	switch provider {
	case "logistic":
		riskScorer = scorer.NewLogisticScorer(bundle.Model)
	case "remote":
		riskScorer = scorer.NewRemoteScorer(cfg.Scorer.Remote)
	default:
		log.Fatalf("未知的打分器 provider: %s", provider)
	}
	log.Infof("风险打分器初始化完成, provider: %s", provider)

	// 5. 初始化 Service (依赖注入)
	screeningService := service.NewScreeningService(assembler, riskScorer)

	// 6. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	// 添加我们自定义的日志中间件和 Gin 的 Recovery 中间件
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 7. 注册路由
	r.GET("/healthz", handler.NewHealthHandler(provider, len(bundle.FeatureNames)).Check)

	apiV1 := r.Group("/api/v1")
	{
		screening := apiV1.Group("/screening")
		{
			screeningHandler := handler.NewScreeningHandler(screeningService)
			screening.POST("/predict", screeningHandler.Predict)
			screening.GET("/options", screeningHandler.Options)
			screening.GET("/info", screeningHandler.Info)
		}
	}

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 关闭 HTTP 服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	log.Info("服务已优雅关闭")
}
