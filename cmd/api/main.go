package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/atejada/SimpleBlogAPI/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const envConfigPath = "BLOG_CONFIG"

func main() {
	config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runFunc(ctx); err != nil {
		fatalf("API起動失敗: %v", err)
	}
}

/**
 * 設定と依存を整えて HTTP サーバーを起動し、ctx の終了で停止させる。
 */
func run(ctx context.Context) error {
	cfg, err := loadConfig(os.Getenv(envConfigPath))
	if err != nil {
		return fmt.Errorf("設定読込失敗: %w", err)
	}
	gin.SetMode(cfg.Server.Mode)

	container, err := newContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("依存初期化失敗: %w", err)
	}
	logger := container.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	defer func() {
		if cerr := closeContainer(container); cerr != nil {
			logger.Warn("container close failed", zap.Error(cerr))
		}
	}()

	srv := newServer(cfg.Server.Addr, newRouter(container))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("simple blog api listening", zap.String("addr", cfg.Server.Addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("サーバー起動失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("サーバー停止失敗: %w", err)
	}
	return nil
}
