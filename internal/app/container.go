package app

import (
	"context"
	"fmt"

	"github.com/atejada/SimpleBlogAPI/internal/adapter/http/handler"
	"github.com/atejada/SimpleBlogAPI/internal/adapter/http/middleware"
	"github.com/atejada/SimpleBlogAPI/internal/adapter/repository/memory"
	"github.com/atejada/SimpleBlogAPI/internal/config"
	"github.com/atejada/SimpleBlogAPI/internal/port/repository"
	postusecase "github.com/atejada/SimpleBlogAPI/internal/usecase/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Container は API で使用する依存を保持する。
// PostRepo はプロセス中で 1 つだけ生成され、全ハンドラーが共有する。
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	PostRepo    repository.PostRepository
	PostHandler *handler.PostHandler
	DocsHandler *handler.DocsHandler
}

var (
	loggerFactory         = NewLogger
	postRepositoryFactory = func() repository.PostRepository {
		return memory.NewInMemoryPostRepository()
	}
)

// NewContainer は依存を初期化して返す。
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	logger, err := loggerFactory(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("provide logger: %w", err)
	}

	repo := postRepositoryFactory()
	postHandler := handler.NewPostHandler(handler.PostUsecases{
		List:   postusecase.NewListPostsUsecase(repo),
		Create: postusecase.NewCreatePostUsecase(repo),
		Get:    postusecase.NewGetPostUsecase(repo),
		Update: postusecase.NewUpdatePostUsecase(repo),
		Delete: postusecase.NewDeletePostUsecase(repo),
	}, logger)

	var docsHandler *handler.DocsHandler
	if cfg.Docs.Enabled {
		docsHandler, err = handler.NewDocsHandler(cfg.Docs.Path)
		if err != nil {
			_ = syncLogger(logger)
			return nil, fmt.Errorf("provide docs handler: %w", err)
		}
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		PostRepo:    repo,
		PostHandler: postHandler,
		DocsHandler: docsHandler,
	}, nil
}

// Middlewares はルーターに差し込む共通ミドルウェアを返す。
func (c *Container) Middlewares() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.RequestID(),
		middleware.AccessLog(c.Logger),
	}
}

// Close は保持しているリソースを解放する。ストアは永続化しない。
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return syncLogger(c.Logger)
}
