package handler

import (
	"github.com/atejada/SimpleBlogAPI/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter は HTTP ハンドラーを紐づけた gin.Engine を返す。
// panic は logger に記録される。docsHandler が nil の場合は API ドキュメントを公開しない。
func NewRouter(logger *zap.Logger, postHandler *PostHandler, docsHandler *DocsHandler, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middlewares...)
	router.Use(middleware.Recovery(logger))

	router.GET("/", Welcome)
	router.GET("/healthz", Healthz)

	posts := router.Group("/posts")
	posts.GET("/", postHandler.ListPosts)
	posts.POST("/", postHandler.CreatePost)
	posts.GET("/:id", postHandler.GetPost)
	posts.PUT("/:id", postHandler.UpdatePost)
	posts.DELETE("/:id", postHandler.DeletePost)

	if docsHandler != nil {
		router.GET(docsHandler.Path(), docsHandler.ServeJSON)
		router.GET(docsHandler.Path()+".yaml", docsHandler.ServeYAML)
	}

	return router
}
