package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/atejada/SimpleBlogAPI/internal/adapter/http/handler"
	"github.com/atejada/SimpleBlogAPI/internal/app"
	"github.com/atejada/SimpleBlogAPI/internal/config"
)

// main.go で使用する依存の差し替えポイントを集約したファイル

const readHeaderTimeout = 10 * time.Second

type configLoader func(path string) (*config.Config, error)

type containerFactory func(ctx context.Context, cfg *config.Config) (*app.Container, error)

type routerFactory func(container *app.Container) http.Handler

type serverFactory func(addr string, h http.Handler) serverRunner

type serverRunner interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type containerCloser func(container *app.Container) error

var (
	loadConfig   configLoader     = config.Load
	newContainer containerFactory = app.NewContainer
	newRouter    routerFactory    = func(container *app.Container) http.Handler {
		return handler.NewRouter(container.Logger, container.PostHandler, container.DocsHandler, container.Middlewares()...)
	}
	newServer serverFactory = func(addr string, h http.Handler) serverRunner {
		return &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}
	closeContainer containerCloser = func(container *app.Container) error {
		return container.Close()
	}
	runFunc = run
	fatalf  = log.Fatalf
)
