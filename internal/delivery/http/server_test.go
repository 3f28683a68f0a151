package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"quill/config"
	deliverymiddleware "quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router"
	"quill/internal/delivery/http/router/handler"
	mockSvc "quill/internal/mocks/service"
	mockUC "quill/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewServer_AppliesConfiguredTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 15 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 2 * time.Minute

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := NewServer(HTTPParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    logger,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(mockUC.NewMockAuthUsecase(t), logger),
			PostHandler:    handler.NewPostHandler(mockUC.NewMockPostUsecase(t), logger),
			CommentHandler: handler.NewCommentHandler(mockUC.NewMockCommentUsecase(t), logger),
			AuthMiddleware: deliverymiddleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t)),
		},
		RequestIDMiddleware: deliverymiddleware.NewRequestIDMiddleware(logger),
		LoggerMiddleware:    deliverymiddleware.NewLoggerMiddleware(logger, cfg),
		ErrorMiddleware:     deliverymiddleware.NewErrorMiddleware(logger),
	})
	require.NoError(t, err)

	httpSrv, ok := srv.(*httpServer)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, httpSrv.server.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, httpSrv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 15*time.Second, httpSrv.server.Server.WriteTimeout)
	assert.Equal(t, 2*time.Minute, httpSrv.server.Server.IdleTimeout)
}
