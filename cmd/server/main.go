package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpdelivery "github.com/AllxdDev-Hosting/Rest-Api/internal/delivery/http"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/infrastructure/config"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/infrastructure/imagehost"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/infrastructure/okgateway"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/infrastructure/qrrenderer"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/usecase/checkmutation"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/usecase/createpayment"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	if cfg.StaticQRIS == "" {
		logger.Error("STATIC_QRIS is required")
		os.Exit(1)
	}

	renderer := qrrenderer.NewRenderer(cfg.QRSize)
	uploader := imagehost.NewUploader(cfg.UploadURL)
	gateway := okgateway.NewClient(cfg.GatewayBaseURL)

	createPaymentUC := createpayment.NewUseCase(renderer, uploader, cfg.StaticQRIS, cfg.Validity)
	checkMutationUC := checkmutation.NewUseCase(gateway, cfg.MerchantID, cfg.GatewayAPIKey)

	handler := httpdelivery.NewHandler(createPaymentUC, checkMutationUC)
	router := httpdelivery.NewRouter(handler, cfg.APIKeys)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
