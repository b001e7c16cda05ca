package api

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/AlexZinkM/paper-wallet/internal/handler"
)

// SetupRouter sets up router with handlers
func SetupRouter(logger *zap.Logger) (http.Handler, error) {
	walletHandler, err := handler.NewWalletHandler()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet file endpoints
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)
	mux.HandleFunc("/wallet/import", walletHandler.Import)
	mux.HandleFunc("/wallet/reveal", walletHandler.Reveal)
	mux.HandleFunc("/wallet/info", walletHandler.Info)

	// Stateless key encode/decode endpoints
	mux.HandleFunc("/key/encrypt", walletHandler.EncryptKey)
	mux.HandleFunc("/key/decrypt", walletHandler.DecryptKey)

	return requestLogger(logger, mux), nil
}

// requestLogger logs method, path, status and duration of every request.
// Bodies are never logged: they carry passphrases and key material.
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
