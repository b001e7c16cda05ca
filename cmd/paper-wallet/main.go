package main

import (
	"net/http"

	"go.uber.org/zap"

	_ "github.com/AlexZinkM/paper-wallet/docs"
	"github.com/AlexZinkM/paper-wallet/internal/api"
	"github.com/AlexZinkM/paper-wallet/internal/config"
)

// @title        paper-wallet API
// @version      1.0
// @description  Local paper-wallet service: passphrase-protected private keys, never stored raw.
// @BasePath     /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := config.Init(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	router, err := api.SetupRouter(logger)
	if err != nil {
		logger.Fatal("failed to set up router", zap.Error(err))
	}

	addr := ":" + config.GetPort()
	logger.Info("listening",
		zap.String("addr", addr),
		zap.String("walletFile", config.GetWalletFilePath()),
	)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
