// main.go
package main

import (
	"log"

	"github.com/Charles0825/product-review-app-fs/cmd"
	"github.com/Charles0825/product-review-app-fs/internal/data/repository"
	"github.com/Charles0825/product-review-app-fs/internal/wire"
	"github.com/Charles0825/product-review-app-fs/pkg/apiclient"
	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("api_base_url", config.API.BaseURL),
	)

	// Remote catalog/review backend client
	api := apiclient.InitClient(config.API)

	// Initialize all repositories
	repos := repository.NewRepository(api, afero.NewOsFs(), config, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
