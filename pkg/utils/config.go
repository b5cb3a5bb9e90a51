package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	API   APIConfig
	Store StoreConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// APIConfig points at the remote catalog/review backend.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// StoreConfig locates the file holding locally-editable review IDs.
type StoreConfig struct {
	OwnedReviewsPath string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "product-review-app")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("API_BASE_URL", "https://5ffbed0e63ea2f0017bdb67d.mockapi.io")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("OWNED_REVIEWS_PATH", "data/owned_reviews.json")

	// .env is optional; defaults plus environment variables are enough
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		API: APIConfig{
			BaseURL:        viper.GetString("API_BASE_URL"),
			TimeoutSeconds: viper.GetInt("API_TIMEOUT_SECONDS"),
		},
		Store: StoreConfig{
			OwnedReviewsPath: viper.GetString("OWNED_REVIEWS_PATH"),
		},
	}

	return config, nil
}
