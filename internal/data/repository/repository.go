package repository

import (
	"github.com/Charles0825/product-review-app-fs/pkg/apiclient"
	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Repository struct {
	Catalog CatalogRepository
	Review  ReviewRepository
	Owned   OwnedReviewRepository
}

func NewRepository(api *apiclient.Client, fs afero.Fs, config *utils.Config, log *zap.Logger) *Repository {
	return &Repository{
		Catalog: NewCatalogRepository(api, log),
		Review:  NewReviewRepository(api, log),
		Owned:   NewOwnedReviewRepository(fs, config.Store.OwnedReviewsPath, log),
	}
}
