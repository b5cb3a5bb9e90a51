package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Charles0825/product-review-app-fs/internal/data/entity"
	"github.com/Charles0825/product-review-app-fs/internal/data/repository"
	"github.com/Charles0825/product-review-app-fs/internal/dto/request"
	"github.com/Charles0825/product-review-app-fs/pkg/apiclient"
	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBackend mimics the remote mock REST API.
type fakeBackend struct {
	mux *http.ServeMux

	// likesOnUpdate overrides the like count the PUT handler reports,
	// simulating a concurrent like from another client.
	likesOnUpdate int
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{mux: http.NewServeMux(), likesOnUpdate: -1}

	reviews := []entity.Review{
		{ID: "r1", ProductID: "p1", Name: "Ann", Rating: 92139, Likes: 2},
		{ID: "r2", ProductID: "p1", Name: "Bob", Rating: 30000, Likes: 7},
		{ID: "r3", ProductID: "p2", Name: "Cid", Rating: 50000, Likes: 0},
	}

	b.mux.HandleFunc("/reviews", func(w http.ResponseWriter, r *http.Request) {
		productID := r.URL.Query().Get("productId")
		matched := make([]entity.Review, 0)
		for _, review := range reviews {
			if productID == "" || review.ProductID == productID {
				matched = append(matched, review)
			}
		}
		json.NewEncoder(w).Encode(matched)
	})

	b.mux.HandleFunc("/reviews/r1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(reviews[0])
		case http.MethodPut:
			var updated entity.Review
			json.NewDecoder(r.Body).Decode(&updated)
			updated.ID = "r1"
			if b.likesOnUpdate >= 0 {
				updated.Likes = b.likesOnUpdate
			}
			json.NewEncoder(w).Encode(updated)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	b.mux.HandleFunc("/categories/c1/products/p1/reviews", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var created entity.Review
		json.NewDecoder(r.Body).Decode(&created)
		created.ID = "r9"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})

	return b
}

func newReviewTestService(t *testing.T, backend *fakeBackend) (ReviewService, *repository.Repository) {
	t.Helper()

	server := httptest.NewServer(backend.mux)
	t.Cleanup(server.Close)

	api := apiclient.InitClient(utils.APIConfig{BaseURL: server.URL, TimeoutSeconds: 5})
	config := &utils.Config{
		Store: utils.StoreConfig{OwnedReviewsPath: "owned_reviews.json"},
	}

	repo := repository.NewRepository(api, afero.NewMemMapFs(), config, zap.NewNop())
	return NewReviewService(repo, zap.NewNop()), repo
}

func TestGetProductReviewsSortedByLikes(t *testing.T) {
	service, _ := newReviewTestService(t, newFakeBackend())

	result, err := service.GetProductReviews(context.Background(), "p1", 0)
	require.NoError(t, err)

	require.Len(t, result.Reviews, 2)
	assert.Equal(t, "r2", result.Reviews[0].ID)
	assert.Equal(t, "r1", result.Reviews[1].ID)
	assert.Equal(t, 2, result.Total)

	// 5 stars and 2 stars averaged
	assert.Equal(t, "3.50", result.OverallRating)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 0, 4: 0, 5: 1}, result.Distribution)

	// Nothing owned yet, so nothing is editable
	for _, review := range result.Reviews {
		assert.False(t, review.Editable)
	}
}

func TestGetProductReviewsStarFilterKeepsOverallStats(t *testing.T) {
	service, _ := newReviewTestService(t, newFakeBackend())

	result, err := service.GetProductReviews(context.Background(), "p1", 5)
	require.NoError(t, err)

	require.Len(t, result.Reviews, 1)
	assert.Equal(t, "r1", result.Reviews[0].ID)

	// Overall stats still describe the full review set
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "3.50", result.OverallRating)
}

func TestSubmitReviewGrantsEditCapability(t *testing.T) {
	service, repo := newReviewTestService(t, newFakeBackend())

	created, err := service.SubmitReview(context.Background(), "c1", "p1", &request.CreateReviewRequest{
		Name:    "Dee",
		Email:   "dee@example.com",
		Title:   "Great",
		Content: "Really solid product.",
		Rating:  4,
	})
	require.NoError(t, err)

	assert.Equal(t, "r9", created.ID)
	assert.Equal(t, 4, created.Rating)
	assert.True(t, created.Verified)
	assert.Zero(t, created.Likes)

	// Edit capability appears immediately, no reload required
	assert.True(t, created.Editable)
	assert.True(t, repo.Owned.Contains("r9"))
}

func TestSubmitReviewRejectsInvalidInput(t *testing.T) {
	service, repo := newReviewTestService(t, newFakeBackend())

	_, err := service.SubmitReview(context.Background(), "c1", "p1", &request.CreateReviewRequest{
		Name:   "Dee",
		Email:  "not-an-email",
		Rating: 9,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, repo.Owned.All())
}

func TestLikeReviewReflectsServerCount(t *testing.T) {
	backend := newFakeBackend()
	// Another client liked concurrently; the server reports 10, not 3
	backend.likesOnUpdate = 10

	service, _ := newReviewTestService(t, backend)

	result, err := service.LikeReview(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, 10, result.Likes)
}

func TestLikeReviewNotFound(t *testing.T) {
	service, _ := newReviewTestService(t, newFakeBackend())

	_, err := service.LikeReview(context.Background(), "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateReviewRequiresOwnership(t *testing.T) {
	service, _ := newReviewTestService(t, newFakeBackend())

	_, err := service.UpdateReview(context.Background(), "r1", &request.UpdateReviewRequest{
		Name:    "Ann",
		Email:   "ann@example.com",
		Title:   "Changed my mind",
		Content: "Still good.",
		Rating:  3,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not editable")
}

func TestUpdateReviewReplacesEditableFields(t *testing.T) {
	service, repo := newReviewTestService(t, newFakeBackend())
	require.NoError(t, repo.Owned.Append("r1"))

	updated, err := service.UpdateReview(context.Background(), "r1", &request.UpdateReviewRequest{
		Name:    "Ann",
		Email:   "ann@example.com",
		Title:   "Changed my mind",
		Content: "Still good.",
		Rating:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Changed my mind", updated.Title)
	assert.Equal(t, 3, updated.Rating)
	assert.True(t, updated.Editable)
}
