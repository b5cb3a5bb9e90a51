package repository

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// OwnedReviewRepository is the edit-authorization record: the set of review
// IDs this device may edit. It is a device-scoped convention, not a security
// boundary. The record grows append-only for the lifetime of the file.
type OwnedReviewRepository interface {
	// All returns every owned review ID, in insertion order.
	All() []string

	// Contains reports whether the review may be edited from this device.
	Contains(id string) bool

	// Append grants edit capability for the review ID.
	Append(id string) error
}

type ownedReviewRepository struct {
	fs   afero.Fs
	path string
	log  *zap.Logger
}

func NewOwnedReviewRepository(fs afero.Fs, path string, log *zap.Logger) OwnedReviewRepository {
	return &ownedReviewRepository{
		fs:   fs,
		path: path,
		log:  log.With(zap.String("repository", "owned_review")),
	}
}

// load reads the ID list fresh on every call, mirroring synchronous local
// storage access. A missing or malformed file reads as an empty set; the
// record must never take the storefront down.
func (r *ownedReviewRepository) load() []string {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		r.log.Warn("Malformed owned-review record, treating as empty",
			zap.Error(err),
			zap.String("path", r.path),
		)
		return []string{}
	}

	return ids
}

func (r *ownedReviewRepository) All() []string {
	return r.load()
}

func (r *ownedReviewRepository) Contains(id string) bool {
	for _, owned := range r.load() {
		if owned == id {
			return true
		}
	}
	return false
}

func (r *ownedReviewRepository) Append(id string) error {
	ids := append(r.load(), id)

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode owned-review record: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := r.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create owned-review directory: %w", err)
		}
	}

	// Not guarded against concurrent writers; two processes appending at
	// once can interleave. Accepted limitation.
	if err := afero.WriteFile(r.fs, r.path, data, 0644); err != nil {
		r.log.Error("Failed to write owned-review record",
			zap.Error(err),
			zap.String("path", r.path),
			zap.String("review_id", id),
		)
		return fmt.Errorf("failed to write owned-review record: %w", err)
	}

	return nil
}
