package client

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clients-api/internal/models"
	"github.com/BruksfildServices01/clients-api/internal/pagination"
)

// Raw storage signals. The use cases translate them into business errors.
var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrIntegrityViolation = errors.New("integrity violation")
)

type Repository interface {
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// GetReferenceByID returns a handle to an existing row suitable for a
	// full overwrite followed by Save. Missing rows yield ErrRecordNotFound.
	GetReferenceByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	FindAll(
		ctx context.Context,
		req pagination.Request,
	) ([]models.Client, int64, error)

	// Save inserts when ID is zero and updates every column otherwise.
	Save(
		ctx context.Context,
		c *models.Client,
	) error

	DeleteByID(
		ctx context.Context,
		id uint,
	) error

	ExistsByID(
		ctx context.Context,
		id uint,
	) (bool, error)

	// Transaction runs fn against a repository bound to one transaction.
	// It commits when fn returns nil and rolls back on error or panic.
	Transaction(
		ctx context.Context,
		readOnly bool,
		fn func(repo Repository) error,
	) error
}
