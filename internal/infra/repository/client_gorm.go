package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clients-api/internal/domain/client"
	"github.com/BruksfildServices01/clients-api/internal/models"
	"github.com/BruksfildServices01/clients-api/internal/pagination"
)

// SQLSTATE foreign_key_violation
const pgForeignKeyViolation = "23503"

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ClientGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *ClientGormRepository) GetReferenceByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	// A full overwrite still needs the row to exist; only the key is loaded.
	var client models.Client
	if err := r.db.WithContext(ctx).
		Select("id").
		First(&client, id).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *ClientGormRepository) FindAll(
	ctx context.Context,
	req pagination.Request,
) ([]models.Client, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	q := r.db.WithContext(ctx).Model(&models.Client{})

	tiebreak := true
	for _, o := range req.Sort {
		q = q.Order(o.SQL())
		if o.Column == "id" {
			tiebreak = false
		}
	}
	if tiebreak {
		q = q.Order("id ASC")
	}

	var clients []models.Client
	if err := q.
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&clients).Error; err != nil {
		return nil, 0, translate(err)
	}

	return clients, total, nil
}

func (r *ClientGormRepository) ExistsByID(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ClientGormRepository) Save(
	ctx context.Context,
	c *models.Client,
) error {

	if c.ID == 0 {
		return translate(r.db.WithContext(ctx).Create(c).Error)
	}

	res := r.db.WithContext(ctx).
		Model(c).
		Select("*").
		Omit("id").
		Updates(c)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *ClientGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *ClientGormRepository) Transaction(
	ctx context.Context,
	readOnly bool,
	fn func(repo domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ClientGormRepository{db: tx})
	}, &sql.TxOptions{ReadOnly: readOnly})
}

// --------------------------------------------------
// Error translation
// --------------------------------------------------

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrRecordNotFound
	case isIntegrityViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrIntegrityViolation, err)
	default:
		return err
	}
}

func isIntegrityViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	// SQLite reports SQLITE_CONSTRAINT_FOREIGNKEY only through the message.
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
