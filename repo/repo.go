package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/leandrobouwier/Brev.ly/model"
	"github.com/leandrobouwier/Brev.ly/shared/db"
)

// Store-level failures, decoupled from the backend's error
// representation. Handlers match these with errors.Is.
var (
	ErrDuplicateCode = errors.New("short link code already in use")
	ErrNotFound      = errors.New("link not found")
)

type LinkRepo struct {
	DB *db.PostgresDB
}

func NewLinkRepo(pg *db.PostgresDB) *LinkRepo {
	return &LinkRepo{DB: pg}
}

func (r *LinkRepo) Close() error {
	return r.DB.Close()
}

func (r *LinkRepo) Create(ctx context.Context, link *model.Link) error {
	err := r.DB.DB.WithContext(ctx).Create(link).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCode
	}
	return err
}

func (r *LinkRepo) GetByCode(ctx context.Context, code string) (*model.Link, error) {
	var link model.Link
	err := r.DB.DB.WithContext(ctx).Where("code = ?", code).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Resolve bumps the click counter and returns the updated row in one
// statement, so concurrent redirects of the same code never lose
// counts. A null counter is treated as zero before incrementing.
func (r *LinkRepo) Resolve(ctx context.Context, code string) (*model.Link, error) {
	var link model.Link
	result := r.DB.DB.WithContext(ctx).
		Model(&link).
		Clauses(clause.Returning{}).
		Where("code = ?", code).
		UpdateColumn("clicks", gorm.Expr("COALESCE(clicks, 0) + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &link, nil
}

func (r *LinkRepo) List(ctx context.Context) ([]model.Link, error) {
	var links []model.Link
	err := r.DB.DB.WithContext(ctx).Order("created_at DESC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *LinkRepo) Delete(ctx context.Context, id int64) error {
	result := r.DB.DB.WithContext(ctx).Delete(&model.Link{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
