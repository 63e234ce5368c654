package catalogrepo

import (
	"context"

	"basketsplit/internal/core/domain/model/catalog"

	"gorm.io/gorm"
)

// insertBatchSize bounds the rows sent per INSERT when replacing the catalog.
const insertBatchSize = 500

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Get retrieves every catalog entry.
func (r *GormCatalogRepository) Get(ctx context.Context) (*catalog.Catalog, error) {
	var dtos []CatalogEntryDTO
	if err := r.db.WithContext(ctx).Order("item").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomain(dtos)
}

// Load implements CatalogSource so the database can back the live catalog.
func (r *GormCatalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	return r.Get(ctx)
}

// Replace deletes every stored entry and inserts c.
// Outside a unit of work GORM wraps both statements in a transaction of its
// own; inside one it uses a savepoint.
func (r *GormCatalogRepository) Replace(ctx context.Context, c *catalog.Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dtos := fromDomain(c)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&CatalogEntryDTO{}).Error; err != nil {
			return err
		}
		if len(dtos) == 0 {
			return nil
		}
		return tx.CreateInBatches(&dtos, insertBatchSize).Error
	})
}
