// Package catalogrepo persists the delivery catalog in PostgreSQL through GORM.
// Each catalog item is one row; its couriers are stored in order as a text[] column.
package catalogrepo

import (
	"basketsplit/internal/core/domain/model/catalog"

	"github.com/lib/pq"
)

// CatalogEntryDTO represents one catalog item and its couriers.
type CatalogEntryDTO struct {
	Item     string         `gorm:"type:varchar(255);primaryKey"`
	Couriers pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the database table name for catalog entries.
// Overrides GORM's default naming convention to use "catalog_entries" instead of "catalog_entry_dtos".
func (CatalogEntryDTO) TableName() string {
	return "catalog_entries"
}

// fromDomain converts a catalog to rows ordered by item name.
func fromDomain(c *catalog.Catalog) []CatalogEntryDTO {
	entries := c.Entries()
	dtos := make([]CatalogEntryDTO, 0, len(entries))
	for _, item := range c.Items() {
		couriers := entries[item]
		if couriers == nil {
			couriers = []string{}
		}
		dtos = append(dtos, CatalogEntryDTO{Item: item, Couriers: pq.StringArray(couriers)})
	}
	return dtos
}

// toDomain rebuilds a catalog from its rows.
func toDomain(dtos []CatalogEntryDTO) (*catalog.Catalog, error) {
	entries := make(map[string][]string, len(dtos))
	for _, dto := range dtos {
		entries[dto.Item] = []string(dto.Couriers)
	}
	return catalog.NewCatalog(entries)
}
