package queries

import (
	"context"

	"basketsplit/internal/core/ports"
	"basketsplit/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler reads catalog entries sorted by item name.
//
// With a database connection it queries the catalog_entries table directly.
// Without one (file-backed deployments) it reads the catalog snapshot.
//
// Example:
//
//	handler := NewGetCatalogQueryHandler(db, snapshot)
//	query, _ := NewGetCatalogItemQuery("Milk")
//
//	entries, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such item
//	}
type GetCatalogQueryHandler struct {
	db       *gorm.DB
	snapshot ports.CatalogSnapshot
}

// NewGetCatalogQueryHandler creates a handler for catalog queries. db may be nil.
func NewGetCatalogQueryHandler(db *gorm.DB, snapshot ports.CatalogSnapshot) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db, snapshot: snapshot}
}

// Handle executes the query. A single-item query for an unknown item returns
// an errs.ObjectNotFoundError.
func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) ([]CatalogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		entries []CatalogEntryResponse
		err     error
	)
	if h.db != nil {
		entries, err = h.fromDatabase(ctx, query.Item())
	} else {
		entries, err = h.fromSnapshot(query.Item())
	}
	if err != nil {
		return nil, err
	}

	if query.Item() != "" && len(entries) == 0 {
		return nil, errs.NewObjectNotFoundError("item", query.Item())
	}
	return entries, nil
}

func (h GetCatalogQueryHandler) fromDatabase(ctx context.Context, item string) ([]CatalogEntryResponse, error) {
	db := h.db.WithContext(ctx)
	if item == "" {
		db = db.Raw(`
			SELECT
				item,
				couriers
			FROM catalog_entries
			ORDER BY item
		`)
	} else {
		db = db.Raw(`
			SELECT
				item,
				couriers
			FROM catalog_entries
			WHERE item = ?
		`, item)
	}

	rows, err := db.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]CatalogEntryResponse, 0)
	for rows.Next() {
		var entry CatalogEntryResponse
		var couriers pq.StringArray

		if err = rows.Scan(&entry.Item, &couriers); err != nil {
			return nil, err
		}
		entry.Couriers = []string(couriers)
		if entry.Couriers == nil {
			entry.Couriers = []string{}
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h GetCatalogQueryHandler) fromSnapshot(item string) ([]CatalogEntryResponse, error) {
	c, err := h.snapshot.Current()
	if err != nil {
		return nil, err
	}

	entries := make([]CatalogEntryResponse, 0)
	if item != "" {
		if couriers, ok := c.Couriers(item); ok {
			entries = append(entries, CatalogEntryResponse{Item: item, Couriers: couriers})
		}
		return entries, nil
	}

	for _, name := range c.Items() {
		couriers, _ := c.Couriers(name)
		entries = append(entries, CatalogEntryResponse{Item: name, Couriers: couriers})
	}
	return entries, nil
}
