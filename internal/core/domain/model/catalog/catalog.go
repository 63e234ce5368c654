package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"basketsplit/internal/pkg/errs"
	"basketsplit/internal/pkg/guard"

	"github.com/zeebo/xxh3"
)

var (
	// ErrCatalogIsNotConstructed is returned when using a Catalog not built by NewCatalog.
	ErrCatalogIsNotConstructed = errors.New("Catalog must be created via NewCatalog constructor")
	// ErrItemNameIsRequired is returned for an entry keyed by an empty item name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Catalog maps item names to the couriers able to deliver them.
//
// Business rules:
//   - Item names are non-empty and unique (map keys)
//   - Courier names are non-empty; a courier listed twice for the same item is kept once
//   - Courier order within an item is preserved as given
//   - An item may list no couriers at all; splitting a basket containing it fails
//
// Example usage:
//
//	c, err := catalog.NewCatalog(map[string][]string{
//	    "Milk":  {"Express Collection", "Pick-up point"},
//	    "Bread": {"Courier"},
//	})
//	if err != nil {
//	    return err
//	}
//	couriers, ok := c.Couriers("Milk")
type Catalog struct {
	entries     map[string][]string
	fingerprint uint64
	guard       guard.ConstructorGuard
}

// NewCatalog validates entries and returns an immutable Catalog holding its own
// copy of them. All invalid entries are reported together.
func NewCatalog(entries map[string][]string) (*Catalog, error) {
	owned := make(map[string][]string, len(entries))
	var problems []error

	for item, couriers := range entries {
		if strings.TrimSpace(item) == "" {
			problems = append(problems, ErrItemNameIsRequired)
			continue
		}

		seen := make(map[string]struct{}, len(couriers))
		list := make([]string, 0, len(couriers))
		for _, courier := range couriers {
			if strings.TrimSpace(courier) == "" {
				problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
					"courier name",
					fmt.Errorf("empty courier listed for item %q", item),
				))
				continue
			}
			if _, dup := seen[courier]; dup {
				continue
			}
			seen[courier] = struct{}{}
			list = append(list, courier)
		}
		owned[item] = list
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Catalog{
		entries:     owned,
		fingerprint: fingerprint(owned),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the catalog was created through NewCatalog.
func (c *Catalog) Validate() error {
	if c == nil {
		return ErrCatalogIsNotConstructed
	}
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

// Couriers returns a copy of the couriers able to deliver item, in catalog order.
// The boolean is false when the item has no catalog entry.
func (c *Catalog) Couriers(item string) ([]string, bool) {
	couriers, ok := c.entries[item]
	if !ok {
		return nil, false
	}
	return slices.Clone(couriers), true
}

// CanDeliver reports whether courier is listed for item.
func (c *Catalog) CanDeliver(item, courier string) bool {
	return slices.Contains(c.entries[item], courier)
}

// Items returns all item names in lexicographic order.
func (c *Catalog) Items() []string {
	items := make([]string, 0, len(c.entries))
	for item := range c.entries {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}

// Entries returns a deep copy of the catalog contents.
func (c *Catalog) Entries() map[string][]string {
	out := make(map[string][]string, len(c.entries))
	for item, couriers := range c.entries {
		out[item] = slices.Clone(couriers)
	}
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Fingerprint is a content hash of the catalog. Two catalogs with the same
// entries (including courier order) have the same fingerprint.
func (c *Catalog) Fingerprint() uint64 {
	return c.fingerprint
}

// fingerprint hashes entries in sorted item order. Names are NUL-separated, with
// an extra separator closing each entry, so "a","bc" and "ab","c" never collide.
func fingerprint(entries map[string][]string) uint64 {
	items := make([]string, 0, len(entries))
	for item := range entries {
		items = append(items, item)
	}
	slices.Sort(items)

	h := xxh3.New()
	for _, item := range items {
		_, _ = h.WriteString(item)
		_, _ = h.Write([]byte{0})
		for _, courier := range entries[item] {
			_, _ = h.WriteString(courier)
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
