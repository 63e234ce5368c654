package commands

import (
	"errors"

	"basketsplit/internal/pkg/guard"
)

var ErrReloadCatalogCommandIsNotConstructed = errors.New(
	"ReloadCatalogCommand must be created via NewReloadCatalogCommand constructor",
)

// ReloadCatalogCommand asks for the catalog to be read again from its source.
// Issued by the refresh job and by the reload endpoint.
type ReloadCatalogCommand struct {
	guard guard.ConstructorGuard
}

// NewReloadCatalogCommand creates a reload command.
func NewReloadCatalogCommand() ReloadCatalogCommand {
	return ReloadCatalogCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReloadCatalogCommandIsNotConstructed if validation fails.
func (c ReloadCatalogCommand) Validate() error {
	return c.guard.Validate(ErrReloadCatalogCommandIsNotConstructed)
}
