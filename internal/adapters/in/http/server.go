// Package http exposes the basket splitting use cases over a JSON HTTP API
// built on Echo and described by the embedded openapi.yaml.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"basketsplit/internal/adapters/out/snapshot"
	"basketsplit/internal/core/application/usecases/commands"
	"basketsplit/internal/core/application/usecases/queries"
	"basketsplit/internal/core/domain/services"
	"basketsplit/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	importCatalogHandler *commands.ImportCatalogCommandHandler
	reloadCatalogHandler commands.ReloadCatalogCommandHandler

	// Query handlers
	splitBasketHandler queries.SplitBasketQueryHandler
	getCatalogHandler  queries.GetCatalogQueryHandler

	logger *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
// importCatalogHandler is nil when the catalog is not stored in the database;
// imports are then refused with 409.
func NewServer(
	importCatalogHandler *commands.ImportCatalogCommandHandler,
	reloadCatalogHandler commands.ReloadCatalogCommandHandler,
	splitBasketHandler queries.SplitBasketQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		importCatalogHandler: importCatalogHandler,
		reloadCatalogHandler: reloadCatalogHandler,
		splitBasketHandler:   splitBasketHandler,
		getCatalogHandler:    getCatalogHandler,
		logger:               logger.With("component", "http_server"),
	}
}

// SplitBasket handles POST /api/v1/baskets/split - splits a basket between couriers.
func (s *Server) SplitBasket(ctx echo.Context) error {
	var request SplitBasketRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewSplitBasketQuery(request.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid basket: " + err.Error(),
		})
	}

	result, err := s.splitBasketHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to split basket")
	}

	response := SplitBasketResponse{
		BasketID:   result.BasketID.String(),
		Deliveries: make([]Delivery, len(result.Deliveries)),
	}
	for i, d := range result.Deliveries {
		response.Deliveries[i] = Delivery{Courier: d.Courier, Items: d.Items}
	}

	s.logger.InfoContext(ctx.Request().Context(), "Basket split",
		"basket_id", response.BasketID,
		"items", len(request.Items),
		"couriers", len(response.Deliveries),
	)
	return ctx.JSON(http.StatusOK, response)
}

// GetCatalog handles GET /api/v1/catalog - lists all catalog entries.
func (s *Server) GetCatalog(ctx echo.Context) error {
	entries, err := s.getCatalogHandler.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve catalog")
	}

	response := make([]CatalogEntry, len(entries))
	for i, e := range entries {
		response[i] = CatalogEntry{Item: e.Item, Couriers: e.Couriers}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCatalogItem handles GET /api/v1/catalog/{item} - couriers for one item.
func (s *Server) GetCatalogItem(ctx echo.Context, item string) error {
	query, err := queries.NewGetCatalogItemQuery(item)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item: " + err.Error(),
		})
	}

	entries, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve catalog item")
	}

	return ctx.JSON(http.StatusOK, CatalogEntry{Item: entries[0].Item, Couriers: entries[0].Couriers})
}

// ImportCatalog handles PUT /api/v1/catalog - replaces the stored catalog.
func (s *Server) ImportCatalog(ctx echo.Context) error {
	if s.importCatalogHandler == nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Catalog is read from a file and cannot be imported",
		})
	}

	var request CatalogImport
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewImportCatalogCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid catalog: " + err.Error(),
		})
	}

	if err = s.importCatalogHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err, "Failed to import catalog")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Catalog imported", "items", cmd.Catalog().Len())
	return ctx.NoContent(http.StatusNoContent)
}

// ReloadCatalog handles POST /api/v1/catalog/reload - reloads the catalog from its source.
func (s *Server) ReloadCatalog(ctx echo.Context) error {
	result, err := s.reloadCatalogHandler.Handle(ctx.Request().Context(), commands.NewReloadCatalogCommand())
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to reload catalog")
	}

	return ctx.JSON(http.StatusOK, ReloadCatalogResponse{
		Changed:     result.Changed,
		Items:       result.Items,
		Fingerprint: strconv.FormatUint(result.Fingerprint, 16),
	})
}

// errorResponse maps use case errors to HTTP status codes. Unexpected errors
// are logged and answered with fallback instead of their text.
func (s *Server) errorResponse(ctx echo.Context, err error, fallback string) error {
	var code int
	switch {
	case errors.Is(err, services.ErrUnknownItem), errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrNoCoverage):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, snapshot.ErrCatalogNotLoaded):
		code = http.StatusServiceUnavailable
	default:
		s.logger.ErrorContext(ctx.Request().Context(), fallback, "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}

	return ctx.JSON(code, Error{Code: int32(code), Message: err.Error()}) //nolint:gosec // HTTP status codes fit in int32
}
