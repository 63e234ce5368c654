package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Request and response bodies of the API described in openapi.yaml.
type (
	// SplitBasketRequest is the body of POST /api/v1/baskets/split.
	SplitBasketRequest struct {
		Items []string `json:"items"`
	}

	// SplitBasketResponse is the courier assignment for one basket.
	SplitBasketResponse struct {
		BasketID   string     `json:"basketId"`
		Deliveries []Delivery `json:"deliveries"`
	}

	// Delivery lists the items one courier delivers.
	Delivery struct {
		Courier string   `json:"courier"`
		Items   []string `json:"items"`
	}

	// CatalogEntry is one item and the couriers able to deliver it.
	CatalogEntry struct {
		Item     string   `json:"item"`
		Couriers []string `json:"couriers"`
	}

	// CatalogImport maps item names to courier names.
	CatalogImport map[string][]string

	// ReloadCatalogResponse describes the catalog installed by a reload.
	ReloadCatalogResponse struct {
		Changed     bool   `json:"changed"`
		Items       int    `json:"items"`
		Fingerprint string `json:"fingerprint"`
	}

	// Error is the body of every non-2xx response.
	Error struct {
		Code    int32  `json:"code"`
		Message string `json:"message"`
	}
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// SplitBasket handles POST /api/v1/baskets/split.
	SplitBasket(ctx echo.Context) error
	// GetCatalog handles GET /api/v1/catalog.
	GetCatalog(ctx echo.Context) error
	// ImportCatalog handles PUT /api/v1/catalog.
	ImportCatalog(ctx echo.Context) error
	// ReloadCatalog handles POST /api/v1/catalog/reload.
	ReloadCatalog(ctx echo.Context) error
	// GetCatalogItem handles GET /api/v1/catalog/{item}.
	GetCatalogItem(ctx echo.Context, item string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetCatalogItem binds the item path parameter, which may be percent-encoded.
func (w *ServerInterfaceWrapper) GetCatalogItem(ctx echo.Context) error {
	var item string

	err := runtime.BindStyledParameterWithOptions("simple", "item", ctx.Param("item"), &item,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter item: %s", err))
	}

	return w.Handler.GetCatalogItem(ctx, item)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/api/v1/baskets/split", si.SplitBasket)
	router.GET("/api/v1/catalog", si.GetCatalog)
	router.PUT("/api/v1/catalog", si.ImportCatalog)
	router.POST("/api/v1/catalog/reload", si.ReloadCatalog)
	router.GET("/api/v1/catalog/:item", wrapper.GetCatalogItem)
}
