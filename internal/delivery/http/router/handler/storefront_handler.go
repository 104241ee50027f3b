// Package handler contains the HTTP handlers for the storefront.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StorefrontHandler serves the public browsing endpoints.
type StorefrontHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewStorefrontHandler is the constructor for StorefrontHandler, injected by Fx.
func NewStorefrontHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		uc:     uc,
		logger: logger,
	}
}

// Home serves the landing page sections.
func (h *StorefrontHandler) Home(c echo.Context) error {
	output, err := h.uc.Home(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"featured_products": toProductViews(output.Featured),
		"products":          toProductViews(output.Latest),
		"essentials":        toProductViews(output.Essentials),
		"total_products":    output.TotalProducts,
	}, "Home page loaded")
}

// Catalog serves the filterable product listing. The category filter arrives
// as the optional ?category query parameter.
func (h *StorefrontHandler) Catalog(c echo.Context) error {
	categorySlug := c.QueryParam("category")

	output, err := h.uc.Browse(c.Request().Context(), categorySlug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products":        toProductViews(output.Products),
		"categories":      toCategoryViews(output.Categories),
		"active_category": output.ActiveCategory,
	}, "Catalog loaded")
}

// ProductDetail serves one product page with its related products.
func (h *StorefrontHandler) ProductDetail(c echo.Context) error {
	slug := c.Param("slug")

	output, err := h.uc.ProductDetail(c.Request().Context(), slug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product":          toProductView(output.Product),
		"related_products": toProductViews(output.Related),
	}, "Product loaded")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// --- View Models ---

// CategoryView is the outward representation of a category.
type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductView is the outward representation of a product. Prices travel as
// two-decimal strings.
type ProductView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Price       string        `json:"price"`
	ImageURL    string        `json:"image_url"`
	IsFeatured  bool          `json:"is_featured"`
	InStock     bool          `json:"in_stock"`
	Category    *CategoryView `json:"category,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

func toCategoryView(category *entity.Category) *CategoryView {
	if category == nil {
		return nil
	}

	return &CategoryView{
		ID:   category.ID.String(),
		Name: category.Name,
		Slug: category.Slug,
	}
}

func toCategoryViews(categories []*entity.Category) []*CategoryView {
	views := make([]*CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, toCategoryView(category))
	}

	return views
}

func toProductView(product *entity.Product) *ProductView {
	if product == nil {
		return nil
	}

	return &ProductView{
		ID:          product.ID.String(),
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		ImageURL:    product.ImageURL,
		IsFeatured:  product.IsFeatured,
		InStock:     product.InStock,
		Category:    toCategoryView(product.Category),
		CreatedAt:   product.CreatedAt,
	}
}

func toProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}
