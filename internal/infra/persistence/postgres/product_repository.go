// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its id regardless of stock state.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Category").
		First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProductDomain(&productM), nil
}

// FindBySlug retrieves a single product by its slug regardless of stock state.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Category").
		First(&productM, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProductDomain(&productM), nil
}

// FindInStockBySlug retrieves a single in-stock product by its slug.
// An out-of-stock product is treated the same as an absent one.
func (repo *productRepository) FindInStockBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ? AND in_stock = ?", slug, true).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProductDomain(&productM), nil
}

// ListFeatured retrieves in-stock featured products, newest first.
func (repo *productRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("is_featured = ? AND in_stock = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toProductDomainSlice(productModels), nil
}

// ListInStock retrieves in-stock products newest first, optionally filtered by
// category slug. A non-positive limit means no cap.
func (repo *productRepository) ListInStock(ctx context.Context, categorySlug string, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).
		Preload("Category").
		Where("in_stock = ?", true).
		Order("created_at DESC")

	if categorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", categorySlug)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toProductDomainSlice(productModels), nil
}

// ListRelated retrieves in-stock products sharing the given product's
// category, excluding the product itself.
func (repo *productRepository) ListRelated(ctx context.Context, product *entity.Product, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ? AND id <> ? AND in_stock = ?", product.CategoryID, product.ID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toProductDomainSlice(productModels), nil
}

// CountInStock reports how many products are currently in stock.
func (repo *productRepository) CountInStock(ctx context.Context) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("in_stock = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductAlreadyExists.WrapMessage("slug taken")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductAlreadyExists.WrapMessage("slug taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes a product. The protective foreign key on orders turns this
// into ErrProductInUse while any order references the product.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrProductInUse.WrapMessage("product is referenced by orders")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		CategoryID:  data.CategoryID,
		Category:    toCategoryDomain(data.Category),
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		IsFeatured:  data.IsFeatured,
		InStock:     data.InStock,
		CreatedAt:   data.CreatedAt,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		IsFeatured:  data.IsFeatured,
		InStock:     data.InStock,
		CreatedAt:   data.CreatedAt,
	}
}
