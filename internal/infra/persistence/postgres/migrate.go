package postgres

import (
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every table the storefront uses.
// Tables are listed parents first so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() lives in the uuid-ossp extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return errors.Wrap(err, "failed to create uuid-ossp extension")
	}

	err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProfileModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.OrderModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
