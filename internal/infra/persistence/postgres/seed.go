package postgres

import (
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedProduct struct {
	categorySlug string
	name         string
	slug         string
	description  string
	price        string
	imageURL     string
	isFeatured   bool
}

// SeedCategories is the demo catalog's category set, keyed name to slug.
var SeedCategories = map[string]string{
	"Audio":           "audio",
	"Wearables":       "wearables",
	"Computing":       "computing",
	"Tech Essentials": "tech-essentials",
}

var seedProducts = []seedProduct{
	{
		categorySlug: "audio",
		name:         "Pulse One Headphones",
		slug:         "pulse-one-headphones",
		description:  "Noise-canceling over-ear headphones tuned for long listening sessions.",
		price:        "179.00",
		imageURL:     "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=900&q=80",
		isFeatured:   true,
	},
	{
		categorySlug: "wearables",
		name:         "Orbit Smartwatch S2",
		slug:         "orbit-smartwatch-s2",
		description:  "Fitness and wellness tracking with a week-long battery life.",
		price:        "229.00",
		imageURL:     "https://images.unsplash.com/photo-1546868871-7041f2a55e12?auto=format&fit=crop&w=900&q=80",
		isFeatured:   true,
	},
	{
		categorySlug: "computing",
		name:         "Nova Mechanical Keyboard",
		slug:         "nova-mechanical-keyboard",
		description:  "Compact wireless keyboard with tactile switches and RGB backlight.",
		price:        "119.00",
		imageURL:     "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?auto=format&fit=crop&w=900&q=80",
	},
	{
		categorySlug: "computing",
		name:         "Glide Pro Mouse",
		slug:         "glide-pro-mouse",
		description:  "Ergonomic high-precision mouse designed for creative workflows.",
		price:        "79.00",
		imageURL:     "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?auto=format&fit=crop&w=900&q=80",
	},
	{
		categorySlug: "tech-essentials",
		name:         "Volt 65W USB-C Charger",
		slug:         "volt-65w-usb-c-charger",
		description:  "Fast multi-device charging brick with foldable plug and compact shell.",
		price:        "49.00",
		imageURL:     "https://images.unsplash.com/photo-1583863788434-e58a36330cf0?auto=format&fit=crop&w=900&q=80",
		isFeatured:   true,
	},
	{
		categorySlug: "tech-essentials",
		name:         "Link 7-in-1 USB-C Hub",
		slug:         "link-7-in-1-usb-c-hub",
		description:  "Portable aluminum hub with HDMI, SD, USB-A and pass-through charging.",
		price:        "69.00",
		imageURL:     "https://images.unsplash.com/photo-1625842268584-8f3296236761?auto=format&fit=crop&w=900&q=80",
	},
	{
		categorySlug: "tech-essentials",
		name:         "Shield Laptop Sleeve 14\"",
		slug:         "shield-laptop-sleeve-14",
		description:  "Water-resistant padded sleeve with magnetic closure for daily commute.",
		price:        "39.00",
		imageURL:     "https://images.unsplash.com/photo-1511385348-a52b4a160dc2?auto=format&fit=crop&w=900&q=80",
	},
	{
		categorySlug: "tech-essentials",
		name:         "Air Mini Power Bank",
		slug:         "air-mini-power-bank",
		description:  "Slim 10,000mAh battery pack with dual USB-C fast charging ports.",
		price:        "59.00",
		imageURL:     "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?auto=format&fit=crop&w=900&q=80",
	},
}

// Seed loads the demo catalog. It is idempotent: rows are matched by slug and
// existing rows are left untouched, so re-running never duplicates or resets
// admin edits.
func Seed(db *gorm.DB) error {
	categoriesBySlug := make(map[string]*model.CategoryModel, len(SeedCategories))

	for name, slug := range SeedCategories {
		categoryM := &model.CategoryModel{}

		err := db.
			Where(model.CategoryModel{Slug: slug}).
			Attrs(model.CategoryModel{Name: name}).
			FirstOrCreate(categoryM).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed category %s", slug)
		}

		categoriesBySlug[slug] = categoryM
	}

	for _, sp := range seedProducts {
		category, ok := categoriesBySlug[sp.categorySlug]
		if !ok {
			return errors.Errorf("seed product %s references unknown category %s", sp.slug, sp.categorySlug)
		}

		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return errors.Wrapf(err, "invalid seed price for %s", sp.slug)
		}

		productM := &model.ProductModel{}

		err = db.
			Where(model.ProductModel{Slug: sp.slug}).
			Attrs(model.ProductModel{
				CategoryID:  category.ID,
				Name:        sp.name,
				Description: sp.description,
				Price:       price,
				ImageURL:    sp.imageURL,
				IsFeatured:  sp.isFeatured,
				InStock:     true,
			}).
			FirstOrCreate(productM).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed product %s", sp.slug)
		}
	}

	return nil
}
