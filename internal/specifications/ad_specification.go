// Package specifications contains composable query predicates for filtered
// search. Each builder is a pure function mapping one optional criterion to
// a GORM scope; a nil or blank criterion yields a scope that matches every
// row. The full query predicate is the conjunction (AND) of every scope, so
// application order never changes the result set.
package specifications

import (
	"strings"

	"furnimarket_backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Specification is a single composable filter over a query.
type Specification func(db *gorm.DB) *gorm.DB

func matchAll(db *gorm.DB) *gorm.DB {
	return db
}

// Compose folds the given specifications into one conjunctive predicate.
func Compose(specs ...Specification) Specification {
	return func(db *gorm.DB) *gorm.DB {
		for _, spec := range specs {
			db = spec(db)
		}
		return db
	}
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

// AdTitleLike matches ads whose title contains the given text,
// case-insensitively.
func AdTitleLike(title string) Specification {
	if strings.TrimSpace(title) == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(ads.title) LIKE ?", containsPattern(title))
	}
}

// AdDescriptionLike matches ads whose description contains the given text,
// case-insensitively.
func AdDescriptionLike(description string) Specification {
	if strings.TrimSpace(description) == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(ads.description) LIKE ?", containsPattern(description))
	}
}

func AdCategoryIs(categoryID *uint) Specification {
	if categoryID == nil {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ads.category_id = ?", *categoryID)
	}
}

// AdCategoryNameLike matches ads whose category name contains the given
// text, case-insensitively. Adds its own join so the scope stays
// self-contained.
func AdCategoryNameLike(categoryName string) Specification {
	if strings.TrimSpace(categoryName) == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN categories ON categories.id = ads.category_id").
			Where("LOWER(categories.name) LIKE ?", containsPattern(categoryName))
	}
}

func AdConditionIs(condition *models.Condition) Specification {
	if condition == nil {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ads.condition = ?", *condition)
	}
}

// AdPriceBetween matches ads inside the inclusive price range. A single
// bound yields a one-sided inclusive comparison; no bounds means no filter.
func AdPriceBetween(minPrice, maxPrice *decimal.Decimal) Specification {
	switch {
	case minPrice == nil && maxPrice == nil:
		return matchAll
	case minPrice != nil && maxPrice != nil:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("ads.price BETWEEN ? AND ?", *minPrice, *maxPrice)
		}
	case minPrice != nil:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("ads.price >= ?", *minPrice)
		}
	default:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("ads.price <= ?", *maxPrice)
		}
	}
}

func AdCityIs(cityID *uint) Specification {
	if cityID == nil {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ads.city_id = ?", *cityID)
	}
}

// AdCityNameLike matches ads whose city name contains the given text,
// case-insensitively.
func AdCityNameLike(cityName string) Specification {
	if strings.TrimSpace(cityName) == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN cities ON cities.id = ads.city_id").
			Where("LOWER(cities.name) LIKE ?", containsPattern(cityName))
	}
}

func AdUserIs(userID *uint) Specification {
	if userID == nil {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ads.user_id = ?", *userID)
	}
}

func AdIsAvailable(isAvailable *bool) Specification {
	if isAvailable == nil {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ads.is_available = ?", *isAvailable)
	}
}

// AdIsMyAds restricts results to the current user's own ads. The filter is
// active only when the flag is true AND a current user is known; otherwise
// it matches everything.
func AdIsMyAds(myAds *bool, currentUserID uint) Specification {
	if myAds == nil || !*myAds || currentUserID == 0 {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ads.user_id = ?", currentUserID)
	}
}
