package filters

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"furnimarket_backend/internal/models"

	"github.com/shopspring/decimal"
)

var identifierRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func toSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Break before the first letter of a word, keeping initialism
			// runs like "ID" or "categoryID" together.
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const (
	DefaultPage     = 0
	DefaultPageSize = 10
	DefaultSortBy   = "id"
)

// GenericFilters carries the pagination and sorting parameters shared by
// every filtered search. All fields are optional; zero values fall back to
// the defaults above. An unparseable sort direction degrades to ascending,
// never an error.
type GenericFilters struct {
	Page          *int   `json:"page" form:"page"`
	PageSize      *int   `json:"pageSize" form:"pageSize"`
	SortBy        string `json:"sortBy" form:"sortBy"`
	SortDirection string `json:"sortDirection" form:"sortDirection"`
}

func (f GenericFilters) PageOrDefault() int {
	if f.Page == nil {
		return DefaultPage
	}
	if *f.Page < 0 {
		return 0
	}
	return *f.Page
}

func (f GenericFilters) PageSizeOrDefault() int {
	if f.PageSize == nil || *f.PageSize <= 0 {
		return DefaultPageSize
	}
	return *f.PageSize
}

// SortField returns the sanitized sort column. Camel-cased field names are
// converted to their column form; anything that is not a plain identifier
// falls back to the default so user input never reaches ORDER BY raw.
func (f GenericFilters) SortField() string {
	field := toSnakeCase(strings.TrimSpace(f.SortBy))
	if field == "" || !identifierRe.MatchString(field) {
		return DefaultSortBy
	}
	return field
}

// Direction returns "asc" or "desc". Only a case-insensitive "desc" selects
// descending; anything else (including garbage) is ascending.
func (f GenericFilters) Direction() string {
	if strings.EqualFold(strings.TrimSpace(f.SortDirection), "desc") {
		return "desc"
	}
	return "asc"
}

// OrderClause builds the ORDER BY expression for the filter.
func (f GenericFilters) OrderClause() string {
	return fmt.Sprintf("%s %s", f.SortField(), f.Direction())
}

func (f GenericFilters) Limit() int {
	return f.PageSizeOrDefault()
}

func (f GenericFilters) Offset() int {
	return f.PageOrDefault() * f.PageSizeOrDefault()
}

// AdFilters holds the optional criteria for ad search. Absence of a field
// means "do not filter on this".
type AdFilters struct {
	GenericFilters

	Title        string            `json:"title" form:"title"`
	CategoryID   *uint             `json:"categoryId" form:"categoryId"`
	CategoryName string            `json:"categoryName" form:"categoryName"`
	Condition    *models.Condition `json:"condition" form:"condition"`
	MinPrice     *decimal.Decimal  `json:"minPrice" form:"minPrice"`
	MaxPrice     *decimal.Decimal  `json:"maxPrice" form:"maxPrice"`
	CityID       *uint             `json:"cityId" form:"cityId"`
	CityName     string            `json:"cityName" form:"cityName"`
	UserID       *uint             `json:"userId" form:"userId"`
	IsAvailable  *bool             `json:"isAvailable" form:"isAvailable"`
	Description  string            `json:"description" form:"description"`
	MyAds        *bool             `json:"myAds" form:"myAds"`
}

// UserFilters holds the optional criteria for admin user search.
type UserFilters struct {
	GenericFilters

	Username  string           `json:"username" form:"username"`
	FirstName string           `json:"firstName" form:"firstName"`
	LastName  string           `json:"lastName" form:"lastName"`
	Email     string           `json:"email" form:"email"`
	Phone     string           `json:"phone" form:"phone"`
	Role      *models.UserRole `json:"role" form:"role"`
	IsActive  *bool            `json:"isActive" form:"isActive"`
}
