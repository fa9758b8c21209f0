// Package dto defines the request and response shapes of the HTTP API.
// Insert DTOs carry validation tags; read-only DTOs are flattened views of
// the domain entities built by the mapper package.
package dto

import (
	"strings"
	"time"

	"furnimarket_backend/internal/filters"
	"furnimarket_backend/internal/models"

	"github.com/shopspring/decimal"
)

// AdInsertDTO is the payload for creating or updating an ad. Category and
// city are referenced by name and resolved against the reference tables.
type AdInsertDTO struct {
	Title        string           `json:"title" validate:"required,min=2,max=30"`
	Description  string           `json:"description" validate:"required,min=2,max=100"`
	Price        *decimal.Decimal `json:"price" validate:"required"`
	Condition    models.Condition `json:"condition" validate:"required,is-condition"`
	CategoryName string           `json:"categoryName" validate:"required"`
	CityName     string           `json:"cityName" validate:"required"`
	IsAvailable  *bool            `json:"isAvailable"`
}

// AdInsertForm is the multipart variant of AdInsertDTO. Price arrives as a
// string form field and is parsed here; validation of the resulting DTO
// happens afterwards as usual.
type AdInsertForm struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	Price        string `form:"price"`
	Condition    string `form:"condition"`
	CategoryName string `form:"categoryName"`
	CityName     string `form:"cityName"`
	IsAvailable  *bool  `form:"isAvailable"`
}

// ToInsertDTO converts the bound form to the validated insert shape.
func (f AdInsertForm) ToInsertDTO() (AdInsertDTO, error) {
	out := AdInsertDTO{
		Title:        f.Title,
		Description:  f.Description,
		Condition:    models.Condition(strings.ToUpper(strings.TrimSpace(f.Condition))),
		CategoryName: f.CategoryName,
		CityName:     f.CityName,
		IsAvailable:  f.IsAvailable,
	}
	price, err := parsePrice("price", f.Price)
	if err != nil {
		return out, err
	}
	out.Price = price
	return out, nil
}

// NamedRef is a minimal id-plus-name view of a reference entity.
type NamedRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AdReadOnlyDTO is the public view of an ad, with the owner reduced to
// contact fields.
type AdReadOnlyDTO struct {
	ID            uint             `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	Condition     models.Condition `json:"condition"`
	IsAvailable   bool             `json:"isAvailable"`
	Category      *NamedRef        `json:"category,omitempty"`
	City          *NamedRef        `json:"city,omitempty"`
	ImagePath     string           `json:"imagePath,omitempty"`
	UserFirstName string           `json:"userFirstName,omitempty"`
	UserLastName  string           `json:"userLastName,omitempty"`
	UserPhone     string           `json:"userPhone,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// AdSearchRequest mirrors filters.AdFilters with string-typed prices so it
// can be bound from query parameters, where decimals have no native binding.
type AdSearchRequest struct {
	Page          *int   `form:"page" json:"page"`
	PageSize      *int   `form:"pageSize" json:"pageSize"`
	SortBy        string `form:"sortBy" json:"sortBy"`
	SortDirection string `form:"sortDirection" json:"sortDirection"`

	Title        string `form:"title" json:"title"`
	CategoryID   *uint  `form:"categoryId" json:"categoryId"`
	CategoryName string `form:"categoryName" json:"categoryName"`
	Condition    string `form:"condition" json:"condition"`
	MinPrice     string `form:"minPrice" json:"minPrice"`
	MaxPrice     string `form:"maxPrice" json:"maxPrice"`
	CityID       *uint  `form:"cityId" json:"cityId"`
	CityName     string `form:"cityName" json:"cityName"`
	UserID       *uint  `form:"userId" json:"userId"`
	IsAvailable  *bool  `form:"isAvailable" json:"isAvailable"`
	Description  string `form:"description" json:"description"`
	MyAds        *bool  `form:"myAds" json:"myAds"`
}

// ToAdFilters converts the bound request to the filter struct used by the
// service layer. Malformed prices or an unknown condition are reported as
// errors rather than silently dropped.
func (r AdSearchRequest) ToAdFilters() (filters.AdFilters, error) {
	f := filters.AdFilters{
		GenericFilters: filters.GenericFilters{
			Page:          r.Page,
			PageSize:      r.PageSize,
			SortBy:        r.SortBy,
			SortDirection: r.SortDirection,
		},
		Title:        r.Title,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		CityID:       r.CityID,
		CityName:     r.CityName,
		UserID:       r.UserID,
		IsAvailable:  r.IsAvailable,
		Description:  r.Description,
		MyAds:        r.MyAds,
	}

	if s := strings.TrimSpace(r.Condition); s != "" {
		condition := models.Condition(strings.ToUpper(s))
		if !condition.Valid() {
			return f, &FieldError{Field: "condition", Message: "unknown condition: " + s}
		}
		f.Condition = &condition
	}

	minPrice, err := parsePrice("minPrice", r.MinPrice)
	if err != nil {
		return f, err
	}
	f.MinPrice = minPrice

	maxPrice, err := parsePrice("maxPrice", r.MaxPrice)
	if err != nil {
		return f, err
	}
	f.MaxPrice = maxPrice

	return f, nil
}

// FieldError reports a single malformed request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func parsePrice(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &FieldError{Field: field, Message: "must be a decimal number"}
	}
	return &value, nil
}
