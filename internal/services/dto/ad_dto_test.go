package dto

import (
	"testing"

	"furnimarket_backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAdFiltersConvertsPricesAndCondition(t *testing.T) {
	req := AdSearchRequest{
		Title:     "sofa",
		Condition: "good",
		MinPrice:  "10.50",
		MaxPrice:  "200",
	}

	f, err := req.ToAdFilters()
	require.NoError(t, err)

	assert.Equal(t, "sofa", f.Title)
	require.NotNil(t, f.Condition)
	assert.Equal(t, models.ConditionGood, *f.Condition)
	require.NotNil(t, f.MinPrice)
	assert.True(t, f.MinPrice.Equal(decimal.RequireFromString("10.50")))
	require.NotNil(t, f.MaxPrice)
	assert.True(t, f.MaxPrice.Equal(decimal.RequireFromString("200")))
}

func TestToAdFiltersEmptyFieldsStayUnset(t *testing.T) {
	f, err := AdSearchRequest{}.ToAdFilters()
	require.NoError(t, err)

	assert.Nil(t, f.Condition)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Empty(t, f.Title)
}

func TestToAdFiltersRejectsMalformedPrice(t *testing.T) {
	_, err := AdSearchRequest{MinPrice: "cheap"}.ToAdFilters()
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "minPrice", fieldErr.Field)
}

func TestToAdFiltersRejectsUnknownCondition(t *testing.T) {
	_, err := AdSearchRequest{Condition: "MINT"}.ToAdFilters()
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "condition", fieldErr.Field)
}

func TestAdInsertFormToDTO(t *testing.T) {
	form := AdInsertForm{
		Title:        "Leather Sofa",
		Description:  "brown",
		Price:        "350.00",
		Condition:    "good",
		CategoryName: "Sofas",
		CityName:     "Athens",
	}

	in, err := form.ToInsertDTO()
	require.NoError(t, err)

	assert.Equal(t, models.ConditionGood, in.Condition)
	require.NotNil(t, in.Price)
	assert.True(t, in.Price.Equal(decimal.RequireFromString("350.00")))
	assert.Nil(t, in.IsAvailable)
}
