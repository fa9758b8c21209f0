package validator

import (
	"log"
	"strings"
	"unicode"

	"furnimarket_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags. Registration
// failures abort startup.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-condition': furniture condition enum
	mustRegister("is-condition", validateCondition)

	// 'is-user-role': user role enum
	mustRegister("is-user-role", validateUserRole)

	// 'password': complexity rule from registration
	mustRegister("password", validatePassword)
}

func validateCondition(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	return models.Condition(value).Valid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).Valid()
}

// validatePassword requires at least 8 characters including a lowercase
// letter, an uppercase letter, a digit and a special character.
func validatePassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if len(value) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	hasSpecial := strings.ContainsAny(value, "@#$!%&*")

	return hasLower && hasUpper && hasDigit && hasSpecial
}
