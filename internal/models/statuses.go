package models

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	default:
		return false
	}
}

// Condition describes the physical state of a piece of furniture.
type Condition string

const (
	ConditionExcellent Condition = "EXCELLENT"
	ConditionGood      Condition = "GOOD"
	ConditionAgeWorn   Condition = "AGE_WORN"
	ConditionDamaged   Condition = "DAMAGED"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionAgeWorn, ConditionDamaged:
		return true
	default:
		return false
	}
}
