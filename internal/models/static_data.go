package models

// Category and City are static reference data, seeded at startup and
// resolved by exact name during ad creation/update.

type Category struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"`
}

type City struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"`
}
