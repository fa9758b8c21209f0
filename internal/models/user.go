package models

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null"`
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FirstName    string   `gorm:"not null"`
	LastName     string   `gorm:"not null"`
	Phone        string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'USER'"`
	IsActive     *bool    `gorm:"default:true"`

	// Relations
	Ads []Ad `gorm:"foreignKey:UserID"`
}
