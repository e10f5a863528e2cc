package models

// Category groups cards under a system-wide unique name.
// UserID is optional: categories may exist without an owner.
type Category struct {
	BaseModel
	Name   string `gorm:"type:varchar(100);uniqueIndex;not null"`
	UserID *uint  `gorm:"index"`

	Cards []Card `gorm:"foreignKey:CategoryID"`
}
