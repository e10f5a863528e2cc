package models

// User is identified by its unique email address. Creation is idempotent:
// posting an existing email returns the stored record instead of failing.
type User struct {
	BaseModel
	Email string `gorm:"type:varchar(255);uniqueIndex;not null"`

	Categories []Category `gorm:"foreignKey:UserID"`
	Cards      []Card     `gorm:"foreignKey:UserID"`
}
