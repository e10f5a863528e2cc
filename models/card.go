package models

// Card is a front/back text pair. CategoryID is required; UserID is optional.
type Card struct {
	BaseModel
	Front      string `gorm:"type:text;not null;index"`
	Back       string `gorm:"type:text;not null"`
	CategoryID uint   `gorm:"index;not null"`
	UserID     *uint  `gorm:"index"`

	Category Category `gorm:"foreignKey:CategoryID"`
}
