package models

import "time"

// BaseModel is embedded by every entity. Deletes are hard deletes:
// a removed id must not be found again, so there is no DeletedAt column.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
