package model

import "time"

// Category is a board column. Order is display position only; ties are
// broken by id for determinism, never renumbered automatically.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Order     int       `gorm:"not null;default:0" json:"order"`
	Color     *string   `gorm:"size:20" json:"color"`
	CreatedAt time.Time `json:"created_at"`

	Tasks []Task `gorm:"foreignKey:CategoryID" json:"-"`
}
