package items

import "time"

// Item is a stored key/value pair.
type Item struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `gorm:"index" json:"-"`
}

// TableName pins the table name.
func (Item) TableName() string {
	return "items"
}
