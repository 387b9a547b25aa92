package model

import "time"

// Todo is a single entry of the todo list.
type Todo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      *uint     `json:"user_id,omitempty" gorm:"index"`
	User        *User     `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}
