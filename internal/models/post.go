package models

import "time"

// Post is a user's review of a film. A user has at most one active post per film.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	UserID    uint           `gorm:"index;not null;uniqueIndex:idx_posts_active_user_film,where:is_active = true" json:"user" example:"1"`
	User      *User          `gorm:"foreignKey:UserID" json:"-"`
	FilmID    uint           `gorm:"index;not null;uniqueIndex:idx_posts_active_user_film,where:is_active = true" json:"film_id" example:"1"`
	Film      *Film          `gorm:"foreignKey:FilmID" json:"film,omitempty"`
	Genres    map[string]int `gorm:"serializer:json;not null" json:"genres"`
	Rate      *float64       `json:"rate" example:"8.5"`
	Caption   *string        `gorm:"type:text" json:"caption"`
	Quote     *string        `gorm:"size:255" json:"quote"`
	IsActive  bool           `gorm:"index;default:true" json:"-"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
