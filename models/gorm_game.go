package models

import "time"

// Game represents a video game in the catalog using GORM.
// It corresponds to the 'games' table.
type Game struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null;index" json:"title"`
	Description string    `gorm:"not null;default:''" json:"description"`
	ReleaseDate time.Time `gorm:"not null" json:"release_date"`
	Highlighted bool      `gorm:"not null;default:false" json:"highlighted"`
	Image       *string   `gorm:"" json:"image,omitempty"` // Nullable, public path such as /uploads/<name>
	CreatedAt   int64     `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt   int64     `gorm:"not null" json:"updated_at"` // Unix timestamp

	// Relationships
	GenreID  uint    `gorm:"not null;index" json:"genre_id"`
	Genre    Genre   `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
	EditorID *uint   `gorm:"index" json:"editor_id,omitempty"` // Nullable: cleared when the editor is deleted
	Editor   *Editor `gorm:"foreignKey:EditorID" json:"editor,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Game) TableName() string {
	return "games"
}

// ReleaseDateFormatted renders the release date as YYYY-MM-DD for views and date inputs.
func (g Game) ReleaseDateFormatted() string {
	if g.ReleaseDate.IsZero() {
		return ""
	}
	return g.ReleaseDate.UTC().Format(DateLayout)
}

// DateLayout is the calendar-date format used by forms and views.
const DateLayout = "2006-01-02"
