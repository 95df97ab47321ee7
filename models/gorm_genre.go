package models

// Genre represents a game category in the database using GORM.
// It corresponds to the 'genres' table.
type Genre struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null;unique" json:"name"`

	Games []Game `gorm:"foreignKey:GenreID" json:"games,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Genre) TableName() string {
	return "genres"
}

// GenreSummary is a read-only listing row: a genre and how many games use it.
type GenreSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	GameCount int64  `json:"game_count"`
}
