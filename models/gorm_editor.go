package models

// Editor represents a game publisher in the database using GORM.
// It corresponds to the 'editors' table.
type Editor struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	CreatedAt int64  `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64  `gorm:"not null" json:"updated_at"` // Unix timestamp

	// omitempty hides games unless preloaded
	Games []Game `gorm:"foreignKey:EditorID;constraint:OnDelete:SET NULL" json:"games,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Editor) TableName() string {
	return "editors"
}

// EditorSummary is a read-only listing row: an editor and how many games it publishes.
type EditorSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	GameCount int64  `json:"game_count"`
}
