package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Difficulty levels accepted on question creation.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// OptionMap stores the answer options as a JSON column,
// e.g. {"A": "Option one", "B": "Option two"}.
type OptionMap map[string]string

func (m OptionMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *OptionMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type %T for OptionMap", value)
	}
}

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Options       OptionMap      `json:"options" gorm:"type:jsonb;not null"`
	CorrectOption string         `json:"correct_option" gorm:"not null"`
	Difficulty    string         `json:"difficulty" gorm:"not null;index"` // "easy", "medium", "hard"
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
