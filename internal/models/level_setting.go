package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// LevelSettingKey identifies the single referral level configuration record
const LevelSettingKey = "referral_levels"

// LevelEntry is one (level, percentage) pair of the commission table
type LevelEntry struct {
	Level      int     `json:"level"`
	Percentage float64 `json:"percentage"`
}

// LevelEntries is stored as a JSON column
type LevelEntries []LevelEntry

// Value implements the driver.Valuer interface for LevelEntries
func (e LevelEntries) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(e)
}

// Scan implements the sql.Scanner interface for LevelEntries
func (e *LevelEntries) Scan(value interface{}) error {
	if value == nil {
		*e = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	var result LevelEntries
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*e = result
	return nil
}

// DefaultLevelConfig is used whenever no active configuration exists
var DefaultLevelConfig = LevelEntries{
	{Level: 1, Percentage: 5},
	{Level: 2, Percentage: 3},
	{Level: 3, Percentage: 1},
}

// LevelSetting holds the active commission rate table. At most one row is
// active at a time; the engine loads it once per run.
type LevelSetting struct {
	Base
	Key       string       `gorm:"type:varchar(50);uniqueIndex;not null;default:'referral_levels'" json:"key"`
	Levels    LevelEntries `gorm:"type:text;not null" json:"levels"`
	IsActive  bool         `gorm:"default:true" json:"is_active"`
	UpdatedBy string       `gorm:"type:varchar(100);default:'system'" json:"updated_by"`
}
