package model

import "time"

// UserSettingsModel is the GORM-specific struct for the 'user_settings' table.
type UserSettingsModel struct {
	UserID    string  `gorm:"type:varchar(128);primaryKey"`
	Locale    *string `gorm:"type:varchar(16)"`
	Theme     *string `gorm:"type:varchar(16)"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// All lists every model owned by the relational storage, in migration order.
func All() []any {
	return []any{
		&BookModel{},
		&UserSettingsModel{},
	}
}
