package settings

// Settings is the singleton configuration row. OrderDeadline holds a
// time-of-day as "HH:MM" with no date and no zone; nil means no cutoff.
type Settings struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	OrderingEnabled bool    `gorm:"not null;default:true" json:"ordering_enabled"`
	OrderDeadline   *string `json:"order_deadline"`
}

// TableName specifies the table name for the Settings model.
func (Settings) TableName() string {
	return "settings"
}
