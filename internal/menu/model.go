package menu

// Item is a catalog entry with up to three size-specific prices.
// Prices are kept as display strings ("5,00"); the kiosk never does
// arithmetic on them.
type Item struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	PriceSmall  string `json:"price_small"`
	PriceMedium string `json:"price_medium"`
	PriceLarge  string `json:"price_large"`
}

// TableName specifies the table name for the Item model.
func (Item) TableName() string {
	return "menu_items"
}
