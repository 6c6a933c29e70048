package order

import "time"

// Order is one customer's submitted set of line items plus payment method
// and paid status.
type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	PaymentMethod string    `gorm:"not null" json:"payment_method"`
	Paid          bool      `gorm:"not null;default:false" json:"paid"`
	Items         []Item    `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt     time.Time `json:"created_at"`
}

// Item is one line within an order. The item name and price are snapshots
// copied from the menu at submission time, not foreign keys, so later menu
// edits never rewrite order history.
type Item struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Item        string `gorm:"not null" json:"item"`
	Size        string `gorm:"not null" json:"size"`
	Price       string `gorm:"not null" json:"price"`
	ExtraWishes string `json:"extra_wishes"`
	OrderID     uint   `gorm:"not null;index" json:"order_id"`
}

// TableName specifies the table name for the Order model.
func (Order) TableName() string {
	return "orders"
}

// TableName specifies the table name for the Item model.
func (Item) TableName() string {
	return "order_items"
}
