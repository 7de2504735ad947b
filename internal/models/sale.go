// internal/models/sale.go
package models

// Sale is an outgoing stock transaction to a customer, recorded by a
// staff account. Rows are append-only.
type Sale struct {
	BaseModel
	ProductID uint `json:"product_id" gorm:"not null;index"`
	BuyerID   uint `json:"buyer_id" gorm:"not null;index"`
	Quantity  int  `json:"quantity" gorm:"not null"`
	// Unit price captured at transaction time: twice the product's
	// purchase price as of the sale. Not looked up again later.
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	// unit price * quantity, fixed at creation.
	Total float64 `json:"total" gorm:"type:decimal(12,2);not null"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Buyer   User    `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
}
