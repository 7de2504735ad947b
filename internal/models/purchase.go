// internal/models/purchase.go
package models

// Purchase is an incoming stock transaction from a supplier. Rows are
// append-only; the core never updates or deletes them.
type Purchase struct {
	BaseModel
	ProductID  uint `json:"product_id" gorm:"not null;index"`
	SupplierID uint `json:"supplier_id" gorm:"not null;index"`
	Quantity   int  `json:"quantity" gorm:"not null"`
	// Unit price excl. tax, as quoted by the supplier.
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TaxRate   float64 `json:"tax_rate" gorm:"type:decimal(6,3);not null"`
	// unit price * tax rate * quantity, fixed at creation.
	Total float64 `json:"total" gorm:"type:decimal(12,2);not null"`

	// Relationships
	Product  Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Supplier User    `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}
