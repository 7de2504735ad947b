// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Description string `json:"description" gorm:"size:255;not null"`
	Location    string `json:"location" gorm:"size:100;not null"`
	// On-hand stock. Only purchase and sale transactions mutate it;
	// committed transactions never leave it negative.
	Quantity int `json:"quantity" gorm:"not null;default:0"`
	// Last purchase unit price, excl. tax.
	PurchasePrice float64 `json:"purchase_price" gorm:"type:decimal(10,2);not null;default:0"`
	TaxRate       float64 `json:"tax_rate" gorm:"type:decimal(6,3);not null;default:0"`
	// Recommended stock level set by the administrator.
	ReorderLevel int `json:"reorder_level" gorm:"not null;default:0"`
	// Catalog sale price, recomputed as purchase price * 1.30 on every
	// purchase. Recorded sales use their own multiplier; see Sale.
	SalePrice float64        `json:"sale_price" gorm:"type:decimal(10,2);not null;default:0"`
	Tags      pq.StringArray `json:"tags,omitempty" gorm:"type:text[]"`

	// Relationships
	Purchases []Purchase `json:"purchases,omitempty" gorm:"foreignKey:ProductID"`
	Sales     []Sale     `json:"sales,omitempty" gorm:"foreignKey:ProductID"`
}

// IsLowStock reports whether on-hand quantity has fallen below 10% of
// the reorder level. The boundary itself is not low stock.
func (p *Product) IsLowStock() bool {
	return float64(p.Quantity) < 0.1*float64(p.ReorderLevel)
}
