// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields. IDs are serial integers on purpose:
// product listings and "latest purchase" lookups are defined by
// insertion order, which the primary key carries directly.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleStaff    UserRole = "staff"
	RoleSupplier UserRole = "supplier"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleSupplier:
		return true
	}
	return false
}
