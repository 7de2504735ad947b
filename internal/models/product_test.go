// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductIsLowStock(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         bool
	}{
		{"well below threshold", 2, 100, true},
		{"just below threshold", 9, 100, true},
		{"exactly at threshold", 10, 100, false},
		{"above threshold", 11, 100, false},
		{"zero reorder level", 0, 0, false},
		{"empty stock with reorder level", 0, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Quantity: tt.quantity, ReorderLevel: tt.reorderLevel}
			assert.Equal(t, tt.want, p.IsLowStock())
		})
	}
}

func TestUserRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.True(t, RoleSupplier.Valid())
	assert.False(t, UserRole("manager").Valid())
	assert.False(t, UserRole("").Valid())
}

func TestUserPasswordRoundTrip(t *testing.T) {
	u := &User{Username: "clerk"}
	assert.NoError(t, u.SetPassword("correct horse"))
	assert.NoError(t, u.CheckPassword("correct horse"))
	assert.Error(t, u.CheckPassword("wrong horse"))
	assert.NotEqual(t, "correct horse", u.PasswordHash)
}
