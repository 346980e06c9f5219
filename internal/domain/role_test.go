package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{"user": RoleUser, "Member": RoleMember, " admin ": RoleAdmin} {
		got, err := ParseRole(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRole_Capabilities(t *testing.T) {
	tests := []struct {
		role                            Role
		approve, coupons, book, viewAll bool
	}{
		{RoleUser, false, false, true, false},
		{RoleMember, false, false, true, false},
		{RoleAdmin, true, true, true, true},
		{Role(0), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.approve, tt.role.CanApprove())
			assert.Equal(t, tt.coupons, tt.role.CanManageCoupons())
			assert.Equal(t, tt.book, tt.role.CanBook())
			assert.Equal(t, tt.viewAll, tt.role.CanViewAllBookings())
		})
	}
}

func TestIdentity_Owns(t *testing.T) {
	id := Identity{Email: "Player@Club.test", Role: RoleUser}
	assert.True(t, id.Owns("player@club.test"))
	assert.False(t, id.Owns("other@club.test"))
	assert.False(t, Identity{}.Owns(""))
}
