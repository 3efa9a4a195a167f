package authz

import (
	"testing"

	"github.com/accvalongo/associa/internal/types"
	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestManageAssociationScoping(t *testing.T) {
	admin := Caller{ID: 1, Email: "admin@example.com", IsAdmin: true}
	owner := Caller{ID: 2, Email: "clube@example.com", AssociationID: uintPtr(7)}
	orphan := Caller{ID: 3, Email: "orphan@example.com"}

	tests := []struct {
		name          string
		caller        Caller
		associationID uint
		want          bool
	}{
		{"admin any association", admin, 7, true},
		{"admin other association", admin, 8, true},
		{"owner own association", owner, 7, true},
		{"owner other association", owner, 8, false},
		{"orphan account", orphan, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := ManageAssociation(tt.caller, tt.associationID)
			assert.Equal(t, tt.want, decision.Allowed)

			if !tt.want {
				assert.NotEmpty(t, decision.Reason)
			}
		})
	}
}

func TestManageActivityScoping(t *testing.T) {
	owner := Caller{ID: 2, AssociationID: uintPtr(7)}

	assert.True(t, ManageActivity(Caller{ID: 1, IsAdmin: true}, 7).Allowed)
	assert.True(t, ManageActivity(owner, 7).Allowed)
	assert.False(t, ManageActivity(owner, 9).Allowed)
	assert.False(t, ManageActivity(Caller{ID: 3}, 7).Allowed)
}

func TestListAssociationsIsAdminOnly(t *testing.T) {
	assert.True(t, ListAssociations(Caller{ID: 1, IsAdmin: true}).Allowed)
	assert.False(t, ListAssociations(Caller{ID: 2, AssociationID: uintPtr(7)}).Allowed)
}

func TestUserManagementIsAdminOnly(t *testing.T) {
	assert.True(t, ManageUsers(Caller{ID: 1, IsAdmin: true}).Allowed)
	assert.False(t, ManageUsers(Caller{ID: 2, AssociationID: uintPtr(7)}).Allowed)
	assert.False(t, ManageUsers(Caller{ID: 3}).Allowed)
}

func TestDeleteAssociationIsAdminOnly(t *testing.T) {
	owner := Caller{ID: 2, AssociationID: uintPtr(7)}

	assert.True(t, DeleteAssociation(Caller{ID: 1, IsAdmin: true}).Allowed)
	// Owners may edit their organization but never remove it.
	assert.False(t, DeleteAssociation(owner).Allowed)
}

func TestCreateAdminRequiresSuperAdmin(t *testing.T) {
	superAdmin := Caller{ID: 1, Email: types.SuperAdminEmail, IsAdmin: true}
	regularAdmin := Caller{ID: 2, Email: "other.admin@example.com", IsAdmin: true}
	impostor := Caller{ID: 3, Email: types.SuperAdminEmail, IsAdmin: false}

	assert.True(t, CreateAdmin(superAdmin).Allowed)
	assert.False(t, CreateAdmin(regularAdmin).Allowed)
	assert.False(t, CreateAdmin(impostor).Allowed)
}

func TestTargetUserRejectsSelf(t *testing.T) {
	admin := Caller{ID: 5, IsAdmin: true}

	assert.False(t, TargetUser(admin, 5).Allowed)
	assert.True(t, TargetUser(admin, 6).Allowed)
}
