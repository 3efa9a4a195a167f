// Package authz is the access-control gate. Every decision is a pure
// function over the caller's resolved identity and the target resource's
// identifiers; nothing here reads session state or touches the database.
package authz

import "github.com/accvalongo/associa/internal/types"

// Caller is the resolved identity a decision is made for. AssociationID is
// nil for admins and for orphaned association accounts.
type Caller struct {
	ID            uint
	Email         string
	IsAdmin       bool
	AssociationID *uint
}

// Decision is the outcome of a gate check. Denials carry a human-readable
// reason that handlers surface as user feedback; they never raise.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// ListAssociations gates the admin overview of every association. Individual
// association accounts manage their own organization through its edit page
// instead.
func ListAssociations(caller Caller) Decision {
	if caller.IsAdmin {
		return allow()
	}

	return deny("You do not have permission to access this page.")
}

// ManageAssociation decides whether the caller may edit or otherwise manage
// the given association. Admins always may; an association account only its
// own organization.
func ManageAssociation(caller Caller, associationID uint) Decision {
	if caller.IsAdmin {
		return allow()
	}

	if caller.AssociationID != nil && *caller.AssociationID == associationID {
		return allow()
	}

	return deny("You do not have permission to manage this association.")
}

// ManageActivity decides whether the caller may create, edit or delete an
// activity owned by the given association.
func ManageActivity(caller Caller, owningAssociationID uint) Decision {
	if caller.IsAdmin {
		return allow()
	}

	if caller.AssociationID != nil && *caller.AssociationID == owningAssociationID {
		return allow()
	}

	return deny("You do not have permission to manage this association's activities.")
}

// DeleteAssociation is admin-only; association accounts may edit their own
// organization but never remove it.
func DeleteAssociation(caller Caller) Decision {
	if caller.IsAdmin {
		return allow()
	}

	return deny("You do not have permission to delete this association.")
}

// ManageUsers gates every user-management operation (listing, editing,
// deleting, creating association accounts).
func ManageUsers(caller Caller) Decision {
	if caller.IsAdmin {
		return allow()
	}

	return deny("Access denied. Only administrators can manage users.")
}

// CreateAdmin is the two-tier admin rule: only the distinguished super-admin
// account may create further admin accounts, regardless of IsAdmin.
func CreateAdmin(caller Caller) Decision {
	if caller.IsAdmin && caller.Email == types.SuperAdminEmail {
		return allow()
	}

	return deny("Only the main administrator can create new accounts.")
}

// TargetUser rejects self-targeting: an admin may never edit or delete their
// own account through the user-management routes.
func TargetUser(caller Caller, targetUserID uint) Decision {
	if caller.ID == targetUserID {
		return deny("You cannot modify your own account through this page.")
	}

	return allow()
}
