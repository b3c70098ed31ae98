package models

import "time"

// RelationshipRole classifies a special relationship contact
type RelationshipRole string

const (
	RolePowerOfAttorney RelationshipRole = "power_of_attorney"
	RoleAccountant      RelationshipRole = "accountant"
	RoleSolicitor       RelationshipRole = "solicitor"
	RoleDoctor          RelationshipRole = "doctor"
	RoleFamily          RelationshipRole = "family"
	RoleOther           RelationshipRole = "other"
)

// Rank orders roles for display, authority roles first.
func (r RelationshipRole) Rank() int {
	switch r {
	case RolePowerOfAttorney:
		return 0
	case RoleAccountant:
		return 1
	case RoleSolicitor:
		return 2
	case RoleDoctor:
		return 3
	case RoleFamily:
		return 4
	case RoleOther:
		return 5
	default:
		return 6
	}
}

// Label returns the human-readable role name.
func (r RelationshipRole) Label() string {
	switch r {
	case RolePowerOfAttorney:
		return "Power of Attorney"
	case RoleAccountant:
		return "Accountant"
	case RoleSolicitor:
		return "Solicitor"
	case RoleDoctor:
		return "Doctor"
	case RoleFamily:
		return "Family"
	case RoleOther:
		return "Other"
	default:
		return string(r)
	}
}

// ValidRole reports whether the given role is one the platform accepts.
func ValidRole(r RelationshipRole) bool {
	switch r {
	case RolePowerOfAttorney, RoleAccountant, RoleSolicitor, RoleDoctor, RoleFamily, RoleOther:
		return true
	}
	return false
}

// SpecialRelationship is a professional or personal contact attached to a
// client group: the group's accountant, solicitor, POA holder and so on.
type SpecialRelationship struct {
	ID            int64            `json:"id"`
	ClientGroupID int64            `json:"client_group"`
	ContactName   string           `json:"contact_name"`
	Role          RelationshipRole `json:"role"`
	Firm          string           `json:"firm,omitempty"`
	Email         string           `json:"email,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SpecialRelationshipCreate is the payload for attaching a relationship
// to a client group.
type SpecialRelationshipCreate struct {
	ClientGroupID int64            `json:"client_group"`
	ContactName   string           `json:"contact_name"`
	Role          RelationshipRole `json:"role"`
	Firm          string           `json:"firm,omitempty"`
	Email         string           `json:"email,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}
