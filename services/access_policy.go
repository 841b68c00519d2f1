package services

import "github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"

// IsAdmin reports whether the requester carries the admin role.
func IsAdmin(role string) bool {
	return role == models.RoleAdmin
}

// CanAccess is the single ownership rule of the API: admins may see and
// mutate anything, everyone else only their own resources.
func CanAccess(requesterRole, requesterID, resourceOwnerID string) bool {
	return IsAdmin(requesterRole) || requesterID == resourceOwnerID
}

// ResolveTargetUser scopes a query to its effective subject. An admin may aim
// at an arbitrary target user; for non-admins any requested target is ignored
// and the query is scoped to the requester.
func ResolveTargetUser(requesterRole, requesterID, targetUserID string) string {
	if IsAdmin(requesterRole) && targetUserID != "" {
		return targetUserID
	}
	return requesterID
}
