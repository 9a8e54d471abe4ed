package domain

// CanAccess is the ownership predicate applied to every ownable resource
// (farms, crops, bookings). The actor may touch a resource when they own it
// or when they are an admin. Pure comparison over already-loaded data;
// callers load the resource first and map a false result to ErrForbidden.
func CanAccess(actor *Identity, ownerID string) bool {
	if actor == nil {
		return false
	}
	return actor.Role == RoleAdmin || actor.ID == ownerID
}
