package domain

// Role is the actor role resolved by the external authorization layer.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleApprover   Role = "approver"
	RoleSubmitter  Role = "submitter"
	RoleViewer     Role = "viewer"
)

// Permission is a single capability.
type Permission string

const (
	PermViewJournal     Permission = "viewJournal"
	PermSubmitJournal   Permission = "submitJournal"
	PermRegisterJournal Permission = "registerJournal"
	PermApproveJournal  Permission = "approveJournal"
	PermDeleteJournal   Permission = "deleteJournal"
	PermManageContacts  Permission = "manageContacts"
	PermExportReport    Permission = "exportReport"
	PermSyncHub         Permission = "syncHub"
)

func permissionSet(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// rolePermissions is a flat lookup table. Each role lists its capabilities
// explicitly; nothing is inherited.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: permissionSet(
		PermViewJournal, PermSubmitJournal, PermRegisterJournal, PermApproveJournal,
		PermDeleteJournal, PermManageContacts, PermExportReport, PermSyncHub,
	),
	RoleAccountant: permissionSet(
		PermViewJournal, PermSubmitJournal, PermRegisterJournal, PermApproveJournal,
		PermDeleteJournal, PermManageContacts, PermExportReport, PermSyncHub,
	),
	RoleApprover: permissionSet(
		PermViewJournal, PermApproveJournal, PermExportReport,
	),
	RoleSubmitter: permissionSet(
		PermViewJournal, PermSubmitJournal, PermDeleteJournal, PermManageContacts,
	),
	RoleViewer: permissionSet(
		PermViewJournal, PermExportReport,
	),
}

// ParseRole validates a role claim.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := rolePermissions[r]
	return r, ok
}

// Has reports whether the role grants p. Unknown roles grant nothing.
func (r Role) Has(p Permission) bool {
	_, ok := rolePermissions[r][p]
	return ok
}

// CanSelfApprove reports whether the role may approve journals it submitted.
func CanSelfApprove(r Role) bool {
	return r.Has(PermRegisterJournal)
}

// Actor is the authenticated caller.
type Actor struct {
	UserID string
	Role   Role
}

// Can is shorthand for a.Role.Has(p).
func (a Actor) Can(p Permission) bool {
	return a.Role.Has(p)
}

// CanApprove applies the approval rule: approving someone else's journal
// needs approveJournal; approving your own needs registerJournal.
func (a Actor) CanApprove(j Journal) bool {
	if j.SubmittedByUserID == a.UserID {
		return CanSelfApprove(a.Role)
	}
	return a.Can(PermApproveJournal)
}
