package auth

import "salesmgt/internal/models"

// Actions gated by the policy. Every protected route names one of these
// instead of hand-rolling its own role check.
const (
	ActionRead   = "read"   // list/detail views, dashboard, search
	ActionWrite  = "write"  // create/update of records
	ActionDelete = "delete" // destructive removal
	ActionExport = "export" // spreadsheet downloads
)

// Can is the single capability check: given a profile role code and an
// action, decide whether the actor may proceed. Operatives read, executives
// also write, admins do everything.
func Can(role string, action string) bool {
	switch action {
	case ActionRead:
		return role == models.RoleOperative ||
			role == models.RoleExecutive ||
			role == models.RoleAdmin
	case ActionWrite:
		return role == models.RoleExecutive || role == models.RoleAdmin
	case ActionDelete, ActionExport:
		return role == models.RoleAdmin
	}
	return false
}
