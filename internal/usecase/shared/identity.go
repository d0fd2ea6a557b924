package shared

import "slices"

// Identity is the authenticated caller, scoped to one project.
type Identity struct {
	UserID    string
	ProjectID string
	Roles     []string
	Admin     bool
}

func NewIdentity(userID, projectID string, roles []string, adminRole string) Identity {
	return Identity{
		UserID:    userID,
		ProjectID: projectID,
		Roles:     roles,
		Admin:     adminRole != "" && slices.Contains(roles, adminRole),
	}
}

func (i Identity) IsAdmin() bool {
	return i.Admin
}

// CanAccessProject reports whether the caller may see resources owned by projectID.
func (i Identity) CanAccessProject(projectID string) bool {
	return i.Admin || i.ProjectID == projectID
}
