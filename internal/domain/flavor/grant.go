package flavor

import (
	"strings"
	"time"

	"flavor-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidProjectID = errs.New("project_id is required")

// Grant makes a private flavor visible and reservable for one project.
type Grant struct {
	id        uuid.UUID
	flavorID  uuid.UUID
	projectID string
	createdAt time.Time
}

func NewGrant(flavorID uuid.UUID, projectID string, now time.Time) (*Grant, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" || len(projectID) > 64 {
		return nil, ErrInvalidProjectID
	}
	return &Grant{
		id:        uuid.New(),
		flavorID:  flavorID,
		projectID: projectID,
		createdAt: now,
	}, nil
}

func ReconstructGrant(id, flavorID uuid.UUID, projectID string, createdAt time.Time) *Grant {
	return &Grant{id: id, flavorID: flavorID, projectID: projectID, createdAt: createdAt}
}

func (g *Grant) ID() uuid.UUID        { return g.id }
func (g *Grant) FlavorID() uuid.UUID  { return g.flavorID }
func (g *Grant) ProjectID() string    { return g.projectID }
func (g *Grant) CreatedAt() time.Time { return g.createdAt }
