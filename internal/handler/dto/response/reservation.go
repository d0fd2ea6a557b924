package response

import (
	"time"

	"flavor-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	FlavorID      uuid.UUID `json:"flavor_id"`
	UserID        string    `json:"user_id"`
	ProjectID     string    `json:"project_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	InstanceCount int32     `json:"instance_count"`
	TotalHours    int32     `json:"total_hours"`
	Status        string    `json:"status"`
	LeaseID       *string   `json:"lease_id"`
	ComputeFlavor *string   `json:"compute_flavor"`
	StatusReason  *string   `json:"status_reason"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	res := &ReservationResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		res[i] = FromReservationView(v)
	}
	return res
}

type AbsoluteLimits struct {
	MaxHours              int `json:"maxHours"`
	MaxReservations       int `json:"maxReservations"`
	TotalHoursUsed        int `json:"totalHoursUsed"`
	TotalReservationsUsed int `json:"totalReservationsUsed"`
}

type LimitsResponse struct {
	Absolute AbsoluteLimits `json:"absolute"`
}

func FromLimitsView(v *queries.LimitsView) *LimitsResponse {
	res := &LimitsResponse{}
	_ = copier.Copy(&res.Absolute, v)
	return res
}
