package converter

import (
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/domain/schedule"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:            r.ID(),
		FlavorID:      r.FlavorID(),
		UserID:        r.UserID(),
		ProjectID:     r.ProjectID(),
		StartAt:       pgconv.TimeToPgtype(r.Start()),
		EndAt:         pgconv.TimeToPgtype(r.End()),
		InstanceCount: int32(r.InstanceCount()),
		Status:        r.Status().String(),
		LeaseID:       pgconv.StringPtrToPgtype(r.LeaseID()),
		ComputeFlavor: pgconv.StringPtrToPgtype(r.ComputeFlavor()),
		StatusReason:  pgconv.StringPtrToPgtype(r.StatusReason()),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationToUpdateParams(r *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ID:            r.ID(),
		EndAt:         pgconv.TimeToPgtype(r.End()),
		Status:        r.Status().String(),
		LeaseID:       pgconv.StringPtrToPgtype(r.LeaseID()),
		ComputeFlavor: pgconv.StringPtrToPgtype(r.ComputeFlavor()),
		StatusReason:  pgconv.StringPtrToPgtype(r.StatusReason()),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	return reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:            row.ID,
		FlavorID:      row.FlavorID,
		Owner:         reservation.Owner{UserID: row.UserID, ProjectID: row.ProjectID},
		Window:        reservation.NewWindow(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt)),
		InstanceCount: int(row.InstanceCount),
		Status:        reservation.Status(row.Status),
		LeaseID:       pgconv.StringPtrFromPgtype(row.LeaseID),
		ComputeFlavor: pgconv.StringPtrFromPgtype(row.ComputeFlavor),
		StatusReason:  pgconv.StringPtrFromPgtype(row.StatusReason),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func StatusStrings(statuses []reservation.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func OccupancyFromRows(rows []sqlc.ListOverlappingReservationsRow) []schedule.Occupancy {
	out := make([]schedule.Occupancy, 0, len(rows))
	for _, row := range rows {
		out = append(out, schedule.Occupancy{
			Start: pgconv.TimeFromPgtype(row.StartAt),
			End:   pgconv.TimeFromPgtype(row.EndAt),
			Units: int(row.InstanceCount),
		})
	}
	return out
}
