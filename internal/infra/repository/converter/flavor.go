package converter

import (
	"encoding/json"

	"flavor-reservation/internal/domain/flavor"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/pkg/pgconv"
)

func FlavorToCreateParams(f *flavor.Flavor) (sqlc.CreateFlavorParams, error) {
	extra, err := json.Marshal(f.ExtraSpecs())
	if err != nil {
		return sqlc.CreateFlavorParams{}, errs.Wrap(err, "failed to encode extra_specs")
	}
	return sqlc.CreateFlavorParams{
		ID:               f.ID(),
		Name:             f.Name(),
		Description:      f.Description(),
		Vcpu:             int32(f.VCPU()),
		MemoryMb:         int32(f.MemoryMB()),
		DiskGb:           int32(f.DiskGB()),
		EphemeralGb:      int32(f.EphemeralGB()),
		Properties:       f.Properties(),
		ExtraSpecs:       extra,
		Category:         pgconv.StringPtrToPgtype(f.Category()),
		AvailabilityZone: pgconv.StringPtrToPgtype(f.AvailabilityZone()),
		Active:           f.Active(),
		IsPublic:         f.IsPublic(),
		MaxLengthHours:   int32(f.MaxLengthHours()),
		Slots:            int32(f.Slots()),
		StartAt:          pgconv.TimePtrToPgtype(f.Start()),
		EndAt:            pgconv.TimePtrToPgtype(f.End()),
		CreatedAt:        pgconv.TimeToPgtype(f.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(f.UpdatedAt()),
	}, nil
}

func FlavorToUpdateParams(f *flavor.Flavor) (sqlc.UpdateFlavorParams, error) {
	p, err := FlavorToCreateParams(f)
	if err != nil {
		return sqlc.UpdateFlavorParams{}, err
	}
	return sqlc.UpdateFlavorParams{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Vcpu:             p.Vcpu,
		MemoryMb:         p.MemoryMb,
		DiskGb:           p.DiskGb,
		EphemeralGb:      p.EphemeralGb,
		Properties:       p.Properties,
		ExtraSpecs:       p.ExtraSpecs,
		Category:         p.Category,
		AvailabilityZone: p.AvailabilityZone,
		Active:           p.Active,
		IsPublic:         p.IsPublic,
		MaxLengthHours:   p.MaxLengthHours,
		Slots:            p.Slots,
		StartAt:          p.StartAt,
		EndAt:            p.EndAt,
		UpdatedAt:        p.UpdatedAt,
	}, nil
}

// FlavorSpecFromRow decodes the row's attributes; malformed extra_specs decode as empty.
func FlavorSpecFromRow(row sqlc.Flavors) flavor.Spec {
	extra := map[string]string{}
	if len(row.ExtraSpecs) > 0 {
		_ = json.Unmarshal(row.ExtraSpecs, &extra)
	}
	return flavor.Spec{
		Name:             row.Name,
		Description:      row.Description,
		VCPU:             int(row.Vcpu),
		MemoryMB:         int(row.MemoryMb),
		DiskGB:           int(row.DiskGb),
		EphemeralGB:      int(row.EphemeralGb),
		Properties:       row.Properties,
		ExtraSpecs:       extra,
		Category:         pgconv.StringPtrFromPgtype(row.Category),
		AvailabilityZone: pgconv.StringPtrFromPgtype(row.AvailabilityZone),
		Active:           row.Active,
		IsPublic:         row.IsPublic,
		MaxLengthHours:   int(row.MaxLengthHours),
		Slots:            int(row.Slots),
		Start:            pgconv.TimePtrFromPgtype(row.StartAt),
		End:              pgconv.TimePtrFromPgtype(row.EndAt),
	}
}

func FlavorFromRow(row sqlc.Flavors) *flavor.Flavor {
	return flavor.ReconstructFlavor(row.ID, FlavorSpecFromRow(row),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func GrantFromRow(row sqlc.FlavorProjects) *flavor.Grant {
	return flavor.ReconstructGrant(row.ID, row.FlavorID, row.ProjectID, pgconv.TimeFromPgtype(row.CreatedAt))
}
