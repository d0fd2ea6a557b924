package commands

import (
	"context"
	"fmt"
	"log/slog"

	"flavor-reservation/internal/domain/flavor"
	reqdto "flavor-reservation/internal/handler/dto/request"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/pkg/clock"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/queries"
	"flavor-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// FlavorInUseError rejects deleting a flavor that reservations still reference.
type FlavorInUseError struct {
	FlavorID uuid.UUID
}

func (e *FlavorInUseError) Error() string {
	return fmt.Sprintf("Flavor %s is in use", e.FlavorID)
}

func (e *FlavorInUseError) Is(target error) bool {
	return target == errs.ErrFlavorInUse
}

type FlavorCommands interface {
	Create(ctx context.Context, req reqdto.CreateFlavorRequest) (*queries.FlavorView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateFlavorRequest) (*queries.FlavorView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Grant(ctx context.Context, flavorID uuid.UUID, projectID string) (*queries.FlavorProjectView, error)
	Revoke(ctx context.Context, id uuid.UUID) error
}

type flavorUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFlavorUseCase(uow shared.UnitOfWork, clk clock.Clock) FlavorCommands {
	return &flavorUseCaseImpl{uow: uow, clock: clk}
}

func (uc *flavorUseCaseImpl) Create(ctx context.Context, req reqdto.CreateFlavorRequest) (*queries.FlavorView, error) {
	f, err := flavor.NewFlavor(req.ToSpec(), uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Flavors().Create(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "flavor created", slog.String("flavor_id", f.ID().String()), slog.String("name", f.Name()))
	return queries.NewFlavorView(f), nil
}

// Update applies a partial change. Shape and slot changes are refused while reservations exist.
func (uc *flavorUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateFlavorRequest) (*queries.FlavorView, error) {
	var updated *flavor.Flavor
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locks().LockFlavor(ctx, id); err != nil {
			return err
		}
		f, err := findFlavor(ctx, tx, id)
		if err != nil {
			return err
		}
		refs, err := tx.Reservations().CountByFlavor(ctx, id)
		if err != nil {
			return err
		}
		if err := f.Apply(req.ToPatch(), refs > 0, uc.clock.Now()); err != nil {
			if errs.Is(err, flavor.ErrCapacityLocked) {
				return err
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Flavors().Update(ctx, f); err != nil {
			return err
		}
		updated = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewFlavorView(updated), nil
}

func (uc *flavorUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locks().LockFlavor(ctx, id); err != nil {
			return err
		}
		refs, err := tx.Reservations().CountByFlavor(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return &FlavorInUseError{FlavorID: id}
		}
		if err := tx.Flavors().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrFlavorNotFound
			}
			return err
		}
		slog.InfoContext(ctx, "flavor deleted", slog.String("flavor_id", id.String()))
		return nil
	})
}

func (uc *flavorUseCaseImpl) Grant(ctx context.Context, flavorID uuid.UUID, projectID string) (*queries.FlavorProjectView, error) {
	g, err := flavor.NewGrant(flavorID, projectID, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := findFlavor(ctx, tx, flavorID); err != nil {
			return err
		}
		if err := tx.FlavorProjects().Create(ctx, g); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrFlavorProjectExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewFlavorProjectView(g), nil
}

func (uc *flavorUseCaseImpl) Revoke(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.FlavorProjects().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrFlavorProjectMissing
			}
			return err
		}
		return nil
	})
}
