package services

import (
	"context"
	"fmt"

	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
)

// withUnitOfWork runs fn inside a unit of work. The unit is committed when fn
// succeeds and rolled back on any error, including a failed commit.
func withUnitOfWork(ctx context.Context, factory portsrepo.UnitOfWorkFactory, fn func(uow portsrepo.UnitOfWork) error) (err error) {
	uow, err := factory.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}
		// Rollback must run even when the caller's context is already cancelled.
		_ = uow.Rollback(context.WithoutCancel(ctx))
	}()

	if err = fn(uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
