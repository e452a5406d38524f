package services

import (
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized dependencies
func NewContainer(repos *portsrepo.RepositoryProvider, chart domain.ChartMapping) *portssvc.ServiceContainer {
	resolver := NewIdempotencyResolver(repos.JournalRepo)
	writer := NewEntryWriter(repos.JournalRepo, resolver)

	return &portssvc.ServiceContainer{
		Journal:    NewJournalService(repos.JournalRepo, resolver, writer),
		Generators: NewGeneratorService(resolver, writer, repos.InvoiceRepo, repos.JobRepo, chart),
		Accounts:   NewAccountService(repos.AccountRepo, repos.Transactions),
	}
}
