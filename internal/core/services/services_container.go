package services

import (
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Export = NewExportService(container.Expense)
	container.Session = NewSessionService(container.Expense, cfg.DrawerVelocityThreshold)

	return container
}
