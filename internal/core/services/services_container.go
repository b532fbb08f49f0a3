package services

import (
	portsrepo "github.com/acculab/vpledger/internal/core/ports/repositories"
	portssvc "github.com/acculab/vpledger/internal/core/ports/services"
	"github.com/acculab/vpledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Float = NewFloatService(repos.FloatRepo, cfg.DisburseMaxRetries, cfg.DisburseRetryBackoff)
	container.Disbursement = NewDisbursementService(repos.DisbursementRepo, repos.FloatRepo, cfg.DisburseMaxRetries, cfg.DisburseRetryBackoff)
	container.Statement = NewStatementService(repos.FloatRepo, repos.DisbursementRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)

	return container
}
