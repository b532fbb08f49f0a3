package repositories

// RepositoryProvider bundles all repositories for dependency injection into
// the service container.
type RepositoryProvider struct {
	FloatRepo        FloatRepositoryFacade
	DisbursementRepo DisbursementRepositoryFacade
	SettingsRepo     SettingsRepositoryFacade
}
