package services

// ServiceContainer holds instances of all the application services.
// It is used by the handlers and the CLI commands.
type ServiceContainer struct {
	Journal    JournalSvcFacade
	Generators GeneratorSvcFacade
	Accounts   AccountSvcFacade
}
