package usecase

// Export unexported functions for testing
var (
	BootstrapRepositoryForTest = (*UseCase).bootstrapRepository
	AuthenticatedURLForTest    = (*UseCase).authenticatedURL
)
