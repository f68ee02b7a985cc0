package testcontainers

// Postgres constants
const (
	PostgresContainerName = "postgres"
	PostgresPort          = "5432"

	// Overrides the default image, e.g. to pin the production version in CI.
	PostgresImageNameKey = "POSTGRES_IMAGE_NAME"
)

// Labels put on every docker resource the suites create.
const (
	AppLabel     = "app"
	AppName      = "paybridge"
	ProjectLabel = "project"
)
