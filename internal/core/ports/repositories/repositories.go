package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container.
type RepositoryProvider struct {
	UserRepo   UserRepositoryFacade
	MovieRepo  MovieRepository
	PersonRepo PersonRepository
}
