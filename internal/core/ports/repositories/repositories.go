package repositories

// RepositoryProvider bundles the repositories a storage backend offers.
// Both the pgsql and sqlite adapters populate it, so the rest of the
// application never knows which backend is wired in.
type RepositoryProvider struct {
	ExpenseRepo ExpenseRepositoryFacade
}
