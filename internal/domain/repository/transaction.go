package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This lets the use case layer group operations atomically without depending
// on a specific DB driver like GORM.
//
// The only multi-step operation that runs inside a transaction is
// registration's find-then-create; update and delete flows deliberately stay
// outside (the check-then-mutate race window is accepted rather than locked).
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repositories obtained from the factory share the same
	// transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// Users returns a UserRepository bound to the current transaction.
	Users() UserRepository
}
