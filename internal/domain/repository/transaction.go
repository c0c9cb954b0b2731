package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single
// transaction. Use cases receive it from TransactionManager.Execute.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
}

// TransactionManager runs a unit of work inside one database transaction.
// If fn returns an error the transaction is rolled back, otherwise committed.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
