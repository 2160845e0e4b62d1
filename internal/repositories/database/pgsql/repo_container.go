package pgsql

import (
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		EventRepo:   newPgxEventRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
