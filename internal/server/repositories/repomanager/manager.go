// Package repomanager owns the shared database connection pool and hands out
// typed repositories backed by it.
package repomanager

import (
	"database/sql"

	"github.com/dmitrijs2005/docport/internal/server/repositories/documents"
	"github.com/dmitrijs2005/docport/internal/server/repositories/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Documents() documents.Repository
	Close() error
}
