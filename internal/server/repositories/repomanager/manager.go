// Package repomanager wires repository constructors to a database handle,
// so services can bind the same repositories to *sql.DB or to a *sql.Tx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sanmitsu/internal/dbx"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/backups"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/entries"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Entries(db dbx.DBTX) entries.Repository
	Backups(db dbx.DBTX) backups.Repository
}
