package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/albumkeeper/internal/dbx"
	"github.com/dmitrijs2005/albumkeeper/internal/server/repositories/albums"
	"github.com/dmitrijs2005/albumkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/albumkeeper/internal/server/repositories/uploadslots"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Albums(db dbx.DBTX) albums.Repository
	Records(db dbx.DBTX) records.Repository
	UploadSlots(db dbx.DBTX) uploadslots.Repository
}
