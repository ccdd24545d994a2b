package services

import (
	"gorm.io/gorm"

	"github.com/grapplelog/grapplelog-backend/internal/platform/dbctx"
)

// runInSavepoint executes fn so that a failed statement does not poison
// the caller's transaction. Inside an open transaction GORM issues a
// SAVEPOINT and rolls back to it on error, which is what lets a resolver
// survive a unique violation and re-read the winner's row; with no open
// transaction it is an ordinary short transaction.
func runInSavepoint(dbc dbctx.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	run := dbc.Tx
	if run == nil {
		run = db
	}
	return run.WithContext(dbc.Ctx).Transaction(fn)
}
