package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// A nil Tx means "use your own connection"; repos fall back accordingly.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
