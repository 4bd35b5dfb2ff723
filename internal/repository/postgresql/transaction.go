package postgresql

import (
	"context"

	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
