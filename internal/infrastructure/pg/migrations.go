package pg

import (
	"context"
)

const createEstimatesTable = `
CREATE TABLE IF NOT EXISTS estimates (
	id            SERIAL PRIMARY KEY,
	file_count    INTEGER NOT NULL,
	total_bytes   BIGINT NOT NULL,
	byte_cost     BIGINT NOT NULL,
	fee           DOUBLE PRECISION NOT NULL,
	arweave       DOUBLE PRECISION NOT NULL,
	solana        DOUBLE PRECISION NOT NULL,
	arweave_price DOUBLE PRECISION NOT NULL,
	solana_price  DOUBLE PRECISION NOT NULL,
	exchange_rate DOUBLE PRECISION NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создаёт таблицу estimates, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createEstimatesTable)
	return err
}
