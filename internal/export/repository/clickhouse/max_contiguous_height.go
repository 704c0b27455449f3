package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MaxContiguousHeight returns the highest height h such that every height in
// [0, h] has a row for the network, or -1 when the table holds no such run.
func (r *Repository) MaxContiguousHeight(ctx context.Context, network string) (int32, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_contiguous_height", err, start)
	}()

	const query = `WITH data AS (
    SELECT
        height,
        row_number() OVER (ORDER BY height) - 1 AS rn
    FROM chain_blocks
    WHERE network = ?
    GROUP BY height
)
SELECT maxOrNull(height) AS max_contiguous_height
FROM data
WHERE rn = height;`

	rows, err := r.conn.Query(ctx, query, network)
	if err != nil {
		return 0, fmt.Errorf("query max contiguous height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return -1, nil
	}

	var height *int32
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max contiguous height: %w", err)
	}
	if height == nil {
		return -1, nil
	}

	return *height, nil
}
