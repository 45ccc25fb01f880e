package postgres

import (
	"context"
	"fmt"
	"strings"
)

// activityTables must exist once migrations have run.
var activityTables = []string{"gifts", "savings_goals", "badges", "social_feed"}

// HealthCheck implements ports.HealthChecker for PostgreSQL. It reports
// unhealthy until the activity store schema is in place.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that every activity table exists.
func (h *HealthCheck) Ping(ctx context.Context) error {
	query := `SELECT t FROM unnest($1::text[]) AS t WHERE to_regclass(t) IS NULL`

	rows, err := h.pool.Query(ctx, query, activityTables)
	if err != nil {
		return fmt.Errorf("check schema: %w", err)
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return fmt.Errorf("scan missing table: %w", err)
		}
		missing = append(missing, t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("check schema: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("activity store not migrated, missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
