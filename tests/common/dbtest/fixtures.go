//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestFlavor inserts an active public flavor with the given capacity.
func CreateTestFlavor(t *testing.T, db DBLike, name string, slots int) uuid.UUID {
	t.Helper()
	return insertFlavor(t, db, name, slots, true)
}

// CreatePrivateFlavor inserts an active flavor only granted projects can see.
func CreatePrivateFlavor(t *testing.T, db DBLike, name string, slots int) uuid.UUID {
	t.Helper()
	return insertFlavor(t, db, name, slots, false)
}

func insertFlavor(t *testing.T, db DBLike, name string, slots int, public bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO flavors (id, name, vcpu, memory_mb, disk_gb, properties, is_public, max_length_hours, slots)
		VALUES ($1, $2, 48, 131072, 400, 'node_type=compute_haswell', $3, 168, $4)`,
		id, name, public, slots)
	require.NoError(t, err)
	return id
}

func GrantFlavor(t *testing.T, db DBLike, flavorID uuid.UUID, projectID string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO flavor_projects (id, flavor_id, project_id) VALUES ($1, $2, $3)",
		id, flavorID, projectID)
	require.NoError(t, err)
	return id
}

// CreateTestReservation inserts a reservation directly, bypassing admission.
func CreateTestReservation(t *testing.T, db DBLike, flavorID uuid.UUID, projectID string, start, end time.Time, status string, leaseID *string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, flavor_id, user_id, project_id, start_at, end_at, instance_count, status, lease_id)
		VALUES ($1, $2, 'fixture-user', $3, $4, $5, 1, $6, $7)`,
		id, flavorID, projectID, start, end, status, leaseID)
	require.NoError(t, err)
	return id
}

func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountLeaseJobs(t *testing.T, db DBLike, reservationID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM lease_jobs WHERE reservation_id = $1 AND status = $2",
		reservationID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
