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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference catalog seeded into every test database. IDs are fixed because
// ResetDB restarts identities.
const (
	StandardTypeID int64 = 1
	FamilyTypeID   int64 = 2

	StandardRoomID    int64 = 1
	FamilyRoomID      int64 = 2
	MaintenanceRoomID int64 = 3

	ParkingExtraID   int64 = 1
	BreakfastExtraID int64 = 2
	TowelsExtraID    int64 = 3
)

// DBLike is satisfied by a pool or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestRoomType(t *testing.T, db DBLike, name, basePrice string, maxAdults, maxChildren, freeAge int, childRate string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO room_types (name, base_price, max_adults, max_children, child_age_free_limit, child_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		name, basePrice, maxAdults, maxChildren, freeAge, childRate,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoom(t *testing.T, db DBLike, typeID int64, name, customPrice, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO rooms (type_id, name, custom_price, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		typeID, name, customPrice, status,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestPricingRule inserts a rule; typeID 0 makes it global.
func CreateTestPricingRule(t *testing.T, db DBLike, typeID int64, start, end, amount, operation string, priority int) int64 {
	t.Helper()

	var rType *int64
	if typeID != 0 {
		rType = &typeID
	}
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO pricing_rules (type_id, start_date, end_date, amount, operation, priority)
		VALUES ($1, $2::date, $3::date, $4, $5, $6)
		RETURNING id`,
		rType, start, end, amount, operation, priority,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestBooking inserts a booking directly, bypassing availability checks.
func CreateTestBooking(t *testing.T, db DBLike, roomID int64, checkIn, checkOut, status string, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (room_id, check_in, check_out, status, guests, total, created_at)
		VALUES ($1, $2::date, $3::date, $4, 2, 200, $5)
		RETURNING id`,
		roomID, checkIn, checkOut, status, createdAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func BookingStatus(t *testing.T, db DBLike, id int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

// SeedReferenceData inserts the catalog every test relies on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO room_types (name, base_price, max_adults, max_children, child_age_free_limit, child_rate) VALUES
		    ('Standard', 100.00, 2, 2, 5, 20.00),
		    ('Family',   160.00, 4, 3, 3, 15.00);

		INSERT INTO rooms (type_id, name, custom_price, status) VALUES
		    (1, '101', 0,      'available'),
		    (2, '201', 150.00, 'available'),
		    (1, '102', 0,      'maintenance');

		INSERT INTO extras (name, price, pricing_type, control_type) VALUES
		    ('Parking',   12.00, 'per_night',  'checkbox'),
		    ('Breakfast', 15.00, 'per_person', 'checkbox'),
		    ('Towels',     5.00, 'fixed',      'quantity');
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
