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

	"tiffintime-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password of every fixture account.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
	hashErr     error
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		defaultHash, hashErr = password.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
	})
	require.NoError(t, hashErr)
	return defaultHash
}

func CreateTestStudent(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (id, name, email, phone_number, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		id, "Student "+strings.Split(email, "@")[0], strings.ToLower(email), "01700000000", passwordHash(t),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestVendor(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	err := db.QueryRow(context.Background(), `
		INSERT INTO vendors (id, name, email, phone_number, password_hash, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		id, name, strings.ToLower(email), "01800000000", passwordHash(t), "Home-style meals",
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestMenuItem(t *testing.T, db DBLike, vendorID uuid.UUID, name string, price float64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO menu_items (id, vendor_id, name, category, price, prep_time)
		VALUES ($1, $2, $3, 'Rice', $4, 15)`,
		id, vendorID, name, price)
	require.NoError(t, err)
	return id
}

// AddWeeklyAvailability lists the item on day, 0 being Sunday.
func AddWeeklyAvailability(t *testing.T, db DBLike, itemID uuid.UUID, day time.Weekday) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO weekly_availability (menu_item_id, day_of_week) VALUES ($1, $2)
		ON CONFLICT (menu_item_id, day_of_week) DO NOTHING`,
		itemID, int16(day))
	require.NoError(t, err)
}

func CreateTestSpecial(t *testing.T, db DBLike, itemID uuid.UUID, date time.Time, specialPrice *float64, quantity *int32) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO date_specials (id, menu_item_id, date, quantity, special_price)
		VALUES ($1, $2, $3, $4, $5)`,
		id, itemID, date.Format("2006-01-02"), quantity, specialPrice)
	require.NoError(t, err)
	return id
}

func CreateTestOrder(t *testing.T, db DBLike, userID, vendorID, itemID uuid.UUID, quantity int32, unitPrice float64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO orders (order_id, user_id, vendor_id, menu_item_id, quantity, unit_price, total_price, pickup)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'Main gate')`,
		id, userID, vendorID, itemID, quantity, unitPrice, float64(quantity)*unitPrice)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
