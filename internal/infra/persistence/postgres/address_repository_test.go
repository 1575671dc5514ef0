package postgres

import (
	"context"
	"strings"
	"testing"

	"addressable/internal/domain/entity"
	"addressable/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordedStatement is one statement built by gorm in dry run mode.
type recordedStatement struct {
	SQL  string
	Vars []any
}

// statementRecorder captures built statements and reports rowsAffected for every
// one of them, standing in for the database result.
type statementRecorder struct {
	statements   []recordedStatement
	rowsAffected int64
}

func (r *statementRecorder) record(tx *gorm.DB) {
	r.statements = append(r.statements, recordedStatement{
		SQL:  tx.Statement.SQL.String(),
		Vars: append([]any(nil), tx.Statement.Vars...),
	})
	tx.RowsAffected = r.rowsAffected
}

func (r *statementRecorder) last(t *testing.T) recordedStatement {
	t.Helper()
	require.NotEmpty(t, r.statements)

	return r.statements[len(r.statements)-1]
}

type addressRepositoryFixtures struct {
	repo     repository.AddressRepository
	recorder *statementRecorder
}

// createTestAddressRepository builds the repository on a dry run session, so no
// database is needed and every statement is recorded instead of executed.
func createTestAddressRepository(t *testing.T) addressRepositoryFixtures {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=addressable dbname=addressable sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	recorder := &statementRecorder{}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", recorder.record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:record_update", recorder.record))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:record_delete", recorder.record))

	return addressRepositoryFixtures{
		repo:     NewAddressRepository(db),
		recorder: recorder,
	}
}

func assertOrderedFragments(t *testing.T, sql string, fragments ...string) {
	t.Helper()

	offset := 0
	for _, fragment := range fragments {
		idx := strings.Index(sql[offset:], fragment)
		if !assert.GreaterOrEqual(t, idx, 0, "%q not found in order in %s", fragment, sql) {
			return
		}
		offset += idx + len(fragment)
	}
}

func TestAddressRepository_FindAddressesByOwner(t *testing.T) {
	ctx := context.Background()
	owner := entity.NewOwnerRef(entity.OwnerTypeUser, uuid.New())

	t.Run("live rows oldest first", func(t *testing.T) {
		fx := createTestAddressRepository(t)

		_, err := fx.repo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{})
		require.NoError(t, err)

		stmt := fx.recorder.last(t)
		assert.True(t, strings.HasPrefix(stmt.SQL, `SELECT * FROM "addresses"`))
		assert.Contains(t, stmt.SQL, "owner_type = $1 AND owner_id = $2")
		assert.Contains(t, stmt.SQL, `"addresses"."deleted_at" IS NULL`)
		assert.Contains(t, stmt.SQL, "ORDER BY created_at ASC,id ASC")
		assert.Equal(t, []any{"user", owner.ID}, stmt.Vars)
	})

	t.Run("filters and deleted rows", func(t *testing.T) {
		fx := createTestAddressRepository(t)

		_, err := fx.repo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{
			Flag:           entity.FlagBilling,
			CountryCode:    "DE",
			IncludeDeleted: true,
		})
		require.NoError(t, err)

		stmt := fx.recorder.last(t)
		assert.Contains(t, stmt.SQL, `"is_billing" = `)
		assert.Contains(t, stmt.SQL, "country_code = ")
		assert.NotContains(t, stmt.SQL, "deleted_at")
		assert.ElementsMatch(t, []any{"user", owner.ID, true, "DE"}, stmt.Vars)
	})
}

func TestAddressRepository_FindMatchingAddress(t *testing.T) {
	ctx := context.Background()
	owner := entity.NewOwnerRef(entity.OwnerTypeMerchant, uuid.New())

	t.Run("matches every attribute on live rows", func(t *testing.T) {
		fx := createTestAddressRepository(t)

		_, err := fx.repo.FindMatchingAddress(ctx, owner, map[string]any{
			"country_code": "US",
			"city":         "Springfield",
			"is_primary":   true,
		})
		require.NoError(t, err)

		stmt := fx.recorder.last(t)
		assertOrderedFragments(t, stmt.SQL,
			`"addresses"."city" = `,
			`"addresses"."country_code" = `,
			`"addresses"."is_primary" = `,
		)
		assert.Contains(t, stmt.SQL, "owner_type = ")
		assert.Contains(t, stmt.SQL, `"addresses"."deleted_at" IS NULL`)
		assert.Contains(t, stmt.SQL, "ORDER BY created_at ASC,id ASC LIMIT")
		assert.Subset(t, stmt.Vars, []any{"Springfield", "US", true, "merchant", owner.ID})
	})

	t.Run("rejects columns outside the allow list", func(t *testing.T) {
		fx := createTestAddressRepository(t)

		address, err := fx.repo.FindMatchingAddress(ctx, owner, map[string]any{"owner_id": uuid.New()})
		require.Error(t, err)
		assert.Nil(t, address)
		assert.Contains(t, err.Error(), `"owner_id"`)
		assert.Empty(t, fx.recorder.statements)
	})
}

func TestAddressRepository_FindFlaggedAddress(t *testing.T) {
	ctx := context.Background()
	owner := entity.NewOwnerRef(entity.OwnerTypeUser, uuid.New())

	tests := []struct {
		name      string
		direction entity.SortDirection
		orderBy   string
	}{
		{name: "desc", direction: entity.SortDesc, orderBy: `ORDER BY "is_billing" DESC,created_at ASC,id ASC LIMIT`},
		{name: "asc", direction: entity.SortAsc, orderBy: `ORDER BY "is_billing",created_at ASC,id ASC LIMIT`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAddressRepository(t)

			_, err := fx.repo.FindFlaggedAddress(ctx, owner, entity.FlagBilling, tt.direction)
			require.NoError(t, err)

			stmt := fx.recorder.last(t)
			assert.Contains(t, stmt.SQL, `"is_billing" = `)
			assert.Contains(t, stmt.SQL, `"addresses"."deleted_at" IS NULL`)
			assert.Contains(t, stmt.SQL, tt.orderBy)
		})
	}
}

func TestAddressRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	owner := entity.NewOwnerRef(entity.OwnerTypeUser, uuid.New())
	id := uuid.New()

	t.Run("one address scoped to the owner", func(t *testing.T) {
		fx := createTestAddressRepository(t)
		fx.recorder.rowsAffected = 1

		rows, err := fx.repo.SoftDeleteAddress(ctx, owner, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		stmt := fx.recorder.last(t)
		assert.True(t, strings.HasPrefix(stmt.SQL, `UPDATE "addresses" SET "deleted_at"=`))
		assert.Contains(t, stmt.SQL, "owner_type = ")
		assert.Contains(t, stmt.SQL, "id = ")
		assert.Contains(t, stmt.SQL, `"addresses"."deleted_at" IS NULL`)
		assert.Subset(t, stmt.Vars, []any{"user", owner.ID, id})
	})

	t.Run("foreign address affects nothing", func(t *testing.T) {
		fx := createTestAddressRepository(t)

		rows, err := fx.repo.SoftDeleteAddress(ctx, owner, id)
		require.NoError(t, err)
		assert.Zero(t, rows)
	})

	t.Run("flush", func(t *testing.T) {
		fx := createTestAddressRepository(t)
		fx.recorder.rowsAffected = 3

		rows, err := fx.repo.SoftDeleteAddressesByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(3), rows)

		stmt := fx.recorder.last(t)
		assert.True(t, strings.HasPrefix(stmt.SQL, `UPDATE "addresses" SET "deleted_at"=`))
		assert.Contains(t, stmt.SQL, `"addresses"."deleted_at" IS NULL`)
	})
}

func TestAddressRepository_PurgeAddressesByOwner(t *testing.T) {
	fx := createTestAddressRepository(t)
	fx.recorder.rowsAffected = 4
	owner := entity.NewOwnerRef(entity.OwnerTypeUser, uuid.New())

	rows, err := fx.repo.PurgeAddressesByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rows)

	stmt := fx.recorder.last(t)
	assert.True(t, strings.HasPrefix(stmt.SQL, `DELETE FROM "addresses"`))
	assert.Contains(t, stmt.SQL, "owner_type = $1 AND owner_id = $2")
	assert.NotContains(t, stmt.SQL, "deleted_at", "soft deleted rows are purged too")
	assert.Equal(t, []any{"user", owner.ID}, stmt.Vars)
}

func TestAddressRepository_RestoreAddress(t *testing.T) {
	fx := createTestAddressRepository(t)
	fx.recorder.rowsAffected = 1
	owner := entity.NewOwnerRef(entity.OwnerTypeUser, uuid.New())
	id := uuid.New()

	rows, err := fx.repo.RestoreAddress(context.Background(), owner, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	stmt := fx.recorder.last(t)
	assert.True(t, strings.HasPrefix(stmt.SQL, `UPDATE "addresses" SET "deleted_at"=`))
	assert.Contains(t, stmt.SQL, "deleted_at IS NOT NULL")
	assert.NotContains(t, stmt.SQL, `"addresses"."deleted_at" IS NULL`)
	assert.Subset(t, stmt.Vars, []any{"user", owner.ID, id})
}

func TestAddressRepository_UpdateAddress(t *testing.T) {
	fx := createTestAddressRepository(t)
	address := &entity.Address{
		ID:    uuid.New(),
		Owner: entity.NewOwnerRef(entity.OwnerTypeUser, uuid.New()),
		Line1: "1 Main St",
	}

	require.NoError(t, fx.repo.UpdateAddress(context.Background(), address))

	stmt := fx.recorder.last(t)
	assert.True(t, strings.HasPrefix(stmt.SQL, `UPDATE "addresses" SET`))
	assert.Contains(t, stmt.SQL, `"line_1"=`)
	assert.Contains(t, stmt.SQL, `"is_shipping"=`, "zero values are written")
	assert.NotContains(t, stmt.SQL, `"owner_id"=`)
	assert.NotContains(t, stmt.SQL, `"created_at"=`)
	assert.Contains(t, stmt.Vars, address.ID)
}

func TestAddressRepository_FindAddressesWithinBound(t *testing.T) {
	fx := createTestAddressRepository(t)
	bound := orb.Bound{Min: orb.Point{13.3, 52.4}, Max: orb.Point{13.5, 52.6}}

	_, err := fx.repo.FindAddressesWithinBound(context.Background(), bound)
	require.NoError(t, err)

	stmt := fx.recorder.last(t)
	assertOrderedFragments(t, stmt.SQL,
		"latitude IS NOT NULL AND longitude IS NOT NULL",
		"latitude BETWEEN $1 AND $2",
		"longitude BETWEEN $3 AND $4",
		`"addresses"."deleted_at" IS NULL`,
		"ORDER BY created_at ASC,id ASC",
	)
	assert.Equal(t, []any{52.4, 52.6, 13.3, 13.5}, stmt.Vars)
}
