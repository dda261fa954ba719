package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/codatendechat/gateway/internal/domain/gateway"
	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormApiTokenRepository_FindActiveByToken(t *testing.T) {
	t.Run("finds active token and decodes permissions", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormApiTokenRepository(db)

		tokenID := uuid.New()
		companyID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "company_id", "name", "token", "permissions", "is_active"}).
			AddRow(tokenID, companyID, "CRM integration", "chave-secreta", `["contacts:read","messages:send"]`, true)

		mock.ExpectQuery(`SELECT \* FROM "api_tokens" WHERE token = \$1 AND is_active = \$2 ORDER BY .* LIMIT .*`).
			WithArgs("chave-secreta", true, 1).
			WillReturnRows(rows)

		token, err := repo.FindActiveByToken(context.Background(), "chave-secreta")

		require.NoError(t, err)
		assert.Equal(t, tokenID, token.ID)
		assert.Equal(t, companyID, token.CompanyID)
		assert.Equal(t, []string{"contacts:read", "messages:send"}, token.Permissions)
		assert.True(t, token.HasPermission("messages:send"))
		assert.False(t, token.HasPermission("tickets:write"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing token to not found", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormApiTokenRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "api_tokens" WHERE token = \$1 AND is_active = \$2 ORDER BY .* LIMIT .*`).
			WithArgs("unknown", true, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		token, err := repo.FindActiveByToken(context.Background(), "unknown")

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, token)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tolerates malformed permissions column", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormApiTokenRepository(db)

		rows := sqlmock.NewRows([]string{"id", "company_id", "name", "token", "permissions", "is_active"}).
			AddRow(uuid.New(), uuid.New(), "Broken", "chave", `not-json`, true)

		mock.ExpectQuery(`SELECT \* FROM "api_tokens" WHERE token = \$1 AND is_active = \$2 ORDER BY .* LIMIT .*`).
			WithArgs("chave", true, 1).
			WillReturnRows(rows)

		token, err := repo.FindActiveByToken(context.Background(), "chave")

		require.NoError(t, err)
		assert.Empty(t, token.Permissions)
		assert.False(t, token.HasPermission("contacts:read"))
	})
}

func TestGormApiTokenRepository_TouchLastUsed(t *testing.T) {
	t.Run("updates last_used_at in place", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormApiTokenRepository(db)

		mock.ExpectExec(`UPDATE "api_tokens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.TouchLastUsed(context.Background(), uuid.New(), time.Now())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("touching a deleted token is not an error", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormApiTokenRepository(db)

		mock.ExpectExec(`UPDATE "api_tokens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.TouchLastUsed(context.Background(), uuid.New(), time.Now())

		assert.NoError(t, err)
	})
}

func TestGormApiLogRepository_Insert(t *testing.T) {
	t.Run("appends an audit row", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormApiLogRepository(db)

		companyID := uuid.New()
		tokenID := uuid.New()

		mock.ExpectExec(`INSERT INTO "api_logs"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Insert(context.Background(), &gateway.ApiLogEntry{
			CompanyID:      &companyID,
			ApiTokenID:     &tokenID,
			Endpoint:       "/contacts",
			Method:         "GET",
			RequestBody:    json.RawMessage(`{}`),
			ResponseStatus: 200,
			ResponseBody:   json.RawMessage(`{"total":3}`),
			IPAddress:      "203.0.113.9",
			UserAgent:      "integration/1.0",
			DurationMs:     12,
			CreatedAt:      time.Now(),
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("accepts entries with no resolved token", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormApiLogRepository(db)

		mock.ExpectExec(`INSERT INTO "api_logs"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Insert(context.Background(), &gateway.ApiLogEntry{
			Endpoint:       "/contacts",
			Method:         "GET",
			ResponseStatus: 401,
			ResponseBody:   json.RawMessage(`{"error":"API key required","code":"AUTH_REQUIRED"}`),
			CreatedAt:      time.Now(),
		})

		assert.NoError(t, err)
	})
}
