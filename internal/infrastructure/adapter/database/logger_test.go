package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	coremocks "github.com/romeopeter/payment-orchestrator/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "transactions"`))
	assert.Equal(t, "INSERT", extractQueryType(`INSERT INTO "users" ("email") VALUES ($1)`))
	assert.Equal(t, "UPDATE", extractQueryType(`UPDATE "transactions" SET "status"=$1`))
	assert.Equal(t, "DELETE", extractQueryType(`DELETE FROM users`))
	assert.Equal(t, "", extractQueryType(`CREATE INDEX idx ON t (c)`))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "TRANSACTIONS", extractTableName(`SELECT * FROM "transactions" WHERE gateway_ref = $1`))
	assert.Equal(t, "USERS", extractTableName(`INSERT INTO "users" ("email") VALUES ($1)`))
	assert.Equal(t, "TRANSACTIONS", extractTableName(`UPDATE "transactions" SET "status"=$1`))
	assert.Equal(t, "", extractTableName(`BEGIN`))
}

func TestDatabaseLoggerTrace(t *testing.T) {
	begin := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sql := func() (string, int64) { return `SELECT * FROM "users" WHERE id = 1`, 1 }

	t.Run("slow query warns", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(coreport.Duration(time.Second))
		log.EXPECT().Warn("Slow SQL Query", mock.MatchedBy(func(f map[string]any) bool {
			return f["table"] == "USERS" && f["type"] == "SELECT" && f["rows"] == int64(1)
		}))

		NewDatabaseLogger(log, tp, "warn").Trace(context.Background(), begin, sql, nil)
	})

	t.Run("error logs error", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(coreport.Duration(time.Millisecond))
		log.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "boom"
		}))

		NewDatabaseLogger(log, tp, "error").Trace(context.Background(), begin, sql, errors.New("boom"))
	})

	t.Run("record not found is debug", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(coreport.Duration(time.Millisecond))
		log.EXPECT().Debug("SQL Query", mock.Anything)

		NewDatabaseLogger(log, tp, "info").Trace(context.Background(), begin, sql, gorm.ErrRecordNotFound)
	})

	t.Run("fast query at warn level is silent", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(coreport.Duration(time.Millisecond))

		NewDatabaseLogger(log, tp, "warn").Trace(context.Background(), begin, sql, nil)
	})

	t.Run("silent skips everything", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)

		NewDatabaseLogger(log, tp, "info").LogMode(logger.Silent).Trace(context.Background(), begin, sql, errors.New("boom"))
	})
}
