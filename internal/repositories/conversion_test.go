package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	return sqlx.NewDb(db, "pgx"), mock
}

func TestConversionWriteRepository_Save(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	defer db.Close()

	repo := NewConversionWriteRepository(db)

	mock.ExpectExec("INSERT INTO conversions").
		WithArgs(sqlmock.AnyArg(), "101", "updated", "OK: 1250.5 × 5.2 = 6503 KZT", 1250.5, 5.2, int64(6503)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(ctx, models.Conversion{
		DealID:       "101",
		Outcome:      models.OutcomeUpdated,
		Message:      "OK: 1250.5 × 5.2 = 6503 KZT",
		SourceAmount: 1250.5,
		Rate:         5.2,
		TargetAmount: 6503,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversionWriteRepository_SaveError(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	defer db.Close()

	repo := NewConversionWriteRepository(db)

	mock.ExpectExec("INSERT INTO conversions").
		WillReturnError(assert.AnError)

	err := repo.Save(ctx, models.Conversion{DealID: "101", Outcome: models.OutcomeFailed})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversionReadRepository_ListRecent(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	defer db.Close()

	repo := NewConversionReadRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"conversion_id", "deal_id", "outcome", "message", "source_amount", "rate", "target_amount", "created_at",
	}).
		AddRow("c2", "102", "skipped", "SKIP: already 5096 KZT (rate 5.2)", 980.0, 5.2, int64(5096), now).
		AddRow("c1", "101", "updated", "OK: 1250.5 × 5.2 = 6503 KZT", 1250.5, 5.2, int64(6503), now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM conversions").
		WithArgs(2).
		WillReturnRows(rows)

	recent, err := repo.ListRecent(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, "102", recent[0].DealID)
	assert.Equal(t, "skipped", recent[0].Outcome)
	assert.Equal(t, int64(6503), recent[1].TargetAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
