package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Guest=MockGuestRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	"github.com/adokuru/affordaily-api/internal/domains/guest/model"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/logger"
	gRepo "github.com/adokuru/affordaily-api/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetByPhoneTx(ctx context.Context, sqltx *sqlx.Tx, phone string) (model.Guest, error)
	IncrementStatsTx(ctx context.Context, sqltx *sqlx.Tx, guestID string, spent int64, stayAt time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByPhoneTx reads a guest by phone with a row lock, so find-or-create
// inside a check-in transaction cannot race another check-in for the same
// guest. A zero-value guest means no record exists.
func (repo *repositoryImpl) GetByPhoneTx(ctx context.Context, sqltx *sqlx.Tx, phone string) (model.Guest, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.GetByPhoneTx")
	defer scope.End()

	query := `SELECT id, name, phone, email, id_photo_ref, notes, total_stays, total_spent, last_stay,
			is_blacklisted, blacklist_reason, created_at, modified_at, created_by, modified_by
		FROM guests
		WHERE phone = $1
		FOR UPDATE`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var guest model.Guest

	err := sqltx.GetContext(ctx, &guest, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Guest{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Guest{}, fmt.Errorf("failed to get guest by phone: %w", err)
	}

	return guest, nil
}

func (repo *repositoryImpl) IncrementStatsTx(ctx context.Context, sqltx *sqlx.Tx, guestID string, spent int64, stayAt time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.IncrementStatsTx")
	defer scope.End()

	query := `UPDATE guests
		SET total_stays = total_stays + 1,
			total_spent = total_spent + $1,
			last_stay = $2,
			modified_at = $2
		WHERE id = $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqltx.ExecContext(ctx, query, spent, stayAt, guestID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to increment guest stats: %w", err)
	}

	return nil
}
