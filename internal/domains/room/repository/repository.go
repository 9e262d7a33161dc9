package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	"github.com/adokuru/affordaily-api/internal/domains/room/model"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/logger"
	gRepo "github.com/adokuru/affordaily-api/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ClaimAvailableTx(ctx context.Context, sqltx *sqlx.Tx, preferredBedType string) (model.Room, error)
	GetOccupancyStats(ctx context.Context) ([]model.OccupancyStat, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ClaimAvailableTx locks and marks unavailable the first free room, preferring
// the requested bed type then falling back over all types by (bed_type,
// room_number). SKIP LOCKED makes concurrent check-ins claim distinct rooms
// instead of queueing on the same row. A zero-value room means no rooms are
// free.
func (repo *repositoryImpl) ClaimAvailableTx(ctx context.Context, sqltx *sqlx.Tx, preferredBedType string) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ClaimAvailableTx")
	defer scope.End()

	query := `SELECT id, room_number, bed_type, is_available, description, created_at, modified_at, created_by, modified_by
		FROM rooms
		WHERE is_available = TRUE
		ORDER BY (bed_type = $1) DESC, bed_type ASC, room_number ASC
		LIMIT 1
		FOR UPDATE SKIP LOCKED`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var room model.Room

	err := sqltx.GetContext(ctx, &room, query, preferredBedType)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to claim available room: %w", err)
	}

	_, err = sqltx.ExecContext(ctx, "UPDATE rooms SET is_available = FALSE WHERE id = $1", room.ID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to mark room unavailable: %w", err)
	}

	room.IsAvailable = false

	return room, nil
}

func (repo *repositoryImpl) GetOccupancyStats(ctx context.Context) ([]model.OccupancyStat, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetOccupancyStats")
	defer scope.End()

	query := `SELECT bed_type,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_available) AS available,
			COUNT(*) FILTER (WHERE NOT is_available) AS occupied
		FROM rooms
		GROUP BY bed_type
		ORDER BY bed_type`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var stats []model.OccupancyStat

	err := repo.db.Read.SelectContext(ctx, &stats, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get room occupancy stats: %w", err)
	}

	return stats, nil
}
