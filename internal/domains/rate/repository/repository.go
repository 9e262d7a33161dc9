package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	"github.com/adokuru/affordaily-api/internal/domains/rate/model"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	gRepo "github.com/adokuru/affordaily-api/shared/repository"
)

type Rate interface {
	Insert(ctx context.Context, model model.RoomRate) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.RoomRate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomRate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomRate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomRate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomRate](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
