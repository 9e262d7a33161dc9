package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=VisitorPass=MockVisitorPassRepository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/model"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	gRepo "github.com/adokuru/affordaily-api/shared/repository"
)

type VisitorPass interface {
	Insert(ctx context.Context, model model.VisitorPass) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.VisitorPass) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.VisitorPass, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.VisitorPass, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.VisitorPass]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) VisitorPass {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.VisitorPass](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
