package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Payment=MockPaymentRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	"github.com/adokuru/affordaily-api/internal/domains/payment/model"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/logger"
	gRepo "github.com/adokuru/affordaily-api/shared/repository"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Payment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetForUpdateTx locks a ledger entry so confirm/update/delete serialize per
// payment. A zero-value payment means the id does not exist.
func (repo *repositoryImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Payment, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.GetForUpdateTx")
	defer scope.End()

	query := `SELECT id, booking_id, payment_method, amount, payer_name, reference, is_confirmed, confirmed_at,
			created_at, modified_at, created_by, modified_by
		FROM payments
		WHERE id = $1
		FOR UPDATE`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var payment model.Payment

	err := sqltx.GetContext(ctx, &payment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Payment{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Payment{}, fmt.Errorf("failed to get payment for update: %w", err)
	}

	return payment, nil
}
