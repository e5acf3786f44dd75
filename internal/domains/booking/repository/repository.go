package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/booking/model"
	paymentModel "stayhub/internal/domains/payment/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/logger"
	gRepo "stayhub/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertWithPayment(ctx context.Context, booking model.Booking, payment paymentModel.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	paymentRepo gRepo.Repository[paymentModel.Payment]
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:  gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		paymentRepo: gRepo.NewRepository[paymentModel.Payment](paymentModel.EntityName, paymentModel.TableName, paymentModel.FieldID, db, otel),
		db:          db,
		otel:        otel,
	}
}

// InsertWithPayment writes the booking and its paired payment in a single
// transaction so neither row can exist without the other.
func (repo *repositoryImpl) InsertWithPayment(ctx context.Context, booking model.Booking, payment paymentModel.Payment) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err
	}

	if err = repo.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
