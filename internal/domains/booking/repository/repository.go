package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
	"hotelier/shared/timezone"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	InsertWithRoomHold(ctx context.Context, booking model.Booking, user string) error
	UpdateStatusWithRoomRelease(ctx context.Context, booking model.Booking, status, user string) error
	TotalRevenue(ctx context.Context) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	rooms gRepo.Repository[roomModel.Room]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		rooms:      gRepo.NewRepository[roomModel.Room](roomModel.EntityName, roomModel.TableName, roomModel.FieldRoomNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertWithRoomHold marks the booking's room unavailable and inserts the
// booking in a single transaction, so a partial write can never leave the
// room flag out of sync with its bookings.
func (repo *repositoryImpl) InsertWithRoomHold(ctx context.Context, booking model.Booking, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithRoomHold")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (booking): %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	roomFields := map[string]any{
		roomModel.FieldIsAvailable: false,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	roomFilter := shared.FilterByID(booking.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName)
	if err = repo.rooms.UpdateTx(ctx, tx, roomFields, roomFilter); err != nil {
		return fmt.Errorf("failed to hold room (booking): %w", err)
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction (booking): %w", err)
	}

	return nil
}

// UpdateStatusWithRoomRelease moves the booking into a releasing status and
// re-marks its room available, atomically.
func (repo *repositoryImpl) UpdateStatusWithRoomRelease(ctx context.Context, booking model.Booking, status, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatusWithRoomRelease")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (booking): %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	bookingFields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	bookingFilter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)
	if err = repo.UpdateTx(ctx, tx, bookingFields, bookingFilter); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	roomFields := map[string]any{
		roomModel.FieldIsAvailable: true,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	roomFilter := shared.FilterByID(booking.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName)
	if err = repo.rooms.UpdateTx(ctx, tx, roomFields, roomFilter); err != nil {
		return fmt.Errorf("failed to release room (booking): %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction (booking): %w", err)
	}

	return nil
}

// TotalRevenue sums total_price over every booking that was not cancelled.
func (repo *repositoryImpl) TotalRevenue(ctx context.Context) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TotalRevenue")
	defer scope.End()

	query := fmt.Sprintf("SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s != :status", model.FieldTotalPrice, model.TableName, model.FieldStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total float64

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (booking): %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &total, map[string]any{"status": model.StatusCancelled})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to compute total revenue (booking): %w", err)
	}

	return total, nil
}
