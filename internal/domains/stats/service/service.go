package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Stats=MockStatsService

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/otel"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepo "hotelier/internal/domains/booking/repository"
	customerRepo "hotelier/internal/domains/customer/repository"
	reviewRepo "hotelier/internal/domains/review/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/internal/domains/stats/model/dto"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

const cacheStatsSummary = "stats:summary"

type Stats interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
	AverageRating(ctx context.Context) (float64, error)
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	roomRepo     roomRepo.Room
	bookingRepo  bookingRepo.Booking
	reviewRepo   reviewRepo.Review
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	customerRepo customerRepo.Customer,
	roomRepo roomRepo.Room,
	bookingRepo bookingRepo.Booking,
	reviewRepo reviewRepo.Review,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Stats {
	return &serviceImpl{
		customerRepo: customerRepo,
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		reviewRepo:   reviewRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStatsSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStatsSummary).Msg("cache hit for stats summary")

		return res, nil
	}

	if res.TotalCustomers, err = s.customerRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	if res.TotalRooms, err = s.roomRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	availableFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldIsAvailable,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	}
	if res.AvailableRooms, err = s.roomRepo.Count(ctx, availableFilter); err != nil {
		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	if res.TotalBookings, err = s.bookingRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	activeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Value:    []string{bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn},
				Operator: gDto.FilterOperatorIn,
				Table:    bookingModel.TableName,
			},
		},
	}
	if res.ActiveBookings, err = s.bookingRepo.Count(ctx, activeFilter); err != nil {
		return res, fmt.Errorf("failed to count active bookings: %w", err)
	}

	if res.TotalReviews, err = s.reviewRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	if res.AverageRating, err = s.AverageRating(ctx); err != nil {
		return res, err
	}

	if res.TotalRevenue, err = s.bookingRepo.TotalRevenue(ctx); err != nil {
		return res, fmt.Errorf("failed to compute total revenue: %w", err)
	}

	if res.TotalRooms > 0 {
		occupied := res.TotalRooms - res.AvailableRooms
		res.OccupancyRate = roundTo2(float64(occupied) / float64(res.TotalRooms) * 100)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStatsSummary, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stats summary to cache")
		}
	}()

	return res, nil
}

// AverageRating is the mean review rating rounded to 2 decimal places,
// 0.0 when no reviews exist.
func (s *serviceImpl) AverageRating(ctx context.Context) (res float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AverageRating")
	defer scope.End()
	defer scope.TraceIfError(err)

	avg, err := s.reviewRepo.AverageRating(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute average rating")

		return 0, fmt.Errorf("failed to compute average rating: %w", err)
	}

	return roundTo2(avg), nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
