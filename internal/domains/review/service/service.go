package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/infras/otel"
	bookingModel "stayhub/internal/domains/booking/model"
	bookingRepo "stayhub/internal/domains/booking/repository"
	"stayhub/internal/domains/review/model"
	"stayhub/internal/domains/review/model/dto"
	"stayhub/internal/domains/review/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
)

const (
	cacheGetAllReview = "review:gets"
	cacheCountReview  = "review:count"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest, guestID string) (dto.ReviewResponse, error)
	GetByProperty(ctx context.Context, req gDto.QueryParams, propertyID string) (dto.GetReviewsResponse, error)
	Delete(ctx context.Context, id, callerID, callerRole string) error
}

type serviceImpl struct {
	repo        repository.Review
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Review, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest, guestID string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for review")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	if booking.GuestID != guestID {
		return res, failure.Forbidden("only the booking guest may leave a review")
	}

	if booking.Status != bookingModel.StatusCompleted {
		return res, failure.BadRequestFromString("only completed bookings can be reviewed")
	}

	bookingFilter := shared.FilterByID(req.BookingID, model.FieldBookingID, model.TableName)

	exists, err := s.repo.Exist(ctx, bookingFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return res, fmt.Errorf("failed to check if review exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("booking already reviewed")
	}

	review := req.ToModel(guestID, booking.PropertyID)

	// The DB unique constraint on booking_id backs the Exist pre-check
	// against concurrent submissions.
	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetByProperty(ctx context.Context, req gDto.QueryParams, propertyID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, callerID, callerRole string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	review, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return failure.NotFound("review not found")
	}

	if callerRole != constant.RoleAdmin && review.GuestID != callerID {
		return failure.Forbidden("review does not belong to the caller")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)
	}()
}
