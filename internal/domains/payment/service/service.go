package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/infras/otel"
	bookingModel "stayhub/internal/domains/booking/model"
	bookingRepo "stayhub/internal/domains/booking/repository"
	"stayhub/internal/domains/payment/model"
	"stayhub/internal/domains/payment/model/dto"
	"stayhub/internal/domains/payment/repository"
	propertyModel "stayhub/internal/domains/property/model"
	propertyRepo "stayhub/internal/domains/property/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
)

const (
	cacheGetPayment    = "payment:get"
	cacheGetAllPayment = "payment:gets"
	cacheCountPayment  = "payment:count"
)

type Payment interface {
	Get(ctx context.Context, id, callerID, callerRole string) (dto.PaymentResponse, error)
	GetByBooking(ctx context.Context, bookingID, callerID, callerRole string) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) error
}

type serviceImpl struct {
	repo         repository.Payment
	bookingRepo  bookingRepo.Booking
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Payment,
	bookingRepo bookingRepo.Booking,
	propertyRepo propertyRepo.Property,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id, callerID, callerRole string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPayment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment")

		if err = s.guardRead(ctx, res.BookingID, callerID, callerRole); err != nil {
			return dto.PaymentResponse{}, err
		}

		return res, nil
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found")
	}

	if err = s.guardRead(ctx, payment.BookingID, callerID, callerRole); err != nil {
		return res, err
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID, callerID, callerRole string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.guardRead(ctx, bookingID, callerID, callerRole); err != nil {
		return res, err
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment by booking")

		return res, fmt.Errorf("failed to get payment by booking: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found")
	}

	res.FromModel(payment)

	return res, nil
}

// guardRead resolves the payment's booking and admits the booking guest, the
// property host, and admins.
func (s *serviceImpl) guardRead(ctx context.Context, bookingID, callerID, callerRole string) error {
	if callerRole == constant.RoleAdmin {
		return nil
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for payment authorization")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	if booking.GuestID == callerID {
		return nil
	}

	if callerRole == constant.RoleHost {
		property, err := s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get property for payment authorization")

			return fmt.Errorf("failed to get property: %w", err)
		}

		if property.HostID == callerID {
			return nil
		}
	}

	return failure.Forbidden("payment does not belong to the caller")
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment count to cache")
		}
	}()

	return res, nil
}

// UpdateStatus is the administrative overwrite: any member of the status enum
// may be set regardless of the current status, and payment_date is never
// touched.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment exists")

		return fmt.Errorf("failed to check if payment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("payment not found")
	}

	updatedFields := shared.TransformFields(req, callerID)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPayment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete payment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
	}()

	return nil
}
