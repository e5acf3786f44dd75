package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/infras/kafka"
	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/repository"
	paymentModel "stayhub/internal/domains/payment/model"
	paymentRepo "stayhub/internal/domains/payment/repository"
	propertyModel "stayhub/internal/domains/property/model"
	propertyRepo "stayhub/internal/domains/property/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

// Booking is the booking engine. Caller identity is always an explicit
// parameter so authorization decisions stay visible at the call site.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, guestID string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID, callerID string) error
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, bookingID, callerID, callerRole string) error
	Get(ctx context.Context, bookingID, callerID, callerRole string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetMine(ctx context.Context, req gDto.QueryParams, guestID string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	propertyRepo propertyRepo.Property
	paymentRepo  paymentRepo.Payment
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(
	repo repository.Booking,
	propertyRepo propertyRepo.Property,
	paymentRepo paymentRepo.Payment,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		paymentRepo:  paymentRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, guestID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(req.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty || !property.Approved || !property.Active {
		return res, failure.NotFound("property not found")
	}

	start, end, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	if req.GuestCount > property.MaxGuests {
		return res, failure.BadRequestFromString(fmt.Sprintf("guest_count exceeds property capacity of %d", property.MaxGuests))
	}

	booking := req.ToModel(guestID, start, end, property.PricePerNight)
	payment := req.ToPaymentModel(booking)

	if err = s.repo.InsertWithPayment(ctx, booking, payment); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, dto.EventBookingCreated, booking)
	s.invalidateLists(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID, callerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(bookingID, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	if booking.GuestID != callerID {
		return failure.Forbidden("only the booking guest may cancel")
	}

	updatedFields := shared.TransformFields(struct{}{}, callerID)
	updatedFields[model.FieldStatus] = model.StatusCancelled

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.refundPayment(ctx, bookingID, callerID)

	booking.Status = model.StatusCancelled
	s.publishEvent(ctx, dto.EventBookingCancelled, booking)
	s.invalidate(ctx, bookingID)

	return nil
}

// refundPayment marks the paired payment refunded. A missing payment row or a
// failed update does not fail the cancellation.
func (s *serviceImpl) refundPayment(ctx context.Context, bookingID, callerID string) {
	paymentFilter := shared.FilterByID(bookingID, paymentModel.FieldBookingID, paymentModel.TableName)

	payment, err := s.paymentRepo.Get(ctx, paymentFilter)
	if err != nil {
		log.Warn().Err(err).Str("booking_id", bookingID).Msg("failed to look up payment for refund")

		return
	}

	if payment.ID == constant.Empty {
		log.Warn().Str("booking_id", bookingID).Msg("no payment found for cancelled booking")

		return
	}

	refundFields := shared.TransformFields(struct{}{}, callerID)
	refundFields[paymentModel.FieldStatus] = paymentModel.StatusRefunded

	if err := s.paymentRepo.Update(ctx, refundFields, paymentFilter); err != nil {
		log.Warn().Err(err).Str("booking_id", bookingID).Msg("failed to refund payment for cancelled booking")
	}
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, bookingID, callerID, callerRole string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.IsValidStatus(req.Status) {
		return failure.BadRequestFromString("invalid booking status")
	}

	filter := shared.FilterByID(bookingID, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	if err = s.authorizeStatusUpdate(ctx, booking, callerID, callerRole); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(struct{}{}, callerID)
	updatedFields[model.FieldStatus] = req.Status

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	s.publishEvent(ctx, dto.EventBookingStatusChanged, booking)
	s.invalidate(ctx, bookingID)

	return nil
}

// authorizeStatusUpdate admits admins unconditionally and hosts only for
// bookings on their own property.
func (s *serviceImpl) authorizeStatusUpdate(ctx context.Context, booking model.Booking, callerID, callerRole string) error {
	if callerRole == constant.RoleAdmin {
		return nil
	}

	if callerRole != constant.RoleHost {
		return failure.Forbidden("only the property host or an admin may update booking status")
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property for booking authorization")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if property.HostID != callerID {
		return failure.Forbidden("booking does not belong to the caller's property")
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID, callerID, callerRole string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return s.guardRead(res, callerID, callerRole)
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return s.guardRead(res, callerID, callerRole)
}

// guardRead lets hosts and admins read any booking while guests may only
// read their own.
func (s *serviceImpl) guardRead(res dto.BookingResponse, callerID, callerRole string) (dto.BookingResponse, error) {
	if callerRole == constant.RoleGuest && res.GuestID != callerID {
		return dto.BookingResponse{}, failure.Forbidden("booking does not belong to the caller")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, guestID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestID,
				Operator: gDto.FilterOperatorEq,
				Value:    guestID,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

// publishEvent emits a booking lifecycle event. Delivery is best-effort: a
// broker failure never fails the booking operation.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	topic := s.cfg.Kafka.Topics.BookingEvents
	if topic == constant.Empty {
		return
	}

	event := dto.NewBookingEvent(eventType, booking)

	err := s.kafka.SendMessages(ctx, topic, kafka.Message{
		Key:   booking.ID,
		Value: event,
	})
	if err != nil {
		log.Warn().Err(err).Str("type", eventType).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
