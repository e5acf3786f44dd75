package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/service"
	paymentService "stayhub/internal/domains/payment/service"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/validator"
	"stayhub/transport/http/response"
)

type Handler struct {
	service        service.Booking
	paymentService paymentService.Payment
	otel           otel.Otel
}

func New(service service.Booking, paymentService paymentService.Payment, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		paymentService: paymentService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/me", handler.GetMyBookings)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Get("/{id}/payment", handler.GetBookingPayment)
	})
}

// caller reads the authenticated identity set by the auth middleware.
func caller(r *http.Request) (userID, role string, err error) {
	ctx := r.Context()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return "", "", failure.Unauthorized("unauthorized")
	}

	role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return userID, role, nil
}

// CreateBooking books a stay at a property. The total price is derived
// server side from the property's nightly rate, never from the request.
// @Summary Create a booking
// @Description Book a stay at an approved property. The booking starts pending with a pending payment attached.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	guestID, _, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req, guestID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + guestID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination. Admin only.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param status query string false "Filter by status (pending, confirmed, cancelled, completed)"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	propertyID := r.URL.Query().Get(model.FieldPropertyID)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if propertyID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    propertyID,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyBookings retrieves the authenticated guest's bookings.
// @Summary Get my bookings
// @Description Retrieve all bookings made by the currently authenticated user.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetBookingsResponse "List of the caller's bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/me [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	guestID, _, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetMine(ctx, queryParams, guestID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully for user " + guestID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBooking retrieves a booking by ID.
// @Summary Get a booking
// @Description Retrieve a booking by its ID. Guests see their own bookings, hosts the bookings of their properties.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	callerID, callerRole, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id, callerID, callerRole)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a booking on behalf of its guest.
// @Summary Cancel a booking
// @Description Cancel a booking. Only the guest who made the booking may cancel it. Completed payments are refunded.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	callerID, _, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id, callerID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully: " + id)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// UpdateBookingStatus moves a booking to a new status.
// @Summary Update booking status
// @Description Update a booking's status. Allowed for admins and for the host of the booked property.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Update Booking Status Request"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	callerID, callerRole, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id, callerID, callerRole); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status updated successfully: " + id)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// GetBookingPayment retrieves the payment attached to a booking.
// @Summary Get a booking's payment
// @Description Retrieve the payment record attached to a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[paymentDto.PaymentResponse] "Payment details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payment [get]
// @Security BearerAuth
func (handler *Handler) GetBookingPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingPayment")
	defer scope.End()

	callerID, callerRole, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	payment, err := handler.paymentService.GetByBooking(ctx, id, callerID, callerRole)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment retrieved successfully for booking " + id)

	response.WithJSON(w, http.StatusOK, payment)
}
