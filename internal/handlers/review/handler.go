package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stayhub/infras/otel"
	"stayhub/internal/domains/review/model/dto"
	"stayhub/internal/domains/review/service"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/validator"
	"stayhub/transport/http/response"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// CreateReview leaves a review on a completed booking.
// @Summary Create a review
// @Description Leave a review on a completed booking. Only the booking's guest may review, once per booking.
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Data[dto.ReviewResponse] "Created review"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	guestID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || guestID == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.Create(ctx, req, guestID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review created successfully by user " + guestID)

	response.WithJSON(w, http.StatusCreated, review)
}

// DeleteReview removes a review.
// @Summary Delete a review
// @Description Delete a review. Authors may delete their own reviews, admins any review.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	callerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || callerID == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	callerRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, callerID, callerRole); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review deleted successfully: " + id)

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
