package property

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stayhub/infras/otel"
	"stayhub/internal/domains/property/model"
	"stayhub/internal/domains/property/model/dto"
	"stayhub/internal/domains/property/service"
	reviewService "stayhub/internal/domains/review/service"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/validator"
	"stayhub/transport/http/response"
)

type Handler struct {
	service       service.Property
	reviewService reviewService.Review
	otel          otel.Otel
}

func New(service service.Property, reviewService reviewService.Review, otel otel.Otel) Handler {
	return Handler{
		service:       service,
		reviewService: reviewService,
		otel:          otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/properties", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProperty)
		routerGroup.Get("/", handler.GetProperties)
		routerGroup.Get("/{id}", handler.GetProperty)
		routerGroup.Put("/{id}", handler.UpdateProperty)
		routerGroup.Delete("/{id}", handler.DeleteProperty)
		routerGroup.Post("/{id}/photo", handler.UploadPhoto)
		routerGroup.Patch("/{id}/approval", handler.ApproveProperty)
		routerGroup.Get("/{id}/reviews", handler.GetPropertyReviews)
	})
}

// CreateProperty creates a new property listing with an optional cover image.
// @Summary Create a property
// @Description Create a new property listing. New listings await admin approval.
// @Tags Property
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param location formData string true "Location"
// @Param price_per_night formData number true "Price per night"
// @Param max_guests formData int true "Maximum guests"
// @Param active formData bool false "Whether the listing is active"
// @Param file formData file false "Cover image"
// @Success 201 {object} response.Message "Property created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [post]
// @Security BearerAuth
func (handler *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProperty")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("request body must be multipart/form-data"))

		return
	}

	req := dto.CreatePropertyRequest{
		Title:       r.FormValue(model.FieldTitle),
		Description: r.FormValue(model.FieldDescription),
		Location:    r.FormValue(model.FieldLocation),
	}

	if raw := r.FormValue(model.FieldPricePerNight); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("price_per_night must be a number"))

			return
		}
		req.PricePerNight = price
	}

	if raw := r.FormValue(model.FieldMaxGuests); raw != "" {
		maxGuests, err := strconv.Atoi(raw)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("max_guests must be an integer"))

			return
		}
		req.MaxGuests = maxGuests
	}

	if raw := r.FormValue(model.FieldActive); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("active must be a boolean"))

			return
		}
		req.Active = &active
	}

	if file, fileHeader, err := r.FormFile(constant.FormFile); err == nil {
		defer file.Close()

		req.Image = fileHeader
		req.ImageFile = file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create property")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Property created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Property created successfully")
}

// GetProperties retrieves all property listings based on query parameters.
// @Summary Get all properties
// @Description Retrieve all property listings with optional filtering and pagination.
// @Tags Property
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param location query string false "Filter by location"
// @Param host_id query string false "Filter by host"
// @Param price_min query number false "Minimum price per night"
// @Param price_max query number false "Maximum price per night"
// @Param guests query int false "Minimum guest capacity"
// @Success 200 {object} dto.GetPropertiesResponse "List of properties"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [get]
func (handler *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	title := r.URL.Query().Get(model.FieldTitle)
	location := r.URL.Query().Get(model.FieldLocation)
	hostID := r.URL.Query().Get(model.FieldHostID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Unauthenticated and guest callers only see bookable listings
	callerRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if callerRole != constant.RoleHost && callerRole != constant.RoleAdmin {
		filterGroup.Filters = append(filterGroup.Filters,
			gDto.Filter{
				Field:    model.FieldApproved,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			})
	}

	if raw := r.URL.Query().Get("price_min"); raw != "" {
		if priceMin, err := strconv.ParseFloat(raw, 64); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				ArgName:  "price_min",
				Field:    model.FieldPricePerNight,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    priceMin,
				Table:    model.TableName,
			})
		}
	}

	if raw := r.URL.Query().Get("price_max"); raw != "" {
		if priceMax, err := strconv.ParseFloat(raw, 64); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				ArgName:  "price_max",
				Field:    model.FieldPricePerNight,
				Operator: gDto.FilterOperatorLessEq,
				Value:    priceMax,
				Table:    model.TableName,
			})
		}
	}

	if raw := r.URL.Query().Get("guests"); raw != "" {
		if guests, err := strconv.Atoi(raw); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldMaxGuests,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    guests,
				Table:    model.TableName,
			})
		}
	}

	if title != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if hostID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHostID,
			Operator: gDto.FilterOperatorEq,
			Value:    hostID,
			Table:    model.TableName,
		})
	}

	properties, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Properties retrieved successfully")

	response.WithJSON(w, http.StatusOK, properties)
}

// GetProperty retrieves a property by ID.
// @Summary Get a property
// @Description Retrieve a property listing by its ID.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.PropertyResponse] "Property details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [get]
func (handler *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	property, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property retrieved successfully")

	response.WithJSON(w, http.StatusOK, property)
}

// UpdateProperty updates a property listing.
// @Summary Update a property
// @Description Update a property listing. Hosts may only update their own listings.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.UpdatePropertyRequest true "Update Property Request"
// @Success 200 {object} response.Message "Property updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePropertyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property updated successfully: " + id)

	response.WithMessage(w, http.StatusOK, "Property updated successfully")
}

// UploadPhoto replaces the property's cover image.
// @Summary Upload a property photo
// @Description Upload a new cover image for a property listing.
// @Tags Property
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param file formData file true "Image file to upload"
// @Success 200 {object} response.Message "Photo uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("request body must be multipart/form-data"))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequestFromString("image file is required"))

		return
	}
	defer file.Close()

	req := dto.UploadPhotoRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UploadPhoto(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Photo uploaded successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Photo uploaded successfully")
}

// ApproveProperty sets the approval flag on a listing.
// @Summary Approve or reject a property
// @Description Approve or reject a property listing. Admin only.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.ApprovePropertyRequest true "Approve Property Request"
// @Success 200 {object} response.Message "Property approval updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/approval [patch]
// @Security BearerAuth
func (handler *Handler) ApproveProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ApprovePropertyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Approve(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update property approval")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property approval updated successfully: " + id)

	response.WithMessage(w, http.StatusOK, "Property approval updated successfully")
}

// GetPropertyReviews retrieves the reviews of a property.
// @Summary Get property reviews
// @Description Retrieve all reviews for a property with pagination.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} reviewDto.GetReviewsResponse "List of reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/reviews [get]
func (handler *Handler) GetPropertyReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyReviews")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	reviews, err := handler.reviewService.GetByProperty(ctx, queryParams, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully for property " + propertyID)

	response.WithJSON(w, http.StatusOK, reviews)
}

// DeleteProperty deletes a property listing.
// @Summary Delete a property
// @Description Delete a property listing. Hosts may only delete their own listings.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Message "Property deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property deleted successfully: " + id)

	response.WithMessage(w, http.StatusOK, "Property deleted successfully")
}
