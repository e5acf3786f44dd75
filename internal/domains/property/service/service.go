package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/infras/otel"
	"stayhub/infras/s3"
	"stayhub/internal/domains/property/model"
	"stayhub/internal/domains/property/model/dto"
	"stayhub/internal/domains/property/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
)

const (
	cacheGetProperty    = "property:get"
	cacheGetAllProperty = "property:gets"
	cacheCountProperty  = "property:count"
)

type Property interface {
	Create(ctx context.Context, req dto.CreatePropertyRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPropertiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PropertyResponse, error)
	Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) error
	UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest, id string) error
	Approve(ctx context.Context, req dto.ApprovePropertyRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Property
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Property {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// canManage allows admins to operate on any property and hosts only on their own.
func canManage(callerID, callerRole string, property model.Property) bool {
	if callerRole == constant.RoleAdmin {
		return true
	}

	return callerRole == constant.RoleHost && property.HostID == callerID
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePropertyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL := constant.Empty
	var uploadedObjectName string
	if req.Image != nil {
		bucketName := s.cfg.External.S3.BucketName
		filename := uuid.NewString()

		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to S3")

			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, req.ToModel(callerID, callerID, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for properties")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProperty, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property")

		return res, nil
	}

	property, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	res.FromModel(property)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePropertyRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	callerRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check property existence")

		return err
	}

	if current.ID == constant.Empty {
		log.Error().Msg("property not found")

		return failure.NotFound("property not found")
	}

	if !canManage(callerID, callerRole, current) {
		return failure.Forbidden("property does not belong to the caller")
	}

	updatedFields := shared.TransformFields(req, callerID)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update property")

		return fmt.Errorf("failed to update property: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	callerRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check property existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("property not found")
	}

	if !canManage(callerID, callerRole, current) {
		return failure.Forbidden("property does not belong to the caller")
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	parts := strings.Split(req.Image.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	imageURL, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	updatedFields := shared.TransformFields(struct{}{}, callerID)
	updatedFields[model.FieldImage] = imageURL

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update property image")

		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename)

		return fmt.Errorf("failed to update property image: %w", err)
	}

	if current.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, current.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Approve(ctx context.Context, req dto.ApprovePropertyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	callerRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if callerRole != constant.RoleAdmin {
		return failure.Forbidden("only admins can approve properties")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if property exists")

		return fmt.Errorf("failed to check if property exists: %w", err)
	}

	if !exist {
		return failure.NotFound("property not found")
	}

	updatedFields := shared.TransformFields(struct{}{}, callerID)
	updatedFields[model.FieldApproved] = *req.Approved

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update property approval")

		return fmt.Errorf("failed to update property approval: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	callerRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check property existence")

		return err
	}

	if current.ID == constant.Empty {
		log.Error().Msg("property not found")

		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	if !canManage(callerID, callerRole, current) {
		return failure.Forbidden("property does not belong to the caller")
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete property")

		return fmt.Errorf("failed to delete property: %w", err)
	}

	if current.Image != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, current.Image)
		if objectName != constant.Empty {
			if err := s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName); err != nil {
				log.Warn().Err(err).Msg("failed to delete property image from S3")
			}
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProperty, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete property from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
	}()
}
