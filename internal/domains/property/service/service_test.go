package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	"stayhub/infras/otel/mocks"
	s3Mocks "stayhub/infras/s3/mocks"
	"stayhub/internal/domains/property/model"
	"stayhub/internal/domains/property/model/dto"
	propertyMocks "stayhub/internal/domains/property/repository/mocks"
	"stayhub/internal/domains/property/service"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
)

type propertyServiceFixture struct {
	repo  *propertyMocks.MockProperty
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Property
}

func newPropertyServiceFixture(ctrl *gomock.Controller) *propertyServiceFixture {
	f := &propertyServiceFixture{
		repo:  propertyMocks.NewMockProperty(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "stayhub"

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func hostContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleHost)
}

func adminContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func testProperty() model.Property {
	return model.Property{
		ID:            "property-id",
		HostID:        "host-id",
		Title:         "Seaside Villa",
		Location:      "Bali",
		PricePerNight: 25000,
		MaxGuests:     4,
		Approved:      true,
		Active:        true,
	}
}

func TestPropertyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPropertyServiceFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.CreatePropertyRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation without image",
			req: dto.CreatePropertyRequest{
				Title:         "Seaside Villa",
				Description:   "A villa by the sea",
				Location:      "Bali",
				PricePerNight: 25000,
				MaxGuests:     4,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, property model.Property) error {
						assert.Equal(t, "host-id", property.HostID)
						assert.False(t, property.Approved)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "insert failure",
			req: dto.CreatePropertyRequest{
				Title:         "Seaside Villa",
				Location:      "Bali",
				PricePerNight: 25000,
				MaxGuests:     4,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Create(hostContext("host-id"), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPropertyService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPropertyServiceFixture(ctrl)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpdatePropertyRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "host updates own property",
			ctx:  hostContext("host-id"),
			req:  dto.UpdatePropertyRequest{Title: "Renovated Villa"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "admin updates any property",
			ctx:  adminContext("admin-id"),
			req:  dto.UpdatePropertyRequest{Title: "Renovated Villa"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "host may not update another host's property",
			ctx:  hostContext("other-host-id"),
			req:  dto.UpdatePropertyRequest{Title: "Renovated Villa"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:      "empty update request",
			ctx:       hostContext("host-id"),
			req:       dto.UpdatePropertyRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "property not found",
			ctx:  hostContext("host-id"),
			req:  dto.UpdatePropertyRequest{Title: "Renovated Villa"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Update(tt.ctx, tt.req, "property-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPropertyService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPropertyServiceFixture(ctrl)

	approved := true

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "admin approves a property",
			ctx:  adminContext("admin-id"),
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, true, fields[model.FieldApproved])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:      "host may not approve",
			ctx:       hostContext("host-id"),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name: "property not found",
			ctx:  adminContext("admin-id"),
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Approve(tt.ctx, dto.ApprovePropertyRequest{Approved: &approved}, "property-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPropertyService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPropertyServiceFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss then db read",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty(), nil)
			},
			wantErr: false,
		},
		{
			name: "property not found",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.Get(context.Background(), "property-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPropertyService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPropertyServiceFixture(ctrl)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "host deletes own property",
			ctx:  hostContext("host-id"),
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty(), nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "host may not delete another host's property",
			ctx:  hostContext("other-host-id"),
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "property not found",
			ctx:  hostContext("host-id"),
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Delete(tt.ctx, "property-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
