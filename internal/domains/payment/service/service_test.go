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
	bookingModel "stayhub/internal/domains/booking/model"
	bookingMocks "stayhub/internal/domains/booking/repository/mocks"
	"stayhub/internal/domains/payment/model"
	"stayhub/internal/domains/payment/model/dto"
	paymentMocks "stayhub/internal/domains/payment/repository/mocks"
	"stayhub/internal/domains/payment/service"
	propertyModel "stayhub/internal/domains/property/model"
	propertyMocks "stayhub/internal/domains/property/repository/mocks"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
)

type paymentServiceFixture struct {
	repo         *paymentMocks.MockPayment
	bookingRepo  *bookingMocks.MockBooking
	propertyRepo *propertyMocks.MockProperty
	cache        *cacheMocks.MockRedisCache
	svc          service.Payment
}

func newPaymentServiceFixture(ctrl *gomock.Controller) *paymentServiceFixture {
	f := &paymentServiceFixture{
		repo:         paymentMocks.NewMockPayment(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		propertyRepo: propertyMocks.NewMockProperty(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.bookingRepo, f.propertyRepo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func testPayment() model.Payment {
	return model.Payment{
		ID:          "payment-id",
		BookingID:   "booking-id",
		Amount:      125000,
		Status:      model.StatusPending,
		Method:      model.MethodPending,
		PaymentDate: timezone.Now(),
	}
}

func paymentBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:         "booking-id",
		PropertyID: "property-id",
		GuestID:    "guest-id",
		Status:     bookingModel.StatusPending,
	}
}

func TestPaymentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPaymentServiceFixture(ctrl)

	tests := []struct {
		name       string
		callerID   string
		callerRole string
		setupMock  func()
		wantErr    bool
		wantCode   int
	}{
		{
			name:       "admin reads any payment",
			callerID:   "admin-id",
			callerRole: "admin",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testPayment(), nil)
			},
			wantErr: false,
		},
		{
			name:       "guest reads own payment",
			callerID:   "guest-id",
			callerRole: "guest",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testPayment(), nil)

				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paymentBooking(), nil)
			},
			wantErr: false,
		},
		{
			name:       "host of the booked property reads the payment",
			callerID:   "host-id",
			callerRole: "host",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testPayment(), nil)

				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paymentBooking(), nil)

				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{ID: "property-id", HostID: "host-id"}, nil)
			},
			wantErr: false,
		},
		{
			name:       "unrelated guest is rejected",
			callerID:   "other-guest-id",
			callerRole: "guest",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testPayment(), nil)

				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paymentBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:       "host of another property is rejected",
			callerID:   "other-host-id",
			callerRole: "host",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testPayment(), nil)

				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paymentBooking(), nil)

				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{ID: "property-id", HostID: "host-id"}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:       "payment not found",
			callerID:   "admin-id",
			callerRole: "admin",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Get(context.Background(), "payment-id", tt.callerID, tt.callerRole)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "payment-id", res.ID)
			}
		})
	}
}

func TestPaymentService_GetByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPaymentServiceFixture(ctrl)

	tests := []struct {
		name       string
		callerID   string
		callerRole string
		setupMock  func()
		wantErr    bool
		wantCode   int
	}{
		{
			name:       "guest reads payment for own booking",
			callerID:   "guest-id",
			callerRole: "guest",
			setupMock: func() {
				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paymentBooking(), nil)

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testPayment(), nil)
			},
			wantErr: false,
		},
		{
			name:       "booking not found",
			callerID:   "guest-id",
			callerRole: "guest",
			setupMock: func() {
				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:       "payment row missing",
			callerID:   "admin-id",
			callerRole: "admin",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.GetByBooking(context.Background(), "booking-id", tt.callerID, tt.callerRole)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-id", res.BookingID)
			}
		})
	}
}

func TestPaymentService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newPaymentServiceFixture(ctrl)

	transactionID := "txn-123"
	method := "credit_card"

	tests := []struct {
		name      string
		req       dto.UpdatePaymentStatusRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful status update",
			req: dto.UpdatePaymentStatusRequest{
				Status:        model.StatusCompleted,
				Method:        &method,
				TransactionID: &transactionID,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])
						assert.NotContains(t, fields, model.FieldPaymentDate)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "refund overwrite",
			req: dto.UpdatePaymentStatusRequest{
				Status: model.StatusRefunded,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "payment not found",
			req: dto.UpdatePaymentStatusRequest{
				Status: model.StatusCompleted,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update failure",
			req: dto.UpdatePaymentStatusRequest{
				Status: model.StatusCompleted,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := f.svc.UpdateStatus(ctx, tt.req, "payment-id")

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
