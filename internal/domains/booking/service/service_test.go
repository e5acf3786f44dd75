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
	bookingMocks "stayhub/internal/domains/booking/repository/mocks"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/service"
	paymentModel "stayhub/internal/domains/payment/model"
	paymentMocks "stayhub/internal/domains/payment/repository/mocks"
	propertyModel "stayhub/internal/domains/property/model"
	propertyMocks "stayhub/internal/domains/property/repository/mocks"
	kafkaMocks "stayhub/infras/kafka/mocks"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/failure"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

type bookingServiceFixture struct {
	repo         *bookingMocks.MockBooking
	propertyRepo *propertyMocks.MockProperty
	paymentRepo  *paymentMocks.MockPayment
	cache        *cacheMocks.MockRedisCache
	kafka        *kafkaMocks.MockClient
	svc          service.Booking
}

func newBookingServiceFixture(ctrl *gomock.Controller) *bookingServiceFixture {
	f := &bookingServiceFixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		propertyRepo: propertyMocks.NewMockProperty(ctrl),
		paymentRepo:  paymentMocks.NewMockPayment(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingEvents = "booking.events"

	f.svc = service.New(f.repo, f.propertyRepo, f.paymentRepo, cfg, f.cache, mocks.NewOtel(), f.kafka)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func approvedProperty() propertyModel.Property {
	return propertyModel.Property{
		ID:            "property-id",
		HostID:        "host-id",
		Title:         "Seaside Villa",
		PricePerNight: 25000,
		MaxGuests:     4,
		Approved:      true,
		Active:        true,
	}
}

func pendingBooking() model.Booking {
	return model.Booking{
		ID:         "booking-id",
		PropertyID: "property-id",
		GuestID:    "guest-id",
		GuestCount: 2,
		TotalPrice: 125000,
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "guest-id",
			ModifiedBy: "guest-id",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(ctrl)

	validReq := dto.CreateBookingRequest{
		PropertyID: "property-id",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-06",
		GuestCount: 2,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation derives price from nights",
			req:  validReq,
			setupMock: func() {
				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedProperty(), nil)

				f.repo.EXPECT().
					InsertWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking, payment paymentModel.Payment) error {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, float64(125000), booking.TotalPrice)
						assert.Equal(t, booking.ID, payment.BookingID)
						assert.Equal(t, booking.TotalPrice, payment.Amount)
						assert.Equal(t, paymentModel.StatusPending, payment.Status)
						assert.Equal(t, paymentModel.MethodPending, payment.Method)
						assert.False(t, payment.PaymentDate.IsZero())

						return nil
					})

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "property not found",
			req:  validReq,
			setupMock: func() {
				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "unapproved property treated as absent",
			req:  validReq,
			setupMock: func() {
				property := approvedProperty()
				property.Approved = false

				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(property, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "inactive property treated as absent",
			req:  validReq,
			setupMock: func() {
				property := approvedProperty()
				property.Active = false

				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(property, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "end date not after start date",
			req: dto.CreateBookingRequest{
				PropertyID: "property-id",
				StartDate:  "2026-09-06",
				EndDate:    "2026-09-06",
				GuestCount: 2,
			},
			setupMock: func() {
				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "malformed start date",
			req: dto.CreateBookingRequest{
				PropertyID: "property-id",
				StartDate:  "01-09-2026",
				EndDate:    "2026-09-06",
				GuestCount: 2,
			},
			setupMock: func() {
				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "guest count exceeds property capacity",
			req: dto.CreateBookingRequest{
				PropertyID: "property-id",
				StartDate:  "2026-09-01",
				EndDate:    "2026-09-06",
				GuestCount: 5,
			},
			setupMock: func() {
				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert failure",
			req:  validReq,
			setupMock: func() {
				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedProperty(), nil)

				f.repo.EXPECT().
					InsertWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "broker failure does not fail the booking",
			req:  validReq,
			setupMock: func() {
				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedProperty(), nil)

				f.repo.EXPECT().
					InsertWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(context.Background(), tt.req, "guest-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "guest-id", res.GuestID)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.Equal(t, float64(125000), res.TotalPrice)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(ctrl)

	payment := paymentModel.Payment{
		ID:        "payment-id",
		BookingID: "booking-id",
		Amount:    125000,
		Status:    paymentModel.StatusPending,
	}

	tests := []struct {
		name      string
		callerID  string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:     "guest cancels own booking and payment is refunded",
			callerID: "guest-id",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})

				f.paymentRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				f.paymentRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, paymentModel.StatusRefunded, fields[paymentModel.FieldStatus])

						return nil
					})

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:     "booking not found",
			callerID: "guest-id",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "non-guest caller is rejected",
			callerID: "someone-else",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "missing payment row does not fail the cancellation",
			callerID: "guest-id",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.paymentRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paymentModel.Payment{}, nil)

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:     "refund failure does not fail the cancellation",
			callerID: "guest-id",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.paymentRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				f.paymentRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:     "status update failure",
			callerID: "guest-id",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

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

			err := f.svc.Cancel(context.Background(), "booking-id", tt.callerID)

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

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(ctrl)

	tests := []struct {
		name       string
		status     string
		callerID   string
		callerRole string
		setupMock  func()
		wantErr    bool
		wantCode   int
	}{
		{
			name:       "admin may set any status",
			status:     model.StatusConfirmed,
			callerID:   "admin-id",
			callerRole: "admin",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "host of the property may update",
			status:     model.StatusConfirmed,
			callerID:   "host-id",
			callerRole: "host",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedProperty(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "host of another property is rejected",
			status:     model.StatusConfirmed,
			callerID:   "other-host-id",
			callerRole: "host",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				f.propertyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:       "guest may not update status",
			status:     model.StatusConfirmed,
			callerID:   "guest-id",
			callerRole: "guest",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:       "unknown status is rejected",
			status:     "archived",
			callerID:   "admin-id",
			callerRole: "admin",
			setupMock:  func() {},
			wantErr:    true,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "completed booking can still be reopened",
			status:     model.StatusConfirmed,
			callerID:   "admin-id",
			callerRole: "admin",
			setupMock: func() {
				booking := pendingBooking()
				booking.Status = model.StatusCompleted

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "booking not found",
			status:     model.StatusConfirmed,
			callerID:   "admin-id",
			callerRole: "admin",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:       "update failure",
			status:     model.StatusConfirmed,
			callerID:   "admin-id",
			callerRole: "admin",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

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

			req := dto.UpdateBookingStatusRequest{Status: tt.status}
			err := f.svc.UpdateStatus(context.Background(), req, "booking-id", tt.callerID, tt.callerRole)

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

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(ctrl)

	tests := []struct {
		name       string
		callerID   string
		callerRole string
		setupMock  func()
		wantErr    bool
		wantCode   int
	}{
		{
			name:       "guest reads own booking",
			callerID:   "guest-id",
			callerRole: "guest",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr: false,
		},
		{
			name:       "guest may not read another guest's booking",
			callerID:   "other-guest-id",
			callerRole: "guest",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:       "admin reads any booking",
			callerID:   "admin-id",
			callerRole: "admin",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)
			},
			wantErr: false,
		},
		{
			name:       "booking not found",
			callerID:   "guest-id",
			callerRole: "guest",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:       "cache hit still enforces ownership",
			callerID:   "other-guest-id",
			callerRole: "guest",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res := value.(*dto.BookingResponse)
						res.FromModel(pendingBooking())

						return nil
					})
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Get(context.Background(), "booking-id", tt.callerID, tt.callerRole)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-id", res.ID)
			}
		})
	}
}

func TestBookingService_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("lists only the guest's bookings", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				assert.Len(t, filter.Filters, 1)

				return 1, nil
			})

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{pendingBooking()}, nil)

		res, err := f.svc.GetMine(context.Background(), params, "guest-id")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "guest-id", res.Bookings[0].GuestID)
	})

	t.Run("count failure", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := f.svc.GetMine(context.Background(), params, "guest-id")

		assert.Error(t, err)
	})
}

func TestBookingService_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingServiceFixture(ctrl)
	ctx := context.Background()

	var stored model.Booking

	f.propertyRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(approvedProperty(), nil)

	f.repo.EXPECT().
		InsertWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking, _ paymentModel.Payment) error {
			stored = booking

			return nil
		})

	f.kafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(3)

	created, err := f.svc.Create(ctx, dto.CreateBookingRequest{
		PropertyID: "property-id",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-06",
		GuestCount: 2,
	}, "guest-id")

	assert.NoError(t, err)
	assert.Equal(t, float64(125000), created.TotalPrice)
	assert.Equal(t, model.StatusPending, created.Status)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(stored, nil)

	f.propertyRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(approvedProperty(), nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			status, _ := fields[model.FieldStatus].(string)
			stored.Status = status

			return nil
		})

	err = f.svc.UpdateStatus(ctx, dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed}, stored.ID, "host-id", "host")

	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, stored.Status)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(stored, nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

			return nil
		})

	f.paymentRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(paymentModel.Payment{
			ID:        "payment-id",
			BookingID: stored.ID,
			Amount:    stored.TotalPrice,
			Status:    paymentModel.StatusCompleted,
		}, nil)

	f.paymentRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, paymentModel.StatusRefunded, fields[paymentModel.FieldStatus])
			assert.NotContains(t, fields, paymentModel.FieldPaymentDate)

			return nil
		})

	err = f.svc.Cancel(ctx, stored.ID, "guest-id")

	assert.NoError(t, err)
}
