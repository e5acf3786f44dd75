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
	"stayhub/internal/domains/review/model"
	"stayhub/internal/domains/review/model/dto"
	reviewMocks "stayhub/internal/domains/review/repository/mocks"
	"stayhub/internal/domains/review/service"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
)

type reviewServiceFixture struct {
	repo        *reviewMocks.MockReview
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	svc         service.Review
}

func newReviewServiceFixture(ctrl *gomock.Controller) *reviewServiceFixture {
	f := &reviewServiceFixture{
		repo:        reviewMocks.NewMockReview(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.bookingRepo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func completedBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:         "booking-id",
		PropertyID: "property-id",
		GuestID:    "guest-id",
		Status:     bookingModel.StatusCompleted,
	}
}

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReviewServiceFixture(ctrl)

	req := dto.CreateReviewRequest{
		BookingID: "booking-id",
		Rating:    5,
	}

	tests := []struct {
		name      string
		guestID   string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "successful review",
			guestID: "guest-id",
			setupMock: func() {
				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) error {
						assert.Equal(t, "booking-id", review.BookingID)
						assert.Equal(t, "property-id", review.PropertyID)
						assert.Equal(t, "guest-id", review.GuestID)
						assert.Equal(t, 5, review.Rating)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:    "booking not found",
			guestID: "guest-id",
			setupMock: func() {
				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:    "caller is not the booking guest",
			guestID: "other-guest-id",
			setupMock: func() {
				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:    "booking not completed",
			guestID: "guest-id",
			setupMock: func() {
				booking := completedBooking()
				booking.Status = bookingModel.StatusConfirmed

				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "booking already reviewed",
			guestID: "guest-id",
			setupMock: func() {
				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:    "insert failure",
			guestID: "guest-id",
			setupMock: func() {
				f.bookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

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

			res, err := f.svc.Create(context.Background(), req, tt.guestID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-id", res.BookingID)
				assert.Equal(t, 5, res.Rating)
			}
		})
	}
}

func TestReviewService_GetByProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReviewServiceFixture(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("lists reviews for a property", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Review{
				{
					ID:         "review-id",
					BookingID:  "booking-id",
					PropertyID: "property-id",
					GuestID:    "guest-id",
					Rating:     4,
				},
			}, nil)

		res, err := f.svc.GetByProperty(context.Background(), params, "property-id")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Reviews, 1)
		assert.Equal(t, "property-id", res.Reviews[0].PropertyID)
	})

	t.Run("count failure", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := f.svc.GetByProperty(context.Background(), params, "property-id")

		assert.Error(t, err)
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReviewServiceFixture(ctrl)

	review := model.Review{
		ID:         "review-id",
		BookingID:  "booking-id",
		PropertyID: "property-id",
		GuestID:    "guest-id",
		Rating:     4,
	}

	tests := []struct {
		name       string
		callerID   string
		callerRole string
		setupMock  func()
		wantErr    bool
		wantCode   int
	}{
		{
			name:       "author deletes own review",
			callerID:   "guest-id",
			callerRole: constant.RoleGuest,
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(review, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "admin deletes any review",
			callerID:   "admin-id",
			callerRole: constant.RoleAdmin,
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(review, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "non-author is rejected",
			callerID:   "other-guest-id",
			callerRole: constant.RoleGuest,
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(review, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:       "review not found",
			callerID:   "guest-id",
			callerRole: constant.RoleGuest,
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Delete(context.Background(), "review-id", tt.callerID, tt.callerRole)

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
