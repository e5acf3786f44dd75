//go:build wireinject
// +build wireinject

package di

import (
	"stayhub/config"
	"stayhub/infras/jwt"
	"stayhub/infras/kafka"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/infras/redis"
	"stayhub/infras/s3"
	"stayhub/permissions"
	"stayhub/shared/cache"
	"stayhub/transport/http"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/router"

	"github.com/google/wire"

	authService "stayhub/internal/domains/auth/service"
	bookingRepository "stayhub/internal/domains/booking/repository"
	bookingService "stayhub/internal/domains/booking/service"
	paymentRepository "stayhub/internal/domains/payment/repository"
	paymentService "stayhub/internal/domains/payment/service"
	propertyRepository "stayhub/internal/domains/property/repository"
	propertyService "stayhub/internal/domains/property/service"
	reviewRepository "stayhub/internal/domains/review/repository"
	reviewService "stayhub/internal/domains/review/service"
	userRepository "stayhub/internal/domains/user/repository"
	userService "stayhub/internal/domains/user/service"

	authHandler "stayhub/internal/handlers/auth"
	bookingHandler "stayhub/internal/handlers/booking"
	paymentHandler "stayhub/internal/handlers/payment"
	propertyHandler "stayhub/internal/handlers/property"
	reviewHandler "stayhub/internal/handlers/review"
	userHandler "stayhub/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	propertyDomain,
	bookingDomain,
	paymentDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	propertyHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	reviewHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
