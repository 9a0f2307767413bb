//go:build wireinject
// +build wireinject

package di

import (
	"hotelops/config"
	"hotelops/infras/jwt"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/infras/redis"
	"hotelops/infras/s3"
	"hotelops/permissions"
	"hotelops/shared/cache"
	"hotelops/transport/http"
	"hotelops/transport/http/middleware"
	"hotelops/transport/http/router"

	"github.com/google/wire"

	authService "hotelops/internal/domains/auth/service"
	bookingRepository "hotelops/internal/domains/booking/repository"
	bookingService "hotelops/internal/domains/booking/service"
	checkoutRepository "hotelops/internal/domains/checkout/repository"
	checkoutService "hotelops/internal/domains/checkout/service"
	paymentRepository "hotelops/internal/domains/payment/repository"
	paymentService "hotelops/internal/domains/payment/service"
	roomRepository "hotelops/internal/domains/room/repository"
	roomService "hotelops/internal/domains/room/service"
	userRepository "hotelops/internal/domains/user/repository"
	userService "hotelops/internal/domains/user/service"

	authHandler "hotelops/internal/handlers/auth"
	bookingHandler "hotelops/internal/handlers/booking"
	checkoutHandler "hotelops/internal/handlers/checkout"
	healthHandler "hotelops/internal/handlers/health"
	paymentHandler "hotelops/internal/handlers/payment"
	roomHandler "hotelops/internal/handlers/room"
	userHandler "hotelops/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	permissions.Get,
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

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewRoomType,
	roomRepository.NewRoomImage,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewBookingRoom,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var checkoutDomain = wire.NewSet(
	checkoutRepository.New,
	checkoutRepository.NewServiceCharge,
	checkoutRepository.NewPaymentMethod,
	checkoutService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	checkoutDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	checkoutHandler.New,
	healthHandler.New,
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

// InitializeApp builds the HTTP server together with the payment-hold
// expirer so both share the same dependency graph.
func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		bookingService.NewExpirer,
		NewApp,
	)

	return &App{}
}
