// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"hotelops/config"
	"hotelops/infras/jwt"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/infras/redis"
	"hotelops/infras/s3"
	"hotelops/internal/domains/auth/service"
	repository3 "hotelops/internal/domains/booking/repository"
	service4 "hotelops/internal/domains/booking/service"
	repository5 "hotelops/internal/domains/checkout/repository"
	service6 "hotelops/internal/domains/checkout/service"
	repository4 "hotelops/internal/domains/payment/repository"
	service5 "hotelops/internal/domains/payment/service"
	repository2 "hotelops/internal/domains/room/repository"
	service3 "hotelops/internal/domains/room/service"
	"hotelops/internal/domains/user/repository"
	service2 "hotelops/internal/domains/user/service"
	"hotelops/internal/handlers/auth"
	"hotelops/internal/handlers/booking"
	"hotelops/internal/handlers/checkout"
	"hotelops/internal/handlers/health"
	"hotelops/internal/handlers/payment"
	"hotelops/internal/handlers/room"
	"hotelops/internal/handlers/user"
	"hotelops/permissions"
	"hotelops/shared/cache"
	"hotelops/transport/http"
	"hotelops/transport/http/middleware"
	"hotelops/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryRoom := repository2.New(connection, otelOtel)
	roomType := repository2.NewRoomType(connection, otelOtel)
	roomImage := repository2.NewRoomImage(connection, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	bookingRoom := repository3.NewBookingRoom(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceRoom := service3.New(repositoryRoom, roomType, roomImage, repositoryBooking, bookingRoom, configConfig, redisCache, otelOtel, s3S3, kafkaClient)
	roomHandler := room.New(serviceRoom, otelOtel)
	paymentHold := repository4.New(connection, otelOtel)
	settlement := repository5.New(connection, otelOtel)
	serviceBooking := service4.New(repositoryBooking, repositoryRoom, roomType, bookingRoom, paymentHold, settlement, connection, configConfig, redisCache, otelOtel, kafkaClient)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	servicePayment := service5.New(paymentHold, configConfig, otelOtel)
	paymentHandler := payment.New(servicePayment, otelOtel)
	serviceCharge := repository5.NewServiceCharge(connection, otelOtel)
	paymentMethod := repository5.NewPaymentMethod(connection, otelOtel)
	serviceCheckout := service6.New(settlement, serviceCharge, paymentMethod, repositoryBooking, bookingRoom, repositoryRoom, connection, configConfig, redisCache, otelOtel, kafkaClient)
	checkoutHandler := checkout.New(serviceCheckout, otelOtel)
	healthHandler := health.New(connection, client)
	domainHandlers := router.DomainHandlers{
		Auth:     handler,
		User:     userHandler,
		Room:     roomHandler,
		Booking:  bookingHandler,
		Payment:  paymentHandler,
		Checkout: checkoutHandler,
		Health:   healthHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole)
	return httpHTTP
}

// InitializeApp builds the HTTP server together with the payment-hold
// expirer so both share the same dependency graph.
func InitializeApp() *App {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryRoom := repository2.New(connection, otelOtel)
	roomType := repository2.NewRoomType(connection, otelOtel)
	roomImage := repository2.NewRoomImage(connection, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	bookingRoom := repository3.NewBookingRoom(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceRoom := service3.New(repositoryRoom, roomType, roomImage, repositoryBooking, bookingRoom, configConfig, redisCache, otelOtel, s3S3, kafkaClient)
	roomHandler := room.New(serviceRoom, otelOtel)
	paymentHold := repository4.New(connection, otelOtel)
	settlement := repository5.New(connection, otelOtel)
	serviceBooking := service4.New(repositoryBooking, repositoryRoom, roomType, bookingRoom, paymentHold, settlement, connection, configConfig, redisCache, otelOtel, kafkaClient)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	servicePayment := service5.New(paymentHold, configConfig, otelOtel)
	paymentHandler := payment.New(servicePayment, otelOtel)
	serviceCharge := repository5.NewServiceCharge(connection, otelOtel)
	paymentMethod := repository5.NewPaymentMethod(connection, otelOtel)
	serviceCheckout := service6.New(settlement, serviceCharge, paymentMethod, repositoryBooking, bookingRoom, repositoryRoom, connection, configConfig, redisCache, otelOtel, kafkaClient)
	checkoutHandler := checkout.New(serviceCheckout, otelOtel)
	healthHandler := health.New(connection, client)
	domainHandlers := router.DomainHandlers{
		Auth:     handler,
		User:     userHandler,
		Room:     roomHandler,
		Booking:  bookingHandler,
		Payment:  paymentHandler,
		Checkout: checkoutHandler,
		Health:   healthHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole)
	expirer := service4.NewExpirer(serviceBooking, configConfig)
	app := NewApp(httpHTTP, expirer)
	return app
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)), otel.New, redis.New, jwt.New, kafka.New, s3.New, permissions.Get)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var authDomain = wire.NewSet(service.New)

var userDomain = wire.NewSet(repository.New, service2.New)

var roomDomain = wire.NewSet(repository2.New, repository2.NewRoomType, repository2.NewRoomImage, service3.New)

var bookingDomain = wire.NewSet(repository3.New, repository3.NewBookingRoom, service4.New)

var paymentDomain = wire.NewSet(repository4.New, service5.New)

var checkoutDomain = wire.NewSet(repository5.New, repository5.NewServiceCharge, repository5.NewPaymentMethod, service6.New)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	checkoutDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, room.New, booking.New, payment.New, checkout.New, health.New, router.New)
