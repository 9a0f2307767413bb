package di

import (
	bookingService "hotelops/internal/domains/booking/service"
	"hotelops/transport/http"
)

// App bundles the HTTP server with the background workers that share its
// dependency graph.
type App struct {
	HTTP    *http.HTTP
	Expirer *bookingService.Expirer
}

func NewApp(h *http.HTTP, expirer *bookingService.Expirer) *App {
	return &App{
		HTTP:    h,
		Expirer: expirer,
	}
}
