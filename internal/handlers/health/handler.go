package health

import (
	"net/http"
	"hotelops/infras/postgres"
	"hotelops/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports liveness of the service and its backing stores.
// @Summary Health check
// @Description Ping the database and cache and report overall service health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service is healthy"
// @Failure 503 {object} response.Error
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("database read connection is unhealthy")

		response.WithMessage(w, http.StatusServiceUnavailable, "database is unreachable")

		return
	}

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("database write connection is unhealthy")

		response.WithMessage(w, http.StatusServiceUnavailable, "database is unreachable")

		return
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("redis connection is unhealthy")

		response.WithMessage(w, http.StatusServiceUnavailable, "cache is unreachable")

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
