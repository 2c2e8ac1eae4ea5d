package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelier/infras/otel"
	"hotelier/internal/domains/stats/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stats", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSummary)
	})
}

// GetSummary retrieves aggregate operational statistics.
// @Summary Get operational statistics
// @Description Totals for customers, rooms, bookings and reviews plus average rating, revenue and occupancy.
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Statistics summary"
// @Failure 500 {object} response.Error
// @Router /v1/stats [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get statistics summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Statistics summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
