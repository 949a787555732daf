package get_month_markers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	markersUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_month_markers"
)

const (
	msgInvalidPlaceID = "некорректный ID точки обслуживания"
	msgInvalidParams  = "некорректные параметры запроса"
	msgPlaceNotFound  = "точка обслуживания не найдена"
)

type Handler struct {
	useCase MarkersUseCase
	logger  Logger
}

func NewHandler(useCase MarkersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/schedule/month
// Query params: month (обязательный, YYYY-MM), selectedDate, employeeIds (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	placeIDStr := vars["placeId"]

	placeID, err := strconv.ParseInt(placeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /places/{id}/schedule/month - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	req, err := ToUseCaseRequest(
		placeID,
		r.URL.Query().Get("month"),
		r.URL.Query().Get("selectedDate"),
		r.URL.Query().Get("employeeIds"),
	)
	if err != nil {
		h.logger.Warn("GET /places/{id}/schedule/month - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, markersUC.ErrPlaceNotFound):
			h.logger.Warn("GET /places/{id}/schedule/month - Place not found: place_id=%d", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, markersUC.ErrInvalidInput):
			h.logger.Warn("GET /places/{id}/schedule/month - Invalid input: place_id=%d, error=%v", placeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /places/{id}/schedule/month - Failed to aggregate markers: place_id=%d, error=%v",
				placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /places/{id}/schedule/month - Markers aggregated successfully: place_id=%d, dates=%d",
		placeID, len(result.Markers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
