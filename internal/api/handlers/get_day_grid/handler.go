package get_day_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	gridUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_grid"
)

const (
	msgInvalidPlaceID = "некорректный ID точки обслуживания"
	msgInvalidParams  = "некорректные параметры запроса"
	msgPlaceNotFound  = "точка обслуживания не найдена"
)

type Handler struct {
	useCase GridUseCase
	logger  Logger
}

func NewHandler(useCase GridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/schedule/day
// Query params: date (обязательный, YYYY-MM-DD), employeeIds (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	placeIDStr := vars["placeId"]

	placeID, err := strconv.ParseInt(placeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /places/{id}/schedule/day - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	req, err := ToUseCaseRequest(placeID, r.URL.Query().Get("date"), r.URL.Query().Get("employeeIds"))
	if err != nil {
		h.logger.Warn("GET /places/{id}/schedule/day - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, gridUC.ErrPlaceNotFound):
			h.logger.Warn("GET /places/{id}/schedule/day - Place not found: place_id=%d", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, gridUC.ErrInvalidInput):
			h.logger.Warn("GET /places/{id}/schedule/day - Invalid input: place_id=%d, error=%v", placeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /places/{id}/schedule/day - Failed to build grid: place_id=%d, error=%v",
				placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /places/{id}/schedule/day - Grid built successfully: place_id=%d, positions=%d",
		placeID, len(result.Positions))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
