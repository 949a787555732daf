package get_schedule_buckets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	bucketsUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_schedule_buckets"
)

const (
	msgInvalidPlaceID = "некорректный ID точки обслуживания"
	msgInvalidParams  = "некорректные параметры запроса"
	msgPlaceNotFound  = "точка обслуживания не найдена"
)

type Handler struct {
	useCase BucketsUseCase
	logger  Logger
}

func NewHandler(useCase BucketsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/schedule/buckets
// Query params: category, employeeIds, includeHistory (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	placeIDStr := vars["placeId"]

	placeID, err := strconv.ParseInt(placeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /places/{id}/schedule/buckets - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	req, err := ToUseCaseRequest(
		placeID,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("employeeIds"),
		r.URL.Query().Get("includeHistory"),
	)
	if err != nil {
		h.logger.Warn("GET /places/{id}/schedule/buckets - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bucketsUC.ErrPlaceNotFound):
			h.logger.Warn("GET /places/{id}/schedule/buckets - Place not found: place_id=%d", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, bucketsUC.ErrInvalidInput):
			h.logger.Warn("GET /places/{id}/schedule/buckets - Invalid input: place_id=%d, error=%v", placeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /places/{id}/schedule/buckets - Failed to build buckets: place_id=%d, error=%v",
				placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /places/{id}/schedule/buckets - Buckets built successfully: place_id=%d, buckets=%d",
		placeID, len(result.Buckets))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
