package get_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/bookings"
)

const (
	msgInvalidPlaceID = "некорректный ID точки обслуживания"
	msgInvalidParams  = "некорректные параметры запроса"
	msgPlaceNotFound  = "точка обслуживания не найдена"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/bookings
// Query params: category, employeeIds, upcoming (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем placeId из URL
	vars := mux.Vars(r)
	placeIDStr := vars["placeId"]

	placeID, err := strconv.ParseInt(placeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /places/{id}/bookings - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	// Формируем запрос к сервису из query параметров
	serviceReq, err := ToServiceRequest(
		placeID,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("employeeIds"),
		r.URL.Query().Get("upcoming"),
	)
	if err != nil {
		h.logger.Warn("GET /places/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrPlaceNotFound):
			h.logger.Warn("GET /places/{id}/bookings - Place not found: place_id=%d", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /places/{id}/bookings - Invalid input: place_id=%d, error=%v", placeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /places/{id}/bookings - Failed to get bookings: place_id=%d, error=%v",
				placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /places/{id}/bookings - Bookings retrieved successfully: place_id=%d, count=%d",
		placeID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
