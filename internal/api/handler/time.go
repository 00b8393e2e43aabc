package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/timestamper/internal/api/request"
	"github.com/mcoot/timestamper/internal/api/response"
	"github.com/mcoot/timestamper/internal/model"
	"github.com/mcoot/timestamper/internal/services/timestamp"
)

// TimeHandler handles time endpoints
type TimeHandler struct {
	service *timestamp.Service
}

// NewTimeHandler creates a new time handler
func NewTimeHandler(service *timestamp.Service) *TimeHandler {
	return &TimeHandler{service: service}
}

// playerFromQuery returns the ?player= handle, or nil when absent
func playerFromQuery(r *http.Request) model.PlayerHandle {
	if name := r.URL.Query().Get("player"); name != "" {
		return model.Player(name)
	}
	return nil
}

// Now handles GET /api/v1/time
func (h *TimeHandler) Now(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.GetTime())
}

// List handles GET /api/v1/times
func (h *TimeHandler) List(w http.ResponseWriter, r *http.Request) {
	records := h.service.ListTimes(r.Context())

	times := make([]response.TimeRecord, 0, len(records))
	for _, rec := range records {
		times = append(times, response.TimeRecordFromModel(rec))
	}

	response.JSON(w, http.StatusOK, response.TimeListResponse{
		Objective: h.service.Objective(),
		Times:     times,
	})
}

// Save handles PUT /api/v1/times/{identifier}
func (h *TimeHandler) Save(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	if err := h.service.SaveTime(r.Context(), identifier, playerFromQuery(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Load handles GET /api/v1/times/{identifier}
func (h *TimeHandler) Load(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	item, ok := h.service.LoadTime(r.Context(), identifier, playerFromQuery(r))
	if !ok {
		WriteError(w, model.ErrTimeNotFound)
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// Compare handles POST /api/v1/compare
func (h *TimeHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req request.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	unit, err := model.ParseTimeUnit(req.Unit)
	if err != nil {
		WriteError(w, err)
		return
	}

	diff, err := h.service.CompareTimes(req.A, req.B, unit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompareResponse{
		Unit:       string(unit),
		Difference: diff,
	})
}
