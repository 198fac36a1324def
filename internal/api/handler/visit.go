package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tourmate/tourmate/internal/api/middleware"
	"github.com/tourmate/tourmate/internal/api/request"
	"github.com/tourmate/tourmate/internal/api/response"
	"github.com/tourmate/tourmate/internal/model"
	"github.com/tourmate/tourmate/internal/services/ledger"
	"github.com/tourmate/tourmate/internal/services/leveling"
)

// VisitHandler handles visit-ledger endpoints
type VisitHandler struct {
	ledgerService   *ledger.Service
	levelingService *leveling.Service
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(ledgerService *ledger.Service, levelingService *leveling.Service) *VisitHandler {
	return &VisitHandler{
		ledgerService:   ledgerService,
		levelingService: levelingService,
	}
}

// Record handles POST /api/v1/visits
func (h *VisitHandler) Record(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.RecordVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlaceName == "" {
		WriteError(w, NewInvalidRequestError("place_name is required"))
		return
	}

	result, err := h.ledgerService.RecordVisit(r.Context(), session.Username, req.PlaceName, req.Latitude, req.Longitude)
	if err != nil {
		WriteError(w, err)
		return
	}

	xp, err := h.ledgerService.CumulativeXP(r.Context(), session.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	status := http.StatusCreated
	if !result.Accepted {
		status = http.StatusOK // duplicate is a normal outcome, nothing created
	}

	response.JSON(w, status, response.RecordVisitResponse{
		Accepted: result.Accepted,
		XPGained: result.XPGained,
		Level:    h.levelingService.Summarize(xp),
	})
}

// List handles GET /api/v1/visits with an optional sort query parameter
func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var visits []model.Visit
	var err error
	switch r.URL.Query().Get("sort") {
	case "", "recent":
		visits, err = h.ledgerService.VisitsByRecency(r.Context(), session.Username)
	case "xp":
		visits, err = h.ledgerService.VisitsByXP(r.Context(), session.Username)
	default:
		WriteError(w, NewInvalidRequestError("sort must be recent or xp"))
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VisitsFromModel(visits))
}

// Stats handles GET /api/v1/visits/stats
func (h *VisitHandler) Stats(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	stats, err := h.ledgerService.GetStats(r.Context(), session.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	xp, err := h.ledgerService.CumulativeXP(r.Context(), session.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsResponse{
		Stats: *stats,
		Level: h.levelingService.Summarize(xp),
	})
}

// Rate handles PATCH /api/v1/visits/{index}/rating
func (h *VisitHandler) Rate(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("index must be an integer"))
		return
	}

	var req request.RateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.ledgerService.RateVisit(r.Context(), session.Username, index, req.Rating); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
