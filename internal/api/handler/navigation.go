package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tourmate/tourmate/internal/api/request"
	"github.com/tourmate/tourmate/internal/api/response"
	"github.com/tourmate/tourmate/internal/model"
	"github.com/tourmate/tourmate/internal/services/catalog"
	"github.com/tourmate/tourmate/internal/services/navigation"
)

// NavigationHandler handles route estimate endpoints
type NavigationHandler struct {
	navigationService *navigation.Service
	catalogService    *catalog.Service
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navigationService *navigation.Service, catalogService *catalog.Service) *NavigationHandler {
	return &NavigationHandler{
		navigationService: navigationService,
		catalogService:    catalogService,
	}
}

// Estimate handles POST /api/v1/routes/estimate
func (h *NavigationHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req request.EstimateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	mode, err := model.ParseTransportMode(req.Mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	dest := model.Place{
		Title:     "목적지",
		Latitude:  req.DestLat,
		Longitude: req.DestLng,
	}
	if req.DestPlace != "" {
		place, ok := h.catalogService.Place(req.DestPlace)
		if !ok {
			WriteError(w, NewInvalidRequestError("dest_place is not in the catalog"))
			return
		}
		dest = place
	}

	route, err := h.navigationService.BuildRoute(req.OriginLat, req.OriginLng, dest, mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, route)
}
