package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tourmate/tourmate/internal/api/response"
	"github.com/tourmate/tourmate/internal/services/catalog"
)

// PlaceHandler handles place catalog endpoints
type PlaceHandler struct {
	catalogService *catalog.Service
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(catalogService *catalog.Service) *PlaceHandler {
	return &PlaceHandler{
		catalogService: catalogService,
	}
}

// List handles GET /api/v1/places with an optional category filter
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		response.JSON(w, http.StatusOK, h.catalogService.PlacesByCategory(category))
		return
	}
	response.JSON(w, http.StatusOK, h.catalogService.Places())
}

// Markers handles GET /api/v1/places/markers
func (h *PlaceHandler) Markers(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.catalogService.Markers())
}

// Courses handles GET /api/v1/courses
func (h *PlaceHandler) Courses(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.catalogService.Courses())
}

// Course handles GET /api/v1/courses/{name}
func (h *PlaceHandler) Course(w http.ResponseWriter, r *http.Request) {
	course, err := h.catalogService.Course(mux.Vars(r)["name"])
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, course)
}
