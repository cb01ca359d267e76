package handlers

import (
	"log"
	"net/http"
	"strings"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// PlaceHandler proxies the recommendation service for landmark and city picks.
type PlaceHandler struct {
	Provider ports.PlaceProvider
	Cache    ports.PlaceCache
}

func (h *PlaceHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "query is required")
		return
	}

	places, err := services.SearchLandmarks(r.Context(), h.Provider, h.Cache, query)
	if err != nil {
		log.Printf("search places failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "places service unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlacesResponse{Places: places})
}

func (h *PlaceHandler) RecommendCities(w http.ResponseWriter, r *http.Request) {
	var req dto.RecommendCitiesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cities, err := h.Provider.RecommendCities(r.Context(), req.Keywords)
	if err != nil {
		log.Printf("recommend cities failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "recommendation service unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CitiesResponse{Cities: cities})
}
