package dto

import "trip-planner-service/internal/domain"

type ListPlansResponse struct {
	Plans []domain.SavedPlan `json:"plans"`
}

type PlacesResponse struct {
	Places []domain.Landmark `json:"places"`
}

type RecommendCitiesRequest struct {
	Keywords []string `json:"keywords"`
}

type CitiesResponse struct {
	Cities []domain.City `json:"cities"`
}
