package api

import (
	"net/http"
	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/session"

	"github.com/rs/cors"
)

type Deps struct {
	Sessions       *session.Registry
	Store          ports.PlanStore
	Places         ports.PlaceProvider
	PlaceCache     ports.PlaceCache
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Sessions: deps.Sessions}
	draftHandler := &handlers.DraftHandler{Sessions: deps.Sessions, Store: deps.Store}
	planHandler := &handlers.PlanHandler{Store: deps.Store}
	placeHandler := &handlers.PlaceHandler{Provider: deps.Places, Cache: deps.PlaceCache}

	mux.HandleFunc("/health", healthHandler.Health)

	mux.HandleFunc("POST /drafts", draftHandler.Create)
	mux.HandleFunc("GET /drafts/{id}", draftHandler.Get)
	mux.HandleFunc("DELETE /drafts/{id}", draftHandler.Discard)
	mux.HandleFunc("PUT /drafts/{id}/name", draftHandler.SetName)
	mux.HandleFunc("PUT /drafts/{id}/dates", draftHandler.SetDates)
	mux.HandleFunc("PUT /drafts/{id}/city", draftHandler.SetCity)
	mux.HandleFunc("PUT /drafts/{id}/people", draftHandler.SetPeople)
	mux.HandleFunc("PUT /drafts/{id}/flight", draftHandler.SetFlight)
	mux.HandleFunc("PUT /drafts/{id}/route", draftHandler.SetRoute)
	mux.HandleFunc("PUT /drafts/{id}/lodging", draftHandler.SetLodging)
	mux.HandleFunc("PUT /drafts/{id}/lodging/{day}", draftHandler.SetDayLodging)
	mux.HandleFunc("POST /drafts/{id}/landmarks", draftHandler.AddLandmark)
	mux.HandleFunc("DELETE /drafts/{id}/landmarks/{landmarkID}", draftHandler.RemoveLandmark)
	mux.HandleFunc("POST /drafts/{id}/keywords", draftHandler.AddKeyword)
	mux.HandleFunc("DELETE /drafts/{id}/keywords", draftHandler.ClearKeywords)
	mux.HandleFunc("DELETE /drafts/{id}/keywords/{tag}", draftHandler.RemoveKeyword)
	mux.HandleFunc("POST /drafts/{id}/schedule", draftHandler.Schedule)
	mux.HandleFunc("POST /drafts/{id}/finalize", draftHandler.Finalize)

	mux.HandleFunc("GET /plans", planHandler.List)
	mux.HandleFunc("GET /plans/{id}", planHandler.Get)

	mux.HandleFunc("GET /places", placeHandler.Search)
	mux.HandleFunc("POST /cities/recommend", placeHandler.RecommendCities)

	c := cors.New(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	})

	return requestIDMiddleware(loggingMiddleware(c.Handler(mux)))
}
