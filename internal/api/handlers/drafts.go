package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
	"trip-planner-service/internal/session"
)

// DraftHandler exposes the mutation surface of a session's trip draft.
// Every mutator returns the updated draft so clients can re-render.
type DraftHandler struct {
	Sessions *session.Registry
	Store    ports.PlanStore
}

func (h *DraftHandler) draft(w http.ResponseWriter, r *http.Request) (string, *domain.TripDraft, bool) {
	id := r.PathValue("id")
	d, ok := h.Sessions.Get(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "session not found")
		return "", nil, false
	}
	return id, d, true
}

func (h *DraftHandler) respond(w http.ResponseWriter, r *http.Request, id string, d *domain.TripDraft) {
	writeJSON(w, r, http.StatusOK, dto.DraftResponse{
		SessionID:      id,
		Plan:           d.Snapshot(),
		ItineraryStale: d.ItineraryStale(),
	})
}

func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := h.Sessions.Start()
	writeJSON(w, r, http.StatusCreated, dto.CreateDraftResponse{SessionID: id})
}

func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	h.respond(w, r, id, d)
}

// Discard abandons the session; the draft is reset and forgotten.
func (h *DraftHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if !h.Sessions.End(r.PathValue("id")) {
		writeError(w, r, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DraftHandler) SetName(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req dto.SetNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d.SetTripName(req.Name)
	h.respond(w, r, id, d)
}

func (h *DraftHandler) SetDates(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req dto.SetDatesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d.SetDateRange(req.StartDate, req.EndDate)
	h.respond(w, r, id, d)
}

func (h *DraftHandler) SetCity(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req dto.SetCityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d.SetCity(req.City)
	h.respond(w, r, id, d)
}

func (h *DraftHandler) SetPeople(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req dto.SetPeopleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d.SetPeople(req.People)
	h.respond(w, r, id, d)
}

func (h *DraftHandler) SetFlight(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req dto.SetFlightRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d.SetFlight(req.Flight)
	h.respond(w, r, id, d)
}

func (h *DraftHandler) SetRoute(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req dto.SetRouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d.SetRoute(req.Route)
	h.respond(w, r, id, d)
}

// SetLodging replaces the lodging for every day at once.
func (h *DraftHandler) SetLodging(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req dto.SetLodgingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d.SetLodging(req.Lodging)
	h.respond(w, r, id, d)
}

func (h *DraftHandler) SetDayLodging(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil || day < 1 {
		writeError(w, r, http.StatusBadRequest, "day must be a positive integer")
		return
	}
	var req domain.Lodging
	if !decodeJSON(w, r, &req) {
		return
	}
	d.SetDayLodging(day, req)
	h.respond(w, r, id, d)
}

func (h *DraftHandler) AddLandmark(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req domain.Landmark
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "landmark name is required")
		return
	}
	d.AddLandmark(req)
	h.respond(w, r, id, d)
}

func (h *DraftHandler) RemoveLandmark(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	d.RemoveLandmark(r.PathValue("landmarkID"))
	h.respond(w, r, id, d)
}

func (h *DraftHandler) AddKeyword(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req dto.KeywordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Keyword) == "" {
		writeError(w, r, http.StatusBadRequest, "keyword is required")
		return
	}
	d.AddKeyword(req.Keyword)
	h.respond(w, r, id, d)
}

func (h *DraftHandler) RemoveKeyword(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	d.RemoveKeyword(r.PathValue("tag"))
	h.respond(w, r, id, d)
}

func (h *DraftHandler) ClearKeywords(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	d.ClearKeywords()
	h.respond(w, r, id, d)
}

// Schedule assigns the draft's landmarks to days and stores the itinerary.
func (h *DraftHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	_, d, ok := h.draft(w, r)
	if !ok {
		return
	}

	res, err := services.ScheduleDraft(r.Context(), d)
	if errors.Is(err, services.ErrMissingDates) {
		writeError(w, r, http.StatusBadRequest, "start_date and end_date are required")
		return
	}
	if err != nil {
		log.Printf("schedule draft failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ScheduleResponse{
		Itinerary:   res.Itinerary,
		Unscheduled: res.Unscheduled,
	})
}

// Finalize persists the draft for a user and ends the session.
func (h *DraftHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, d, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req dto.FinalizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	saved, err := services.FinalizeDraft(r.Context(), d, h.Store, req.UserID)
	if errors.Is(err, services.ErrMissingUserID) {
		writeError(w, r, http.StatusBadRequest, "user_id is required")
		return
	}
	if err != nil {
		log.Printf("finalize draft failed: session=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Sessions.End(id)
	writeJSON(w, r, http.StatusCreated, saved)
}
