package session

import (
	"testing"
	"trip-planner-service/internal/domain"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	id, draft := r.Start()
	if id == "" {
		t.Fatalf("expected session id")
	}

	draft.SetTripName("Tokyo")
	got, ok := r.Get(id)
	if !ok || got != draft {
		t.Fatalf("Get(%q) = %v, %v", id, got, ok)
	}

	if !r.End(id) {
		t.Fatalf("End(%q) = false, want true", id)
	}
	if draft.Snapshot().TripName != "" {
		t.Fatalf("draft not reset on End")
	}
	if _, ok := r.Get(id); ok {
		t.Fatalf("session still registered after End")
	}
	if r.End(id) {
		t.Fatalf("second End should report missing session")
	}
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	r := NewRegistry()

	idA, a := r.Start()
	idB, b := r.Start()
	if idA == idB {
		t.Fatalf("duplicate session ids")
	}

	a.AddLandmark(domain.Landmark{ID: "p1", Name: "Tokyo Tower"})
	if len(b.Landmarks()) != 0 {
		t.Fatalf("sessions share draft state")
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
}
