package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"collegehub/internal/api"
	"collegehub/internal/models"
	"collegehub/internal/session"
)

// The backend stores clubs in snake_case. Whatever casing it echoes back,
// the service must return the same camelCase shape it was given.
func TestClubs_CreateRoundTrip(t *testing.T) {
	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &sent); err != nil {
			t.Fatalf("decode club payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	defer srv.Close()

	club := models.Club{
		ID:            7,
		Name:          "Debate Club",
		Category:      "education",
		Description:   "Weekly debates",
		Color:         "#38bdf8",
		ClubAvatar:    "https://cdn.example/avatar.png",
		BackgroundURL: "https://cdn.example/bg.png",
		SocialLinks:   map[string]string{"instagram": "https://instagram.com/debate"},
		CreatorID:     42,
		MemberCount:   12,
	}

	hub := api.New(srv.URL, session.NewMemoryStore())
	got, err := hub.Clubs.Create(context.Background(), club)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, key := range []string{"club_avatar", "background_url", "creator_id"} {
		if _, ok := sent[key]; !ok {
			t.Errorf("outbound payload missing %q, got keys %v", key, keysOf(sent))
		}
	}
	if !reflect.DeepEqual(got, club) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, club)
	}
}

func TestClubs_ListNormalizesMixedCasing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Cinema","club_avatar":"a.png","backgroundUrl":"b.png","creator_id":9}]`))
	}))
	defer srv.Close()

	hub := api.New(srv.URL, session.NewMemoryStore())
	clubs, err := hub.Clubs.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(clubs) != 1 {
		t.Fatalf("len(clubs) = %d, want 1", len(clubs))
	}
	club := clubs[0]
	if club.ClubAvatar != "a.png" {
		t.Errorf("ClubAvatar = %q, want %q", club.ClubAvatar, "a.png")
	}
	if club.BackgroundURL != "b.png" {
		t.Errorf("BackgroundURL = %q, want %q", club.BackgroundURL, "b.png")
	}
	if club.CreatorID != 9 {
		t.Errorf("CreatorID = %d, want 9", club.CreatorID)
	}
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
