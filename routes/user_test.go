package routes

import (
	"net/http"
	"testing"
)

func TestProfileRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)
	registerUser(t, r, "alice")

	w := doRequest(t, r, http.MethodGet, "/profile/alice", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProfileUnknownUser(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := registerUser(t, r, "alice")

	w := doRequest(t, r, http.MethodGet, "/profile/nobody", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProfileAggregation(t *testing.T) {
	r, _ := setupRouter(t)
	aliceToken, _ := registerUser(t, r, "alice")
	bobToken, _ := registerUser(t, r, "bob")
	createPost(t, r, aliceToken, "mine")
	doRequest(t, r, http.MethodPost, "/profile/alice/follow", bobToken, nil)

	w := doRequest(t, r, http.MethodGet, "/profile/alice", bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["username"] != "alice" || body["name"] != "Test User" {
		t.Fatalf("unexpected identity fields: %v", body)
	}
	if body["followers"] != float64(1) || body["following"] != float64(0) {
		t.Fatalf("unexpected counts: %v", body)
	}
	if body["is_following"] != true {
		t.Fatalf("expected viewer to be following: %v", body)
	}
	if got := len(body["posts"].([]interface{})); got != 1 {
		t.Fatalf("expected 1 profile post, got %d", got)
	}

	// Viewing your own profile never reports is_following.
	w = doRequest(t, r, http.MethodGet, "/profile/alice", aliceToken, nil)
	if body = decodeBody(t, w); body["is_following"] != false {
		t.Fatalf("expected is_following false on own profile: %v", body)
	}
}
