package routes

import (
	"fmt"
	"net/http"
	"testing"
)

func TestLikeToggle(t *testing.T) {
	r, db := setupRouter(t)
	aliceToken, _ := registerUser(t, r, "alice")
	bobToken, _ := registerUser(t, r, "bob")
	createPost(t, r, aliceToken, "like me")
	postID := latestPostID(t, db)
	likePath := fmt.Sprintf("/posts/%d/like", postID)

	w := doRequest(t, r, http.MethodPost, likePath, bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["likes"] != float64(1) || body["liked"] != true {
		t.Fatalf("expected liked state after first toggle, got %v", body)
	}

	// Second toggle returns to the original state.
	w = doRequest(t, r, http.MethodPost, likePath, bobToken, nil)
	body = decodeBody(t, w)
	if body["likes"] != float64(0) || body["liked"] != false {
		t.Fatalf("expected unliked state after second toggle, got %v", body)
	}
}

func TestLikeUnknownPost(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := registerUser(t, r, "alice")

	w := doRequest(t, r, http.MethodPost, "/posts/9999/like", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLikersRequiresAuth(t *testing.T) {
	r, db := setupRouter(t)
	aliceToken, _ := registerUser(t, r, "alice")
	createPost(t, r, aliceToken, "popular")
	postID := latestPostID(t, db)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/posts/%d/likers", postID), "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous likers request, got %d", w.Code)
	}
}

func TestLikersList(t *testing.T) {
	r, db := setupRouter(t)
	aliceToken, _ := registerUser(t, r, "alice")
	bobToken, _ := registerUser(t, r, "bob")
	createPost(t, r, aliceToken, "popular")
	postID := latestPostID(t, db)

	doRequest(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/like", postID), bobToken, nil)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/posts/%d/likers", postID), aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	likers := decodeList(t, w)
	if len(likers) != 1 || likers[0]["username"] != "bob" {
		t.Fatalf("unexpected likers: %v", likers)
	}
}

func TestFollowToggle(t *testing.T) {
	r, _ := setupRouter(t)
	registerUser(t, r, "alice")
	bobToken, _ := registerUser(t, r, "bob")

	w := doRequest(t, r, http.MethodPost, "/profile/alice/follow", bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["is_following"] != true || body["followers"] != float64(1) {
		t.Fatalf("expected follow state after first toggle, got %v", body)
	}

	w = doRequest(t, r, http.MethodPost, "/profile/alice/follow", bobToken, nil)
	body = decodeBody(t, w)
	if body["is_following"] != false || body["followers"] != float64(0) {
		t.Fatalf("expected unfollow state after second toggle, got %v", body)
	}
}

func TestSelfFollowRejected(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := registerUser(t, r, "alice")

	w := doRequest(t, r, http.MethodPost, "/profile/alice/follow", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFollowUnknownUser(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := registerUser(t, r, "alice")

	w := doRequest(t, r, http.MethodPost, "/profile/nobody/follow", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFollowingScope(t *testing.T) {
	r, _ := setupRouter(t)
	aliceToken, _ := registerUser(t, r, "alice")
	bobToken, _ := registerUser(t, r, "bob")
	createPost(t, r, aliceToken, "from alice")

	doRequest(t, r, http.MethodPost, "/profile/alice/follow", bobToken, nil)

	w := doRequest(t, r, http.MethodGet, "/posts/following", bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := len(decodeBody(t, w)["posts"].([]interface{})); got != 1 {
		t.Fatalf("expected followed author's post, got %d posts", got)
	}

	// Unfollow excludes alice's posts again.
	doRequest(t, r, http.MethodPost, "/profile/alice/follow", bobToken, nil)
	w = doRequest(t, r, http.MethodGet, "/posts/following", bobToken, nil)
	if got := len(decodeBody(t, w)["posts"].([]interface{})); got != 0 {
		t.Fatalf("expected empty following feed after unfollow, got %d posts", got)
	}
}

func TestFollowData(t *testing.T) {
	r, _ := setupRouter(t)
	aliceToken, _ := registerUser(t, r, "alice")
	bobToken, _ := registerUser(t, r, "bob")
	doRequest(t, r, http.MethodPost, "/profile/alice/follow", bobToken, nil)

	w := doRequest(t, r, http.MethodGet, "/alice/followers", aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	users := body["users"].([]interface{})
	if len(users) != 1 || users[0].(map[string]interface{})["username"] != "bob" {
		t.Fatalf("unexpected followers: %v", users)
	}

	w = doRequest(t, r, http.MethodGet, "/bob/following", aliceToken, nil)
	body = decodeBody(t, w)
	users = body["users"].([]interface{})
	if len(users) != 1 || users[0].(map[string]interface{})["username"] != "alice" {
		t.Fatalf("unexpected following list: %v", users)
	}

	w = doRequest(t, r, http.MethodGet, "/alice/fans", aliceToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid kind, got %d", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/nobody/followers", aliceToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}
}
