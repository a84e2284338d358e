package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cinepass-cli/model"
)

func newTestClient(server *httptest.Server) *Client {
	client := NewClient(server.Client(), server.URL)
	client.maxAttempts = 3
	client.retryBase = time.Millisecond
	client.retryCap = 2 * time.Millisecond
	return client
}

func TestDoJSON_Non2xxReturnsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 1

	var out map[string]any
	err := client.getJSON(context.Background(), server.URL+"/fail", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoJSON_RetriesTransientServerErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := atomic.AddInt32(&attempts, 1)
		if current < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("retry later"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/retry", &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if ok, _ := out["ok"].(bool); !ok {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestDoJSON_PostIsNeverRetried(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server)

	err := client.postJSON(context.Background(), server.URL+"/purchase", map[string]int{"showtime_id": 1}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestDoJSON_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.SetTokenSource(func() string { return "tok-123" })

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/any", &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestDoJSON_UnauthorizedInvokesHookWithoutRetry(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"token expired"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	hookCalls := 0
	client.SetUnauthorizedHook(func() { hookCalls++ })

	var out map[string]any
	err := client.getJSON(context.Background(), server.URL+"/private", &out)
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
	if hookCalls != 1 {
		t.Fatalf("expected hook to run once, ran %d times", hookCalls)
	}
}

func TestAPIError_JoinsBackendFieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"field":"email","message":"email is taken"},{"message":"password too short"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	err := client.postJSON(context.Background(), server.URL+"/auth/register", map[string]string{}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "email is taken. password too short"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestSearchShowtimes_UnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/showtimes/search" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var params model.ShowtimeSearchParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			t.Fatalf("decode params: %v", err)
		}
		if params.MovieId != 7 || params.Date != "2024-06-01" {
			t.Fatalf("unexpected params: %+v", params)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"showtimes":[{"id":1,"room_id":2,"room_name":"Sala 1","showtimes":[{"id":11,"room_id":2,"start_time":"18:00","end_time":"20:00","booked_seats":4,"ticket_price":8.5}]}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	results, err := client.SearchShowtimes(context.Background(), model.ShowtimeSearchParams{MovieId: 7, Date: "2024-06-01"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(results) != 1 || results[0].RoomName != "Sala 1" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if results[0].Showtimes[0].BookedSeats != 4 {
		t.Fatalf("expected booked count 4, got %d", results[0].Showtimes[0].BookedSeats)
	}
}

func TestGetRoomWithSeats_RequestsSeats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rooms/3" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("includeSeats") != "true" {
			t.Fatalf("expected includeSeats=true, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"name":"Sala IMAX","blocks":[{"id":1,"blockRow":0,"blockColumn":0,"rowSeats":2,"columnsSeats":2,"seats":[{"id":5,"seatRowLabel":"A","seatRow":0,"seatColumnLabel":1,"seatColumn":0}]}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	room, err := client.GetRoomWithSeats(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if room.Name != "Sala IMAX" || len(room.Blocks) != 1 {
		t.Fatalf("unexpected room: %+v", room)
	}
	if room.Blocks[0].Seats[0].Id != 5 {
		t.Fatalf("unexpected seat: %+v", room.Blocks[0].Seats[0])
	}
}

func TestGetOrderBySession_AbsentOrderIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("session_id") != "cs_test_1" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 1

	order, err := client.GetOrderBySession(context.Background(), "cs_test_1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil order, got %+v", order)
	}
}

func TestLogin_RejectsMalformedEmailBeforeNetwork(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.Login(context.Background(), model.Credentials{Email: "not-an-email", Password: "longenough"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if calls != 0 {
		t.Fatalf("expected no network call, got %d", calls)
	}
}

func TestGetMySubscription_NoSubscriptionIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"message":"no subscription"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 1

	sub, err := client.GetMySubscription(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if sub != nil {
		t.Fatalf("expected nil subscription, got %+v", sub)
	}
}
