// Package wixtest はテスト用のWix APIフェイクサーバーを提供する
package wixtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
)

// AccessToken はフェイクサーバーが発行するトークン
const AccessToken = "visitor-token"

// Request は受信したリクエストの記録
type Request struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	Body          map[string]any
}

// Server はWix APIのフェイク
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	events   []map[string]any
	tickets  map[string][]map[string]any
	schedule map[string][]map[string]any
	fail     map[string]int
	requests []Request
}

// NewServer はフェイクサーバーを起動し、テスト終了時に停止する
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		tickets:  make(map[string][]map[string]any),
		schedule: make(map[string][]map[string]any),
		fail:     make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// AddEvent はイベントを登録する
func (s *Server) AddEvent(ev map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// SetTickets はイベントの券種定義を登録する
func (s *Server) SetTickets(eventID string, defs ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[eventID] = defs
}

// SetSchedule はイベントのスケジュール項目を登録する
func (s *Server) SetSchedule(eventID string, items ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule[eventID] = items
}

// Fail は指定パスへのリクエストを status で失敗させる
func (s *Server) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[path] = status
}

// Requests は受信したリクエストのコピーを返す
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo は指定パスへのリクエストを返す
func (s *Server) RequestsTo(path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	status, failing := s.fail[r.URL.Path]
	s.mu.Unlock()

	if failing {
		writeJSON(w, status, map[string]any{"message": "fake failure"})
		return
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/oauth2/token":
		writeJSON(w, http.StatusOK, map[string]any{"access_token": AccessToken, "expires_in": 3600})
	case r.URL.Path != "/oauth2/token" && r.Header.Get("Authorization") != AccessToken:
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "unauthorized"})
	case r.Method == http.MethodPost && r.URL.Path == "/events/v3/events/query":
		writeJSON(w, http.StatusOK, map[string]any{"events": s.queryEvents(body)})
	case r.Method == http.MethodPost && r.URL.Path == "/events/v1/tickets/available/query":
		writeJSON(w, http.StatusOK, map[string]any{"definitions": s.queryTickets(body)})
	case r.Method == http.MethodGet && r.URL.Path == "/events/v1/schedule":
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, map[string]any{"items": s.listSchedule(r.URL.Query().Get("eventId"), limit)})
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "not found"})
	}
}

func (s *Server) queryEvents(body map[string]any) []map[string]any {
	s.mu.Lock()
	events := append([]map[string]any(nil), s.events...)
	s.mu.Unlock()

	query, _ := body["query"].(map[string]any)

	var slug string
	if filter, ok := query["filter"].(map[string]any); ok {
		if cond, ok := filter["slug"].(map[string]any); ok {
			slug, _ = cond["$eq"].(string)
		}
	}

	out := make([]map[string]any, 0, len(events))
	for _, ev := range events {
		if slug != "" && ev["slug"] != slug {
			continue
		}
		out = append(out, ev)
	}

	if sorts, ok := query["sort"].([]any); ok && len(sorts) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			return startDate(out[i]) < startDate(out[j])
		})
	}

	if paging, ok := query["cursorPaging"].(map[string]any); ok {
		if limit, ok := paging["limit"].(float64); ok && int(limit) < len(out) {
			out = out[:int(limit)]
		}
	}
	return out
}

func (s *Server) queryTickets(body map[string]any) []map[string]any {
	filter, _ := body["filter"].(map[string]any)
	eventID, _ := filter["eventId"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()
	defs := s.tickets[eventID]
	if defs == nil {
		return []map[string]any{}
	}
	return defs
}

func (s *Server) listSchedule(eventID string, limit int) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.schedule[eventID]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	if items == nil {
		return []map[string]any{}
	}
	return items
}

func startDate(ev map[string]any) string {
	dt, _ := ev["dateAndTimeSettings"].(map[string]any)
	s, _ := dt["startDate"].(string)
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
