package monday

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"rolesync/internal/domain"
	"rolesync/internal/httpx"
)

func sampleRole() domain.Role {
	days := 12
	return domain.Role{
		JobID:        4567,
		Title:        "Backend Engineer",
		Department:   "Engineering",
		Location:     "Seoul",
		Studio:       "PUBG STUDIOS",
		OpenedAt:     "2024-01-02T03:04:05.000Z",
		DaysOpen:     &days,
		Recruiters:   "Ana, Ben",
		Coordinators: "Cleo",
	}
}

func TestColumnValues(t *testing.T) {
	cols := ColumnValues(sampleRole())

	want := map[string]any{
		"job_title__1":  "4567",
		"department__1": "Engineering",
		"text__1":       "Seoul",
		"text2__1":      "PUBG STUDIOS",
		"text1__1":      "12",
		"date_Mjj5SQ4B": "2024-01-02",
		"text_Mjj5V04k": "Ana, Ben",
		"text_Mjj5gr7J": "Cleo",
	}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns, want %d: %v", len(cols), len(want), cols)
	}
	for k, v := range want {
		if cols[k] != v {
			t.Errorf("column %s = %v, want %v", k, cols[k], v)
		}
	}
}

func TestColumnValuesSentinels(t *testing.T) {
	role := domain.Role{JobID: 1, Title: "N/A", Department: "N/A", Location: "Remote/Unspecified", Studio: "Krafton"}
	cols := ColumnValues(role)

	if cols["text1__1"] != "N/A" {
		t.Errorf("days open column = %v, want N/A", cols["text1__1"])
	}
	// unset opened_at must serialize as null, not ""
	if cols["date_Mjj5SQ4B"] != nil {
		t.Errorf("date column = %v, want nil", cols["date_Mjj5SQ4B"])
	}
	b, err := json.Marshal(cols)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"date_Mjj5SQ4B":null`) {
		t.Errorf("date column not null in JSON: %s", b)
	}
}

func TestCreateItemRequestShape(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"data":{"create_item":{"id":"1"}}}`))
	}))
	defer srv.Close()

	c := New(Config{APIURL: srv.URL, APIKey: "md-key", BoardID: "board-9"}, srv.Client())
	if err := c.CreateItem(context.Background(), sampleRole()); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if gotAuth != "md-key" {
		t.Errorf("authorization header = %q", gotAuth)
	}

	var payload struct {
		Query     string `json:"query"`
		Variables struct {
			BoardID      string `json:"board_id"`
			ItemName     string `json:"item_name"`
			ColumnValues string `json:"column_values"`
		} `json:"variables"`
	}
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if !strings.Contains(payload.Query, "create_item") {
		t.Errorf("query missing mutation: %q", payload.Query)
	}
	if payload.Variables.BoardID != "board-9" || payload.Variables.ItemName != "Backend Engineer" {
		t.Errorf("variables = %+v", payload.Variables)
	}

	// column_values rides as a JSON-encoded string
	var cols map[string]any
	if err := json.Unmarshal([]byte(payload.Variables.ColumnValues), &cols); err != nil {
		t.Fatalf("column_values not a JSON string: %v", err)
	}
	if cols["job_title__1"] != "4567" || cols["text2__1"] != "PUBG STUDIOS" {
		t.Errorf("column_values = %v", cols)
	}
}

func TestCreateItemErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(Config{APIURL: srv.URL, APIKey: "md-key", BoardID: "b"}, srv.Client())
	if err := c.CreateItem(context.Background(), sampleRole()); err == nil {
		t.Fatal("expected error on 400")
	}
}

// 503 twice then 200: the shared retrying client must land the item once.
func TestCreateItemRecoversThroughSharedRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "create_item") {
			t.Errorf("retried request lost its body: %s", body)
		}
		w.Write([]byte(`{"data":{"create_item":{"id":"1"}}}`))
	}))
	defer srv.Close()

	hc := httpx.New(httpx.Config{MaxRetries: 5, Backoff: 1})
	c := New(Config{APIURL: srv.URL, APIKey: "md-key", BoardID: "b"}, hc)

	if err := c.CreateItem(context.Background(), sampleRole()); err != nil {
		t.Fatalf("CreateItem after transient 503s: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
}
