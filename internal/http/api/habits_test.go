package api

import (
	"net/http"
	"testing"
)

func TestHabitRoundTrip(t *testing.T) {
	engine, _ := newTestAPI(t)

	var created map[string]any
	code := doRequest(t, engine, http.MethodPost, "/api/habits", map[string]any{
		"name":            "Read",
		"frequency":       "daily",
		"targetValue":     1,
		"color":           "#000000",
		"isCollaborative": false,
	}, &created)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if created["id"] == "" || created["id"] == nil {
		t.Fatalf("expected generated id, got %v", created)
	}
	if created["createdAt"] == nil {
		t.Fatal("expected createdAt populated")
	}
	if created["name"] != "Read" || created["color"] != "#000000" {
		t.Fatalf("fields not preserved: %v", created)
	}

	var listed []map[string]any
	code = doRequest(t, engine, http.MethodGet, "/api/habits", nil, &listed)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(listed) != 1 || listed[0]["id"] != created["id"] {
		t.Fatalf("unexpected list: %v", listed)
	}
}

func TestHabitDefaults(t *testing.T) {
	engine, _ := newTestAPI(t)

	var created map[string]any
	code := doRequest(t, engine, http.MethodPost, "/api/habits", map[string]any{
		"name": "Stretch",
	}, &created)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if created["frequency"] != "daily" {
		t.Fatalf("expected default frequency, got %v", created["frequency"])
	}
	if created["targetValue"] != float64(1) {
		t.Fatalf("expected default targetValue, got %v", created["targetValue"])
	}
	if created["color"] != "#3B82F6" {
		t.Fatalf("expected default color, got %v", created["color"])
	}
}

func TestHabitValidation(t *testing.T) {
	engine, _ := newTestAPI(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"frequency": "daily"}},
		{"bad frequency", map[string]any{"name": "X", "frequency": "hourly"}},
		{"target too low", map[string]any{"name": "X", "targetValue": 0}},
		{"target too high", map[string]any{"name": "X", "targetValue": 11}},
	}
	for _, tc := range cases {
		var errBody map[string]string
		code := doRequest(t, engine, http.MethodPost, "/api/habits", tc.body, &errBody)
		if code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, code)
		}
		if errBody["error"] == "" {
			t.Fatalf("%s: expected error message", tc.name)
		}
	}
}

func TestHabitCounterProperty(t *testing.T) {
	engine, _ := newTestAPI(t)

	var before map[string]any
	doRequest(t, engine, http.MethodGet, "/api/user", nil, &before)
	base := before["totalHabits"].(float64)

	var created map[string]any
	doRequest(t, engine, http.MethodPost, "/api/habits", map[string]any{"name": "Run"}, &created)

	var after map[string]any
	doRequest(t, engine, http.MethodGet, "/api/user", nil, &after)
	if after["totalHabits"].(float64) != base+1 {
		t.Fatalf("expected totalHabits %v, got %v", base+1, after["totalHabits"])
	}

	var deleted map[string]any
	code := doRequest(t, engine, http.MethodDelete, "/api/habits/"+created["id"].(string), nil, &deleted)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if deleted["success"] != true {
		t.Fatalf("expected success body, got %v", deleted)
	}

	doRequest(t, engine, http.MethodGet, "/api/user", nil, &after)
	if after["totalHabits"].(float64) != base {
		t.Fatalf("expected totalHabits restored to %v, got %v", base, after["totalHabits"])
	}
}

func TestHabitDeleteUnknown(t *testing.T) {
	engine, _ := newTestAPI(t)

	var errBody map[string]string
	code := doRequest(t, engine, http.MethodDelete, "/api/habits/no-such-id", nil, &errBody)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if errBody["error"] != "habit not found" {
		t.Fatalf("unexpected error: %v", errBody)
	}
}
