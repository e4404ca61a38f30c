package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"

	"schedsim/config"
	"schedsim/internal/responses"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	handler := NewSchedulerHandlerImpl(&config.SchedulerConfig{Port: 9095, RoundRobinTimeQuantum: 2})
	RegisterRoutes(app, handler)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeSchedule(t *testing.T, resp *http.Response) responses.ScheduleResponse {
	t.Helper()
	defer resp.Body.Close()
	var out responses.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return out
}

const scenarioBody = `{"jobs":[
	{"process_id":1,"arrival_time":0,"burst_time":5},
	{"process_id":2,"arrival_time":1,"burst_time":3},
	{"process_id":3,"arrival_time":2,"burst_time":1}
]}`

func TestFirstComeFirstServeEndpoint(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/fcfs", scenarioBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	out := decodeSchedule(t, resp)
	wantTimeline := []int{1, 1, 1, 1, 1, 2, 2, 2, 3}
	if diff := cmp.Diff(wantTimeline, out.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	if out.Algorithm != "fcfs" {
		t.Errorf("algorithm = %q, want fcfs", out.Algorithm)
	}
}

func TestRoundRobinEndpointUsesConfiguredQuantum(t *testing.T) {
	app := newTestApp()

	body := `{"jobs":[
		{"process_id":1,"arrival_time":0,"burst_time":4},
		{"process_id":2,"arrival_time":1,"burst_time":3}
	]}`
	resp := post(t, app, "/api/v1/rr", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	out := decodeSchedule(t, resp)
	// Quantum 2 comes from the handler config when the body omits it.
	wantTimeline := []int{1, 1, 2, 2, 1, 1, 2}
	if diff := cmp.Diff(wantTimeline, out.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/all", scenarioBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	defer resp.Body.Close()

	var out map[string]responses.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	for _, name := range []string{"fcfs", "srtf", "priority", "round_robin"} {
		if _, ok := out[name]; !ok {
			t.Errorf("response missing %q run", name)
		}
	}
}

func TestEndpointsRejectBadRequests(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/api/v1/fcfs", `{"jobs":`},
		{"empty process set", "/api/v1/srtf", `{"jobs":[]}`},
		{"invalid record", "/api/v1/priority", `{"jobs":[{"process_id":1,"burst_time":0}]}`},
		{"bad quantum", "/api/v1/rr", `{"jobs":[{"process_id":1,"burst_time":2}],"time_quantum":-1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, app, tt.path, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			resp.Body.Close()
		})
	}
}
