package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"compliance-monitoring/internal/adapters/roster/static"
	"compliance-monitoring/internal/ports/roster"
	"compliance-monitoring/internal/router"
)

func newTestServer() *httptest.Server {
	ros := static.NewProviderFromUnits([]roster.Unit{
		{ID: "unit-1", Name: "Sede Centro"},
		{ID: "unit-2", Name: "Sede Norte"},
		{ID: "unit-3", Name: "Sede Sur"},
	})
	return httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev: headers X-Debug-*
		Roster:       ros,
	}))
}

type debugUser struct {
	userID string
	role   string
	unitID string
}

var (
	operator = debugUser{userID: "op-1", role: "operator"}
	reporter = debugUser{userID: "rep-1", role: "reporter", unitID: "unit-1"}
)

func TestHTTP_EndToEnd_EventLifecycle(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	// 1) Sin claims no hay acceso
	{
		st, _ := doReq(t, ts.URL, "GET", "/events?year=2026&month=3", debugUser{}, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without claims, got %d", st)
		}
	}

	// 2) Un reporter no puede crear eventos
	{
		st, _ := doReq(t, ts.URL, "POST", "/events", reporter, map[string]any{
			"date":     "2026-03-15",
			"category": "CLEANING",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create event by reporter, got %d", st)
		}
	}

	// 3) El operador crea el evento: fan-out a las 3 sedes
	eventID := createEvent(t, ts.URL, map[string]any{
		"date":             "2026-03-15",
		"category":         "CLEANING",
		"recurrence_label": "mensual",
	})

	{
		st, body := doReq(t, ts.URL, "GET", "/events/"+eventID, operator, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get event, got %d body=%s", st, string(body))
		}
		var detail struct {
			Submissions []struct {
				UnitID string `json:"unit_id"`
				Status string `json:"status"`
			} `json:"submissions"`
		}
		_ = json.Unmarshal(body, &detail)
		if len(detail.Submissions) != 3 {
			t.Fatalf("expected 3 submissions after fan-out, got %d", len(detail.Submissions))
		}
		for _, sub := range detail.Submissions {
			if sub.Status != "pending" {
				t.Fatalf("expected pending submission for %s, got %s", sub.UnitID, sub.Status)
			}
		}
	}

	// 4) Fecha inválida y categoría desconocida => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/events", operator, map[string]any{
			"date": "15/03/2026", "category": "CLEANING",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad date, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/events", operator, map[string]any{
			"date": "2026-03-15", "category": "PARKING",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown category, got %d", st)
		}
	}

	// 5) El reporter cumple su propia submission
	{
		st, body := doReq(t, ts.URL, "POST", "/events/"+eventID+"/submissions/unit-1/complete", reporter, map[string]any{
			"rating": 8,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete own submission, got %d body=%s", st, string(body))
		}
	}

	// 6) ...pero no la de otra sede
	{
		st, _ := doReq(t, ts.URL, "POST", "/events/"+eventID+"/submissions/unit-2/complete", reporter, map[string]any{
			"rating": 8,
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 complete other unit, got %d", st)
		}
	}

	// 7) Nota fuera de rango => 400 y el estado no cambia
	{
		st, _ := doReq(t, ts.URL, "POST", "/events/"+eventID+"/submissions/unit-2/complete", operator, map[string]any{
			"rating": 11,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 rating out of range, got %d", st)
		}
	}

	// 8) El operador dispensa a unit-2
	{
		st, body := doReq(t, ts.URL, "POST", "/events/"+eventID+"/submissions/unit-2/dispense", operator, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dispense, got %d body=%s", st, string(body))
		}
	}

	// 9) Rollup: 1 completed(8) + 1 dispensed + 1 pending
	{
		s := getSummary(t, ts.URL, eventID)
		if s.Total != 3 || s.Completed != 1 || s.Dispensed != 1 {
			t.Fatalf("unexpected summary counts: %+v", s)
		}
		if s.AverageRating != 8.0 {
			t.Fatalf("expected average 8.0 (dispensed/pending excluidos), got %v", s.AverageRating)
		}
		if s.Coverage < 66.6 || s.Coverage > 66.8 {
			t.Fatalf("expected coverage ~66.7, got %v", s.Coverage)
		}
	}

	// 10) Corregir nota solo en completed
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/events/"+eventID+"/submissions/unit-1/rating", reporter, map[string]any{
			"rating": 9,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update rating, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "PATCH", "/events/"+eventID+"/submissions/unit-2/rating", operator, map[string]any{
			"rating": 9,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 update rating on dispensed, got %d", st)
		}
	}

	// 11) Revert vuelve a pending y limpia la nota
	{
		st, body := doReq(t, ts.URL, "POST", "/events/"+eventID+"/submissions/unit-1/revert", reporter, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 revert, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
			Rating *int   `json:"rating"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "pending" || resp.Rating != nil {
			t.Fatalf("expected pending/no-rating after revert, got %+v", resp)
		}
	}

	// 12) Las tareas del mes del reporter incluyen el evento (pending y vencido)
	{
		st, body := doReq(t, ts.URL, "GET", "/me/tasks?year=2026&month=3", reporter, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my tasks, got %d body=%s", st, string(body))
		}
		var tasks []struct {
			Event   struct{ ID string `json:"id"` } `json:"event"`
			Status  string                          `json:"status"`
			Overdue bool                            `json:"overdue"`
		}
		_ = json.Unmarshal(body, &tasks)
		if len(tasks) != 1 || tasks[0].Event.ID != eventID {
			t.Fatalf("expected 1 task for the event, got %+v", tasks)
		}
		if tasks[0].Status != "pending" || !tasks[0].Overdue {
			t.Fatalf("expected pending+overdue task, got %+v", tasks[0])
		}
	}

	// 13) Transición masiva: complete-all pisa todo con la nota por defecto
	{
		st, _ := doReq(t, ts.URL, "POST", "/events/"+eventID+"/complete-all", reporter, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 complete-all by reporter, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "POST", "/events/"+eventID+"/complete-all", operator, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 complete-all, got %d", st)
		}

		s := getSummary(t, ts.URL, eventID)
		if s.Coverage != 100.0 || s.AverageRating != 10.0 || s.Completed != 3 {
			t.Fatalf("expected 100%%/10.0 after complete-all, got %+v", s)
		}
	}

	// 14) El calendario agrupa el evento en el día 15
	{
		st, body := doReq(t, ts.URL, "GET", "/calendar?year=2026&month=3", operator, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 calendar, got %d body=%s", st, string(body))
		}
		var groups []struct {
			Day    int `json:"day"`
			Events []struct{ ID string `json:"id"` } `json:"events"`
		}
		_ = json.Unmarshal(body, &groups)
		if len(groups) != 1 || groups[0].Day != 15 || len(groups[0].Events) != 1 {
			t.Fatalf("unexpected calendar grouping: %+v", groups)
		}
	}

	// 15) Borrar el evento arrastra las submissions; el rollup pasa a 404
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/events/"+eventID, reporter, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 delete by reporter, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/events/"+eventID, operator, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete event, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/events/"+eventID, operator, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting an already-deleted event, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/events/"+eventID+"/summary", operator, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 summary after delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/events/"+eventID+"/submissions/unit-1/complete", operator, map[string]any{"rating": 5})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 complete after delete, got %d", st)
		}
	}
}

func TestHTTP_DispenseAll(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	eventID := createEvent(t, ts.URL, map[string]any{
		"date":     "2026-04-01",
		"category": "PEST_CONTROL",
	})

	st, _ := doReq(t, ts.URL, "POST", "/events/"+eventID+"/dispense-all", operator, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 dispense-all, got %d", st)
	}

	s := getSummary(t, ts.URL, eventID)
	if s.Coverage != 100.0 || s.Dispensed != 3 {
		t.Fatalf("expected full dispensed coverage, got %+v", s)
	}
	// sin notas: promedio "sin datos"
	if s.AverageRating != 0.0 || s.RatedCount != 0 {
		t.Fatalf("expected no rating data, got %+v", s)
	}
}

func TestHTTP_CompleteAll_RejectsMalformedBody(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	eventID := createEvent(t, ts.URL, map[string]any{
		"date":     "2026-05-01",
		"category": "MAINTENANCE",
	})

	// un body presente pero roto no debe disparar el override masivo
	req, err := http.NewRequest("POST", ts.URL+"/events/"+eventID+"/complete-all", bytes.NewReader([]byte(`{"rating":`)))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Debug-User-ID", operator.userID)
	req.Header.Set("X-Debug-Role", operator.role)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 malformed complete-all body, got %d", res.StatusCode)
	}

	s := getSummary(t, ts.URL, eventID)
	if s.Completed != 0 || s.Coverage != 0.0 {
		t.Fatalf("expected untouched submissions after rejected body, got %+v", s)
	}
}

type summary struct {
	Total         int     `json:"total"`
	Completed     int     `json:"completed"`
	Dispensed     int     `json:"dispensed"`
	RatedCount    int     `json:"rated_count"`
	Coverage      float64 `json:"coverage"`
	AverageRating float64 `json:"average_rating"`
}

func getSummary(t *testing.T, baseURL, eventID string) summary {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/events/"+eventID+"/summary", operator, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
	}
	var s summary
	_ = json.Unmarshal(body, &s)
	return s
}

func createEvent(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/events", operator, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create event, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create event: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, user debugUser, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user.userID != "" {
		req.Header.Set("X-Debug-User-ID", user.userID)
		req.Header.Set("X-Debug-Role", user.role)
		if user.unitID != "" {
			req.Header.Set("X-Debug-Unit-ID", user.unitID)
		}
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
