package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/respira-salud/respira-cli/internal/constants"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := New(Config{
		BaseURL: srv.URL,
		Token:   func() (string, error) { return "test-token", nil },
	})
	return client, srv
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(constants.RequestIDHeader)
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	if _, err := client.TurnosDisponibles(context.Background(), 0, 100); err != nil {
		t.Fatalf("TurnosDisponibles() error = %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotRequestID == "" {
		t.Errorf("missing %s header", constants.RequestIDHeader)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}

func TestEnvelopeDecoding(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/turnos" {
			t.Errorf("path = %s, want /turnos", r.URL.Path)
		}
		if got := r.URL.Query().Get("estado"); got != "disponible" {
			t.Errorf("estado query = %q, want disponible", got)
		}
		w.Write([]byte(`{"success":true,"data":[
			{"id":1,"fecha":"2025-06-01","hora_inicio":"09:00:00","duracion":"30","ocupado":0},
			{"id":2,"fecha":"2025-06-02","hora_inicio":"10:00:00","duracion":60,"ocupado":"1","paciente":"Ana"}
		]}`))
	})

	turnos, err := client.TurnosDisponibles(context.Background(), 0, 500)
	if err != nil {
		t.Fatalf("TurnosDisponibles() error = %v", err)
	}
	if len(turnos) != 2 {
		t.Fatalf("got %d turnos, want 2", len(turnos))
	}
	if turnos[0].Duracion.Int() != 30 || turnos[1].Duracion.Int() != 60 {
		t.Errorf("durations = %d,%d, want 30,60", turnos[0].Duracion.Int(), turnos[1].Duracion.Int())
	}
	if turnos[0].Ocupado.Bool() || !turnos[1].Ocupado.Bool() {
		t.Errorf("ocupado flags = %v,%v, want false,true", turnos[0].Ocupado.Bool(), turnos[1].Ocupado.Bool())
	}
}

func TestEnvelopeFailureWithoutHTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"algo salió mal"}`))
	})

	_, err := client.TurnosDisponibles(context.Background(), 0, 100)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if !strings.Contains(apiErr.Error(), "algo salió mal") {
		t.Errorf("error message %q missing server message", apiErr.Error())
	}
}

func TestUnauthorizedFiresTeardownOnce(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"token expirado"}`))
	}))
	defer srv.Close()

	client := New(Config{
		BaseURL:        srv.URL,
		OnUnauthorized: func() { calls++ },
	})

	for i := 0; i < 3; i++ {
		_, err := client.TurnosDisponibles(context.Background(), 0, 100)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("call %d: error = %v, want ErrUnauthorized", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("teardown hook fired %d times, want exactly 1", calls)
	}
}

func TestForbidden(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false}`))
	})

	_, err := client.Estadisticas(context.Background())
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}

func TestValidationErrorFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"datos inválidos","errors":{
			"turno_id":["el turno ya está ocupado"],
			"paciente_id":["paciente no encontrado"]
		}}`))
	})

	err := client.AgendarCita(context.Background(), 9, 4)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(valErr.Fields) != 2 {
		t.Errorf("got %d field errors, want 2", len(valErr.Fields))
	}
	if msgs := valErr.Fields["turno_id"]; len(msgs) != 1 || msgs[0] != "el turno ya está ocupado" {
		t.Errorf("turno_id errors = %v", msgs)
	}
}

func TestServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	})

	_, err := client.ContarDisponibles(context.Background(), 2025, 6, 0)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apiErr.StatusCode)
	}
}

func TestAgendarCitaBody(t *testing.T) {
	var gotBody string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{"success":true,"message":"cita agendada"}`))
	})

	if err := client.AgendarCita(context.Background(), 7, 12); err != nil {
		t.Fatalf("AgendarCita() error = %v", err)
	}
	if !strings.Contains(gotBody, `"turno_id":7`) || !strings.Contains(gotBody, `"paciente_id":12`) {
		t.Errorf("request body = %s, want turno_id 7 and paciente_id 12", gotBody)
	}
}

func TestEliminarTodosQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		q := r.URL.Query()
		if q.Get("year") != "2025" || q.Get("month") != "6" || q.Get("medico_id") != "3" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"success":true,"data":{"eliminados":41}}`))
	})

	n, err := client.EliminarTodos(context.Background(), 2025, 6, 3)
	if err != nil {
		t.Fatalf("EliminarTodos() error = %v", err)
	}
	if n != 41 {
		t.Errorf("eliminados = %d, want 41", n)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	client := New(Config{BaseURL: "https://api.example.test/api/"})
	if client.BaseURL() != "https://api.example.test/api" {
		t.Errorf("BaseURL() = %q, trailing slash should be trimmed", client.BaseURL())
	}
}
