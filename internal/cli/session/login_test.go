package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/respira-salud/respira-cli/internal/api"
	"github.com/respira-salud/respira-cli/internal/cli"
)

func TestVerifyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"token invalido"}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	ctx := &cli.Context{API: api.New(api.Config{BaseURL: srv.URL})}

	if err := verifyToken(ctx, "good-token"); err != nil {
		t.Errorf("verifyToken(good) error = %v", err)
	}
	if err := verifyToken(ctx, "bad-token"); err == nil {
		t.Error("verifyToken(bad) expected an error")
	}
}

func TestVerifyTokenUsesCandidateNotAmbient(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	// The shared client carries a different (stored) token; verification must
	// send the candidate instead.
	ctx := &cli.Context{API: api.New(api.Config{
		BaseURL: srv.URL,
		Token:   func() (string, error) { return "stored-token", nil },
	})}

	if err := verifyToken(ctx, "candidate-token"); err != nil {
		t.Fatalf("verifyToken() error = %v", err)
	}
	if gotAuth != "Bearer candidate-token" {
		t.Errorf("Authorization = %q, want the candidate token", gotAuth)
	}
}
