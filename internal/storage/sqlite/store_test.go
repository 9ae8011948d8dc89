package sqlite

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "respira.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitSeedsDefaults(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.APIURL != constants.DefaultAPIURL {
		t.Errorf("api_url = %q, want default %q", settings.APIURL, constants.DefaultAPIURL)
	}
	if settings.Timezone != "Local" {
		t.Errorf("timezone = %q, want Local", settings.Timezone)
	}
	if settings.PerPage != constants.DefaultPerPage {
		t.Errorf("per_page = %d, want %d", settings.PerPage, constants.DefaultPerPage)
	}
}

func TestSaveSettingsRoundtrip(t *testing.T) {
	store := newTestStore(t)

	want := models.Settings{
		APIURL:        "https://api.respira.example/api",
		Timezone:      "America/Argentina/Buenos_Aires",
		MedicoDefault: 3,
		PerPage:       250,
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestSaveSettingsOverwrites(t *testing.T) {
	store := newTestStore(t)

	first := models.Settings{APIURL: "https://one.example/api", Timezone: "UTC", PerPage: 100}
	second := models.Settings{APIURL: "https://two.example/api", Timezone: "Local", PerPage: 500}
	if err := store.SaveSettings(first); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSettings(second); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.APIURL != second.APIURL {
		t.Errorf("api_url = %q, want the later value %q", got.APIURL, second.APIURL)
	}
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	if err == nil {
		t.Fatal("Load() on a missing database should fail")
	}
	if !strings.Contains(err.Error(), "respira init") {
		t.Errorf("Load() error = %v, should point at respira init", err)
	}
}

func TestLoadAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "respira.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()

	settings, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() after reopen error = %v", err)
	}
	if settings.APIURL == "" {
		t.Error("settings lost across reopen")
	}
}

func TestExpandPath(t *testing.T) {
	if got := ExpandPath("/tmp/respira.db"); got != "/tmp/respira.db" {
		t.Errorf("absolute path changed: %q", got)
	}
	got := ExpandPath("~/respira.db")
	if strings.HasPrefix(got, "~") {
		t.Errorf("tilde not expanded: %q", got)
	}
}
