package models

// Settings are local application preferences. The backend's entities are
// never persisted client-side; only these values live in the settings store.
type Settings struct {
	APIURL        string
	Timezone      string
	MedicoDefault int
	PerPage       int
}
