package models

type LoadStatus string

const (
	LoadStatusIdle       LoadStatus = "idle"
	LoadStatusLoading    LoadStatus = "loading"
	LoadStatusLoaded     LoadStatus = "loaded"
	LoadStatusLoadFailed LoadStatus = "load_failed"
)

// DisplaySnapshot is a consistent copy of the display state.
type DisplaySnapshot struct {
	Total    int        `json:"total"`
	Status   LoadStatus `json:"status"`
	Products []Product  `json:"products"`
}
