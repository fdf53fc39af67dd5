package domain

import "time"

// CV is the singleton CV record. Each upload replaces it; no history is kept
// and the previously stored file is left on disk.
type CV struct {
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UploadedAt time.Time `json:"uploadedAt"`
}
