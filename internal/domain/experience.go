package domain

// Experience represents a single work-experience entry.
//
// IsActive is persisted for compatibility with existing store files but is
// never read or updated by the API.
type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
	TabName     string   `json:"tabName"`
	Order       int      `json:"order"`
	IsActive    bool     `json:"isActive"`
}
