package domain

// Project represents a portfolio project entry.
//
// Order defines the display sequence (ascending). It is assigned as
// collection-length+1 at creation and never renumbered on delete, so gaps
// can accumulate; listings always sort by it.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Overline     string   `json:"overline"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	Image        string   `json:"image"`
	Order        int      `json:"order"`
}

// Defaults applied when a project is created without the optional fields.
const (
	DefaultOverline = "Featured Project"
	DefaultLinkURL  = "#"
)
