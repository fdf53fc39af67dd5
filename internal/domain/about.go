package domain

// About is the singleton "about me" record. Updates replace it wholesale.
type About struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
}
