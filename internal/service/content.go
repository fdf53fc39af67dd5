package service

import (
	"sort"
	"strconv"
	"time"

	"github.com/sumire/portfolio-cms/internal/domain"
	"github.com/sumire/portfolio-cms/internal/repository"
)

// ContentService implements the portfolio content operations over the
// document store. Every mutation is a whole-document update serialized by
// the store.
type ContentService struct {
	store *repository.Store
}

// NewContentService creates a new ContentService.
func NewContentService(store *repository.Store) *ContentService {
	return &ContentService{store: store}
}

// ProjectInput carries the writable project fields. Image is the stored
// relative path of an upload from the same request; empty means no new
// image.
type ProjectInput struct {
	Title        string
	Overline     string
	Description  string
	Technologies []string
	GitHubURL    string
	LiveURL      string
	Image        string
}

// ExperienceInput carries the writable experience fields.
type ExperienceInput struct {
	Company     string
	Position    string
	Period      string
	Description []string
	TabName     string
}

// AboutInput carries the full replacement for the about record.
type AboutInput struct {
	Name         string
	Title        string
	Location     string
	Description  []string
	Technologies []string
	Image        string
}

// ListProjects returns all projects sorted ascending by display order.
func (s *ContentService) ListProjects() ([]domain.Project, error) {
	var projects []domain.Project
	err := s.store.View(func(doc *domain.Document) error {
		projects = append([]domain.Project{}, doc.Projects...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByOrder(projects, func(p domain.Project) int { return p.Order })
	return projects, nil
}

// CreateProject appends a new project. Missing optional fields get
// placeholder defaults; id and order are assigned under the store lock.
func (s *ContentService) CreateProject(in ProjectInput) (domain.Project, error) {
	var created domain.Project
	err := s.store.Update(func(doc *domain.Document) error {
		p := domain.Project{
			ID:           newID(func(id string) bool { return projectIndex(doc, id) >= 0 }),
			Title:        in.Title,
			Overline:     in.Overline,
			Description:  in.Description,
			Technologies: in.Technologies,
			GitHubURL:    in.GitHubURL,
			LiveURL:      in.LiveURL,
			Image:        in.Image,
			Order:        len(doc.Projects) + 1,
		}
		if p.Overline == "" {
			p.Overline = domain.DefaultOverline
		}
		if p.GitHubURL == "" {
			p.GitHubURL = domain.DefaultLinkURL
		}
		if p.LiveURL == "" {
			p.LiveURL = domain.DefaultLinkURL
		}
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
		doc.Projects = append(doc.Projects, p)
		created = p
		return nil
	})
	return created, err
}

// UpdateProject overwrites the content fields of the project with the given
// id. The stored image is replaced only when the input carries a new one;
// id and order never change.
func (s *ContentService) UpdateProject(id string, in ProjectInput) (domain.Project, error) {
	var updated domain.Project
	err := s.store.Update(func(doc *domain.Document) error {
		i := projectIndex(doc, id)
		if i < 0 {
			return domain.ErrNotFound
		}

		p := doc.Projects[i]
		p.Title = in.Title
		p.Overline = in.Overline
		p.Description = in.Description
		p.Technologies = in.Technologies
		p.GitHubURL = in.GitHubURL
		p.LiveURL = in.LiveURL
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
		if in.Image != "" {
			p.Image = in.Image
		}

		doc.Projects[i] = p
		updated = p
		return nil
	})
	return updated, err
}

// DeleteProject removes the project with the given id. Remaining order
// values are not renumbered, so gaps persist; any uploaded image stays on
// disk.
func (s *ContentService) DeleteProject(id string) error {
	return s.store.Update(func(doc *domain.Document) error {
		i := projectIndex(doc, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
		return nil
	})
}

// ListExperience returns all experience entries sorted ascending by display
// order.
func (s *ContentService) ListExperience() ([]domain.Experience, error) {
	var entries []domain.Experience
	err := s.store.View(func(doc *domain.Document) error {
		entries = append([]domain.Experience{}, doc.Experience...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByOrder(entries, func(e domain.Experience) int { return e.Order })
	return entries, nil
}

// CreateExperience appends a new experience entry.
func (s *ContentService) CreateExperience(in ExperienceInput) (domain.Experience, error) {
	var created domain.Experience
	err := s.store.Update(func(doc *domain.Document) error {
		e := domain.Experience{
			ID:          newID(func(id string) bool { return experienceIndex(doc, id) >= 0 }),
			Company:     in.Company,
			Position:    in.Position,
			Period:      in.Period,
			Description: in.Description,
			TabName:     in.TabName,
			Order:       len(doc.Experience) + 1,
			IsActive:    false,
		}
		if e.Description == nil {
			e.Description = []string{}
		}
		doc.Experience = append(doc.Experience, e)
		created = e
		return nil
	})
	return created, err
}

// UpdateExperience overwrites the content fields of the entry with the
// given id.
func (s *ContentService) UpdateExperience(id string, in ExperienceInput) (domain.Experience, error) {
	var updated domain.Experience
	err := s.store.Update(func(doc *domain.Document) error {
		i := experienceIndex(doc, id)
		if i < 0 {
			return domain.ErrNotFound
		}

		e := doc.Experience[i]
		e.Company = in.Company
		e.Position = in.Position
		e.Period = in.Period
		e.Description = in.Description
		e.TabName = in.TabName
		if e.Description == nil {
			e.Description = []string{}
		}

		doc.Experience[i] = e
		updated = e
		return nil
	})
	return updated, err
}

// DeleteExperience removes the entry with the given id.
func (s *ContentService) DeleteExperience(id string) error {
	return s.store.Update(func(doc *domain.Document) error {
		i := experienceIndex(doc, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		doc.Experience = append(doc.Experience[:i], doc.Experience[i+1:]...)
		return nil
	})
}

// GetAbout returns the singleton about record.
func (s *ContentService) GetAbout() (domain.About, error) {
	var about domain.About
	err := s.store.View(func(doc *domain.Document) error {
		about = doc.About
		return nil
	})
	return about, err
}

// UpdateAbout replaces the about record wholesale. The previous image path
// survives only when the input carries no new one.
func (s *ContentService) UpdateAbout(in AboutInput) (domain.About, error) {
	var updated domain.About
	err := s.store.Update(func(doc *domain.Document) error {
		about := domain.About{
			Name:         in.Name,
			Title:        in.Title,
			Location:     in.Location,
			Description:  in.Description,
			Technologies: in.Technologies,
			Image:        in.Image,
		}
		if about.Description == nil {
			about.Description = []string{}
		}
		if about.Technologies == nil {
			about.Technologies = []string{}
		}
		if about.Image == "" {
			about.Image = doc.About.Image
		}
		doc.About = about
		updated = about
		return nil
	})
	return updated, err
}

// GetCV returns the singleton CV record.
func (s *ContentService) GetCV() (domain.CV, error) {
	var cv domain.CV
	err := s.store.View(func(doc *domain.Document) error {
		cv = doc.CV
		return nil
	})
	return cv, err
}

// SetCV replaces the CV record with the given original filename and stored
// path. The previously stored file is left on disk.
func (s *ContentService) SetCV(filename, path string) (domain.CV, error) {
	var cv domain.CV
	err := s.store.Update(func(doc *domain.Document) error {
		doc.CV = domain.CV{
			Filename:   filename,
			Path:       path,
			UploadedAt: time.Now().UTC(),
		}
		cv = doc.CV
		return nil
	})
	return cv, err
}

func projectIndex(doc *domain.Document, id string) int {
	for i := range doc.Projects {
		if doc.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

func experienceIndex(doc *domain.Document, id string) int {
	for i := range doc.Experience {
		if doc.Experience[i].ID == id {
			return i
		}
	}
	return -1
}

// newID derives an id from the current unix-millisecond clock, the scheme
// the existing store files use. Collisions from same-millisecond creations
// are resolved by bumping, which is safe because ids are only assigned
// under the store lock.
func newID(taken func(id string) bool) string {
	n := time.Now().UnixMilli()
	id := strconv.FormatInt(n, 10)
	for taken(id) {
		n++
		id = strconv.FormatInt(n, 10)
	}
	return id
}

func sortByOrder[T any](items []T, order func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		return order(items[i]) < order(items[j])
	})
}
