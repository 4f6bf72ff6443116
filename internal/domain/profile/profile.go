package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// Owner is the joined name/avatar pair of the user owning a profile.
// It is read-only; the user document itself lives in the user domain.
type Owner struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Social is the fixed set of optional social links. Non-empty values are
// stored normalized to absolute HTTPS URLs.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// Profile is the per-user extended attribute document. At most one exists
// per user; the repository upsert keyed on UserID enforces that.
type Profile struct {
	UserID         uuid.UUID    `json:"-"`
	User           *Owner       `json:"user,omitempty"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website"`
	Location       string       `json:"location,omitempty"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Social         Social       `json:"social"`
	Date           time.Time    `json:"date"`
}

// PrependExperience inserts e at the head of the list, newest first.
func (p *Profile) PrependExperience(e Experience) {
	p.Experience = append([]Experience{e}, p.Experience...)
}

// PrependEducation inserts e at the head of the list, newest first.
func (p *Profile) PrependEducation(e Education) {
	p.Education = append([]Education{e}, p.Education...)
}

// RemoveExperience filters out the entry with the given id. Removing an
// unknown id is a no-op.
func (p *Profile) RemoveExperience(id uuid.UUID) {
	kept := p.Experience[:0]
	for _, e := range p.Experience {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	p.Experience = kept
}

// RemoveEducation filters out the entry with the given id. Removing an
// unknown id is a no-op.
func (p *Profile) RemoveEducation(id uuid.UUID) {
	kept := p.Education[:0]
	for _, e := range p.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	p.Education = kept
}

type Repository interface {
	// GetByUserID returns the profile with the owner's name/avatar joined in,
	// or ErrProfileNotFound.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// GetAll returns every profile, each with its owner joined in.
	GetAll(ctx context.Context) ([]*Profile, error)
	// Upsert atomically inserts the profile or replaces its top-level fields,
	// keyed on UserID. Experience and education lists are left untouched on
	// update.
	Upsert(ctx context.Context, p *Profile) error
	// Save persists the whole document, experience and education included.
	Save(ctx context.Context, p *Profile) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
