package draft

import (
	"time"

	"github.com/rpggio/bidintel/internal/domain/project"
)

// Status represents the lifecycle status of a draft
type Status string

const (
	StatusOpen      Status = "open"
	StatusSubmitted Status = "submitted"
	StatusDiscarded Status = "discarded"
)

// Fields mirrors the project creation form.
type Fields struct {
	ProjectName         string  `json:"projectName"`
	Keywords            string  `json:"keywords"`
	ExtendedTerms       string  `json:"extendedTerms"`
	ProjectContent      string  `json:"projectContent"`
	ContractSigningDate string  `json:"contractSigningDate"`
	ProjectEndDate      string  `json:"projectEndDate"`
	ContractAmount      float64 `json:"contractAmount"`
	ConstructionUnit    string  `json:"constructionUnit"`
	ContactPerson       string  `json:"contactPerson"`
	ContactPhone        string  `json:"contactPhone"`
}

// Patch holds form edits. Nil fields are left unchanged.
type Patch struct {
	ProjectName         *string  `json:"projectName,omitempty"`
	Keywords            *string  `json:"keywords,omitempty"`
	ExtendedTerms       *string  `json:"extendedTerms,omitempty"`
	ProjectContent      *string  `json:"projectContent,omitempty"`
	ContractSigningDate *string  `json:"contractSigningDate,omitempty"`
	ProjectEndDate      *string  `json:"projectEndDate,omitempty"`
	ContractAmount      *float64 `json:"contractAmount,omitempty"`
	ConstructionUnit    *string  `json:"constructionUnit,omitempty"`
	ContactPerson       *string  `json:"contactPerson,omitempty"`
	ContactPhone        *string  `json:"contactPhone,omitempty"`
}

// Draft is one instance of the project creation form.
type Draft struct {
	ID         string     `json:"id"`
	Status     Status     `json:"status"`
	Fields     Fields     `json:"fields"`
	Expanding  bool       `json:"expanding"`
	Generation uint64     `json:"generation"`
	ProjectID  string     `json:"projectId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ClosedAt   *time.Time `json:"closedAt,omitempty"`
}

// Apply copies the non-nil patch values onto f. It reports whether any input
// to term expansion changed.
func (f *Fields) Apply(p Patch) (expansionInputsChanged bool) {
	setString := func(dst *string, src *string, tracked bool) {
		if src == nil || *dst == *src {
			return
		}
		*dst = *src
		if tracked {
			expansionInputsChanged = true
		}
	}

	setString(&f.ProjectName, p.ProjectName, true)
	setString(&f.Keywords, p.Keywords, true)
	setString(&f.ExtendedTerms, p.ExtendedTerms, true)
	setString(&f.ProjectContent, p.ProjectContent, false)
	setString(&f.ContractSigningDate, p.ContractSigningDate, false)
	setString(&f.ProjectEndDate, p.ProjectEndDate, false)
	setString(&f.ConstructionUnit, p.ConstructionUnit, false)
	setString(&f.ContactPerson, p.ContactPerson, false)
	setString(&f.ContactPhone, p.ContactPhone, false)
	if p.ContractAmount != nil {
		f.ContractAmount = *p.ContractAmount
	}
	return expansionInputsChanged
}

// CreateRequest converts the form into a project creation request.
func (f Fields) CreateRequest() project.CreateRequest {
	return project.CreateRequest{
		ProjectName:         f.ProjectName,
		Keywords:            f.Keywords,
		ExtendedTerms:       f.ExtendedTerms,
		ProjectContent:      f.ProjectContent,
		ContractSigningDate: f.ContractSigningDate,
		ProjectEndDate:      f.ProjectEndDate,
		ContractAmount:      f.ContractAmount,
		ConstructionUnit:    f.ConstructionUnit,
		ContactPerson:       f.ContactPerson,
		ContactPhone:        f.ContactPhone,
	}
}

func (d *Draft) clone() *Draft {
	out := *d
	if d.ClosedAt != nil {
		closed := *d.ClosedAt
		out.ClosedAt = &closed
	}
	return &out
}
