package talent

// Status is the social security compliance state of a talent record.
type Status string

const (
	StatusUpdated Status = "Updated"
	StatusPending Status = "Pending"
)

// Talent is a domain expert linked to projects by name.
type Talent struct {
	ID                   string   `json:"id" yaml:"id"`
	Name                 string   `json:"name" yaml:"name"`
	Expertise            string   `json:"expertise" yaml:"expertise"`
	ContactPhone         string   `json:"contactPhone" yaml:"contactPhone"`
	SocialSecurityStatus Status   `json:"socialSecurityStatus" yaml:"socialSecurityStatus"`
	LastUpdateDate       string   `json:"lastUpdateDate" yaml:"lastUpdateDate"`
	RelatedProjects      []string `json:"relatedProjects" yaml:"relatedProjects"`
}
