package project

import "strings"

// Project is a bidding project record. ContractAmount is expressed in units
// of 10,000 currency units.
type Project struct {
	ID                  string  `json:"id" yaml:"id"`
	ProjectName         string  `json:"projectName" yaml:"projectName"`
	Keywords            string  `json:"keywords" yaml:"keywords"`
	ExtendedTerms       string  `json:"extendedTerms" yaml:"extendedTerms"`
	ProjectContent      string  `json:"projectContent" yaml:"projectContent"`
	ContractSigningDate string  `json:"contractSigningDate" yaml:"contractSigningDate"`
	ProjectEndDate      string  `json:"projectEndDate" yaml:"projectEndDate"`
	ContractAmount      float64 `json:"contractAmount" yaml:"contractAmount"`
	ConstructionUnit    string  `json:"constructionUnit" yaml:"constructionUnit"`
	ContactPerson       string  `json:"contactPerson" yaml:"contactPerson"`
	ContactPhone        string  `json:"contactPhone" yaml:"contactPhone"`
}

// Tags splits Keywords on commas and trims each segment. Empty segments are dropped.
func (p Project) Tags() []string {
	parts := strings.Split(p.Keywords, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
