package project

import (
	"math"
	"strings"
	"time"

	"github.com/rpggio/bidintel/internal/domain/query"
)

// ValidateCreateInput validates fields required to create a project.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.ProjectName) == "" {
		return ErrInvalidInput
	}
	if req.ContractAmount < 0 || math.IsNaN(req.ContractAmount) || math.IsInf(req.ContractAmount, 0) {
		return ErrInvalidInput
	}
	if !validDate(req.ContractSigningDate) || !validDate(req.ProjectEndDate) {
		return ErrInvalidInput
	}
	return nil
}

func validDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	_, err := time.Parse(query.DateLayout, s)
	return err == nil
}
