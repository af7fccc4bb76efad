package talent

import (
	"slices"
	"time"

	"github.com/rpggio/bidintel/internal/domain/query"
)

// SyncMessage confirms a completed bulk synchronization.
const SyncMessage = "Monthly database synchronization complete."

// Sync moves every record to StatusUpdated and stamps today's date,
// regardless of prior status. The input is not modified.
func Sync(all []Talent, today time.Time) []Talent {
	stamp := today.Format(query.DateLayout)
	out := make([]Talent, len(all))
	for i, t := range all {
		t.SocialSecurityStatus = StatusUpdated
		t.LastUpdateDate = stamp
		t.RelatedProjects = slices.Clone(t.RelatedProjects)
		out[i] = t
	}
	return out
}
