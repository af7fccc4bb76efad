package talent_test

import (
	"testing"
	"time"

	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/stretchr/testify/require"
)

func TestSync_Scenario(t *testing.T) {
	in := []talent.Talent{{ID: "t2", SocialSecurityStatus: talent.StatusPending, LastUpdateDate: "2024-04-15"}}
	today := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	got := talent.Sync(in, today)
	require.Equal(t, []talent.Talent{{ID: "t2", SocialSecurityStatus: talent.StatusUpdated, LastUpdateDate: "2024-06-01"}}, got)
	require.Equal(t, talent.StatusPending, in[0].SocialSecurityStatus)
}

func TestSync_PreservesOrderAndOtherFields(t *testing.T) {
	in := sampleTalents()
	got := talent.Sync(in, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	require.Len(t, got, len(in))
	for i := range in {
		require.Equal(t, in[i].ID, got[i].ID)
		require.Equal(t, in[i].Name, got[i].Name)
		require.Equal(t, in[i].Expertise, got[i].Expertise)
		require.Equal(t, in[i].RelatedProjects, got[i].RelatedProjects)
		require.Equal(t, talent.StatusUpdated, got[i].SocialSecurityStatus)
		require.Equal(t, "2024-06-01", got[i].LastUpdateDate)
	}
}

func TestSync_Idempotent(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	once := talent.Sync(sampleTalents(), today)
	twice := talent.Sync(once, today)
	require.Equal(t, once, twice)
}

func TestSync_DoesNotAliasRelatedProjects(t *testing.T) {
	in := sampleTalents()
	got := talent.Sync(in, time.Now())
	got[0].RelatedProjects[0] = "renamed"
	require.Equal(t, "Smart City Infrastructure Phase I", in[0].RelatedProjects[0])
}

func TestSync_Empty(t *testing.T) {
	require.Empty(t, talent.Sync(nil, time.Now()))
}
