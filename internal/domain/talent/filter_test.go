package talent_test

import (
	"testing"

	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/stretchr/testify/require"
)

func sampleTalents() []talent.Talent {
	return []talent.Talent{
		{
			ID:                   "t1",
			Name:                 "Dr. Wang Qiang",
			Expertise:            "Structural Engineering, Seismic Design",
			SocialSecurityStatus: talent.StatusUpdated,
			LastUpdateDate:       "2024-05-01",
			RelatedProjects:      []string{"Smart City Infrastructure Phase I"},
		},
		{
			ID:                   "t2",
			Name:                 "Chen Mei",
			Expertise:            "Environmental Impact Assessment",
			SocialSecurityStatus: talent.StatusPending,
			LastUpdateDate:       "2024-04-15",
			RelatedProjects:      []string{"Green Valley Water Reclamation"},
		},
		{
			ID:                   "t3",
			Name:                 "Wang Li",
			Expertise:            "Water Treatment",
			SocialSecurityStatus: talent.StatusPending,
			LastUpdateDate:       "2024-03-02",
		},
	}
}

func talentIDs(talents []talent.Talent) []string {
	out := make([]string, 0, len(talents))
	for _, t := range talents {
		out = append(out, t.ID)
	}
	return out
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	all := sampleTalents()
	require.Equal(t, all, talent.Filter(all, talent.ParseCriteria(talent.RawCriteria{})))
	require.Equal(t, all, talent.Filter(all, talent.ParseCriteria(talent.RawCriteria{Status: "All"})))
}

func TestFilter_EmptyCollection(t *testing.T) {
	got := talent.Filter([]talent.Talent{}, talent.ParseCriteria(talent.RawCriteria{Status: "Pending"}))
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFilter_NameAndExpertise(t *testing.T) {
	all := sampleTalents()

	got := talent.Filter(all, talent.ParseCriteria(talent.RawCriteria{Name: "wang"}))
	require.Equal(t, []string{"t1", "t3"}, talentIDs(got))

	got = talent.Filter(all, talent.ParseCriteria(talent.RawCriteria{Name: "wang", Expertise: "WATER"}))
	require.Equal(t, []string{"t3"}, talentIDs(got))

	got = talent.Filter(all, talent.ParseCriteria(talent.RawCriteria{Expertise: "seismic"}))
	require.Equal(t, []string{"t1"}, talentIDs(got))
}

func TestFilter_Status(t *testing.T) {
	all := sampleTalents()

	got := talent.Filter(all, talent.ParseCriteria(talent.RawCriteria{Status: "Pending"}))
	require.Equal(t, []string{"t2", "t3"}, talentIDs(got))

	got = talent.Filter(all, talent.ParseCriteria(talent.RawCriteria{Status: "Updated"}))
	require.Equal(t, []string{"t1"}, talentIDs(got))

	got = talent.Filter(all, talent.ParseCriteria(talent.RawCriteria{Status: "bogus"}))
	require.Equal(t, []string{"t1", "t2", "t3"}, talentIDs(got))
}

func TestParseCriteria_Status(t *testing.T) {
	require.Equal(t, talent.FilterAll, talent.ParseCriteria(talent.RawCriteria{}).Status)
	require.Equal(t, talent.FilterPending, talent.ParseCriteria(talent.RawCriteria{Status: " Pending "}).Status)
	require.Equal(t, talent.FilterAll, talent.ParseCriteria(talent.RawCriteria{Status: "pending"}).Status)
}
