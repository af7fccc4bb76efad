package project_test

import (
	"testing"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func sampleProjects() []project.Project {
	return []project.Project{
		{
			ID:                  "1",
			ProjectName:         "Smart City Infrastructure Phase I",
			ContractSigningDate: "2023-10-15",
			ContractAmount:      1250,
			ConstructionUnit:    "Zhongshan Construction Group",
		},
		{
			ID:                  "2",
			ProjectName:         "Green Valley Water Reclamation",
			ContractSigningDate: "2024-01-20",
			ContractAmount:      4800,
			ConstructionUnit:    "EcoBuild Solutions Ltd.",
		},
		{
			ID:                  "3",
			ProjectName:         "Harbor Smart Lighting",
			ContractSigningDate: "2024-06-01",
			ContractAmount:      300,
			ConstructionUnit:    "Zhongshan Lighting Co.",
		},
	}
}

func ids(projects []project.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	all := sampleProjects()
	got := project.Filter(all, project.ParseCriteria(project.RawCriteria{}))
	require.Equal(t, all, got)
}

func TestFilter_EmptyCollection(t *testing.T) {
	got := project.Filter(nil, project.ParseCriteria(project.RawCriteria{Name: "smart"}))
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFilter_NameAndUnitAreCaseInsensitiveSubstrings(t *testing.T) {
	all := sampleProjects()

	got := project.Filter(all, project.ParseCriteria(project.RawCriteria{Name: "SMART"}))
	require.Equal(t, []string{"1", "3"}, ids(got))

	got = project.Filter(all, project.ParseCriteria(project.RawCriteria{Name: "smart", Unit: "lighting"}))
	require.Equal(t, []string{"3"}, ids(got))

	got = project.Filter(all, project.ParseCriteria(project.RawCriteria{Unit: "build sol"}))
	require.Equal(t, []string{"2"}, ids(got))
}

func TestFilter_AmountRangeIsInclusive(t *testing.T) {
	all := sampleProjects()

	got := project.Filter(all, project.ParseCriteria(project.RawCriteria{MinAmount: "1250", MaxAmount: "4800"}))
	require.Equal(t, []string{"1", "2"}, ids(got))

	got = project.Filter(all, project.ParseCriteria(project.RawCriteria{MaxAmount: "1250"}))
	require.Equal(t, []string{"1", "3"}, ids(got))

	got = project.Filter(all, project.ParseCriteria(project.RawCriteria{MinAmount: "4800.01"}))
	require.Empty(t, got)
}

func TestFilter_MalformedAmountIsUnbounded(t *testing.T) {
	all := sampleProjects()
	malformed := project.Filter(all, project.ParseCriteria(project.RawCriteria{MinAmount: "abc", MaxAmount: ""}))
	empty := project.Filter(all, project.ParseCriteria(project.RawCriteria{}))
	require.Equal(t, empty, malformed)
}

func TestFilter_SigningDateRangeIsInclusive(t *testing.T) {
	all := sampleProjects()

	got := project.Filter(all, project.ParseCriteria(project.RawCriteria{DateFrom: "2023-10-15", DateTo: "2024-01-20"}))
	require.Equal(t, []string{"1", "2"}, ids(got))

	got = project.Filter(all, project.ParseCriteria(project.RawCriteria{DateFrom: "2024-01-21"}))
	require.Equal(t, []string{"3"}, ids(got))

	got = project.Filter(all, project.ParseCriteria(project.RawCriteria{DateTo: "2023-10-14"}))
	require.Empty(t, got)

	got = project.Filter(all, project.ParseCriteria(project.RawCriteria{DateFrom: "not a date"}))
	require.Equal(t, ids(all), ids(got))
}

func TestFilter_UnparseableRecordDate(t *testing.T) {
	all := append(sampleProjects(), project.Project{ID: "4", ProjectName: "Undated", ContractSigningDate: ""})

	got := project.Filter(all, project.ParseCriteria(project.RawCriteria{}))
	require.Len(t, got, 4)

	got = project.Filter(all, project.ParseCriteria(project.RawCriteria{DateFrom: "2000-01-01"}))
	require.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestFilter_ResultIsOrderedSubsequence(t *testing.T) {
	all := sampleProjects()
	criteria := []project.RawCriteria{
		{},
		{Name: "a"},
		{Unit: "zhongshan"},
		{MinAmount: "500"},
		{DateFrom: "2024-01-01", MaxAmount: "5000"},
	}

	for _, raw := range criteria {
		got := project.Filter(all, project.ParseCriteria(raw))
		next := 0
		for _, p := range got {
			for next < len(all) && all[next].ID != p.ID {
				next++
			}
			require.Less(t, next, len(all), "result not a subsequence for %+v", raw)
			next++
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	all := sampleProjects()
	before := sampleProjects()
	_ = project.Filter(all, project.ParseCriteria(project.RawCriteria{Name: "green"}))
	require.Equal(t, before, all)
}

func TestProject_Tags(t *testing.T) {
	p := project.Project{Keywords: " IoT, Traffic Management ,5G,, "}
	require.Equal(t, []string{"IoT", "Traffic Management", "5G"}, p.Tags())
	require.Empty(t, project.Project{}.Tags())
}
