package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/rpggio/bidintel/internal/store"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixedSeed struct{}

func (fixedSeed) Seed() ([]project.Project, []talent.Talent, error) {
	return []project.Project{testProject("1", "Seeded")},
		[]talent.Talent{{ID: "t1", SocialSecurityStatus: talent.StatusPending, RelatedProjects: []string{}}},
		nil
}

func TestRepository_BacksStore(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	first := store.New(NewRepository(db), nil)
	_, err := first.Load(ctx, fixedSeed{})
	require.NoError(t, err)

	_, err = first.AppendProject(ctx, testProject("2", "Added"))
	require.NoError(t, err)
	_, _, err = first.UpdateTalents(ctx, func(cur []talent.Talent) []talent.Talent {
		return talent.Sync(cur, testNow)
	})
	require.NoError(t, err)

	// A second store over the same database sees the written-through state.
	second := store.New(NewRepository(db), nil)
	snap, err := second.Load(ctx, fixedSeed{})
	require.NoError(t, err)
	require.Len(t, snap.Projects, 2)
	require.Equal(t, "Seeded", snap.Projects[0].ProjectName)
	require.Equal(t, "Added", snap.Projects[1].ProjectName)
	require.Equal(t, talent.StatusUpdated, snap.Talents[0].SocialSecurityStatus)
	require.Equal(t, "2024-06-01", snap.Talents[0].LastUpdateDate)
}
