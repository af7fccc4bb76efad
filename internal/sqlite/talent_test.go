package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/rpggio/bidintel/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestTalentRepository_ReplaceAllAndList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTalentRepository(db)
	ctx := context.Background()

	in := []talent.Talent{
		{
			ID:                   "t1",
			Name:                 "Dr. Wang Qiang",
			Expertise:            "Structural Engineering",
			ContactPhone:         "139-1111-2222",
			SocialSecurityStatus: talent.StatusUpdated,
			LastUpdateDate:       "2024-05-01",
			RelatedProjects:      []string{"Smart City Infrastructure Phase I", "Unknown Project"},
		},
		{
			ID:                   "t2",
			Name:                 "Chen Mei",
			SocialSecurityStatus: talent.StatusPending,
			LastUpdateDate:       "2024-04-15",
			RelatedProjects:      []string{},
		},
	}
	require.NoError(t, repo.ReplaceAll(ctx, in))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestTalentRepository_NilRelatedProjects(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTalentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []talent.Talent{{ID: "t1", SocialSecurityStatus: talent.StatusPending}}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Empty(t, got[0].RelatedProjects)
}

func TestTalentRepository_RejectsUnknownStatus(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTalentRepository(db)
	ctx := context.Background()

	err := repo.ReplaceAll(ctx, []talent.Talent{{ID: "t1", SocialSecurityStatus: "Expired"}})
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}
