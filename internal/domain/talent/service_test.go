package talent_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/rpggio/bidintel/internal/store"
	"github.com/stretchr/testify/require"
)

func newTalentService(t *testing.T) (*talent.Service, *store.Store) {
	t.Helper()
	s := store.New(nil, nil)
	_, err := s.ReplaceTalents(context.Background(), sampleTalents())
	require.NoError(t, err)

	clock := func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	return talent.NewService(s, nil).WithClock(clock), s
}

func TestTalentService_List(t *testing.T) {
	svc, s := newTalentService(t)

	res := svc.List(context.Background(), talent.RawCriteria{Status: "Pending"})
	require.Equal(t, s.Version(), res.Version)
	require.Equal(t, 3, res.Total)
	require.Equal(t, 2, res.Count)
	require.Equal(t, []string{"t2", "t3"}, talentIDs(res.Talents))
}

func TestTalentService_Sync(t *testing.T) {
	ctx := context.Background()
	svc, s := newTalentService(t)
	before := s.Version()

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	require.Equal(t, talent.SyncMessage, res.Message)
	require.Equal(t, 3, res.Synced)
	require.Greater(t, res.Version, before)

	pending := svc.List(ctx, talent.RawCriteria{Status: "Pending"})
	require.Empty(t, pending.Talents)

	all := svc.List(ctx, talent.RawCriteria{})
	for _, tal := range all.Talents {
		require.Equal(t, talent.StatusUpdated, tal.SocialSecurityStatus)
		require.Equal(t, "2024-06-01", tal.LastUpdateDate)
	}
}

func TestTalentService_SyncEmpty(t *testing.T) {
	svc := talent.NewService(store.New(nil, nil), nil)
	res, err := svc.Sync(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, res.Synced)
	require.Empty(t, res.Talents)
}

func TestTalentService_SyncStampsUTCDate(t *testing.T) {
	s := store.New(nil, nil)
	_, err := s.ReplaceTalents(context.Background(), sampleTalents())
	require.NoError(t, err)

	// 2024-05-31T20:00Z is already June 1st in Tokyo.
	tokyo := time.FixedZone("JST", 9*60*60)
	clock := func() time.Time { return time.Date(2024, 6, 1, 5, 0, 0, 0, tokyo) }
	svc := talent.NewService(s, nil).WithClock(clock)

	res, err := svc.Sync(context.Background())
	require.NoError(t, err)
	for _, tal := range res.Talents {
		require.Equal(t, "2024-05-31", tal.LastUpdateDate)
	}
}
