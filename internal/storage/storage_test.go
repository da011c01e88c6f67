package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"greenmason/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) context.Context {
	t.Helper()
	require.NoError(t, InitDB(":memory:"))
	t.Cleanup(func() { _ = Close() })

	base := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	tick := 0
	nowFunc = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	t.Cleanup(func() { nowFunc = time.Now })
	return context.Background()
}

func TestCreateUser(t *testing.T) {
	ctx := setupDB(t)

	user, err := CreateUser(ctx, "jane_doe", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "jane_doe", user.Username)
	assert.Equal(t, "Jane Doe", user.DisplayName)
	assert.Zero(t, user.TotalScore)
	assert.Zero(t, user.ActionsCount)
	assert.False(t, user.CreatedAt.IsZero())

	_, err = CreateUser(ctx, "jane_doe", "Someone Else")
	assert.ErrorIs(t, err, ErrUsernameExists)

	t.Run("display name defaults to username", func(t *testing.T) {
		u, err := CreateUser(ctx, "bob", "")
		require.NoError(t, err)
		assert.Equal(t, "bob", u.DisplayName)
	})
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	ctx := setupDB(t)

	_, err := GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogAction(t *testing.T) {
	ctx := setupDB(t)

	res, err := LogAction(ctx, "newcomer", models.ActionSort, 15, "Sorted: can (recyclable)")
	require.NoError(t, err)
	assert.Equal(t, models.ScoreResult{Username: "newcomer", PointsAdded: 15, NewTotal: 15, Action: "sort"}, res)

	res, err = LogAction(ctx, "newcomer", models.ActionChat, 5, "")
	require.NoError(t, err)
	assert.Equal(t, 20, res.NewTotal)

	user, err := GetUserByUsername(ctx, "newcomer")
	require.NoError(t, err)
	assert.Equal(t, 20, user.TotalScore)
	assert.Equal(t, 2, user.ActionsCount)
	assert.True(t, user.LastActive.After(user.CreatedAt))

	actions, err := GetActionsByUsername(ctx, "newcomer", 10)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, models.ActionChat, actions[0].Action)
	assert.Equal(t, "Sorted: can (recyclable)", actions[1].Description)
}

func TestLeaderboardAndRank(t *testing.T) {
	ctx := setupDB(t)

	_, err := CreateUser(ctx, "zero", "Zero")
	require.NoError(t, err)
	for _, a := range []struct {
		user   string
		points int
	}{{"alice", 30}, {"bob", 50}, {"carol", 10}} {
		_, err := LogAction(ctx, a.user, models.ActionSort, a.points, "")
		require.NoError(t, err)
	}

	board, err := GetLeaderboard(ctx, 20)
	require.NoError(t, err)
	require.Len(t, board, 3, "users without points are not ranked")
	assert.Equal(t, "bob", board[0].Username)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "alice", board[1].Username)
	assert.Equal(t, 3, board[2].Rank)

	limited, err := GetLeaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	rank, err := GetUserRank(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	rank, err = GetUserRank(ctx, "zero")
	require.NoError(t, err)
	assert.Equal(t, 4, rank)
}

func TestPledges(t *testing.T) {
	ctx := setupDB(t)

	_, err := CreateUser(ctx, "jane_doe", "Jane Doe")
	require.NoError(t, err)

	first, err := CreatePledge(ctx, "jane_doe", "I will bring a reusable bottle")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", first.DisplayName)
	assert.NotEmpty(t, first.ID)

	_, err = CreatePledge(ctx, "jane_doe", "I will compost my lunch scraps")
	require.NoError(t, err)

	user, err := GetUserByUsername(ctx, "jane_doe")
	require.NoError(t, err)
	assert.Equal(t, 2*models.PointsPledge, user.TotalScore)

	pledges, err := GetPledges(ctx, 50)
	require.NoError(t, err)
	require.Len(t, pledges, 2)
	assert.Equal(t, "I will compost my lunch scraps", pledges[0].PledgeText)

	require.NoError(t, LikePledge(ctx, first.ID))
	assert.ErrorIs(t, LikePledge(ctx, "missing"), ErrPledgeNotFound)

	pledges, err = GetPledges(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, pledges[1].Likes)

	_, err = CreatePledge(ctx, "jane_doe", strings.Repeat("x", models.MaxPledgeLength+1))
	assert.ErrorIs(t, err, ErrPledgeTooLong)
}

func TestGetGlobalStats(t *testing.T) {
	ctx := setupDB(t)

	_, err := LogAction(ctx, "alice", models.ActionSort, 15, "")
	require.NoError(t, err)
	_, err = LogAction(ctx, "alice", models.ActionSort, 5, "")
	require.NoError(t, err)
	_, err = CreatePledge(ctx, "bob", "Walk to class")
	require.NoError(t, err)

	stats, err := GetGlobalStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 3, stats.TotalActions)
	assert.Equal(t, 1, stats.TotalPledges)
	assert.Equal(t, 40, stats.TotalPoints)
	assert.Equal(t, map[string]int{"sort": 2, "pledge": 1}, stats.ActionBreakdown)
}
