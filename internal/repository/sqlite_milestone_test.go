package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestoneRepo_CreateWithLinks(t *testing.T) {
	database := testutil.NewTestDB(t)
	items := NewSQLiteWorkItemRepo(database)
	milestones := NewSQLiteMilestoneRepo(database)
	ctx := context.Background()

	a := testutil.NewWorkItem("a")
	b := testutil.NewWorkItem("b")
	require.NoError(t, items.Create(ctx, a))
	require.NoError(t, items.Create(ctx, b))

	m := testutil.NewMilestone("Beta", "2026-06-01", a.ID, b.ID)
	require.NoError(t, milestones.Create(ctx, m))

	got, err := milestones.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beta", got.Title)
	assert.Equal(t, "2026-06-01", domain.FormatDay(got.TargetDate))
	assert.ElementsMatch(t, []string{a.ID, b.ID}, got.LinkedWorkItemIDs)
}

func TestMilestoneRepo_ListOrderedByTarget(t *testing.T) {
	database := testutil.NewTestDB(t)
	milestones := NewSQLiteMilestoneRepo(database)
	ctx := context.Background()

	require.NoError(t, milestones.Create(ctx, testutil.NewMilestone("Later", "2026-09-01")))
	require.NoError(t, milestones.Create(ctx, testutil.NewMilestone("Sooner", "2026-04-01")))

	list, err := milestones.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sooner", list[0].Title)
	assert.Equal(t, "Later", list[1].Title)
}

func TestMilestoneRepo_UnlinkAndCascade(t *testing.T) {
	database := testutil.NewTestDB(t)
	items := NewSQLiteWorkItemRepo(database)
	milestones := NewSQLiteMilestoneRepo(database)
	ctx := context.Background()

	a := testutil.NewWorkItem("a")
	require.NoError(t, items.Create(ctx, a))
	m := testutil.NewMilestone("Beta", "2026-06-01", a.ID)
	require.NoError(t, milestones.Create(ctx, m))

	require.NoError(t, milestones.Unlink(ctx, m.ID, a.ID))
	got, err := milestones.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LinkedWorkItemIDs)

	// Re-link, then delete the work item: the link must cascade away.
	require.NoError(t, milestones.Link(ctx, m.ID, a.ID))
	require.NoError(t, items.Delete(ctx, a.ID))
	got, err = milestones.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LinkedWorkItemIDs)
}

func TestMilestoneRepo_DeleteMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	milestones := NewSQLiteMilestoneRepo(database)

	assert.ErrorIs(t, milestones.Delete(context.Background(), "nope"), ErrNotFound)
}
