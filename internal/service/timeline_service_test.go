package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimelineFixture(t *testing.T) (TimelineService, WorkItemService, DependencyService, MilestoneService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	workItems := repository.NewSQLiteWorkItemRepo(database)
	deps := repository.NewSQLiteDependencyRepo(database)
	milestones := repository.NewSQLiteMilestoneRepo(database)
	return NewTimelineService(workItems, deps, milestones),
		NewWorkItemService(workItems),
		NewDependencyService(deps, workItems),
		NewMilestoneService(milestones, workItems)
}

func TestTimelineService_LoadAssemblesPayload(t *testing.T) {
	timelineSvc, itemSvc, depSvc, msSvc := newTimelineFixture(t)
	ctx := context.Background()

	a := testutil.NewWorkItem("Design",
		testutil.WithDates("2026-03-01", "2026-03-05"),
		testutil.WithRow(0),
		testutil.WithCritical())
	b := testutil.NewWorkItem("Build",
		testutil.WithDates("2026-03-05", "2026-03-20"),
		testutil.WithRow(1))
	require.NoError(t, itemSvc.Create(ctx, a))
	require.NoError(t, itemSvc.Create(ctx, b))
	require.NoError(t, depSvc.Add(ctx, a.ID, b.ID, domain.FinishToStart, 0))
	require.NoError(t, msSvc.Create(ctx, testutil.NewMilestone("Beta", "2026-04-01", b.ID)))

	payload, err := timelineSvc.Load(ctx)
	require.NoError(t, err)

	require.Len(t, payload.Items, 2)
	assert.Equal(t, "Design", payload.Items[0].Title, "items keep display order")
	require.Len(t, payload.Dependencies, 1)
	require.Len(t, payload.Milestones, 1)
	assert.Equal(t, map[string]bool{a.ID: true}, payload.CriticalPath)

	earliest, latest, ok := payload.DateSpan()
	require.True(t, ok)
	assert.Equal(t, "2026-03-01", domain.FormatDay(earliest))
	assert.Equal(t, "2026-04-01", domain.FormatDay(latest), "milestone target extends the span")
}

func TestTimelineService_LoadEmpty(t *testing.T) {
	timelineSvc, _, _, _ := newTimelineFixture(t)

	payload, err := timelineSvc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, payload.Items)
	assert.Empty(t, payload.Dependencies)
	assert.Empty(t, payload.Milestones)

	_, _, ok := payload.DateSpan()
	assert.False(t, ok)
}

func TestPersistDates_AppliesValidProposal(t *testing.T) {
	timelineSvc, itemSvc, _, _ := newTimelineFixture(t)
	ctx := context.Background()

	item := testutil.NewWorkItem("Design", testutil.WithDates("2026-03-01", "2026-03-05"))
	require.NoError(t, itemSvc.Create(ctx, item))

	start, _ := domain.ParseDay("2026-03-10")
	end, _ := domain.ParseDay("2026-03-14")
	ok, err := timelineSvc.PersistDates(ctx, item.ID, start, end)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := itemSvc.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", domain.FormatDay(*got.StartDate))
}

func TestPersistDates_RejectsInvertedSpan(t *testing.T) {
	timelineSvc, itemSvc, _, _ := newTimelineFixture(t)
	ctx := context.Background()

	item := testutil.NewWorkItem("Design", testutil.WithDates("2026-03-01", "2026-03-05"))
	require.NoError(t, itemSvc.Create(ctx, item))

	start, _ := domain.ParseDay("2026-03-14")
	end, _ := domain.ParseDay("2026-03-10")
	ok, err := timelineSvc.PersistDates(ctx, item.ID, start, end)
	require.NoError(t, err, "rejection is not an error")
	assert.False(t, ok)

	got, err := itemSvc.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", domain.FormatDay(*got.StartDate), "stored dates untouched")
}

func TestPersistDates_RejectsUnscheduledItem(t *testing.T) {
	timelineSvc, itemSvc, _, _ := newTimelineFixture(t)
	ctx := context.Background()

	item := testutil.NewWorkItem("Backlog idea")
	require.NoError(t, itemSvc.Create(ctx, item))

	start, _ := domain.ParseDay("2026-03-10")
	end, _ := domain.ParseDay("2026-03-14")
	ok, err := timelineSvc.PersistDates(ctx, item.ID, start, end)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPersistDates_UnknownItemIsError(t *testing.T) {
	timelineSvc, _, _, _ := newTimelineFixture(t)

	start, _ := domain.ParseDay("2026-03-10")
	end, _ := domain.ParseDay("2026-03-14")
	_, err := timelineSvc.PersistDates(context.Background(), "ghost", start, end)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDependencyService_Validation(t *testing.T) {
	_, itemSvc, depSvc, _ := newTimelineFixture(t)
	ctx := context.Background()

	a := testutil.NewWorkItem("a")
	b := testutil.NewWorkItem("b")
	require.NoError(t, itemSvc.Create(ctx, a))
	require.NoError(t, itemSvc.Create(ctx, b))

	assert.Error(t, depSvc.Add(ctx, a.ID, a.ID, domain.FinishToStart, 0), "self-dependency rejected")
	assert.Error(t, depSvc.Add(ctx, a.ID, "ghost", domain.FinishToStart, 0), "unknown successor rejected")
	assert.Error(t, depSvc.Add(ctx, a.ID, b.ID, "sideways", 0), "unknown type rejected")
}

func TestDependencyService_CyclesAllowed(t *testing.T) {
	_, itemSvc, depSvc, _ := newTimelineFixture(t)
	ctx := context.Background()

	a := testutil.NewWorkItem("a")
	b := testutil.NewWorkItem("b")
	require.NoError(t, itemSvc.Create(ctx, a))
	require.NoError(t, itemSvc.Create(ctx, b))

	require.NoError(t, depSvc.Add(ctx, a.ID, b.ID, domain.FinishToStart, 0))
	require.NoError(t, depSvc.Add(ctx, b.ID, a.ID, domain.FinishToStart, 0),
		"cycles are stored as given; the chart never walks more than one hop")
}

func TestWorkItemService_Validation(t *testing.T) {
	_, itemSvc, _, _ := newTimelineFixture(t)
	ctx := context.Background()

	start, _ := domain.ParseDay("2026-03-05")
	item := &domain.WorkItem{Title: "half-dated", StartDate: &start}
	assert.Error(t, itemSvc.Create(ctx, item), "one-sided dates rejected")

	end, _ := domain.ParseDay("2026-03-01")
	item = &domain.WorkItem{Title: "inverted", StartDate: &start, EndDate: &end}
	assert.Error(t, itemSvc.Create(ctx, item), "inverted span rejected")
}
