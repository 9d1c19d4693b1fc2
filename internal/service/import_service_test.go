package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importPlanYAML = `
items:
  - ref: design
    title: Design
    status: in_progress
    start: 2026-03-01
    end: 2026-03-05
    critical: true
  - ref: build
    title: Build
    start: 2026-03-05
    end: 2026-03-20
dependencies:
  - from: design
    to: build
milestones:
  - title: Beta
    target: 2026-04-01
    items: [build]
`

func TestImportPlan_PersistsEverything(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	result, err := svc.ImportPlan(context.Background(), []byte(importPlanYAML))
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Items: 2, Dependencies: 1, Milestones: 1}, result)

	items, err := repository.NewSQLiteWorkItemRepo(database).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Design", items[0].Title)
	assert.True(t, items[0].Critical)

	deps, err := repository.NewSQLiteDependencyRepo(database).List(context.Background())
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, items[0].ID, deps[0].PredecessorID)
	assert.Equal(t, items[1].ID, deps[0].SuccessorID)

	milestones, err := repository.NewSQLiteMilestoneRepo(database).List(context.Background())
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	assert.Equal(t, []string{items[1].ID}, milestones[0].LinkedWorkItemIDs)
}

func TestImportPlan_InvalidPlanTouchesNothing(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	_, err := svc.ImportPlan(context.Background(), []byte("items:\n  - title: no ref\n"))
	require.Error(t, err)

	items, err := repository.NewSQLiteWorkItemRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestImportPlan_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: boom}
	svc := NewImportService(uow)

	_, err := svc.ImportPlan(context.Background(), []byte(importPlanYAML))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	items, err := repository.NewSQLiteWorkItemRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items, "partial import must not survive a failed transaction")

	deps, err := repository.NewSQLiteDependencyRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, deps)
}
