package cpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/baseline/internal/domain"
)

func mustBuild(t *testing.T, tasks []domain.Task) *TaskGraph {
	t.Helper()
	g, err := BuildGraph(tasks)
	require.NoError(t, err)
	return g
}

func TestComputeCriticalPath_SingleTask(t *testing.T) {
	g := mustBuild(t, []domain.Task{
		{ID: "a", Name: "Solo", Start: "2025-01-01", Finish: "2025-01-06"},
	})

	result := ComputeCriticalPath(g)

	tm := result.Tasks["a"]
	require.NotNil(t, tm)
	assert.Equal(t, 5.0, tm.Duration)
	assert.Equal(t, 0.0, tm.EarliestStart)
	assert.Equal(t, 5.0, tm.EarliestFinish)
	assert.Equal(t, 0.0, tm.LatestStart)
	assert.Equal(t, 5.0, tm.LatestFinish)
	assert.Equal(t, 0.0, tm.Slack)
	assert.True(t, tm.Critical)
	assert.Equal(t, []string{"a"}, result.CriticalPath)
	assert.Equal(t, 5.0, result.ProjectDuration)
}

func TestComputeCriticalPath_LinearChain(t *testing.T) {
	// A(3) -> B(4) -> C(2)
	g := mustBuild(t, []domain.Task{
		{ID: "a", Start: "2025-01-01", Finish: "2025-01-04"},
		{ID: "b", Start: "2025-01-04", Finish: "2025-01-08", Dependencies: []string{"a"}},
		{ID: "c", Start: "2025-01-08", Finish: "2025-01-10", Dependencies: []string{"b"}},
	})

	result := ComputeCriticalPath(g)

	assert.Equal(t, 9.0, result.ProjectDuration)
	assert.Equal(t, []string{"a", "b", "c"}, result.CriticalPath)

	assert.Equal(t, 0.0, result.Tasks["a"].EarliestStart)
	assert.Equal(t, 3.0, result.Tasks["b"].EarliestStart)
	assert.Equal(t, 7.0, result.Tasks["c"].EarliestStart)
	for id, tm := range result.Tasks {
		assert.Equal(t, 0.0, tm.Slack, "task %s", id)
	}
}

func TestComputeCriticalPath_DiamondWithSlack(t *testing.T) {
	// A(5) -> B(1) -> D(1)
	// A(5) -> C(10) -> D(1)
	g := mustBuild(t, []domain.Task{
		{ID: "a", Start: "2025-01-01", Finish: "2025-01-06"},
		{ID: "b", Start: "2025-01-06", Finish: "2025-01-07", Dependencies: []string{"a"}},
		{ID: "c", Start: "2025-01-06", Finish: "2025-01-16", Dependencies: []string{"a"}},
		{ID: "d", Start: "2025-01-16", Finish: "2025-01-17", Dependencies: []string{"b", "c"}},
	})

	result := ComputeCriticalPath(g)

	assert.Equal(t, 16.0, result.ProjectDuration)
	assert.Equal(t, []string{"a", "c", "d"}, result.CriticalPath)

	b := result.Tasks["b"]
	assert.Equal(t, 9.0, b.Slack)
	assert.False(t, b.Critical)
}

func TestComputeCriticalPath_SlackNeverNegative(t *testing.T) {
	g := mustBuild(t, []domain.Task{
		{ID: "a", Start: "2025-01-01", Finish: "2025-01-03"},
		{ID: "b", Start: "2025-01-01", Finish: "2025-01-08"},
		{ID: "c", Start: "2025-01-03", Finish: "2025-01-09", Dependencies: []string{"a"}},
		{ID: "d", Start: "2025-01-09", Finish: "2025-01-12", Dependencies: []string{"b", "c"}},
		{ID: "e", Start: "2025-01-03", Finish: "2025-01-04", Dependencies: []string{"a"}},
	})

	result := ComputeCriticalPath(g)

	for id, tm := range result.Tasks {
		assert.GreaterOrEqual(t, tm.Slack, 0.0, "task %s", id)
		assert.Equal(t, tm.Slack < slackTolerance, tm.Critical, "task %s", id)
	}
	for _, sink := range g.Sinks {
		assert.Equal(t, result.ProjectDuration, result.Tasks[sink].LatestFinish, "sink %s", sink)
	}
}

func TestComputeCriticalPath_RemovingDependencyNeverReducesSlack(t *testing.T) {
	withDep := mustBuild(t, []domain.Task{
		{ID: "a", Start: "2025-01-01", Finish: "2025-01-04"},
		{ID: "b", Start: "2025-01-04", Finish: "2025-01-08", Dependencies: []string{"a"}},
		{ID: "c", Start: "2025-01-08", Finish: "2025-01-10", Dependencies: []string{"b"}},
	})
	withoutDep := mustBuild(t, []domain.Task{
		{ID: "a", Start: "2025-01-01", Finish: "2025-01-04"},
		{ID: "b", Start: "2025-01-04", Finish: "2025-01-08", Dependencies: []string{"a"}},
		{ID: "c", Start: "2025-01-08", Finish: "2025-01-10"},
	})

	before := ComputeCriticalPath(withDep).Tasks["c"].Slack
	after := ComputeCriticalPath(withoutDep).Tasks["c"].Slack

	assert.GreaterOrEqual(t, after, before)
}

func TestComputeCriticalPath_EmptyGraph(t *testing.T) {
	g := mustBuild(t, nil)

	result := ComputeCriticalPath(g)

	assert.Empty(t, result.Tasks)
	assert.Empty(t, result.CriticalPath)
	assert.Equal(t, 0.0, result.ProjectDuration)
}

func TestComputeCriticalPath_MalformedDatesDegradeToUnitDuration(t *testing.T) {
	g := mustBuild(t, []domain.Task{
		{ID: "a", Start: "not-a-date", Finish: "also-not-a-date"},
		{ID: "b", Start: "2025-01-01", Finish: "2025-01-03", Dependencies: []string{"a"}},
	})

	result := ComputeCriticalPath(g)

	assert.Equal(t, 1.0, result.Tasks["a"].Duration)
	assert.Equal(t, 3.0, result.ProjectDuration)
}

func TestComputeCriticalPath_Waves(t *testing.T) {
	// A -> {B, C} -> D
	g := mustBuild(t, []domain.Task{
		{ID: "a", Start: "2025-01-01", Finish: "2025-01-02"},
		{ID: "b", Start: "2025-01-02", Finish: "2025-01-03", Dependencies: []string{"a"}},
		{ID: "c", Start: "2025-01-02", Finish: "2025-01-03", Dependencies: []string{"a"}},
		{ID: "d", Start: "2025-01-03", Finish: "2025-01-04", Dependencies: []string{"b", "c"}},
	})

	result := ComputeCriticalPath(g)

	require.Len(t, result.Waves, 3)
	assert.Equal(t, []string{"a"}, result.Waves[0].TaskIDs)
	assert.Equal(t, []string{"b", "c"}, result.Waves[1].TaskIDs)
	assert.Equal(t, []string{"d"}, result.Waves[2].TaskIDs)
	assert.True(t, result.Waves[0].Critical)
}

func TestComputeCriticalPath_Idempotent(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Start: "2025-01-01", Finish: "2025-01-04"},
		{ID: "b", Start: "2025-01-04", Finish: "2025-01-08", Dependencies: []string{"a"}},
		{ID: "c", Start: "2025-01-04", Finish: "2025-01-06", Dependencies: []string{"a"}},
		{ID: "d", Start: "2025-01-08", Finish: "2025-01-10", Dependencies: []string{"b", "c"}},
	}

	first := ComputeCriticalPath(mustBuild(t, tasks))
	second := ComputeCriticalPath(mustBuild(t, tasks))

	assert.Equal(t, first, second)
}
