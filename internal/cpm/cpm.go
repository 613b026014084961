package cpm

import (
	"sort"

	"github.com/rcliao/baseline/internal/domain"
)

// slackTolerance absorbs floating point noise when classifying critical
// tasks.
const slackTolerance = 1e-6

// ComputeCriticalPath runs the full critical path analysis over a validated
// graph: topological ordering, forward pass for earliest start/finish,
// backward pass for latest start/finish, slack, and the critical path in
// topological order. An empty graph yields an empty result with project
// duration zero.
func ComputeCriticalPath(g *TaskGraph) *domain.CPMResult {
	result := &domain.CPMResult{
		Tasks:        make(map[string]*domain.TaskMetrics),
		CriticalPath: make([]string, 0),
		Waves:        make([]domain.Wave, 0),
	}
	if g.TaskCount() == 0 {
		return result
	}

	order := topoSort(g)

	for _, id := range order {
		t := g.Tasks[id]
		result.Tasks[id] = &domain.TaskMetrics{
			Duration: durationDays(t.Start, t.Finish),
		}
	}

	// Forward pass: earliest start is the latest finish among predecessors.
	for _, id := range order {
		tm := result.Tasks[id]
		es := 0.0
		for _, pred := range g.RevAdj[id] {
			if ef := result.Tasks[pred].EarliestFinish; ef > es {
				es = ef
			}
		}
		tm.EarliestStart = es
		tm.EarliestFinish = es + tm.Duration
	}

	projectDuration := 0.0
	for _, tm := range result.Tasks {
		if tm.EarliestFinish > projectDuration {
			projectDuration = tm.EarliestFinish
		}
	}
	result.ProjectDuration = projectDuration

	// Backward pass, seeded at sinks with the project duration.
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		tm := result.Tasks[id]

		lf := projectDuration
		if succs := g.Adj[id]; len(succs) > 0 {
			lf = result.Tasks[succs[0]].LatestStart
			for _, succ := range succs[1:] {
				if ls := result.Tasks[succ].LatestStart; ls < lf {
					lf = ls
				}
			}
		}
		tm.LatestFinish = lf
		tm.LatestStart = lf - tm.Duration
		tm.Slack = tm.LatestStart - tm.EarliestStart
		tm.Critical = tm.Slack < slackTolerance && tm.Slack > -slackTolerance
	}

	for _, id := range order {
		if result.Tasks[id].Critical {
			result.CriticalPath = append(result.CriticalPath, id)
		}
	}

	result.Waves = computeWaves(result, order)

	return result
}

// topoSort orders tasks with Kahn's in-degree elimination. Ready tasks are
// sorted so equal inputs always produce the same order. BuildGraph has
// already rejected cycles, so every task is reachable.
func topoSort(g *TaskGraph) []string {
	inDegree := make(map[string]int)
	for id := range g.Tasks {
		inDegree[id] = len(g.RevAdj[id])
	}

	var queue []string
	for id := range g.Tasks {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(g.Tasks))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var newReady []string
		for _, succ := range g.Adj[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				newReady = append(newReady, succ)
			}
		}
		sort.Strings(newReady)
		queue = append(queue, newReady...)
	}

	return order
}

// computeWaves groups tasks by earliest start time; tasks in the same wave
// have no ordering constraint between them.
func computeWaves(result *domain.CPMResult, order []string) []domain.Wave {
	esGroups := make(map[float64][]string)
	for _, id := range order {
		es := result.Tasks[id].EarliestStart
		esGroups[es] = append(esGroups[es], id)
	}

	esValues := make([]float64, 0, len(esGroups))
	for es := range esGroups {
		esValues = append(esValues, es)
	}
	sort.Float64s(esValues)

	waves := make([]domain.Wave, len(esValues))
	for i, es := range esValues {
		taskIDs := esGroups[es]
		sort.Strings(taskIDs)

		hasCritical := false
		for _, id := range taskIDs {
			if result.Tasks[id].Critical {
				hasCritical = true
			}
		}

		waves[i] = domain.Wave{
			Index:    i,
			TaskIDs:  taskIDs,
			Critical: hasCritical,
		}
	}

	return waves
}
