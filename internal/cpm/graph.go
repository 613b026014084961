package cpm

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rcliao/baseline/internal/domain"
)

var (
	// ErrUnknownDependency indicates a task depends on an id not present in
	// the task list.
	ErrUnknownDependency = errors.New("dependency references unknown task")

	// ErrCyclicDependency indicates the dependency edges contain a cycle.
	ErrCyclicDependency = errors.New("dependency cycle detected")
)

// TaskGraph owns a validated set of tasks and their dependency edges.
// Adjacency lists are sorted so every downstream computation is
// deterministic for identical input.
type TaskGraph struct {
	Tasks  map[string]*domain.Task
	Adj    map[string][]string // task id -> successor ids
	RevAdj map[string][]string // task id -> predecessor ids
	Sinks  []string            // tasks with no successors
}

// BuildGraph validates the task list and constructs the dependency graph.
// A dependency naming an unknown task id fails with ErrUnknownDependency.
// Cyclic dependencies fail with ErrCyclicDependency; truncating the cycle
// out of the schedule would silently understate the project duration.
func BuildGraph(tasks []domain.Task) (*TaskGraph, error) {
	g := &TaskGraph{
		Tasks:  make(map[string]*domain.Task),
		Adj:    make(map[string][]string),
		RevAdj: make(map[string][]string),
	}

	for i := range tasks {
		t := &tasks[i]
		g.Tasks[t.ID] = t
	}

	// Dedupe edges; a dependency listed twice is a single constraint.
	edgeSet := make(map[[2]string]bool)
	addEdge := func(from, to string) {
		key := [2]string{from, to}
		if edgeSet[key] {
			return
		}
		edgeSet[key] = true
		g.Adj[from] = append(g.Adj[from], to)
		g.RevAdj[to] = append(g.RevAdj[to], from)
	}

	for i := range tasks {
		t := &tasks[i]
		for _, dep := range t.Dependencies {
			if _, ok := g.Tasks[dep]; !ok {
				return nil, fmt.Errorf("task %s: %w: %s", t.ID, ErrUnknownDependency, dep)
			}
			addEdge(dep, t.ID)
		}
	}

	for k := range g.Adj {
		sort.Strings(g.Adj[k])
	}
	for k := range g.RevAdj {
		sort.Strings(g.RevAdj[k])
	}

	for id := range g.Tasks {
		if len(g.Adj[id]) == 0 {
			g.Sinks = append(g.Sinks, id)
		}
	}
	sort.Strings(g.Sinks)

	if cycle := g.detectCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", ErrCyclicDependency, cycle)
	}

	return g, nil
}

// TaskCount returns the number of tasks in the graph.
func (g *TaskGraph) TaskCount() int {
	return len(g.Tasks)
}

// detectCycle returns the cycle path if one exists, or nil for an acyclic
// graph. DFS with coloring: white (unvisited), gray (in progress), black
// (done).
func (g *TaskGraph) detectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int)
	parent := make(map[string]string)

	var dfs func(node string) []string
	dfs = func(node string) []string {
		color[node] = gray
		for _, next := range g.Adj[node] {
			if color[next] == gray {
				cycle := []string{next, node}
				cur := node
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = node
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[node] = black
		return nil
	}

	ids := make([]string, 0, len(g.Tasks))
	for id := range g.Tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if color[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
