// Package domain contains the core domain models of the build: projects, tasks,
// their declared properties and the task dependency graph.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph is a dependency graph of tasks keyed by task path.
type Graph struct {
	tasks          map[InternedString]*Task
	insertionOrder []InternedString
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		tasks: make(map[InternedString]*Task),
	}
}

// AddTask adds a task to the graph.
// It returns an error if a task with the same path already exists.
func (g *Graph) AddTask(t *Task) error {
	key := NewInternedString(t.Path())
	if _, exists := g.tasks[key]; exists {
		return zerr.With(zerr.Wrap(ErrTaskAlreadyExists, "add task"), "task", key.String())
	}
	g.tasks[key] = t
	g.insertionOrder = append(g.insertionOrder, key)
	return nil
}

// Task returns the task with the given path.
func (g *Graph) Task(path string) (*Task, bool) {
	t, ok := g.tasks[NewInternedString(path)]
	return t, ok
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.tasks)
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the execution order if successful. Tasks are visited in
// insertion order so the resulting order is deterministic.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.tasks))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.tasks[u].DependsOn {
			d := NewInternedString(dep.Path())
			if _, exists := g.tasks[d]; !exists {
				return zerr.With(zerr.With(zerr.Wrap(ErrMissingDependency, "validate"), "task", u.String()), "dependency", d.String())
			}
			if visited[d] == 1 {
				return g.buildCycleError(path, d)
			}
			if visited[d] == 0 {
				if err := visit(d); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, key := range g.insertionOrder {
		if visited[key] == 0 {
			if err := visit(key); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(zerr.Wrap(ErrCycleDetected, "validate"), "cycle", cyclePath)
}

// Walk returns an iterator that yields tasks in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for _, key := range g.executionOrder {
			if !yield(g.tasks[key]) {
				return
			}
		}
	}
}
