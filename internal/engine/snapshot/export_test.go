package snapshot

import "go.trai.ch/instant/internal/core/domain"

// Wire resolves deps[i] as the dependency paths of tasks[i].
// This is exported for testing purposes only.
func Wire(tasks []*domain.Task, deps [][]string) ([]*domain.Task, error) {
	records := make([]record, len(tasks))
	for i, t := range tasks {
		records[i] = record{task: t, deps: deps[i]}
	}
	return wire(records)
}
