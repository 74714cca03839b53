package snapshot

import (
	"slices"

	"go.trai.ch/instant/internal/core/domain"
)

// RelevantProjects returns the distinct projects owning at least one of tasks,
// excluding the root project, in path order.
func RelevantProjects(tasks []*domain.Task) []domain.ProjectPath {
	seen := make(map[domain.ProjectPath]struct{}, len(tasks))
	paths := make([]domain.ProjectPath, 0, len(tasks))
	for _, t := range tasks {
		if t.Project.IsRoot() || t.Project.IsZero() {
			continue
		}
		if _, ok := seen[t.Project]; ok {
			continue
		}
		seen[t.Project] = struct{}{}
		paths = append(paths, t.Project)
	}
	slices.SortFunc(paths, domain.ProjectPath.Compare)
	return paths
}

// CloseAncestors returns paths in sorted order with every missing non-root
// ancestor inserted right before its first descendant, so that a parent
// always precedes its children.
func CloseAncestors(paths []domain.ProjectPath) []domain.ProjectPath {
	sorted := slices.Clone(paths)
	slices.SortFunc(sorted, domain.ProjectPath.Compare)
	sorted = slices.Compact(sorted)

	closed := make([]domain.ProjectPath, 0, len(sorted))
	present := make(map[domain.ProjectPath]struct{}, len(sorted))
	for _, path := range sorted {
		if path.IsRoot() || path.IsZero() {
			continue
		}
		if _, ok := present[path]; ok {
			continue
		}
		index := len(closed)
		for parent, ok := path.Parent(); ok && !parent.IsRoot(); parent, ok = parent.Parent() {
			if _, exists := present[parent]; exists {
				break
			}
			closed = slices.Insert(closed, index, parent)
			present[parent] = struct{}{}
		}
		closed = append(closed, path)
		present[path] = struct{}{}
	}
	return closed
}

func projectStrings(paths []domain.ProjectPath) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return out
}
