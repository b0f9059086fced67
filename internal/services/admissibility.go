package services

import "gold-route-service/internal/domain"

// Admissible reports whether a candidate path is legal with respect to the
// graph's adjacency: the first node is the origin or directly adjacent to
// it, and every consecutive waypoint pair shares an edge. A pair on the
// same node is legal (standing still needs no edge).
//
// Pure predicate: no side effects, never panics, empty paths are simply
// inadmissible.
func Admissible(g *domain.Graph, path domain.Path) bool {
	if len(path) == 0 {
		return false
	}

	if path[0].Node != domain.Origin && !g.HasEdge(domain.Origin, path[0].Node) {
		return false
	}

	for i := 1; i < len(path); i++ {
		n1, n2 := path[i-1].Node, path[i].Node
		if n1 == n2 {
			continue
		}
		if !g.HasEdge(n1, n2) {
			return false
		}
	}

	return true
}
