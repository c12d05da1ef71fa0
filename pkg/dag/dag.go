// Package dag provides a generic depth-first topological sort over
// directed graphs described by an adjacency function.
package dag

import "errors"

// ErrCycle reports that the graph is not acyclic.
var ErrCycle = errors.New("dag: cycle detected")

// DFS node colors: white = unvisited, gray = on the current DFS path,
// black = fully explored. Meeting a gray node again means a cycle.
const (
	white = iota
	gray
	black
)

// TopoSort returns the graph's nodes in dependency order: every node
// appears after all nodes reachable from it through succ. The traversal
// visits nodes in the order given, so the result is deterministic for a
// fixed input. Nodes reachable through succ but absent from nodes are
// visited and ordered too.
func TopoSort[N comparable](nodes []N, succ func(N) []N) ([]N, error) {
	color := make(map[N]int, len(nodes))
	order := make([]N, 0, len(nodes))

	var visit func(n N) error
	visit = func(n N) error {
		switch color[n] {
		case black:
			return nil
		case gray:
			return ErrCycle
		}
		color[n] = gray
		for _, m := range succ(n) {
			if err := visit(m); err != nil {
				return err
			}
		}
		color[n] = black
		order = append(order, n)
		return nil
	}

	for _, n := range nodes {
		if err := visit(n); err != nil {
			return nil, err
		}
	}
	return order, nil
}
