package pattern

import (
	"fmt"
	"sort"

	"github.com/kamikit/kami/pkg/dag"
	"github.com/kamikit/kami/pkg/geom"
)

// Faces extracts the interior faces of the planar graph formed by the
// pattern's creases. Each face is a counter-clockwise cycle of point
// indices; the unbounded outer face is identified by its clockwise
// orientation and dropped.
//
// The extraction walks the rotation system of the graph: neighbors
// around each vertex are ordered by angle, and each directed edge is
// followed by the edge that turns most sharply counter-clockwise. The
// result is well defined for patterns whose creases do not cross;
// ValidateAll flags crossings.
func (p *Pattern) Faces() [][]int {
	adj := p.rotations()

	type dedge struct{ u, v int }
	visited := make(map[dedge]bool)
	var faces [][]int

	for u := range adj {
		for _, v := range adj[u] {
			start := dedge{u, v}
			if visited[start] {
				continue
			}

			var face []int
			cur := start
			for {
				visited[cur] = true
				face = append(face, cur.u)

				ring := adj[cur.v]
				i := indexIn(ring, cur.u)
				// Predecessor in the counter-clockwise ring: the
				// sharpest counter-clockwise turn out of cur.
				w := ring[(i-1+len(ring))%len(ring)]
				cur = dedge{cur.v, w}
				if cur == start {
					break
				}
			}

			loop := make([]geom.Vec, len(face))
			for i, idx := range face {
				loop[i] = p.Points[idx]
			}
			if geom.Orientation(loop) > 0 {
				faces = append(faces, face)
			}
		}
	}
	return faces
}

// rotations builds the angularly ordered neighbor ring of every point.
func (p *Pattern) rotations() [][]int {
	adj := make([][]int, len(p.Points))
	for _, c := range p.Creases {
		adj[c.A] = append(adj[c.A], c.B)
		adj[c.B] = append(adj[c.B], c.A)
	}
	for v, ring := range adj {
		origin := p.Points[v]
		sort.SliceStable(ring, func(i, j int) bool {
			return geom.AngularLess(p.Points[ring[i]].Sub(origin), p.Points[ring[j]].Sub(origin))
		})
	}
	return adj
}

func indexIn(ring []int, u int) int {
	for i, w := range ring {
		if w == u {
			return i
		}
	}
	return -1
}

// FoldOrder returns the pattern's faces in an order suitable for folding
// outward from the given root face: every face appears after the
// neighbor through which it was first reached. Faces not connected to
// the root come last, in extraction order.
func (p *Pattern) FoldOrder(root int) ([][]int, error) {
	faces := p.Faces()
	if root < 0 || root >= len(faces) {
		return nil, fmt.Errorf("pattern: fold root %d out of range (have %d faces)", root, len(faces))
	}

	// Two faces are adjacent when they share a crease (an unordered
	// point pair appearing in both cycles).
	edgeFaces := make(map[creaseKey][]int)
	for f, cycle := range faces {
		for i, a := range cycle {
			b := cycle[(i+1)%len(cycle)]
			key := makeCreaseKey(Crease{A: a, B: b})
			edgeFaces[key] = append(edgeFaces[key], f)
		}
	}
	neighbors := make([][]int, len(faces))
	for f, cycle := range faces {
		for i, a := range cycle {
			b := cycle[(i+1)%len(cycle)]
			for _, g := range edgeFaces[makeCreaseKey(Crease{A: a, B: b})] {
				if g != f && !containsFace(neighbors[f], g) {
					neighbors[f] = append(neighbors[f], g)
				}
			}
		}
	}

	// Breadth-first parents from the root.
	parent := make([]int, len(faces))
	for i := range parent {
		parent[i] = -1
	}
	seen := make([]bool, len(faces))
	seen[root] = true
	queue := []int{root}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, g := range neighbors[f] {
			if !seen[g] {
				seen[g] = true
				parent[g] = f
				queue = append(queue, g)
			}
		}
	}

	// Each face depends on its parent being placed first.
	nodes := make([]int, len(faces))
	for i := range nodes {
		nodes[i] = i
	}
	order, err := dag.TopoSort(nodes, func(f int) []int {
		if parent[f] < 0 {
			return nil
		}
		return []int{parent[f]}
	})
	if err != nil {
		return nil, fmt.Errorf("pattern: fold order: %w", err)
	}

	ordered := make([][]int, len(order))
	for i, f := range order {
		ordered[i] = faces[f]
	}
	return ordered, nil
}

func containsFace(fs []int, f int) bool {
	for _, g := range fs {
		if g == f {
			return true
		}
	}
	return false
}
