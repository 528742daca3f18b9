package core

import (
	"fmt"
	"strings"
)

// PathTo reconstructs the route from the root of parents to dest and
// returns it without dest itself. For dest == root the result is empty.
//
// Errors:
//   - ErrVertexNotFound if dest, or any vertex on the chain, is missing from parents.
//   - ErrBrokenTree if the chain is longer than the map (a cycle).
//
// Complexity: O(path length).
func PathTo[V comparable](parents Parents[V], dest V) ([]V, error) {
	if _, ok := parents[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, dest)
	}

	// walk dest → root
	rev := make([]V, 0, 8)
	cur := dest
	for steps := 0; ; steps++ {
		link, ok := parents[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v (parent chain of %v)", ErrVertexNotFound, cur, dest)
		}
		if steps >= len(parents) {
			return nil, fmt.Errorf("%w: cycle reached from %v", ErrBrokenTree, dest)
		}
		rev = append(rev, cur)
		if !link.Valid {
			break
		}
		cur = link.Vertex
	}

	// reverse, then drop dest which sits last
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev[:len(rev)-1], nil
}

// PathTo is shorthand for PathTo(p, dest).
func (p Parents[V]) PathTo(dest V) ([]V, error) {
	return PathTo(p, dest)
}

// PathString reconstructs the path to dest and joins the vertices with sep,
// formatting each one with fmt.Sprint. With sep == "" single-letter labels
// collapse into a word: the path s→b→c reads "sbc".
func PathString[V comparable](parents Parents[V], dest V, sep string) (string, error) {
	path, err := PathTo(parents, dest)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, v := range path {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	}

	return b.String(), nil
}
