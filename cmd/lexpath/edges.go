package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lexpath/core"
)

// errBadEdge is returned for --edge values that are not "from:to[:weight]".
var errBadEdge = errors.New("lexpath: malformed edge")

// sampleWeighted is the graph used by "shortest" when no --edge is given.
func sampleWeighted() core.WeightedGraph[string] {
	return core.WeightedGraph[string]{
		"s": {{To: "a", Weight: 1}, {To: "c", Weight: 4}},
		"a": {{To: "b", Weight: 2}},
		"b": {{To: "c", Weight: 1}, {To: "d", Weight: 4}},
		"c": {{To: "d", Weight: 3}},
		"d": nil,
		"e": {{To: "d", Weight: 0}},
	}
}

// sampleUnweighted is the graph used by "bfs" and "path" when no --edge is given.
func sampleUnweighted() core.Graph[string] {
	return core.Graph[string]{
		"s": {"a", "b"},
		"a": {"b"},
		"b": {"c"},
		"c": {"a", "d"},
		"d": nil,
	}
}

// parseEdges turns "from:to[:weight]" values into a weighted graph. The weight
// defaults to 1. Every endpoint becomes a key, so the result never dangles.
func parseEdges(raws []string) (core.WeightedGraph[string], error) {
	g := make(core.WeightedGraph[string])
	for _, raw := range raws {
		parts := strings.Split(raw, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: %q", errBadEdge, raw)
		}
		arc := core.Arc[string]{To: parts[1], Weight: 1}
		if len(parts) == 3 {
			w, err := strconv.ParseInt(parts[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", errBadEdge, raw, err)
			}
			arc.Weight = w
		}
		g[parts[0]] = append(g[parts[0]], arc)
		if _, ok := g[arc.To]; !ok {
			g[arc.To] = nil
		}
	}
	return g, nil
}
