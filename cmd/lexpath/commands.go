package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lexpath/bfs"
	"github.com/katalvlaran/lexpath/core"
	"github.com/katalvlaran/lexpath/dijkstra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	trace   bool
	edges   []string
	source  string
}

// session carries what a subcommand needs once the global flags are applied.
type session struct {
	out      io.Writer
	logger   *slog.Logger
	tp       trace.TracerProvider
	shutdown func(context.Context) error
}

func newSession(cmd *cobra.Command, gf *globalFlags) (*session, error) {
	level := slog.LevelInfo
	if gf.verbose {
		level = slog.LevelDebug
	}
	s := &session{
		out:      cmd.OutOrStdout(),
		logger:   slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})),
		shutdown: func(context.Context) error { return nil },
	}

	if gf.trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		s.tp = tp
		s.shutdown = tp.Shutdown
	}

	return s, nil
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:   "lexpath",
		Short: "Shortest-shortest paths and BFS parent trees on small graphs",
		Long: `lexpath runs graph searches on a graph described by --edge flags.

Subcommands:
  shortest  - (weight, edges) of the lexicographically shortest path to every vertex
  bfs       - breadth-first parent of every reachable vertex
  path      - fewest-hop route to a destination, destination excluded

Without --edge the built-in sample graphs are used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&gf.verbose, "verbose", "v", false, "log search summaries at debug level")
	pf.BoolVar(&gf.trace, "trace", false, "print OpenTelemetry spans to stderr")
	pf.StringArrayVarP(&gf.edges, "edge", "e", nil, `edge as "from:to[:weight]" (repeatable)`)
	pf.StringVarP(&gf.source, "source", "s", "s", "source vertex")

	root.AddCommand(
		newShortestCmd(gf),
		newBFSCmd(gf),
		newPathCmd(gf),
	)

	return root
}

// weightedGraph returns the graph from --edge flags, or the weighted sample.
func (gf *globalFlags) weightedGraph() (core.WeightedGraph[string], error) {
	if len(gf.edges) == 0 {
		return sampleWeighted(), nil
	}
	return parseEdges(gf.edges)
}

// unweightedGraph returns the graph from --edge flags without weights, or the unweighted sample.
func (gf *globalFlags) unweightedGraph() (core.Graph[string], error) {
	if len(gf.edges) == 0 {
		return sampleUnweighted(), nil
	}
	wg, err := parseEdges(gf.edges)
	if err != nil {
		return nil, err
	}
	return core.UnweightedView(wg), nil
}

func newShortestCmd(gf *globalFlags) *cobra.Command {
	var maxWeight int64

	cmd := &cobra.Command{
		Use:   "shortest",
		Short: "Print (weight, edges) for every vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.weightedGraph()
			if err != nil {
				return err
			}
			s, err := newSession(cmd, gf)
			if err != nil {
				return err
			}
			defer s.shutdown(cmd.Context())

			opts := []dijkstra.Option{
				dijkstra.WithContext(cmd.Context()),
				dijkstra.WithLogger(s.logger),
				dijkstra.WithTracerProvider(s.tp),
			}
			if maxWeight >= 0 {
				opts = append(opts, dijkstra.WithMaxWeight(maxWeight))
			}

			cost, _, err := dijkstra.Dijkstra(g, gf.source, opts...)
			if err != nil {
				return err
			}
			for _, v := range sortedKeys(cost) {
				fmt.Fprintf(s.out, "%s: %v\n", v, cost[v])
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&maxWeight, "max-weight", -1, "leave vertices beyond this weight unreachable (-1 = no limit)")

	return cmd
}

func newBFSCmd(gf *globalFlags) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Print the BFS parent of every reachable vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.unweightedGraph()
			if err != nil {
				return err
			}
			s, err := newSession(cmd, gf)
			if err != nil {
				return err
			}
			defer s.shutdown(cmd.Context())

			res, err := bfs.BFS(g, gf.source,
				bfs.WithContext[string](cmd.Context()),
				bfs.WithLogger[string](s.logger),
				bfs.WithTracerProvider[string](s.tp),
				bfs.WithMaxDepth[string](maxDepth),
			)
			if err != nil {
				return err
			}
			for _, v := range sortedKeys(res.Parent) {
				link := res.Parent[v]
				if !link.Valid {
					fmt.Fprintf(s.out, "%s: -\n", v)
					continue
				}
				fmt.Fprintf(s.out, "%s: %s\n", v, link.Vertex)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop exploring beyond this depth (0 = no limit)")

	return cmd
}

func newPathCmd(gf *globalFlags) *cobra.Command {
	var (
		dest string
		sep  string
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the fewest-hop route from --source to --dest, destination excluded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.unweightedGraph()
			if err != nil {
				return err
			}
			s, err := newSession(cmd, gf)
			if err != nil {
				return err
			}
			defer s.shutdown(cmd.Context())

			res, err := bfs.BFS(g, gf.source,
				bfs.WithContext[string](cmd.Context()),
				bfs.WithLogger[string](s.logger),
				bfs.WithTracerProvider[string](s.tp),
			)
			if err != nil {
				return err
			}
			route, err := core.PathString(res.Parent, dest, sep)
			if err != nil {
				return fmt.Errorf("no route from %s to %s: %w", gf.source, dest, err)
			}
			fmt.Fprintln(s.out, route)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dest, "dest", "d", "", "destination vertex")
	cmd.Flags().StringVar(&sep, "sep", "", "separator between vertices")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
