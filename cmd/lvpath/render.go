package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/internal/graphfile"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// formatDistance prints a distance the way strconv does, so unreachable
// vertices show up as +Inf.
func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

// renderResult writes the per-vertex table, the cost and the path.
// A nil path means the target is unreachable.
func renderResult(w io.Writer, g *graphfile.Graph, res *dijkstra.Result,
	path []int, order string) {

	onPath := make(map[int]bool, len(path))
	for _, v := range path {
		onPath[v] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Vertex", "Distance", "Predecessor", "Finalized", "On path"})

	var v int
	for v = 0; v < res.Order(); v++ {
		pred := fn.ElimOption(res.Predecessor(v),
			func() string { return "-" },
			g.Label,
		)
		t.AppendRow(table.Row{
			g.Label(v), formatDistance(res.Distance(v)), pred,
			res.Visited(v), onPath[v],
		})
	}
	t.Render()

	fmt.Fprintf(w, "cost %s → %s: %s\n", g.Label(res.Source()),
		g.Label(res.Target()), formatDistance(res.Cost()))

	if path == nil {
		fmt.Fprintln(w, "path: none")
		return
	}

	ordered := slices.Clone(path)
	if order == orderSourceFirst {
		slices.Reverse(ordered)
	}
	labels := make([]string, len(ordered))
	for i, v := range ordered {
		labels[i] = g.Label(v)
	}
	fmt.Fprintf(w, "path (%s): %s\n", order, strings.Join(labels, " "))
}
