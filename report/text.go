// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/citynav/search"
)

// WriteText writes c as a human-readable summary followed by a table with one
// row per algorithm. The headline route is the A* route.
func WriteText(w io.Writer, c *Comparison) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Query:     %s → %s\n", c.Origin, c.Destination)
	if a, ok := c.Entry(search.AlgorithmAStar); ok && a.Found() {
		fmt.Fprintf(&b, "Route:     %s\n", strings.Join(a.Path, " → "))
		fmt.Fprintf(&b, "Cost:      %.2f\n", a.Cost)
		fmt.Fprintf(&b, "Nodes:     %d\n", a.Nodes())
	} else {
		b.WriteString("Route:     no route\n")
	}
	fmt.Fprintf(&b, "Heuristic: %.2f (straight line at origin)\n\n", c.InitialHeuristic)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tCOST\tNODES\tEXPANDED")
	for _, e := range c.Entries {
		cost, nodes := "no route", "-"
		if e.Found() {
			cost = strconv.FormatFloat(e.Cost, 'f', 2, 64)
			nodes = strconv.Itoa(e.Nodes())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", e.Label, cost, nodes, e.Expanded)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(&b, "\nAdmissible heuristic: %s\n", yesNo(c.Admissible()))
	if c.Optimal() {
		b.WriteString("Optimal solution:     guaranteed (A* agrees with Dijkstra)\n")
	} else {
		b.WriteString("Optimal solution:     NOT confirmed (A* disagrees with Dijkstra)\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
