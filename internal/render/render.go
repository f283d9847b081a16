// Package render draws a static snapshot of a diagram with go-echarts.
//
// Nodes keep the positions stored in the sequence (no layout is applied),
// animated edges are drawn dashed, and dangling edges are skipped because
// the chart cannot place an endpoint that names no node.
package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"flowboard/internal/domain"
)

// Options controls the rendered page
type Options struct {
	Title    string
	Revision uint64
	Width    string
	Height   string
}

// Node categories, indexed by nodeCategory
var categories = []*opts.GraphCategory{
	{Name: string(domain.NodeTypeInput)},
	{Name: string(domain.NodeTypeDefault)},
	{Name: string(domain.NodeTypeOutput)},
}

func nodeCategory(t domain.NodeType) int {
	switch t {
	case domain.NodeTypeInput:
		return 0
	case domain.NodeTypeOutput:
		return 2
	}
	return 1
}

// tooltipEscaper turns echarts template braces and the go-echarts function
// marker into HTML entities; tooltips render HTML so they display unchanged
var tooltipEscaper = strings.NewReplacer(
	"{", "&#123;",
	"}", "&#125;",
	"_", "&#95;",
	"%", "&#37;",
)

// tooltipText makes s a formatter that shows s literally
func tooltipText(s string) types.FuncStr {
	return types.FuncStr(tooltipEscaper.Replace(html.EscapeString(s)))
}

// plainText breaks the go-echarts function marker in canvas text
func plainText(s string) string {
	return strings.ReplaceAll(s, "__f__", "_\u200b_f_\u200b_")
}

// Diagram renders els as a standalone HTML page
func Diagram(els domain.Elements, w io.Writer, o Options) error {
	nodes, links := Series(els)
	return chart(nodes, links, len(els.DanglingEdges()), o).Render(w)
}

// Series converts an element sequence into echarts graph nodes and links.
// Node names are element IDs; labels are shown through the formatter.
func Series(els domain.Elements) ([]opts.GraphNode, []opts.GraphLink) {
	nodes := make([]opts.GraphNode, 0, len(els))
	links := make([]opts.GraphLink, 0, len(els))

	for _, n := range els.Nodes() {
		nodes = append(nodes, opts.GraphNode{
			Name:     n.ID,
			X:        float32(n.Position.X),
			Y:        float32(n.Position.Y),
			Fixed:    opts.Bool(true),
			Category: nodeCategory(n.EffectiveType()),
			Symbol:   "roundRect",
			Tooltip: &opts.Tooltip{
				Show:      opts.Bool(true),
				Formatter: tooltipText(n.Label()),
			},
		})
	}

	dangling := make(map[string]struct{})
	for _, e := range els.DanglingEdges() {
		dangling[e.ID] = struct{}{}
	}

	for _, e := range els.Edges() {
		if _, ok := dangling[e.ID]; ok {
			continue
		}
		link := opts.GraphLink{
			Source: e.Source,
			Target: e.Target,
		}
		if e.Animated {
			link.LineStyle = &opts.LineStyle{Type: "dashed"}
		}
		if e.Label != "" {
			link.Label = &opts.EdgeLabel{Show: opts.Bool(true), Formatter: plainText(e.Label)}
		}
		links = append(links, link)
	}

	return nodes, links
}

func chart(nodes []opts.GraphNode, links []opts.GraphLink, hidden int, o Options) *charts.Graph {
	if o.Width == "" {
		o.Width = "100vw"
	}
	if o.Height == "" {
		o.Height = "100vh"
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: plainText(o.Title),
			Width:     o.Width,
			Height:    o.Height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    plainText(fmt.Sprintf("%s (revision %d)", o.Title, o.Revision)),
			Subtitle: subtitle(hidden),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"elements",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:         "none",
				Roam:           opts.Bool(true),
				Draggable:      opts.Bool(true),
				EdgeSymbol:     []string{"none", "arrow"},
				EdgeSymbolSize: 8,
				Categories:     categories,
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "inside",
		}),
	)
	return graph
}

func subtitle(hidden int) string {
	switch hidden {
	case 0:
		return ""
	case 1:
		return "1 dangling edge hidden"
	}
	return fmt.Sprintf("%d dangling edges hidden", hidden)
}
