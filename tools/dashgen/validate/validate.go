// Package validate checks generated dashboards and rules: every PromQL
// expression must parse, and every metric it selects must be known.
package validate

import (
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/Gorgui12/tekalis-configurator/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are informational.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Errorf(format, args...))
}

// histogram and summary series share the base metric's name.
var seriesSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses expr and checks its selectors against known.
func Expr(expr string, known map[string]bool) error {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})

	if len(unknown) > 0 {
		return fmt.Errorf("unknown metrics in %q: %s", expr, strings.Join(unknown, ", "))
	}
	return nil
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range seriesSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every Prometheus target in dash, including panels
// nested in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	for _, p := range dash.Panels {
		switch {
		case p.Panel != nil:
			checkPanel(&res, p.Panel, known)
		case p.RowPanel != nil:
			for i := range p.RowPanel.Panels {
				checkPanel(&res, &p.RowPanel.Panels[i], known)
			}
		}
	}
	return res
}

func checkPanel(res *Result, p *dashboard.Panel, known map[string]bool) {
	title := "<untitled>"
	if p.Title != nil {
		title = *p.Title
	}

	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", title))
		return
	}

	for _, target := range p.Targets {
		var expr string
		switch q := target.(type) {
		case prometheus.Dataquery:
			expr = q.Expr
		case *prometheus.Dataquery:
			expr = q.Expr
		default:
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has a non-Prometheus target", title))
			continue
		}
		if err := Expr(expr, known); err != nil {
			res.errorf("panel %q: %w", title, err)
		}
	}
}

// Rules validates every rule expression in cr. Recording rules must follow
// the level:metric:operation naming convention.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %s: rule has neither record nor alert", g.Name)
				continue
			}
			if r.Record != "" && strings.Count(r.Record, ":") != 2 {
				res.errorf("group %s: recording rule %s is not level:metric:operation", g.Name, r.Record)
			}
			if err := Expr(r.Expr, known); err != nil {
				res.errorf("group %s: rule %s: %w", g.Name, name, err)
			}
		}
	}
	return res
}
