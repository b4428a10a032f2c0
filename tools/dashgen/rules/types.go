// Package rules builds the configurator's recording and alert rules as
// Prometheus Operator PrometheusRule resources.
package rules

const (
	crAPIVersion = "monitoring.coreos.com/v1"
	crKind       = "PrometheusRule"

	// The cluster Prometheus selects rule resources by this label.
	ruleSelectorKey   = "prometheus"
	ruleSelectorValue = "system-rules-prometheus"
)

// Alert severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// PrometheusRule is the custom resource written to prometheus/*.yaml.
type PrometheusRule struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}

// Metadata names the resource and carries the rule selector label.
type Metadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels"`
}

// Spec holds the rule groups. The configurator emits one group per resource.
type Spec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named list of rules evaluated together.
type RuleGroup struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

// Rule is either a recording rule (Record set) or an alert (Alert set).
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// Rules returns every rule of the resource in group order.
func (cr PrometheusRule) Rules() []Rule {
	var out []Rule
	for _, g := range cr.Spec.Groups {
		out = append(out, g.Rules...)
	}
	return out
}

func newPrometheusRule(name, group string, rs ...Rule) PrometheusRule {
	return PrometheusRule{
		APIVersion: crAPIVersion,
		Kind:       crKind,
		Metadata: Metadata{
			Name:   name,
			Labels: map[string]string{ruleSelectorKey: ruleSelectorValue},
		},
		Spec: Spec{
			Groups: []RuleGroup{{Name: group, Rules: rs}},
		},
	}
}

func record(name, expr string) Rule {
	return Rule{Record: name, Expr: expr}
}

func alert(name, expr, forDuration, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDuration,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
