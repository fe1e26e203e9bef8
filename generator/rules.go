package generator

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shimmeringbee/openhab-codegen/device"
)

//go:embed templates/*.rules
var ruleTemplateFS embed.FS

var ruleTemplates = template.Must(template.New("").ParseFS(ruleTemplateFS, "templates/*.rules"))

const RulesSeparator = "// ----------------------------"

// Rules are the rule fragments a device contributes. Headers are declarations that must
// precede every rule in the file.
type Rules struct {
	Header []string
	Body   []string
}

func (r *Rules) Append(o Rules) {
	r.Header = append(r.Header, o.Header...)
	r.Body = append(r.Body, o.Body...)
}

type ruleData struct {
	ID           string
	Label        string
	BrokerID     string
	StateTopic   string
	RequestState bool
}

func newRuleData(d *device.Device) ruleData {
	return ruleData{
		ID:           d.ID(),
		Label:        d.Label(),
		BrokerID:     d.BrokerID(),
		StateTopic:   d.StateTopic(),
		RequestState: d.ProxyStateRequest(),
	}
}

// renderRule renders a rule template into lines, terminated by an empty line.
func renderRule(name string, data ruleData) ([]string, error) {
	var b strings.Builder

	if err := ruleTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return nil, fmt.Errorf("failed to render rule '%s': %w", name, err)
	}

	return append(strings.Split(strings.TrimRight(b.String(), "\n"), "\n"), ""), nil
}

func colourTemperatureRules(d *device.Device) (Rules, error) {
	data := newRuleData(d)

	header, err := renderRule("ct_rule_header.rules", data)
	if err != nil {
		return Rules{}, err
	}

	body, err := renderRule("ct_rule.rules", data)
	if err != nil {
		return Rules{}, err
	}

	return Rules{Header: header, Body: body}, nil
}

func proxyStateRules(d *device.Device) (Rules, error) {
	body, err := renderRule("proxy_state.rules", newRuleData(d))
	if err != nil {
		return Rules{}, err
	}

	return Rules{Body: body}, nil
}

// RulesFile assembles the rules file, every header ahead of the separator and every body after it.
func RulesFile(rules []Rules) []string {
	lines := banner("//")

	for _, r := range rules {
		lines = append(lines, r.Header...)
	}

	lines = append(lines, RulesSeparator)

	for _, r := range rules {
		lines = append(lines, r.Body...)
	}

	return lines
}
