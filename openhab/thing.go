package openhab

import (
	"fmt"
	"strconv"
	"strings"
)

// Channel kinds of the MQTT binding.
const (
	KindSwitch   = "switch"
	KindDimmer   = "dimmer"
	KindNumber   = "number"
	KindString   = "string"
	KindColour   = "color"
	KindContact  = "contact"
	KindDateTime = "datetime"
)

// Param is a channel configuration parameter. Quoted values are rendered as strings, others
// verbatim.
type Param struct {
	Key    string
	Value  string
	Quoted bool
}

func String(key string, value string) Param {
	return Param{Key: key, Value: value, Quoted: true}
}

func Int(key string, value int) Param {
	return Param{Key: key, Value: strconv.Itoa(value)}
}

func (p Param) String() string {
	if p.Quoted {
		return fmt.Sprintf(`%s="%s"`, p.Key, strings.ReplaceAll(p.Value, `"`, `\"`))
	}

	return fmt.Sprintf("%s=%s", p.Key, p.Value)
}

type Channel struct {
	Kind   string
	ID     string
	Params []Param
}

func (c Channel) Line() string {
	params := make([]string, len(c.Params))

	for i, p := range c.Params {
		params[i] = p.String()
	}

	return fmt.Sprintf("\t\tType %s : %s [%s]", c.Kind, c.ID, strings.Join(params, ", "))
}

// Thing is an MQTT topic thing bound to a broker thing.
type Thing struct {
	BrokerID string
	ID       string
	Name     string
	Channels []Channel
}

func (t Thing) Lines() []string {
	lines := []string{
		fmt.Sprintf(`Thing mqtt:topic:%s:%s "%s" (mqtt:broker:%s) {`, t.BrokerID, t.ID, t.Name, t.BrokerID),
		"\tChannels:",
	}

	for _, c := range t.Channels {
		lines = append(lines, c.Line())
	}

	return append(lines, "}")
}
