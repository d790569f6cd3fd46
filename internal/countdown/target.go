package countdown

import (
	"fmt"
	"strings"
)

// Target is the date being counted down to.
type Target int

const (
	Primary Target = iota
	Secondary
)

var targetWeeks = map[Target]int{
	Primary:   40,
	Secondary: 15,
}

var targetNames = map[Target]string{
	Primary:   "primary",
	Secondary: "secondary",
}

var targetLabels = map[Target]string{
	Primary:   "Pregnancy",
	Secondary: "Nausea",
}

// Weeks returns the fixed span of the target, counted from the start date.
func (t Target) Weeks() int {
	return targetWeeks[t]
}

func (t Target) String() string {
	if n, ok := targetNames[t]; ok {
		return n
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// Label is the human facing name shown on the toggle.
func (t Target) Label() string {
	return targetLabels[t]
}

// Other returns the target the toggle switches to.
func (t Target) Other() Target {
	if t == Primary {
		return Secondary
	}
	return Primary
}

// Targets lists every target in display order.
func Targets() []Target {
	return []Target{Primary, Secondary}
}

// ParseTarget accepts the canonical name, the label, or the week count.
func ParseTarget(s string) (Target, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Targets() {
		if s == t.String() || s == strings.ToLower(t.Label()) || s == fmt.Sprint(t.Weeks()) {
			return t, nil
		}
	}
	return Primary, fmt.Errorf("unknown target %q", s)
}
