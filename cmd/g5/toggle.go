package main

import (
	"fmt"
	"strings"
)

// toggle is the auto|on|off value shared by --color and --ui. Auto is
// resolved against the output stream at the point of use.
type toggle uint8

const (
	toggleAuto toggle = iota
	toggleOn
	toggleOff
)

func (t toggle) String() string {
	return [...]string{"auto", "on", "off"}[t]
}

// parseToggle reads the value given for --name; empty means auto.
func parseToggle(name, value string) (toggle, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return toggleAuto, nil
	case "on":
		return toggleOn, nil
	case "off":
		return toggleOff, nil
	}
	return toggleAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", name, value)
}

// enabled resolves the toggle, calling auto only when it is needed.
func (t toggle) enabled(auto func() bool) bool {
	switch t {
	case toggleOn:
		return true
	case toggleOff:
		return false
	}
	return auto()
}
