package main

import (
	"strings"
	"testing"
)

func TestParseToggle(t *testing.T) {
	cases := []struct {
		in   string
		want toggle
		bad  bool
	}{
		{"", toggleAuto, false},
		{"auto", toggleAuto, false},
		{" ON ", toggleOn, false},
		{"off", toggleOff, false},
		{"sometimes", toggleAuto, true},
	}
	for _, tc := range cases {
		got, err := parseToggle("ui", tc.in)
		if tc.bad {
			if err == nil || !strings.Contains(err.Error(), "--ui") {
				t.Errorf("parseToggle(%q) error = %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("parseToggle(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestToggleEnabled(t *testing.T) {
	for _, tc := range []struct {
		t      toggle
		auto   bool
		want   bool
		called bool
	}{
		{toggleOn, false, true, false},
		{toggleOff, true, false, false},
		{toggleAuto, true, true, true},
		{toggleAuto, false, false, true},
	} {
		called := false
		got := tc.t.enabled(func() bool { called = true; return tc.auto })
		if got != tc.want || called != tc.called {
			t.Errorf("%v.enabled(auto=%v) = %v (auto called %v)", tc.t, tc.auto, got, called)
		}
	}
}
