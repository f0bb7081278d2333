package cli

import (
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
	"github.com/spf13/pflag"
)

// filterValue is a --filter flag restricted to the known filter modes.
type filterValue struct {
	mode domain.FilterMode
}

func newFilterValue() *filterValue { return &filterValue{mode: domain.FilterAll} }

func (f *filterValue) String() string { return string(f.mode) }
func (f *filterValue) Type() string   { return "filter" }

func (f *filterValue) Set(s string) error {
	m, err := domain.ParseFilterMode(s)
	if err != nil {
		return err
	}
	f.mode = m
	return nil
}

type priorityValue struct {
	p domain.Priority
}

func newPriorityValue() *priorityValue { return &priorityValue{p: domain.PriorityMedium} }

func (v *priorityValue) String() string { return string(v.p) }
func (v *priorityValue) Type() string   { return "priority" }

func (v *priorityValue) Set(s string) error {
	p, err := domain.ParsePriority(s)
	if err != nil {
		return err
	}
	v.p = p
	return nil
}

// monthValue is a YYYY-MM flag. It is unset until Set succeeds.
type monthValue struct {
	nav planner.Navigator
	set bool
}

func (v *monthValue) String() string {
	if !v.set {
		return ""
	}
	return v.nav.Key()
}

func (v *monthValue) Type() string { return "YYYY-MM" }

func (v *monthValue) Set(s string) error {
	nav, err := planner.ParseMonth(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	v.nav, v.set = nav, true
	return nil
}

var (
	_ pflag.Value = (*filterValue)(nil)
	_ pflag.Value = (*priorityValue)(nil)
	_ pflag.Value = (*monthValue)(nil)
)

// filterNames lists filter modes for help text.
func filterNames() string {
	names := make([]string, len(domain.FilterModes))
	for i, m := range domain.FilterModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
