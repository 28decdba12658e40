package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	allowed []string
	value   *string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(def string, target *string, allowed ...string) *enumValue {
	*target = def
	return &enumValue{allowed: allowed, value: target}
}

func (e *enumValue) String() string { return *e.value }

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(e.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	*e.value = s
	return nil
}

func (e *enumValue) Type() string { return "string" }

// enumFlag registers an enumValue on fs and lists the choices in the usage.
func enumFlag(fs *pflag.FlagSet, target *string, name, def, usage string, allowed ...string) {
	fs.Var(newEnumValue(def, target, allowed...), name, fmt.Sprintf("%s (%s)", usage, strings.Join(allowed, ", ")))
}
