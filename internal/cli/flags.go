package cli

import (
	"strings"

	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value that only accepts values its parser allows.
type enumValue[T ~string] struct {
	target *T
	parse  func(string) (T, error)
	kind   string
}

func (v *enumValue[T]) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v *enumValue[T]) Set(s string) error {
	parsed, err := v.parse(s)
	if err != nil {
		return err
	}
	*v.target = parsed
	return nil
}

func (v *enumValue[T]) Type() string { return v.kind }

func statusFlag(target *domain.Status) pflag.Value {
	return &enumValue[domain.Status]{target: target, parse: domain.ParseStatus, kind: "status"}
}

func priorityFlag(target *domain.Priority) pflag.Value {
	return &enumValue[domain.Priority]{target: target, parse: domain.ParsePriority, kind: "priority"}
}

func periodFlag(target *domain.Period) pflag.Value {
	return &enumValue[domain.Period]{target: target, parse: domain.ParsePeriod, kind: "period"}
}

func projectStatusFlag(target *domain.ProjectStatus) pflag.Value {
	return &enumValue[domain.ProjectStatus]{target: target, parse: domain.ParseProjectStatus, kind: "project-status"}
}

// choices renders enum values as "a|b|c" for flag usage strings.
func choices[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, "|")
}
