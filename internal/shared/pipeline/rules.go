package pipeline

import (
	"context"

	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
)

// Rule validates the request payload on its own, without looking at stored state.
type Rule struct {
	Name     string
	Validate func(data payload.Data) *Rejection
}

// Has rejects when field is absent or null.
func Has(resource, field string) Rule {
	return Rule{
		Name: "has." + field,
		Validate: func(data payload.Data) *Rejection {
			if data.Has(field) {
				return nil
			}
			return BadRequest("%s must include a %s", resource, field)
		},
	}
}

// NonEmptyString rejects when field is not a string of length > 0.
func NonEmptyString(resource, field string) Rule {
	return Rule{
		Name: "nonempty." + field,
		Validate: func(data payload.Data) *Rejection {
			if data.NonEmptyString(field) {
				return nil
			}
			return BadRequest("%s must include a %s", resource, field)
		},
	}
}

// FromRule lifts a payload rule into a step over the per-request context C.
func FromRule[C any](rule Rule, data func(req *C) payload.Data) Step[C] {
	return Step[C]{
		Name: rule.Name,
		Check: func(_ context.Context, req *C) error {
			if rejection := rule.Validate(data(req)); rejection != nil {
				return rejection
			}
			return nil
		},
	}
}

// FromRules lifts rules in order.
func FromRules[C any](data func(req *C) payload.Data, rules ...Rule) []Step[C] {
	steps := make([]Step[C], 0, len(rules))
	for _, rule := range rules {
		steps = append(steps, FromRule(rule, data))
	}
	return steps
}
