// Package transforms implements the colon-command library applied after
// path evaluation. Rather than inheritance, each transform is
// a function of the uniform signature Handler, held in a name-to-handler
// registry sized to this grammar's fixed transform set.
package transforms

import (
	"github.com/eladbash/jdx/pkg/types"
	"github.com/eladbash/jdx/pkg/value"
)

// Handler applies one transform to cur with the arguments carried on step.
type Handler func(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError)

var registry = map[string]Handler{
	"keys":     keysTransform,
	"values":   valuesTransform,
	"count":    countTransform,
	"flatten":  flattenTransform,
	"pick":     pickTransform,
	"omit":     omitTransform,
	"sort":     sortTransform,
	"uniq":     uniqTransform,
	"group_by": groupByTransform,
	"filter":   filterTransform,
	"sum":      sumHandler,
	"avg":      avgHandler,
	"min":      minHandler,
	"max":      maxHandler,
}

func sumHandler(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	return aggregate("sum", step, cur)
}
func avgHandler(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	return aggregate("avg", step, cur)
}
func minHandler(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	return aggregate("min", step, cur)
}
func maxHandler(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	return aggregate("max", step, cur)
}

// Apply dispatches step to its registered Handler, or an UnknownTransform
// EvalError carrying the token text if step.Name is not registered
//.
func Apply(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	h, ok := registry[step.Name]
	if !ok {
		return nil, types.UnknownTransform(step.Name)
	}
	return h(step, cur)
}

// Names returns every registered transform name, the candidate source for
// completion's transform-name context.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
