// Package evaluator walks a Query AST against a value.Value and produces a
// result Value or a typed EvalError. Evaluation is a left
// fold: the root Value is threaded through each PathSegment in turn, then
// through each TransformStep.
//
// Evaluation never mutates its input: every segment and transform builds a
// fresh Value, possibly sharing unchanged subtrees with the Value it was
// given.
package evaluator

import (
	"context"

	"github.com/eladbash/jdx/internal/logx"
	"github.com/eladbash/jdx/pkg/transforms"
	"github.com/eladbash/jdx/pkg/types"
	"github.com/eladbash/jdx/pkg/value"
)

// Evaluator applies a Query to a root Value. The zero value is not usable;
// construct one with New.
type Evaluator struct {
	logger logx.Logger
}

// Option configures an Evaluator, following the functional-options
// convention used throughout this module's ambient packages.
type Option func(*Evaluator)

// WithLogger overrides the process-wide default logx.Logger (see New) for
// parse/eval diagnostics on this Evaluator. A nil logger installs logx.Nop,
// silencing diagnostics entirely — logging is never required for
// correctness.
func WithLogger(l logx.Logger) Option {
	return func(e *Evaluator) {
		if l == nil {
			l = logx.Nop
		}
		e.logger = l
	}
}

// New constructs an Evaluator. Without WithLogger, it logs through the
// ambient logx.L() default, so a host that configures logx once (e.g. the
// CLI's --log-json flag) doesn't need to thread a logger through every
// Evaluator it constructs.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{logger: logx.L()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate walks q against root and returns the resulting Value. ctx is
// advisory only: the engine is synchronous and pure, and the
// only use of ctx is an early-exit check before each path segment and each
// transform step, so a host can bound wall-clock time by cancelling it. A
// segment or transform that has started runs to completion.
func (e *Evaluator) Evaluate(ctx context.Context, q *types.Query, root *value.Value) (*value.Value, *types.EvalError) {
	if ctx == nil {
		ctx = context.Background()
	}
	cur := root
	if cur == nil {
		cur = value.Null
	}

	for _, seg := range q.Segments {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		next, everr := applySegment(cur, seg)
		if everr != nil {
			return nil, everr
		}
		cur = next
	}

	for _, step := range q.Transforms {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		next, everr := transforms.Apply(step, cur)
		if everr != nil {
			return nil, everr
		}
		cur = next
	}

	e.logger.Debug("evaluate", "segments", len(q.Segments), "transforms", len(q.Transforms))
	return cur, nil
}

func checkCancel(ctx context.Context) *types.EvalError {
	select {
	case <-ctx.Done():
		return types.NewEvalError(types.ErrTypeMismatch, "", "evaluation cancelled: "+ctx.Err().Error())
	default:
		return nil
	}
}
