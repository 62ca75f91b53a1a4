package fluentval

import "slices"

// CascadeMode controls what a chain does after one of its steps fails.
type CascadeMode int

const (
	// Continue evaluates every step and reports all failures. Default.
	Continue CascadeMode = iota
	// Stop abandons the remaining steps of the chain after the first
	// failure. Other chains are unaffected; cascade is per-property.
	Stop
)

// Predicate tests the resolved property value. It receives the value exactly
// as the accessor returned it.
type Predicate func(value any) bool

type guard[T any] struct {
	cond   func(T) bool
	unless bool
}

func (g guard[T]) holds(target T) bool {
	return g.cond(target) != g.unless
}

type stepOutcome int

const (
	stepSkipped stepOutcome = iota
	stepPassed
	stepFailed
)

// step is one atomic check: a shape-aware predicate, a message that can be
// overridden once via WithMessage, and the snapshot of the guard stack that
// was active when the step was added.
type step[T any] struct {
	check   func(value) bool
	message string
	guards  []guard[T]
}

func (s *step[T]) evaluate(target T, v value) stepOutcome {
	for _, g := range s.guards {
		if !g.holds(target) {
			return stepSkipped
		}
	}
	if s.check(v) {
		return stepPassed
	}
	return stepFailed
}

// RuleChain is the ordered sequence of checks declared for one property.
// Chains are built fluently on a single goroutine via RuleFor and must not
// be mutated once Validate is in use; after construction they are read-only
// and safe for concurrent evaluation.
type RuleChain[T any] struct {
	property     string
	accessor     func(T) any
	steps        []*step[T]
	cascadeMode  CascadeMode
	activeGuards []guard[T]
}

// ChainStep is the handle returned by every rule factory. It behaves as the
// chain for further fluent calls and additionally pins the step that was
// just added, so WithMessage always targets exactly that step.
type ChainStep[T any] struct {
	*RuleChain[T]
	step *step[T]
}

// WithMessage replaces the default message of the rule this handle refers
// to. Later rules on the chain are unaffected.
func (s ChainStep[T]) WithMessage(message string) ChainStep[T] {
	s.step.message = message
	return s
}

// Must appends a custom check to the chain. The predicate receives the raw
// property value and returns true when the value is acceptable. The step
// inherits every guard currently active on the chain.
func (c *RuleChain[T]) Must(pred Predicate, message string) ChainStep[T] {
	if pred == nil {
		panic("fluentval: Must requires a non-nil predicate")
	}
	return c.add(func(v value) bool { return pred(v.raw) }, message)
}

// add is the primitive every convenience rule reduces to.
func (c *RuleChain[T]) add(check func(value) bool, message string) ChainStep[T] {
	st := &step[T]{
		check:   check,
		message: message,
		guards:  slices.Clone(c.activeGuards),
	}
	c.steps = append(c.steps, st)
	return ChainStep[T]{RuleChain: c, step: st}
}

// When makes every subsequently added rule conditional on the entity-level
// predicate. Guards accumulate: a second When (or Unless) ANDs with the
// first, and steps added before the call keep the guards they snapshotted.
func (c *RuleChain[T]) When(cond func(T) bool) *RuleChain[T] {
	if cond == nil {
		panic("fluentval: When requires a non-nil condition")
	}
	c.activeGuards = append(c.activeGuards, guard[T]{cond: cond})
	return c
}

// Unless is the negated form of When: subsequent rules run only while the
// condition is false.
func (c *RuleChain[T]) Unless(cond func(T) bool) *RuleChain[T] {
	if cond == nil {
		panic("fluentval: Unless requires a non-nil condition")
	}
	c.activeGuards = append(c.activeGuards, guard[T]{cond: cond, unless: true})
	return c
}

// Cascade sets the failure behaviour for the whole chain, regardless of
// where in the fluent sequence it is called.
func (c *RuleChain[T]) Cascade(mode CascadeMode) *RuleChain[T] {
	c.cascadeMode = mode
	return c
}

func (c *RuleChain[T]) validate(target T, result *Result) {
	v := classify(c.accessor(target))

	for _, st := range c.steps {
		switch st.evaluate(target, v) {
		case stepFailed:
			result.addError(c.property, st.message)
			if c.cascadeMode == Stop {
				return
			}
		default:
			// A skipped step never triggers cascade-stop.
		}
	}
}
