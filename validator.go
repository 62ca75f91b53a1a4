package fluentval

// Validator holds the rule chains declared for one entity type and runs
// them in declaration order. Build it once — RuleFor and the chain methods
// are not safe to interleave with Validate — then share it freely: Validate
// touches no validator state and each call returns its own Result.
type Validator[T any] struct {
	chains []*RuleChain[T]
	skip   func(T) bool
}

// New creates an empty Validator for T.
func New[T any]() *Validator[T] {
	return &Validator[T]{}
}

// RuleFor registers a rule chain for one property. The property name is
// used verbatim in FieldError entries; the accessor resolves the value to
// validate from the target entity.
func (v *Validator[T]) RuleFor(property string, accessor func(T) any) *RuleChain[T] {
	if property == "" {
		panic("fluentval: RuleFor requires a property name")
	}
	if accessor == nil {
		panic("fluentval: RuleFor requires a non-nil accessor")
	}

	chain := &RuleChain[T]{property: property, accessor: accessor}
	v.chains = append(v.chains, chain)
	return chain
}

// SkipWhen installs an entity-level bypass: when the predicate holds for a
// target, Validate returns a valid Result without evaluating any chain.
func (v *Validator[T]) SkipWhen(cond func(T) bool) *Validator[T] {
	v.skip = cond
	return v
}

// Validate evaluates every chain in registration order against the target
// and returns the aggregated result. It never fails for data reasons; all
// rule failures are collected into the Result.
func (v *Validator[T]) Validate(target T) *Result {
	result := &Result{}
	if v.skip != nil && v.skip(target) {
		return result
	}

	for _, chain := range v.chains {
		chain.validate(target, result)
	}
	return result
}
