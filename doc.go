// Package fluentval provides a declarative, fluent validation engine for
// arbitrary entity types. A Validator is built once per entity type by
// registering named rule chains, then reused to evaluate any number of
// instances; each evaluation produces an ordered Result of field-level
// failures instead of aborting at the first problem.
//
// # Architecture
//
// Each source file groups a family of rules for a specific domain
// (`string_rules.go`, `numeric_rules.go`, `checksum.go`, etc.). Every rule
// is a thin wrapper over Must: it contributes one check function plus a
// default message to the chain it is called on. Validators carry no mutable
// evaluation state, so a fully built Validator is goroutine-safe and a
// single instance can serve concurrent requests.
//
// Core building blocks:
//   - Validator[T]  – ordered set of rule chains for one entity type
//   - RuleChain[T]  – the checks declared for a single property
//   - ChainStep[T]  – handle to the rule just added; target of WithMessage
//   - Result        – ordered collection of FieldError values
//   - Errors        – error-interface form of an invalid Result
//
// # Usage
//
//	v := fluentval.New[User]()
//	v.RuleFor("email", func(u User) any { return u.Email }).
//		NotEmpty().
//		Email()
//	v.RuleFor("age", func(u User) any { return u.Age }).
//		GreaterThanOrEqualTo(18).WithMessage("must be an adult")
//
//	result := v.Validate(user)
//	if result.IsNotValid() {
//		for _, e := range result.Errors() {
//			// e.Property, e.Message
//		}
//	}
//
// Rules on a chain run in declaration order. By default a chain continues
// past failures and reports all of them; Cascade(Stop) stops the chain at
// its first failure. When and Unless guard the rules declared after them,
// and stacked guards combine with AND.
//
// # Error Handling
//
// Validation failures are data, not errors: Validate always returns a
// Result. Result.Err bridges into the error world, returning an Errors
// value that works with errors.As plus the AsErrors and IsErrors helpers.
// Misusing the builder itself (nil predicate, empty property name, invalid
// pattern) is a programming fault and panics at construction time.
//
// # Examples
//
// See the companion *_test.go files for runnable examples covering each rule
// set.
package fluentval
