package fluentval

import (
	"fmt"
	"reflect"
	"strings"
)

// HasMinCount requires a collection or map with at least n elements.
func (c *RuleChain[T]) HasMinCount(n int) ChainStep[T] {
	return c.add(func(v value) bool {
		count, ok := v.count()
		return ok && count >= n
	}, fmt.Sprintf("must have at least %d items", n))
}

// HasMaxCount requires a collection or map with at most n elements.
func (c *RuleChain[T]) HasMaxCount(n int) ChainStep[T] {
	return c.add(func(v value) bool {
		count, ok := v.count()
		return ok && count <= n
	}, fmt.Sprintf("must have at most %d items", n))
}

// HasExactCount requires a collection or map with exactly n elements.
func (c *RuleChain[T]) HasExactCount(n int) ChainStep[T] {
	return c.add(func(v value) bool {
		count, ok := v.count()
		return ok && count == n
	}, fmt.Sprintf("must have exactly %d items", n))
}

// HasUniqueItems rejects collections with duplicate elements. Elements are
// compared pairwise by deep equality so slices of structs work without the
// elements being comparable.
func (c *RuleChain[T]) HasUniqueItems() ChainStep[T] {
	return c.add(func(v value) bool {
		items, ok := v.items()
		if !ok {
			return false
		}
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				if reflect.DeepEqual(items[i], items[j]) {
					return false
				}
			}
		}
		return true
	}, "must not contain duplicate items")
}

// Contains requires the element to be present: substring containment for
// text values, deep-equal membership for collections.
func (c *RuleChain[T]) Contains(element any) ChainStep[T] {
	return c.add(func(v value) bool {
		if s, ok := v.text(); ok {
			sub, isStr := element.(string)
			return isStr && strings.Contains(s, sub)
		}
		items, ok := v.items()
		if !ok {
			return false
		}
		for _, it := range items {
			if reflect.DeepEqual(it, element) {
				return true
			}
		}
		return false
	}, fmt.Sprintf("must contain '%v'", element))
}

// DoesNotContain is the inverse of Contains. A nil value trivially contains
// nothing and passes.
func (c *RuleChain[T]) DoesNotContain(element any) ChainStep[T] {
	return c.add(func(v value) bool {
		if v.isNil() {
			return true
		}
		if s, ok := v.text(); ok {
			sub, isStr := element.(string)
			return !isStr || !strings.Contains(s, sub)
		}
		items, ok := v.items()
		if !ok {
			return true
		}
		for _, it := range items {
			if reflect.DeepEqual(it, element) {
				return false
			}
		}
		return true
	}, fmt.Sprintf("must not contain '%v'", element))
}

// AllMatch requires every element of the collection to satisfy the
// predicate. An empty collection passes vacuously.
func (c *RuleChain[T]) AllMatch(pred func(any) bool, message string) ChainStep[T] {
	if pred == nil {
		panic("fluentval: AllMatch requires a non-nil predicate")
	}
	return c.add(func(v value) bool {
		items, ok := v.items()
		if !ok {
			return false
		}
		for _, it := range items {
			if !pred(it) {
				return false
			}
		}
		return true
	}, message)
}

// AnyMatch requires at least one element to satisfy the predicate.
func (c *RuleChain[T]) AnyMatch(pred func(any) bool, message string) ChainStep[T] {
	if pred == nil {
		panic("fluentval: AnyMatch requires a non-nil predicate")
	}
	return c.add(func(v value) bool {
		items, ok := v.items()
		if !ok {
			return false
		}
		for _, it := range items {
			if pred(it) {
				return true
			}
		}
		return false
	}, message)
}

// NoneMatch requires no element to satisfy the predicate.
func (c *RuleChain[T]) NoneMatch(pred func(any) bool, message string) ChainStep[T] {
	if pred == nil {
		panic("fluentval: NoneMatch requires a non-nil predicate")
	}
	return c.add(func(v value) bool {
		items, ok := v.items()
		if !ok {
			return false
		}
		for _, it := range items {
			if pred(it) {
				return false
			}
		}
		return true
	}, message)
}
