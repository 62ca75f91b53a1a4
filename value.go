package fluentval

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// shape is the closed set of runtime forms a property value can take. Every
// rule dispatches on the shape computed once per chain evaluation instead of
// probing the dynamic type ad hoc inside each predicate.
type shape int

const (
	shapeNil shape = iota
	shapeText
	shapeNumber
	shapeBool
	shapeCollection
	shapeMap
	shapeTime
	shapeOther
)

// value wraps a resolved property value together with its classification.
// Pointers are dereferenced during classification, so optional fields
// declared as *string, *int etc. validate like their element values; a nil
// pointer classifies as shapeNil.
type value struct {
	raw   any // as returned by the accessor
	deref any // after pointer/interface dereferencing
	shape shape

	str      string
	num      float64 // comparison rules operate on this float64 form
	integer  int64   // exact for integer kinds, truncated for floats
	intValid bool    // integer fits in int64; false for NaN, Inf and overflow
	boolean  bool
	when    time.Time
	rv      reflect.Value // valid for shapeCollection and shapeMap
}

func classify(raw any) value {
	v := value{raw: raw, deref: raw}
	if raw == nil {
		v.shape = shapeNil
		return v
	}

	rv := reflect.ValueOf(raw)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			v.shape = shapeNil
			return v
		}
		rv = rv.Elem()
	}
	v.deref = rv.Interface()

	if t, ok := v.deref.(time.Time); ok {
		v.shape = shapeTime
		v.when = t
		return v
	}

	switch rv.Kind() {
	case reflect.String:
		v.shape = shapeText
		v.str = rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.shape = shapeNumber
		v.integer = rv.Int()
		v.num = float64(v.integer)
		v.intValid = true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.shape = shapeNumber
		u := rv.Uint()
		v.num = float64(u)
		if u <= math.MaxInt64 {
			v.integer = int64(u)
			v.intValid = true
		}
	case reflect.Float32, reflect.Float64:
		v.shape = shapeNumber
		v.num = rv.Float()
		// int64(f) is implementation-specific for NaN, Inf and values
		// outside the int64 range, so those stay intValid=false.
		if !math.IsNaN(v.num) && !math.IsInf(v.num, 0) &&
			v.num >= math.MinInt64 && v.num < math.MaxInt64 {
			v.integer = int64(v.num)
			v.intValid = true
		}
	case reflect.Bool:
		v.shape = shapeBool
		v.boolean = rv.Bool()
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			v.shape = shapeNil
			return v
		}
		v.shape = shapeCollection
		v.rv = rv
	case reflect.Map:
		if rv.IsNil() {
			v.shape = shapeNil
			return v
		}
		v.shape = shapeMap
		v.rv = rv
	default:
		if s, ok := v.deref.(fmt.Stringer); ok {
			v.shape = shapeText
			v.str = s.String()
			return v
		}
		v.shape = shapeOther
	}
	return v
}

func (v value) isNil() bool {
	return v.shape == shapeNil
}

// text returns the string form for text-shaped values only. Rules that
// expect text fail closed on every other shape.
func (v value) text() (string, bool) {
	if v.shape != shapeText {
		return "", false
	}
	return v.str, true
}

// number returns the float64 form for numeric values. Comparison rules work
// on this coerced form; integer-only rules use v.integer to stay exact for
// large values.
func (v value) number() (float64, bool) {
	if v.shape != shapeNumber {
		return 0, false
	}
	return v.num, true
}

// exact returns the int64 form for numeric values that fit in int64.
// Integer-only rules fail closed for NaN, infinities and overflowing
// magnitudes instead of operating on a wrapped conversion.
func (v value) exact() (int64, bool) {
	if v.shape != shapeNumber || !v.intValid {
		return 0, false
	}
	return v.integer, true
}

// count returns the element count for collections and maps.
func (v value) count() (int, bool) {
	switch v.shape {
	case shapeCollection, shapeMap:
		return v.rv.Len(), true
	default:
		return 0, false
	}
}

// items returns the elements of a collection-shaped value.
func (v value) items() ([]any, bool) {
	if v.shape != shapeCollection {
		return nil, false
	}
	out := make([]any, v.rv.Len())
	for i := range out {
		out[i] = v.rv.Index(i).Interface()
	}
	return out, true
}
