package yamlskema

import "math"

// numeric constrains the scalar types bound checks operate on. Integer and
// real constraints never mix: a bounds value is instantiated per subtype.
type numeric interface {
	~int64 | ~float64
}

// limit is one end of a numeric range, inclusive unless exclusive is set.
type limit[T numeric] struct {
	value     T
	exclusive bool
}

// holdsLower reports whether v satisfies the limit used as a lower bound.
// A nil limit is unbounded.
func (l *limit[T]) holdsLower(v T) bool {
	if l == nil {
		return true
	}
	if l.exclusive {
		return v > l.value
	}
	return v >= l.value
}

// holdsUpper reports whether v satisfies the limit used as an upper bound.
func (l *limit[T]) holdsUpper(v T) bool {
	if l == nil {
		return true
	}
	if l.exclusive {
		return v < l.value
	}
	return v <= l.value
}

// spanValid reports whether a (lower, upper) pair describes a non-empty
// range. unit is the smallest step of T: with both ends exclusive at least
// one representable value must fit strictly between them; otherwise a
// single-point range is still legal.
func spanValid[T numeric](lower, upper *limit[T], unit T) bool {
	if lower == nil || upper == nil {
		return true
	}
	span := upper.value - lower.value
	if lower.exclusive && upper.exclusive {
		return span > unit
	}
	return span >= 0
}

// bounds holds the compiled numeric constraints shared by the integer and
// real validators.
type bounds[T numeric] struct {
	lower      *limit[T]
	upper      *limit[T]
	multipleOf *T
}

// check runs lower bound, upper bound and multipleOf in order, returning the
// first violation.
func (b *bounds[T]) check(v T) *ValidationError {
	if !b.lower.holdsLower(v) {
		return constraint(CodeLowerLimit)
	}
	if !b.upper.holdsUpper(v) {
		return constraint(CodeUpperLimit)
	}
	if b.multipleOf != nil && !isMultiple(v, *b.multipleOf) {
		return constraint(CodeMultipleOf)
	}
	return nil
}

func isMultiple[T numeric](v, m T) bool {
	switch value := any(v).(type) {
	case int64:
		return value%any(m).(int64) == 0
	case float64:
		return math.Mod(value, any(m).(float64)) == 0
	}
	return false
}

// compileBounds reads the minimum/exclusiveMinimum, maximum/exclusiveMaximum
// and multipleOf fields out of a schema node. Each inclusive/exclusive pair
// is mutually exclusive, the resolved range must be non-empty, and
// multipleOf must be strictly positive.
func compileBounds[T numeric](m map[string]any, lookup func(map[string]any, string) (T, bool, *SchemaError), unit T) (bounds[T], *SchemaError) {
	var b bounds[T]

	minValue, hasMin, err := lookup(m, "minimum")
	if err != nil {
		return b, err
	}
	exclMin, hasExclMin, err := lookup(m, "exclusiveMinimum")
	if err != nil {
		return b, err
	}
	if hasMin && hasExclMin {
		return b, schemaMalformed("minimum and exclusiveMinimum are mutually exclusive")
	}
	if hasMin {
		b.lower = &limit[T]{value: minValue}
	} else if hasExclMin {
		b.lower = &limit[T]{value: exclMin, exclusive: true}
	}

	maxValue, hasMax, err := lookup(m, "maximum")
	if err != nil {
		return b, err
	}
	exclMax, hasExclMax, err := lookup(m, "exclusiveMaximum")
	if err != nil {
		return b, err
	}
	if hasMax && hasExclMax {
		return b, schemaMalformed("maximum and exclusiveMaximum are mutually exclusive")
	}
	if hasMax {
		b.upper = &limit[T]{value: maxValue}
	} else if hasExclMax {
		b.upper = &limit[T]{value: exclMax, exclusive: true}
	}

	if !spanValid(b.lower, b.upper, unit) {
		return b, schemaMalformed("lower and upper limits describe an empty range")
	}

	multipleOf, hasMultiple, err := lookup(m, "multipleOf")
	if err != nil {
		return b, err
	}
	if hasMultiple {
		if multipleOf <= 0 {
			return b, schemaMalformed("multipleOf must be a strictly positive value").pushName("multipleOf")
		}
		b.multipleOf = &multipleOf
	}

	return b, nil
}
