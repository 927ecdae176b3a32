package yamlskema

import "regexp"

// stringNode validates string scalars against optional length bounds and a
// regular expression.
type stringNode struct {
	minLength *int
	maxLength *int
	pattern   *regexp.Regexp
}

func compileString(m map[string]any) (node, *SchemaError) {
	if _, err := strictContents(m, nil, []string{"type", "minLength", "maxLength", "pattern"}); err != nil {
		return nil, err
	}

	n := &stringNode{}
	if count, ok, err := lookupCount(m, "minLength"); err != nil {
		return nil, err
	} else if ok {
		n.minLength = &count
	}
	if count, ok, err := lookupCount(m, "maxLength"); err != nil {
		return nil, err
	} else if ok {
		n.maxLength = &count
	}
	if n.minLength != nil && n.maxLength != nil && *n.minLength > *n.maxLength {
		return nil, schemaMalformed("minLength cannot be greater than maxLength")
	}

	if pattern, ok, err := lookupString(m, "pattern"); err != nil {
		return nil, err
	} else if ok {
		re, rerr := regexp.Compile(pattern)
		if rerr != nil {
			return nil, schemaMalformed(rerr.Error()).pushName("pattern")
		}
		n.pattern = re
	}

	return n, nil
}

// validate checks length bounds then pattern, stopping at the first failing
// check (unlike container validators, which aggregate).
func (n *stringNode) validate(_ *Context, doc any) *ValidationError {
	value, ok := doc.(string)
	if !ok {
		return validationWrongType("string", kindOf(doc))
	}
	if n.minLength != nil && len(value) < *n.minLength {
		return constraint(CodeTooShort)
	}
	if n.maxLength != nil && len(value) > *n.maxLength {
		return constraint(CodeTooLong)
	}
	if n.pattern != nil && !n.pattern.MatchString(value) {
		return constraint(CodePattern)
	}
	return nil
}
