package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// OpKind enumerates the closed set of condition operators.
type OpKind uint8

const (
	OpEquals OpKind = iota + 1
	OpNotEquals
	OpIn
	OpNotIn
	OpLike
	OpContains
	OpExists
)

// operatorOrder fixes the evaluation order of operators parsed from one condition object.
var operatorOrder = []OpKind{OpEquals, OpNotEquals, OpIn, OpNotIn, OpLike, OpContains, OpExists}

func (k OpKind) key() string {
	switch k {
	case OpEquals:
		return "equals"
	case OpNotEquals:
		return "not_equals"
	case OpIn:
		return "in"
	case OpNotIn:
		return "not_in"
	case OpLike:
		return "like"
	case OpContains:
		return "contains"
	case OpExists:
		return "exists"
	default:
		return ""
	}
}

// String returns the wire name of the operator.
func (k OpKind) String() string {
	if key := k.key(); key != "" {
		return key
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// Operator is one constraint applied to a field value. Construct values with the
// exported constructors; the zero Operator never matches.
type Operator struct {
	Kind OpKind

	value   any
	values  []any
	pattern *regexp.Regexp
	text    string
	exists  bool
}

// Equals requires the field to be defined and strictly equal to value.
func Equals(value any) Operator {
	return Operator{Kind: OpEquals, value: normalizeValue(value)}
}

// NotEquals requires the field to differ from value. Undefined fields pass.
func NotEquals(value any) Operator {
	return Operator{Kind: OpNotEquals, value: normalizeValue(value)}
}

// In requires the field to be defined and equal to one of values.
func In(values ...any) Operator {
	return Operator{Kind: OpIn, values: normalizeValues(values)}
}

// NotIn requires the field to equal none of values. Undefined fields pass.
func NotIn(values ...any) Operator {
	return Operator{Kind: OpNotIn, values: normalizeValues(values)}
}

// Like matches a string field against a pattern where % stands for any run of
// characters. Matching is case-insensitive and anchored at both ends.
func Like(pattern string) Operator {
	parts := strings.Split(pattern, "%")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	expr := "(?is)^" + strings.Join(parts, ".*") + "$"
	return Operator{Kind: OpLike, text: pattern, pattern: regexp.MustCompile(expr)}
}

// Contains requires a string field to contain needle, ignoring case. Fields holding
// non-string values are not constrained.
func Contains(needle string) Operator {
	return Operator{Kind: OpContains, text: strings.ToLower(needle)}
}

// Exists requires the field to be defined (want true) or undefined (want false).
func Exists(want bool) Operator {
	return Operator{Kind: OpExists, exists: want}
}

func (op Operator) eval(value any, defined bool) bool {
	if value == nil {
		defined = false
	}
	switch op.Kind {
	case OpEquals:
		return defined && equal(value, op.value)
	case OpNotEquals:
		return !defined || !equal(value, op.value)
	case OpIn:
		return defined && member(value, op.values)
	case OpNotIn:
		return !defined || !member(value, op.values)
	case OpLike:
		s, ok := value.(string)
		return ok && op.pattern.MatchString(s)
	case OpContains:
		s, ok := value.(string)
		if !ok {
			return true
		}
		return strings.Contains(strings.ToLower(s), op.text)
	case OpExists:
		return defined == op.exists
	default:
		return false
	}
}

var (
	errNotArray  = errors.New("must be an array")
	errNotString = errors.New("must be a string")
	errNotBool   = errors.New("must be a boolean")
)

func newOperator(kind OpKind, operand any) (Operator, error) {
	switch kind {
	case OpEquals:
		return Equals(operand), nil
	case OpNotEquals:
		return NotEquals(operand), nil
	case OpIn, OpNotIn:
		items, ok := operand.([]any)
		if !ok {
			return Operator{}, errNotArray
		}
		if kind == OpIn {
			return In(items...), nil
		}
		return NotIn(items...), nil
	case OpLike, OpContains:
		s, ok := operand.(string)
		if !ok {
			return Operator{}, errNotString
		}
		if kind == OpLike {
			return Like(s), nil
		}
		return Contains(s), nil
	case OpExists:
		b, ok := operand.(bool)
		if !ok {
			return Operator{}, errNotBool
		}
		return Exists(b), nil
	default:
		return Operator{}, fmt.Errorf("unsupported operator %s", kind)
	}
}

func equal(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return false
	}
}

func member(value any, set []any) bool {
	for _, candidate := range set {
		if equal(value, candidate) {
			return true
		}
	}
	return false
}

// normalizeValue maps decoded operands onto the comparable kinds: string, bool, float64
// and nil. Typed string values such as domain.Template are accepted through fmt.Stringer
// or their underlying kind.
func normalizeValue(v any) any {
	switch tv := v.(type) {
	case nil, string, bool, float64:
		return tv
	case json.Number:
		if f, err := tv.Float64(); err == nil {
			return f
		}
		return tv.String()
	case int:
		return float64(tv)
	case int32:
		return float64(tv)
	case int64:
		return float64(tv)
	case uint:
		return float64(tv)
	case uint32:
		return float64(tv)
	case uint64:
		return float64(tv)
	case float32:
		return float64(tv)
	case fmt.Stringer:
		return tv.String()
	default:
		return stringKind(v)
	}
}

func normalizeValues(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = normalizeValue(v)
	}
	return out
}
