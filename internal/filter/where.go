// Package filter evaluates structured where clauses against content pages.
package filter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	domain "github.com/hanko-field/storefront-content/internal/domain"
)

const (
	keyAnd = "and"
	keyOr  = "or"
)

// ErrInvalidWhere reports a structurally malformed where clause.
var ErrInvalidWhere = errors.New("filter: invalid where clause")

// Where is a parsed predicate. Every populated part must hold for a page to match; the
// zero value matches every page. A non-nil Or requires at least one branch to match, so
// an empty non-nil Or matches nothing.
type Where struct {
	And        []Where
	Or         []Where
	Conditions []Condition
}

// Condition constrains a single page field with one or more operators.
type Condition struct {
	Field     string
	Operators []Operator
}

// Field builds a condition for clauses assembled in code.
func Field(name string, ops ...Operator) Condition {
	return Condition{Field: name, Operators: ops}
}

// IsEmpty reports whether the clause imposes no constraints.
func (w Where) IsEmpty() bool {
	return len(w.And) == 0 && w.Or == nil && len(w.Conditions) == 0
}

// ParseJSON decodes and validates a serialized where clause.
func ParseJSON(data []byte) (Where, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Where{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Where{}, fmt.Errorf("%w: %v", ErrInvalidWhere, err)
	}
	if dec.More() {
		return Where{}, fmt.Errorf("%w: trailing data", ErrInvalidWhere)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return Where{}, fmt.Errorf("%w: clause must be an object", ErrInvalidWhere)
	}
	return Parse(obj)
}

// Parse validates a decoded where clause. Unknown operator keys inside a condition
// object are dropped; structural errors are reported with ErrInvalidWhere.
func Parse(raw map[string]any) (Where, error) {
	return parseClause(raw, "where")
}

func parseClause(raw map[string]any, at string) (Where, error) {
	var where Where

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		switch key {
		case keyAnd:
			subs, err := parseClauseList(value, at+"."+key)
			if err != nil {
				return Where{}, err
			}
			where.And = subs
		case keyOr:
			subs, err := parseClauseList(value, at+"."+key)
			if err != nil {
				return Where{}, err
			}
			where.Or = subs
		default:
			cond, err := parseCondition(key, value, at+"."+key)
			if err != nil {
				return Where{}, err
			}
			where.Conditions = append(where.Conditions, cond)
		}
	}
	return where, nil
}

func parseClauseList(value any, at string) ([]Where, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array", ErrInvalidWhere, at)
	}
	out := make([]Where, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be an object", ErrInvalidWhere, at, i)
		}
		sub, err := parseClause(obj, fmt.Sprintf("%s[%d]", at, i))
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

func parseCondition(field string, value any, at string) (Condition, error) {
	cond := Condition{Field: field}
	obj, isObject := value.(map[string]any)
	if !isObject {
		if _, isArray := value.([]any); isArray {
			return Condition{}, fmt.Errorf("%w: %s must be a scalar or an operator object", ErrInvalidWhere, at)
		}
		cond.Operators = []Operator{Equals(normalizeValue(value))}
		return cond, nil
	}

	for _, kind := range operatorOrder {
		operand, ok := obj[kind.key()]
		if !ok {
			continue
		}
		op, err := newOperator(kind, operand)
		if err != nil {
			return Condition{}, fmt.Errorf("%w: %s.%s %v", ErrInvalidWhere, at, kind.key(), err)
		}
		cond.Operators = append(cond.Operators, op)
	}
	return cond, nil
}

// Matches reports whether the page satisfies every constraint in where.
func Matches(page domain.ContentPage, where Where) bool {
	return matches(&page, where)
}

func matches(page *domain.ContentPage, where Where) bool {
	for _, sub := range where.And {
		if !matches(page, sub) {
			return false
		}
	}
	if where.Or != nil {
		matched := false
		for _, sub := range where.Or {
			if matches(page, sub) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, cond := range where.Conditions {
		value, defined := FieldValue(page, cond.Field)
		for _, op := range cond.Operators {
			if !op.eval(value, defined) {
				return false
			}
		}
	}
	return true
}

// Matcher returns a predicate bound to where, for use when filtering many pages.
func Matcher(where Where) func(*domain.ContentPage) bool {
	return func(page *domain.ContentPage) bool {
		return matches(page, where)
	}
}
