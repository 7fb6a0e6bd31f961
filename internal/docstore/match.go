package docstore

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Match evaluates a MongoDB-style filter against a decoded document.
// Supported: top-level field equality (array fields match any element),
// $and, $or, and the field operators $eq, $regex (+$options) and $elemMatch.
func Match(doc bson.M, filter bson.M) (bool, error) {
	for key, cond := range filter {
		var (
			ok  bool
			err error
		)
		switch key {
		case "$or":
			ok, err = matchClauses(doc, cond, false)
		case "$and":
			ok, err = matchClauses(doc, cond, true)
		default:
			if strings.HasPrefix(key, "$") {
				return false, fmt.Errorf("unsupported top-level operator %s", key)
			}
			ok, err = matchValue(doc[key], cond)
		}
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchClauses(doc bson.M, cond any, all bool) (bool, error) {
	clauses, err := toDocs(cond)
	if err != nil {
		return false, err
	}
	for _, c := range clauses {
		ok, err := Match(doc, c)
		if err != nil {
			return false, err
		}
		if ok && !all {
			return true, nil
		}
		if !ok && all {
			return false, nil
		}
	}
	return all, nil
}

func toDocs(v any) ([]bson.M, error) {
	switch t := v.(type) {
	case []bson.M:
		return t, nil
	case bson.A:
		out := make([]bson.M, 0, len(t))
		for _, e := range t {
			m, ok := e.(bson.M)
			if !ok {
				return nil, fmt.Errorf("logical clause must be a document, got %T", e)
			}
			out = append(out, m)
		}
		return out, nil
	}
	return nil, fmt.Errorf("logical operator expects an array, got %T", v)
}

// operators returns cond as an operator document when every key starts with '$'.
func operators(cond any) (bson.M, bool) {
	m, ok := cond.(bson.M)
	if !ok || len(m) == 0 {
		return nil, false
	}
	for k := range m {
		if !strings.HasPrefix(k, "$") {
			return nil, false
		}
	}
	return m, true
}

func matchValue(val any, cond any) (bool, error) {
	if re, ok := cond.(primitive.Regex); ok {
		return matchRegex(val, re, nil)
	}
	ops, ok := operators(cond)
	if !ok {
		return equalOrContains(val, cond), nil
	}
	for op, arg := range ops {
		var (
			matched bool
			err     error
		)
		switch op {
		case "$options":
			continue
		case "$eq":
			matched = equalOrContains(val, arg)
		case "$regex":
			matched, err = matchRegex(val, arg, ops["$options"])
		case "$elemMatch":
			matched, err = matchElem(val, arg)
		default:
			return false, fmt.Errorf("unsupported operator %s", op)
		}
		if err != nil || !matched {
			return false, err
		}
	}
	return true, nil
}

func matchRegex(val any, pattern any, options any) (bool, error) {
	var expr, flags string
	switch p := pattern.(type) {
	case string:
		expr = p
	case primitive.Regex:
		expr, flags = p.Pattern, p.Options
	default:
		return false, fmt.Errorf("$regex expects a string, got %T", pattern)
	}
	if o, ok := options.(string); ok {
		flags += o
	}
	if strings.Contains(flags, "i") {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return false, fmt.Errorf("invalid $regex: %w", err)
	}
	switch v := val.(type) {
	case string:
		return re.MatchString(v), nil
	case primitive.A:
		for _, e := range v {
			if s, ok := e.(string); ok && re.MatchString(s) {
				return true, nil
			}
		}
	}
	return false, nil
}

func matchElem(val any, cond any) (bool, error) {
	arr, ok := val.(primitive.A)
	if !ok {
		return false, nil
	}
	_, isOps := operators(cond)
	for _, el := range arr {
		var (
			matched bool
			err     error
		)
		if sub, isDoc := el.(bson.M); isDoc && !isOps {
			c, ok := cond.(bson.M)
			if !ok {
				return false, fmt.Errorf("$elemMatch expects a document, got %T", cond)
			}
			matched, err = Match(sub, c)
		} else {
			matched, err = matchValue(el, cond)
		}
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func equalOrContains(val any, want any) bool {
	if arr, ok := val.(primitive.A); ok {
		if _, wantArr := want.(primitive.A); !wantArr {
			for _, e := range arr {
				if equal(e, want) {
					return true
				}
			}
			return false
		}
	}
	return equal(val, want)
}

func equal(a, b any) bool {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
