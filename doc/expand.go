package doc

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// Env is the environment expressions are evaluated in.
type Env map[string]any

func eval(input string, env Env) (any, error) {
	if env == nil {
		env = Env{}
	}
	program, err := expr.Compile(input, expr.Env(map[string]any(env)))
	if err != nil {
		return nil, err
	}
	return expr.Run(program, map[string]any(env))
}

// When evaluates a when expression. The empty expression is true.
func When(input string, env Env) (bool, error) {
	if strings.TrimSpace(input) == "" {
		return true, nil
	}
	v, err := eval(input, env)
	if err != nil {
		return false, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%q: %w: got %T", input, ErrNotBool, v)
	}
	return b, nil
}

// ExpandString replaces each $[expr] in v by the value of expr.
func ExpandString(v string, env Env) (string, error) {
	if len(v) < 3 || !strings.Contains(v, "$[") {
		return v, nil
	}
	// $[x] with backslash escaping: \] -> ], \\ -> \
	exprStart := -1
	i := 0
	n := len(v)
	var outBuf []byte
	var keyBuf []byte

	for i < n {
		c := v[i]
		i++
		switch c {
		case '$':
			if exprStart == -1 && i < n && v[i] == '[' {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 && i < n {
				keyBuf = append(keyBuf, v[i])
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart == -1 {
				outBuf = append(outBuf, c)
				continue
			}
			key := strings.TrimSpace(string(keyBuf))
			x, err := eval(key, env)
			if err != nil {
				return "", fmt.Errorf("error evaluating %q: %w", key, err)
			}
			outBuf = append(outBuf, fmt.Sprint(x)...)
			exprStart = -1
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}
	if exprStart != -1 {
		return "", fmt.Errorf("unterminated expression in %q", v)
	}
	return string(outBuf), nil
}
