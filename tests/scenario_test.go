package tests

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/result3/pkg/result"
	"github.com/ib-77/result3/pkg/result/chain"
	"github.com/stretchr/testify/assert"
)

// parseQuantity is the fallible pipeline under test: trim, parse, range-check.
func parseQuantity(raw string) result.Result[int, string] {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return result.Err[int]("empty input")
	}

	parsed := result.MapErr(
		result.From(strconv.Atoi(trimmed)),
		func(err error) string { return "not a number: " + trimmed })

	return result.AndThen(parsed, func(n int) result.Result[int, string] {
		if n <= 0 {
			return result.Err[int]("quantity must be positive")
		}
		return result.Ok[int, string](n)
	})
}

func TestParsePipeline(t *testing.T) {
	inputs := []string{" 10 ", "3", "bad", "", "-5"}

	var outputs []string
	for _, in := range inputs {
		out := result.Map(parseQuantity(in), func(n int) string {
			return fmt.Sprintf("qty:%d", n)
		}).UnwrapOr("invalid")
		outputs = append(outputs, out)
	}

	assert.Equal(t, []string{"qty:10", "qty:3", "invalid", "invalid", "invalid"}, outputs)
}

func TestParsePipeline_ErrorsAreDescriptive(t *testing.T) {
	assert.Equal(t, "empty input", parseQuantity("  ").UnwrapErr())
	assert.Equal(t, "not a number: x1", parseQuantity("x1").UnwrapErr())
	assert.Equal(t, "quantity must be positive", parseQuantity("0").UnwrapErr())
}

func TestDoubleThenGate(t *testing.T) {
	gate := func(v int) result.Result[int, string] {
		if v > 5 {
			return result.Ok[int, string](v)
		}
		return result.Err[int]("too small")
	}
	double := func(v int) int { return v * 2 }

	r := result.AndThen(result.Map(result.Ok[int, string](5), double), gate)
	assert.True(t, r.IsOk())
	assert.Equal(t, 10, r.Unwrap())

	r = result.AndThen(result.Map(result.Ok[int, string](2), double), gate)
	assert.True(t, r.IsErr())
	assert.Equal(t, "too small", r.UnwrapErr())
}

func TestRecoveryScenario(t *testing.T) {
	r := result.OrElse(result.Err[int]("boom"), func(e string) result.Result[int, string] {
		return result.Ok[int, string](42)
	})
	assert.Equal(t, 42, r.Unwrap())
}

func TestChainScenario(t *testing.T) {
	ctx := context.Background()

	fetchUser := func(ctx context.Context, id string) (string, error) {
		if id == "missing" {
			return "", errors.New("user not found")
		}
		return "user-" + id, nil
	}

	greet := func(id string) string {
		c := chain.FromValue[string, error](ctx, id)
		named := chain.Try(c, fetchUser)
		return chain.Finally(named,
			func(ctx context.Context, name string) string { return "hello " + name },
			func(ctx context.Context, err error) string { return "sorry: " + err.Error() })
	}

	assert.Equal(t, "hello user-7", greet("7"))
	assert.Equal(t, "sorry: user not found", greet("missing"))
}

func TestContractViolationAbortsOperation(t *testing.T) {
	var fatalMsg string
	result.SetFatalHandler(func(msg string) { fatalMsg = msg })
	defer result.SetFatalHandler(nil)

	assert.Panics(t, func() {
		result.Err[int]("e").Unwrap()
	})
	assert.Contains(t, fatalMsg, "Unwrap")
}
