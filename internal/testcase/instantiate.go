package testcase

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/enum"
)

// Dimension is one axis of an instantiation: a list of assignments, one per value.
type Dimension[A any] []func(A)

// Values builds a dimension assigning each value with assign.
func Values[A any, T any](assign func(A, T), values ...T) Dimension[A] {
	d := make(Dimension[A], len(values))
	for i, v := range values {
		d[i] = func(a A) { assign(a, v) }
	}
	return d
}

// Apis builds a dimension assigning the backend API.
func Apis[A ArgumentSet](apis ...enum.Api) Dimension[A] {
	return Values(func(a A, api enum.Api) { a.Base().Api = api }, apis...)
}

// Combine returns the cartesian product of the dimensions. The last dimension varies fastest.
func Combine[A any](dims ...Dimension[A]) []func(A) {
	combos := []func(A){func(A) {}}
	for _, d := range dims {
		next := make([]func(A), 0, len(combos)*len(d))
		for _, prev := range combos {
			for _, assign := range d {
				next = append(next, func(a A) {
					prev(a)
					assign(a)
				})
			}
		}
		combos = next
	}
	return combos
}

const limitedMarker = "LIMITED/"

// Instance is one predefined configuration run in all-tests mode.
type Instance struct {
	Suite    string
	Index    int
	Limited  bool
	Extended bool
	run      func(env *Env) Result
}

// group tells how an instance is gated in all-tests mode.
type group struct {
	limited  bool
	extended bool
}

// Name returns the full instance name matched by --gtest_filter.
func (i Instance) Name() string {
	return fmt.Sprintf("%s.Test/%d", i.Suite, i.Index)
}

// Run executes the instance under env.
func (i Instance) Run(env *Env) Result {
	return i.run(env)
}

func suiteName(prefix, className string) (string, bool) {
	suite := prefix + "/" + className
	limited := strings.Contains(suite, limitedMarker) && prefix != className
	return suite, limited
}
