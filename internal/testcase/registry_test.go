package testcase

import (
	"strings"
	"testing"

	"github.com/AndreyAkinshin/gpubench/internal/enum"
	"github.com/AndreyAkinshin/gpubench/internal/errors"
	"github.com/AndreyAkinshin/gpubench/internal/stats"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(New("Zeta", "", newFakeArgs))
	r.Register(New("Alpha", "", newFakeArgs))

	if got := strings.Join(r.Names(), ","); got != "Alpha,Zeta" {
		t.Errorf("Names() = %q, want %q", got, "Alpha,Zeta")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
	if c, ok := r.Lookup("Zeta"); !ok || c.Name() != "Zeta" {
		t.Errorf("Lookup(Zeta) = %v, %v", c, ok)
	}
	if _, ok := r.Lookup("Missing"); ok {
		t.Error("Lookup(Missing) found a test case")
	}

	err := errors.Catch(func() { r.Register(New("Alpha", "", newFakeArgs)) })
	if _, ok := err.(*errors.FatalError); !ok {
		t.Errorf("duplicate Register() = %v, want *FatalError", err)
	}
}

func failingBenchmark(name string) *Benchmark[*fakeArgs] {
	return New(name, "", newFakeArgs).
		Implement(enum.ApiL0, func(a *fakeArgs, sink stats.Sink) Result { return VerificationFail }).
		Instantiate(name, Combine(
			Apis[*fakeArgs](enum.ApiL0),
			Values(func(a *fakeArgs, v int64) { a.Size.Set(v) }, 1),
			Values(func(a *fakeArgs, v bool) { a.InOrder.Set(v) }, true),
		))
}

func TestRegistry_RunAll(t *testing.T) {
	env := newTestEnv(t, "--iterations=2")
	pushes := 0
	r := NewRegistry()
	r.Register(fakeBenchmark(&pushes).Instantiate("Fake", Combine(
		Apis[*fakeArgs](enum.ApiOpenCL, enum.ApiL0),
		Values(func(a *fakeArgs, v int64) { a.Size.Set(v) }, 8),
		Values(func(a *fakeArgs, v bool) { a.InOrder.Set(v) }, true),
	)))
	r.Register(failingBenchmark("Broken"))

	failures := r.RunAll(env.Env, ParseInstanceFilter(""))

	if len(failures) != 1 || failures[0].Name != "Broken/BrokenTest.Test/0" || failures[0].Result != VerificationFail {
		t.Errorf("RunAll() failures = %+v", failures)
	}
	if pushes != 2 {
		t.Errorf("pushes = %d, want 2", pushes)
	}
	out := env.stdout.String()
	if !strings.HasPrefix(out, "Running 2 iterations of each benchmark\n\n") {
		t.Errorf("output does not start with the run header: %q", out)
	}
	if !strings.Contains(out, "VERIF_FAIL") {
		t.Errorf("output = %q, want VERIF_FAIL status line", out)
	}
	if !strings.Contains(out, "[  FAILED  ] Broken/BrokenTest.Test/0\nVERIF_FAIL\n") {
		t.Errorf("output = %q, want failure summary", out)
	}
	if strings.Contains(out, "NO_IMPLEMENT") {
		t.Errorf("all-tests mode printed NO_IMPLEMENT: %q", out)
	}
	if env.Registry != r {
		t.Error("RunAll() did not bind the registry to the environment")
	}
}

func TestRegistry_RunAllFilter(t *testing.T) {
	env := newTestEnv(t, "--iterations=1", "--noHeaders", "--noColumnNames")
	pushes := 0
	r := NewRegistry()
	r.Register(fakeBenchmark(&pushes).Instantiate("Fake", Combine(
		Apis[*fakeArgs](enum.ApiL0),
		Values(func(a *fakeArgs, v int64) { a.Size.Set(v) }, 8),
		Values(func(a *fakeArgs, v bool) { a.InOrder.Set(v) }, true),
	)))
	r.Register(failingBenchmark("Broken"))

	failures := r.RunAll(env.Env, ParseInstanceFilter("*Fake*"))

	if len(failures) != 0 {
		t.Errorf("RunAll() failures = %+v, want none", failures)
	}
	if pushes != 1 {
		t.Errorf("pushes = %d, want 1", pushes)
	}
	if strings.Contains(env.stdout.String(), "Running") || strings.Contains(env.stdout.String(), "TestCase") {
		t.Errorf("output = %q, want no headers", env.stdout.String())
	}
}

func TestRegistry_DumpErrorsImmediately(t *testing.T) {
	env := newTestEnv(t, "--iterations=1", "--noHeaders", "--noColumnNames", "--dumpErrorsImmediately=1")
	r := NewRegistry()
	r.Register(failingBenchmark("Broken"))

	failures := r.RunAll(env.Env, ParseInstanceFilter(""))

	if len(failures) != 1 {
		t.Fatalf("RunAll() failures = %+v, want one", failures)
	}
	if got := strings.Count(env.stdout.String(), "[  FAILED  ]"); got != 1 {
		t.Errorf("failure summary printed %d times, want 1", got)
	}
}

func TestEnv_WarnUnregistered(t *testing.T) {
	env := newTestEnv(t, "--iterations=1")
	env.Registry = NewRegistry()
	pushes := 0
	b := fakeBenchmark(&pushes)

	b.run(env.Env, validFakeArgs(enum.ApiL0), group{})
	b.run(env.Env, validFakeArgs(enum.ApiL0), group{})

	if got := strings.Count(env.stderr.String(), "is not added to the test map"); got != 1 {
		t.Errorf("unregistered warning printed %d times, want 1", got)
	}
}
