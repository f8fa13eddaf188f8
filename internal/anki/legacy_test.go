package anki

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLegacyRegistryRunHook(t *testing.T) {
	t.Run("runs callbacks in registration order", func(t *testing.T) {
		r := newLegacyRegistry()
		var order []string
		r.hooks["x"] = append(r.hooks["x"],
			func(args ...any) { order = append(order, "first") },
			func(args ...any) { order = append(order, "second") },
		)

		r.RunHook("x", 1, "two")

		if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("passes arguments through", func(t *testing.T) {
		r := newLegacyRegistry()
		var got []any
		r.hooks["x"] = append(r.hooks["x"], func(args ...any) { got = args })

		r.RunHook("x", 1, "two")

		if diff := cmp.Diff([]any{1, "two"}, got); diff != "" {
			t.Errorf("args mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown name is a no-op", func(t *testing.T) {
		newLegacyRegistry().RunHook("nothing registered")
	})

	t.Run("evicts a failing callback and propagates", func(t *testing.T) {
		r := newLegacyRegistry()
		secondRan := false
		r.hooks["x"] = append(r.hooks["x"],
			func(args ...any) { panic("legacy boom") },
			func(args ...any) { secondRan = true },
		)

		func() {
			defer func() {
				if v := recover(); v != "legacy boom" {
					t.Errorf("recovered %v, want %q", v, "legacy boom")
				}
			}()
			r.RunHook("x")
			t.Error("RunHook did not propagate the panic")
		}()

		if secondRan {
			t.Error("second callback ran after the first failed")
		}
		if len(r.hooks["x"]) != 1 {
			t.Errorf("expected eviction, list has %d entries", len(r.hooks["x"]))
		}
	})
}

func TestLegacyRegistryRunFilter(t *testing.T) {
	t.Run("threads the value", func(t *testing.T) {
		r := newLegacyRegistry()
		r.filters["munge"] = append(r.filters["munge"],
			func(val any, args ...any) any { return val.(string) + "a" },
			func(val any, args ...any) any { return val.(string) + "b" },
		)

		got := r.RunFilter("munge", "x")

		if got != "xab" {
			t.Errorf("RunFilter() = %v, want %q", got, "xab")
		}
	})

	t.Run("no filters returns the input", func(t *testing.T) {
		if got := newLegacyRegistry().RunFilter("none", 42); got != 42 {
			t.Errorf("RunFilter() = %v, want 42", got)
		}
	})

	t.Run("evicts a failing filter and propagates", func(t *testing.T) {
		r := newLegacyRegistry()
		r.filters["munge"] = append(r.filters["munge"],
			func(val any, args ...any) any { panic("filter boom") },
		)

		func() {
			defer func() {
				if v := recover(); v != "filter boom" {
					t.Errorf("recovered %v, want %q", v, "filter boom")
				}
			}()
			r.RunFilter("munge", "x")
			t.Error("RunFilter did not propagate the panic")
		}()

		if len(r.filters["munge"]) != 0 {
			t.Errorf("expected eviction, list has %d entries", len(r.filters["munge"]))
		}
	})
}

func TestAddRemHook(t *testing.T) {
	t.Cleanup(func() { delete(defaultLegacy.hooks, "addrem") })

	var ran []string
	first := func(args ...any) { ran = append(ran, "first") }
	second := func(args ...any) { ran = append(ran, "second") }

	AddHook("addrem", first)
	AddHook("addrem", second)
	if len(defaultLegacy.hooks["addrem"]) != 2 {
		t.Fatalf("expected 2 registered callbacks, got %d", len(defaultLegacy.hooks["addrem"]))
	}

	RemHook("addrem", first)
	defaultLegacy.RunHook("addrem")

	if diff := cmp.Diff([]string{"second"}, ran); diff != "" {
		t.Errorf("RemHook removed the wrong callback (-want +got):\n%s", diff)
	}

	// Removing an unregistered callback is a no-op.
	RemHook("addrem", first)
	if len(defaultLegacy.hooks["addrem"]) != 1 {
		t.Errorf("expected 1 registered callback, got %d", len(defaultLegacy.hooks["addrem"]))
	}
}

func TestAddRemFilter(t *testing.T) {
	t.Cleanup(func() { delete(defaultLegacy.filters, "addrem") })

	upper := func(val any, args ...any) any { return val.(string) + "!" }
	AddFilter("addrem", upper)

	if got := defaultLegacy.RunFilter("addrem", "hi"); got != "hi!" {
		t.Errorf("RunFilter() = %v, want %q", got, "hi!")
	}

	RemFilter("addrem", upper)
	if len(defaultLegacy.filters["addrem"]) != 0 {
		t.Errorf("expected filter removed, %d remain", len(defaultLegacy.filters["addrem"]))
	}
}

func TestSetLegacyDispatcher(t *testing.T) {
	d := &recordingDispatcher{}
	prev := SetLegacyDispatcher(d)
	t.Cleanup(func() { SetLegacyDispatcher(prev) })

	runLegacyHook("x", 1)
	if len(d.HookCalls) != 1 {
		t.Fatalf("expected 1 call on the replacement dispatcher, got %d", len(d.HookCalls))
	}

	if got := SetLegacyDispatcher(prev); got != LegacyDispatcher(d) {
		t.Error("SetLegacyDispatcher did not return the previous dispatcher")
	}
	SetLegacyDispatcher(d)
}
