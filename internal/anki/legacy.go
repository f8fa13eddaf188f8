package anki

import "reflect"

// LegacyDispatcher receives the old-style string-keyed calls that
// generated dispatch functions still fire for add-ons that have not
// migrated to the registration lists.
type LegacyDispatcher interface {
	// RunHook runs every callback registered on the named hook.
	RunHook(name string, args ...any)
	// RunFilter threads val through every callback registered on the
	// named filter and returns the final value.
	RunFilter(name string, val any, args ...any) any
}

var (
	defaultLegacy                  = newLegacyRegistry()
	legacy        LegacyDispatcher = defaultLegacy
)

// SetLegacyDispatcher replaces the target of legacy bridging calls and
// returns the previous one.
func SetLegacyDispatcher(d LegacyDispatcher) LegacyDispatcher {
	prev := legacy
	legacy = d
	return prev
}

func runLegacyHook(name string, args ...any) {
	legacy.RunHook(name, args...)
}

func runLegacyFilter(name string, val any, args ...any) any {
	return legacy.RunFilter(name, val, args...)
}

// AddHook registers fn on the old-style hook name.
func AddHook(name string, fn func(args ...any)) {
	defaultLegacy.hooks[name] = append(defaultLegacy.hooks[name], fn)
}

// RemHook removes a previously registered fn from the old-style hook.
func RemHook(name string, fn func(args ...any)) {
	ptr := reflect.ValueOf(fn).Pointer()
	for i, f := range defaultLegacy.hooks[name] {
		if reflect.ValueOf(f).Pointer() == ptr {
			defaultLegacy.hooks[name] = removeAt(defaultLegacy.hooks[name], i)
			return
		}
	}
}

// AddFilter registers fn on the old-style filter name.
func AddFilter(name string, fn func(val any, args ...any) any) {
	defaultLegacy.filters[name] = append(defaultLegacy.filters[name], fn)
}

// RemFilter removes a previously registered fn from the old-style
// filter.
func RemFilter(name string, fn func(val any, args ...any) any) {
	ptr := reflect.ValueOf(fn).Pointer()
	for i, f := range defaultLegacy.filters[name] {
		if reflect.ValueOf(f).Pointer() == ptr {
			defaultLegacy.filters[name] = removeAt(defaultLegacy.filters[name], i)
			return
		}
	}
}

// legacyRegistry is the built-in dispatcher. Like the registration
// lists, it assumes confinement to a single goroutine.
type legacyRegistry struct {
	hooks   map[string][]func(args ...any)
	filters map[string][]func(val any, args ...any) any
}

func newLegacyRegistry() *legacyRegistry {
	return &legacyRegistry{
		hooks:   make(map[string][]func(args ...any)),
		filters: make(map[string][]func(val any, args ...any) any),
	}
}

func (r *legacyRegistry) RunHook(name string, args ...any) {
	for i, fn := range r.hooks[name] {
		func() {
			defer func() {
				if v := recover(); v != nil {
					r.hooks[name] = removeAt(r.hooks[name], i)
					panic(v)
				}
			}()
			fn(args...)
		}()
	}
}

func (r *legacyRegistry) RunFilter(name string, val any, args ...any) any {
	for i, fn := range r.filters[name] {
		func() {
			defer func() {
				if v := recover(); v != nil {
					r.filters[name] = removeAt(r.filters[name], i)
					panic(v)
				}
			}()
			val = fn(val, args...)
		}()
	}
	return val
}
