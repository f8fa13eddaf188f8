// Package anki holds the core library types and the hook registry
// that add-ons extend.
//
// Hooks are run for side effects only; filters thread a value, with
// each registered callback receiving the current value of the first
// argument and its return value replacing it for the next callback.
// Register a callback by appending to its list, eg
//
//	anki.LeechHook = append(anki.LeechHook, onLeech)
//
// A callback that panics is evicted from its list before the panic
// continues to the caller.
//
// The code between the @@AUTOGEN@@ markers is generated by genhooks.
// Do not edit it by hand; edit the declarations in
// internal/genhooks/hooklist.go and run 'go run . generate'.
package anki

// guard invokes call and, if it panics, evicts the callback at index
// i from list before re-panicking.
func guard[T any](list *[]T, i int, call func()) {
	defer func() {
		if v := recover(); v != nil {
			*list = removeAt(*list, i)
			panic(v)
		}
	}()
	call()
}

// removeAt copies rather than shifting in place, so slices snapshotted
// by a dispatch loop are unaffected.
func removeAt[T any](list []T, i int) []T {
	return append(list[:i:i], list[i+1:]...)
}

// @@AUTOGEN@@

var LeechHook []func(*Card)
var ModSchemaFilter []func(bool) bool
var OdueInvalidHook []func()
var SyncStageHook []func(string)

func RunLeechHook(card *Card) {
	for i, fn := range LeechHook {
		guard(&LeechHook, i, func() { fn(card) })
	}
	runLegacyHook("leech", card)
}

func RunModSchemaFilter(proceed bool) bool {
	for i, fn := range ModSchemaFilter {
		guard(&ModSchemaFilter, i, func() { proceed = fn(proceed) })
	}
	runLegacyFilter("modSchema", proceed)
	return proceed
}

func RunOdueInvalidHook() {
	for i, fn := range OdueInvalidHook {
		guard(&OdueInvalidHook, i, func() { fn() })
	}
}

func RunSyncStageHook(stage string) {
	for i, fn := range SyncStageHook {
		guard(&SyncStageHook, i, func() { fn(stage) })
	}
	runLegacyHook("sync", stage)
}
// @@AUTOGEN@@
