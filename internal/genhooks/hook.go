// Package genhooks generates the hook registration lists and dispatch
// functions for the anki package, and splices them into the generated
// region of its source file.
//
// To add a new hook:
// - add a declaration to BuiltinHooks
// - run 'go run . generate'
// - commit the changes to this package and the regenerated hooks file
package genhooks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedSignature reports a callback-argument segment that could
// not be split into a name and a type.
var ErrMalformedSignature = errors.New("malformed callback signature")

// Hook declares a single hook or filter. A declaration with a return
// type is a filter: each callback receives the current value of the
// first argument and its result replaces it for the next callback. A
// declaration without one is a plain hook, run for side effects only.
type Hook struct {
	// Name of the hook. "_hook" or "_filter" is appended
	// automatically to form the generated identifiers.
	Name string
	// CbArgs is the typed argument list passed to the callback,
	// eg "kind: string, val: int". May be empty.
	CbArgs string
	// ReturnType of the callback. If set, the hook is a filter.
	ReturnType string
	// LegacyHook names an old-style hook to also fire, for add-ons
	// that have not migrated to the generated API.
	LegacyHook string
}

// Kind reports whether the declaration is a "hook" or a "filter".
func (h Hook) Kind() string {
	if h.ReturnType != "" {
		return "filter"
	}
	return "hook"
}

// FullName is the canonical snake_case identity of the declaration,
// eg "mod_schema_filter".
func (h Hook) FullName() string {
	return h.Name + "_" + h.Kind()
}

// ListName is the Go identifier of the registration list,
// eg "ModSchemaFilter".
func (h Hook) ListName() string {
	return goName(h.FullName())
}

// FuncName is the Go identifier of the dispatch function,
// eg "RunModSchemaFilter".
func (h Hook) FuncName() string {
	return "Run" + goName(h.FullName())
}

type arg struct {
	name string
	typ  string
}

// args splits CbArgs into its (name, type) pairs. Empty segments are
// skipped; type expressions are opaque and re-emitted verbatim.
func (h Hook) args() ([]arg, error) {
	var out []arg
	for _, seg := range strings.Split(h.CbArgs, ",") {
		if seg == "" {
			continue
		}
		name, typ, ok := strings.Cut(seg, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q in hook %q", ErrMalformedSignature, seg, h.Name)
		}
		out = append(out, arg{name: strings.TrimSpace(name), typ: strings.TrimSpace(typ)})
	}
	return out, nil
}

// ArgNames returns the callback argument names in declaration order.
func (h Hook) ArgNames() ([]string, error) {
	args, err := h.args()
	if err != nil {
		return nil, err
	}
	return names(args), nil
}

// ArgTypes returns the callback argument types in declaration order.
func (h Hook) ArgTypes() ([]string, error) {
	args, err := h.args()
	if err != nil {
		return nil, err
	}
	types := make([]string, len(args))
	for i, a := range args {
		types[i] = a.typ
	}
	return types, nil
}

// CallableType is the element type of the registration list,
// eg "func(*Card)" or "func(bool) bool".
func (h Hook) CallableType() (string, error) {
	types, err := h.ArgTypes()
	if err != nil {
		return "", err
	}
	sig := "func(" + strings.Join(types, ", ") + ")"
	if h.ReturnType != "" {
		sig += " " + h.ReturnType
	}
	return sig, nil
}

// ListCode emits the registration list declaration.
func (h Hook) ListCode() (string, error) {
	sig, err := h.CallableType()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("var %s []%s\n", h.ListName(), sig), nil
}

// FireCode emits the dispatch function for the declaration.
func (h Hook) FireCode() (string, error) {
	if h.ReturnType != "" {
		return h.filterFireCode()
	}
	return h.hookFireCode()
}

// hookFireCode emits the fire-and-forget variant. Callbacks run in
// registration order; a callback that panics is evicted from the list
// before the panic continues, and the legacy hook only fires when the
// whole loop completed.
func (h Hook) hookFireCode() (string, error) {
	args, err := h.args()
	if err != nil {
		return "", err
	}
	list := h.ListName()
	var b strings.Builder
	fmt.Fprintf(&b, "func %s(%s) {\n", h.FuncName(), params(args))
	fmt.Fprintf(&b, "\tfor i, fn := range %s {\n", list)
	fmt.Fprintf(&b, "\t\tguard(&%s, i, func() { fn(%s) })\n", list, strings.Join(names(args), ", "))
	b.WriteString("\t}\n")
	if h.LegacyHook != "" {
		fmt.Fprintf(&b, "\trunLegacyHook(%s)\n", legacyArgs(h.LegacyHook, args))
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// filterFireCode emits the value-threading variant: each callback's
// return value replaces the first argument for the next round, and the
// final value is returned. The legacy filter's result is discarded,
// matching the long-standing behavior add-ons were written against.
func (h Hook) filterFireCode() (string, error) {
	args, err := h.args()
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", fmt.Errorf("filter %q must take at least one argument", h.Name)
	}
	list := h.ListName()
	argNames := names(args)
	var b strings.Builder
	fmt.Fprintf(&b, "func %s(%s) %s {\n", h.FuncName(), params(args), h.ReturnType)
	fmt.Fprintf(&b, "\tfor i, fn := range %s {\n", list)
	fmt.Fprintf(&b, "\t\tguard(&%s, i, func() { %s = fn(%s) })\n", list, argNames[0], strings.Join(argNames, ", "))
	b.WriteString("\t}\n")
	if h.LegacyHook != "" {
		fmt.Fprintf(&b, "\trunLegacyFilter(%s)\n", legacyArgs(h.LegacyHook, args))
	}
	fmt.Fprintf(&b, "\treturn %s\n", argNames[0])
	b.WriteString("}\n")
	return b.String(), nil
}

func params(args []arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.name + " " + a.typ
	}
	return strings.Join(parts, ", ")
}

func names(args []arg) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.name
	}
	return out
}

func legacyArgs(legacyName string, args []arg) string {
	parts := append([]string{strconv.Quote(legacyName)}, names(args)...)
	return strings.Join(parts, ", ")
}

// goName converts a snake_case identifier to an exported Go one.
func goName(snake string) string {
	var b strings.Builder
	for _, part := range strings.Split(snake, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
