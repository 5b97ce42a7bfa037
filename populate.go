package goconv

import (
	"maps"
	"slices"
)

// Initializer produces the value of one field of an object populated by
// PopulateObject. Init receives a copy of the fields populated so far.
type Initializer struct {
	Name string
	Init func(state map[string]any) Result[any]
}

// PopulateOptions configures PopulateObject.
type PopulateOptions struct {
	// Order lists fields evaluated first, in this order. Remaining fields
	// follow in declaration order.
	Order []string
	// SuppressUndefined keeps undefined values out of the produced object.
	SuppressUndefined bool
	// SuppressUndefinedFields does the same for the named fields only.
	SuppressUndefinedFields []string
}

// PopulateObject evaluates every initializer and collects the produced values
// into an object. Later initializers observe the values of earlier ones.
// Every initializer runs even after a failure; the result aggregates all
// failure messages.
func PopulateObject(initializers []Initializer, opts ...PopulateOptions) Result[map[string]any] {
	var opt PopulateOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	byName := make(map[string]func(map[string]any) Result[any], len(initializers))
	names := make([]string, 0, len(initializers)+len(opt.Order))
	seen := make(map[string]struct{}, cap(names))
	for _, n := range opt.Order {
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	for _, in := range initializers {
		if _, dup := byName[in.Name]; !dup {
			byName[in.Name] = in.Init
		}
		if _, dup := seen[in.Name]; !dup {
			seen[in.Name] = struct{}{}
			names = append(names, in.Name)
		}
	}

	state := make(map[string]any, len(byName))
	var errs []string
	for _, name := range names {
		init := byName[name]
		if init == nil {
			errs = append(errs, Text(CodeNoInitializer, map[string]string{"field": name}))
			continue
		}
		r := init(maps.Clone(state))
		if !r.ok {
			errs = append(errs, r.message)
			continue
		}
		if IsUndefined(r.value) && (opt.SuppressUndefined || slices.Contains(opt.SuppressUndefinedFields, name)) {
			continue
		}
		state[name] = r.value
	}
	if len(errs) > 0 {
		return Fail[map[string]any](JoinMessages(errs))
	}
	return Succeed(state)
}
