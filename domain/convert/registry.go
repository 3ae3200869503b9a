package convert

import (
	"slices"

	"coltype/domain/core"
)

// ConverterFunc attempts to parse a token into a typed Value. The boolean
// reports success; a false return is an ordinary parse failure, never an
// error condition. Converter functions must be pure and hold no state
// between calls. Panics are not parse failures and propagate to the caller.
type ConverterFunc func(token string) (Value, bool)

// Registry holds named converters in an explicit trial order. Earlier names
// win: ordered resolution stops at the first converter that accepts the
// token. A Registry must be treated as read-only while an inference pass is
// running; registration is not synchronized.
type Registry struct {
	converters map[string]ConverterFunc
	order      []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		converters: make(map[string]ConverterFunc),
	}
}

// NewDefaultRegistry creates a registry with the built-in converters in
// their standard precedence order: EmptyString, int, float, bool, percent,
// time, datetime, date, IntInterval, DateInterval.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range builtinConverters() {
		// Built-in names are known-valid, registration cannot fail here.
		_ = r.Register(c.name, c.fn)
	}
	return r
}

// Register appends the converter under name, or moves it to the end of the
// trial order when the name is already registered.
func (r *Registry) Register(name string, fn ConverterFunc) error {
	return r.register(name, fn, -1)
}

// RegisterAt inserts the converter at the given position in the trial order,
// removing any prior occurrence of the name first. A priority outside the
// current bounds appends instead.
func (r *Registry) RegisterAt(name string, fn ConverterFunc, priority int) error {
	if priority < 0 {
		priority = len(r.order)
	}
	return r.register(name, fn, priority)
}

func (r *Registry) register(name string, fn ConverterFunc, priority int) error {
	if name == "" {
		return core.ErrEmptyTypeName
	}
	if fn == nil {
		return core.ErrNilConverter
	}

	r.converters[name] = fn

	if i := slices.Index(r.order, name); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	if priority >= 0 && priority < len(r.order) {
		r.order = slices.Insert(r.order, priority, name)
	} else {
		r.order = append(r.order, name)
	}
	return nil
}

// Unregister removes the named converter; absent names are a no-op
func (r *Registry) Unregister(name string) {
	if i := slices.Index(r.order, name); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	delete(r.converters, name)
}

// Get returns the converter registered under name
func (r *Registry) Get(name string) (ConverterFunc, error) {
	fn, ok := r.converters[name]
	if !ok {
		return nil, core.NewUnknownConverterError(name)
	}
	return fn, nil
}

// Order returns a copy of the current trial order
func (r *Registry) Order() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered converters
func (r *Registry) Len() int {
	return len(r.order)
}

// Resolve tries each converter in trial order and returns the first match
// together with its type name. When nothing matches, the token passes
// through unchanged with an empty type name. A zero-length token
// short-circuits to the EmptyString sentinel without any converter trial.
func (r *Registry) Resolve(token string) (Value, string) {
	if len(token) == 0 {
		return NewEmptyValue(), string(KindEmptyString)
	}
	for _, name := range r.order {
		if v, ok := r.converters[name](token); ok {
			return v, name
		}
	}
	return NewRawValue(token), ""
}

// ResolveTyped applies only the named converter. An empty typeName passes
// the token through untyped; an unknown typeName is a configuration error.
// When the converter rejects the token the original passes through untyped —
// there is no fallback to the ordered search. A zero-length token
// short-circuits to the EmptyString sentinel here as well.
func (r *Registry) ResolveTyped(token, typeName string) (Value, string, error) {
	if len(token) == 0 {
		return NewEmptyValue(), string(KindEmptyString), nil
	}
	if typeName == "" {
		return NewRawValue(token), "", nil
	}
	fn, err := r.Get(typeName)
	if err != nil {
		return NewRawValue(token), "", err
	}
	if v, ok := fn(token); ok {
		return v, typeName, nil
	}
	return NewRawValue(token), "", nil
}
