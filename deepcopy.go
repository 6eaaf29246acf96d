package fixturekit

import "reflect"

// Clone returns a structural copy of v. Slices, arrays and maps are rebuilt
// recursively so that mutating the copy never shows through the original.
// Everything else, including pointers, structs, functions, channels and
// errors, is returned unchanged: those values are treated as atomic and keep
// their identity. nil passes through as nil, and so do nil containers.
//
// Map keys are carried over as-is; only element and entry values are cloned.
func Clone(v any) any {
	// Common container types skip the reflect path.
	switch t := v.(type) {
	case nil:
		return nil
	case Object:
		if t == nil {
			return t
		}
		out := make(Object, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return cloneContainer(rv).Interface()
	default:
		return v
	}
}

func cloneContainer(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneElement(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneElement(rv.Index(i)))
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneElement(iter.Value()))
		}
		return out
	default:
		return rv
	}
}

// cloneElement copies one container element. Interface elements carry
// arbitrary dynamic types, so they are routed back through Clone; concrete
// elements only need the container rules applied to their own kind.
func cloneElement(ev reflect.Value) reflect.Value {
	if ev.Kind() == reflect.Interface {
		if ev.IsNil() {
			return ev
		}
		cloned := Clone(ev.Interface())
		if cloned == nil {
			return reflect.Zero(ev.Type())
		}
		out := reflect.New(ev.Type()).Elem()
		out.Set(reflect.ValueOf(cloned))
		return out
	}
	return cloneContainer(ev)
}
