package adapter

import (
	"fmt"
	"reflect"
	"strings"
)

// setField assigns value to the field at path below root, allocating
// nil option structs along the way. Pointer fields receive a pointer to a
// converted copy of value.
func setField(root reflect.Value, path string, value any) error {
	segments := strings.Split(path, ".")
	v := root

	for i, seg := range segments {
		if v.Kind() != reflect.Struct {
			return fmt.Errorf("%s: %s is not a struct", path, strings.Join(segments[:i], "."))
		}
		f := v.FieldByName(seg)
		if !f.IsValid() || !f.CanSet() {
			return fmt.Errorf("%s: no settable field %s", path, seg)
		}

		if i == len(segments)-1 {
			return assign(f, value)
		}

		switch f.Kind() {
		case reflect.Ptr:
			if f.IsNil() {
				f.Set(reflect.New(f.Type().Elem()))
			}
			v = f.Elem()
		case reflect.Struct:
			v = f
		default:
			return fmt.Errorf("%s: %s is not a struct", path, seg)
		}
	}

	return nil
}

func assign(f reflect.Value, value any) error {
	if value == nil {
		return fmt.Errorf("nil value")
	}
	rv := reflect.ValueOf(value)

	if f.Kind() == reflect.Ptr && rv.Type() != f.Type() {
		cv, err := convert(rv, f.Type().Elem())
		if err != nil {
			return err
		}
		p := reflect.New(f.Type().Elem())
		p.Elem().Set(cv)
		f.Set(p)
		return nil
	}

	cv, err := convert(rv, f.Type())
	if err != nil {
		return err
	}
	f.Set(cv)
	return nil
}

// convert accepts assignable values, same-kind conversions (plain strings
// into enum string types, int into int32) and element-wise slice
// conversions of either.
func convert(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	if rv.Type().AssignableTo(t) {
		if rv.Kind() == reflect.Slice && !rv.IsNil() {
			return copySlice(rv), nil
		}
		return rv, nil
	}

	if rv.Kind() == reflect.Slice && t.Kind() == reflect.Slice {
		out := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := convert(rv.Index(i), t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	}

	if compatibleKinds(rv.Kind(), t.Kind()) && rv.Type().ConvertibleTo(t) {
		cv := rv.Convert(t)
		if isNumeric(t.Kind()) && !sameNumber(rv, cv) {
			return reflect.Value{}, fmt.Errorf("value %v cannot be represented as %s", rv.Interface(), t)
		}
		return cv, nil
	}

	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", rv.Type(), t)
}

// copySlice returns a new slice of the same type holding rv's elements.
func copySlice(rv reflect.Value) reflect.Value {
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out
}

func compatibleKinds(from, to reflect.Kind) bool {
	if from == to {
		return true
	}
	return isNumeric(from) && isNumeric(to)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// sameNumber reports whether a numeric conversion preserved the value.
func sameNumber(from, to reflect.Value) bool {
	back := to.Convert(from.Type())
	return back.Interface() == from.Interface()
}

// selectField returns the value at path below v, or nil when a pointer on
// the way is nil.
func selectField(v any, path string) (any, error) {
	rv := reflect.ValueOf(v)
	for _, seg := range strings.Split(path, ".") {
		for rv.Kind() == reflect.Ptr {
			if rv.IsNil() {
				return nil, nil
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%s: cannot select %s from %s", path, seg, rv.Type())
		}
		rv = rv.FieldByName(seg)
		if !rv.IsValid() {
			return nil, fmt.Errorf("%s: no field %s", path, seg)
		}
	}
	return rv.Interface(), nil
}

// stringField returns the string or *string at path, or "".
func stringField(v any, path string) string {
	value, err := selectField(v, path)
	if err != nil || value == nil {
		return ""
	}
	switch s := value.(type) {
	case string:
		return s
	case *string:
		if s != nil {
			return *s
		}
	}
	return ""
}

// fieldType resolves path against t without needing a value.
func fieldType(t reflect.Type, path string) (reflect.Type, error) {
	for _, seg := range strings.Split(path, ".") {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%s: %s is not a struct", path, t)
		}
		f, ok := t.FieldByName(seg)
		if !ok || !f.IsExported() {
			return nil, fmt.Errorf("%s: no field %s on %s", path, seg, t)
		}
		t = f.Type
	}
	return t, nil
}

// itemCount returns the length of a slice payload, or 1 for a non-nil
// scalar.
func itemCount(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		return rv.Len()
	}
	return 1
}

// appendItems concatenates two slices of the same type. acc may be nil.
func appendItems(acc, items any) any {
	if items == nil {
		return acc
	}
	if acc == nil {
		return items
	}
	return reflect.AppendSlice(reflect.ValueOf(acc), reflect.ValueOf(items)).Interface()
}
