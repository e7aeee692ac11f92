package counts

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
)

var ErrUnhashable = errors.New("unhashable value")

// CheckHashable fails with ErrUnhashable when v cannot be used as a map key.
// That is a slice, map or func stored in an interface, directly or inside a
// struct or array, or a float or complex NaN: a NaN key never matches itself,
// so it could be stored but never counted, found or removed.
func CheckHashable[T any](v T) error {
	if !Hashable(v) {
		return errors.Wrapf(ErrUnhashable, "%T", v)
	}
	return nil
}

func Hashable[T any](v T) bool {
	if !mayHideUnhashable(reflect.TypeFor[T]()) {
		return true
	}
	return hashable(reflect.ValueOf(&v).Elem())
}

func mayHideUnhashable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if mayHideUnhashable(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Array:
		return mayHideUnhashable(t.Elem())
	default:
		return false
	}
}

func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return hashable(v.Elem())
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return !math.IsNaN(real(c)) && !math.IsNaN(imag(c))
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}

func checkAll[T any](values []T) error {
	if len(values) == 0 || !mayHideUnhashable(reflect.TypeFor[T]()) {
		return nil
	}

	for _, v := range values {
		if !hashable(reflect.ValueOf(&v).Elem()) {
			return errors.Wrapf(ErrUnhashable, "%T", v)
		}
	}
	return nil
}
