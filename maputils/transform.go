package maputils

type ValueTransformer[K comparable, V any] func(K, V) V

// Transform transforms a map by applying a value transformer callback to each map key value pair.
// The input map is left untouched.
func Transform[K comparable, V any](m map[K]V, vt ValueTransformer[K, V]) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = vt(k, v)
	}
	return result
}
