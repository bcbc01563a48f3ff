package tree

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/hierarchy/maybe"
)

// Record is the typed form of an input record for SetData.
// A slice of records is always well formed.
type Record[K comparable, V any] struct {
	ID     K
	Parent maybe.Maybe[K]
	Value  maybe.Maybe[V]
}

// Keys of loosely typed input records.
const (
	KeyID     = "id"
	KeyParent = "parent"
	KeyValue  = "value"
)

// isAbsent is true for the nil interface and for nil slices, maps and pointers.
func isAbsent(incoming any) bool {
	if incoming == nil {
		return true
	}
	rv := reflect.ValueOf(incoming)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		return rv.IsNil()
	}
	return false
}

// buildNodes converts incoming data into a sequence of nodes. Either all
// records convert or none do.
func buildNodes[K comparable, V any](incoming any) ([]*Node[K, V], error) {
	if recs, ok := incoming.([]Record[K, V]); ok {
		nodes := make([]*Node[K, V], len(recs))
		for i, r := range recs {
			node, err := nodeFromTyped(r)
			if err != nil {
				return nil, wrongFormat("record #%d: %s", i, err)
			}
			nodes[i] = node
		}
		return nodes, nil
	}
	rv := reflect.ValueOf(incoming)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, wrongFormat("incoming data is not a sequence, but %T", incoming)
	}
	nodes := make([]*Node[K, V], 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		node, err := nodeFromRecord[K, V](rv.Index(i).Interface())
		if err != nil {
			return nil, wrongFormat("record #%d: %s", i, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func nodeFromRecord[K comparable, V any](raw any) (*Node[K, V], error) {
	var lookup func(string) (any, bool)
	switch r := raw.(type) {
	case Record[K, V]:
		return nodeFromTyped(r)
	case *Record[K, V]:
		if r == nil {
			return nil, fmt.Errorf("record is nil")
		}
		return nodeFromTyped(*r)
	case map[string]any:
		lookup = func(key string) (any, bool) {
			v, ok := r[key]
			return v, ok
		}
	case map[any]any:
		lookup = func(key string) (any, bool) {
			v, ok := r[key]
			return v, ok
		}
	default:
		return nil, fmt.Errorf("record of type %T has no named fields", raw)
	}
	fields := [3]any{}
	for i, key := range [3]string{KeyID, KeyParent, KeyValue} {
		v, ok := lookup(key)
		if !ok {
			return nil, fmt.Errorf("field %q missing", key)
		}
		fields[i] = v
	}
	if fields[0] == nil {
		return nil, fmt.Errorf("field %q is null", KeyID)
	}
	id, ok := convert[K](fields[0])
	if !ok {
		return nil, fmt.Errorf("id %v (%T) is not a valid key", fields[0], fields[0])
	}
	if err := checkKey(id); err != nil {
		return nil, err
	}
	parent := maybe.Nothing[K]()
	if fields[1] != nil {
		p, ok := convert[K](fields[1])
		if !ok {
			return nil, fmt.Errorf("parent %v (%T) is not a valid key", fields[1], fields[1])
		}
		if err := checkKey(p); err != nil {
			return nil, err
		}
		parent = maybe.Just(p)
	}
	value := maybe.Nothing[V]()
	if fields[2] != nil {
		v, ok := convert[V](fields[2])
		if !ok {
			return nil, fmt.Errorf("value %v has unexpected type %T", fields[2], fields[2])
		}
		value = maybe.Just(v)
	}
	return NewNode(id, parent, value), nil
}

// nodeFromTyped checks the keys of a typed record, which may still hide
// non-comparable values if K is an interface type.
func nodeFromTyped[K comparable, V any](r Record[K, V]) (*Node[K, V], error) {
	if err := checkKey(r.ID); err != nil {
		return nil, err
	}
	if r.Parent != nil {
		if p, ok := r.Parent.Get(); ok {
			if err := checkKey(p); err != nil {
				return nil, err
			}
		}
	}
	return NewNode(r.ID, r.Parent, r.Value), nil
}

// checkKey rejects ids which would panic when compared, e.g. slices
// hidden in an interface-typed key.
func checkKey(k any) error {
	if k == nil {
		return nil
	}
	if !reflect.ValueOf(k).Comparable() {
		return fmt.Errorf("key of type %T is not comparable", k)
	}
	return nil
}

// convert asserts x to T. Numbers are converted between numeric types as
// long as no information is lost, as decoders tend to choose their own
// numeric types (JSON numbers decode to float64).
func convert[T any](x any) (T, bool) {
	if t, ok := x.(T); ok {
		return t, true
	}
	var zero T
	target := reflect.TypeOf((*T)(nil)).Elem()
	rv := reflect.ValueOf(x)
	if !isNumeric(target.Kind()) || !isNumeric(rv.Kind()) || !rv.CanConvert(target) {
		return zero, false
	}
	if isUnsigned(target.Kind()) && isNegative(rv) {
		return zero, false
	}
	c := rv.Convert(target)
	if c.Convert(rv.Type()).Interface() != rv.Interface() {
		return zero, false
	}
	return c.Interface().(T), true
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isNegative(rv reflect.Value) bool {
	switch {
	case rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Int64:
		return rv.Int() < 0
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return rv.Float() < 0
	}
	return false
}
