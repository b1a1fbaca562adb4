// Package watch observes chains of member accesses on live object graphs.
//
// A subscription names a root object and a dotted member path ("Address.City").
// The engine subscribes to the notify capability of every object along the
// chain, re-subscribes deeper links whenever an intermediate object is
// replaced, and delivers one Record per leaf-reaching change, synchronously,
// on whichever goroutine performed the write.
package watch

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeMismatch reports a leaf member whose declared type does not match
// the requested value type.
var ErrTypeMismatch = errors.New("watch: leaf type mismatch")

// Records observes one member path on root, invoking fn with a Record for
// the current state (unless SkipInitial) and for every subsequent change.
// The returned stop func detaches the whole chain synchronously and is safe
// to call more than once.
func Records(root any, path string, fn func(Record), opts ...Option) (stop func(), err error) {
	o, err := newChainObserver(root, path, fn, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	return o.stop, nil
}

// Values observes one member path, delivering realized leaf values. The leaf
// member's declared type must be assignable to T; while the chain is broken
// fn receives T's zero value.
func Values[T any](root any, path string, fn func(T), opts ...Option) (stop func(), err error) {
	if err := checkLeafType[T](root, path); err != nil {
		return nil, err
	}
	return Records(root, path, func(rec Record) {
		fn(realize[T](rec))
	}, opts...)
}

// All observes several member paths on the same root, combine-latest style:
// fn receives the latest Record per path once every path has produced one,
// then again on every upstream change.
func All(root any, paths []string, fn func([]Record), opts ...Option) (stop func(), err error) {
	c, err := newCombineLatest(root, paths, fn, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	return c.stop, nil
}

// Select is All with a selector applied to each combined emission.
func Select[O any](root any, paths []string, sel func([]Record) O, fn func(O), opts ...Option) (stop func(), err error) {
	return All(root, paths, func(recs []Record) {
		fn(sel(recs))
	}, opts...)
}

func realize[T any](rec Record) T {
	v, ok := rec.Value()
	if !ok || v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

func checkLeafType[T any](root any, path string) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrBadPath)
	}
	segs, err := parsePath(reflect.TypeOf(root), path)
	if err != nil {
		return err
	}
	leaf := segs[len(segs)-1]
	want := reflect.TypeOf((*T)(nil)).Elem()
	if !leaf.typ.AssignableTo(want) {
		return fmt.Errorf("%w: member %q is %s, not %s", ErrTypeMismatch, leaf.name, leaf.typ, want)
	}
	return nil
}
