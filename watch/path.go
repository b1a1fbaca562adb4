package watch

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// ErrBadPath reports a path expression that is not a dotted chain of
// exported struct fields.
var ErrBadPath = errors.New("watch: bad path")

// segment is one member-access step of a decomposed path, produced once per
// (root type, expression) and shared by every subscription through the
// cache.
type segment struct {
	owner reflect.Type // struct type declaring the member
	name  string
	typ   reflect.Type // declared member type
	index []int
}

type pathKey struct {
	root reflect.Type
	sum  uint64
}

var pathCache = struct {
	sync.RWMutex
	m map[pathKey][]segment
}{m: map[pathKey][]segment{}}

// parsePath decomposes a dotted member path against root, caching the result
// per (root type, expression).
func parsePath(root reflect.Type, path string) ([]segment, error) {
	key := pathKey{root: root, sum: xxhash.Sum64String(path)}
	pathCache.RLock()
	segs, ok := pathCache.m[key]
	pathCache.RUnlock()
	if ok {
		return segs, nil
	}

	segs, err := decompose(root, path)
	if err != nil {
		return nil, err
	}
	pathCache.Lock()
	pathCache.m[key] = segs
	pathCache.Unlock()
	return segs, nil
}

// decompose walks the expression outermost member first, rejecting anything
// that is not a plain identifier chain so mistakes surface at subscribe
// time, not at the first change event.
func decompose(root reflect.Type, path string) ([]segment, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrBadPath)
	}
	names := strings.Split(path, ".")
	segs := make([]segment, 0, len(names))
	owner := root
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrBadPath, path)
		}
		if !isIdent(name) {
			return nil, fmt.Errorf("%w: %q is not a simple member access", ErrBadPath, name)
		}
		st := structType(owner)
		if st == nil {
			return nil, fmt.Errorf("%w: %s is not a struct, cannot access %q", ErrBadPath, owner, name)
		}
		f, ok := st.FieldByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no member %q", ErrBadPath, st, name)
		}
		if !f.IsExported() {
			return nil, fmt.Errorf("%w: member %q of %s is unexported", ErrBadPath, name, st)
		}
		segs = append(segs, segment{owner: st, name: name, typ: f.Type, index: f.Index})
		owner = f.Type
	}
	return segs, nil
}

func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}

func structType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

// Check validates a member path against root's dynamic type without
// subscribing.
func Check(root any, path string) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrBadPath)
	}
	_, err := parsePath(reflect.TypeOf(root), path)
	return err
}

// Set writes value through a member path on root, dereferencing intermediate
// pointers. The write is skipped when the new value already equals the
// current one. When the leaf's owner carries the notify capability its
// pre/post hooks are raised around the write, so observers of the same
// member see it. Returns an error for bad paths, broken chains,
// non-addressable targets and unassignable values.
func Set(root any, path string, value any) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrBadPath)
	}
	segs, err := parsePath(reflect.TypeOf(root), path)
	if err != nil {
		return err
	}

	v := reflect.ValueOf(root)
	for _, seg := range segs[:len(segs)-1] {
		v, err = member(v, seg)
		if err != nil {
			return err
		}
	}
	leaf := segs[len(segs)-1]
	owner, err := derefOwner(v, leaf)
	if err != nil {
		return err
	}
	field, err := owner.FieldByIndexErr(leaf.index)
	if err != nil {
		return fmt.Errorf("%w: %q is not reachable on %s", ErrBadPath, leaf.name, leaf.owner)
	}
	if !field.CanSet() {
		return fmt.Errorf("watch: member %q on %s is not settable, pass a pointer root", leaf.name, leaf.owner)
	}

	nv := reflect.ValueOf(value)
	if value == nil {
		nv = reflect.Zero(field.Type())
	} else if !nv.Type().AssignableTo(field.Type()) {
		return fmt.Errorf("%w: cannot assign %s to member %q (%s)", ErrTypeMismatch, nv.Type(), leaf.name, field.Type())
	}
	if equalValues(field.Interface(), value) {
		return nil
	}

	if owner.CanAddr() {
		if n, ok := owner.Addr().Interface().(Notifier); ok {
			sender := owner.Addr().Interface()
			n.NotifyChanging(sender, leaf.name)
			field.Set(nv)
			n.NotifyChanged(sender, leaf.name)
			return nil
		}
	}
	field.Set(nv)
	return nil
}

func member(v reflect.Value, seg segment) (reflect.Value, error) {
	owner, err := derefOwner(v, seg)
	if err != nil {
		return reflect.Value{}, err
	}
	f, err := owner.FieldByIndexErr(seg.index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("watch: chain broken at %q", seg.name)
	}
	return f, nil
}

func derefOwner(v reflect.Value, seg segment) (reflect.Value, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("watch: chain broken before %q", seg.name)
		}
		v = v.Elem()
	}
	if v.Type() != seg.owner {
		return reflect.Value{}, fmt.Errorf("%w: %s is not %s", ErrTypeMismatch, v.Type(), seg.owner)
	}
	return v, nil
}
