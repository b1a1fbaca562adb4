package watch

import (
	"fmt"
	"reflect"
)

// chainLink binds one path segment to the live object graph. A link holds at
// most one active notification subscription; a nil (or nil-pointer) owner is
// the broken state, in which nothing is read or forwarded until an upstream
// change repairs the chain.
type chainLink struct {
	seg          segment
	beforeChange bool

	owner       any
	unsubscribe func()
	downstream  *chainLink
	changed     func()
}

// attach points the link at a new owner, subscribes to the owner's notify
// capability when present, and cascades the current member value into the
// downstream link. Owners without the capability degrade to read-once: the
// current value still flows downstream, later external writes are invisible.
// attach never emits; that stays with the observer.
func (l *chainLink) attach(owner any) {
	if isNilRef(owner) {
		l.owner = nil
		if l.downstream != nil {
			l.downstream.attach(nil)
		}
		return
	}
	l.owner = owner

	if l.beforeChange {
		if n, ok := owner.(ChangingNotifier); ok {
			l.unsubscribe = n.OnChanging(l.seg.name, l.notified)
		}
	} else {
		if n, ok := owner.(ChangedNotifier); ok {
			l.unsubscribe = n.OnChanged(l.seg.name, l.notified)
		}
	}

	if l.downstream != nil {
		v, _ := l.read()
		l.downstream.attach(v)
	}
}

// notified handles one member write on the current owner. The downstream
// subtree is fully detached before the new value is attached, so no
// notification sourced from the old subtree can interleave with the new one.
func (l *chainLink) notified(Change) {
	if l.downstream != nil {
		l.downstream.detach()
		v, _ := l.read()
		l.downstream.attach(v)
	}
	l.changed()
}

// detach drops the link's own subscription and owner, then recurses. Safe to
// call on an already detached link.
func (l *chainLink) detach() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
	l.owner = nil
	if l.downstream != nil {
		l.downstream.detach()
	}
}

func (l *chainLink) read() (any, bool) {
	return readMember(l.seg, l.owner)
}

// readMember evaluates one member on owner. A nil owner or a chain through a
// nil embedded pointer reads as absent, never as an error. An owner whose
// dynamic type does not declare the member means a decomposition result was
// applied to the wrong object graph, which is a programming error.
func readMember(seg segment, owner any) (any, bool) {
	if owner == nil {
		return nil, false
	}
	v := reflect.ValueOf(owner)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Type() != seg.owner {
		panic(fmt.Sprintf("watch: %s does not declare member %q (expected %s)", v.Type(), seg.name, seg.owner))
	}
	f, err := v.FieldByIndexErr(seg.index)
	if err != nil {
		return nil, false
	}
	return f.Interface(), true
}

func isNilRef(owner any) bool {
	if owner == nil {
		return true
	}
	v := reflect.ValueOf(owner)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
