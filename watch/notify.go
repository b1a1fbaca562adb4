package watch

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Change describes one member write on a notifying object.
type Change struct {
	Sender any
	Member string
}

// ChangedNotifier is the post-write hook: implementors announce a member
// write after the new value is in place. The returned unsubscribe func must
// be safe to call more than once.
type ChangedNotifier interface {
	OnChanged(member string, fn func(Change)) (unsubscribe func())
}

// ChangingNotifier is the pre-write hook: implementors announce a member
// write while the old value is still readable.
type ChangingNotifier interface {
	OnChanging(member string, fn func(Change)) (unsubscribe func())
}

// Notifier is implemented by objects whose members may be written directly
// by callers (Set, bindings) that still want listeners told about it.
type Notifier interface {
	NotifyChanging(sender any, member string)
	NotifyChanged(sender any, member string)
}

type handlerEntry struct {
	fn func(Change)
}

// Emitter is an embeddable implementation of the notify capability. Model
// types embed it and call NotifyChanging/NotifyChanged from their setters:
//
//	type Address struct {
//		watch.Emitter
//		City string
//	}
//
//	func (a *Address) SetCity(v string) {
//		if a.City == v {
//			return
//		}
//		a.NotifyChanging(a, "City")
//		a.City = v
//		a.NotifyChanged(a, "City")
//	}
//
// All methods have pointer receivers, so only pointers to the embedding type
// carry the capability; value copies degrade to the read-once tier.
type Emitter struct {
	mu       sync.RWMutex
	changing map[string]mapset.Set[*handlerEntry]
	changed  map[string]mapset.Set[*handlerEntry]
}

func (e *Emitter) OnChanging(member string, fn func(Change)) (unsubscribe func()) {
	e.mu.Lock()
	if e.changing == nil {
		e.changing = map[string]mapset.Set[*handlerEntry]{}
	}
	set := memberSet(e.changing, member)
	e.mu.Unlock()
	return addHandler(set, fn)
}

func (e *Emitter) OnChanged(member string, fn func(Change)) (unsubscribe func()) {
	e.mu.Lock()
	if e.changed == nil {
		e.changed = map[string]mapset.Set[*handlerEntry]{}
	}
	set := memberSet(e.changed, member)
	e.mu.Unlock()
	return addHandler(set, fn)
}

// NotifyChanging announces that member is about to be written. sender should
// be the embedding object, not the Emitter itself.
func (e *Emitter) NotifyChanging(sender any, member string) {
	e.mu.RLock()
	set := e.changing[member]
	e.mu.RUnlock()
	dispatch(set, Change{Sender: sender, Member: member})
}

// NotifyChanged announces that member has been written.
func (e *Emitter) NotifyChanged(sender any, member string) {
	e.mu.RLock()
	set := e.changed[member]
	e.mu.RUnlock()
	dispatch(set, Change{Sender: sender, Member: member})
}

// ListenerCount reports how many handlers are registered across all members
// and both hooks.
func (e *Emitter) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	n := 0
	for _, set := range e.changing {
		n += set.Cardinality()
	}
	for _, set := range e.changed {
		n += set.Cardinality()
	}
	return n
}

func memberSet(m map[string]mapset.Set[*handlerEntry], member string) mapset.Set[*handlerEntry] {
	set, ok := m[member]
	if !ok {
		set = mapset.NewSet[*handlerEntry]()
		m[member] = set
	}
	return set
}

func addHandler(set mapset.Set[*handlerEntry], fn func(Change)) (unsubscribe func()) {
	h := &handlerEntry{fn: fn}
	set.Add(h)
	return func() {
		set.Remove(h)
	}
}

// dispatch snapshots the handler set before calling so handlers may
// subscribe or unsubscribe re-entrantly.
func dispatch(set mapset.Set[*handlerEntry], c Change) {
	if set == nil {
		return
	}
	for _, h := range set.ToSlice() {
		h.fn(c)
	}
}
