package watch

import (
	"fmt"
	"reflect"
)

type config struct {
	distinct     bool
	skipInitial  bool
	beforeChange bool
}

// Option configures a subscription.
type Option func(*config)

// Distinct suppresses consecutive emissions whose realized leaf values are
// equal. Transitions between broken and evaluable chains always emit.
func Distinct() Option { return func(c *config) { c.distinct = true } }

// SkipInitial drops the synchronous emission of the current leaf state that
// otherwise happens at subscribe time.
func SkipInitial() Option { return func(c *config) { c.skipInitial = true } }

// BeforeChange subscribes the leaf owner's pre-write hook instead of the
// post-write one, so records reflect the value about to be replaced.
// Intermediate links keep following post-write notifications.
func BeforeChange() Option { return func(c *config) { c.beforeChange = true } }

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// chainObserver owns the link chain for one path expression and turns
// leaf-reaching link events into Record emissions. Each subscription gets
// its own chain; nothing is shared between subscriptions to the same
// expression except the decomposed segments.
type chainObserver struct {
	cfg  config
	head *chainLink
	leaf *chainLink
	fn   func(Record)

	emitted bool
	last    any
	lastOK  bool
	stopped bool
}

func newChainObserver(root any, path string, fn func(Record), cfg config) (*chainObserver, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrBadPath)
	}
	segs, err := parsePath(reflect.TypeOf(root), path)
	if err != nil {
		return nil, err
	}

	o := &chainObserver{cfg: cfg, fn: fn}
	var prev *chainLink
	for i, seg := range segs {
		// intermediate links always follow the post-write hook so the chain
		// tracks the live graph; only the leaf honors beforeChange
		leaf := i == len(segs)-1
		l := &chainLink{seg: seg, beforeChange: cfg.beforeChange && leaf, changed: o.leafEvent}
		if prev == nil {
			o.head = l
		} else {
			prev.downstream = l
		}
		prev = l
	}
	o.leaf = prev
	o.head.attach(root)

	if !cfg.skipInitial {
		o.emit()
	}
	return o, nil
}

// leafEvent fires for a write at any depth: shallower links have already
// rebuilt their subtree by the time this runs, so the leaf state is current.
func (o *chainObserver) leafEvent() {
	if o.stopped {
		return
	}
	o.emit()
}

func (o *chainObserver) emit() {
	rec := o.record()
	if o.cfg.distinct {
		v, ok := rec.Value()
		if o.emitted && ok == o.lastOK && (!ok || equalValues(v, o.last)) {
			return
		}
		o.last, o.lastOK = v, ok
	}
	o.emitted = true
	o.fn(rec)
}

// record captures the leaf owner at emission time; the value thunk stays
// lazy but pinned, so realizing it later cannot observe a newer owner.
func (o *chainObserver) record() Record {
	seg := o.leaf.seg
	owner := o.leaf.owner
	return Record{
		Sender: owner,
		Member: seg.name,
		value: func() (any, bool) {
			return readMember(seg, owner)
		},
	}
}

// stop detaches the whole chain synchronously. Idempotent.
func (o *chainObserver) stop() {
	if o.stopped {
		return
	}
	o.stopped = true
	o.head.detach()
}

// equalValues is the distinct comparison over engine-level values: `==` when
// the dynamic type allows it, deep equality otherwise.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta := reflect.TypeOf(a)
	if ta == reflect.TypeOf(b) && ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
