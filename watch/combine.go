package watch

import (
	"errors"
	"fmt"
)

// ErrArity reports an unsupported number of combined paths.
var ErrArity = errors.New("watch: unsupported arity")

// maxArity is the width of the seen bitmask.
const maxArity = 64

// combineLatest joins k independently subscribed chains into one stream of
// record tuples: one latest-record slot per input, nothing emitted until
// every input has produced a first record, then one emission per upstream
// event using the other slots' latest records. Emissions are never collapsed
// or batched.
type combineLatest struct {
	slots   []Record
	seen    uint64
	pending int
	fn      func([]Record)
	stops   []func()
	stopped bool
}

func newCombineLatest(root any, paths []string, fn func([]Record), cfg config) (*combineLatest, error) {
	k := len(paths)
	if k == 0 || k > maxArity {
		return nil, fmt.Errorf("%w: %d paths", ErrArity, k)
	}
	c := &combineLatest{
		slots:   make([]Record, k),
		pending: k,
		fn:      fn,
		stops:   make([]func(), 0, k),
	}
	for i, path := range paths {
		i := i
		o, err := newChainObserver(root, path, func(rec Record) {
			c.receive(i, rec)
		}, cfg)
		if err != nil {
			c.stop()
			return nil, err
		}
		c.stops = append(c.stops, o.stop)
	}
	return c, nil
}

func (c *combineLatest) receive(i int, rec Record) {
	c.slots[i] = rec
	if c.seen&(1<<uint(i)) == 0 {
		c.seen |= 1 << uint(i)
		c.pending--
	}
	if c.pending > 0 || c.stopped {
		return
	}
	// snapshot so a re-entrant write during fn cannot alias the slots
	out := make([]Record, len(c.slots))
	copy(out, c.slots)
	c.fn(out)
}

// stop disposes all underlying chains exactly once each. Idempotent.
func (c *combineLatest) stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	for _, stop := range c.stops {
		stop()
	}
}
