// Package bind synchronizes member paths between live objects using the
// watch engine: every observed change of the source path is written through
// to the target path.
package bind

import (
	"github.com/delaneyj/watchparty/watch"
)

// OneWay pushes every observed value of src's srcPath into dst's dstPath,
// including the current value at bind time (pass watch.SkipInitial to start
// with the first change instead). Writes are skipped while either chain is
// broken. When the target's leaf owner carries the notify capability the
// write raises its hooks, so downstream watches keep flowing. The returned
// stop func tears the watch down synchronously and is idempotent.
func OneWay(src any, srcPath string, dst any, dstPath string, opts ...watch.Option) (stop func(), err error) {
	if err := watch.Check(dst, dstPath); err != nil {
		return nil, err
	}
	return watch.Records(src, srcPath, func(rec watch.Record) {
		v, ok := rec.Value()
		if !ok {
			return
		}
		// a broken or non-addressable target chain skips the write
		_ = watch.Set(dst, dstPath, v)
	}, opts...)
}

// TwoWay keeps a's aPath and b's bPath equal in both directions. At bind
// time a's current value wins. Distinct filtering is forced on both legs and
// watch.Set never re-writes an equal value, so a change cannot echo back and
// forth.
func TwoWay(a any, aPath string, b any, bPath string, opts ...watch.Option) (stop func(), err error) {
	forward := append(append([]watch.Option{}, opts...), watch.Distinct())
	backward := append(append([]watch.Option{}, forward...), watch.SkipInitial())

	stopAB, err := OneWay(a, aPath, b, bPath, forward...)
	if err != nil {
		return nil, err
	}
	stopBA, err := OneWay(b, bPath, a, aPath, backward...)
	if err != nil {
		stopAB()
		return nil, err
	}
	return func() {
		stopAB()
		stopBA()
	}, nil
}
