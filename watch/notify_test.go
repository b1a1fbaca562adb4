package watch_test

import (
	"testing"

	"github.com/delaneyj/watchparty/watch"
	"github.com/stretchr/testify/assert"
)

// handlers only see writes to the member they registered for
func TestEmitterFiltersByMember(t *testing.T) {
	a := &address{}

	cities, zips := 0, 0
	offCity := a.OnChanged("City", func(watch.Change) { cities++ })
	offZip := a.OnChanged("Zip", func(watch.Change) { zips++ })
	defer offCity()
	defer offZip()

	a.SetCity("x")
	a.SetCity("y")
	a.SetZip("1")

	assert.Equal(t, 2, cities)
	assert.Equal(t, 1, zips)
}

// the change carries the sender and member name
func TestEmitterChangePayload(t *testing.T) {
	a := &address{}

	var got watch.Change
	off := a.OnChanged("City", func(c watch.Change) { got = c })
	defer off()

	a.SetCity("x")
	assert.Same(t, a, got.Sender)
	assert.Equal(t, "City", got.Member)
}

// the pre-write hook fires while the old value is still readable
func TestEmitterChangingSeesOldValue(t *testing.T) {
	a := &address{City: "old"}

	var seen string
	off := a.OnChanging("City", func(watch.Change) { seen = a.City })
	defer off()

	a.SetCity("new")
	assert.Equal(t, "old", seen)
	assert.Equal(t, "new", a.City)
}

// unsubscribing twice is safe and listener counts stay accurate
func TestEmitterUnsubscribeIsIdempotent(t *testing.T) {
	a := &address{}

	off1 := a.OnChanged("City", func(watch.Change) {})
	off2 := a.OnChanging("City", func(watch.Change) {})
	assert.Equal(t, 2, a.ListenerCount())

	off1()
	off1()
	assert.Equal(t, 1, a.ListenerCount())
	off2()
	assert.Zero(t, a.ListenerCount())
}

// a handler may unsubscribe itself while the notification is being delivered
func TestEmitterReentrantUnsubscribe(t *testing.T) {
	a := &address{}

	calls := 0
	var off func()
	off = a.OnChanged("City", func(watch.Change) {
		calls++
		off()
	})

	a.SetCity("x")
	a.SetCity("y")
	assert.Equal(t, 1, calls)
	assert.Zero(t, a.ListenerCount())
}

// a handler may add another subscription mid-dispatch without affecting the
// current delivery
func TestEmitterReentrantSubscribe(t *testing.T) {
	a := &address{}

	late := 0
	off := a.OnChanged("City", func(watch.Change) {
		if late == 0 {
			a.OnChanged("City", func(watch.Change) { late++ })
		}
	})
	defer off()

	a.SetCity("x")
	assert.Zero(t, late, "new handler must not see the in-flight change")
	a.SetCity("y")
	assert.Equal(t, 1, late)
}
