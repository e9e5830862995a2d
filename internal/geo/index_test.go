package geo

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	. "github.com/smartystreets/goconvey/convey"

	svcErr "github.com/oggyb/bloom/internal/errors"
	"github.com/oggyb/bloom/internal/logger"
)

var epoch = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func newTestIndex() (*Index, *clock.Mock) {
	mock := clock.NewMock()
	mock.Set(epoch)
	return NewIndex(WithClock(mock), WithLogger(logger.Nop())), mock
}

func TestUpdate(t *testing.T) {
	Convey("Given an empty index", t, func() {
		idx, mock := newTestIndex()

		Convey("Invalid coordinates are rejected", func() {
			for _, err := range []error{
				idx.Update(1, math.NaN(), 75.7),
				idx.Update(1, 91, 75.7),
				idx.Update(1, 31.2, math.Inf(1)),
				idx.Update(0, 31.2, 75.7),
			} {
				So(errors.Is(err, svcErr.ErrValidation), ShouldBeTrue)
			}
			So(idx.Len(), ShouldEqual, 0)
		})

		Convey("A first update places the user in exactly one cell", func() {
			So(idx.Update(1, 31.2540, 75.7060), ShouldBeNil)
			So(idx.Len(), ShouldEqual, 1)
			So(len(idx.cells), ShouldEqual, 1)
			So(idx.userCell[1], ShouldResemble, idx.cellFor(31.2540, 75.7060))
		})

		Convey("A move under the debounce distance only refreshes the timestamp", func() {
			So(idx.Update(1, 31.2540, 75.7060), ShouldBeNil)
			before := idx.userCell[1]

			mock.Add(5 * time.Second)
			// ~5.5m north
			So(idx.Update(1, 31.25405, 75.7060), ShouldBeNil)

			loc, ok := idx.Location(1)
			So(ok, ShouldBeTrue)
			So(loc.Lat, ShouldEqual, 31.2540)
			So(loc.UpdatedAt.Equal(epoch.Add(5*time.Second)), ShouldBeTrue)
			So(idx.userCell[1], ShouldResemble, before)
		})

		Convey("A significant move switches cells and drops the empty old cell", func() {
			So(idx.Update(1, 31.2540, 75.7060), ShouldBeNil)
			old := idx.userCell[1]

			So(idx.Update(1, 31.2600, 75.7060), ShouldBeNil)
			So(idx.userCell[1], ShouldNotResemble, old)
			_, stillThere := idx.cells[old]
			So(stillThere, ShouldBeFalse)
			So(len(idx.cells), ShouldEqual, 1)
		})
	})
}

func TestQueryNearby(t *testing.T) {
	Convey("Given A and B about 14m apart", t, func() {
		idx, mock := newTestIndex()
		So(idx.Update(1, 31.2540, 75.7060), ShouldBeNil)
		So(idx.Update(2, 31.2541, 75.7061), ShouldBeNil)

		Convey("A sees B within 50m", func() {
			So(idx.QueryNearby(1, 50), ShouldResemble, []uint64{2})
		})

		Convey("Self is never returned", func() {
			So(idx.QueryNearby(1, 50), ShouldNotContain, uint64(1))
		})

		Convey("B moved 500m away is not returned", func() {
			So(idx.Update(2, 31.2586, 75.7061), ShouldBeNil)
			So(idx.QueryNearby(1, 50), ShouldBeEmpty)
		})

		Convey("Unknown user yields nothing", func() {
			So(idx.QueryNearby(99, 50), ShouldBeNil)
		})

		Convey("A candidate older than the staleness window is excluded", func() {
			mock.Add(31 * time.Second)
			So(idx.Update(1, 31.2540, 75.7060), ShouldBeNil)
			So(idx.QueryNearby(1, 50), ShouldBeEmpty)
		})

		Convey("A candidate exactly inside the staleness window is kept", func() {
			mock.Add(30 * time.Second)
			So(idx.QueryNearby(1, 50), ShouldResemble, []uint64{2})
		})

		Convey("A crowded grid still resolves only the neighborhood", func() {
			// a dozen users roughly 1km apart, each in its own cell
			for i := uint64(0); i < 12; i++ {
				So(idx.Update(100+i, 31.2640+float64(i)*0.01, 75.7060), ShouldBeNil)
			}
			So(len(idx.cells), ShouldBeGreaterThan, 9)
			So(idx.QueryNearby(1, 50), ShouldResemble, []uint64{2})
		})

		Convey("Results are ordered nearest first", func() {
			So(idx.Update(3, 31.25403, 75.70603), ShouldBeNil)
			So(idx.QueryNearby(1, 50), ShouldResemble, []uint64{3, 2})
		})
	})

	Convey("Given users straddling a cell boundary east-west", t, func() {
		idx, _ := newTestIndex()
		// At 60°N a 0.0005° longitude step is ~28m, so 45m spans two cells.
		So(idx.Update(1, 60.0001, 10.00049), ShouldBeNil)
		So(idx.Update(2, 60.0001, 10.00130), ShouldBeNil)

		Convey("the neighborhood widens with latitude", func() {
			d := Distance(60.0001, 10.00049, 60.0001, 10.00130)
			So(d, ShouldBeLessThan, 50)
			So(idx.QueryNearby(1, 50), ShouldResemble, []uint64{2})
		})
	})

	Convey("Given users straddling the antimeridian", t, func() {
		idx, _ := newTestIndex()
		// 0.0001° of longitude at the equator is ~11m.
		So(idx.Update(1, 0, 179.99995), ShouldBeNil)
		So(idx.Update(2, 0, -179.99995), ShouldBeNil)

		Convey("the columns wrap so they see each other", func() {
			So(Distance(0, 179.99995, 0, -179.99995), ShouldBeLessThan, 50)
			So(idx.QueryNearby(1, 50), ShouldResemble, []uint64{2})
			So(idx.QueryNearby(2, 50), ShouldResemble, []uint64{1})
		})
	})

	Convey("Given a radius larger than the populated grid", t, func() {
		idx, _ := newTestIndex()
		So(idx.Update(1, 31.2540, 75.7060), ShouldBeNil)
		So(idx.Update(2, 31.2640, 75.7060), ShouldBeNil)

		Convey("the scan falls back to populated cells", func() {
			So(idx.QueryNearby(1, 5000), ShouldResemble, []uint64{2})
		})
	})
}

func TestEvict(t *testing.T) {
	Convey("Given two users with different ages", t, func() {
		idx, mock := newTestIndex()
		So(idx.Update(1, 31.2540, 75.7060), ShouldBeNil)
		mock.Add(40 * time.Second)
		So(idx.Update(2, 31.2541, 75.7061), ShouldBeNil)

		Convey("Evict drops only users past the TTL from every map", func() {
			mock.Add(21 * time.Second)
			So(idx.Evict(), ShouldEqual, 1)

			_, ok := idx.Location(1)
			So(ok, ShouldBeFalse)
			_, inCell := idx.userCell[1]
			So(inCell, ShouldBeFalse)
			So(idx.Len(), ShouldEqual, 1)
		})

		Convey("Remove drops a user immediately", func() {
			idx.Remove(2)
			So(idx.Len(), ShouldEqual, 1)
			So(idx.QueryNearby(1, 50), ShouldBeEmpty)
		})
	})
}

func TestRunSweepsOnTicker(t *testing.T) {
	idx, mock := newTestIndex()
	if err := idx.Update(1, 31.2540, 75.7060); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		idx.Run(ctx)
		close(done)
	}()

	// let Run register its ticker before time moves
	time.Sleep(10 * time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for idx.Len() != 0 && time.Now().Before(deadline) {
		mock.Add(DefaultSweepInterval)
	}
	cancel()
	<-done

	if idx.Len() != 0 {
		t.Fatalf("expected sweep to evict stale user, %d left", idx.Len())
	}
}

func TestDistance(t *testing.T) {
	Convey("Distance is symmetric and zero on identity", t, func() {
		a := Distance(31.2540, 75.7060, 31.2541, 75.7061)
		b := Distance(31.2541, 75.7061, 31.2540, 75.7060)
		So(a, ShouldAlmostEqual, b, 1e-9)
		So(a, ShouldBeBetween, 14, 15.5)
		So(Distance(10, 10, 10, 10), ShouldEqual, 0)
	})
}
