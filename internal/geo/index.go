// Package geo implements the in-memory spatial index of live user positions.
//
// Positions are bucketed into fixed-size lat/lng grid cells. A user belongs
// to exactly one cell; membership and the sample timestamp change together
// under the index lock. The index is owned by the application: constructed at
// startup, swept by Run, and dropped at shutdown.
package geo

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	svcErr "github.com/oggyb/bloom/internal/errors"
	"github.com/oggyb/bloom/internal/logger"
	"github.com/oggyb/bloom/internal/metrics"
)

// UserLocation is the latest accepted position sample for a user.
type UserLocation struct {
	UserID    uint64
	Lat       float64
	Lng       float64
	UpdatedAt time.Time
}

type cellKey struct {
	X, Y int64
}

// Index is a grid-bucketed location index. Safe for concurrent use.
type Index struct {
	mu        sync.RWMutex
	cells     map[cellKey]map[uint64]struct{}
	userCell  map[uint64]cellKey
	locations map[uint64]UserLocation

	clock          clock.Clock
	cellSizeDeg    float64
	debounceMeters float64
	staleness      time.Duration
	evictionTTL    time.Duration
	sweepInterval  time.Duration

	log     *slog.Logger
	metrics *metrics.Registry
}

// NewIndex returns an empty index configured by opts.
func NewIndex(opts ...Option) *Index {
	idx := &Index{
		cells:          make(map[cellKey]map[uint64]struct{}),
		userCell:       make(map[uint64]cellKey),
		locations:      make(map[uint64]UserLocation),
		clock:          clock.New(),
		cellSizeDeg:    DefaultCellSizeDeg,
		debounceMeters: DefaultDebounceMeters,
		staleness:      DefaultStaleness,
		evictionTTL:    DefaultEvictionTTL,
		sweepInterval:  DefaultSweepInterval,
	}
	for _, opt := range opts {
		opt(idx)
	}
	if idx.log == nil {
		idx.log = logger.Named(nil, "location_index")
	}
	return idx
}

// Update records a position sample for userID.
//
// A sample closer than the debounce distance to the stored position only
// refreshes UpdatedAt; cell membership is left alone so GPS jitter does not
// churn the grid.
func (idx *Index) Update(userID uint64, lat, lng float64) error {
	if userID == 0 {
		return svcErr.Validation("user id is required")
	}
	if !ValidCoordinates(lat, lng) {
		return svcErr.Validation("coordinates must be finite with lat in [-90,90] and lng in [-180,180]")
	}

	now := idx.clock.Now()

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if prev, ok := idx.locations[userID]; ok &&
		Distance(prev.Lat, prev.Lng, lat, lng) < idx.debounceMeters {
		prev.UpdatedAt = now
		idx.locations[userID] = prev
		return nil
	}

	newCell := idx.cellFor(lat, lng)
	if oldCell, ok := idx.userCell[userID]; ok && oldCell != newCell {
		idx.removeFromCell(oldCell, userID)
	}

	members, ok := idx.cells[newCell]
	if !ok {
		members = make(map[uint64]struct{})
		idx.cells[newCell] = members
	}
	members[userID] = struct{}{}

	idx.userCell[userID] = newCell
	idx.locations[userID] = UserLocation{UserID: userID, Lat: lat, Lng: lng, UpdatedAt: now}
	idx.metrics.SetIndexedUsers(len(idx.locations))
	return nil
}

// QueryNearby returns the users within radiusMeters of userID whose samples
// are fresher than the staleness window, nearest first. An unknown user
// yields nil.
func (idx *Index) QueryNearby(userID uint64, radiusMeters float64) []uint64 {
	if radiusMeters <= 0 {
		return nil
	}
	now := idx.clock.Now()

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	origin, ok := idx.locations[userID]
	if !ok {
		return nil
	}
	center := idx.userCell[userID]

	type hit struct {
		id   uint64
		dist float64
	}
	var hits []hit

	idx.eachNeighbor(center, origin.Lat, radiusMeters, func(members map[uint64]struct{}) {
		for uid := range members {
			if uid == userID {
				continue
			}
			other, ok := idx.locations[uid]
			if !ok || now.Sub(other.UpdatedAt) > idx.staleness {
				continue
			}
			if d := Distance(origin.Lat, origin.Lng, other.Lat, other.Lng); d <= radiusMeters {
				hits = append(hits, hit{id: uid, dist: d})
			}
		}
	})

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].id < hits[j].id
		}
		return hits[i].dist < hits[j].dist
	})

	out := make([]uint64, len(hits))
	for i, h := range hits {
		out[i] = h.id
	}
	return out
}

// Location returns the stored sample for userID.
func (idx *Index) Location(userID uint64) (UserLocation, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	loc, ok := idx.locations[userID]
	return loc, ok
}

// Len returns the number of indexed users.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.locations)
}

// Remove drops userID from the index, e.g. once the user is no longer eligible.
func (idx *Index) Remove(userID uint64) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeLocked(userID)
	idx.metrics.SetIndexedUsers(len(idx.locations))
}

// Evict removes every user whose last sample is older than the eviction TTL
// and returns how many were removed.
func (idx *Index) Evict() int {
	now := idx.clock.Now()

	idx.mu.Lock()
	defer idx.mu.Unlock()

	evicted := 0
	for uid, loc := range idx.locations {
		if now.Sub(loc.UpdatedAt) > idx.evictionTTL {
			idx.removeLocked(uid)
			evicted++
		}
	}

	idx.metrics.AddEvictions(evicted)
	idx.metrics.SetIndexedUsers(len(idx.locations))
	return evicted
}

// Run sweeps stale users every sweep interval until ctx is canceled.
func (idx *Index) Run(ctx context.Context) {
	ticker := idx.clock.Ticker(idx.sweepInterval)
	defer ticker.Stop()

	idx.log.Info("location sweep started", "interval", idx.sweepInterval, "ttl", idx.evictionTTL)
	for {
		select {
		case <-ctx.Done():
			idx.log.Info("location sweep stopped")
			return
		case <-ticker.C:
			if n := idx.Evict(); n > 0 {
				idx.log.Debug("evicted stale locations", "count", n, "remaining", idx.Len())
			}
		}
	}
}

// --- internals, callers hold idx.mu ---

func (idx *Index) cellFor(lat, lng float64) cellKey {
	return cellKey{
		X: int64(math.Floor(lat / idx.cellSizeDeg)),
		Y: idx.wrapY(int64(math.Floor((lng + 180) / idx.cellSizeDeg))),
	}
}

// lngCells is the number of longitude columns around the globe.
func (idx *Index) lngCells() int64 {
	return int64(math.Ceil(360/idx.cellSizeDeg - 1e-9))
}

// wrapY folds a longitude column onto [0, lngCells) so columns on both sides
// of the antimeridian are neighbors.
func (idx *Index) wrapY(y int64) int64 {
	n := idx.lngCells()
	return (y%n + n) % n
}

func (idx *Index) removeLocked(userID uint64) {
	if cell, ok := idx.userCell[userID]; ok {
		idx.removeFromCell(cell, userID)
	}
	delete(idx.userCell, userID)
	delete(idx.locations, userID)
}

func (idx *Index) removeFromCell(cell cellKey, userID uint64) {
	members, ok := idx.cells[cell]
	if !ok {
		return
	}
	delete(members, userID)
	if len(members) == 0 {
		delete(idx.cells, cell)
	}
}

// eachNeighbor calls fn once for every populated cell within radiusMeters of
// center. The latitude range is ceil(radius / cellMeters); the longitude
// range widens by 1/cos(lat) because meridians converge, and wraps at the
// antimeridian.
func (idx *Index) eachNeighbor(center cellKey, lat, radiusMeters float64, fn func(map[uint64]struct{})) {
	cellMeters := idx.cellSizeDeg * metersPerDegreeLat
	latRange := int64(math.Ceil(radiusMeters / cellMeters))
	lngRange := int64(math.Ceil(radiusMeters / (cellMeters * math.Max(math.Cos(toRad(lat)), minCosLat))))

	cols := idx.lngCells()
	firstY, spanY := center.Y-lngRange, 2*lngRange+1
	if spanY >= cols {
		firstY, spanY = 0, cols
	}

	// With a huge radius it is cheaper to scan the populated cells.
	if (2*latRange+1)*spanY > int64(len(idx.cells)) {
		for key, members := range idx.cells {
			dy := abs64(key.Y - center.Y)
			if wrapped := cols - dy; wrapped < dy {
				dy = wrapped
			}
			if abs64(key.X-center.X) <= latRange && dy <= lngRange {
				fn(members)
			}
		}
		return
	}

	for dx := -latRange; dx <= latRange; dx++ {
		for i := int64(0); i < spanY; i++ {
			if members, ok := idx.cells[cellKey{X: center.X + dx, Y: idx.wrapY(firstY + i)}]; ok {
				fn(members)
			}
		}
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
