package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/tidwall/rtree"

	"eventrec.dev/internal/models"
	"eventrec.dev/internal/utils"
)

// Catalog is an immutable, indexed snapshot of the events.
type Catalog struct {
	events   []models.Event
	byID     map[string]int
	genres   []string
	index    *rtree.RTree
	loadedAt time.Time
}

// New builds a catalog over events, keeping their order.
func New(events []models.Event, loadedAt time.Time) *Catalog {
	c := &Catalog{
		events:   events,
		byID:     make(map[string]int, len(events)),
		loadedAt: loadedAt,
	}

	genreSet := make(map[string]string)
	for i, e := range events {
		c.byID[e.ID] = i
		key := strings.ToLower(e.Genre)
		if _, ok := genreSet[key]; !ok {
			genreSet[key] = e.Genre
		}
	}
	for _, g := range genreSet {
		c.genres = append(c.genres, g)
	}
	sort.Strings(c.genres)

	c.index = buildEventSpatialIndex(events)
	return c
}

// buildEventSpatialIndex stores each event's position as a point keyed by [lat, lon].
func buildEventSpatialIndex(events []models.Event) *rtree.RTree {
	tree := &rtree.RTree{}
	for i, e := range events {
		point := [2]float64{e.Latitude, e.Longitude}
		tree.Insert(point, point, i)
	}
	return tree
}

// Events returns the events in load order. Callers must not modify the slice.
func (c *Catalog) Events() []models.Event {
	return c.events
}

func (c *Catalog) Len() int {
	return len(c.events)
}

func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

// Genres returns the distinct genres, first spelling wins, sorted.
func (c *Catalog) Genres() []string {
	return c.genres
}

// Get looks up an event by id.
func (c *Catalog) Get(id string) (models.Event, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Event{}, false
	}
	return c.events[i], true
}

// Within returns a superset of the events within radiusKm of the point, in load
// order. The index is used as a bounding-box prefilter; exact distance checks
// are left to the caller. Boxes crossing a pole or the antimeridian fall back
// to every event.
func (c *Catalog) Within(lat, lon, radiusKm float64) []models.Event {
	bounds := utils.CalculateBounds(lat, lon, radiusKm)
	if bounds.CrossesPoleOrAntimeridian() {
		return c.events
	}

	var positions []int
	c.index.Search(
		[2]float64{bounds.MinLat, bounds.MinLon},
		[2]float64{bounds.MaxLat, bounds.MaxLon},
		func(min, max [2]float64, data interface{}) bool {
			if i, ok := data.(int); ok {
				positions = append(positions, i)
			}
			return true
		},
	)
	sort.Ints(positions)

	out := make([]models.Event, 0, len(positions))
	for _, i := range positions {
		out = append(out, c.events[i])
	}
	return out
}
