package index

import (
	"slices"

	"countries-api/core/dataset"
	"countries-api/core/normalize"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RegionSummary describes one region of the dataset.
type RegionSummary struct {
	Name         string   `json:"name"`
	CountryCount int      `json:"countryCount"`
	Subregions   []string `json:"subregions"`
}

// Stats reports the size of a built catalog.
type Stats struct {
	Records     int
	NameKeys    int
	Regions     int
	NameSkipped int
}

// Catalog holds the name and region indices over one dataset.
//
// A Catalog is built once by Build and never modified afterwards, so a single
// instance can be shared by every request goroutine without locking. Buckets
// reference the records passed to Build; records are never copied.
type Catalog struct {
	records    []*dataset.Record
	byName     map[string][]*dataset.Record
	byRegion   map[string][]*dataset.Record
	subregions map[string]map[string]struct{}
	summaries  []RegionSummary
	skipped    int
}

// Build indexes records by every normalized name variant and by normalized region.
// The result is deterministic for the same input order.
func Build(records []*dataset.Record) *Catalog {
	c := &Catalog{
		records:    records,
		byName:     make(map[string][]*dataset.Record),
		byRegion:   make(map[string][]*dataset.Record),
		subregions: make(map[string]map[string]struct{}),
	}

	for _, rec := range records {
		c.indexNames(rec)
		c.indexRegion(rec)
	}
	c.summaries = c.buildSummaries()

	return c
}

// indexNames adds rec to the bucket of each of its distinct name keys.
// A record without a common name is not a useful search anchor and is skipped.
func (c *Catalog) indexNames(rec *dataset.Record) {
	if rec.Name.Common == "" {
		c.skipped++
		return
	}

	seen := make(map[string]struct{})
	for _, name := range rec.NameVariants() {
		key := normalize.Key(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		bucket := c.byName[key]
		if slices.Contains(bucket, rec) {
			continue
		}
		c.byName[key] = append(bucket, rec)
	}
}

func (c *Catalog) indexRegion(rec *dataset.Record) {
	if rec.Region == "" {
		return
	}
	key := normalize.Key(rec.Region)
	if key == "" {
		return
	}

	c.byRegion[key] = append(c.byRegion[key], rec)

	if rec.Subregion == "" {
		return
	}
	set, ok := c.subregions[key]
	if !ok {
		set = make(map[string]struct{})
		c.subregions[key] = set
	}
	set[rec.Subregion] = struct{}{}
}

func (c *Catalog) buildSummaries() []RegionSummary {
	summaries := make([]RegionSummary, 0, len(c.byRegion))
	for name, recs := range c.byRegion {
		subregions := make([]string, 0, len(c.subregions[name]))
		for sub := range c.subregions[name] {
			subregions = append(subregions, sub)
		}
		slices.Sort(subregions)

		summaries = append(summaries, RegionSummary{
			Name:         name,
			CountryCount: len(recs),
			Subregions:   subregions,
		})
	}

	col := collate.New(language.Und)
	slices.SortFunc(summaries, func(a, b RegionSummary) int {
		return col.CompareString(a.Name, b.Name)
	})
	return summaries
}

// LookupName returns the records indexed under a normalized name key.
// The key must already be normalized with normalize.Key.
// The returned slice is shared and must not be modified.
func (c *Catalog) LookupName(key string) ([]*dataset.Record, bool) {
	recs, ok := c.byName[key]
	return recs, ok
}

// LookupRegion returns the records of a normalized region key.
// The returned slice is shared and must not be modified.
func (c *Catalog) LookupRegion(key string) ([]*dataset.Record, bool) {
	recs, ok := c.byRegion[key]
	return recs, ok
}

// Regions returns the region summaries sorted by name.
// The returned slice is shared and must not be modified.
func (c *Catalog) Regions() []RegionSummary {
	return c.summaries
}

// All returns every record in dataset order.
// The returned slice is shared and must not be modified.
func (c *Catalog) All() []*dataset.Record {
	return c.records
}

// Stats reports index sizes for logging and metrics.
func (c *Catalog) Stats() Stats {
	return Stats{
		Records:     len(c.records),
		NameKeys:    len(c.byName),
		Regions:     len(c.byRegion),
		NameSkipped: c.skipped,
	}
}
