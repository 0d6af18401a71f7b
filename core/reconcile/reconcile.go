package reconcile

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"countries-api/core/dataset"
	"countries-api/core/normalize"
	"countries-api/core/value"

	"golang.org/x/sync/errgroup"
)

// ErrTooFewSources is returned when fewer than two sources are compared.
var ErrTooFewSources = errors.New("reconcile: at least two sources are required")

// Result is the reconciliation output for one record key.
type Result struct {
	// Key is cca3 when present, otherwise the normalized common name.
	Key string `json:"key"`
	// Name is the common name taken from the first source holding the record.
	Name string `json:"name"`
	// Present lists the sources holding the record, in comparison order.
	Present []string `json:"present"`
	// Missing lists the sources lacking the record.
	Missing []string `json:"missing,omitempty"`
	// Mismatch names the top-level fields whose values differ between the
	// copies, e.g. "population: file != storage".
	Mismatch []string `json:"mismatch,omitempty"`
	// Duplicates names sources holding the key more than once.
	Duplicates []string `json:"duplicates,omitempty"`
}

// InSync reports whether every source holds exactly one identical copy.
func (r Result) InSync() bool {
	return len(r.Missing) == 0 && len(r.Mismatch) == 0 && len(r.Duplicates) == 0
}

// Report is the full comparison of a set of sources.
type Report struct {
	Sources []string `json:"sources"`
	// Counts is the number of records loaded per source.
	Counts  map[string]int `json:"counts"`
	Results []Result       `json:"results"`
}

// Diverged returns the results that are not in sync.
func (r *Report) Diverged() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.InSync() {
			out = append(out, res)
		}
	}
	return out
}

// sourceIndex holds one loaded source keyed by record key.
type sourceIndex struct {
	name       string
	count      int
	byKey      map[string]*dataset.Record
	duplicates map[string]struct{}
}

// Compare loads every source concurrently and reconciles their records.
// Any load failure aborts the comparison.
func Compare(ctx context.Context, sources ...dataset.Source) (*Report, error) {
	if len(sources) < 2 {
		return nil, ErrTooFewSources
	}

	loaded := make([][]*dataset.Record, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			records, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", src.Name(), err)
			}
			loaded[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	indices := make([]sourceIndex, len(sources))
	for i, src := range sources {
		indices[i] = buildIndex(src.Name(), loaded[i])
	}
	return reconcile(indices), nil
}

// Key returns the reconciliation key of rec.
func Key(rec *dataset.Record) string {
	if code, ok := rec.Doc.Field("cca3").Str(); ok && code != "" {
		return code
	}
	return normalize.Key(rec.Name.Common)
}

func buildIndex(name string, records []*dataset.Record) sourceIndex {
	idx := sourceIndex{
		name:       name,
		count:      len(records),
		byKey:      make(map[string]*dataset.Record, len(records)),
		duplicates: make(map[string]struct{}),
	}
	for _, rec := range records {
		key := Key(rec)
		if key == "" {
			continue
		}
		if _, ok := idx.byKey[key]; ok {
			idx.duplicates[key] = struct{}{}
			continue
		}
		idx.byKey[key] = rec
	}
	return idx
}

func reconcile(indices []sourceIndex) *Report {
	report := &Report{
		Sources: make([]string, len(indices)),
		Counts:  make(map[string]int, len(indices)),
	}

	union := make(map[string]struct{})
	for i, idx := range indices {
		report.Sources[i] = idx.name
		report.Counts[idx.name] = idx.count
		for key := range idx.byKey {
			union[key] = struct{}{}
		}
	}

	keys := slices.Sorted(maps.Keys(union))
	report.Results = make([]Result, 0, len(keys))
	for _, key := range keys {
		report.Results = append(report.Results, buildResult(key, indices))
	}
	return report
}

func buildResult(key string, indices []sourceIndex) Result {
	res := Result{Key: key}

	var base *dataset.Record
	var baseName string
	for _, idx := range indices {
		if _, dup := idx.duplicates[key]; dup {
			res.Duplicates = append(res.Duplicates, idx.name)
		}

		rec, ok := idx.byKey[key]
		if !ok {
			res.Missing = append(res.Missing, idx.name)
			continue
		}
		res.Present = append(res.Present, idx.name)

		if base == nil {
			base, baseName = rec, idx.name
			res.Name = rec.Name.Common
			continue
		}
		for _, field := range diffFields(base.Doc, rec.Doc) {
			res.Mismatch = append(res.Mismatch, fmt.Sprintf("%s: %s != %s", field, baseName, idx.name))
		}
	}
	return res
}

// diffFields returns the sorted top-level keys whose values differ between a
// and b. A key present on one side only counts as a difference.
func diffFields(a, b *value.Value) []string {
	keys := make(map[string]struct{})
	for _, k := range a.Keys() {
		keys[k] = struct{}{}
	}
	for _, k := range b.Keys() {
		keys[k] = struct{}{}
	}

	var out []string
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		if !Equal(a.Field(k), b.Field(k)) {
			out = append(out, k)
		}
	}
	return out
}
