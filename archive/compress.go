package archive

import (
	"fmt"
	"slices"
)

// Entry is one capture within a day: the HHMMSS time-of-day suffix and the
// index of the capture's fingerprint in the archive's hash dictionary.
type Entry struct {
	Suffix string
	HashID int
}

// Day groups the entries of a single day, in input order.
type Day struct {
	Day     int
	Entries []Entry
}

// Month groups the days of a single month, sorted ascending.
type Month struct {
	Month int
	Days  []Day
}

// Year groups the months of a single year, sorted ascending.
type Year struct {
	Year   int
	Months []Month
}

// Archive is the deduplicated, date-partitioned form of a capture
// sequence. It is an immutable value: computed in one pass by Compress and
// never mutated afterwards.
//
// Invariants: every Entry.HashID is a valid index into Hashes; years,
// months and days appear in strictly ascending order; entries within a day
// keep the input order of their captures.
type Archive struct {
	Captures []Year
	Hashes   []string
}

// Len returns the total number of capture entries in the archive.
func (a *Archive) Len() int {
	n := 0
	for _, y := range a.Captures {
		for _, m := range y.Months {
			for _, d := range m.Days {
				n += len(d.Entries)
			}
		}
	}

	return n
}

// Compress builds the archive for an ordered capture sequence.
//
// Fingerprint strings are assigned sequential ids in first-seen order, so
// reordering the input changes the ids. That is by design: the ids are a
// deduplication index, not content hashes.
//
// A malformed timestamp fails the whole call with
// errs.ErrMalformedTimestamp naming the offending capture; no partial
// archive is returned.
func Compress(captures []Capture) (*Archive, error) {
	ids := make(map[string]int)
	hashes := make([]string, 0)
	grouped := make(map[int]map[int]map[int][]Entry)

	for i, c := range captures {
		year, month, day, suffix, err := parseTimestamp(c.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("capture %d: %w", i, err)
		}

		id, ok := ids[c.Hash]
		if !ok {
			id = len(ids)
			ids[c.Hash] = id
			hashes = append(hashes, c.Hash)
		}

		months, ok := grouped[year]
		if !ok {
			months = make(map[int]map[int][]Entry)
			grouped[year] = months
		}
		days, ok := months[month]
		if !ok {
			days = make(map[int][]Entry)
			months[month] = days
		}
		days[day] = append(days[day], Entry{Suffix: suffix, HashID: id})
	}

	a := &Archive{
		Captures: make([]Year, 0, len(grouped)),
		Hashes:   hashes,
	}

	for _, year := range sortedKeys(grouped) {
		months := grouped[year]
		y := Year{Year: year, Months: make([]Month, 0, len(months))}

		for _, month := range sortedKeys(months) {
			days := months[month]
			m := Month{Month: month, Days: make([]Day, 0, len(days))}

			for _, day := range sortedKeys(days) {
				m.Days = append(m.Days, Day{Day: day, Entries: days[day]})
			}
			y.Months = append(y.Months, m)
		}
		a.Captures = append(a.Captures, y)
	}

	return a, nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
