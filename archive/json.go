package archive

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON emits the compact nested-array wire form:
//
//	{"captures": [[year, [month, [day, [hms, id], ...], ...], ...], ...],
//	 "hashes": ["...", ...]}
//
// Year, month and day are JSON numbers; hms is the 6-digit time-of-day
// string; id is the fingerprint's index into hashes.
func (a *Archive) MarshalJSON() ([]byte, error) {
	years := make([]any, 0, len(a.Captures))
	for _, y := range a.Captures {
		yearEntry := make([]any, 0, len(y.Months)+1)
		yearEntry = append(yearEntry, y.Year)
		for _, m := range y.Months {
			monthEntry := make([]any, 0, len(m.Days)+1)
			monthEntry = append(monthEntry, m.Month)
			for _, d := range m.Days {
				dayEntry := make([]any, 0, len(d.Entries)+1)
				dayEntry = append(dayEntry, d.Day)
				for _, e := range d.Entries {
					dayEntry = append(dayEntry, []any{e.Suffix, e.HashID})
				}
				monthEntry = append(monthEntry, dayEntry)
			}
			yearEntry = append(yearEntry, monthEntry)
		}
		years = append(years, yearEntry)
	}

	hashes := a.Hashes
	if hashes == nil {
		hashes = []string{}
	}

	return json.Marshal(struct {
		Captures []any    `json:"captures"`
		Hashes   []string `json:"hashes"`
	}{Captures: years, Hashes: hashes})
}

// UnmarshalJSON parses the nested-array wire form produced by MarshalJSON.
func (a *Archive) UnmarshalJSON(data []byte) error {
	var raw struct {
		Captures []json.RawMessage `json:"captures"`
		Hashes   []string          `json:"hashes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	years := make([]Year, 0, len(raw.Captures))
	for _, yearRaw := range raw.Captures {
		yearKey, monthsRaw, err := splitGroup(yearRaw, "year")
		if err != nil {
			return err
		}
		y := Year{Year: yearKey, Months: make([]Month, 0, len(monthsRaw))}

		for _, monthRaw := range monthsRaw {
			monthKey, daysRaw, err := splitGroup(monthRaw, "month")
			if err != nil {
				return err
			}
			m := Month{Month: monthKey, Days: make([]Day, 0, len(daysRaw))}

			for _, dayRaw := range daysRaw {
				dayKey, entriesRaw, err := splitGroup(dayRaw, "day")
				if err != nil {
					return err
				}
				d := Day{Day: dayKey, Entries: make([]Entry, 0, len(entriesRaw))}

				for _, entryRaw := range entriesRaw {
					var pair []json.RawMessage
					if err := json.Unmarshal(entryRaw, &pair); err != nil {
						return fmt.Errorf("archive json: capture pair: %w", err)
					}
					if len(pair) != 2 {
						return fmt.Errorf("archive json: capture pair has %d elements, want 2", len(pair))
					}
					var e Entry
					if err := json.Unmarshal(pair[0], &e.Suffix); err != nil {
						return fmt.Errorf("archive json: time suffix: %w", err)
					}
					if err := json.Unmarshal(pair[1], &e.HashID); err != nil {
						return fmt.Errorf("archive json: hash id: %w", err)
					}
					d.Entries = append(d.Entries, e)
				}
				m.Days = append(m.Days, d)
			}
			y.Months = append(y.Months, m)
		}
		years = append(years, y)
	}

	a.Captures = years
	a.Hashes = raw.Hashes

	return nil
}

// splitGroup parses a [key, child, child, ...] group entry into its integer
// key and remaining raw children.
func splitGroup(raw json.RawMessage, level string) (int, []json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return 0, nil, fmt.Errorf("archive json: %s entry: %w", level, err)
	}
	if len(parts) == 0 {
		return 0, nil, fmt.Errorf("archive json: empty %s entry", level)
	}

	var key int
	if err := json.Unmarshal(parts[0], &key); err != nil {
		return 0, nil, fmt.Errorf("archive json: %s key: %w", level, err)
	}

	return key, parts[1:], nil
}
