// Package directory loads mosque records from a published spreadsheet CSV,
// falling back to the dataset bundled with the binary. The sheet is
// maintained by hand, so parsing is deliberately tolerant: malformed fields
// default rather than dropping the row.
package directory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/qiblatech/minaret/internal/model"
)

// The sheet has two known column layouts. The standard one carries a Sunset
// column; the shifted one omits it, moving everything after Asr one column
// left. Rows are inconsistent within a single file, so the layout is decided
// per row: a pure integer above 50 sitting in the pre-capacity slot marks a
// shifted row. Known limitation: a legitimate capacity of 50 or less, or a
// time cell that happens to be a bare integer above 50, misclassifies the
// row. The threshold is kept for compatibility with the existing sheet.
var intPattern = regexp.MustCompile(`^\d+$`)

func looksLikeCapacity(v string) bool {
	if !intPattern.MatchString(v) {
		return false
	}
	n, err := strconv.Atoi(v)
	return err == nil && n > 50
}

// ParseCSV converts published-sheet CSV text into mosque records. The first
// line is a header. The second line seeds the sheet-wide sunset and
// last-updated values used as fallback for rows lacking their own.
func ParseCSV(text string) []model.Mosque {
	lines := strings.Split(text, "\n")

	var globalSunset, globalLastUpdated string
	if len(lines) > 1 {
		first := splitLine(strings.TrimSpace(lines[1]))
		if len(first) >= 9 {
			globalSunset = first[8]
		}
		if len(first) >= 14 {
			globalLastUpdated = first[13]
		}
	}

	var mosques []model.Mosque
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		mosques = append(mosques, parseRow(splitLine(line), i, globalSunset, globalLastUpdated))
	}
	return mosques
}

func parseRow(values []string, rowIndex int, globalSunset, globalLastUpdated string) model.Mosque {
	shifted := looksLikeCapacity(field(values, 10)) && !looksLikeCapacity(field(values, 11))

	var times model.JamatTimes
	var capacity int
	var facilities model.StringList
	var lastUpdated string

	if shifted {
		times = model.JamatTimes{
			Fajr:   field(values, 5),
			Dhuhr:  field(values, 6),
			Asr:    field(values, 7),
			Sunset: globalSunset,
			Isha:   field(values, 8),
			Jumuah: field(values, 9),
		}
		capacity = atoiDefault(field(values, 10), 500)
		facilities = splitFacilities(field(values, 11))
		lastUpdated = firstNonEmpty(field(values, 12), globalLastUpdated)
	} else {
		times = model.JamatTimes{
			Fajr:   field(values, 5),
			Dhuhr:  field(values, 6),
			Asr:    field(values, 7),
			Sunset: firstNonEmpty(globalSunset, field(values, 8)),
			Isha:   field(values, 9),
			Jumuah: field(values, 10),
		}
		capacity = atoiDefault(field(values, 11), 500)
		facilities = splitFacilities(field(values, 12))
		lastUpdated = firstNonEmpty(field(values, 13), globalLastUpdated)
	}

	return model.Mosque{
		ID:          atoiDefault(field(values, 0), rowIndex),
		Name:        field(values, 1),
		Address:     field(values, 2),
		Latitude:    floatDefault(field(values, 3), 0),
		Longitude:   floatDefault(field(values, 4), 0),
		JamatTimes:  times,
		Capacity:    capacity,
		Facilities:  facilities,
		LastUpdated: lastUpdated,
	}
}

// splitLine splits one CSV line on commas, honoring double-quote toggling so
// commas inside quotes survive. Values are trimmed.
func splitLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}

func field(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func splitFacilities(raw string) model.StringList {
	if raw == "" {
		return model.StringList{"Wudu Area"}
	}
	parts := strings.Split(raw, "|")
	out := make(model.StringList, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func atoiDefault(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 {
		return def
	}
	return n
}

func floatDefault(raw string, def float64) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
