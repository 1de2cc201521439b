package tariff

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RateMapping links a distribution rate (e.g. D02d), optionally for one
// distributor, to the TDD profile its consumption follows.
type RateMapping struct {
	Rate        string
	Distributor string
	TDD         string
}

type rateKey struct {
	rate        string
	distributor string
}

// RateMap resolves distribution rates to TDD codes. Rates and distributors
// are matched ignoring case, diacritics and repeated whitespace.
type RateMap struct {
	entries map[rateKey]RateMapping
}

var (
	rateHeaders        = []string{"sazba", "tarif"}
	tddHeaders         = []string{"tdd", "diagram"}
	distributorHeaders = []string{"distributor", "distribuce"}
)

// LoadRateMap reads the first sheet of a rate binding workbook. The header
// row names the rate, TDD and optional distributor columns; without
// recognised names the first two columns are taken as rate and TDD.
func LoadRateMap(path string) (*RateMap, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := workbook.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return ParseRateMap(rows)
}

func ParseRateMap(rows [][]string) (*RateMap, error) {
	if len(rows) == 0 {
		return nil, errors.New("rate sheet is empty")
	}

	header := rows[0]
	rateIdx := findColumn(header, rateHeaders, 0)
	tddIdx := findColumn(header, tddHeaders, 1)
	distIdx := findColumn(header, distributorHeaders, -1)

	m := &RateMap{entries: map[rateKey]RateMapping{}}
	for _, row := range rows[1:] {
		rate := normalize(cell(row, rateIdx))
		tdd := strings.TrimSpace(cell(row, tddIdx))
		if rate == "" || tdd == "" {
			continue
		}

		var distributor string
		if distIdx >= 0 {
			distributor = normalize(cell(row, distIdx))
		}

		// Later rows win for an exact key; the distributor-less entry keeps
		// the first binding seen for the rate.
		m.entries[rateKey{rate, distributor}] = RateMapping{Rate: rate, Distributor: distributor, TDD: tdd}
		loose := rateKey{rate: rate}
		if _, ok := m.entries[loose]; !ok {
			m.entries[loose] = RateMapping{Rate: rate, TDD: tdd}
		}
	}

	if len(m.entries) == 0 {
		return nil, errors.New("rate sheet has no bindings")
	}
	return m, nil
}

// Resolve finds the binding for rate and distributor, falling back to the
// binding of the rate alone. distributor may be empty.
func (m *RateMap) Resolve(rate, distributor string) (RateMapping, bool) {
	r := normalize(rate)
	if d := normalize(distributor); d != "" {
		if mapping, ok := m.entries[rateKey{r, d}]; ok {
			return mapping, true
		}
	}
	mapping, ok := m.entries[rateKey{rate: r}]
	return mapping, ok
}

func findColumn(header []string, names []string, fallback int) int {
	for _, name := range names {
		for i, h := range header {
			if normalize(h) == name {
				return i
			}
		}
	}
	return fallback
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func normalize(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		strings.ToLower(s),
	)
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(folded), " ")
}
