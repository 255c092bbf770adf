package booking

// SeasonKind classifies a calendar week for pricing.
type SeasonKind string

const (
	SeasonLow    SeasonKind = "low"
	SeasonHigh   SeasonKind = "high"
	SeasonTennis SeasonKind = "tennis"
)

// ValidSeason reports whether s is one of the known season kinds.
func ValidSeason(s SeasonKind) bool {
	return s == SeasonLow || s == SeasonHigh || s == SeasonTennis
}

// Rates holds one year's nightly prices in whole kronor.
type Rates struct {
	Year   int
	Low    int64
	High   int64
	Tennis int64
}

// Price returns the nightly rate for a season kind.  Unknown kinds
// price as low season.
func (r Rates) Price(season SeasonKind) int64 {
	switch season {
	case SeasonHigh:
		return r.High
	case SeasonTennis:
		return r.Tennis
	default:
		return r.Low
	}
}

// PriceTable resolves nightly prices from per-year season rates and
// per-week season assignments.  BasePrice is the apartment's default
// nightly rate, charged for years with no season table.  All amounts
// are whole kronor; summation is exact integer arithmetic.
type PriceTable struct {
	Rates     map[int]Rates              // year -> rates
	Seasons   map[int]map[int]SeasonKind // year -> ISO week -> season
	BasePrice int64
}

// SeasonForWeek returns the assigned season for a week, defaulting to
// low season when the week has no explicit assignment.
func (t *PriceTable) SeasonForWeek(year, week int) SeasonKind {
	if byWeek, ok := t.Seasons[year]; ok {
		if s, ok := byWeek[week]; ok {
			return s
		}
	}
	return SeasonLow
}

// PriceForNight returns the nightly price for one calendar day.
func (t *PriceTable) PriceForNight(d Date) int64 {
	rates, ok := t.Rates[d.Year]
	if !ok {
		return t.BasePrice
	}
	return rates.Price(t.SeasonForWeek(d.Year, ISOWeek(d)))
}

// TotalPrice sums the nightly prices over [start, end).  The end date
// is the checkout day and is not charged, so a stay of end-start days
// pays for exactly that many nights.  Returns 0 when end is not after
// start.
func (t *PriceTable) TotalPrice(start, end Date) int64 {
	var total int64
	for d := start; d.Before(end); d = d.AddDays(1) {
		total += t.PriceForNight(d)
	}
	return total
}

// Nights returns the number of charged nights in [start, end).
func Nights(start, end Date) int {
	n := start.DaysUntil(end)
	if n < 0 {
		return 0
	}
	return n
}
