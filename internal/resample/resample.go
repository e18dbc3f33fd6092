package resample

import (
	"fmt"
	"sort"
	"time"

	"vn-ohlcv/internal/model"
)

// Mode selects the bucket size.
type Mode int

const (
	Weekly Mode = iota + 1
	Monthly
)

func (m Mode) String() string {
	switch m {
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Resolution is the resolution stamped on bars produced in this mode.
func (m Mode) Resolution() model.Resolution {
	if m == Monthly {
		return model.Month
	}
	return model.Week
}

// WeekStart returns the Monday on or before d (UTC calendar arithmetic).
func WeekStart(d time.Time) time.Time {
	day := model.CalendarDay(d)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// MonthStart returns the first day of d's calendar month.
func MonthStart(d time.Time) time.Time {
	day := model.CalendarDay(d)
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// BucketKey returns the bucket date of d for the given mode.
func BucketKey(d time.Time, mode Mode) time.Time {
	if mode == Monthly {
		return MonthStart(d)
	}
	return WeekStart(d)
}

// Resample groups an ascending daily sequence into weekly or monthly bars.
// Empty input yields an empty result. Mixed symbols or non-ascending dates
// fail with *ResamplingError and nothing is returned.
func Resample(daily []model.Bar, mode Mode) ([]model.Bar, error) {
	if mode != Weekly && mode != Monthly {
		return nil, &ResamplingError{Index: -1, Reason: fmt.Sprintf("unknown mode %s", mode)}
	}
	if len(daily) == 0 {
		return []model.Bar{}, nil
	}
	if err := checkInput(daily); err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]*model.Bar)
	order := make([]time.Time, 0)
	for _, b := range daily {
		key := BucketKey(b.Date, mode)
		agg, ok := buckets[key]
		if !ok {
			nb := model.Bar{
				Date:       key,
				Open:       b.Open,
				High:       b.High,
				Low:        b.Low,
				Close:      b.Close,
				Volume:     b.Volume,
				Symbol:     b.Symbol,
				Resolution: mode.Resolution(),
			}
			buckets[key] = &nb
			order = append(order, key)
			continue
		}
		// members arrive ascending: open stays first, close tracks last
		if b.High > agg.High {
			agg.High = b.High
		}
		if b.Low < agg.Low {
			agg.Low = b.Low
		}
		agg.Close = b.Close
		agg.Volume += b.Volume
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	out := make([]model.Bar, 0, len(order))
	for _, key := range order {
		out = append(out, *buckets[key])
	}
	return out, nil
}

func checkInput(daily []model.Bar) error {
	symbol := daily[0].Symbol
	if symbol == "" {
		return &ResamplingError{Index: 0, Reason: "empty symbol"}
	}
	for i, b := range daily {
		if b.Symbol != symbol {
			return &ResamplingError{Index: i, Reason: fmt.Sprintf("symbol %q differs from %q", b.Symbol, symbol)}
		}
		if i > 0 && !b.Date.After(daily[i-1].Date) {
			return &ResamplingError{Index: i, Reason: fmt.Sprintf("date %s not after %s", b.DateString(), daily[i-1].DateString())}
		}
	}
	return nil
}
