package model

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Request is the immutable input of one pipeline run.
type Request struct {
	Symbol     string     `validate:"required,max=32"`
	From       time.Time  `validate:"required"`
	To         time.Time  `validate:"required"`
	Resolution Resolution `validate:"required,oneof=D W M"`
}

// NewRequest normalizes symbol and dates (upper-case symbol, UTC calendar days).
func NewRequest(symbol string, from, to time.Time, res Resolution) Request {
	return Request{
		Symbol:     strings.ToUpper(strings.TrimSpace(symbol)),
		From:       CalendarDay(from),
		To:         CalendarDay(to),
		Resolution: res,
	}
}

// LastNDays builds a request covering the n days up to and including now.
func LastNDays(symbol string, n int, now time.Time, res Resolution) Request {
	to := CalendarDay(now)
	return NewRequest(symbol, to.AddDate(0, 0, -n), to, res)
}

// Validate checks struct tags and that From is not after To.
func (r Request) Validate() error {
	if err := requestValidator().Struct(r); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	if r.From.After(r.To) {
		return fmt.Errorf("invalid request: from %s is after to %s", r.From.Format(DateLayout), r.To.Format(DateLayout))
	}
	return nil
}
