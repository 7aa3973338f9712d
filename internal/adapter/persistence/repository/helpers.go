package repository

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Item encoding conventions shared by every table: times as RFC3339Nano
// strings, money as decimal strings.

func timeToItem(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromItem(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func optTimeToItem(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := timeToItem(*t)
	return &s
}

func optTimeFromItem(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := timeFromItem(*s)
	return &t
}

func decimalFromItem(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func optDecimalToItem(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func optDecimalFromItem(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d := decimalFromItem(*s)
	return &d
}
