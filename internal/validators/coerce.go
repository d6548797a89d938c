// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
	yearLayout  = "2006"
)

var amountDecorations = strings.NewReplacer("¥", "", "￥", "", "元", "", ",", "", "，", "", " ", "")

// ParseAmount parses a positive money amount. Currency signs, the 元 suffix,
// thousands separators and spaces are ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := amountDecorations.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidAmount, s)
	}

	return d, nil
}

var dateSeparators = strings.NewReplacer("/", "-", ".", "-", "年", "-", "月", "-", "日", "")

// ParseDate normalizes s to YYYY-MM-DD. An empty value means today;
// 今天, 昨天 and 前天 are relative to now.
func ParseDate(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "今天", "今日":
		return now.Format(dateLayout), nil
	case "昨天":
		return now.AddDate(0, 0, -1).Format(dateLayout), nil
	case "前天":
		return now.AddDate(0, 0, -2).Format(dateLayout), nil
	}

	t, err := time.Parse("2006-1-2", dateSeparators.Replace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return t.Format(dateLayout), nil
}

// ParseMonth normalizes s to YYYY-MM. An empty value means the month of
// now; 本月 and 上月 are relative to now. A full date is truncated to its
// month.
func ParseMonth(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "本月", "这个月":
		return now.Format(monthLayout), nil
	case "上月", "上个月":
		return firstOfMonth(now).AddDate(0, -1, 0).Format(monthLayout), nil
	}

	normalized := strings.TrimSuffix(dateSeparators.Replace(s), "-")
	if t, err := time.Parse("2006-1", normalized); err == nil {
		return t.Format(monthLayout), nil
	}
	if t, err := time.Parse("2006-1-2", normalized); err == nil {
		return t.Format(monthLayout), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidMonth, s)
}

// ParseTimeRange normalizes s to either YYYY-MM or YYYY. An empty value
// returns an empty range, meaning no period filter.
func ParseTimeRange(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return "", nil
	case "今年":
		return now.Format(yearLayout), nil
	case "去年":
		return now.AddDate(-1, 0, 0).Format(yearLayout), nil
	}

	normalized := strings.TrimSuffix(dateSeparators.Replace(s), "-")
	if t, err := time.Parse(yearLayout, normalized); err == nil {
		return t.Format(yearLayout), nil
	}
	if month, err := ParseMonth(s, now); err == nil {
		return month, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
}

// ParseBool reads yes/no style flags. Anything unrecognized is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "是", "全部", "所有", "对":
		return true
	default:
		return false
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
