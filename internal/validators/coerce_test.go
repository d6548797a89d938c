// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.June, 8, 15, 4, 5, 0, time.UTC)

// ---------------------------------------------------------------------------
// ParseAmount
// ---------------------------------------------------------------------------

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "25", want: "25"},
		{input: " 25.5 ", want: "25.5"},
		{input: "¥30", want: "30"},
		{input: "￥1,200元", want: "1200"},
		{input: "88 元", want: "88"},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "0", wantErr: true},
		{input: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

// ---------------------------------------------------------------------------
// ParseDate
// ---------------------------------------------------------------------------

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: "2025-06-08"},
		{input: "今天", want: "2025-06-08"},
		{input: "昨天", want: "2025-06-07"},
		{input: "前天", want: "2025-06-06"},
		{input: "2025-06-01", want: "2025-06-01"},
		{input: "2025-6-1", want: "2025-06-01"},
		{input: "2025/06/01", want: "2025-06-01"},
		{input: "2025.6.1", want: "2025-06-01"},
		{input: "2025年6月1日", want: "2025-06-01"},
		{input: "2025-13-01", wantErr: true},
		{input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, fixedNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---------------------------------------------------------------------------
// ParseMonth / ParseTimeRange
// ---------------------------------------------------------------------------

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: "2025-06"},
		{input: "本月", want: "2025-06"},
		{input: "上月", want: "2025-05"},
		{input: "2025-05", want: "2025-05"},
		{input: "2025-5", want: "2025-05"},
		{input: "2025年5月", want: "2025-05"},
		{input: "2025-05-20", want: "2025-05"},
		{input: "May", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input, fixedNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMonth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonth_PreviousMonthAcrossYear(t *testing.T) {
	jan31 := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	got, err := ParseMonth("上月", jan31)
	require.NoError(t, err)
	assert.Equal(t, "2024-12", got)
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: ""},
		{input: "2025", want: "2025"},
		{input: "今年", want: "2025"},
		{input: "去年", want: "2024"},
		{input: "2025-06", want: "2025-06"},
		{input: "本月", want: "2025-06"},
		{input: "last week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeRange(tt.input, fixedNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "1", "yes", "是", "全部"} {
		assert.True(t, ParseBool(s), s)
	}
	for _, s := range []string{"", "false", "否", "maybe"} {
		assert.False(t, ParseBool(s), s)
	}
}
