// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package intent

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ledger-chat/models"
)

const (
	intentMarker = "意图"
	paramsMarker = "参数"

	adviceCategoryKey = "分类"
	adviceBudgetKey   = "预算"
)

// ErrNoBudgetSuggestions is returned when advice text holds no
// category/budget pair.
var ErrNoBudgetSuggestions = errors.New("no budget suggestions could be parsed")

// Parse extracts (intent, params) pairs from text in source order. Blocks
// without an intent line are dropped; empty input yields an empty slice.
func Parse(text string) []models.ParsedIntent {
	result := make([]models.ParsedIntent, 0, 2)

	for _, block := range splitBlocks(text) {
		if parsed, ok := parseBlock(block); ok {
			result = append(result, parsed)
		}
	}

	return result
}

func parseBlock(lines []string) (models.ParsedIntent, bool) {
	var (
		name      string
		hasIntent bool
		inParams  bool
		params    = make(map[string]string)
	)

	for _, line := range lines {
		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}

		switch {
		case key == intentMarker:
			name = Normalize(value)
			hasIntent = name != ""
		case key == paramsMarker:
			inParams = true
		case inParams && key != "":
			params[key] = value
		}
	}

	if !hasIntent {
		return models.ParsedIntent{}, false
	}
	return models.ParsedIntent{Name: name, Params: params}, true
}

// splitBlocks groups non-blank lines into blocks separated by one or more
// whitespace-only lines.
func splitBlocks(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var (
		blocks  [][]string
		current []string
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

// splitKeyValue splits line at the first "：" or ":" and trims both halves.
func splitKeyValue(line string) (key, value string, ok bool) {
	idx, width := -1, 0
	if i := strings.Index(line, "："); i >= 0 {
		idx, width = i, len("：")
	}
	if i := strings.Index(line, ":"); i >= 0 && (idx < 0 || i < idx) {
		idx, width = i, 1
	}
	if idx < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(trimListMarker(line[:idx]))
	value = strings.TrimSpace(line[idx+width:])
	return key, value, true
}

// trimListMarker drops a leading "-", "*", "•" or "1." the model sometimes
// puts in front of a line.
func trimListMarker(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*• ")

	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(s) && (s[digits] == '.' || s[digits] == ')') {
		s = s[digits+1:]
	}

	return strings.TrimSpace(s)
}

// BudgetSuggestion is one category/budget pair from advice text. Amount is
// the raw text the model produced.
type BudgetSuggestion struct {
	Category string
	Amount   string
}

// ParseBudgetAdvice extracts adjacent "分类：X" / "预算：N" line pairs in
// order. A later pair for the same category replaces the earlier one.
func ParseBudgetAdvice(text string) ([]BudgetSuggestion, error) {
	var (
		suggestions []BudgetSuggestion
		index       = make(map[string]int)
		pending     string
	)

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		key, value, ok := splitKeyValue(strings.TrimSpace(line))
		if !ok {
			pending = ""
			continue
		}

		switch key {
		case adviceCategoryKey:
			pending = value
		case adviceBudgetKey:
			if pending != "" && value != "" {
				if i, seen := index[pending]; seen {
					suggestions[i].Amount = value
				} else {
					index[pending] = len(suggestions)
					suggestions = append(suggestions, BudgetSuggestion{Category: pending, Amount: value})
				}
			}
			pending = ""
		default:
			pending = ""
		}
	}

	if len(suggestions) == 0 {
		return nil, ErrNoBudgetSuggestions
	}
	return suggestions, nil
}
