// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package intent parses the structured text the assistant is prompted to
// produce.
//
// Intent grammar, one block per operation, blocks separated by blank lines:
//
//	意图：add_record
//	参数：
//	分类：餐饮
//	金额：25
//
// Budget advice grammar, one pair of adjacent lines per category:
//
//	分类：餐饮
//	预算：300
//
// Both the full-width "：" and the ASCII ":" separate keys from values.
// Parsing never fails on intents: malformed blocks are dropped. Advice text
// without a single pair yields [ErrNoBudgetSuggestions].
package intent
