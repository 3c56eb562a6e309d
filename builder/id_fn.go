// SPDX-License-Identifier: MIT
// Package: transitcat/builder
//
// id_fn.go — stop naming schemes and leg distance policies.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// IDFn generates a stop name from its zero-based index in the batch.
// It must be pure: the same idx always yields the same name.
type IDFn func(idx int) string

// DistanceFn returns the meters of one leg. rng is nil unless seeded.
type DistanceFn func(rng *rand.Rand) int

// DefaultIDFn returns "S" + decimal idx, e.g. 0→"S0", 42→"S42".
func DefaultIDFn(idx int) string {
	return "S" + strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the Excel-style column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// ConstantDistanceFn always returns meters. Panics if meters < 0.
func ConstantDistanceFn(meters int) DistanceFn {
	if meters < 0 {
		panic(fmt.Sprintf("ConstantDistanceFn: meters must be ≥ 0, got %d", meters))
	}
	return func(*rand.Rand) int { return meters }
}

// UniformDistanceFn draws uniformly from [min, max]. Panics unless 0 <= min <= max.
// The returned function must be called with a non-nil rng.
func UniformDistanceFn(min, max int) DistanceFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformDistanceFn: need 0 ≤ min ≤ max, got [%d,%d]", min, max))
	}
	return func(rng *rand.Rand) int { return min + rng.Intn(max-min+1) }
}
