package main

// powerset returns all 2^len(items) sub-sequences of items.
//
// Subsets are grouped by size, smallest first, and within a size ordered
// lexicographically by the position of their elements in items. Elements
// keep their relative order. Every subset is a freshly allocated slice.
//
// Example:
//
//	powerset([]string{"a", "b", "c"})
//
// Output:
//
//	[] [a] [b] [c] [a b] [a c] [b c] [a b c]
func powerset[T any](items []T) [][]T {
	result := make([][]T, 0, 1<<len(items))
	for k := 0; k <= len(items); k++ {
		result = append(result, combinations(items, k)...)
	}
	return result
}

// combinations returns every k-element sub-sequence of items in
// lexicographic index order.
func combinations[T any](items []T, k int) [][]T {
	n := len(items)
	if k < 0 || k > n {
		return nil
	}

	// indices holds the positions picked for the current combination,
	// starting with the first k items.
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	var result [][]T
	for {
		combo := make([]T, k)
		for i, idx := range indices {
			combo[i] = items[idx]
		}
		result = append(result, combo)

		// Find the rightmost index that can still move right.
		i := k - 1
		for i >= 0 && indices[i] == i+n-k {
			i--
		}
		if i < 0 {
			return result
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
