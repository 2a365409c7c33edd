package util

import "iter"

// Range returns the integers from start to end, both included. Descending ranges are supported as well.
//
//	Range(0, 3) // [0 1 2 3]
//	Range(3, 1) // [3 2 1]
func Range(start, end int) []int {
	if start == end {
		return []int{start}
	}

	step, length := 1, end-start+1
	if start > end {
		step, length = -1, start-end+1
	}

	out := make([]int, length)

	for i := range out {
		out[i] = start + i*step
	}

	return out
}

// RangeSeq is the lazy form of Range.
//
//	for i := range RangeSeq(0, 3) {
//		fmt.Println(i) // 0, 1, 2, 3
//	}
func RangeSeq(start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if start > end {
			for i := start; i >= end; i-- {
				if !yield(i) {
					return
				}
			}

			return
		}

		for i := start; i <= end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
