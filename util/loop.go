package util

import "iter"

// LoopAround returns the element at the given index, looping around the list when the index
// is out of its bounds. Negative indexes count back from the end.
//
//	LoopAround([]int{1, 2, 3}, 3)  // 1
//	LoopAround([]int{1, 2, 3}, 7)  // 2
//	LoopAround([]int{1, 2, 3}, -1) // 3
//
// It panics if the list is empty.
func LoopAround[S ~[]E, E any](list S, index int) E {
	length := len(list)

	if index >= 0 && index < length {
		return list[index]
	}

	index %= length
	if index < 0 {
		index += length
	}

	return list[index]
}

// LoopAroundSeq returns an endless sequence cycling through the list, forward or backward.
// An empty list yields nothing.
//
//	for i, v := range LoopAroundSeq([]int{1, 2}, true) {} // 1, 2, 1, 2, ...
func LoopAroundSeq[S ~[]E, E any](list S, ascending bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(list) == 0 {
			return
		}

		index, step := 0, 1
		if !ascending {
			index, step = len(list)-1, -1
		}

		for {
			if !yield(LoopAround(list, index)) {
				return
			}

			index += step
		}
	}
}
