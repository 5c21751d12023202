package nbody

// combinations walks every strictly increasing k-tuple of the integers
// [0, n), in lexicographic order, calling yield with a reused scratch
// slice. It never allocates once running (the caller-owned combo slice
// is reused every call). Orders 2 through 5 (k = 1..4) are the common
// case for force fields and are special-cased below with literal nested
// loops instead of going through the general index-advance algorithm;
// this function is the fallback for larger orders.
func combinations(n, k int, combo []int, yield func([]int)) {
	if k == 0 || k > n {
		return
	}
	for i := 0; i < k; i++ {
		combo[i] = i
	}
	for {
		yield(combo)
		i := k - 1
		for i >= 0 && combo[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		combo[i]++
		for j := i + 1; j < k; j++ {
			combo[j] = combo[j-1] + 1
		}
	}
}

// combinations1 enumerates 1-tuples (pair order, k=1): every index in
// [0, n).
func combinations1(n int, combo []int, yield func([]int)) {
	for a := 0; a < n; a++ {
		combo[0] = a
		yield(combo)
	}
}

// combinations2 enumerates 2-tuples (3-body order, k=2).
func combinations2(n int, combo []int, yield func([]int)) {
	for a := 0; a < n-1; a++ {
		for b := a + 1; b < n; b++ {
			combo[0], combo[1] = a, b
			yield(combo)
		}
	}
}

// combinations3 enumerates 3-tuples (4-body order, k=3).
func combinations3(n int, combo []int, yield func([]int)) {
	for a := 0; a < n-2; a++ {
		for b := a + 1; b < n-1; b++ {
			for c := b + 1; c < n; c++ {
				combo[0], combo[1], combo[2] = a, b, c
				yield(combo)
			}
		}
	}
}

// combinations4 enumerates 4-tuples (5-body order, k=4).
func combinations4(n int, combo []int, yield func([]int)) {
	for a := 0; a < n-3; a++ {
		for b := a + 1; b < n-2; b++ {
			for c := b + 1; c < n-1; c++ {
				for d := c + 1; d < n; d++ {
					combo[0], combo[1], combo[2], combo[3] = a, b, c, d
					yield(combo)
				}
			}
		}
	}
}

// walkCombinations dispatches to the fixed-order fast paths for k = 1..4
// (n-body order 2..5) and falls back to the general algorithm otherwise.
func walkCombinations(n, k int, combo []int, yield func([]int)) {
	switch k {
	case 1:
		combinations1(n, combo, yield)
	case 2:
		combinations2(n, combo, yield)
	case 3:
		combinations3(n, combo, yield)
	case 4:
		combinations4(n, combo, yield)
	default:
		combinations(n, k, combo, yield)
	}
}
