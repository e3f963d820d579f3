package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Unique drops repeated values, keeping the first occurrence of each.
func Unique[A comparable](vals []A) []A {
	res := make([]A, 0, len(vals))
	for _, v := range vals {
		if !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	return res
}

func Intersect[A comparable](a []A, b []A) []A {
	var res []A
	for _, v := range a {
		if slices.Contains(b, v) {
			res = append(res, v)
		}
	}
	return res
}

func Pick[A any](vals []A, indexes ...int) []A {
	res := make([]A, 0, len(indexes))
	for _, i := range indexes {
		if i >= 0 && i < len(vals) {
			res = append(res, vals[i])
		}
	}
	return res
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Clamp[A constraints.Ordered](num A, lo A, hi A) A {
	if num < lo {
		return lo
	}
	if num > hi {
		return hi
	}
	return num
}

func Abs[A constraints.Signed | constraints.Float](num A) A {
	if num < 0 {
		return -num
	}
	return num
}
