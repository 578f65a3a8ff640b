// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers used by the TUI.
package slicest

// Map

// MapXI maps slice S to []U with error propagation.
// - X: Stops on failure and returns error.
// - I: Provides index to callback.
func MapXI[T, U any, S ~[]T](s S, fn func(int, T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, t := range s {
		out, err := fn(i, t)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result, _ := MapXI(s, func(i int, t T) (U, error) {
		return fn(i, t), nil
	})
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}

// Filter

// Filter keeps the elements for which fn returns true.
func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	var result S
	for _, t := range s {
		if fn(t) {
			result = append(result, t)
		}
	}
	return result
}
