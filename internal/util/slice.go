// SPDX-License-Identifier: GPL-3.0-or-later

package util

/**
 * Generic shared utilities
 */

// SliceIncludes helper for detecting if a slice includes a value
func SliceIncludes[T comparable](s []T, val T) bool {
	for _, v := range s {
		if v == val {
			return true
		}
	}
	return false
}

// AppendUnique appends val to s only if s does not already include it
func AppendUnique[T comparable](s []T, val T) []T {
	if SliceIncludes(s, val) {
		return s
	}

	return append(s, val)
}
