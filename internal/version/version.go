// SPDX-License-Identifier: GPL-3.0-or-later

package version

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrMalformedVersion returned when a string is not a three part
// numeric version
var ErrMalformedVersion = errors.New("malformed version")

// ErrUnknownVersionPart returned when asked to increment anything other
// than major, minor or patch
var ErrUnknownVersionPart = errors.New("unknown version part")

// Part selects which component of a Version to increment
type Part string

const (
	Major Part = "major"
	Minor Part = "minor"
	Patch Part = "patch"
)

// Parts returns all supported parts in precedence order
func Parts() []Part {
	return []Part{Major, Minor, Patch}
}

// ParsePart validates and returns a Part
func ParsePart(s string) (Part, error) {
	for _, p := range Parts() {
		if string(p) == s {
			return p, nil
		}
	}

	return "", fmt.Errorf(
		"%w: %q (should be one of: major, minor or patch)",
		ErrUnknownVersionPart,
		s,
	)
}

// Version represents a major.minor.patch version triple
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses "X.Y.Z" into a Version
func Parse(s string) (Version, error) {
	tokens := strings.Split(s, ".")

	if len(tokens) != 3 {
		return Version{}, fmt.Errorf(
			"%w: %q: there should be exactly 3 tokens",
			ErrMalformedVersion,
			s,
		)
	}

	nums := [3]int{}

	for i, token := range tokens {
		n, err := parseToken(token)

		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %s", ErrMalformedVersion, s, err)
		}

		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// strconv.Atoi alone would accept signs and leading zeros
func parseToken(token string) (int, error) {
	if token == "" {
		return 0, errors.New("empty token")
	}

	if len(token) > 1 && token[0] == '0' {
		return 0, fmt.Errorf("leading zero in token %q", token)
	}

	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric token %q", token)
		}
	}

	n, err := strconv.Atoi(token)

	if err != nil {
		return 0, fmt.Errorf("token %q out of range", token)
	}

	return n, nil
}

// String returns the "X.Y.Z" representation
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Canonical returns the "vX.Y.Z" representation used by semver tooling
func (v Version) Canonical() string {
	return "v" + v.String()
}

// Compare returns -1, 0 or 1 if v is less than, equal to or greater than other
func (v Version) Compare(other Version) int {
	return semver.Compare(v.Canonical(), other.Canonical())
}

// Increment returns a new version with the given part incremented and all
// lower parts reset to 0
func Increment(v Version, part Part) (Version, error) {
	switch part {
	case Major:
		if v.Major == math.MaxInt {
			return Version{}, overflow(v, part)
		}
		return Version{Major: v.Major + 1}, nil
	case Minor:
		if v.Minor == math.MaxInt {
			return Version{}, overflow(v, part)
		}
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case Patch:
		if v.Patch == math.MaxInt {
			return Version{}, overflow(v, part)
		}
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf(
			"%w: %q (should be one of: major, minor or patch)",
			ErrUnknownVersionPart,
			string(part),
		)
	}
}

func overflow(v Version, part Part) error {
	return fmt.Errorf("%w: %q: %s cannot be incremented past its maximum", ErrMalformedVersion, v, part)
}
