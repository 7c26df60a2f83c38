package bumpversion

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mod/semver"
)

func TestBump(t *testing.T) {
	tests := []struct {
		current  string
		req      BumpRequest
		expected string
	}{
		{"2.5.7", BumpRequest{Major: true}, "3.0.0"},
		{"2.5.7", BumpRequest{Minor: true}, "2.6.0"},
		{"2.5.7", BumpRequest{Patch: true}, "2.5.8"},
		{"0.0.1", BumpRequest{Snapshot: true}, "0.0.2-SNAPSHOT"},
		{"0.0.2-SNAPSHOT", BumpRequest{Patch: true}, "0.0.3"},
		{"0.0.2-SNAPSHOT", BumpRequest{Snapshot: true}, "0.0.3-SNAPSHOT"},
		{"1.2.3-beta1", BumpRequest{Major: true}, "2.0.0"},
		{"1.2.3-beta1", BumpRequest{Minor: true}, "1.3.0"},
		{"1.2.3", BumpRequest{To: "9.9.9-beta1"}, "9.9.9-beta1"},
		{"9.9.9", BumpRequest{To: "0.0.1"}, "0.0.1"},
	}
	for _, tc := range tests {
		cur, err := ParseVersion(tc.current)
		require.NoError(t, err)
		next, err := Bump(cur, tc.req)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, next.String(), "bump %s with %+v", tc.current, tc.req)
	}
}

func TestBumpMonotonic(t *testing.T) {
	currents := []string{"0.0.0", "0.0.1", "0.9.9", "1.2.3", "1.2.3-SNAPSHOT", "1.2.3-beta1", "10.0.99"}
	reqs := []BumpRequest{{Major: true}, {Minor: true}, {Patch: true}, {Snapshot: true}}
	for _, c := range currents {
		cur, err := ParseVersion(c)
		require.NoError(t, err)
		for _, req := range reqs {
			next, err := Bump(cur, req)
			require.NoError(t, err)
			assert.Equal(t, 1, next.Compare(cur), "%s -> %s", c, next)
			assert.Equal(t, 1, semver.Compare("v"+next.String(), "v"+c), "%s -> %s", c, next)
		}
	}
}

func TestBumpRequestMode(t *testing.T) {
	tests := []struct {
		req      BumpRequest
		expected BumpMode
	}{
		{BumpRequest{To: "1.0.0"}, BumpExplicit},
		{BumpRequest{Major: true}, BumpMajor},
		{BumpRequest{Minor: true}, BumpMinor},
		{BumpRequest{Patch: true, From: "1.0.0"}, BumpPatch},
		{BumpRequest{Snapshot: true}, BumpSnapshot},
	}
	for _, tc := range tests {
		mode, err := tc.req.Mode()
		require.NoError(t, err)
		assert.Equal(t, tc.expected, mode)
	}
}

func TestBumpRequiresExactlyOneMode(t *testing.T) {
	for _, req := range []BumpRequest{
		{},
		{From: "1.2.3"},
		{Major: true, Minor: true},
		{To: "2.0.0", Patch: true},
		{Major: true, Minor: true, Patch: true, Snapshot: true, To: "1.0.0"},
	} {
		_, err := Bump(SemanticVersion{1, 2, 3, ""}, req)
		assert.ErrorIs(t, err, ErrInvalidArguments, "%+v", req)
	}
}

func TestBumpExplicitInvalid(t *testing.T) {
	_, err := Bump(SemanticVersion{}, BumpRequest{To: "1.2"})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestBumpOverflow(t *testing.T) {
	limit := strconv.Itoa(math.MaxInt)
	tests := []struct {
		current string
		req     BumpRequest
	}{
		{limit + ".0.0", BumpRequest{Major: true}},
		{"1." + limit + ".0", BumpRequest{Minor: true}},
		{"1.2." + limit, BumpRequest{Patch: true}},
		{"1.2." + limit + "-rc1", BumpRequest{Snapshot: true}},
	}
	for _, tc := range tests {
		t.Run(tc.current, func(t *testing.T) {
			current, err := ParseVersion(tc.current)
			require.NoError(t, err)

			_, err = Bump(current, tc.req)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}

	// Fields below the limit still bump.
	current, err := ParseVersion(strconv.Itoa(math.MaxInt-1) + ".0.0")
	require.NoError(t, err)
	next, err := Bump(current, BumpRequest{Major: true})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, next.Major)
	assert.Equal(t, 1, next.Compare(current))
}

func TestCheckExpected(t *testing.T) {
	assert.NoError(t, BumpRequest{}.CheckExpected("1.2.3"))
	assert.NoError(t, BumpRequest{From: "1.2.3"}.CheckExpected("1.2.3"))
	assert.ErrorIs(t, BumpRequest{From: "1.2.2"}.CheckExpected("1.2.3"), ErrVersionMismatch)
}

func TestBumpModeString(t *testing.T) {
	assert.Equal(t, "explicit", BumpExplicit.String())
	assert.Equal(t, "snapshot", BumpSnapshot.String())
	assert.Equal(t, "BumpMode(0)", BumpMode(0).String())
}
