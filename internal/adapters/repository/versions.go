// Package repository lists module versions from local and remote repositories
// and exposes them to rules as the versionLister capturing service.
package repository

import (
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// sortVersions orders versions ascending and drops duplicates. Versions that
// read as semantic versions sort first by precedence; the rest sort lexically.
func sortVersions(versions []string) []string {
	if len(versions) == 0 {
		return nil
	}
	slices.SortFunc(versions, compareVersions)
	return slices.Compact(versions)
}

func compareVersions(a, b string) int {
	va, vb := canonical(a), canonical(b)
	validA, validB := semver.IsValid(va), semver.IsValid(vb)

	switch {
	case validA && validB:
		if c := semver.Compare(va, vb); c != 0 {
			return c
		}
	case validA:
		return -1
	case validB:
		return 1
	}
	return strings.Compare(a, b)
}

func canonical(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
