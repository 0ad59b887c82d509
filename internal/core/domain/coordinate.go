package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ModuleID identifies a module independently of its version.
type ModuleID struct {
	Group string
	Name  string
}

// String returns the module id as group:name.
func (m ModuleID) String() string {
	return m.Group + ":" + m.Name
}

// Coordinate identifies a module and an optional requested version.
type Coordinate struct {
	Module  ModuleID
	Version string
}

// String returns the coordinate as group:name or group:name:version.
func (c Coordinate) String() string {
	if c.Version == "" {
		return c.Module.String()
	}
	return c.Module.String() + ":" + c.Version
}

// ParseModuleID parses a group:name string.
func ParseModuleID(s string) (ModuleID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || !validSegments(parts) {
		return ModuleID{}, zerr.With(ErrInvalidCoordinate, "module", s)
	}
	return ModuleID{Group: parts[0], Name: parts[1]}, nil
}

// ParseCoordinate parses a group:name[:version] string.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if (len(parts) != 2 && len(parts) != 3) || !validSegments(parts) {
		return Coordinate{}, zerr.With(ErrInvalidCoordinate, "coordinate", s)
	}
	c := Coordinate{Module: ModuleID{Group: parts[0], Name: parts[1]}}
	if len(parts) == 3 {
		c.Version = parts[2]
	}
	return c, nil
}

func validSegments(parts []string) bool {
	for _, p := range parts {
		if p == "" || p == "." || p == ".." || strings.TrimSpace(p) != p || strings.ContainsAny(p, "/\\") {
			return false
		}
	}
	return true
}
