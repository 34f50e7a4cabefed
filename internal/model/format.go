package model

import (
	"fmt"
	"strings"
)

// Version identifies a schema revision of the standard
type Version int

const (
	VersionUnknown Version = iota
	Version1               // ZUGFeRD 1.0
	Version20              // ZUGFeRD 2.0
	Version23              // ZUGFeRD 2.1 - 2.3 / Factur-X 1.0
)

// Versions lists the supported schema versions, oldest first
var Versions = []Version{Version1, Version20, Version23}

func (v Version) String() string {
	switch v {
	case Version1:
		return "1.0"
	case Version20:
		return "2.0"
	case Version23:
		return "2.3"
	default:
		return "unknown"
	}
}

// ParseVersion accepts "1", "1.0", "2.0", "20", "2.1", "2.2", "2.3", "23"
func ParseVersion(s string) (Version, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "1", "1.0", "10", "v1":
		return Version1, nil
	case "2", "2.0", "20", "v20":
		return Version20, nil
	case "2.1", "2.2", "2.3", "21", "22", "23", "v23":
		return Version23, nil
	}
	return VersionUnknown, fmt.Errorf("unknown schema version %q", s)
}

// Profile is a conformance level. Values are bit flags so that sets of
// profiles can be expressed as a single mask.
type Profile uint16

const ProfileUnknown Profile = 0

const (
	ProfileMinimum Profile = 1 << iota
	ProfileBasicWL
	ProfileBasic
	ProfileComfort
	ProfileExtended
	ProfileXRechnung1
	ProfileXRechnung
	ProfileEReporting
)

// Profiles lists every profile from least to most permissive
var Profiles = []Profile{
	ProfileMinimum,
	ProfileBasicWL,
	ProfileBasic,
	ProfileComfort,
	ProfileExtended,
	ProfileXRechnung1,
	ProfileXRechnung,
	ProfileEReporting,
}

var profileNames = map[Profile]string{
	ProfileMinimum:    "Minimum",
	ProfileBasicWL:    "BasicWL",
	ProfileBasic:      "Basic",
	ProfileComfort:    "Comfort",
	ProfileExtended:   "Extended",
	ProfileXRechnung1: "XRechnung1",
	ProfileXRechnung:  "XRechnung",
	ProfileEReporting: "EReporting",
}

// In reports whether p is contained in the profile mask set
func (p Profile) In(set Profile) bool {
	return p != ProfileUnknown && p&set == p
}

func (p Profile) String() string {
	if name, ok := profileNames[p]; ok {
		return name
	}
	if p == ProfileUnknown {
		return "Unknown"
	}
	var names []string
	for _, single := range Profiles {
		if p&single != 0 {
			names = append(names, profileNames[single])
		}
	}
	return strings.Join(names, "|")
}

// ParseProfile resolves a profile by name, case-insensitively
func ParseProfile(s string) (Profile, error) {
	s = strings.TrimSpace(s)
	for p, name := range profileNames {
		if strings.EqualFold(name, s) {
			return p, nil
		}
	}
	switch strings.ToLower(s) {
	case "en16931":
		return ProfileComfort, nil
	case "basic-wl", "basic_wl":
		return ProfileBasicWL, nil
	}
	return ProfileUnknown, fmt.Errorf("unknown profile %q", s)
}

// Dialect is one of the two XML vocabularies
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectCII
	DialectUBL
)

func (d Dialect) String() string {
	switch d {
	case DialectCII:
		return "CII"
	case DialectUBL:
		return "UBL"
	default:
		return "unknown"
	}
}

// ParseDialect resolves "cii" or "ubl"
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CII":
		return DialectCII, nil
	case "UBL":
		return DialectUBL, nil
	}
	return DialectUnknown, fmt.Errorf("unknown dialect %q", s)
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(text []byte) error {
	if isUnknownText(text) {
		*v = VersionUnknown
		return nil
	}
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (p Profile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Profile) UnmarshalText(text []byte) error {
	if isUnknownText(text) {
		*p = ProfileUnknown
		return nil
	}
	parsed, err := ParseProfile(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Dialect) UnmarshalText(text []byte) error {
	if isUnknownText(text) {
		*d = DialectUnknown
		return nil
	}
	parsed, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func isUnknownText(text []byte) bool {
	s := strings.TrimSpace(string(text))
	return s == "" || strings.EqualFold(s, "unknown")
}
