package camo

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"nanocamo/internal/nanoerr"
)

// Version identifies a stealth derivation variant. Versions are numbered 1..8
// in order of introduction.
type Version uint8

const (
	V1 Version = iota + 1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
)

// versionParams pins the constants of one protocol version.
//
// legacy is the 0-based number used on the wire and in older address
// strings; it is also the bit index in a Versions set. tag is the BLAKE2b
// domain tag of H_v. Both are protocol constants: changing either breaks
// compatibility with every address and payment already issued.
type versionParams struct {
	legacy uint8
	tag    string
}

// versionTable is indexed by Version-1.
var versionTable = [...]versionParams{
	{legacy: 0, tag: "nanocamo/v1/tweak"},
	{legacy: 1, tag: "nanocamo/v2/tweak"},
	{legacy: 2, tag: "nanocamo/v3/tweak"},
	{legacy: 3, tag: "nanocamo/v4/tweak"},
	{legacy: 4, tag: "nanocamo/v5/tweak"},
	{legacy: 5, tag: "nanocamo/v6/tweak"},
	{legacy: 6, tag: "nanocamo/v7/tweak"},
	{legacy: 7, tag: "nanocamo/v8/tweak"},
}

// VersionCount is the number of defined versions.
const VersionCount = len(versionTable)

// VersionsSize is the width of an encoded Versions set.
const VersionsSize = (VersionCount + 7) / 8

// knownBits has one bit set per defined version.
const knownBits = uint8(1<<VersionCount - 1)

// Valid reports whether v is a defined version.
func (v Version) Valid() bool { return v >= V1 && int(v) <= VersionCount }

func (v Version) params() versionParams { return versionTable[v-1] }

// Legacy returns the 0-based wire number of v.
func (v Version) Legacy() uint8 { return v.params().legacy }

// VersionFromLegacy maps a 0-based wire number to a Version.
func VersionFromLegacy(n uint8) (Version, error) {
	for i, s := range versionTable {
		if s.legacy == n {
			return Version(i + 1), nil
		}
	}
	return 0, nanoerr.Newf("camo.VersionFromLegacy", nanoerr.ErrIncompatibleCamoVersions, "unknown wire version %d", n)
}

// ParseVersion accepts "3" or "v3".
func ParseVersion(s string) (Version, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "v"), 10, 8)
	if err != nil || !Version(n).Valid() {
		return 0, nanoerr.Newf("camo.ParseVersion", nanoerr.ErrIncompatibleCamoVersions, "unknown version %q", s)
	}
	return Version(n), nil
}

func (v Version) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
	return "v" + strconv.Itoa(int(v))
}

// Versions is a set of protocol versions. The zero value is the empty set,
// which is distinct from every non-empty set. Versions is a plain value and
// carries no secret.
type Versions struct {
	bits uint8
}

// NoVersions returns the empty set.
func NoVersions() Versions { return Versions{} }

// Single returns the set holding only v. An invalid v yields the empty set.
func Single(v Version) Versions { return NoVersions().Insert(v) }

// AllVersions returns the set of every defined version.
func AllVersions() Versions { return Versions{bits: knownBits} }

// VersionsOf returns the set holding vs.
func VersionsOf(vs ...Version) Versions {
	var out Versions
	for _, v := range vs {
		out = out.Insert(v)
	}
	return out
}

// Contains reports whether v is in the set.
func (s Versions) Contains(v Version) bool {
	return v.Valid() && s.bits&(1<<v.Legacy()) != 0
}

// Insert returns the set with v added. Invalid versions are ignored.
func (s Versions) Insert(v Version) Versions {
	if !v.Valid() {
		return s
	}
	return Versions{bits: s.bits | 1<<v.Legacy()}
}

// Union returns s ∪ o.
func (s Versions) Union(o Versions) Versions { return Versions{bits: s.bits | o.bits} }

// Intersection returns s ∩ o.
func (s Versions) Intersection(o Versions) Versions { return Versions{bits: s.bits & o.bits} }

// IsEmpty reports whether the set has no versions.
func (s Versions) IsEmpty() bool { return s.bits == 0 }

// Len returns the number of set bits, including reserved ones.
func (s Versions) Len() int { return bits.OnesCount8(s.bits) }

// Reserved reports whether bits outside the defined versions are set.
func (s Versions) Reserved() bool { return s.bits&^knownBits != 0 }

// List returns the defined versions in the set, oldest first.
func (s Versions) List() []Version {
	out := make([]Version, 0, s.Len())
	for v := V1; int(v) <= VersionCount; v++ {
		if s.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Highest returns the newest defined version in the set.
func (s Versions) Highest() (Version, bool) {
	for v := Version(VersionCount); v >= V1; v-- {
		if s.Contains(v) {
			return v, true
		}
	}
	return 0, false
}

// Bytes encodes the set: bit i of the result is legacy version i.
func (s Versions) Bytes() []byte { return []byte{s.bits} }

// Byte is Bytes for the single-byte width in use.
func (s Versions) Byte() byte { return s.bits }

// VersionsFromBytes decodes a set, keeping reserved bits as they are so that
// sets written by newer software survive a round trip.
func VersionsFromBytes(b []byte) (Versions, error) {
	if len(b) != VersionsSize {
		return Versions{}, nanoerr.Length("camo.VersionsFromBytes", VersionsSize, len(b))
	}
	return Versions{bits: b[0]}, nil
}

// VersionsFromBytesStrict is VersionsFromBytes that also rejects reserved bits.
func VersionsFromBytesStrict(b []byte) (Versions, error) {
	s, err := VersionsFromBytes(b)
	if err != nil {
		return Versions{}, err
	}
	if s.Reserved() {
		return Versions{}, nanoerr.Newf("camo.VersionsFromBytesStrict", nanoerr.ErrIncompatibleCamoVersions, "reserved bits %08b", s.bits&^knownBits)
	}
	return s, nil
}

// ParseVersions parses a comma separated list such as "1,2" or "v1, v3".
func ParseVersions(s string) (Versions, error) {
	var out Versions
	for _, f := range strings.Split(s, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		v, err := ParseVersion(f)
		if err != nil {
			return Versions{}, err
		}
		out = out.Insert(v)
	}
	return out, nil
}

func (s Versions) String() string {
	list := s.List()
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Negotiate checks that the recipient accepts v. It must pass before any
// derivation work is done for a payment.
func Negotiate(v Version, recipient Versions) error {
	if !recipient.Contains(v) {
		return nanoerr.Newf("camo.Negotiate", nanoerr.ErrIncompatibleCamoVersions, "recipient %s does not accept %s", recipient, v)
	}
	return nil
}

// Preferred picks the newest version both sides support.
func Preferred(local, recipient Versions) (Version, error) {
	v, ok := local.Intersection(recipient).Highest()
	if !ok {
		return 0, nanoerr.Newf("camo.Preferred", nanoerr.ErrIncompatibleCamoVersions, "no common version between %s and %s", local, recipient)
	}
	return v, nil
}
