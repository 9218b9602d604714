// Copyright 2026 Driftlab
// This file is part of Drift, a histogram drift simulation toolkit.
//
// Drift is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Drift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Drift. If not, see <http://www.gnu.org/licenses/>.

package identifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version identifiers take the form <7-hex-sha> or <7-hex-sha>@<tag>
// where the tag is a two- or three-component numeric version such as
// "1.2" or "1.2.1".

const shaLen = 7

const hexDigits = "0123456789abcdef"

var tagPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// VersionID is the parsed form of a version identifier.
type VersionID struct {
	SHA string
	Tag string
}

// String formats the identifier back into its wire form.
func (v VersionID) String() string {
	if v.Tag == "" {
		return v.SHA
	}
	return v.SHA + "@" + v.Tag
}

// NewVersionIDWith constructs a version identifier with a sha drawn from
// the given uniform source. A non-empty tag must match the tag pattern;
// a malformed tag is a caller error and is reported, not absorbed.
func NewVersionIDWith(rg Uniform, tag string) (string, error) {
	if tag != "" && !tagPattern.MatchString(tag) {
		return "", fmt.Errorf("malformed version tag %q", tag)
	}
	sha := make([]byte, shaLen)
	for i := range sha {
		j := int(rg.Float64() * float64(len(hexDigits)))
		if j >= len(hexDigits) {
			j = len(hexDigits) - 1
		}
		sha[i] = hexDigits[j]
	}
	return VersionID{SHA: string(sha), Tag: tag}.String(), nil
}

// NewVersionID constructs a version identifier with a crypto-random sha.
func NewVersionID(tag string) (string, error) {
	return NewVersionIDWith(cryptoSource{}, tag)
}

// ParseVersionID splits a version identifier into its sha and tag parts.
// The tag part is empty for untagged identifiers.
func ParseVersionID(id string) VersionID {
	sha, tag, _ := strings.Cut(id, "@")
	return VersionID{SHA: sha, Tag: tag}
}

// CompareVersionIDs orders two version identifiers purely by their
// numeric tag components. Untagged identifiers sort before tagged ones;
// missing trailing components count as zero, so "1.2" and "1.2.0" are
// equal. The result is negative, zero, or positive.
func CompareVersionIDs(a string, b string) int {
	ta := ParseVersionID(a).Tag
	tb := ParseVersionID(b).Tag
	if ta == "" || tb == "" {
		switch {
		case ta == "" && tb == "":
			return 0
		case ta == "":
			return -1
		default:
			return 1
		}
	}
	pa := tagComponents(ta)
	pb := tagComponents(tb)
	for i := 0; i < 3; i++ {
		if pa[i] != pb[i] {
			return pa[i] - pb[i]
		}
	}
	return 0
}

// tagComponents parses a tag into three numeric components, treating
// missing trailing components as zero. Non-numeric components become
// zero; validation happens at construction time, not here.
func tagComponents(tag string) [3]int {
	var out [3]int
	for i, part := range strings.SplitN(tag, ".", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			n = 0
		}
		out[i] = n
	}
	return out
}
