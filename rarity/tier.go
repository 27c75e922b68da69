// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rarity

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/corgid/fault"
)

// Tier - rarity tier enumeration
type Tier uint64

// possible tier values
const (
	Nothing      Tier = iota // this must be the first value
	Common       Tier = iota
	Uncommon     Tier = iota
	Rare         Tier = iota
	VeryRare     Tier = iota
	UltraRare    Tier = iota
	maximumValue Tier = iota // this must be the last value
	First        Tier = Nothing + 1
	Last         Tier = maximumValue - 1
	Count        int  = int(Last) // count of real tiers
)

// internal conversion
func toString(tier Tier) ([]byte, error) {
	switch tier {
	case Nothing:
		return []byte{}, nil
	case Common:
		return []byte("COMMON"), nil
	case Uncommon:
		return []byte("UNCOMMON"), nil
	case Rare:
		return []byte("RARE"), nil
	case VeryRare:
		return []byte("VERY RARE"), nil
	case UltraRare:
		return []byte("ULTRA RARE"), nil
	default:
		return []byte{}, fault.ErrInvalidRarity
	}
}

// convert a string to a tier
func fromString(in string) (Tier, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "common":
		return Common, nil
	case "uncommon":
		return Uncommon, nil
	case "rare":
		return Rare, nil
	case "very rare", "very_rare":
		return VeryRare, nil
	case "ultra rare", "ultra_rare":
		return UltraRare, nil
	default:
		return Nothing, fault.ErrInvalidRarity
	}
}

// String - convert a tier to its string name
func (tier Tier) String() string {
	s, err := toString(tier)
	if nil != err {
		logger.Panicf("invalid tier enumeration: %d", tier)
	}
	return string(s)
}

// GoString - enum value and name, for debugging
func (tier Tier) GoString() string {
	return fmt.Sprintf("<Tier#%d:%q>", uint64(tier), tier.String())
}

// IsValid - tier is in the range of real tiers
//
// Nothing is not considered as valid
func (tier Tier) IsValid() bool {
	return tier >= First && tier <= Last
}

// Bonus - attribute bonus conferred by a tier
func (tier Tier) Bonus() uint32 {
	if !tier.IsValid() {
		logger.Panicf("rarity.Bonus: invalid tier: %d", tier)
	}
	return uint32(tier-First) * 50
}

// MarshalText - convert a tier into JSON
func (tier Tier) MarshalText() ([]byte, error) {
	return toString(tier)
}

// UnmarshalText - convert a tier name from JSON
func (tier *Tier) UnmarshalText(s []byte) error {
	t, err := fromString(string(s))
	if nil != err {
		return err
	}
	*tier = t
	return nil
}
