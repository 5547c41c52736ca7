package amethyste

import (
	"fmt"

	"github.com/samber/lo"
)

// HypesquadHouse selects the Discord Hypesquad theme used by DiscordHouse.
type HypesquadHouse string

const (
	HouseBravery    HypesquadHouse = "hypesquad_bravery"
	HouseBrilliance HypesquadHouse = "hypesquad_brilliance"
	HouseBalance    HypesquadHouse = "hypesquad_balance"
)

// Values returns all known HypesquadHouse values.
func (HypesquadHouse) Values() []HypesquadHouse {
	return []HypesquadHouse{HouseBravery, HouseBrilliance, HouseBalance}
}

func (h HypesquadHouse) String() string { return string(h) }

// Valid reports whether h is a member of the declared set.
func (h HypesquadHouse) Valid() bool { return lo.Contains(h.Values(), h) }

func (h HypesquadHouse) validate() error {
	if !h.Valid() {
		return fmt.Errorf("amethyste: invalid hypesquad house %q", string(h))
	}
	return nil
}

// Orientation selects the direction Symmetry mirrors the image in.
type Orientation string

const (
	OrientationLeftRight   Orientation = "left_right"
	OrientationRightLeft   Orientation = "right_left"
	OrientationTopBottom   Orientation = "top_bottom"
	OrientationBottomTop   Orientation = "bottom_top"
	OrientationTopLeft     Orientation = "top_left"
	OrientationTopRight    Orientation = "top_right"
	OrientationBottomLeft  Orientation = "bottom_left"
	OrientationBottomRight Orientation = "bottom_right"
)

// Values returns all known Orientation values.
func (Orientation) Values() []Orientation {
	return []Orientation{
		OrientationLeftRight,
		OrientationRightLeft,
		OrientationTopBottom,
		OrientationBottomTop,
		OrientationTopLeft,
		OrientationTopRight,
		OrientationBottomLeft,
		OrientationBottomRight,
	}
}

func (o Orientation) String() string { return string(o) }

// Valid reports whether o is a member of the declared set.
func (o Orientation) Valid() bool { return lo.Contains(o.Values(), o) }

func (o Orientation) validate() error {
	if !o.Valid() {
		return fmt.Errorf("amethyste: invalid orientation %q", string(o))
	}
	return nil
}

// TrinityType selects the rendering variant used by Trinity.
type TrinityType string

const (
	TrinityBasic      TrinityType = "basic"
	TrinityRemastered TrinityType = "remastered"
)

// Values returns all known TrinityType values.
func (TrinityType) Values() []TrinityType {
	return []TrinityType{TrinityBasic, TrinityRemastered}
}

func (t TrinityType) String() string { return string(t) }

// Valid reports whether t is a member of the declared set.
func (t TrinityType) Valid() bool { return lo.Contains(t.Values(), t) }

func (t TrinityType) validate() error {
	if !t.Valid() {
		return fmt.Errorf("amethyste: invalid trinity type %q", string(t))
	}
	return nil
}

// VersusColors selects the palette used by Versus.
type VersusColors string

const (
	VersusOrangeAndBlue      VersusColors = "orange_and_blue"
	VersusRedAndBlue         VersusColors = "red_and_blue"
	VersusRedGradientAndBlue VersusColors = "red_gradient_and_blue"
)

// Values returns all known VersusColors values.
func (VersusColors) Values() []VersusColors {
	return []VersusColors{VersusOrangeAndBlue, VersusRedAndBlue, VersusRedGradientAndBlue}
}

func (v VersusColors) String() string { return string(v) }

// Valid reports whether v is a member of the declared set.
func (v VersusColors) Valid() bool { return lo.Contains(v.Values(), v) }

func (v VersusColors) validate() error {
	if !v.Valid() {
		return fmt.Errorf("amethyste: invalid versus colors %q", string(v))
	}
	return nil
}
