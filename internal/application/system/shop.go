package system

import (
	"fmt"

	"github.com/younwookim/ironknight/internal/infrastructure/config"
)

// Attribute is an upgradable player attribute
type Attribute int

const (
	AttrDamage Attribute = iota
	AttrArmor
	AttrStamina
)

// Attributes lists every attribute in shop order
var Attributes = []Attribute{AttrDamage, AttrArmor, AttrStamina}

// String returns the attribute name
func (a Attribute) String() string {
	switch a {
	case AttrDamage:
		return "damage"
	case AttrArmor:
		return "armor"
	case AttrStamina:
		return "stamina"
	default:
		return "unknown"
	}
}

// ParseAttribute converts an attribute name
func ParseAttribute(name string) (Attribute, error) {
	for _, a := range Attributes {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown attribute %q", name)
}

// Shop holds the upgrade tier of each attribute and its value tables
type Shop struct {
	Price   int
	MaxTier int
	Tiers   [3]int

	tables [3][]float64
}

// NewShop creates a shop with every attribute at tier 0
func NewShop(cfg config.ShopConfig) *Shop {
	return &Shop{
		Price:   cfg.Price,
		MaxTier: cfg.MaxTier,
		tables:  [3][]float64{cfg.Damage, cfg.Armor, cfg.Stamina},
	}
}

// Tier returns the current tier of an attribute
func (s *Shop) Tier(attr Attribute) int {
	if attr < 0 || int(attr) >= len(s.Tiers) {
		return 0
	}
	return s.Tiers[attr]
}

// SetTier sets an attribute tier, clamped to [0, MaxTier]
func (s *Shop) SetTier(attr Attribute, tier int) {
	if attr < 0 || int(attr) >= len(s.Tiers) {
		return
	}
	if tier < 0 {
		tier = 0
	}
	if tier > s.MaxTier {
		tier = s.MaxTier
	}
	s.Tiers[attr] = tier
}

// Value returns the attribute value at its current tier
func (s *Shop) Value(attr Attribute) float64 {
	if attr < 0 || int(attr) >= len(s.Tiers) {
		return 0
	}
	table := s.tables[attr]
	tier := s.Tiers[attr]
	if tier >= len(table) {
		if len(table) == 0 {
			return 0
		}
		tier = len(table) - 1
	}
	return table[tier]
}

// Purchase raises an attribute by one tier. It succeeds only if money covers
// cost and the attribute is below the maximum tier. The caller deducts money.
func (s *Shop) Purchase(attr Attribute, cost, money int) bool {
	if attr < 0 || int(attr) >= len(s.Tiers) {
		return false
	}
	if money < cost || s.Tiers[attr] >= s.MaxTier {
		return false
	}
	s.Tiers[attr]++
	return true
}

// Reset drops every attribute back to tier 0
func (s *Shop) Reset() {
	s.Tiers = [3]int{}
}
