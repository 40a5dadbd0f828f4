// Package items holds the immutable item catalog: static definitions created
// at load time and never mutated afterwards.
package items

import (
	"fmt"
	"sort"
)

// ID represents a unique identifier for an item kind.
type ID string

// Category enumerates the canonical item categories shared with the UI.
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryConsumable Category = "consumable"
	CategoryMaterial   Category = "material"
	CategoryQuest      Category = "quest"
	CategoryMisc       Category = "misc"
)

var validCategories = map[Category]struct{}{
	CategoryWeapon:     {},
	CategoryArmor:      {},
	CategoryConsumable: {},
	CategoryMaterial:   {},
	CategoryQuest:      {},
	CategoryMisc:       {},
}

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryWeapon,
		CategoryArmor,
		CategoryConsumable,
		CategoryMaterial,
		CategoryQuest,
		CategoryMisc,
	}
}

// Rarity enumerates the presentation tiers for an item kind.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var validRarities = map[Rarity]struct{}{
	RarityCommon:    {},
	RarityUncommon:  {},
	RarityRare:      {},
	RarityEpic:      {},
	RarityLegendary: {},
}

// Modifier defines a deterministic stat payload carried by an item kind.
type Modifier struct {
	Stat      string  `json:"stat"`
	Magnitude float64 `json:"magnitude"`
}

// Definition describes metadata for an item kind. Instances are built once by
// NewDefinition and shared read-only across sessions.
type Definition struct {
	ID          ID         `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Rarity      Rarity     `json:"rarity"`
	Stackable   bool       `json:"stackable"`
	MaxStack    int        `json:"maxStack"`
	Icon        string     `json:"icon,omitempty"`
	Modifiers   []Modifier `json:"modifiers,omitempty"`
	Effect      string     `json:"effect,omitempty"`
}

// Params describes the configurable fields used when constructing a Definition.
type Params struct {
	ID          ID
	Name        string
	Description string
	Category    Category
	Rarity      Rarity
	Stackable   bool
	MaxStack    int
	Icon        string
	Modifiers   []Modifier
	Effect      string
}

// NewDefinition validates and constructs a canonical Definition.
func NewDefinition(params Params) (Definition, error) {
	if params.ID == "" {
		return Definition{}, fmt.Errorf("item id must be provided")
	}
	if params.Name == "" {
		return Definition{}, fmt.Errorf("item %s: name must be provided", params.ID)
	}
	if _, ok := validCategories[params.Category]; !ok {
		return Definition{}, fmt.Errorf("item %s: invalid category %q", params.ID, params.Category)
	}
	rarity := params.Rarity
	if rarity == "" {
		rarity = RarityCommon
	}
	if _, ok := validRarities[rarity]; !ok {
		return Definition{}, fmt.Errorf("item %s: invalid rarity %q", params.ID, params.Rarity)
	}

	maxStack := params.MaxStack
	if params.Stackable {
		if maxStack < 1 {
			return Definition{}, fmt.Errorf("item %s: stackable items require maxStack >= 1, got %d", params.ID, maxStack)
		}
	} else {
		if maxStack > 1 {
			return Definition{}, fmt.Errorf("item %s: non-stackable items cannot declare maxStack %d", params.ID, maxStack)
		}
		maxStack = 1
	}

	modifiers := make([]Modifier, len(params.Modifiers))
	copy(modifiers, params.Modifiers)
	sort.Slice(modifiers, func(i, j int) bool {
		if modifiers[i].Stat == modifiers[j].Stat {
			return modifiers[i].Magnitude < modifiers[j].Magnitude
		}
		return modifiers[i].Stat < modifiers[j].Stat
	})
	if len(modifiers) == 0 {
		modifiers = nil
	}

	return Definition{
		ID:          params.ID,
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		Rarity:      rarity,
		Stackable:   params.Stackable,
		MaxStack:    maxStack,
		Icon:        params.Icon,
		Modifiers:   modifiers,
		Effect:      params.Effect,
	}, nil
}

// ParseCategory validates a category string received from documents or the UI.
func ParseCategory(value string) (Category, bool) {
	category := Category(value)
	_, ok := validCategories[category]
	return category, ok
}

// ParseRarity validates a rarity string received from documents.
func ParseRarity(value string) (Rarity, bool) {
	rarity := Rarity(value)
	_, ok := validRarities[rarity]
	return rarity, ok
}
