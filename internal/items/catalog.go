package items

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Catalog resolves item definitions by id. The builtin set ships with the
// binary; designer documents loaded on top may only add new ids.
type Catalog struct {
	defs map[ID]Definition
}

// NewCatalog builds a catalog from the builtin definitions.
func NewCatalog() *Catalog {
	catalog := &Catalog{defs: make(map[ID]Definition, len(builtinParams))}
	for _, params := range builtinParams {
		def, err := NewDefinition(params)
		if err != nil {
			panic(err)
		}
		catalog.defs[def.ID] = def
	}
	return catalog
}

// LoadFile merges a designer-authored JSON document array into the catalog.
// Ids already present, builtin or loaded, are rejected so documents cannot
// silently shadow each other.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return c.LoadDocuments(path, data)
}

// LoadDocuments merges raw document JSON. The name is used in errors only.
func (c *Catalog) LoadDocuments(name string, data []byte) error {
	var docs []Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	staged := make([]Definition, 0, len(docs))
	for i, doc := range docs {
		def, err := doc.definition()
		if err != nil {
			return fmt.Errorf("catalog: %s entry %d: %w", name, i, err)
		}
		if _, exists := c.defs[def.ID]; exists {
			return fmt.Errorf("catalog: %s entry %d: duplicate item id %q", name, i, def.ID)
		}
		staged = append(staged, def)
	}
	for _, def := range staged {
		c.defs[def.ID] = def
	}
	return nil
}

// DefinitionFor fetches the definition for a given item id.
func (c *Catalog) DefinitionFor(id ID) (Definition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

// Definitions returns the list of definitions sorted by identifier.
func (c *Catalog) Definitions() []Definition {
	defs := make([]Definition, 0, len(c.defs))
	for _, def := range c.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Len reports how many definitions the catalog holds.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// FuzzyFind resolves a player-typed name to definitions, exact name matches
// first, then closest by edit distance within a length-scaled budget. Feeds
// the inventory screen's search box.
func (c *Catalog) FuzzyFind(query string) []Definition {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	type scored struct {
		def  Definition
		dist int
	}
	matches := make([]scored, 0, 4)
	for _, def := range c.defs {
		name := strings.ToLower(def.Name)
		if name == needle {
			return []Definition{def}
		}
		dist := levenshtein.ComputeDistance(needle, name)
		if dist <= fuzzyLimit(len(name)) {
			matches = append(matches, scored{def: def, dist: dist})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist == matches[j].dist {
			return matches[i].def.ID < matches[j].def.ID
		}
		return matches[i].dist < matches[j].dist
	})
	defs := make([]Definition, 0, len(matches))
	for _, m := range matches {
		defs = append(defs, m.def)
	}
	return defs
}

func fuzzyLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

var builtinParams = []Params{
	{
		ID:          "iron-sword",
		Name:        "Iron Sword",
		Description: "A dependable blade for close encounters.",
		Category:    CategoryWeapon,
		Rarity:      RarityCommon,
		Icon:        "icons/iron-sword",
		Modifiers:   []Modifier{{Stat: "attack", Magnitude: 6}},
	},
	{
		ID:          "ember-staff",
		Name:        "Ember Staff",
		Description: "Channels latent heat into a focused bolt.",
		Category:    CategoryWeapon,
		Rarity:      RarityRare,
		Icon:        "icons/ember-staff",
		Modifiers:   []Modifier{{Stat: "attack", Magnitude: 9}, {Stat: "focus", Magnitude: 3}},
	},
	{
		ID:          "leather-vest",
		Name:        "Leather Vest",
		Description: "Simple body armor providing modest protection.",
		Category:    CategoryArmor,
		Rarity:      RarityCommon,
		Icon:        "icons/leather-vest",
		Modifiers:   []Modifier{{Stat: "defense", Magnitude: 4}},
	},
	{
		ID:          "warden-plate",
		Name:        "Warden Plate",
		Description: "Heavy plate worn by the ridge wardens.",
		Category:    CategoryArmor,
		Rarity:      RarityEpic,
		Icon:        "icons/warden-plate",
		Modifiers:   []Modifier{{Stat: "defense", Magnitude: 11}},
	},
	{
		ID:          "healing-tonic",
		Name:        "Healing Tonic",
		Description: "Restores a small amount of health when consumed.",
		Category:    CategoryConsumable,
		Rarity:      RarityCommon,
		Stackable:   true,
		MaxStack:    10,
		Icon:        "icons/healing-tonic",
		Effect:      "restore_health",
	},
	{
		ID:          "stamina-brew",
		Name:        "Stamina Brew",
		Description: "A bitter draught that steadies tired legs.",
		Category:    CategoryConsumable,
		Rarity:      RarityUncommon,
		Stackable:   true,
		MaxStack:    10,
		Icon:        "icons/stamina-brew",
		Effect:      "restore_stamina",
	},
	{
		ID:          "copper-ore",
		Name:        "Copper Ore",
		Description: "Raw ore ready for the smelter.",
		Category:    CategoryMaterial,
		Rarity:      RarityCommon,
		Stackable:   true,
		MaxStack:    50,
		Icon:        "icons/copper-ore",
	},
	{
		ID:          "ember-shard",
		Name:        "Ember Shard",
		Description: "A warm crystal prized by enchanters.",
		Category:    CategoryMaterial,
		Rarity:      RarityRare,
		Stackable:   true,
		MaxStack:    20,
		Icon:        "icons/ember-shard",
	},
	{
		ID:          "sealed-letter",
		Name:        "Sealed Letter",
		Description: "Bears the sigil of the Emberfall council.",
		Category:    CategoryQuest,
		Rarity:      RarityUncommon,
		Icon:        "icons/sealed-letter",
	},
	{
		ID:          "lodestone-charm",
		Name:        "Lodestone Charm",
		Description: "A trinket that hums near buried metal.",
		Category:    CategoryMisc,
		Rarity:      RarityLegendary,
		Icon:        "icons/lodestone-charm",
		Modifiers:   []Modifier{{Stat: "luck", Magnitude: 2}},
	},
}
