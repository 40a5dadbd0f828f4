package worldmap

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Location is one declarative world entry. The UI core never interprets
// locations beyond resolving their position hints; the world-generation
// system consumes the rest.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Biome       string `json:"biome"`
	Hint        Hint   `json:"hint"`
}

// Catalog resolves locations by id.
type Catalog struct {
	locations map[string]Location
}

// NewCatalog builds a catalog from the builtin locations.
func NewCatalog() *Catalog {
	catalog := &Catalog{locations: make(map[string]Location, len(builtinLocations))}
	for _, loc := range builtinLocations {
		catalog.locations[loc.ID] = loc
	}
	return catalog
}

// LoadFile merges a designer-authored JSON document array into the catalog.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("worldmap: read %s: %w", path, err)
	}
	return c.LoadDocuments(path, data)
}

// LoadDocuments merges raw document JSON. The name is used in errors only.
func (c *Catalog) LoadDocuments(name string, data []byte) error {
	var docs []Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("worldmap: parse %s: %w", name, err)
	}
	staged := make([]Location, 0, len(docs))
	for i, doc := range docs {
		loc, err := doc.location()
		if err != nil {
			return fmt.Errorf("worldmap: %s entry %d: %w", name, i, err)
		}
		if _, exists := c.locations[loc.ID]; exists {
			return fmt.Errorf("worldmap: %s entry %d: duplicate location id %q", name, i, loc.ID)
		}
		staged = append(staged, loc)
	}
	for _, loc := range staged {
		c.locations[loc.ID] = loc
	}
	return nil
}

// LocationFor fetches a location by id.
func (c *Catalog) LocationFor(id string) (Location, bool) {
	loc, ok := c.locations[id]
	return loc, ok
}

// Locations returns every location sorted by identifier.
func (c *Catalog) Locations() []Location {
	locations := make([]Location, 0, len(c.locations))
	for _, loc := range c.locations {
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].ID < locations[j].ID
	})
	return locations
}

// ResolveAll maps every location onto a width×height world using a stream
// derived from the root seed, one substream per location so insertion order
// cannot shift existing placements.
func (c *Catalog) ResolveAll(rootSeed string, width, height float64) map[string][2]float64 {
	resolved := make(map[string][2]float64, len(c.locations))
	for id, loc := range c.locations {
		rng := NewRNG(rootSeed, "location:"+id)
		x, y := Resolve(loc.Hint, width, height, rng)
		resolved[id] = [2]float64{x, y}
	}
	return resolved
}

// Document represents a single location entry as it appears on disk.
type Document struct {
	ID          string  `json:"id" jsonschema:"title=Location ID,pattern=^[a-z0-9-]+$,minLength=1,required"`
	Name        string  `json:"name" jsonschema:"title=Display Name,minLength=1,required"`
	Description string  `json:"description,omitempty" jsonschema:"title=Description"`
	Biome       string  `json:"biome" jsonschema:"title=Biome,minLength=1,required"`
	Sector      string  `json:"sector" jsonschema:"title=Sector,enum=north,enum=northeast,enum=east,enum=southeast,enum=south,enum=southwest,enum=west,enum=northwest,enum=center,required"`
	Band        string  `json:"band,omitempty" jsonschema:"title=Distance Band,enum=near,enum=mid,enum=far,description=Ignored for the center sector."`
	Jitter      float64 `json:"jitter,omitempty" jsonschema:"title=Angular Jitter,description=Half-window in radians; capped at pi/8.,minimum=0"`
}

// FileDocuments represents the contents of config/catalog/locations.json.
type FileDocuments []Document

func (d Document) location() (Location, error) {
	if d.ID == "" {
		return Location{}, fmt.Errorf("location id must be provided")
	}
	if d.Name == "" {
		return Location{}, fmt.Errorf("location %s: name must be provided", d.ID)
	}
	if d.Biome == "" {
		return Location{}, fmt.Errorf("location %s: biome must be provided", d.ID)
	}
	hint := Hint{Sector: Sector(d.Sector), Band: Band(d.Band), Jitter: d.Jitter}
	if hint.Sector != SectorCenter && hint.Band == "" {
		return Location{}, fmt.Errorf("location %s: band must be provided for sector %q", d.ID, d.Sector)
	}
	if !hint.Valid() {
		return Location{}, fmt.Errorf("location %s: invalid hint sector=%q band=%q", d.ID, d.Sector, d.Band)
	}
	return Location{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Biome:       d.Biome,
		Hint:        hint,
	}, nil
}

var builtinLocations = []Location{
	{
		ID:    "emberfall-keep",
		Name:  "Emberfall Keep",
		Biome: "highland",
		Hint:  Hint{Sector: SectorCenter},
	},
	{
		ID:    "ashen-mines",
		Name:  "Ashen Mines",
		Biome: "cavern",
		Hint:  Hint{Sector: SectorNorth, Band: BandMid, Jitter: 0.2},
	},
	{
		ID:    "saltreed-harbor",
		Name:  "Saltreed Harbor",
		Biome: "coast",
		Hint:  Hint{Sector: SectorEast, Band: BandFar, Jitter: 0.15},
	},
	{
		ID:    "briarwood",
		Name:  "Briarwood",
		Biome: "forest",
		Hint:  Hint{Sector: SectorSouthwest, Band: BandNear, Jitter: 0.3},
	},
}
