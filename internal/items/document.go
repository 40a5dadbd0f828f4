package items

// Document represents a single item entry as it appears on disk. The struct
// is exported so tooling (e.g. the schema generator) can reflect over the
// configuration contract shared with designers.
type Document struct {
	ID          string     `json:"id" jsonschema:"title=Item ID,description=Stable identifier referenced by gameplay systems.,pattern=^[a-z0-9-]+$,minLength=1,required"`
	Name        string     `json:"name" jsonschema:"title=Display Name,minLength=1,required"`
	Description string     `json:"description,omitempty" jsonschema:"title=Description,description=Flavor text shown in the inventory detail panel."`
	Category    string     `json:"category" jsonschema:"title=Category,enum=weapon,enum=armor,enum=consumable,enum=material,enum=quest,enum=misc,required"`
	Rarity      string     `json:"rarity,omitempty" jsonschema:"title=Rarity,enum=common,enum=uncommon,enum=rare,enum=epic,enum=legendary,description=Defaults to common when omitted."`
	Stackable   bool       `json:"stackable,omitempty" jsonschema:"title=Stackable"`
	MaxStack    int        `json:"maxStack,omitempty" jsonschema:"title=Max Stack,description=Required for stackable items; must be omitted or 1 otherwise.,minimum=1"`
	Icon        string     `json:"icon,omitempty" jsonschema:"title=Icon Reference"`
	Modifiers   []Modifier `json:"modifiers,omitempty" jsonschema:"title=Stat Modifiers"`
	Effect      string     `json:"effect,omitempty" jsonschema:"title=Effect Token,description=Interpreted by the effects system when the item is used."`
}

// FileDocuments represents the contents of config/catalog/items.json. The
// loader accepts the canonical array format authored by designers.
type FileDocuments []Document

func (d Document) definition() (Definition, error) {
	params := Params{
		ID:          ID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Category:    Category(d.Category),
		Rarity:      Rarity(d.Rarity),
		Stackable:   d.Stackable,
		MaxStack:    d.MaxStack,
		Icon:        d.Icon,
		Modifiers:   d.Modifiers,
		Effect:      d.Effect,
	}
	return NewDefinition(params)
}
