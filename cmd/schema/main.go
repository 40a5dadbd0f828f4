// Command schema emits JSON Schemas for the designer-authored catalog
// documents so items.json and locations.json can be validated in editors and
// CI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"emberfall/ui/internal/items"
	"emberfall/ui/internal/worldmap"
)

func main() {
	var itemsOut, locationsOut string
	flag.StringVar(&itemsOut, "items-out", "", "path to write the item catalog schema")
	flag.StringVar(&locationsOut, "locations-out", "", "path to write the location catalog schema")
	flag.Parse()

	if itemsOut == "" && locationsOut == "" {
		fmt.Fprintln(os.Stderr, "at least one of --items-out or --locations-out is required")
		os.Exit(1)
	}

	if itemsOut != "" {
		schema := buildItemsSchema()
		if err := writeSchema(itemsOut, schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write items schema: %v\n", err)
			os.Exit(1)
		}
	}
	if locationsOut != "" {
		schema := buildLocationsSchema()
		if err := writeSchema(locationsOut, schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write locations schema: %v\n", err)
			os.Exit(1)
		}
	}
}

func buildItemsSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(items.FileDocuments))
	schema.Title = "Emberfall Item Catalog"
	schema.Description = "Validates designer-authored entries in config/catalog/items.json"
	return schema
}

func buildLocationsSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(worldmap.FileDocuments))
	schema.Title = "Emberfall Location Catalog"
	schema.Description = "Validates designer-authored entries in config/catalog/locations.json"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
