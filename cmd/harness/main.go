// Command harness runs a scripted session against both engines and prints
// the resulting notifications, journal patches, and telemetry. Useful for
// eyeballing event payloads while iterating on the renderer contract.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"emberfall/ui/internal/dialogue"
	"emberfall/ui/internal/inventory"
	"emberfall/ui/internal/items"
	"emberfall/ui/internal/journal"
	"emberfall/ui/internal/telemetry"
	"emberfall/ui/internal/worldmap"
	"emberfall/ui/logging"
	"emberfall/ui/logging/sinks"
)

func main() {
	var seed string
	var itemsPath string
	flag.StringVar(&seed, "seed", "prototype", "root seed for the location placement preview")
	flag.StringVar(&itemsPath, "items", "", "optional designer item document to merge")
	flag.Parse()

	ctx := context.Background()

	router := logging.NewRouter(nil, logging.DefaultConfig(), []logging.NamedSink{
		{Name: "console", Sink: sinks.NewConsoleSink(os.Stdout, logging.ConsoleConfig{})},
	})
	defer router.Close(ctx)

	catalog := items.NewCatalog()
	if itemsPath != "" {
		if err := catalog.LoadFile(itemsPath); err != nil {
			fmt.Fprintf(os.Stderr, "harness: %v\n", err)
			os.Exit(1)
		}
	}

	counters := telemetry.NewCounters()
	uiJournal := journal.New(8, counters)

	inv := inventory.NewEngine(inventory.Config{
		SessionID: "harness",
		Catalog:   catalog,
		Publisher: router,
		Journal:   uiJournal,
		Telemetry: counters,
	})
	dlg := dialogue.NewEngine(dialogue.Config{
		SessionID: "harness",
		Publisher: router,
		Journal:   uiJournal,
		Telemetry: counters,
	})

	inv.AddItem(ctx, "healing-tonic", 25)
	inv.AddItem(ctx, "iron-sword", 1)
	inv.SelectSlot(0)
	inv.UseItem(ctx, 0)
	inv.MoveItem(ctx, 0, 1)

	dlg.Start(ctx, []dialogue.Line{
		{ID: "intro-1", Speaker: "Warden", Text: "The mines went quiet last night."},
		{ID: "intro-2", Speaker: "Warden", Text: "Will you look into it?", Choices: []dialogue.Choice{
			{ID: "accept", Text: "I'll go.", Action: "quest:ashen-mines"},
			{ID: "decline", Text: "Not now."},
		}},
	})
	dlg.Advance(ctx)
	dlg.Advance(ctx)
	dlg.FinishTyping(ctx)
	dlg.SelectChoice(ctx, "accept")

	uiJournal.RecordKeyframe(time.Now(), inv.Snapshot())

	patches := uiJournal.DrainPatches()
	fmt.Printf("\njournal: %d patches staged this session\n", len(patches))
	for _, patch := range patches {
		payload, _ := json.Marshal(patch.Payload)
		fmt.Printf("  kind=%d version=%d payload=%s\n", patch.Kind, patch.Version, payload)
	}

	placements := worldmap.NewCatalog().ResolveAll(seed, 100, 100)
	fmt.Printf("\nlocation placements (seed=%q):\n", seed)
	for id, pos := range placements {
		fmt.Printf("  %s -> (%.1f, %.1f)\n", id, pos[0], pos[1])
	}

	snapshot := counters.Snapshot()
	data, _ := json.MarshalIndent(snapshot, "", "  ")
	fmt.Printf("\ntelemetry: %s\n", data)
}
