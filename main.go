package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/bundle"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/dataset"
)

// Demo entry point: generates one seeded patient story and prints its
// bundle. The full CLI lives in cmd/fhirgen.
func main() {
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr })).
		With().Timestamp().Logger()

	seed := int64(42)
	ds, err := dataset.NewDatasetService(log).GenerateDataset(1, dataset.Options{Seed: &seed})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate dataset")
	}

	assembled, err := bundle.NewBundleService(log).Assemble(ds.AllRecords(), bundle.DefaultType)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to assemble bundle")
	}

	pretty, err := json.MarshalIndent(assembled, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode bundle")
	}

	fmt.Println(string(pretty))
}
