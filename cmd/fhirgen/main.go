package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinsynth/fhirgen/cmd/fhirgen/api"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/bundle"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/client"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/dataset"
	"github.com/clinsynth/fhirgen/cmd/fhirgen/export"
	"github.com/clinsynth/fhirgen/models/fhir"
)

var (
	verbose bool
	log     zerolog.Logger
)

func main() {
	// A missing .env is fine; env vars only provide flag defaults.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "fhirgen",
		Short:         "Synthetic FHIR data generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr })).
				With().Timestamp().Logger().Level(level)
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newCreatePatientCmd())
	root.AddCommand(newCreateDatasetCmd())
	root.AddCommand(newBundleCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newPushCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// seedOption translates a --seed flag into orchestrator options,
// distinguishing "not set" from an explicit zero.
func seedOption(cmd *cobra.Command, seed int64) dataset.Options {
	opts := dataset.Options{}
	if cmd.Flags().Changed("seed") {
		opts.Seed = &seed
	}
	return opts
}

func newCreatePatientCmd() *cobra.Command {
	var (
		output string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "create-patient",
		Short: "Generate a single patient resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := dataset.NewDatasetService(log)
			ds, err := svc.GenerateDataset(1, seedOption(cmd, seed))
			if err != nil {
				return err
			}

			for _, record := range ds.Stories[0].Records {
				patient, ok := record.(fhir.Patient)
				if !ok {
					continue
				}
				encoded, err := json.MarshalIndent(patient, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode patient: %w", err)
				}
				if output == "" {
					fmt.Println(string(encoded))
					return nil
				}
				if err := os.MkdirAll(filepath.Dir(output), os.ModePerm); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
				if err := os.WriteFile(output, encoded, 0o644); err != nil {
					return fmt.Errorf("failed to write patient: %w", err)
				}
				log.Info().Str("path", output).Msg("Wrote patient")
				return nil
			}
			return fmt.Errorf("no patient record survived validation")
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "path to write the patient JSON (defaults to stdout)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for deterministic output")
	return cmd
}

func newCreateDatasetCmd() *cobra.Command {
	var (
		count      int
		output     string
		seed       int64
		csvSummary bool
	)

	cmd := &cobra.Command{
		Use:   "create-dataset",
		Short: "Generate a dataset of synthetic patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := dataset.NewDatasetService(log)
			ds, err := svc.GenerateDataset(count, seedOption(cmd, seed))
			if err != nil {
				return err
			}

			exporter := export.NewExportService(log)
			if err := exporter.ExportDataset(ds, output); err != nil {
				return err
			}
			if csvSummary {
				if err := exporter.ExportCSVSummary(ds, filepath.Join(output, "summary.csv")); err != nil {
					return err
				}
			}

			log.Info().
				Int("patients", len(ds.Stories)).
				Int("skipped", ds.Skipped).
				Str("output", output).
				Msg("Dataset generation complete")
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "number of patients to generate")
	cmd.Flags().StringVar(&output, "output", envOr("FHIRGEN_OUTPUT_DIR", "output"), "directory to store output")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for deterministic output")
	cmd.Flags().BoolVar(&csvSummary, "csv", false, "export CSV summary as well")
	return cmd
}

func newBundleCmd() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Create a bundle from previously generated resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			documents, err := loadResourcesFromDir(input)
			if err != nil {
				return err
			}

			assembled := bundle.NewBundleService(log).AssembleRaw(documents, bundle.DefaultType)
			encoded, err := json.MarshalIndent(assembled, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode bundle: %w", err)
			}
			if err := os.MkdirAll(filepath.Dir(output), os.ModePerm); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(output, encoded, 0o644); err != nil {
				return fmt.Errorf("failed to write bundle: %w", err)
			}

			log.Info().Str("path", output).Int("resources", len(documents)).Msg("Wrote bundle")
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "directory containing patient folders")
	cmd.Flags().StringVar(&output, "output", filepath.Join("output", "synthetic_bundle.json"), "path for the bundle file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve freshly generated synthetic bundles over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			router := api.NewSyntheticRouter(log)
			log.Info().Str("addr", addr).Msg("Listening")
			return http.ListenAndServe(addr, router.SetupRoutes())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr("FHIRGEN_ADDR", ":8080"), "listen address")
	return cmd
}

func newPushCmd() *cobra.Command {
	var (
		input  string
		target string
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload a bundle file to a FHIR endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.NewUploadClient(target, log).PushFile(input)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "bundle JSON file to upload")
	cmd.Flags().StringVar(&target, "target", "", "endpoint URL")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// loadResourcesFromDir collects non-bundle resource documents from a
// directory tree, skipping malformed or untyped JSON with a warning.
// Files are visited in sorted order so re-bundling is stable.
func loadResourcesFromDir(dir string) ([]json.RawMessage, error) {
	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(paths)

	var documents []json.RawMessage
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var probe struct {
			ResourceType string `json:"resourceType"`
		}
		if err := json.Unmarshal(content, &probe); err != nil {
			log.Warn().Str("file", path).Msg("Skipping invalid JSON file")
			continue
		}
		if probe.ResourceType == "Bundle" {
			continue
		}
		if probe.ResourceType == "" {
			log.Warn().Str("file", path).Msg("Skipping file without a resourceType")
			continue
		}
		documents = append(documents, json.RawMessage(content))
	}
	return documents, nil
}
