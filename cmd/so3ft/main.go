package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"so3ft/internal/models"
	"so3ft/pkg/config"
	"so3ft/pkg/so3"
	"so3ft/pkg/wigner"
)

func main() {
	// Parse command line arguments
	inputPath := flag.String("input", "", "YAML file with the input signal (grid, shape, values)")
	outputPath := flag.String("output", "spectrum.yaml", "Output YAML filename for the spectral coefficients")
	configPath := flag.String("config", "so3ft.yaml", "Configuration file")
	bandwidth := flag.Int("bandwidth", 0, "Transform bandwidth (overrides the config file when positive)")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration to the config path and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write config file: %v", err)
		}
		fmt.Printf("Default configuration written to: %s\n", *configPath)
		return
	}

	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *bandwidth > 0 {
		cfg.Transform.Bandwidth = *bandwidth
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	in, err := readSignalFile(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read input signal: %v", err)
	}

	grid := gridFrom(in, cfg)
	shape := in.Shape
	if len(shape) == 0 {
		shape = []int{len(in.Values)}
	}
	x, err := so3.NewSignal(shape, in.Values)
	if err != nil {
		log.Fatalf("Signal shape %v does not match %d values: %v", shape, len(in.Values), err)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Transforming signal of shape %v on a grid of %d rotations (bandwidth %d)...\n",
			shape, len(grid), cfg.Transform.Bandwidth)
	}

	tx := so3.NewTransform(wigner.New(), cfg.Transform.CacheCapacity)
	startTime := time.Now()
	spectral, err := tx.Forward(x, cfg.Transform.Bandwidth, grid)
	if err != nil {
		log.Fatalf("Transform failed: %v", err)
	}
	elapsed := time.Since(startTime)

	out := &models.SpectrumFile{
		Bandwidth: cfg.Transform.Bandwidth,
		Shape:     spectral.Shape,
		Values:    spectral.Data,
	}
	if err := writeSpectrumFile(*outputPath, out); err != nil {
		log.Fatalf("Failed to write spectrum: %v", err)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Computed %d spectral coefficients per signal in %.3f seconds\n",
			spectral.NumCoefficients(), elapsed.Seconds())
		fmt.Printf("Spectrum saved to: %s\n", *outputPath)
	}
}

// gridFrom prefers the grid embedded in the input file and falls back to the
// configured generator.
func gridFrom(in *models.SignalFile, cfg *config.Config) so3.Grid {
	if len(in.Grid) > 0 {
		grid := make(so3.Grid, len(in.Grid))
		for i, t := range in.Grid {
			grid[i] = so3.Rotation{Alpha: t[0], Beta: t[1], Gamma: t[2]}
		}
		return grid
	}
	if cfg.Grid.Type == "equiangular" {
		return so3.EquiangularGrid(cfg.Grid.NAlpha, cfg.Grid.NBeta, cfg.Grid.NGamma)
	}
	return so3.NearIdentityGrid(cfg.Grid.MaxBeta, cfg.Grid.MaxGamma, cfg.Grid.NAlpha, cfg.Grid.NBeta, cfg.Grid.NGamma)
}

func readSignalFile(path string) (*models.SignalFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading signal file: %w", err)
	}
	in := &models.SignalFile{}
	if err := yaml.Unmarshal(data, in); err != nil {
		return nil, fmt.Errorf("error parsing signal file: %w", err)
	}
	if len(in.Values) == 0 {
		return nil, fmt.Errorf("signal file %s contains no values", path)
	}
	return in, nil
}

func writeSpectrumFile(path string, out *models.SpectrumFile) error {
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("error marshaling spectrum: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing spectrum file: %w", err)
	}
	return nil
}
