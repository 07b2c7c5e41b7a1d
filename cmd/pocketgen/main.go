package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OCharnyshevich/undergroundbiome/internal/config"
	"github.com/OCharnyshevich/undergroundbiome/internal/export"
	"github.com/OCharnyshevich/undergroundbiome/internal/pipeline"
	"github.com/OCharnyshevich/undergroundbiome/internal/pocketconf"
	"github.com/OCharnyshevich/undergroundbiome/internal/pocketindex"
	"github.com/OCharnyshevich/undergroundbiome/internal/world"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/anvil"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "base terrain generator (default, flat)")
	flag.IntVar(&cfg.FlatHeight, "flat-height", cfg.FlatHeight, "surface height for the flat generator")
	flag.StringVar(&cfg.FlatBiome, "flat-biome", cfg.FlatBiome, "biome for the flat generator")
	flag.StringVar(&cfg.Dimension, "dimension", cfg.Dimension, "dimension name passed to pocket types")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "chunks to generate around the origin")
	flag.StringVar(&cfg.PocketsFile, "pockets", cfg.PocketsFile, "pocket definitions file")
	flag.BoolVar(&cfg.PocketsEnabled, "pockets-enabled", cfg.PocketsEnabled, "generate underground pockets")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	flag.StringVar(&cfg.IndexPath, "index", cfg.IndexPath, "SQLite index path (empty disables)")
	flag.StringVar(&cfg.RegionDir, "region", cfg.RegionDir, "Anvil region output directory (empty disables)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	if *configPath != "" {
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		fromFile, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("pocketgen failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	file, err := pocketconf.LoadFile(cfg.PocketsFile)
	if err != nil {
		return err
	}
	enabled := cfg.PocketsEnabled
	pockets, err := file.Generators(func() bool { return enabled })
	if err != nil {
		return err
	}
	for _, p := range pockets {
		log.Info("pocket type loaded", "generator", p.String(), "radius", p.FeatureRadius())
	}

	base, err := baseGenerator(cfg)
	if err != nil {
		return err
	}

	p := pipeline.New(base, cfg.Seed, cfg.Dimension, pockets, log)
	w := world.NewWorld(p)
	n := w.PreGenerateRadius(cfg.Radius)
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Info("chunks generated", "count", n, "seed", cfg.Seed, "dimension", cfg.Dimension)

	insts := p.Instances()
	path, err := export.WriteFile(cfg.OutDir, insts)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Info("instances written", "path", path, "parts", len(insts))

	if cfg.IndexPath != "" {
		idx, err := pocketindex.Open(cfg.IndexPath)
		if err != nil {
			return fmt.Errorf("open index: %w", err)
		}
		defer idx.Close()
		if err := idx.Record(ctx, cfg.Seed, insts); err != nil {
			return fmt.Errorf("record index: %w", err)
		}
		log.Info("index updated", "path", cfg.IndexPath)
	}

	if cfg.RegionDir != "" {
		n, err := anvil.SaveChunks(cfg.RegionDir, w.Chunks(), time.Now())
		if err != nil {
			return fmt.Errorf("save regions: %w", err)
		}
		log.Info("regions written", "dir", cfg.RegionDir, "files", n)
	}

	for _, s := range pipeline.Summarize(insts) {
		log.Info("pocket summary", "type", s.Type, "pockets", s.Pockets, "parts", s.Parts, "filled", s.Filled)
	}
	return nil
}

func baseGenerator(cfg *config.Config) (gen.Generator, error) {
	switch cfg.GeneratorType {
	case "default":
		return gen.NewTerrainGenerator(cfg.Seed), nil
	case "flat":
		b, ok := gen.BiomeByName(cfg.FlatBiome)
		if !ok {
			return nil, fmt.Errorf("%w: %s", pocketconf.ErrUnknownBiome, cfg.FlatBiome)
		}
		return gen.NewFlatGenerator(cfg.FlatHeight, b), nil
	}
	return nil, fmt.Errorf("unknown generator type %q", cfg.GeneratorType)
}
