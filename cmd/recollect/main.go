// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/recollect"
	"github.com/poiesic/recollect/ai"
	"github.com/poiesic/recollect/api"
	"github.com/poiesic/recollect/config"
	"github.com/poiesic/recollect/core"
	"github.com/poiesic/recollect/enrichment"
	"github.com/poiesic/recollect/platform"
	"github.com/poiesic/recollect/platform/instagram"
	"github.com/poiesic/recollect/reconcile"
)

func main() {
	app := &cli.App{
		Name:  "recollect",
		Usage: "Enrich and organize saved media content",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the content HTTP API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "bind",
						Usage: "Listen address (overrides config)",
					},
				},
			},
			{
				Name:   "enrich",
				Usage:  "Extract text from a media file and classify it",
				Action: enrichCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the image or audio file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Payload kind: image or audio",
						Value: "image",
					},
				},
			},
			{
				Name:   "save",
				Usage:  "Create or update a content record",
				Action: saveCommand,
				Flags: append(ownerFlags(),
					&cli.StringFlag{
						Name:     "post",
						Usage:    "External post ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "media-type",
						Usage: "IMAGE, VIDEO, or ALBUM (required on first save)",
					},
					&cli.StringFlag{Name: "media-url", Usage: "Media URL"},
					&cli.StringFlag{Name: "permalink", Usage: "Post permalink"},
					&cli.StringFlag{Name: "text", Usage: "Extracted text"},
					&cli.StringFlag{Name: "transcription", Usage: "Audio transcription"},
					&cli.StringSliceFlag{Name: "category", Usage: "Category (repeatable)"},
					&cli.StringSliceFlag{Name: "tag", Usage: "Tag (repeatable)"},
					&cli.StringFlag{Name: "notes", Usage: "Free-form notes"},
				),
			},
			{
				Name:   "saved",
				Usage:  "List saved posts with their enrichment state",
				Action: savedCommand,
				Flags:  ownerFlags(),
			},
			{
				Name:   "process",
				Usage:  "Enrich all unprocessed saved posts",
				Action: processCommand,
				Flags: append(ownerFlags(),
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size (overrides config)",
					},
				),
			},
			{
				Name:   "show",
				Usage:  "Print a content record",
				Action: showCommand,
				Flags:  append(ownerFlags(), idFlag()),
			},
			{
				Name:   "patch",
				Usage:  "Update categories, tags, or notes of a record",
				Action: patchCommand,
				Flags: append(ownerFlags(), idFlag(),
					&cli.StringSliceFlag{Name: "category", Usage: "Category (repeatable)"},
					&cli.StringSliceFlag{Name: "tag", Usage: "Tag (repeatable)"},
					&cli.StringFlag{Name: "notes", Usage: "Free-form notes"},
				),
			},
			{
				Name:   "delete",
				Usage:  "Delete a content record",
				Action: deleteCommand,
				Flags:  append(ownerFlags(), idFlag()),
			},
			{
				Name:   "init-config",
				Usage:  "Write a sample configuration file",
				Action: initConfigCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination for the configuration file",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ownerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "owner",
			Aliases:  []string{"o"},
			Usage:    "Owner the records belong to",
			Required: true,
		},
	}
}

func idFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "id",
		Usage:    "Content record ID",
		Required: true,
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, _, _, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func aiConfigFrom(cfg *config.Config) *ai.Config {
	return ai.NewConfig(
		ai.WithHost(cfg.AI.Host),
		ai.WithTranscriptionHost(cfg.AI.TranscriptionHost),
		ai.WithClassifierModel(cfg.AI.ClassifierModel),
		ai.WithVisionModel(cfg.AI.VisionModel),
		ai.WithTranscriptionModel(cfg.AI.TranscriptionModel),
		ai.WithLanguage(cfg.AI.Language),
		ai.WithAPIToken(cfg.AI.APIToken),
	)
}

func openDatabase(cfg *config.Config) (*recollect.Database, error) {
	opts := []recollect.DatabaseOption{recollect.WithAIConfig(aiConfigFrom(cfg))}
	if cfg.Storage.InMemory {
		opts = append(opts, recollect.WithInMemoryStorage())
	}
	db, err := recollect.NewDatabase(cfg.Storage.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func newSource(cfg *config.Config) platform.SavedPostSource {
	if cfg.Platform.Simulated {
		return platform.NewSimulatedSource()
	}
	return instagram.New(cfg.Platform.AccessToken, cfg.Platform.BaseURL)
}

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	enricher, err := db.NewOrchestrator()
	if err != nil {
		return err
	}

	handler := api.NewHandler(api.Deps{
		Repository: db.ContentRepository(),
		Enricher:   enricher,
		Source:     newSource(cfg),
	})

	bind := cfg.Server.Bind
	if c.IsSet("bind") {
		bind = c.String("bind")
	}

	slog.Info("starting content API", "bind", bind)
	return http.ListenAndServe(bind, handler)
}

func enrichCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	var kind enrichment.PayloadKind
	switch c.String("kind") {
	case "image":
		kind = enrichment.PayloadKindImage
	case "audio":
		kind = enrichment.PayloadKindAudio
	default:
		return fmt.Errorf("invalid kind %q: must be image or audio", c.String("kind"))
	}

	payload, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	enricher, err := db.NewOrchestrator()
	if err != nil {
		return err
	}

	result, err := enricher.Enrich(context.Background(), kind, payload)
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	fmt.Printf("Text:\n%s\n\n", result.Text)
	fmt.Printf("Categories: %s\n", strings.Join(result.Suggestions.Categories, ", "))
	fmt.Printf("Tags: %s\n", strings.Join(result.Suggestions.Tags, ", "))
	return nil
}

func saveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	fields := core.RecordUpsert{
		MediaURL:  c.String("media-url"),
		Permalink: c.String("permalink"),
	}
	if c.IsSet("media-type") {
		mediaType, err := core.ParseMediaType(c.String("media-type"))
		if err != nil {
			return fmt.Errorf("invalid media type %q", c.String("media-type"))
		}
		fields.MediaType = mediaType
	}
	if c.IsSet("text") {
		text := c.String("text")
		fields.ExtractedText = &text
	}
	if c.IsSet("transcription") {
		transcription := c.String("transcription")
		fields.Transcription = &transcription
	}
	if c.IsSet("category") {
		categories := c.StringSlice("category")
		fields.Categories = &categories
	}
	if c.IsSet("tag") {
		tags := c.StringSlice("tag")
		fields.Tags = &tags
	}
	if c.IsSet("notes") {
		notes := c.String("notes")
		fields.Notes = &notes
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	record, err := db.ContentRepository().Upsert(context.Background(), c.String("owner"), c.String("post"), fields)
	if err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	return printRecord(record)
}

func savedCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	owner := c.String("owner")

	posts, err := newSource(cfg).SavedPosts(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to list saved posts: %w", err)
	}
	records, err := db.ContentRepository().ListByOwner(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	for _, view := range reconcile.Posts(posts, records) {
		status := " "
		if view.Processed {
			status = "*"
		}
		fmt.Printf("%s %-12s %-6s %s\n", status, view.Id, view.MediaType, view.Permalink)
	}
	return nil
}

func processCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []enrichment.BatchOption
	poolSize := cfg.Batch.PoolSize
	if c.IsSet("pool-size") {
		poolSize = c.Int("pool-size")
	}
	if poolSize > 0 {
		opts = append(opts, enrichment.WithPoolSize(poolSize))
	}

	processor, err := db.NewBatchProcessor(newSource(cfg), platform.NewHTTPFetcher(nil), opts...)
	if err != nil {
		return err
	}
	defer processor.Release()

	report, err := processor.Process(context.Background(), c.String("owner"))
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	fmt.Printf("Processed: %d\nFailed: %d\nSkipped: %d\n", report.Processed, report.Failed, report.Skipped)
	return nil
}

func showCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.String("id"))
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	record, err := db.ContentRepository().GetRecord(context.Background(), c.String("owner"), id)
	if err != nil {
		return err
	}
	return printRecord(record)
}

func patchCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.String("id"))
	if err != nil {
		return err
	}

	var patch core.RecordPatch
	if c.IsSet("category") {
		categories := c.StringSlice("category")
		patch.Categories = &categories
	}
	if c.IsSet("tag") {
		tags := c.StringSlice("tag")
		patch.Tags = &tags
	}
	if c.IsSet("notes") {
		notes := c.String("notes")
		patch.Notes = &notes
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	record, err := db.ContentRepository().Patch(context.Background(), c.String("owner"), id, patch)
	if err != nil {
		return fmt.Errorf("patch failed: %w", err)
	}
	return printRecord(record)
}

func deleteCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.String("id"))
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ContentRepository().Delete(context.Background(), c.String("owner"), id); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	fmt.Println("Deleted")
	return nil
}

func initConfigCommand(c *cli.Context) error {
	target := c.String("path")
	if target == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
		target = defaultPath
	} else {
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		target = expanded
	}

	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("config file already exists at %s", target)
	}
	if err := config.CreateSample(target); err != nil {
		return err
	}
	fmt.Printf("Wrote sample configuration to %s\n", target)
	return nil
}

func parseID(raw string) (core.ID, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q", raw)
	}
	return core.ID(id), nil
}

func printRecord(record *core.ContentRecord) error {
	out := map[string]any{
		"id":             strconv.FormatUint(uint64(record.Id), 10),
		"externalPostId": record.ExternalPostId,
		"mediaType":      record.MediaType.String(),
		"mediaUrl":       record.MediaURL,
		"permalink":      record.Permalink,
		"extractedText":  record.ExtractedText,
		"transcription":  record.Transcription,
		"categories":     record.Categories,
		"tags":           record.Tags,
		"notes":          record.Notes,
		"savedAt":        record.SavedAt,
		"lastProcessed":  record.LastProcessed,
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
