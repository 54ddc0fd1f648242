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


package recollect

import (
	"log/slog"

	"github.com/poiesic/recollect/ai"
	"github.com/poiesic/recollect/ai/openai"
	"github.com/poiesic/recollect/enrichment"
	"github.com/poiesic/recollect/platform"
	"github.com/poiesic/recollect/storage"
	"github.com/poiesic/recollect/storage/badger"
)

// Database wires the storage backend and the AI provider together and
// hands out the pipeline components built on them.
type Database struct {
	backend     *badger.Backend
	contentRepo storage.ContentRepository
	provider    ai.Provider
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig overrides the default AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithInMemoryStorage keeps all records in memory. Useful for tests and
// demos; data is lost on close.
func WithInMemoryStorage() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens the content store at filePath and connects the AI
// provider.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	contentRepo, err := badger.NewContentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		contentRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:     backend,
		contentRepo: contentRepo,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

// Close shuts down the provider, the repository, and the backend.
func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.contentRepo.Close(); err != nil {
		db.logger.Error("error closing content repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ContentRepository returns the content record store.
func (db *Database) ContentRepository() storage.ContentRepository {
	return db.contentRepo
}

// Provider returns the AI provider.
func (db *Database) Provider() ai.Provider {
	return db.provider
}

// NewOrchestrator builds an enrichment orchestrator on the database's
// provider.
func (db *Database) NewOrchestrator(opts ...enrichment.OrchestratorOption) (*enrichment.Orchestrator, error) {
	return enrichment.NewOrchestrator(db.provider, opts...)
}

// NewBatchProcessor builds a batch processor on the database's repository
// and provider.
func (db *Database) NewBatchProcessor(source platform.SavedPostSource, fetcher platform.MediaFetcher, opts ...enrichment.BatchOption) (*enrichment.BatchProcessor, error) {
	orchestrator, err := db.NewOrchestrator()
	if err != nil {
		return nil, err
	}
	return enrichment.NewBatchProcessor(db.contentRepo, source, fetcher, orchestrator, opts...)
}
