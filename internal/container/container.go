// Package container provides dependency injection for the recipe-book application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"os"

	"fjacquet/recipe-book/internal/catalog"
	"fjacquet/recipe-book/internal/config"
	"fjacquet/recipe-book/internal/fileutils"
	"fjacquet/recipe-book/internal/importer"
	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/report"
	"fjacquet/recipe-book/internal/shopping"
	"fjacquet/recipe-book/internal/store"
	"fjacquet/recipe-book/internal/validation"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.RecipeStore
	catalog    *catalog.Catalog
	catalogErr error
	aggregator *shopping.Aggregator
	reporter   *report.Generator
	importer   *importer.XMLImporter
}

// NewContainer creates and wires all application dependencies, logging through a
// logrus logger configured from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger is NewContainer with an explicit logger.
//
// The recipe document is loaded eagerly; a document that exists but cannot be
// read fails construction. A missing or corrupt substitute catalog does not: the
// container holds an empty catalog and reports the problem through CatalogError.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	if err := fileutils.EnsureDirectoryExists(cfg.Data.Directory); err != nil {
		return nil, fmt.Errorf("failed to prepare data directory: %w", err)
	}

	recipesPath := cfg.RecipesPath()
	checkPermissions(recipesPath, logger)

	recipeStore := store.NewRecipeStore(recipesPath, logger)
	recipeStore.SetBackup(cfg.Data.BackupEnabled)
	if _, err := recipeStore.Load(); err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	substitutes, catalogErr := catalog.Load(cfg.SubstitutesPath(), logger)

	reporter := report.NewGenerator(logger)
	reporter.SetDelimiter(cfg.Delimiter())

	logger.Debug("Container initialized successfully",
		logging.F("recipes", recipeStore.Len()),
		logging.F("substitutes", substitutes.Len()),
		logging.F("backup_enabled", cfg.Data.BackupEnabled))

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      recipeStore,
		catalog:    substitutes,
		catalogErr: catalogErr,
		aggregator: shopping.NewAggregator(logger),
		reporter:   reporter,
		importer:   importer.NewXMLImporter(recipeStore, logger),
	}, nil
}

func checkPermissions(path string, logger logging.Logger) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if err := validation.IsValidFilePermissions(info.Mode().Perm()); err != nil {
		logger.WithError(err).Warn("Recipe document is readable by others", logging.F(logging.FieldFile, path))
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the recipe store, already loaded.
func (c *Container) GetStore() *store.RecipeStore {
	return c.store
}

// GetCatalog returns the substitute catalog. It is never nil.
func (c *Container) GetCatalog() *catalog.Catalog {
	return c.catalog
}

// CatalogError returns why the substitute catalog is empty, or nil if it loaded.
func (c *Container) CatalogError() error {
	return c.catalogErr
}

// GetAggregator returns the shopping list aggregator.
func (c *Container) GetAggregator() *shopping.Aggregator {
	return c.aggregator
}

// GetReporter returns the output generator.
func (c *Container) GetReporter() *report.Generator {
	return c.reporter
}

// GetImporter returns the XML recipe importer, bound to the store.
func (c *Container) GetImporter() *importer.XMLImporter {
	return c.importer
}

// Close performs cleanup of container resources.
// This method should be called when the container is no longer needed.
func (c *Container) Close() error {
	// Every write is persisted immediately, so there is nothing to flush.
	c.logger.Debug("Container closed")
	return nil
}
