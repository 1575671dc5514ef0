// Package migration runs and publishes the goose migrations of the addresses table.
package migration

import (
	"bytes"
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"

	"addressable/config"
	"addressable/internal/util"
	"addressable/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

var (
	// ErrProductionGuard is returned when a schema change is attempted in production without force.
	ErrProductionGuard = errors.New("refusing to change the schema in production, use -force to continue")
)

// Runner applies migrations from the embedded set or from a published directory.
type Runner struct {
	source     fs.FS
	sourceName string
	production bool
	logger     *slog.Logger
}

// NewRunner picks the embedded migrations when autoload is on, the configured directory otherwise.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if cfg.Addresses.Migrations.Autoload {
		return newRunner(migrations.MigrationsFS, "embedded", cfg.IsProduction(), logger)
	}

	dir := cfg.Addresses.Migrations.Dir

	return newRunner(os.DirFS(dir), dir, cfg.IsProduction(), logger)
}

func newRunner(source fs.FS, sourceName string, production bool, logger *slog.Logger) *Runner {
	return &Runner{
		source:     source,
		sourceName: sourceName,
		production: production,
		logger:     logger,
	}
}

// Up applies every pending migration.
func (r *Runner) Up(ctx context.Context, db *sql.DB, force bool) error {
	if err := r.guard(force); err != nil {
		return err
	}

	files, err := r.files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		r.logger.Warn("No migrations found! Consider publishing them first", slog.String("source", r.sourceName))

		return nil
	}

	if err := r.prepare(); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}

// Down rolls back the latest migration.
func (r *Runner) Down(ctx context.Context, db *sql.DB, force bool) error {
	if err := r.guard(force); err != nil {
		return err
	}

	if err := r.prepare(); err != nil {
		return err
	}

	if err := goose.DownContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	return nil
}

// Status prints the state of every migration through goose's logger.
func (r *Runner) Status(ctx context.Context, db *sql.DB) error {
	if err := r.prepare(); err != nil {
		return err
	}

	if err := goose.StatusContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to read migration status")
	}

	return nil
}

func (r *Runner) guard(force bool) error {
	if r.production && !force {
		return ErrProductionGuard
	}

	return nil
}

func (r *Runner) prepare() error {
	goose.SetBaseFS(r.source)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	return nil
}

func (r *Runner) files() ([]string, error) {
	files, err := sqlFiles(r.source)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return files, err
}

func sqlFiles(source fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(source, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list migrations")
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".sql" {
			files = append(files, entry.Name())
		}
	}
	slices.Sort(files)

	return files, nil
}

// PublishStatus describes what Publish did with one file.
type PublishStatus string

const (
	PublishWritten     PublishStatus = "written"
	PublishUnchanged   PublishStatus = "unchanged"
	PublishKept        PublishStatus = "kept"
	PublishOverwritten PublishStatus = "overwritten"
)

// PublishedFile is one line of the publish report.
type PublishedFile struct {
	Name   string
	Size   int64
	Status PublishStatus
}

// Publish copies the embedded migrations into dir. Files with the same checksum are
// left alone; locally edited files are only replaced when force is set.
func Publish(dir string, force bool) ([]PublishedFile, error) {
	return publish(migrations.MigrationsFS, dir, force)
}

func publish(source fs.FS, dir string, force bool) ([]PublishedFile, error) {
	files, err := sqlFiles(source)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", dir)
	}

	report := make([]PublishedFile, 0, len(files))
	for _, name := range files {
		content, err := fs.ReadFile(source, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}

		status, err := publishFile(filepath.Join(dir, name), content, force)
		if err != nil {
			return nil, err
		}

		report = append(report, PublishedFile{Name: name, Size: int64(len(content)), Status: status})
	}

	return report, nil
}

func publishFile(target string, content []byte, force bool) (PublishStatus, error) {
	status := PublishWritten

	existing, err := util.FileChecksum(target)
	switch {
	case err == nil:
		wanted, sumErr := util.Checksum(bytes.NewReader(content))
		if sumErr != nil {
			return "", sumErr
		}
		if existing == wanted {
			return PublishUnchanged, nil
		}
		if !force {
			return PublishKept, nil
		}
		status = PublishOverwritten
	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", target)
	}

	return status, nil
}
