package datasets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/JaimeStill/climate-atlas/internal/config"
	"github.com/JaimeStill/climate-atlas/pkg/lifecycle"
)

// filesystem implements System over a local directory.
type filesystem struct {
	basePath string
	logger   *slog.Logger
}

// New creates a filesystem dataset system.
// The base path is resolved to an absolute path during construction.
// The directory is not required to exist.
func New(cfg *config.DatasetsConfig, logger *slog.Logger) (System, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	absPath, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		basePath: absPath,
		logger:   logger.With("system", "datasets"),
	}, nil
}

func (f *filesystem) BasePath() string {
	return f.basePath
}

func (f *filesystem) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting datasets system", "base_path", f.basePath)

	lc.OnStartup(func() {
		info, err := os.Stat(f.basePath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			f.logger.Warn("data directory missing; /data requests will answer 404", "base_path", f.basePath)
		case err != nil:
			f.logger.Warn("data directory unavailable", "base_path", f.basePath, "error", err)
		case !info.IsDir():
			f.logger.Warn("data path is not a directory", "base_path", f.basePath)
		default:
			f.logger.Info("data directory ready")
		}
	})

	return nil
}

func (f *filesystem) Open(ctx context.Context, key string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := f.fullPath(key)
	if err != nil {
		return nil, err
	}

	path, err = f.resolve(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, mapFSError(err, "open file")
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, mapFSError(err, "stat file")
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, ErrNotFound
	}

	return &File{
		Dataset: Dataset{
			Key:     filepath.ToSlash(filepath.Clean(filepath.FromSlash(key))),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		},
		ReadSeekCloser: file,
	}, nil
}

func (f *filesystem) List(ctx context.Context) ([]Dataset, error) {
	result := []Dataset{}

	err := filepath.WalkDir(f.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == f.basePath && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if path != f.basePath && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}

		result = append(result, Dataset{
			Key:     relKey(f.basePath, path),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, mapFSError(err, "walk data directory")
	}

	return result, nil
}

// fullPath resolves key beneath the base path. Keys use forward slashes.
func (f *filesystem) fullPath(key string) (string, error) {
	if key == "" || strings.ContainsRune(key, 0) {
		return "", ErrInvalidKey
	}

	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) ||
		filepath.IsAbs(cleaned) || filepath.VolumeName(cleaned) != "" {
		return "", ErrInvalidKey
	}

	fullPath := filepath.Join(f.basePath, cleaned)

	if !strings.HasPrefix(fullPath, f.basePath+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}

	return fullPath, nil
}

// resolve follows symlinks in path and rejects targets outside the base path.
func (f *filesystem) resolve(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", mapFSError(err, "resolve path")
	}
	base, err := filepath.EvalSymlinks(f.basePath)
	if err != nil {
		return "", mapFSError(err, "resolve base_path")
	}
	if !strings.HasPrefix(resolved, base+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return resolved, nil
}

func mapFSError(err error, op string) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, syscall.ENOTDIR):
		return ErrNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func relKey(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}
