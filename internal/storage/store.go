// Package storage loads and saves the edited file through an afero filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/vedit/internal/log"
	"github.com/zjrosen/vedit/internal/tracing"
)

const defaultFileMode fs.FileMode = 0o644

// FileStore reads and writes plain text files verbatim. It implements
// editor.Loader and editor.Saver.
type FileStore struct {
	fs afero.Fs
}

// NewFileStore creates a store over fsys. A nil fsys uses the OS filesystem.
func NewFileStore(fsys afero.Fs) *FileStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileStore{fs: fsys}
}

// Load returns the content of path. A missing file is an empty document.
func (s *FileStore) Load(ctx context.Context, path string) ([]byte, error) {
	_, span := otel.Tracer(tracing.TracerName).Start(ctx, tracing.SpanPrefixStorage+"load",
		trace.WithAttributes(attribute.String(tracing.AttrFilePath, path)))
	defer span.End()

	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(log.CatFile, "New file", "path", path)
		span.AddEvent(tracing.EventFileMissing)
		span.SetAttributes(attribute.Bool(tracing.AttrFileExists, false))
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatFile, "Load failed", err, "path", path)
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	span.SetAttributes(
		attribute.Bool(tracing.AttrFileExists, true),
		attribute.Int(tracing.AttrFileBytes, len(data)),
	)
	log.Debug(log.CatFile, "Loaded file", "path", path, "bytes", len(data))
	return data, nil
}

// Save writes content to path, keeping the permissions of an existing file.
// The content is written to a sibling temp file and renamed into place.
func (s *FileStore) Save(ctx context.Context, path string, content []byte) error {
	_, span := otel.Tracer(tracing.TracerName).Start(ctx, tracing.SpanPrefixStorage+"save",
		trace.WithAttributes(
			attribute.String(tracing.AttrFilePath, path),
			attribute.Int(tracing.AttrFileBytes, len(content)),
		))
	defer span.End()

	if err := s.save(path, content); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatFile, "Save failed", err, "path", path)
		return err
	}
	log.Debug(log.CatFile, "Saved file", "path", path, "bytes", len(content))
	return nil
}

func (s *FileStore) save(path string, content []byte) error {
	mode := defaultFileMode
	if info, err := s.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".vedit-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = s.fs.Remove(tmpName) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := s.fs.Chmod(tmpName, mode); err != nil && !errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
