package tarball

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	logger "github.com/sirupsen/logrus"
)

const (
	dirFileMode       = 0o755
	ownerWritableMode = 0o700
)

// NativeRepository creates and extracts tar.gz archives in-process.
type NativeRepository struct {
	level int
}

// NewNativeRepository creates a repository compressing at the given gzip level.
func NewNativeRepository(level int) *NativeRepository {
	return &NativeRepository{level: level}
}

// Compress archives every entry below srcDir into dest, names relative to srcDir.
func (it *NativeRepository) Compress(ctx context.Context, srcDir, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", dest, err)
	}
	defer out.Close()

	gz, err := gzip.NewWriterLevel(out, it.level)
	if err != nil {
		return fmt.Errorf("failed to create gzip writer: %w", err)
	}
	tw := tar.NewWriter(gz)

	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		rel, relErr := filepath.Rel(srcDir, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		return addEntry(tw, path, filepath.ToSlash(rel), d)
	})
	if walkErr != nil {
		return fmt.Errorf("failed to archive %s: %w", srcDir, walkErr)
	}

	if closeErr := tw.Close(); closeErr != nil {
		return fmt.Errorf("failed to finish tar stream: %w", closeErr)
	}
	if closeErr := gz.Close(); closeErr != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", closeErr)
	}
	return out.Close()
}

// Extract unpacks archive into destDir. Entries resolving outside destDir are rejected.
func (it *NativeRepository) Extract(ctx context.Context, archive, destDir string) error {
	in, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", archive, err)
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("failed to read gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		hdr, nextErr := tr.Next()
		if errors.Is(nextErr, io.EOF) {
			return nil
		}
		if nextErr != nil {
			return fmt.Errorf("failed to read tar entry: %w", nextErr)
		}

		if extractErr := extractEntry(tr, hdr, destDir); extractErr != nil {
			return extractErr
		}
	}
}

func addEntry(tw *tar.Writer, path, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	link := ""
	if info.Mode()&fs.ModeSymlink != 0 {
		if link, err = os.Readlink(path); err != nil {
			return err
		}
	}

	hdr, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return err
	}
	hdr.Name = name
	if d.IsDir() {
		hdr.Name += "/"
	}
	if writeErr := tw.WriteHeader(hdr); writeErr != nil {
		return writeErr
	}

	if !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(tw, f)
	return err
}

func extractEntry(tr *tar.Reader, hdr *tar.Header, destDir string) error {
	target, err := safeJoin(destDir, hdr.Name)
	if err != nil {
		return err
	}
	mode := hdr.FileInfo().Mode().Perm()

	switch hdr.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(target, mode|ownerWritableMode)
	case tar.TypeReg:
		if mkErr := os.MkdirAll(filepath.Dir(target), dirFileMode); mkErr != nil {
			return mkErr
		}
		f, openErr := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
		if openErr != nil {
			return openErr
		}
		//nolint:gosec // archives come from our own bucket
		if _, copyErr := io.Copy(f, tr); copyErr != nil {
			f.Close()
			return copyErr
		}
		return f.Close()
	case tar.TypeSymlink:
		if mkErr := os.MkdirAll(filepath.Dir(target), dirFileMode); mkErr != nil {
			return mkErr
		}
		return os.Symlink(hdr.Linkname, target)
	default:
		logger.Debugf("Skipping tar entry %q of type %c", hdr.Name, hdr.Typeflag)
		return nil
	}
}

// safeJoin resolves name below root and refuses paths escaping it.
func safeJoin(root, name string) (string, error) {
	target := filepath.Join(root, filepath.FromSlash(name))
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("tar entry %q escapes %s", name, root)
	}
	return target, nil
}
