package lunacy

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/freetint-cli/freetint/filesystem"
	"github.com/freetint-cli/freetint/key"
	"github.com/freetint-cli/freetint/util"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// entryName resolves the configured archive member holding the document model.
func entryName() string {
	if name := viper.GetString(key.DocumentEntry); name != "" {
		return name
	}
	return "document.json"
}

// archive is an opened .free container: the original bytes plus a reader
// over them. Keeping the bytes makes backups and raw member copies trivial.
type archive struct {
	src []byte
	zr  *zip.Reader
}

// openArchive loads the whole archive into memory. Anything that does not
// read as a ZIP container is a malformed document.
func openArchive(path string) (*archive, error) {
	src, err := afero.ReadFile(filesystem.API(), path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return &archive{src: src, zr: zr}, nil
}

// read extracts a member's contents.
func (a *archive) read(name string) ([]byte, error) {
	for _, f := range a.zr.File {
		if f.Name != name {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, name, err)
		}

		data, err := io.ReadAll(rc)
		util.Ignore(rc.Close)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, name, err)
		}

		return data, nil
	}

	return nil, fmt.Errorf("%w: no %s entry", ErrMalformedDocument, name)
}

// repack produces the archive bytes with the named member replaced. Every
// other member is copied raw, compressed bytes and checksums untouched.
func (a *archive) repack(name string, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	replaced := false
	for _, f := range a.zr.File {
		if f.Name == name {
			w, err := zw.CreateHeader(&zip.FileHeader{
				Name:     f.Name,
				Method:   f.Method,
				Modified: f.Modified,
			})
			if err == nil {
				_, err = w.Write(data)
			}
			if err != nil {
				return nil, fmt.Errorf("repack %s: %w", name, err)
			}

			replaced = true
			continue
		}

		raw, err := f.OpenRaw()
		if err == nil {
			var w io.Writer
			w, err = zw.CreateRaw(&f.FileHeader)
			if err == nil {
				_, err = io.Copy(w, raw)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("repack %s: %w", f.Name, err)
		}
	}

	if !replaced {
		return nil, fmt.Errorf("%w: no %s entry", ErrMalformedDocument, name)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("repack: %w", err)
	}

	return buf.Bytes(), nil
}

// write commits the repacked archive through a temporary sibling and an
// atomic rename, optionally keeping a .bak copy of the original first.
func (a *archive) write(path, name string, data []byte) error {
	packed, err := a.repack(name, data)
	if err != nil {
		return err
	}

	fs := filesystem.API()

	perm := os.FileMode(0644)
	if stat, err := fs.Stat(path); err == nil {
		perm = stat.Mode().Perm()
	}

	if viper.GetBool(key.DocumentBackup) {
		if err := afero.WriteFile(fs, path+".bak", a.src, perm); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, packed, perm); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("write document: %w", err)
	}

	return nil
}
