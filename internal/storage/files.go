package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"newsportal/internal/domain"

	"github.com/google/uuid"
)

// Files saves uploaded images under BaseDir and hands back the relative
// path the rest of the system stores. Everything else only ever sees that
// path string.
type Files struct {
	BaseDir string
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// SaveProfilePicture stores a user's picture under a per-user folder.
// Existing files are left alone so a request that later fails cannot destroy
// a stored picture; callers prune once the database row points at the new
// path.
func (f Files) SaveProfilePicture(userName string, fh *multipart.FileHeader) (string, error) {
	if err := checkImageExt(fh.Filename); err != nil {
		return "", err
	}

	userFolder := filepath.Join(f.BaseDir, "ProfilePicture", safeName(userName))
	if err := os.MkdirAll(userFolder, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + "_" + safeName(filepath.Base(fh.Filename))
	if err := f.write(fh, filepath.Join(userFolder, name)); err != nil {
		return "", err
	}
	return fmt.Sprintf("~/ProfilePicture/%s/%s", safeName(userName), name), nil
}

// PruneProfilePictures deletes every stored picture for the user except
// keep, a relative path as returned by SaveProfilePicture.
func (f Files) PruneProfilePictures(userName, keep string) error {
	userFolder := filepath.Join(f.BaseDir, "ProfilePicture", safeName(userName))
	entries, err := os.ReadDir(userFolder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	keepName := filepath.Base(keep)
	for _, e := range entries {
		if e.IsDir() || e.Name() == keepName {
			continue
		}
		if err := os.Remove(filepath.Join(userFolder, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes one stored file by its relative path. Used to roll back an
// upload whose request failed after the file landed.
func (f Files) Remove(rel string) error {
	rel = strings.TrimPrefix(rel, "~/")
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(f.BaseDir, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SaveNewsImage stores an article image under a per-article folder.
func (f Files) SaveNewsImage(newsID int64, fh *multipart.FileHeader) (string, error) {
	if err := checkImageExt(fh.Filename); err != nil {
		return "", err
	}

	folder := filepath.Join(f.BaseDir, "NewsImages", fmt.Sprintf("%d", newsID))
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + "_" + safeName(filepath.Base(fh.Filename))
	if err := f.write(fh, filepath.Join(folder, name)); err != nil {
		return "", err
	}
	return fmt.Sprintf("~/NewsImages/%d/%s", newsID, name), nil
}

func (f Files) write(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

func checkImageExt(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return domain.ValidationError{
			Field: "file",
			Msg:   "only .jpg, .png, and .jpeg formats are allowed",
		}
	}
	return nil
}

// safeName strips path separators and whitespace from untrusted names.
func safeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "..", "_")
	return s
}
