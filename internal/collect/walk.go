package collect

import (
	"io/fs"
	"path/filepath"
)

// walkFiles traverses dir and returns every contained regular file as a
// slash-separated path relative to repoDir. Unreadable entries abort with
// the traversal error; files collected before the failure are still
// returned.
func walkFiles(repoDir, dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(repoDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files, err
}
