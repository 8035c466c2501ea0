// Package discover locates version-control checkouts under a set of
// root directories.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Repos walks each root and returns the git and svn checkouts found.
// Walking stops descending once a checkout is found, nested duplicates
// are pruned, and both result lists are sorted so discovery is
// deterministic. Unreadable directories are skipped.
func Repos(roots []string) (gitRepos, svnRepos []string) {
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		_ = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fs.SkipDir
			}
			if !d.IsDir() {
				return nil
			}
			if isDir(filepath.Join(path, ".git")) {
				gitRepos = append(gitRepos, path)
				return fs.SkipDir
			}
			if isDir(filepath.Join(path, ".svn")) {
				svnRepos = append(svnRepos, path)
				return fs.SkipDir
			}
			return nil
		})
	}
	return DedupPaths(gitRepos), DedupPaths(svnRepos)
}

// DedupPaths resolves paths to absolute form, removes repeats and paths
// nested under another listed path, and sorts the result.
func DedupPaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var unique []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if _, dup := seen[abs]; dup {
			continue
		}
		seen[abs] = struct{}{}
		unique = append(unique, abs)
	}
	sort.Strings(unique)

	var out []string
	for _, p := range unique {
		nested := false
		for _, q := range unique {
			if p != q && strings.HasPrefix(p, q+string(os.PathSeparator)) {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, p)
		}
	}
	return out
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
