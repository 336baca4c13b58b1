package naklo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ControlFileNames are tried in order by FindControlFile.
var ControlFileNames = []string{"naklo.yaml", "naklo.yml", "tags.yaml", "tags"}

// ErrNoControlFile is returned by FindControlFile when none of
// ControlFileNames exists.
var ErrNoControlFile = errors.New("no control file found")

// ReadTitles reads a title file: one title per line, trimmed. Blank lines
// are kept so that line n still belongs to track n.
func ReadTitles(r io.Reader) ([]string, error) {
	var titles []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		titles = append(titles, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read titles: %w", err)
	}
	return titles, nil
}

// ReadListing reads a listing file of track paths, one per line. Blank
// lines and lines starting with '#' are skipped.
func ReadListing(r io.Reader) ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read listing: %w", err)
	}
	return paths, nil
}

// CheckListing returns the paths that are not regular files, each with
// the reason.
func CheckListing(paths []string) []error {
	var problems []error
	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case err != nil:
			problems = append(problems, err)
		case !info.Mode().IsRegular():
			problems = append(problems, &fs.PathError{Op: "check", Path: p, Err: errors.New("not a regular file")})
		}
	}
	return problems
}

// FindControlFile returns the first of ControlFileNames present in dir.
func FindControlFile(dir string) (string, error) {
	for _, name := range ControlFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s: %w", dir, ErrNoControlFile)
}
