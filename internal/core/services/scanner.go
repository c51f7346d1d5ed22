package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/logger"
	"github.com/meridianhq/localsync/internal/mdx"
)

// Scanner discovers MDX files for a content type and classifies them
// by locale. Discovery is best-effort: unreadable directories and
// files are logged and skipped, never fatal.
type Scanner struct {
	root          string
	defaultLocale string
}

// NewScanner creates a scanner over the content root directory.
func NewScanner(root, defaultLocale string) *Scanner {
	return &Scanner{root: root, defaultLocale: defaultLocale}
}

// Scan returns all on-disk files for the content type: the
// default-locale files directly under the type's base directory,
// then every locale variant found under sibling locale directories
// that contain a like-named subdirectory. Missing directories yield
// an empty result.
func (s *Scanner) Scan(ct domain.ContentType) ([]*domain.ContentFile, error) {
	files := s.scanDir(filepath.Join(s.root, ct.Dir), s.defaultLocale, false)

	for _, locale := range s.localeDirs(ct) {
		dir := filepath.Join(s.root, locale, ct.Dir)
		files = append(files, s.scanDir(dir, locale, true)...)
	}

	return files, nil
}

// LocalesPresent unions, across all given content types, every
// locale subdirectory name observed (base code only) plus the
// default locale. Sorted for deterministic iteration.
func (s *Scanner) LocalesPresent(types []domain.ContentType) []string {
	seen := map[string]struct{}{
		domain.BaseLocale(s.defaultLocale): {},
	}
	for _, ct := range types {
		for _, locale := range s.localeDirs(ct) {
			seen[domain.BaseLocale(locale)] = struct{}{}
		}
	}

	locales := make([]string, 0, len(seen))
	for locale := range seen {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// localeDirs lists the sibling directories of the content type's
// base directory that contain a like-named subdirectory.
func (s *Scanner) localeDirs(ct domain.ContentType) []string {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("read content root %s: %v", s.root, err)
		}
		return nil
	}

	var locales []string
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == ct.Dir {
			continue
		}
		info, err := os.Stat(filepath.Join(s.root, entry.Name(), ct.Dir))
		if err != nil || !info.IsDir() {
			continue
		}
		locales = append(locales, entry.Name())
	}
	return locales
}

// scanDir reads one directory non-recursively and parses every file
// with the recognized extension.
func (s *Scanner) scanDir(dir, locale string, isLocalization bool) []*domain.ContentFile {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("read directory %s: %v", dir, err)
		}
		return nil
	}

	var files []*domain.ContentFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), mdx.Extension) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		parsed, err := mdx.ParseFile(path)
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			continue
		}

		file := &domain.ContentFile{
			Path:           path,
			Locale:         locale,
			IsLocalization: isLocalization,
			Frontmatter:    parsed.Frontmatter,
			Body:           parsed.Body,
		}
		// Explicit frontmatter wins over filename and directory.
		file.Slug = file.FrontmatterString("slug")
		if file.Slug == "" {
			file.Slug = mdx.SlugFromFilename(entry.Name())
		}
		if explicit := file.FrontmatterString("locale"); explicit != "" {
			file.Locale = explicit
		}
		file.Localizes = file.FrontmatterString("localizes")

		logger.Debug("scanned %s (slug=%s locale=%s)", path, file.Slug, file.Locale)
		files = append(files, file)
	}
	return files
}
