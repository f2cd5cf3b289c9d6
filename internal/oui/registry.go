// ===== internal/oui/registry.go =====
package oui

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"ulagen/internal/ula"
	"ulagen/pkg/models"
	"ulagen/pkg/utils"
)

// Store handles IEEE OUI registry lookups. The registry text is parsed
// once into an in-memory map keyed by the uppercase 6-hex-digit OUI;
// Load may run again concurrently with lookups in server mode.
type Store struct {
	file   string
	cache  map[string]models.VendorRecord
	loaded time.Time
	mu     sync.RWMutex
}

// NewStore creates a registry store and loads the given file
func NewStore(filename string) (*Store, error) {
	s := &Store{
		file:  filename,
		cache: make(map[string]models.VendorRecord),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the registry file, replacing the cached entries
func (s *Store) Load() error {
	f, err := os.Open(s.file)
	if err != nil {
		return utils.WrapError(err, "failed to open OUI registry")
	}
	defer f.Close()

	entries, err := parseRegistry(f)
	if err != nil {
		return utils.WrapError(err, "failed to read OUI registry")
	}

	s.mu.Lock()
	s.cache = entries
	s.loaded = time.Now()
	s.mu.Unlock()

	log.Printf("Loaded %d OUI entries from %s", len(entries), s.file)
	return nil
}

// parseRegistry scans the IEEE oui.txt format, keeping the "(hex)"
// assignment lines and skipping everything else (headers, address
// lines, base-16 duplicates)
func parseRegistry(r io.Reader) (map[string]models.VendorRecord, error) {
	entries := make(map[string]models.VendorRecord)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.Index(line, "(hex)")
		if idx < 0 {
			continue
		}

		prefix := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(line[:idx]), "-", ""))
		if len(prefix) != 6 || !isHex(prefix) {
			continue
		}

		company := strings.TrimSpace(line[idx+len("(hex)"):])
		if company == "" {
			continue
		}

		entries[prefix] = models.VendorRecord{OUI: prefix, Company: company}
	}

	return entries, scanner.Err()
}

// isHex reports whether s consists only of uppercase hex digits
func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// Lookup resolves an OUI prefix to its vendor name. The match is exact
// against the canonical uppercase form; a miss means the OUI was never
// issued and fails the whole run.
func (s *Store) Lookup(prefix string) (string, error) {
	key := strings.ToUpper(prefix)

	s.mu.RLock()
	rec, ok := s.cache[key]
	s.mu.RUnlock()

	if !ok {
		return "", &ula.VendorNotFoundError{OUI: key}
	}
	return rec.Company, nil
}

// Status reports the loaded registry state for diagnostics
func (s *Store) Status() models.RegistryStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.RegistryStatus{
		File:    s.file,
		Entries: len(s.cache),
		Loaded:  s.loaded,
	}
}

// File returns the path backing this store
func (s *Store) File() string {
	return s.file
}
