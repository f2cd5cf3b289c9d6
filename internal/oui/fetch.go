// ===== internal/oui/fetch.go =====
package oui

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"ulagen/internal/ula"
)

// DefaultRegistryURL is the IEEE publication of the MA-L (OUI) registry
const DefaultRegistryURL = "https://standards-oui.ieee.org/oui/oui.txt"

// Fetch downloads the registry text from url into path. The download
// goes to a temporary file first so a failed transfer never clobbers a
// good cached copy. A single attempt is made; retry policy belongs to
// whoever schedules the fetch.
func Fetch(url, path string, timeout time.Duration) error {
	log.Printf("Fetching OUI registry from %s", url)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return &ula.AcquisitionError{Source: "vendor registry", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ula.AcquisitionError{
			Source: "vendor registry",
			Err:    fmt.Errorf("%s returned %s", url, resp.Status),
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &ula.AcquisitionError{Source: "vendor registry", Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".oui-download-*")
	if err != nil {
		return &ula.AcquisitionError{Source: "vendor registry", Err: err}
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return &ula.AcquisitionError{Source: "vendor registry", Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return &ula.AcquisitionError{Source: "vendor registry", Err: err}
	}

	log.Printf("Cached %d bytes of registry data in %s", n, path)
	return nil
}
