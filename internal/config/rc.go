// internal/config/rc.go
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// RC holds the per-user settings read from ~/.posterrc. Everything in it is
// optional; the editor runs with zero configuration.
type RC struct {
	EnhanceEndpoint string
	EnhanceAPIKey   string
	ExportDirectory string
}

// LoadRC reads ~/.posterrc (key = value lines, # comments). A missing or
// unreadable file yields the defaults.
func LoadRC() *RC {
	rc := &RC{}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return rc
	}

	file, err := os.Open(filepath.Join(homeDir, ".posterrc"))
	if err != nil {
		return rc
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "enhanceendpoint", "enhance_endpoint":
			rc.EnhanceEndpoint = value
		case "enhanceapikey", "enhance_api_key":
			rc.EnhanceAPIKey = value
		case "exportdirectory", "export_directory", "exportdir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			rc.ExportDirectory = value
		}
	}

	return rc
}
