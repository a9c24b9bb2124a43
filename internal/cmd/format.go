package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atlantiscfg/atlantiscfg/profile"
)

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

func formatFromExtension(path string) string {
	return normalizeFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

func marshalProfile(format string, p *profile.Profile) ([]byte, error) {
	switch normalizeFormat(format) {
	case "yaml":
		return profile.MarshalYAML(p)
	case "toml":
		return profile.MarshalTOML(p)
	default:
		return profile.MarshalJSON(p)
	}
}

func unmarshalProfile(format string, data []byte) (*profile.Profile, error) {
	switch normalizeFormat(format) {
	case "yaml":
		return profile.UnmarshalYAML(data)
	case "toml":
		return profile.UnmarshalTOML(data)
	case "json":
		return profile.UnmarshalJSON(data)
	default:
		return nil, fmt.Errorf("unsupported profile format %q", format)
	}
}
