package shortcuts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	domain "github.com/inference-gateway/cheat/internal/domain"
	logger "github.com/inference-gateway/cheat/internal/logger"
	jsonc "github.com/tidwall/jsonc"
	zap "go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// DefaultFileName is the shortcut file looked up next to the executable
const DefaultFileName = "shortcuts.json"

// shortcutFile mirrors the on-disk document. Pointers distinguish an absent
// field from an empty one.
type shortcutFile struct {
	Shortcuts *[]shortcutRecord `json:"shortcuts" yaml:"shortcuts"`
}

type shortcutRecord struct {
	Key         *string `json:"key" yaml:"key"`
	Description *string `json:"description" yaml:"description"`
}

// DefaultPath returns shortcuts.json in the directory of the running executable
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

// Load reads the shortcut file at path. A path that does not resolve to a
// regular file yields *domain.ConfigNotFoundError; a document that cannot be
// decoded or lacks a required field yields *domain.ConfigMalformedError.
func Load(ctx context.Context, path string) (domain.ShortcutList, error) {
	log := logger.L(ctx).With(zap.String("path", path))

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("shortcut file not found")
			return nil, &domain.ConfigNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, &domain.ConfigNotFoundError{Path: path, Err: fs.ErrNotExist}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read shortcut file", zap.Error(err))
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	format := formatFor(path)
	list, err := Parse(data, format)
	if err != nil {
		var malformed *domain.ConfigMalformedError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		log.Debug("shortcut file rejected", zap.Error(err))
		return nil, err
	}

	log.Debug("shortcut file loaded", zap.Int("entries", list.Len()), zap.String("format", format))
	return list, nil
}

// Parse decodes a shortcut document. format is "JSON" or "YAML".
func Parse(data []byte, format string) (domain.ShortcutList, error) {
	var doc shortcutFile

	switch format {
	case "YAML":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &domain.ConfigMalformedError{Format: format, Err: err}
		}
	default:
		format = "JSON"
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, &domain.ConfigMalformedError{Format: format, Err: err}
		}
	}

	if doc.Shortcuts == nil {
		return nil, &domain.ConfigMalformedError{Format: format, Reason: `missing "shortcuts" list`}
	}

	list := make(domain.ShortcutList, 0, len(*doc.Shortcuts))
	for i, rec := range *doc.Shortcuts {
		switch {
		case rec.Key == nil:
			return nil, &domain.ConfigMalformedError{Format: format, Reason: fmt.Sprintf(`shortcuts[%d]: missing "key"`, i)}
		case rec.Description == nil:
			return nil, &domain.ConfigMalformedError{Format: format, Reason: fmt.Sprintf(`shortcuts[%d]: missing "description"`, i)}
		}
		list = append(list, domain.ShortcutEntry{Key: *rec.Key, Description: *rec.Description})
	}

	return list, nil
}

func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "YAML"
	default:
		return "JSON"
	}
}
