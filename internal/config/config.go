package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/plantview/internal/render"
	"github.com/five82/plantview/internal/theme"
)

// Config captures plantview's settings.
type Config struct {
	ServerURL    string
	Formats      []render.Format
	DownloadDir  string
	DefaultTheme string
	Listen       string
	LogFile      string
	Animation    bool
	FrameEvery   time.Duration
}

const (
	defaultConfigPath  = "~/.config/plantview/config.toml"
	defaultDownloadDir = "~/Downloads"
	defaultListen      = "127.0.0.1:8765"
	defaultFrameMS     = 80
	minFrameMS         = 16
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ServerURL:    render.DefaultBaseURL,
		Formats:      append([]render.Format(nil), render.DefaultFormats...),
		DownloadDir:  mustExpand(defaultDownloadDir),
		DefaultTheme: theme.DefaultKey,
		Listen:       defaultListen,
		Animation:    true,
		FrameEvery:   defaultFrameMS * time.Millisecond,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURL    string   `toml:"server_url"`
		Formats      []string `toml:"formats"`
		DownloadDir  string   `toml:"download_dir"`
		DefaultTheme string   `toml:"default_theme"`
		Listen       string   `toml:"listen"`
		LogFile      string   `toml:"log_file"`
		Animation    *bool    `toml:"animation"`
		FrameMS      int      `toml:"frame_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimRight(strings.TrimSpace(raw.ServerURL), "/"); v != "" {
		cfg.ServerURL = v
	}

	if len(raw.Formats) > 0 {
		formats := make([]render.Format, 0, len(raw.Formats))
		for _, name := range raw.Formats {
			f, err := render.ParseFormat(name)
			if err != nil {
				return Config{}, fmt.Errorf("parse config: formats: %w", err)
			}
			formats = append(formats, f)
		}
		cfg.Formats = formats
	}

	if v := strings.TrimSpace(raw.DownloadDir); v != "" {
		cfg.DownloadDir = mustExpand(v)
	}

	if v := strings.TrimSpace(raw.DefaultTheme); v != "" {
		cfg.DefaultTheme = theme.Resolve(v)
	}

	if v := strings.TrimSpace(raw.Listen); v != "" {
		cfg.Listen = v
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	if raw.Animation != nil {
		cfg.Animation = *raw.Animation
	}

	if raw.FrameMS > 0 {
		cfg.FrameEvery = time.Duration(max(raw.FrameMS, minFrameMS)) * time.Millisecond
	}

	return cfg, nil
}

// Links returns the renderer link builder for this config.
func (c Config) Links() render.Links {
	return render.NewLinks(c.ServerURL, c.Formats)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
