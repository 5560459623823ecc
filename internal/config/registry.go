package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName      = "mcdu"
	templateFile = "pages.yaml"
)

// GetConfigDir returns the OS-appropriate configuration directory for the
// application. This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/mcdu or $HOME/.config/mcdu
//   - macOS: $HOME/.config/mcdu (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\mcdu
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems: Use XDG_CONFIG_HOME or $HOME/.config
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetTemplatePath returns the full path to the default page template file.
func GetTemplatePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, templateFile), nil
}

// LoadRegistry loads the page template from the user's config directory.
// If no template file exists, the built-in default template is returned.
func LoadRegistry() (*Registry, error) {
	path, err := GetTemplatePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get template path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultRegistry(), nil
	}

	return LoadRegistryFromFile(path)
}

// LoadRegistryFromFile loads and validates a page template from an explicit
// file path.
func LoadRegistryFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page template: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	if registry.Version != 1 {
		return nil, fmt.Errorf("unsupported template version: %d (expected 1)", registry.Version)
	}

	if err := registry.Validate(); err != nil {
		return nil, err
	}

	return &registry, nil
}

// Validate checks structural consistency of the template: the root page must
// exist, parent pointers and navigation targets must reference known pages.
// Half-configured buttons (type without target) are tolerated here; the
// input subsystem treats them as absent.
func (r *Registry) Validate() error {
	if len(r.Pages) == 0 {
		return fmt.Errorf("template defines no pages")
	}
	if r.RootPage == "" {
		return fmt.Errorf("template defines no root page")
	}
	if _, ok := r.Pages[r.RootPage]; !ok {
		return fmt.Errorf("root page %q not defined", r.RootPage)
	}

	for id, page := range r.Pages {
		if page == nil {
			return fmt.Errorf("page %q is empty", id)
		}
		if page.Parent != "" {
			if _, ok := r.Pages[page.Parent]; !ok {
				return fmt.Errorf("page %q references unknown parent %q", id, page.Parent)
			}
		}
		for i, line := range page.Lines {
			for _, half := range []HalfLine{line.Left, line.Right} {
				b := half.Button
				if b.Type == ButtonNavigation && b.Target != "" {
					if _, ok := r.Pages[b.Target]; !ok {
						return fmt.Errorf("page %q line %d navigates to unknown page %q", id, i+1, b.Target)
					}
				}
				for _, c := range []*ConfirmPolicy{b.Confirm, half.Display.Confirm} {
					if err := c.validate(); err != nil {
						return fmt.Errorf("page %q line %d: %w", id, i+1, err)
					}
				}
			}
		}
	}
	return nil
}

// Lookup returns the page with the given id.
func (r *Registry) Lookup(id string) (*Page, bool) {
	p, ok := r.Pages[id]
	return p, ok
}
