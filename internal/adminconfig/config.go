// Package adminconfig owns the persisted admin configuration document. The
// document carries company-wide policy (roles, plugin allow/deny lists, feature
// switches) and is created exactly once: an existing file is never rewritten,
// so settings applied by an administrator survive upgrades and reinstalls.
package adminconfig

import (
	"context"
	"fmt"
	"os"

	goversion "github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"

	"github.com/techdeckio/setup/util"
)

// SchemaVersion is the document schema written on first creation. It is only
// ever raised by dedicated migration logic, never by this package.
const SchemaVersion = "1.0.0"

// UserRole is the access level granted by the admin configuration.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Config is the admin configuration document as persisted on disk.
type Config struct {
	Version             string   `json:"version"`
	UserRole            UserRole `json:"user_role"`
	CompanyAPIKey       string   `json:"company_api_key"`
	UpdateURL           string   `json:"update_url"`
	PluginWhitelist     []string `json:"plugin_whitelist"`
	PluginBlacklist     []string `json:"plugin_blacklist"`
	MandatoryPlugins    []string `json:"mandatory_plugins"`
	AllowPluginInstall  bool     `json:"allow_plugin_install"`
	AllowCustomProfiles bool     `json:"allow_custom_profiles"`
	Locked              bool     `json:"locked"`
}

// Default returns the fixed payload written on first install. The update URL
// stays empty until an administrator points the deployment at a manifest.
func Default() *Config {
	return &Config{
		Version:             SchemaVersion,
		UserRole:            RoleUser,
		CompanyAPIKey:       "",
		UpdateURL:           "",
		PluginWhitelist:     []string{},
		PluginBlacklist:     []string{},
		MandatoryPlugins:    []string{},
		AllowPluginInstall:  true,
		AllowCustomProfiles: true,
		Locked:              false,
	}
}

// EnsureDefault creates the default admin configuration at path if no file
// exists there yet. An existing file is preserved verbatim regardless of its
// content. It reports whether a new file was created.
func EnsureDefault(ctx context.Context, path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		log.Infof("admin config already exists at %s, preserving it", path)
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat admin config %s: %w", path, err)
	}

	if err := util.WriteJson(ctx, path, Default()); err != nil {
		return false, fmt.Errorf("write default admin config %s: %w", path, err)
	}

	log.Infof("created default admin config at %s", path)
	return true, nil
}

// Load reads and validates the admin configuration document from path.
func Load(path string) (*Config, error) {
	config := &Config{}
	if _, err := util.ReadJson(path, config); err != nil {
		return nil, fmt.Errorf("read admin config %s: %w", path, err)
	}

	if _, err := goversion.NewSemver(config.Version); err != nil {
		return nil, fmt.Errorf("invalid admin config schema version %q: %w", config.Version, err)
	}

	return config, nil
}

// IsAdmin reports whether the configured role grants administrative access.
func (c *Config) IsAdmin() bool {
	return c.UserRole == RoleAdmin
}

// IsLocked reports whether the configuration is locked against modification
// by non-administrators.
func (c *Config) IsLocked() bool {
	return c.Locked
}

// Semver returns the parsed document schema version.
func (c *Config) Semver() (*goversion.Version, error) {
	return goversion.NewSemver(c.Version)
}

// IsPluginAllowed reports whether a plugin may run under the current policy.
// The blacklist always wins; an empty whitelist allows everything.
func (c *Config) IsPluginAllowed(pluginID string) bool {
	for _, id := range c.PluginBlacklist {
		if id == pluginID {
			return false
		}
	}

	if len(c.PluginWhitelist) == 0 {
		return true
	}

	for _, id := range c.PluginWhitelist {
		if id == pluginID {
			return true
		}
	}
	return false
}

// CanInstallPlugins reports whether the current user may install new plugins.
func (c *Config) CanInstallPlugins() bool {
	if !c.AllowPluginInstall {
		return c.IsAdmin()
	}
	return true
}

// CanCreateProfiles reports whether the current user may create custom profiles.
func (c *Config) CanCreateProfiles() bool {
	if !c.AllowCustomProfiles {
		return c.IsAdmin()
	}
	return true
}
