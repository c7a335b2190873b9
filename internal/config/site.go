package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvSiteBasePath overrides the base path used for links in templates.
const EnvSiteBasePath = "SITE_BASE_PATH"

// SiteConfig holds settings for the rendered pages.
type SiteConfig struct {
	// BasePath prefixes asset URLs in templates when the site is served
	// behind a path-rewriting proxy. Empty means the site is at "/".
	BasePath string `toml:"base_path"`
}

func (c *SiteConfig) Finalize() error {
	if v := os.Getenv(EnvSiteBasePath); v != "" {
		c.BasePath = v
	}
	c.BasePath = strings.TrimSuffix(c.BasePath, "/")
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %q", c.BasePath)
	}
	return nil
}

func (c *SiteConfig) Merge(overlay *SiteConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}
