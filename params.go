package main

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/startupops/api-smoke-tests/framework"
)

const (
	envPrefix      = "SMOKE"
	configName     = "smoketest"
	defaultBaseURL = "https://startup-toolkit-8.preview.emergentagent.com"
)

// commandParams holds the run configuration. There are no command-line flags; values come from
// defaults, an optional smoketest.yaml in the working directory, and SMOKE_* environment
// variables, in increasing order of precedence.
type commandParams struct {
	baseURL         string
	timeout         time.Duration
	filters         framework.RegexFilters
	debug           bool
	debugAll        bool
	strictResponses bool
	verifyInvite    bool
	checkoutPackage string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// base_url -> SMOKE_BASE_URL
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", defaultBaseURL)
	v.SetDefault("timeout", "30s")
	v.SetDefault("run", "")
	v.SetDefault("skip", "")
	v.SetDefault("debug", false)
	v.SetDefault("debug_all", false)
	v.SetDefault("strict_responses", false)
	v.SetDefault("verify_invite", false)
	v.SetDefault("checkout_package", "pro")
}

func (c *commandParams) Read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		// Config file is optional
	}

	c.baseURL = strings.TrimSpace(v.GetString("base_url"))
	c.timeout = readTimeout(v)
	c.debug = v.GetBool("debug")
	c.debugAll = v.GetBool("debug_all")
	c.strictResponses = v.GetBool("strict_responses")
	c.verifyInvite = v.GetBool("verify_invite")
	c.checkoutPackage = strings.TrimSpace(v.GetString("checkout_package"))

	if err := c.filters.MustMatch.SetAll(v.GetString("run")); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if err := c.filters.MustNotMatch.SetAll(v.GetString("skip")); err != nil {
		return fmt.Errorf("skip: %w", err)
	}
	return c.Validate()
}

// readTimeout accepts a duration such as "30s" or a bare number of seconds.
func readTimeout(v *viper.Viper) time.Duration {
	if seconds, err := strconv.Atoi(strings.TrimSpace(v.GetString("timeout"))); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return v.GetDuration("timeout")
}

// Validate checks for configuration errors that would make every request fail.
func (c *commandParams) Validate() error {
	u, err := url.Parse(c.baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http or https URL, got %q", c.baseURL)
	}
	if c.timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.timeout)
	}
	if c.checkoutPackage == "" {
		return errors.New("checkout_package must not be empty")
	}
	return nil
}
