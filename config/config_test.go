package config

import (
	"strings"
	"testing"
	"time"
)

func envFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	c, err := FromEnv(envFrom(map[string]string{
		EnvServer:   "https://search.example.com",
		EnvCellSize: "3",
		EnvCost:     "5",
		EnvLang:     "pt_BR",
		EnvLog:      "/tmp/gridmap.log",
		EnvTimeout:  "5s",
		EnvPalette:  "dark",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	want := Config{
		ServerURL: "https://search.example.com",
		CellSize:  3,
		Cost:      5,
		Language:  "pt_BR",
		LogFile:   "/tmp/gridmap.log",
		Timeout:   5 * time.Second,
		Palette:   "dark",
	}
	if c != want {
		t.Errorf("FromEnv() = %+v, want %+v", c, want)
	}
}

func TestFromEnvEmptyKeepsDefaults(t *testing.T) {
	c, err := FromEnv(envFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c != Default() {
		t.Errorf("FromEnv() = %+v, want defaults", c)
	}
}

func TestFromEnvBadNumbers(t *testing.T) {
	c, err := FromEnv(envFrom(map[string]string{
		EnvCellSize: "big",
		EnvCost:     "x",
		EnvTimeout:  "soon",
	}))
	if err == nil {
		t.Fatal("FromEnv accepted bad numbers")
	}
	for _, name := range []string{EnvCellSize, EnvCost, EnvTimeout} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
	if c.CellSize != Default().CellSize {
		t.Errorf("CellSize = %d, want default", c.CellSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   string
	}{
		{"bad scheme", func(c *Config) { c.ServerURL = "ftp://host" }, "server URL"},
		{"no host", func(c *Config) { c.ServerURL = "http://" }, "server URL"},
		{"cell size", func(c *Config) { c.CellSize = 0 }, "cell size"},
		{"cost low", func(c *Config) { c.Cost = 0 }, "cost"},
		{"cost high", func(c *Config) { c.Cost = 10 }, "cost"},
		{"timeout", func(c *Config) { c.Timeout = 0 }, "timeout"},
		{"palette", func(c *Config) { c.Palette = "neon" }, "palette"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	c := Config{ServerURL: "nope", Palette: "none"}
	err := c.Validate()
	if err == nil {
		t.Fatal("Validate accepted an empty config")
	}
	if n := len(strings.Split(err.Error(), "\n")); n != 5 {
		t.Errorf("Validate() reported %d problems, want 5:\n%v", n, err)
	}
}

func TestLanguageOr(t *testing.T) {
	c := Default()
	if got := c.LanguageOr("", " pt_BR.UTF-8"); got != "pt_BR.UTF-8" {
		t.Errorf("LanguageOr() = %q", got)
	}
	c.Language = "en"
	if got := c.LanguageOr("pt_BR"); got != "en" {
		t.Errorf("LanguageOr() = %q", got)
	}
}
