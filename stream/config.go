package stream

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/ledtween/tween"
)

// Config holds the settings for the streamer and its connections.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url" toml:"url"`
		ClientID string `yaml:"clientID" toml:"clientID"`
		Username string `yaml:"username" toml:"username"`
		Password string `yaml:"password" toml:"password"`
		Qos      byte   `yaml:"qos" toml:"qos"`
		Topics   struct {
			Stream string `yaml:"stream" toml:"stream"`
		} `yaml:"topics" toml:"topics"`
	} `yaml:"mqtt" toml:"mqtt"`

	Stream struct {
		// FrameRate is the number of frames published per second.
		FrameRate float64 `yaml:"frameRate" toml:"frameRate"`
		// TimeScale multiplies the frame delta seen by scaled tweens.
		TimeScale float64 `yaml:"timeScale" toml:"timeScale"`
		// CycleSecs is the time each animation is shown before the
		// controller moves on.
		CycleSecs float64 `yaml:"cycleSecs" toml:"cycleSecs"`
		// TransitionSecs is the length of the cross-fade between
		// animations.
		TransitionSecs float64 `yaml:"transitionSecs" toml:"transitionSecs"`
		// PrefixPolicy is "matching" or "legacy".
		PrefixPolicy string `yaml:"prefixPolicy" toml:"prefixPolicy"`
		Seed         int64  `yaml:"seed" toml:"seed"`
	} `yaml:"stream" toml:"stream"`

	Api struct {
		Addr      string `yaml:"addr" toml:"addr"`
		StaticDir string `yaml:"staticDir" toml:"staticDir"`
	} `yaml:"api" toml:"api"`
}

// DefaultConfig returns a Config with every tunable set.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "ledtween"
	c.Mqtt.Qos = 2
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Stream.FrameRate = 30
	c.Stream.TimeScale = 1
	c.Stream.CycleSecs = 60
	c.Stream.TransitionSecs = 5
	c.Stream.PrefixPolicy = tween.PrefixMatching.String()
	c.Api.Addr = ":3000"
	return c
}

// LoadConfig reads the config file at path over the defaults. Files ending
// in .toml are decoded as TOML, anything else as YAML.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.NewDecoder(f).Decode(&c)
	default:
		err = yaml.NewDecoder(f).Decode(&c)
	}
	if err != nil {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	if c.Stream.FrameRate <= 0 {
		return fmt.Errorf("invalid frame rate: %v", c.Stream.FrameRate)
	}
	if c.Stream.TimeScale < 0 {
		return fmt.Errorf("invalid time scale: %v", c.Stream.TimeScale)
	}
	_, err := c.PrefixPolicy()
	return err
}

// PrefixPolicy returns the registry policy named by the config.
func (c Config) PrefixPolicy() (tween.PrefixPolicy, error) {
	switch c.Stream.PrefixPolicy {
	case "", tween.PrefixMatching.String():
		return tween.PrefixMatching, nil
	case tween.PrefixLegacy.String():
		return tween.PrefixLegacy, nil
	default:
		return tween.PrefixMatching, fmt.Errorf("unknown prefix policy %q", c.Stream.PrefixPolicy)
	}
}
