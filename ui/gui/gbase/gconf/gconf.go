package gconf

import (
	"encoding/json"
	"fmt"

	"clickchess/ui/gui/gbase"
	"clickchess/ui/gui/gbase/gos"
)

const DefaultFile = "clickchess.json"

type Config struct {
	Theme    string `json:"theme"`     // light/dark
	Lang     string `json:"language"`  // en/ru
	WindowH  int    `json:"window_h"`  //
	WindowW  int    `json:"window_w"`  //
	Flipped  bool   `json:"flipped"`   // black at the bottom
	Debug    bool   `json:"debug"`     // TPS overlay
	StartFEN string `json:"start_fen"` // empty: classic start

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:   "light",
		Lang:    "en",
		WindowH: gbase.WindowH,
		WindowW: gbase.WindowW,
		path:    DefaultFile,
	}
}

// NewGUIConfig reads file, an absent file gives the defaults.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	data, err := gos.ReadFile(file)
	if gos.IsNotExist(err) {
		def := defaultConfig()
		def.path = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	c.path = file
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) Save() error {
	file := c.path
	if file == "" {
		file = DefaultFile
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return gos.WriteFile(file, jsonData)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.WindowH < gbase.MinBoard+4*gbase.Margin || c.WindowW < gbase.MinBoard+2*gbase.SidePanel {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
