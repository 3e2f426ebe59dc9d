package gconf

import (
	"ecschess/src"
	"ecschess/src/base"
	"ecschess/src/board"
	"ecschess/ui/gui/gbase"
	"encoding/json"
	"fmt"
	"os"
)

const DefaultFile = "ecschess.json"

type Config struct {
	Theme        string  `json:"theme"`         // light/dark
	PlayerTeam   string  `json:"player_team"`   // white/black
	Orientation  string  `json:"orientation"`   // white_bottom/table_order
	SquareLength float32 `json:"square_length"` // pixels per square
	Layout       string  `json:"layout"`        // 64 codes, classic when empty
	AssetsDir    string  `json:"assets_dir"`    // root of pieces/*.png
	FontPath     string  `json:"font_path"`     // ttf/otf for labels, builtin when empty
	WindowW      int     `json:"window_w"`      //
	WindowH      int     `json:"window_h"`      //
	Debug        bool    `json:"debug"`         // true/false

	path string
	// set by --debug for one run, never saved
	runDebug bool
}

func defaultConfig() Config {
	return Config{
		Theme:        "light",
		PlayerTeam:   "white",
		Orientation:  board.WhiteBottom.String(),
		SquareLength: board.DefaultSquareLength,
		Layout:       "",
		AssetsDir:    "assets",
		FontPath:     "",
		WindowW:      gbase.WindowW,
		WindowH:      gbase.WindowH,
		Debug:        false,
	}
}

// NewGUIConfig reads file, or returns defaults when it does not exist.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.path = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	c := defaultConfig()
	dec := json.NewDecoder(conf)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	c.path = file

	return &c, nil
}

func (c *Config) Path() string {
	if c.path == "" {
		return DefaultFile
	}
	return c.path
}

func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path(), jsonData, 0644)
}

// EnableDebug turns debug mode on for this run only.
func (c *Config) EnableDebug() {
	c.runDebug = true
}

func (c *Config) DebugMode() bool {
	return c.Debug || c.runDebug
}

// Correct normalises values set from flags after loading.
func (c *Config) Correct() {
	correctableConfig(c)
}

// BuilderOptions converts the config for src.NewBuilderBoard.
func (c *Config) BuilderOptions() (src.Options, error) {
	opts := src.DefaultOptions()

	team, err := base.TeamFromString(c.PlayerTeam)
	if err != nil {
		return opts, err
	}
	opts.PlayerTeam = team

	o, err := board.OrientationFromString(c.Orientation)
	if err != nil {
		return opts, err
	}
	opts.Board.Orientation = o

	if c.Layout != "" {
		l, err := board.ParseLayout(c.Layout)
		if err != nil {
			return opts, err
		}
		opts.Board.Layout = l
	}
	opts.Board.SquareLength = c.SquareLength
	return opts, nil
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if _, err := base.TeamFromString(c.PlayerTeam); err != nil {
		c.PlayerTeam = def.PlayerTeam
	}
	if _, err := board.OrientationFromString(c.Orientation); err != nil {
		c.Orientation = def.Orientation
	}
	if !(c.SquareLength >= 16 && c.SquareLength <= 256) {
		c.SquareLength = def.SquareLength
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
	side := int(c.SquareLength * base.BoardSide)
	if c.WindowW < side || c.WindowH < side {
		c.WindowW = max(c.WindowW, side)
		c.WindowH = max(c.WindowH, side)
	}
}
