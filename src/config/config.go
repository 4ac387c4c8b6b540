// Package config loads pipeline parameters: embedded defaults, then an optional
// config file, then UWBPLOT_* environment variables, then bound CLI flags.
package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. UWBPLOT_DISTANCE_WINDOW.
const EnvPrefix = "UWBPLOT"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Cfg is the full parameter set of the three pipelines.
type Cfg struct {
	Log      Log      `mapstructure:"log"`
	Display  Display  `mapstructure:"display"`
	Distance Distance `mapstructure:"distance"`
	Position Position `mapstructure:"position"`
	Timing   Timing   `mapstructure:"timing"`
}

// Log selects the applog level.
type Log struct {
	Level string `mapstructure:"level"`
}

// Display controls the output surface. An empty Output opens the viewer window.
type Display struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Output string `mapstructure:"output"`
}

// Distance parameterizes the scalar line-chart pipeline.
type Distance struct {
	File   string `mapstructure:"file"`
	Window int    `mapstructure:"window"` // first N samples; <= 0 means all
	Title  string `mapstructure:"title"`
	XLabel string `mapstructure:"x_label"`
	YLabel string `mapstructure:"y_label"`
}

// Position parameterizes the coordinate scatter pipeline.
type Position struct {
	File   string `mapstructure:"file"`
	Title  string `mapstructure:"title"`
	XLabel string `mapstructure:"x_label"`
	YLabel string `mapstructure:"y_label"`
}

// Series is one bar series; Values align with Timing.Categories.
type Series struct {
	Name   string    `mapstructure:"name"`
	Values []float64 `mapstructure:"values"`
}

// Timing parameterizes the grouped bar chart.
type Timing struct {
	Title      string   `mapstructure:"title"`
	YLabel     string   `mapstructure:"y_label"`
	YMin       float64  `mapstructure:"y_min"`
	YMax       float64  `mapstructure:"y_max"`
	Categories []string `mapstructure:"categories"`
	Series     []Series `mapstructure:"series"`
}

var defaultConfig = []byte(`
log:
  level: info
display:
  width: 1100
  height: 600
  output: ""
distance:
  file: messwerte_10m.txt
  window: 300
  title: "Messung der Distanz zum Zubehör (10m)"
  x_label: Datenpunkte
  y_label: Distanz in Meter
position:
  file: positionsdaten.txt
  title: "Bestimmung der Position zu drei Entwicklungskits mittels Trilateration"
  x_label: X-Position
  y_label: Y-Position
timing:
  title: Zeitmessung der verschiedenen Verbindungen
  y_label: Dauer in Sekunden
  y_min: 0
  y_max: 4
  categories:
    - Vollständige UWB Initiierung
    - OOB-Verbindung
    - UWB Austausch
  series:
    - name: iPhone
      values: [2.9, 1.92, 1.076]
    - name: Android
      values: [2.371, 2.279, 0.92]
`)

// New returns a viper instance primed with defaults and env overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultConfig)); err != nil {
		// the embedded document is static
		panic(err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags maps viper keys to flags; flags that were not set keep lower layers.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return errors.Errorf("flag --%s not defined", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind --%s", name)
		}
	}
	return nil
}

// Load merges the optional config file at path into v and decodes the result.
func Load(v *viper.Viper, path string) (Cfg, error) {
	var cfg Cfg
	if path != "" {
		v.SetConfigFile(path)
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
			v.SetConfigType(ext)
		}
		if err := v.MergeInConfig(); err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}

// Validate checks the parts of cfg that would otherwise fail during rendering.
func (c Cfg) Validate() error {
	if c.Display.Width < 0 || c.Display.Height < 0 {
		return errors.Wrapf(ErrInvalidConfig, "display size %dx%d", c.Display.Width, c.Display.Height)
	}
	if strings.TrimSpace(c.Distance.File) == "" {
		return errors.Wrap(ErrInvalidConfig, "distance.file is empty")
	}
	if strings.TrimSpace(c.Position.File) == "" {
		return errors.Wrap(ErrInvalidConfig, "position.file is empty")
	}
	return c.Timing.Validate()
}

// Validate checks that the table is rectangular and the y range is non-empty.
func (t Timing) Validate() error {
	if t.YMax <= t.YMin {
		return errors.Wrapf(ErrInvalidConfig, "timing y range [%v, %v]", t.YMin, t.YMax)
	}
	if len(t.Categories) == 0 {
		return errors.Wrap(ErrInvalidConfig, "timing.categories is empty")
	}
	for _, s := range t.Series {
		if len(s.Values) != len(t.Categories) {
			return errors.Wrapf(ErrInvalidConfig, "series %q has %d values for %d categories", s.Name, len(s.Values), len(t.Categories))
		}
	}
	return nil
}
