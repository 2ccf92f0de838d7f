package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timson/pirinfetch/logo"
	"github.com/timson/pirinfetch/pkg/utils"
	"github.com/timson/pirinfetch/render"
)

const appName = "pirinfetch"

type ItemConfig struct {
	Key        string `mapstructure:"key" toml:"key"`
	Type       string `mapstructure:"type" toml:"type" validate:"omitempty,oneof=default text command"`
	Value      string `mapstructure:"value" toml:"value"`
	Color      string `mapstructure:"color" toml:"color,omitempty"`
	ValueColor string `mapstructure:"value_color" toml:"value_color,omitempty"`
}

type DisplayConfig struct {
	Separator             string        `mapstructure:"separator" toml:"separator"`
	Mode                  string        `mapstructure:"display_mode" toml:"display_mode" validate:"required,oneof=ascii image kitty"`
	ASCIIArt              string        `mapstructure:"ascii_art" toml:"ascii_art,omitempty"`
	ASCIIPath             string        `mapstructure:"ascii_path" toml:"ascii_path,omitempty"`
	ASCIIColor            string        `mapstructure:"ascii_color" toml:"ascii_color"`
	UseDefaultASCII       bool          `mapstructure:"use_default_ascii" toml:"use_default_ascii"`
	ShowAllGPUs           bool          `mapstructure:"show_all_gpus" toml:"show_all_gpus"`
	ImagePath             string        `mapstructure:"image_path" toml:"image_path,omitempty"`
	ImageWidth            int           `mapstructure:"image_width" toml:"image_width,omitempty" validate:"min=0"`
	ImageHeight           int           `mapstructure:"image_height" toml:"image_height,omitempty" validate:"min=0"`
	ImagePaddingColumns   *int          `mapstructure:"image_padding_columns" toml:"image_padding_columns,omitempty" validate:"omitempty,min=0"`
	ImageRows             *int          `mapstructure:"image_rows" toml:"image_rows,omitempty" validate:"omitempty,min=0"`
	ImageHorizontalOffset int           `mapstructure:"image_horizontal_offset" toml:"image_horizontal_offset,omitempty"`
	ImageVerticalOffset   int           `mapstructure:"image_vertical_offset" toml:"image_vertical_offset,omitempty"`
	CommandTimeout        time.Duration `mapstructure:"command_timeout" toml:"command_timeout,omitempty" validate:"min=0"`
	Items                 []ItemConfig  `mapstructure:"items" toml:"items" validate:"dive"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level" validate:"required,oneof=DEBUG INFO WARNING ERROR"`
}

type Config struct {
	Color   string            `mapstructure:"color" toml:"color" validate:"required,oneof=auto always never"`
	Display *DisplayConfig    `mapstructure:"display" toml:"display" validate:"required"`
	Colors  map[string]string `mapstructure:"colors" toml:"colors"`
	Log     *LogConfig        `mapstructure:"log" toml:"log" validate:"required"`
}

type legacyKey struct {
	old, current string
}

// legacyKeys maps older [display] key names to their current ones. When two
// old names share a current key, the earlier entry wins.
var legacyKeys = []legacyKey{
	{"artwork_mode", "display_mode"},
	{"kitty_image_path", "image_path"},
	{"kitty_image_width", "image_width"},
	{"kitty_image_height", "image_height"},
	{"artwork_padding_columns", "image_padding_columns"},
	{"kitty_rows", "image_rows"},
	{"image_offset_columns", "image_horizontal_offset"},
	{"image_offset_rows", "image_vertical_offset"},
	{"kitty_offset_columns", "image_horizontal_offset"},
	{"kitty_offset_rows", "image_vertical_offset"},
}

func defaultItemConfigs() []ItemConfig {
	items := render.DefaultItems()
	out := make([]ItemConfig, 0, len(items))
	for _, it := range items {
		out = append(out, ItemConfig{
			Key:        it.Key,
			Type:       it.Kind.String(),
			Value:      it.Value,
			Color:      it.KeyColor,
			ValueColor: it.ValueColor,
		})
	}
	return out
}

func defaultColors() map[string]string {
	return map[string]string{
		"accent": "#5fafff",
		"muted":  "#8a8a8a",
	}
}

func initDefaults(v *viper.Viper) {
	v.SetDefault("color", "auto")
	v.SetDefault("display.separator", render.DefaultSeparator)
	v.SetDefault("display.display_mode", "ascii")
	v.SetDefault("display.ascii_color", "blue")
	v.SetDefault("display.use_default_ascii", true)
	v.SetDefault("display.show_all_gpus", false)
	v.SetDefault("display.image_width", 0)
	v.SetDefault("display.image_height", 0)
	v.SetDefault("display.image_horizontal_offset", 0)
	v.SetDefault("display.image_vertical_offset", 0)
	v.SetDefault("display.command_timeout", 0)
	v.SetDefault("display.items", defaultItemConfigs())
	v.SetDefault("colors", defaultColors())
	v.SetDefault("log.level", "ERROR")
}

func setupFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().String("config", "", "Config file (TOML)")
	cmd.PersistentFlags().String("log", "", "Log level (DEBUG, INFO, WARNING, ERROR)")
	cmd.PersistentFlags().String("color", "", "Colorize output: auto, always or never")
	cmd.Flags().String("mode", "", "Logo mode: ascii or image")
	cmd.Flags().String("image", "", "Image file for image mode")

	_ = v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log"))
	_ = v.BindPFlag("color", cmd.PersistentFlags().Lookup("color"))
	_ = v.BindPFlag("display.display_mode", cmd.Flags().Lookup("mode"))
	_ = v.BindPFlag("display.image_path", cmd.Flags().Lookup("image"))

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// defaultConfigPath is where config init writes and where the loader looks
// first when no --config is given.
func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// configSearchPaths lists the user config dir, the working directory and
// then the system-wide XDG config dirs, in lookup order.
func configSearchPaths() []string {
	paths := []string{filepath.Dir(defaultConfigPath()), "."}
	for _, dir := range xdg.ConfigDirs {
		paths = append(paths, filepath.Join(dir, appName))
	}
	return paths
}

func loadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		for _, dir := range configSearchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	applyLegacyKeys(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Display != nil && len(cfg.Display.Items) == 0 {
		cfg.Display.Items = defaultItemConfigs()
	}
	cfg.Log.normalize()

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// applyLegacyKeys lets old key names from the config file stand in for
// the built-in defaults. A current key, an env var or a flag still wins.
func applyLegacyKeys(v *viper.Viper) {
	display := v.GetStringMap("display")
	applied := make(map[string]bool)
	for _, k := range legacyKeys {
		val, ok := display[k.old]
		if !ok || applied[k.current] {
			continue
		}
		if _, set := display[k.current]; set {
			continue
		}
		v.SetDefault("display."+k.current, val)
		applied[k.current] = true
	}
}

func (l *LogConfig) normalize() {
	if l != nil {
		l.Level = strings.ToUpper(strings.TrimSpace(l.Level))
	}
}

// buildRenderContext turns the validated config into the read-only render
// input. Terminal fields are left for the caller.
func buildRenderContext(cfg *Config) (render.Context, error) {
	d := cfg.Display
	items := make([]render.Item, 0, len(d.Items))
	for i, ic := range d.Items {
		kind, err := render.ParseKind(ic.Type)
		if err != nil {
			return render.Context{}, fmt.Errorf("%w: item %d: %w", ErrInvalidConfig, i+1, err)
		}
		items = append(items, render.Item{
			Key:        ic.Key,
			Kind:       kind,
			Value:      ic.Value,
			KeyColor:   ic.Color,
			ValueColor: ic.ValueColor,
		})
	}

	mode, err := logo.ParseMode(d.Mode)
	if err != nil {
		return render.Context{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return render.Context{
		Items:       items,
		Separator:   d.Separator,
		ShowAllGPUs: d.ShowAllGPUs,
		Logo: logo.Spec{
			Mode:             mode,
			ASCIIArt:         d.ASCIIArt,
			ASCIIPath:        d.ASCIIPath,
			UseDefaultASCII:  d.UseDefaultASCII,
			Color:            d.ASCIIColor,
			ImagePath:        utils.ExpandHome(d.ImagePath),
			TargetWidth:      d.ImageWidth,
			TargetHeight:     d.ImageHeight,
			PaddingColumns:   d.ImagePaddingColumns,
			RowSpan:          d.ImageRows,
			HorizontalOffset: d.ImageHorizontalOffset,
			VerticalOffset:   d.ImageVerticalOffset,
		},
	}, nil
}
