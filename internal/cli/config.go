package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/zeroent/labtopo/pkg/errors"
	"github.com/zeroent/labtopo/pkg/render"
	"github.com/zeroent/labtopo/pkg/topology"
)

// fileConfig is the layout of labtopo.toml. Pointer fields distinguish
// "not set" from zero values so only keys present in the file override the
// defaults.
//
//	output = "topology"
//	format = "png"
//	scale = 1.0
//	icon_dir = "."
//	font_size = 35
//	runner_link = false
//
//	[background]
//	enabled = false
//	color = "#FFFFFF"
//
//	[margin]
//	enabled = false
//	value = "0"
type fileConfig struct {
	Output     *string      `toml:"output"`
	Format     *string      `toml:"format"`
	Scale      *float64     `toml:"scale"`
	IconDir    *string      `toml:"icon_dir"`
	FontSize   *int         `toml:"font_size"`
	RunnerLink *bool        `toml:"runner_link"`
	Detailed   *bool        `toml:"detailed"`
	Background toggleConfig `toml:"background"`
	Margin     toggleConfig `toml:"margin"`
}

type toggleConfig struct {
	Enabled *bool   `toml:"enabled"`
	Color   *string `toml:"color"`
	Value   *string `toml:"value"`
}

// renderOpts holds the resolved settings for one render.
type renderOpts struct {
	output   string  // output file name without extension
	format   string  // png, svg, pdf, dot or json
	scale    float64 // PNG scale factor
	iconDir  string  // directory icon paths are resolved against
	detailed bool    // append node IDs and categories to labels
	topology topology.Options
}

func defaultRenderOpts() renderOpts {
	return renderOpts{
		output:   topology.Name,
		format:   render.DefaultFormat,
		scale:    1.0,
		topology: topology.DefaultOptions(),
	}
}

// readConfig decodes a TOML config file into opts. A missing file is only an
// error when the path was given explicitly.
func readConfig(path string, explicit bool, opts *renderOpts) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return nil
	}
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}

	fc.apply(opts)
	return nil
}

func (fc fileConfig) apply(opts *renderOpts) {
	setIf(&opts.output, fc.Output)
	setIf(&opts.format, fc.Format)
	setIf(&opts.scale, fc.Scale)
	setIf(&opts.iconDir, fc.IconDir)
	setIf(&opts.detailed, fc.Detailed)
	setIf(&opts.topology.FontSize, fc.FontSize)
	setIf(&opts.topology.RunnerLink, fc.RunnerLink)
	setIf(&opts.topology.BackgroundEnabled, fc.Background.Enabled)
	setIf(&opts.topology.Background, fc.Background.Color)
	setIf(&opts.topology.MarginEnabled, fc.Margin.Enabled)
	setIf(&opts.topology.Margin, fc.Margin.Value)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// loadRenderOpts resolves settings in order: defaults, config file, then
// flags the user set explicitly on cmd. configPath "" means the default
// labtopo.toml in the working directory, which may be absent.
func loadRenderOpts(cmd *cobra.Command, opts renderOpts, configPath string) (renderOpts, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = defaultConfigFile
	}
	if err := readConfig(configPath, explicit, &opts); err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		opts.output, _ = flags.GetString("output")
	}
	if flags.Changed("format") {
		opts.format, _ = flags.GetString("format")
	}
	if flags.Changed("scale") {
		opts.scale, _ = flags.GetFloat64("scale")
	}
	if flags.Changed("icons") {
		opts.iconDir, _ = flags.GetString("icons")
	}
	if flags.Changed("detailed") {
		opts.detailed, _ = flags.GetBool("detailed")
	}
	if flags.Changed("font-size") {
		opts.topology.FontSize, _ = flags.GetInt("font-size")
	}
	if flags.Changed("runner-link") {
		opts.topology.RunnerLink, _ = flags.GetBool("runner-link")
	}

	return opts, validateRenderOpts(opts)
}

func validateRenderOpts(opts renderOpts) error {
	if err := errors.ValidateOutputName(opts.output); err != nil {
		return err
	}
	if err := render.ValidateFormat(opts.format); err != nil {
		return err
	}
	if opts.iconDir != "" {
		if err := errors.ValidatePath(opts.iconDir); err != nil {
			return err
		}
	}
	if opts.scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", opts.scale)
	}
	if opts.topology.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %d", opts.topology.FontSize)
	}
	return nil
}
