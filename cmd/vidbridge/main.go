// Package main provides the CLI entry point for vidbridge.
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/user/vidbridge/pkg/adapters/logger"
	"github.com/user/vidbridge/pkg/adapters/membuffer"
	"github.com/user/vidbridge/pkg/adapters/mp4probe"
	"github.com/user/vidbridge/pkg/adapters/softdevice"
	"github.com/user/vidbridge/pkg/config"
	"github.com/user/vidbridge/pkg/driver"
	"github.com/user/vidbridge/pkg/fourcc"
	"github.com/user/vidbridge/pkg/imageformat"
	"github.com/user/vidbridge/pkg/ports"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Formats FormatsCmd `cmd:"" help:"List image formats supported by the device."`
	Layout  LayoutCmd  `cmd:"" help:"Compute the plane layout for a format and geometry."`
	Grab    GrabCmd    `cmd:"" help:"Run a full surface readback through the software device."`
	Version VersionCmd `cmd:"" help:"Show version information."`

	Config   string `short:"C" help:"Path to a YAML config file."`
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// FormatsCmd lists the formats the device reports as supported.
type FormatsCmd struct{}

// LayoutCmd prints the computed plane layout for a fourcc.
type LayoutCmd struct {
	FourCC  string `arg:"" help:"Four-character code (e.g. NV12, YV12, RGBA)."`
	Width   int    `short:"W" help:"Image width (default from config)."`
	Height  int    `short:"H" help:"Image height (default from config)."`
	FromMP4 string `help:"Read width/height from the first video track of an MP4 file."`
}

// GrabCmd uploads a picture to a video surface and reads it back.
type GrabCmd struct {
	Input  string `arg:"" help:"Input picture (PNG or JPEG)."`
	Output string `short:"o" required:"" help:"Output PNG file path."`
	FourCC string `default:"RGBA" help:"Readback format (RGBA uses the mixer path)."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

type cliContext struct {
	cfg config.Config
	log ports.Logger
}

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("vidbridge"),
		kong.Description("Bridge a portable image API onto a native presentation device."),
		kong.UsageOnError(),
	)

	cfg := config.Defaults()
	if cli.Config != "" {
		var err error
		if cfg, err = config.Load(cli.Config); err != nil {
			ctx.FatalIfErrorf(err)
		}
		cli.LogLevel = cfg.LogLevel
	}

	var log ports.Logger
	if cli.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cli.LogLevel))
	}

	err := ctx.Run(&cliContext{cfg: cfg, log: log})
	ctx.FatalIfErrorf(err)
}

// newDriver wires the software device stack. "soft" is the only
// backend built in.
func newDriver(c *cliContext) (*driver.Driver, *softdevice.Device, error) {
	if c.cfg.Device != "soft" {
		return nil, nil, fmt.Errorf("unknown device backend %q", c.cfg.Device)
	}
	dev := softdevice.New()
	return driver.New(dev, membuffer.New(), c.log), dev, nil
}

// Run executes the formats command.
func (cmd *FormatsCmd) Run(c *cliContext) error {
	d, _, err := newDriver(c)
	if err != nil {
		return err
	}

	formats := make([]imageformat.Format, imageformat.MaxFormats)
	n, err := d.QueryImageFormats(formats)
	if err != nil {
		return err
	}
	c.log.Info("Device reports %d supported formats", n)

	fmt.Printf("%-8s %-6s %-10s %-10s %-10s %-10s\n", "FOURCC", "BPP", "RMASK", "GMASK", "BMASK", "AMASK")
	for _, f := range formats[:n] {
		if f.RMask == 0 && f.GMask == 0 && f.BMask == 0 {
			fmt.Printf("%-8s %-6d %-10s %-10s %-10s %-10s\n", f.FourCC, f.BitsPerPixel, "-", "-", "-", "-")
			continue
		}
		fmt.Printf("%-8s %-6d %#08x %#08x %#08x %#08x\n",
			f.FourCC, f.BitsPerPixel, f.RMask, f.GMask, f.BMask, f.AMask)
	}
	return nil
}

// Run executes the layout command.
func (cmd *LayoutCmd) Run(c *cliContext) error {
	code, ok := fourcc.Parse(strings.ToUpper(cmd.FourCC))
	if !ok {
		return fmt.Errorf("invalid fourcc %q", cmd.FourCC)
	}

	width, height := uint32(c.cfg.Width), uint32(c.cfg.Height)
	if cmd.Width > 0 {
		width = uint32(cmd.Width)
	}
	if cmd.Height > 0 {
		height = uint32(cmd.Height)
	}
	if cmd.FromMP4 != "" {
		w, h, err := mp4probe.Dimensions(cmd.FromMP4)
		if err != nil {
			return err
		}
		width, height = w, h
	}

	format, err := formatByFourCC(code)
	if err != nil {
		return err
	}

	d, _, err := newDriver(c)
	if err != nil {
		return err
	}
	info, err := d.CreateImage(format, width, height)
	if err != nil {
		return fmt.Errorf("compute layout for %s: %w", code, err)
	}
	defer d.DestroyImage(info.ID)

	fmt.Printf("%s %dx%d: %d plane(s), %d bytes\n", code, width, height, info.NumPlanes, info.DataSize)
	for i := 0; i < info.NumPlanes; i++ {
		fmt.Printf("  plane %d: offset %-8d pitch %d\n", i, info.Offsets[i], info.Pitches[i])
	}
	return nil
}

// Run executes the grab command.
func (cmd *GrabCmd) Run(c *cliContext) error {
	code, ok := fourcc.Parse(strings.ToUpper(cmd.FourCC))
	if !ok {
		return fmt.Errorf("invalid fourcc %q", cmd.FourCC)
	}
	if code != fourcc.RGBA {
		return fmt.Errorf("grab writes PNG output and supports RGBA readback only")
	}

	src, err := readPicture(cmd.Input)
	if err != nil {
		c.log.Error("Failed to read input: %s", err)
		return err
	}
	b := src.Bounds()
	width, height := uint32(b.Dx()), uint32(b.Dy())

	d, dev, err := newDriver(c)
	if err != nil {
		return err
	}

	ctx, err := d.CreateContext(width, height)
	if err != nil {
		return err
	}
	surf, err := d.CreateSurface(ctx, width, height)
	if err != nil {
		return err
	}
	native, err := d.SurfaceNative(surf)
	if err != nil {
		return err
	}
	if err := dev.UploadVideoSurface(native, src); err != nil {
		return err
	}

	format, err := formatByFourCC(code)
	if err != nil {
		return err
	}
	info, err := d.CreateImage(format, width, height)
	if err != nil {
		return err
	}
	defer d.DestroyImage(info.ID)

	rect := ports.Rect{X0: 0, Y0: 0, X1: width, Y1: height}
	if err := d.GetImage(surf, rect, info.ID); err != nil {
		return err
	}
	c.log.Info("Readback completed: %d bytes", info.DataSize)

	if err := writeRGBA(cmd.Output, d, info, width, height); err != nil {
		c.log.Error("Failed to write output: %s", err)
		return err
	}
	c.log.Info("Output saved to %s", cmd.Output)
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run(c *cliContext) error {
	fmt.Printf("vidbridge %s\n", version)
	return nil
}

// formatByFourCC picks the first table entry for a code.
func formatByFourCC(code fourcc.FourCC) (*imageformat.Format, error) {
	for _, e := range imageformat.Entries() {
		if e.Format.FourCC == code {
			f := e.Format
			return &f, nil
		}
	}
	return nil, fmt.Errorf("unsupported fourcc %q", code)
}

func readPicture(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return png.Decode(f)
	case strings.HasSuffix(strings.ToLower(path), ".jpg"),
		strings.HasSuffix(strings.ToLower(path), ".jpeg"):
		return jpeg.Decode(f)
	default:
		img, _, err := image.Decode(f)
		return img, err
	}
}

// writeRGBA converts the single BGRA plane of a readback image into a
// PNG file.
func writeRGBA(path string, d *driver.Driver, info *driver.ImageInfo, width, height uint32) error {
	data, err := d.ImageBytes(info.ID)
	if err != nil {
		return err
	}

	out := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	pitch := int(info.Pitches[0])
	for y := 0; y < int(height); y++ {
		row := data[y*pitch:]
		for x := 0; x < int(width); x++ {
			// The default table entry is the BGRA byte layout.
			o := out.PixOffset(x, y)
			out.Pix[o] = row[x*4+2]
			out.Pix[o+1] = row[x*4+1]
			out.Pix[o+2] = row[x*4]
			out.Pix[o+3] = row[x*4+3]
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}
