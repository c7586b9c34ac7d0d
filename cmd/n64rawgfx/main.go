package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/bodgit/n64rawgfx"
	"github.com/bodgit/n64rawgfx/romcrc"
	"github.com/bodgit/n64rawgfx/texture"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	switch {
	case c.String("log-file") != "":
		logger.SetFlags(log.LstdFlags)
		logger.SetOutput(&lumberjack.Logger{
			Filename:   c.String("log-file"),
			MaxSize:    1,
			MaxBackups: 3,
		})
	case c.Bool("verbose"):
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func formatDepth(c *cli.Context, needed ...string) (texture.Format, texture.Depth, error) {
	if c.String("romfile") == "" {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}
	for _, name := range needed {
		if !c.IsSet(name) {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}
	}

	f, err := texture.ParseFormat(c.String("format"))
	if err != nil {
		return 0, 0, err
	}

	d, err := texture.ParseDepth(c.Int("depth"))
	if err != nil {
		return 0, 0, err
	}

	return f, d, nil
}

var textureFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "romfile",
		Aliases: []string{"r"},
		EnvVars: []string{"N64RAWGFX_ROM"},
		Usage:   "ROM `FILE` to export from or import to",
	},
	&cli.StringFlag{
		Name:    "bmpfile",
		Aliases: []string{"b"},
		Usage:   "image `FILE`, defaults to the address as 8 hex digits with a .bmp extension",
	},
	&cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "texture format (RGBA, CI, IA, I)",
	},
	&cli.IntFlag{
		Name:    "depth",
		Aliases: []string{"d"},
		Usage:   "bit depth (4, 8, 16, 32)",
	},
	&cli.Int64Flag{
		Name:    "address",
		Aliases: []string{"a"},
		Value:   -1,
		Usage:   "texture address, use 0x for hexadecimal",
	},
}

func main() {
	app := cli.NewApp()

	app.Name = "n64rawgfx"
	app.Usage = "N64 raw graphics tool"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "write log to `FILE` instead of stderr, rotating as it grows",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "export",
			Usage:       "Export a texture from a ROM to an image",
			Description: "The image container is chosen by extension: .png, .tif/.tiff or .bmp (default).",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:    "width",
					Aliases: []string{"x"},
					Usage:   "width in pixels",
				},
				&cli.IntFlag{
					Name:    "height",
					Aliases: []string{"y"},
					Usage:   "height in pixels",
				},
				&cli.IntFlag{
					Name:  "pdepth",
					Usage: "palette bit depth (16, 32), CI only",
				},
				&cli.Int64Flag{
					Name:  "paddress",
					Value: -1,
					Usage: "palette address, CI only",
				},
			}, textureFlags...),
			Action: func(c *cli.Context) error {
				f, d, err := formatDepth(c, "format", "depth", "address", "width", "height")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				o := n64rawgfx.ExportOptions{
					ROM:            c.String("romfile"),
					Image:          c.String("bmpfile"),
					Format:         f,
					Depth:          d,
					Address:        c.Int64("address"),
					Width:          c.Int("width"),
					Height:         c.Int("height"),
					PaletteAddress: c.Int64("paddress"),
				}

				if f == texture.CI {
					if !c.IsSet("pdepth") || !c.IsSet("paddress") {
						return cli.NewExitError(errors.New("CI textures need --pdepth and --paddress"), 1)
					}
					if o.PaletteDepth, err = texture.ParseDepth(c.Int("pdepth")); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				if _, err := n64rawgfx.New(newLogger(c)).Export(o); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Import an image into a ROM as a texture",
			Description: "Any BMP, PNG, GIF, JPEG, TIFF or WebP image can be read. CI and YUV textures can't be imported.",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  "fix-checksum",
					Usage: "update the ROM boot checksum afterwards",
				},
				&cli.IntFlag{
					Name:  "cic",
					Usage: "CIC variant for --fix-checksum (6101, 6102, 6103, 6105, 6106), detected if unset",
				},
			}, textureFlags...),
			Action: func(c *cli.Context) error {
				f, d, err := formatDepth(c, "format", "depth", "address")
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				o := n64rawgfx.ImportOptions{
					ROM:         c.String("romfile"),
					Image:       c.String("bmpfile"),
					Format:      f,
					Depth:       d,
					Address:     c.Int64("address"),
					FixChecksum: c.Bool("fix-checksum"),
					CIC:         romcrc.CIC(c.Int("cic")),
				}

				if _, err := n64rawgfx.New(newLogger(c)).Import(o); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
