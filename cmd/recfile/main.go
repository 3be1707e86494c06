// Command recfile inspects and maintains fixed-size-record files.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	recordfile "github.com/luhtfiimanal/go-record-file"
	"github.com/luhtfiimanal/go-record-file/console"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "recfile:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var cfg toolConfig

	sizeFlag := &cli.IntFlag{
		Name:    "size",
		Aliases: []string{"s"},
		Usage:   "record size in bytes",
	}

	return &cli.App{
		Name:  "recfile",
		Usage: "inspect and maintain fixed-size-record files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML file with tool defaults (record_size, clean_pattern)",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = loadConfig(c.String("config"))
			return err
		},
		Commands: []*cli.Command{
			{
				Name:      "size",
				Usage:     "print the byte length of a file (0 if missing)",
				ArgsUsage: "PATH",
				Action: func(c *cli.Context) error {
					n, err := recordfile.Size(pathArg(c))
					if err != nil {
						return err
					}
					fmt.Println(n)
					return nil
				},
			},
			{
				Name:      "resize",
				Usage:     "truncate or zero-extend a file to an exact byte length",
				ArgsUsage: "PATH BYTES",
				Action: func(c *cli.Context) error {
					path := pathArg(c)
					raw := console.Arg(c.Args().Slice(), 1, "New size in bytes: ")
					n, err := strconv.ParseInt(raw, 10, 64)
					if err != nil {
						return fmt.Errorf("size %q: %w", raw, err)
					}
					return recordfile.SetSize(path, n)
				},
			},
			{
				Name:      "cat",
				Usage:     "print a file's content as text",
				ArgsUsage: "PATH",
				Action: func(c *cli.Context) error {
					s, err := recordfile.ReadAllText(pathArg(c))
					if err != nil {
						return err
					}
					fmt.Print(s)
					return nil
				},
			},
			{
				Name:      "count",
				Usage:     "print the number of complete records in a file",
				ArgsUsage: "PATH",
				Flags:     []cli.Flag{sizeFlag},
				Action: func(c *cli.Context) error {
					elem, err := recordSize(c, &cfg)
					if err != nil {
						return err
					}
					path := pathArg(c)
					console.Debugf("counting %d-byte records in %s", elem, path)
					n, err := recordfile.Count(path, elem)
					if err != nil {
						return alignmentExit(err)
					}
					fmt.Println(n)
					return nil
				},
			},
			{
				Name:      "head",
				Usage:     "hex-dump the first record of a file",
				ArgsUsage: "PATH",
				Flags:     []cli.Flag{sizeFlag},
				Action: func(c *cli.Context) error {
					return dumpEdge(c, &cfg, recordfile.FirstRecord)
				},
			},
			{
				Name:      "tail",
				Usage:     "hex-dump the last record of a file",
				ArgsUsage: "PATH",
				Flags:     []cli.Flag{sizeFlag},
				Action: func(c *cli.Context) error {
					return dumpEdge(c, &cfg, recordfile.LastRecord)
				},
			},
			{
				Name:      "clean",
				Usage:     "delete files in a directory by glob pattern",
				ArgsUsage: "DIR",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "pattern",
						Aliases: []string{"p"},
						Usage:   "glob matched against base names (default: all files)",
					},
					&cli.BoolFlag{
						Name:    "recurse",
						Aliases: []string{"r"},
						Usage:   "descend into subdirectories",
					},
				},
				Action: func(c *cli.Context) error {
					dir := console.Arg(c.Args().Slice(), 0, "Directory: ")
					pattern := c.String("pattern")
					if pattern == "" {
						pattern = cfg.CleanPattern
					}
					return recordfile.DeleteAll(dir, pattern, c.Bool("recurse"))
				},
			},
		},
	}
}

// pathArg resolves the first positional argument, prompting interactively
// when it is missing.
func pathArg(c *cli.Context) string {
	return console.Arg(c.Args().Slice(), 0, "File path: ")
}

// recordSize resolves the record size from the -s flag or the config file.
func recordSize(c *cli.Context, cfg *toolConfig) (int, error) {
	if n := c.Int("size"); n > 0 {
		return n, nil
	}
	if cfg.RecordSize > 0 {
		return cfg.RecordSize, nil
	}
	return 0, errors.New("record size not set: pass -s or set record_size in the config file")
}

func dumpEdge(c *cli.Context, cfg *toolConfig, read func(string, int) ([]byte, error)) error {
	elem, err := recordSize(c, cfg)
	if err != nil {
		return err
	}
	b, err := read(pathArg(c), elem)
	if err != nil {
		return alignmentExit(err)
	}
	if b == nil {
		fmt.Println("(empty)")
		return nil
	}
	fmt.Print(hex.Dump(b))
	return nil
}

// alignmentExit turns an alignment violation into a distinct exit code with a
// message naming the stray byte count; other errors pass through.
func alignmentExit(err error) error {
	var ae *recordfile.AlignmentError
	if errors.As(err, &ae) {
		stray := ae.FileSize % int64(ae.ElementSize)
		return cli.Exit(fmt.Sprintf("%s: %d trailing bytes do not fit the %d-byte record size",
			ae.Path, stray, ae.ElementSize), 2)
	}
	return err
}
