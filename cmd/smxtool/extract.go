package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bsm/smx"
	"github.com/golang/snappy"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func extractCmd() *cli.Command {
	var (
		outDir    string
		useSnappy bool
	)

	return &cli.Command{
		Name:      "extract",
		Usage:     "Write every section of a container to its own file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output directory",
				Value:       ".",
				Destination: &outDir,
			},
			&cli.BoolFlag{
				Name:        "snappy",
				Usage:       "snappy-compress each section and add a .sz suffix",
				Destination: &useSnappy,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.Args().First()
			if name == "" {
				return errors.New("extract: missing FILE argument")
			}

			container, _, err := smx.ReadFile(name)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			for _, section := range container.Names() {
				data, _ := container.Get(section)
				fname := sectionFileName(section)
				if useSnappy {
					data = snappy.Encode(nil, data)
					fname += ".sz"
				}

				path := filepath.Join(outDir, fname)
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				logrus.WithFields(logrus.Fields{
					"section": section,
					"path":    path,
					"bytes":   len(data),
				}).Debug("extracted section")
			}

			logrus.WithField("sections", container.Len()).Infof("extracted %s", name)
			return nil
		},
	}
}

// sectionFileName maps a section name onto a safe file name.
func sectionFileName(section string) string {
	if section == "" || section == "." || section == ".." {
		return "_" + section
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return '_'
		}
		return r
	}, section)
}
