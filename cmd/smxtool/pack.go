package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bsm/smx"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func packCmd() *cli.Command {
	var (
		manifestPath string
		outPath      string
		byteOrder    string
		compression  string
	)

	return &cli.Command{
		Name:  "pack",
		Usage: "Build a container from a YAML manifest",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "manifest",
				Aliases:     []string{"m"},
				Usage:       "path to manifest file",
				Required:    true,
				Destination: &manifestPath,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output file",
				Required:    true,
				Destination: &outPath,
			},
		}, writerFlags(&byteOrder, &compression)...),
		Action: func(ctx context.Context, c *cli.Command) error {
			m, err := LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			sections, err := m.Load(filepath.Dir(manifestPath))
			if err != nil {
				return err
			}

			o, err := parseWriterOptions(
				pick(c, "byte-order", byteOrder, m.ByteOrder, cfg.ByteOrder),
				pick(c, "compression", compression, m.Compression, cfg.Compression),
			)
			if err != nil {
				return err
			}

			if err := writeFile(outPath, sections, o); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"sections":    sections.Len(),
				"byte_order":  o.ByteOrder,
				"compression": o.Compression,
			}).Infof("packed %s", outPath)
			return nil
		},
	}
}

// writeFile writes src to path. A partially written file is removed.
func writeFile(path string, src smx.SectionMap, o *smx.WriterOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := smx.Write(f, src, o); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
