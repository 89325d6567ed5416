package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsm/smx"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func repackCmd() *cli.Command {
	var (
		byteOrder   string
		compression string
	)

	return &cli.Command{
		Name:      "repack",
		Usage:     "Rewrite a container with a different byte order or compression",
		ArgsUsage: "IN OUT",
		Flags:     writerFlags(&byteOrder, &compression),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return errors.New("repack: expected IN and OUT arguments")
			}
			in, out := c.Args().Get(0), c.Args().Get(1)

			src, endian, err := smx.ReadFile(in)
			if err != nil {
				return err
			}

			// without explicit settings, the byte order of the input is kept
			o, err := parseWriterOptions(
				pick(c, "byte-order", byteOrder, cfg.ByteOrder, endian.String()),
				pick(c, "compression", compression, cfg.Compression),
			)
			if err != nil {
				return err
			}

			if err := writeFile(out, src, o); err != nil {
				return err
			}

			dst, written, err := smx.ReadFile(out)
			if err != nil {
				return fmt.Errorf("repack: verify %s: %w", out, err)
			}
			if written != o.ByteOrder || !dst.Equal(src) {
				return fmt.Errorf("repack: verify %s: contents differ from %s", out, in)
			}

			logrus.WithFields(logrus.Fields{
				"sections":    dst.Len(),
				"byte_order":  o.ByteOrder,
				"compression": o.Compression,
			}).Infof("repacked %s to %s", in, out)
			return nil
		},
	}
}
