package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsm/smx"
	"github.com/bsm/smx/opcode"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func disasmCmd() *cli.Command {
	var (
		section string
		offset  int64
	)

	return &cli.Command{
		Name:      "disasm",
		Usage:     "Disassemble the code section of a container",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "section",
				Aliases:     []string{"s"},
				Usage:       "section holding the instruction stream",
				Value:       ".code",
				Destination: &section,
			},
			&cli.Int64Flag{
				Name:        "offset",
				Usage:       "byte offset of the first instruction within the section",
				Destination: &offset,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.Args().First()
			if name == "" {
				return errors.New("disasm: missing FILE argument")
			}

			container, endian, err := smx.ReadFile(name)
			if err != nil {
				return err
			}
			code, ok := container.Get(section)
			if !ok {
				return fmt.Errorf("disasm: %s has no section %q", name, section)
			}
			if offset < 0 || offset > int64(len(code)) {
				return fmt.Errorf("disasm: offset %d is outside section %q (%d bytes)", offset, section, len(code))
			}

			logrus.WithFields(logrus.Fields{
				"section":    section,
				"byte_order": endian,
				"bytes":      len(code) - int(offset),
			}).Debug("disassembling")

			w := c.Root().Writer
			ins, err := opcode.DecodeAll(code[offset:], endian.ByteOrder())
			pos := offset
			for _, in := range ins {
				fmt.Fprintf(w, "%08x  %s\n", pos, in)
				pos += int64(in.Size())
			}
			if err != nil {
				return fmt.Errorf("disasm: at 0x%x: %w", pos, err)
			}
			return nil
		},
	}
}
