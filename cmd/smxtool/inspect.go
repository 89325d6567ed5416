package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/bsm/smx"
	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
)

type inspectReport struct {
	File              string           `json:"file"`
	ByteOrder         string           `json:"byte_order"`
	Version           uint16           `json:"version"`
	Compression       string           `json:"compression"`
	DiskSize          uint32           `json:"disk_size"`
	ImageSize         uint32           `json:"image_size"`
	StringTableOffset uint32           `json:"string_table_offset"`
	PayloadOffset     uint32           `json:"payload_offset"`
	Sections          []inspectSection `json:"sections"`
}

type inspectSection struct {
	Name       string `json:"name"`
	NameOffset uint32 `json:"name_offset"`
	DataOffset uint32 `json:"data_offset"`
	Length     uint32 `json:"length"`
}

func inspectCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the header and section table of a container",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print as JSON", Destination: &asJSON},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.Args().First()
			if name == "" {
				return errors.New("inspect: missing FILE argument")
			}

			report, err := inspect(name)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return report.Print(w)
		},
	}
}

func inspect(name string) (*inspectReport, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd, err := smx.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", name, err)
	}

	hdr := rd.Header()
	report := &inspectReport{
		File:              name,
		ByteOrder:         rd.Endianness().String(),
		Version:           hdr.Version,
		Compression:       hdr.Compression.String(),
		DiskSize:          hdr.DiskSize,
		ImageSize:         hdr.ImageSize,
		StringTableOffset: hdr.StringTableOffset,
		PayloadOffset:     hdr.PayloadOffset,
		Sections:          make([]inspectSection, 0, rd.NumSections()),
	}
	for i := 0; i < rd.NumSections(); i++ {
		sectionName, err := rd.SectionName(i)
		if err != nil {
			return nil, fmt.Errorf("inspect %s: %w", name, err)
		}
		info := rd.SectionInfo(i)
		report.Sections = append(report.Sections, inspectSection{
			Name:       sectionName,
			NameOffset: info.NameOffset,
			DataOffset: info.DataOffset,
			Length:     info.Length,
		})
	}
	return report, nil
}

func (r *inspectReport) Print(w io.Writer) error {
	fmt.Fprintf(w, "File:         %s\n", r.File)
	fmt.Fprintf(w, "Byte order:   %s\n", r.ByteOrder)
	fmt.Fprintf(w, "Version:      0x%04x\n", r.Version)
	fmt.Fprintf(w, "Compression:  %s\n", r.Compression)
	fmt.Fprintf(w, "Disk size:    %d\n", r.DiskSize)
	fmt.Fprintf(w, "Image size:   %d\n", r.ImageSize)
	fmt.Fprintf(w, "String table: 0x%08x\n", r.StringTableOffset)
	fmt.Fprintf(w, "Payload:      0x%08x\n", r.PayloadOffset)
	fmt.Fprintf(w, "Sections:     %d\n\n", len(r.Sections))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tOFFSET\tLENGTH")
	for i, s := range r.Sections {
		fmt.Fprintf(tw, "%d\t%s\t0x%08x\t%d\n", i, s.Name, s.DataOffset, s.Length)
	}
	return tw.Flush()
}
