package smx

import (
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/zlib"
)

var errNegativePosition = errors.New("smx: negative position")

// payloadReader presents a file with a compressed payload as one seekable
// stream in image coordinates. Positions before the payload offset are
// served by the underlying file, the rest by the decompressed payload.
type payloadReader struct {
	r     io.ReadSeeker
	image []byte
	start int64 // payload offset
	pos   int64
}

// newPayloadReader returns r itself for uncompressed files. Otherwise it
// reads the stored payload, checks its length against the disk size and
// decompresses it.
func newPayloadReader(r io.ReadSeeker, hdr *Header) (io.ReadSeeker, error) {
	if hdr.Compression == CompressionNone {
		return r, nil
	}

	start := int64(hdr.PayloadOffset)
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	stored, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if expected := int64(hdr.DiskSize) - start; int64(len(stored)) != expected {
		return nil, &DiskSizeError{Expected: expected, Actual: int64(len(stored))}
	}

	image, err := inflate(stored)
	if err != nil {
		return nil, &DecompressError{Err: err}
	}

	// leave the underlying file where an uncompressed reader would be
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	return &payloadReader{r: r, image: image, start: start, pos: start}, nil
}

func inflate(p []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(p))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return io.ReadAll(zr)
}

// Read implements io.Reader. A single call never crosses the payload offset.
func (p *payloadReader) Read(b []byte) (int, error) {
	if p.pos < p.start {
		if max := p.start - p.pos; int64(len(b)) > max {
			b = b[:max]
		}
		n, err := p.r.Read(b)
		p.pos += int64(n)
		return n, err
	}

	rel := p.pos - p.start
	if rel >= int64(len(p.image)) {
		return 0, io.EOF
	}
	n := copy(b, p.image[rel:])
	p.pos += int64(n)
	return n, nil
}

// Seek implements io.Seeker. io.SeekEnd is relative to the end of the
// decompressed image.
func (p *payloadReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = p.pos + offset
	case io.SeekEnd:
		abs = p.start + int64(len(p.image)) + offset
	default:
		return 0, errors.New("smx: invalid whence")
	}
	if abs < 0 {
		return 0, errNegativePosition
	}

	// keep the underlying file in step for reads before the payload
	if _, err := p.r.Seek(min(abs, p.start), io.SeekStart); err != nil {
		return 0, err
	}
	p.pos = abs
	return abs, nil
}
