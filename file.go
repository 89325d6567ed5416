package smx

import (
	"bytes"
	"os"
)

func readFileFallback(name string) (*Container, Endianness, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, 0, err
	}
	return ReadContainer(bytes.NewReader(data))
}
