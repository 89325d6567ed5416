//go:build !unix

package smx

// ReadFile reads a whole file.
func ReadFile(name string) (*Container, Endianness, error) {
	return readFileFallback(name)
}
