package main

import (
	"io"
	"os"
)

// readFrom reads the entire contents of path starting at byte offset seek.
// Reading fully up front, here, is what lets internal/sprite.Decode treat
// its io.Reader as infallible: any real I/O failure is surfaced by this
// function, never by the decoder.
func readFrom(path string, seek int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if seek != 0 {
		if _, err := f.Seek(seek, io.SeekStart); err != nil {
			return nil, err
		}
	}

	return io.ReadAll(f)
}
