package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	BLOCK_SIZE     = 512
	DEFAULT_BLOCKS = 2880 // 1.44 MB
	MAX_BLOCKS     = 1 << 32
)

type Options struct {
	Path      string
	Blocks    uint64
	InputPath string
	Overwrite bool
}

// CreateImage writes a disk image and returns its size in blocks. With an
// input file the image grows to hold it, rounded up to a whole block.
func CreateImage(opts Options) (uint64, error) {
	if opts.Path == "" {
		return 0, errors.New("no image path")
	}
	blocks := opts.Blocks

	var src *os.File
	if opts.InputPath != "" {
		f, err := os.Open(opts.InputPath)
		if err != nil {
			return 0, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		st, err := f.Stat()
		if err != nil {
			return 0, fmt.Errorf("reading input size: %w", err)
		}
		blocks = max(blocks, blocksFor(st.Size()))
		src = f
	}
	if blocks == 0 {
		return 0, errors.New("image must have at least one block")
	}
	if blocks > MAX_BLOCKS {
		return 0, fmt.Errorf("%d blocks is more than the maximum of %d", blocks, uint64(MAX_BLOCKS))
	}

	flags := os.O_RDWR | os.O_CREATE | os.O_EXCL
	if opts.Overwrite {
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	}
	out, err := os.OpenFile(opts.Path, flags, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return 0, fmt.Errorf("%s exists, use -f to overwrite", opts.Path)
		}
		return 0, err
	}

	if src != nil {
		if _, err := io.Copy(out, src); err != nil {
			out.Close()
			return 0, fmt.Errorf("copying input: %w", err)
		}
	}
	// Truncate extends with zeroes; most filesystems store it sparse.
	if err := out.Truncate(int64(blocks * BLOCK_SIZE)); err != nil {
		out.Close()
		return 0, err
	}
	if err := out.Close(); err != nil {
		return 0, err
	}
	return blocks, nil
}

func blocksFor(size int64) uint64 {
	return uint64((size + BLOCK_SIZE - 1) / BLOCK_SIZE)
}
