package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	blocks := flag.Uint64("blocks", DEFAULT_BLOCKS, "Image size in 512-byte blocks")
	input := flag.String("i", "", "File to copy in at block 0")
	force := flag.Bool("f", false, "Overwrite an existing image")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mkdisk [options] image.img\n\nCreates a zero-filled disk image for the Neotron Desktop BIOS.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mkdisk -blocks 2880 floppy.img\n")
		fmt.Fprintf(os.Stderr, "  mkdisk -i fat16.bin -blocks 65536 -f disk.img\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	opts := Options{
		Path:      flag.Arg(0),
		Blocks:    *blocks,
		InputPath: *input,
		Overwrite: *force,
	}
	written, err := CreateImage(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s: %d blocks (%d bytes)\n", opts.Path, written, written*BLOCK_SIZE)
}
