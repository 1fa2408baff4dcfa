package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"brainicon/doctor"
	"brainicon/icon"
	"brainicon/log"
)

var version = "dev"

func main() {
	log.Init(os.Stderr)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "doctor":
			code := doctor.Run(os.Stdout, icon.OutputDir)
			log.Close()
			os.Exit(code)
		case "version", "-V", "--version":
			fmt.Printf("brainicon %s\n", version)
			return
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown command %q (usage: brainicon [doctor|version])\n", os.Args[1])
			os.Exit(2)
		}
	}

	if err := run(os.Stdout, icon.OutputDir); err != nil {
		log.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Close()
}

// run writes every default icon into dir, stopping at the first failure.
// Icons already written stay on disk.
func run(w io.Writer, dir string) error {
	for _, s := range icon.DefaultSpecs {
		start := time.Now()
		path, n, err := icon.Render(dir, s)
		if err != nil {
			log.Errorf("render %s: %v", s.Filename, err)
			return fmt.Errorf("render %s: %w", s.Filename, err)
		}
		log.IconWritten(path, s.Size, n, time.Since(start))
		fmt.Fprintf(w, "Created %s\n", s.Filename)
	}
	fmt.Fprintln(w, "All icons created successfully!")
	return nil
}
