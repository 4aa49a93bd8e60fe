// Command benchmark measures how often the engine picks the move recorded
// in turn archives.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/brensch/snekmax/archive"
	"github.com/brensch/snekmax/config"
	"github.com/brensch/snekmax/logging"
	"github.com/brensch/snekmax/search"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	inDir := fs.String("in-dir", config.String("ARCHIVE_DIR", "data"), "Directory of archive .parquet files")
	limit := fs.Int("limit", config.Int("LIMIT", 0), "Stop after this many positions (0 = all)")
	searchFlags := config.BindSearchFlags(fs)
	logFlags := config.BindLogFlags(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("flag parse: %v", err)
	}

	logger, err := logging.New(os.Stderr, logFlags.Options())
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	cfg, err := searchFlags.Config()
	if err != nil {
		log.Fatalf("%v", err)
	}

	paths, err := filepath.Glob(filepath.Join(*inDir, "*.parquet"))
	if err != nil {
		log.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "no .parquet files in %s\n", *inDir)
		os.Exit(1)
	}
	sort.Strings(paths)

	res, err := archive.Benchmark(search.NewEngine(cfg), paths, *limit, logger)
	if err != nil {
		log.Fatalf("benchmark: %v", err)
	}
	fmt.Printf("depth=%d %s body=%s\n%s\n", cfg.Depth, cfg.Weights, cfg.Body, res)
}
