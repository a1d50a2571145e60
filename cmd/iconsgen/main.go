// Command iconsgen generates the icon table of package icons from a
// directory of SVG assets. It is normally run through go generate:
//
//	//go:generate go run ../../cmd/iconsgen -dir ../assets/icons -pkg icons -out icons_gen.go
//
// With -check it only reports whether the generated file is up to date, and
// with -watch it keeps running and regenerates whenever an asset is added,
// removed or renamed.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/catalog"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/watcher"

	"github.com/charmbracelet/log"
)

// errStale is returned by -check when the generated file is out of date.
var errStale = errors.New("generated catalog is stale; run go generate")

type options struct {
	dir     string
	out     string
	pkg     string
	root    string
	ext     string
	check   bool
	watch   bool
	verbose bool
}

func main() {
	var opts options
	flag.StringVar(&opts.dir, "dir", "", "Directory of icon assets (required)")
	flag.StringVar(&opts.out, "out", "icons_gen.go", "Generated Go file")
	flag.StringVar(&opts.pkg, "pkg", "icons", "Package name of the generated file")
	flag.StringVar(&opts.root, "root", catalog.DefaultRoot, "Lookup path prefix of every icon")
	flag.StringVar(&opts.ext, "ext", catalog.DefaultExt, "Asset file extension")
	flag.BoolVar(&opts.check, "check", false, "Exit non-zero if the generated file is out of date")
	flag.BoolVar(&opts.watch, "watch", false, "Regenerate whenever the asset directory changes")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "iconsgen"})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if opts.dir == "" {
		fmt.Fprintln(os.Stderr, "Usage: iconsgen -dir <assets> [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(opts, logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(opts options, logger *log.Logger) error {
	if opts.check {
		return check(opts, logger)
	}
	if err := generate(opts, logger); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watcher.New(opts.dir, watcher.WithLogger(logger))
	logger.Info("watching for asset changes", "dir", opts.dir)
	return w.Run(ctx, func() {
		// A broken listing (e.g. a duplicate mid-rename) is reported and
		// retried on the next change instead of ending the watch.
		if err := generate(opts, logger); err != nil {
			logger.Error("regenerate failed", "err", err)
		}
	})
}

func render(opts options, logger *log.Logger) ([]byte, int, error) {
	entries, err := catalog.Scan(opts.dir, catalog.Options{
		Ext:    opts.ext,
		Root:   opts.root,
		Logger: logger,
	})
	if err != nil {
		return nil, 0, err
	}
	src, err := catalog.Render(entries, catalog.RenderOptions{
		Package: opts.pkg,
		Dir:     opts.dir,
	})
	if err != nil {
		return nil, 0, err
	}
	return src, len(entries), nil
}

func generate(opts options, logger *log.Logger) error {
	src, n, err := render(opts, logger)
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(opts.out); err == nil && bytes.Equal(existing, src) {
		logger.Debug("catalog unchanged", "out", opts.out, "icons", n)
		return nil
	}
	if err := os.WriteFile(opts.out, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	logger.Info("generated catalog", "out", opts.out, "icons", n)
	return nil
}

func check(opts options, logger *log.Logger) error {
	src, n, err := render(opts, logger)
	if err != nil {
		return err
	}
	existing, err := os.ReadFile(opts.out)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.out, err)
	}
	if !bytes.Equal(existing, src) {
		return fmt.Errorf("%s: %w", opts.out, errStale)
	}
	logger.Info("catalog up to date", "out", opts.out, "icons", n)
	return nil
}
