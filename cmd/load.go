package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lazyimage/internal/bot"
	"lazyimage/internal/config"
	"lazyimage/internal/dispatch"
	"lazyimage/internal/fetch"
	"lazyimage/internal/files"
	"lazyimage/internal/image"
	"lazyimage/internal/logger"
	"lazyimage/internal/services"
	"lazyimage/internal/view"
)

type loadOptions struct {
	savePath string
	mode     string
	snapshot string
	width    int
	height   int
}

func newLoadCmd() *cobra.Command {
	opts := &loadOptions{}

	cmd := &cobra.Command{
		Use:   "load <url>",
		Short: "Load an image URL (http, https or tg:<file_id>) through the local cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer log.Sync()

			cfg, err := config.Load(log, configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runLoad(ctx, cfg, log, args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.savePath, "save-path", "", "Cache file for this image (default <cache_dir>/<sha256(url)>.jpg)")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Content mode (scale_to_fill, scale_aspect_fit, scale_aspect_fill, center)")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "Write a PNG of the view after loading")
	cmd.Flags().IntVar(&opts.width, "width", 0, "View width (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "View height (default from config)")

	return cmd
}

func runLoad(ctx context.Context, cfg *config.Config, log *zap.Logger, rawURL string, opts *loadOptions, out io.Writer) error {
	modeName := opts.mode
	if modeName == "" {
		modeName = cfg.ContentMode
	}
	mode, err := image.ParseContentMode(modeName)
	if err != nil {
		return err
	}

	store := files.NewLocalStore(afero.NewOsFs())

	savePath := opts.savePath
	if savePath == "" {
		savePath = cachePath(cfg.CacheDir, rawURL)
		if err := store.EnsureDir(cfg.CacheDir); err != nil {
			return err
		}
	}

	fetcher, err := newFetcher(cfg, log)
	if err != nil {
		return err
	}

	queue := dispatch.NewMainQueue()
	svc := services.NewImageService(fetcher, store, queue, dispatch.NewPool(), log)

	width, height := cfg.View.Width, cfg.View.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}
	v := view.NewImageView(width, height)

	var (
		mu       sync.Mutex
		reported []services.ErrorKind
	)
	onError := func(kind services.ErrorKind) {
		mu.Lock()
		defer mu.Unlock()
		reported = append(reported, kind)
	}

	hadCache := store.Exists(savePath)
	log.Debug("starting load", zap.String("path", savePath), zap.Bool("cached", hadCache))
	svc.Load(services.Weak(v), rawURL, mode, savePath, onError)

	done := make(chan struct{})
	go func() {
		svc.Wait()
		close(done)
	}()

	select {
	case <-done:
		queue.Close()
	case <-ctx.Done():
		return ctx.Err()
	}

	if opts.snapshot != "" {
		if err := writeSnapshot(v, opts.snapshot); err != nil {
			return err
		}
	}

	mu.Lock()
	defer mu.Unlock()

	fmt.Fprintf(out, "%s -> %s (cached copy: %t)\n", rawURL, savePath, hadCache)
	if len(reported) == 0 {
		return nil
	}

	errs := make([]error, 0, len(reported))
	for _, kind := range reported {
		fmt.Fprintf(out, "error: %s\n", kind)
		errs = append(errs, errors.New(kind.String()))
	}
	return fmt.Errorf("load %s: %w", rawURL, errors.Join(errs...))
}

func newFetcher(cfg *config.Config, log *zap.Logger) (fetch.Fetcher, error) {
	hf := fetch.NewHTTPFetcher(nil, cfg.MaxFileSize, log)
	if cfg.BotToken == "" {
		return fetch.NewDefaultRouter(hf, nil), nil
	}

	tg, err := bot.NewTelegramBot(cfg.BotToken, log)
	if err != nil {
		return nil, err
	}
	return fetch.NewDefaultRouter(hf, fetch.NewTelegramFetcher(tg, hf)), nil
}

func cachePath(dir, rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return filepath.Join(dir, hex.EncodeToString(sum[:])+".jpg")
}

func writeSnapshot(v *view.ImageView, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	if err := v.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
