package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sigkit/pkg/logger"
	"github.com/dmitrymomot/sigkit/pkg/signature"
)

const watchDebounce = 150 * time.Millisecond

type renderOptions struct {
	file          string
	output        string
	style         string
	accent        string
	preview       bool
	social        []string
	socialDisplay string
	watch         bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a signature from a contact file",
		Example: `  sigkit render -f contact.yaml
  sigkit render -f contact.yaml --style modern --accent "#0055ff" -o signature.html
  sigkit render -f contact.yaml --social linkedin,youtube --social-display icons --watch -o signature.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags)
			if err != nil {
				return err
			}
			if opts.watch {
				return runWatch(cmd, a, opts)
			}
			return runRender(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Contact YAML file (- for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write HTML here instead of stdout")
	cmd.Flags().StringVar(&opts.style, "style", "", "Signature style (overrides the file)")
	cmd.Flags().StringVar(&opts.accent, "accent", "", "Accent colour as #RGB or #RRGGBB (overrides the file)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render for an in-app preview instead of a mail client")
	cmd.Flags().StringSliceVar(&opts.social, "social", nil, "Enable corporate links for these channels")
	cmd.Flags().StringVar(&opts.socialDisplay, "social-display", "", "Corporate link display: text or icons")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Re-render whenever the contact file changes")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// buildRenderConfig merges the contact file with flag overrides.
func buildRenderConfig(c contactFile, opts *renderOptions) signature.RenderConfig {
	cfg := c.renderConfig()
	if opts.style != "" {
		cfg.Style = signature.Style(opts.style)
	}
	if opts.accent != "" {
		cfg.AccentColor = opts.accent
	}
	if len(opts.social) > 0 {
		cfg.SocialOptions.Enabled = true
		cfg.SocialOptions.Channels = cfg.SocialOptions.Channels[:0:0]
		for _, ch := range opts.social {
			cfg.SocialOptions.Channels = append(cfg.SocialOptions.Channels, signature.Channel(ch))
		}
	}
	if opts.socialDisplay != "" {
		cfg.SocialOptions.DisplayType = signature.DisplayType(opts.socialDisplay)
	}
	cfg.IsPreview = opts.preview
	return cfg
}

func runRender(cmd *cobra.Command, a *app, opts *renderOptions) error {
	c, err := readContactFile(opts.file)
	if err != nil {
		return err
	}
	cfg := buildRenderConfig(c, opts)
	if err := signature.ValidateRecord(cfg, a.signature.AllowedEmailDomains); err != nil {
		a.log.WarnContext(cmd.Context(), "contact file has invalid fields, rendering anyway", logger.Error(err))
	}

	html := a.gen.Generate(cmd.Context(), cfg)
	return writeOutput(cmd.OutOrStdout(), opts.output, []byte(html+"\n"))
}

// writeOutput writes to path, or to stdout when path is empty or "-".
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// runWatch renders once, then again after every change to the contact file
// until interrupted.
func runWatch(cmd *cobra.Command, a *app, opts *renderOptions) error {
	if opts.file == "-" {
		return fmt.Errorf("--watch needs a file, not stdin")
	}

	ctx := cmd.Context()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(opts.file)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", opts.file, err)
	}
	// Editors often replace the file on save, so watch its directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return watchLoop(ctx, watcher, abs, func() {
		if err := runRender(cmd, a, opts); err != nil {
			a.log.ErrorContext(ctx, "render failed", logger.Error(err), logger.Path(opts.file))
			return
		}
		a.log.InfoContext(ctx, "signature rendered", logger.Path(opts.file))
	})
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, render func()) error {
	render()

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			render()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}
