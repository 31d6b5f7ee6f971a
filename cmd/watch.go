package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/viewforge/internal/layout"
	"github.com/conneroisu/viewforge/internal/view"
	"github.com/conneroisu/viewforge/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch <layout.yml>",
	Aliases: []string{"w"},
	Short:   "Rebuild a layout whenever it or its resources change",
	Long: `Build a layout, print its description, then keep the built tree alive and
re-apply the layout each time the layout or resource file is saved. Views
whose class is unchanged are patched in place, so attributes removed from the
file keep their last value until the view is rebuilt.

Examples:
  viewforge watch panel.yml -r resources.yml`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// liveLayout owns a built tree and brings it up to date with its files.
type liveLayout struct {
	app   *app
	path  string
	out   io.Writer
	roots []view.View
	mutex sync.Mutex
}

func (l *liveLayout) build(ctx context.Context) error {
	doc, err := layout.LoadFile(l.path)
	if err != nil {
		return err
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()

	roots, issues := layout.Build(ctx, l.app.engine, doc, l.app.resources)
	reportIssues(ctx, l.app.logger, issues)
	l.roots = roots
	return printTree(ctx, l.out, l.app, l.roots)
}

// reload re-reads the resource table when it changed and re-applies the
// layout to the existing tree.
func (l *liveLayout) reload(ctx context.Context, events []watcher.ChangeEvent) error {
	resourcesPath := l.app.config.Resources.Path
	for _, event := range events {
		l.app.logger.Debug(ctx, "file changed", "path", event.Path, "type", event.Type.String())
		if resourcesPath != "" && sameFile(event.Path, resourcesPath) {
			resources, err := loadResources(resourcesPath)
			if err != nil {
				return err
			}
			l.mutex.Lock()
			l.app.resources = resources
			l.mutex.Unlock()
		}
	}

	doc, err := layout.LoadFile(l.path)
	if err != nil {
		return err
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()

	roots, issues := layout.Reapply(ctx, l.app.engine, l.roots, doc, l.app.resources)
	reportIssues(ctx, l.app.logger, issues)
	l.roots = roots
	l.app.logger.Info(ctx, "layout re-applied", "path", l.path, "views", doc.Count())
	return printTree(ctx, l.out, l.app, l.roots)
}

func sameFile(a, b string) bool {
	ia, errA := os.Stat(a)
	ib, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(ia, ib)
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	live := &liveLayout{app: a, path: args[0], out: cmd.OutOrStdout()}
	if err := live.build(ctx); err != nil {
		return err
	}

	fw, err := watcher.New(a.config.Watch.Debounce, watcher.WithLogger(a.logger))
	if err != nil {
		return err
	}
	defer fw.Stop()

	files := []string{args[0]}
	if a.config.Resources.Path != "" {
		files = append(files, a.config.Resources.Path)
	}
	if err := fw.WatchFiles(files...); err != nil {
		return err
	}
	fw.AddFilter(watcher.NoEditorFilter)
	fw.AddHandler(live.reload)

	if err := fw.Start(ctx); err != nil {
		return err
	}
	a.logger.Info(ctx, "watching for changes", "files", files)
	<-ctx.Done()
	return nil
}
