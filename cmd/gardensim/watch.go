package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/milk9111/garden/levels"
	"github.com/milk9111/garden/prefabs"
	"github.com/spf13/cobra"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "watch <timeline>",
		Short: "Replay a timeline every time a spec, script, level or timeline changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, cmd.OutOrStdout(), args[0], root, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.every, "every", "n", 30, "print every nth frame")
	cmd.Flags().BoolVar(&opts.eventsOnly, "events", false, "print only frames that raised events")
	return cmd
}

// watchDirs lists the disk directories that exist and can shadow embedded files.
func watchDirs() []string {
	candidates := []string{
		prefabs.Dir,
		filepath.Join(prefabs.Dir, "scripts"),
		levels.Dir,
		filepath.Join(levels.Dir, "timelines"),
	}
	var dirs []string
	for _, d := range candidates {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func watch(ctx context.Context, out io.Writer, timeline string, root *rootOptions, opts *runOptions) error {
	dirs := watchDirs()
	if len(dirs) == 0 {
		return fmt.Errorf("gardensim: nothing to watch under %s or %s", prefabs.Dir, levels.Dir)
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return fmt.Errorf("gardensim: watch: %w", err)
	}
	defer w.Close()

	rerun := func() {
		if err := replay(out, timeline, root, opts); err != nil {
			log.Printf("gardensim: %v", err)
		}
	}
	rerun()

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Events:
			if !ok {
				return nil
			}
			log.Printf("gardensim: %s changed, replaying", change.Path)
			rerun()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("gardensim: watcher: %v", err)
		}
	}
}
