package main

import (
	"github.com/milk9111/garden/levels"
	"github.com/milk9111/garden/prefabs"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	prefabDir string
	levelDir  string
	character string
	debug     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "gardensim",
		Short:         "Replay input timelines against the garden character controller",
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			prefabs.Dir = opts.prefabDir
			levels.Dir = opts.levelDir
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.prefabDir, "prefabs", prefabs.Dir, "directory whose character specs shadow the embedded ones")
	flags.StringVar(&opts.levelDir, "levels", levels.Dir, "directory whose levels and timelines shadow the embedded ones")
	flags.StringVarP(&opts.character, "character", "c", "", "character spec overriding the timeline's")
	flags.BoolVar(&opts.debug, "debug", false, "log every state transition")

	cmd.AddCommand(
		newRunCmd(opts),
		newWatchCmd(opts),
		newViewCmd(opts),
	)
	return cmd
}
