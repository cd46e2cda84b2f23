package main

import (
	"fmt"
	"io"

	"github.com/milk9111/garden/sim"
	"github.com/spf13/cobra"
)

type runOptions struct {
	every      int
	eventsOnly bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <timeline>",
		Short: "Replay a timeline and print one line per frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return replay(cmd.OutOrStdout(), args[0], root, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.every, "every", "n", 1, "print every nth frame")
	cmd.Flags().BoolVar(&opts.eventsOnly, "events", false, "print only frames that raised events")
	return cmd
}

func replay(out io.Writer, timeline string, root *rootOptions, opts *runOptions) error {
	run, err := sim.Load(timeline, root.character)
	if err != nil {
		return err
	}
	s, err := run.Session(sim.Options{Debug: root.debug})
	if err != nil {
		return err
	}

	every := max(opts.every, 1)
	frame := 0
	var last sim.Frame
	err = run.Replay(s, func(f sim.Frame) error {
		last = f
		frame++
		if opts.eventsOnly && len(f.Events) == 0 {
			return nil
		}
		if !opts.eventsOnly && (frame-1)%every != 0 {
			return nil
		}
		_, err := fmt.Fprintln(out, f)
		return err
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s: %d frames, ended %s at (%.1f, %.1f) with %g/%g health\n",
		run.Timeline.Name, frame, last.State, last.Pos.X(), last.Pos.Z(), last.Health, last.Max)
	return err
}
