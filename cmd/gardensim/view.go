package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/sim"
	"github.com/spf13/cobra"
)

var errQuit = errors.New("gardensim: quit")

type viewOptions struct {
	speed  float64
	unitsX float64
}

func newViewCmd(root *rootOptions) *cobra.Command {
	opts := &viewOptions{}
	cmd := &cobra.Command{
		Use:   "view <timeline>",
		Short: "Replay a timeline in the terminal (space pauses, q quits)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return view(ctx, args[0], root, opts)
		},
	}
	cmd.Flags().Float64Var(&opts.speed, "speed", 1, "playback speed")
	cmd.Flags().Float64Var(&opts.unitsX, "zoom", 25, "world units per terminal column")
	return cmd
}

var styles = map[cellKind]tcell.Style{
	kindEmpty:     tcell.StyleDefault,
	kindSolid:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
	kindUpdraft:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	kindDamage:    tcell.StyleDefault.Foreground(tcell.ColorRed),
	kindCheer:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
	kindEnemy:     tcell.StyleDefault.Foreground(tcell.ColorPurple),
	kindEffect:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	kindCharacter: tcell.StyleDefault.Foreground(tcell.ColorWhite),
}

func characterStyle(f sim.Frame) tcell.Style {
	switch {
	case f.Dodge == component.PerfectDodge:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	case f.State == component.StateStunned:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case f.State == component.StateAttacking:
		return tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	}
	return styles[kindCharacter]
}

func view(ctx context.Context, timeline string, root *rootOptions, opts *viewOptions) error {
	run, err := sim.Load(timeline, root.character)
	if err != nil {
		return err
	}
	s, err := run.Session(sim.Options{})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	speed := opts.speed
	if speed <= 0 {
		speed = 1
	}
	ticker := time.NewTicker(time.Duration(run.Timeline.Step / speed * float64(time.Second)))
	defer ticker.Stop()

	paused := false
	wait := func() error {
		for {
			select {
			case <-ctx.Done():
				return errQuit
			case ev := <-events:
				switch key(ev) {
				case 'q':
					return errQuit
				case ' ':
					paused = !paused
				}
			case <-ticker.C:
				if !paused {
					return nil
				}
			}
		}
	}

	err = run.Replay(s, func(f sim.Frame) error {
		draw(screen, s, f, run.Timeline.Name, opts.unitsX)
		return wait()
	})
	if errors.Is(err, errQuit) {
		return nil
	}
	if err != nil {
		return err
	}

	// hold the last frame until the user quits
	paused = true
	if err := wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func key(ev tcell.Event) rune {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return 0
	}
	switch k.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 'q'
	case tcell.KeyRune:
		return k.Rune()
	}
	return 0
}

func draw(screen tcell.Screen, s *sim.Session, f sim.Frame, name string, unitsX float64) {
	w, h := screen.Size()
	screen.Clear()
	if h < 2 || w < 1 {
		screen.Show()
		return
	}

	v := viewport{w: w, h: h - 1, unitsX: unitsX, unitsZ: 2 * unitsX, center: f.Pos}
	grid := rasterize(scene{
		level:      s.World.Level(),
		enemies:    s.World.Enemies(),
		effects:    s.Effects.Live(),
		pos:        f.Pos,
		halfHeight: s.Body.HalfHeight,
		radius:     s.Body.Radius,
	}, v)

	header := fmt.Sprintf(" %s  t=%.2f  %s  hp %g/%g  spin %.0f deg/s",
		name, f.T, f.State, f.Health, f.Max, s.Character.SpinSpeed())
	for i, r := range header {
		if i >= w {
			break
		}
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}

	for row, cells := range grid {
		for col, c := range cells {
			style := styles[c.kind]
			if c.kind == kindCharacter {
				style = characterStyle(f)
			}
			screen.SetContent(col, row+1, c.r, nil, style)
		}
	}
	screen.Show()
}
