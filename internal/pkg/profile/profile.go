// Package profile adds --cpuprofile and --memprofile to a cli.App.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/urfave/cli/v2"
)

type Profiler struct {
	CPUProfile string
	MemProfile string
	cpu        *os.File
}

func (p *Profiler) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cpuprofile",
			Value:       "",
			Usage:       "Write cpu profile to `file`",
			Destination: &p.CPUProfile,
		},
		&cli.StringFlag{
			Name:        "memprofile",
			Value:       "",
			Usage:       "Write memory profile to `file`",
			Destination: &p.MemProfile,
		},
	}
}

// Attach wires the profiler into the app's Before and After hooks.
func (p *Profiler) Attach(app *cli.App) {
	app.Flags = append(app.Flags, p.Flags()...)
	app.Before = p.Start
	app.After = p.Stop
}

func (p *Profiler) Start(c *cli.Context) error {
	if p.CPUProfile == "" {
		return nil
	}
	f, err := os.Create(filepath.Clean(p.CPUProfile))
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	p.cpu = f
	return nil
}

func (p *Profiler) Stop(c *cli.Context) error {
	if p.cpu != nil {
		pprof.StopCPUProfile()
		if err := p.cpu.Close(); err != nil {
			return fmt.Errorf("could not close cpu profile: %w", err)
		}
		p.cpu = nil
	}
	if p.MemProfile == "" {
		return nil
	}
	f, err := os.Create(filepath.Clean(p.MemProfile))
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close memory profile: %w", err)
	}
	return nil
}
