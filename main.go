package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/hiddenleaf/internal/ambient"
	"github.com/olivier-w/hiddenleaf/internal/config"
	"github.com/olivier-w/hiddenleaf/internal/ui"
)

func main() {
	renderPath := flag.String("render-ambient", "", "write the ambient drone to a WAV file and exit")
	seconds := flag.Float64("seconds", 12, "length of the rendered drone in seconds")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *renderPath != "" {
		if err := renderAmbient(*renderPath, time.Duration(*seconds*float64(time.Second))); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := log.Default()
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "hiddenleaf")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	acfg := ambient.DefaultConfig()
	engine, err := ambient.NewEngine(acfg, ambient.OtoSink{SampleRate: acfg.SampleRate}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	p := tea.NewProgram(ui.New(cfg, engine, logger), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		engine.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func renderAmbient(path string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("render length must be positive, got %v", d)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ambient.RenderWAV(f, ambient.DefaultConfig(), d); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
