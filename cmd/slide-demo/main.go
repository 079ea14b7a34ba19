package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/slide/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Debug.LogFile != "" {
		f, err := tea.LogToFile(cfg.Debug.LogFile, "slide")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	}

	keys, err := loadKeymap()
	if err != nil {
		log.Fatalf("keymap: %v", err)
	}

	p := tea.NewProgram(newApp(cfg, keys), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "slide-demo: %v\n", err)
		os.Exit(1)
	}
}
