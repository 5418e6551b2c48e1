/*
Package progress renders a terminal progress line for long-running phases,
currently the staging copy. It supports a spinner style for interactive
terminals and a simple style for plain output, with colors via fatih/color.

Basic usage:

	p := progress.New(progress.Config{Style: progress.StyleSpinner}, log)
	p.Start("Staging generator...")
	p.Update(progress.Status{CurrentItem: path, ItemsProcessed: n})
	p.Complete("Staging done")
*/
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/sonemaro/jsdocgen/pkg/logger"
)

type progress struct {
	config Config
	log    logger.Logger
	writer io.Writer

	status   Status
	message  string
	isActive bool

	renderer renderer

	mu       sync.Mutex
	stopChan chan struct{}
	stopOnce sync.Once
}

// New creates a new progress visualization instance
func New(config Config, log logger.Logger) Progress {
	if config.RefreshRate == 0 {
		config.RefreshRate = 100 * time.Millisecond
	}
	if config.Style == "" {
		config.Style = StyleSpinner
	}

	p := &progress{
		config:   config,
		log:      log,
		writer:   os.Stdout,
		stopChan: make(chan struct{}),
	}

	// Fall back to plain output when stdout is not a terminal.
	style := config.Style
	if style == StyleSpinner && !isTerminal() {
		style = StyleSimple
	}
	p.renderer = newRenderer(style, config.NoColor)

	p.log.WithFields(logger.Fields{
		"style":   style,
		"noColor": config.NoColor,
		"refresh": config.RefreshRate,
	}).Debug("Created progress instance")

	return p
}

func (p *progress) Start(message string) {
	p.mu.Lock()
	p.message = message
	p.isActive = true
	p.mu.Unlock()

	go p.renderLoop()
}

func (p *progress) Update(status Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = status
}

func (p *progress) Complete(message string) {
	p.finish(p.renderer.complete(message))
}

func (p *progress) Error(message string) {
	p.finish(p.renderer.fail(message))
}

func (p *progress) Stop() {
	p.finish("")
}

func (p *progress) finish(line string) {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isActive {
		return
	}
	p.isActive = false

	if line != "" {
		fmt.Fprintf(p.writer, "\r\033[K%s\n", line)
	} else {
		fmt.Fprint(p.writer, "\r\033[K")
	}
}

func (p *progress) renderLoop() {
	ticker := time.NewTicker(p.config.RefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.render()
		}
	}
}

func (p *progress) render() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isActive {
		return
	}

	fmt.Fprint(p.writer, p.renderer.render(p.status, p.message))
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
