package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/uocflix/internal/catalog"
	"github.com/dmitrijs2005/uocflix/internal/config"
	"github.com/dmitrijs2005/uocflix/internal/logging"
	"github.com/dmitrijs2005/uocflix/internal/services"
)

var errUsage = errors.New("usage")

type App struct {
	config  *config.Config
	service *services.CatalogService
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	// prompts receives field prompts; io.Discard unless interactive.
	prompts     io.Writer
	interactive bool
}

// NewApp builds the logger, loads the film catalog and creates the service.
func NewApp(c *config.Config) (*App, error) {
	log, err := logging.NewTextLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	if c.CatalogFile != "" {
		cat, err = catalog.LoadFile(c.CatalogFile)
		if err != nil {
			return nil, err
		}
	}

	interactive := stdinIsTerminal()
	prompts := io.Discard
	if interactive {
		prompts = os.Stdout
	}

	return &App{
		config:      c,
		service:     services.NewCatalogService(cat, log),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		prompts:     prompts,
		interactive: interactive,
	}, nil
}

// Run blocks in the REPL until the user exits, then frees the user table.
func (a *App) Run(ctx context.Context) {
	defer a.service.Close(ctx)

	prompt := ""
	if a.interactive {
		prompt = a.config.Prompt
		fmt.Fprintln(a.out, "Welcome to UOCFlix (type 'help' for commands)")
	}

	a.log.Debug(ctx, "repl started", "films", len(a.service.Films(ctx)))
	runREPL(ctx, a, prompt, a.reader)
}

// usernameArg returns the single username argument of a command.
func usernameArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s <username>", errUsage, cmd)
	}
	return args[0], nil
}
