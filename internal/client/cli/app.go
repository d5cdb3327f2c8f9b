// Package cli implements the interactive FileKeeper shell: a small REPL
// over the API client with prompts for credentials and file content.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/filekeeper/internal/client/client"
	"github.com/dmitrijs2005/filekeeper/internal/client/config"
	"github.com/dmitrijs2005/filekeeper/internal/protocol"
)

// api defines the transport surface the CLI needs. The real client.Client
// satisfies this interface; tests can provide a lightweight stub.
type api interface {
	Do(action string, body protocol.Body) (*protocol.Response, error)
	IsLoggedIn() bool
	Logout()
	Close() error
}

type App struct {
	config *config.Config
	api    api
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.Dial(c.ServerAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	printlnFn("Welcome to FileKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}
