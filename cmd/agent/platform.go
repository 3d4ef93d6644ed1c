package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"example.com/tracking/internal/permission"
)

// devCapability stands in for the platform location APIs during local
// development: the service is always enabled and requests resolve granted.
type devCapability struct {
	logger *log.Logger
}

func newDevCapability(logger *log.Logger) *devCapability {
	return &devCapability{logger: logger}
}

func (c *devCapability) Status(ctx context.Context, kind permission.Kind) (permission.Result, error) {
	return permission.Result{Status: permission.StatusUndetermined, CanAskAgain: true}, nil
}

func (c *devCapability) Request(ctx context.Context, kind permission.Kind) (permission.Result, error) {
	c.logger.Printf("platform request for %s permission: granted", kind)
	return permission.Granted(), nil
}

func (c *devCapability) ServiceEnabled(ctx context.Context) (bool, error) {
	return true, nil
}

func (c *devCapability) OpenAppSettings(ctx context.Context) error {
	c.logger.Printf("opening app settings")
	return nil
}

func (c *devCapability) OpenURL(ctx context.Context, uri string) error {
	c.logger.Printf("opening %s", uri)
	return nil
}

// consolePrompter renders blocking prompts on the terminal and reads the
// chosen action index from stdin. Empty input picks the affirmative (last)
// action.
type consolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsolePrompter(in io.Reader, out io.Writer) *consolePrompter {
	return &consolePrompter{in: bufio.NewReader(in), out: out}
}

func (p *consolePrompter) Present(ctx context.Context, prompt permission.Prompt) (int, error) {
	fmt.Fprintf(p.out, "\n%s\n%s\n", prompt.Title, prompt.Message)
	for i, action := range prompt.Actions {
		fmt.Fprintf(p.out, "  [%d] %s\n", i, action.Label)
	}
	fmt.Fprintf(p.out, "choice: ")

	line, err := p.in.ReadString('\n')
	if err != nil {
		return 0, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return len(prompt.Actions) - 1, nil
	}
	choice, err := strconv.Atoi(line)
	if err != nil || choice < 0 || choice >= len(prompt.Actions) {
		return 0, fmt.Errorf("invalid choice %q", line)
	}
	return choice, nil
}
