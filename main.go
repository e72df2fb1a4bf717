package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/keyword-editor/internal/app"
	"github.com/atomicstack/keyword-editor/internal/config"
	"github.com/atomicstack/keyword-editor/internal/logging"
	"github.com/atomicstack/keyword-editor/internal/logging/events"
	"github.com/atomicstack/keyword-editor/internal/parse"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sessionInfo is the resolved editing session as the program will run it.
type sessionInfo struct {
	Mode     string       `json:"mode"`
	Document string       `json:"document"`
	Schema   string       `json:"schema,omitempty"`
	Target   string       `json:"target"`
	Commands []string     `json:"commands"`
	Add      []string     `json:"add,omitempty"`
	Language languageInfo `json:"language"`
}

type languageInfo struct {
	Requested string `json:"requested"`
	Resolved  string `json:"resolved"`
}

// terminalInfo records whether the editor can take over the terminal. It is
// only probed when the TUI will start.
type terminalInfo struct {
	Stdin     bool   `json:"stdin"`
	Stdout    bool   `json:"stdout"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	SizeError string `json:"size_error,omitempty"`
}

func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"session": describeSession(cfg.App),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	if !cfg.App.List {
		payload["terminal"] = probeTerminal(os.Stdin.Fd(), os.Stdout.Fd())
	}
	return payload
}

func describeSession(cfg app.Config) sessionInfo {
	mode := "edit"
	if cfg.List {
		mode = "list"
	}
	commands := make([]string, 0, len(cfg.Commands))
	for _, binding := range cfg.Commands {
		commands = append(commands, binding.Field+"="+binding.Command)
	}
	return sessionInfo{
		Mode:     mode,
		Document: cfg.Document,
		Schema:   cfg.SchemaPath,
		Target:   cfg.Target,
		Commands: commands,
		Add:      parse.SplitComma(cfg.Add),
		Language: languageInfo{
			Requested: cfg.Language,
			Resolved:  parse.ResolveLanguage(cfg.Language),
		},
	}
}

func probeTerminal(stdin, stdout uintptr) terminalInfo {
	info := terminalInfo{
		Stdin:  term.IsTerminal(int(stdin)),
		Stdout: term.IsTerminal(int(stdout)),
	}
	if !info.Stdout {
		return info
	}
	width, height, err := term.GetSize(int(stdout))
	if err != nil {
		info.SizeError = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}
