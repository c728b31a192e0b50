// Command brainfaq serves the tape-language debugger over MCP on stdio.
//
// Usage:
//
//	brainfaq [-config brainfaq.cue] [-log-level debug] [-log-journal] [-log-file path]
//
// Stdout carries the protocol; logs go to stderr and the optional sinks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/brainfaq/config"
	"github.com/jonwraymond/brainfaq/debugger"
	"github.com/jonwraymond/brainfaq/exec"
	"github.com/jonwraymond/brainfaq/server"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "brainfaq:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("brainfaq", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "path to a CUE configuration file")
		logLevel   = fs.String("log-level", "", "log level: debug, info, warn or error")
		logJournal = fs.Bool("log-journal", false, "also log to the systemd journal")
		logFile    = fs.String("log-file", "", "also append JSON logs to this file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var file config.File
	if *configPath != "" {
		var err error
		if file, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *logLevel != "" {
		file.Log.Level = *logLevel
	}
	if *logJournal {
		file.Log.Journal = true
	}
	if *logFile != "" {
		file.Log.File = *logFile
	}

	logger, closeLogs, err := newLogger(file.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLogs()

	session, err := debugger.NewSession(file.Debugger(debugger.NewSlogLogger(logger)))
	if err != nil {
		return err
	}
	executor, err := exec.New(exec.Options{Session: session})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, executor, server.Options{Logger: logger})
	if err != nil {
		return err
	}

	logger.Info("brainfaq-mcp server running on stdio")
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
