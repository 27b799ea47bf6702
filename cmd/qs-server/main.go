// Command qs-server serves the quadratic solver over HTTP and WebSocket.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"quadsolve/internal/logging"
	"quadsolve/internal/server"
)

const version = "0.1.0"

var CLI struct {
	Addr        string `help:"Listen address" default:":8000" env:"QS_ADDR"`
	LogLevel    string `help:"Log level (debug, info, warn, error)" default:"info" env:"QS_LOG_LEVEL" enum:"debug,info,warn,warning,error"`
	LogFormat   string `help:"Log format (json, text)" default:"json" env:"QS_LOG_FORMAT" enum:"json,text"`
	AllowOrigin string `help:"Access-Control-Allow-Origin value, also enforced on /ws" default:"*" env:"QS_ALLOW_ORIGIN"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("qs-server"),
		kong.Description("Quadratic equation solver service"),
		kong.UsageOnError(),
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	kctx.FatalIfErrorf(err)
	format, err := logging.ParseFormat(CLI.LogFormat)
	kctx.FatalIfErrorf(err)
	logger := logging.Init(os.Stdout, level, format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := &server.API{Logger: logger, AllowOrigin: CLI.AllowOrigin}
	logging.ServerStartup(logger, CLI.Addr, "version", version, "allow_origin", api.AllowOrigin)

	if err := server.ListenAndServe(ctx, CLI.Addr, api.Handler()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server_shutdown")
}
