// Command qs-solve solves a·x² + b·x + c = 0 locally or through a running
// qs-server and prints the response as JSON.
//
//	qs-solve 1 -5 6
//	qs-solve --equation "x^2 + 5x + 6 = 0"
//	qs-solve --server http://localhost:8000 -- 1 0 4
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"

	"quadsolve/internal/client"
	"quadsolve/internal/logging"
	"quadsolve/internal/quadratic"
	"quadsolve/internal/response"
	"quadsolve/internal/shared"
)

var CLI struct {
	LogLevel string `help:"Log level for diagnostics on stderr" default:"warn" env:"QS_LOG_LEVEL" enum:"debug,info,warn,warning,error"`

	Solve  SolveCmd  `cmd:"" default:"withargs" help:"Solve an equation (default command)"`
	Health HealthCmd `cmd:"" help:"Check that a qs-server is up"`
	Config ConfigCmd `cmd:"" help:"Write a client config file"`
}

// RemoteFlags select a server. With neither flag set, commands that can run
// locally do so.
type RemoteFlags struct {
	Server     string `help:"qs-server base URL" env:"QS_SERVER"`
	ConfigFile string `name:"config" help:"Client config file (JSON)" type:"path"`
}

func (f RemoteFlags) remote() bool {
	return f.Server != "" || f.ConfigFile != ""
}

func (f RemoteFlags) client() (*client.Client, error) {
	cfg := &shared.ClientConfig{}
	if f.ConfigFile != "" {
		loaded, err := shared.LoadClientConfig(f.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if f.Server != "" {
		cfg.ServerURL = f.Server
	}
	return client.New(cfg), nil
}

type SolveCmd struct {
	RemoteFlags `embed:""`

	Equation     string   `short:"e" help:"Equation text, e.g. \"2x^2 - 3 = x\""`
	Coefficients []string `arg:"" optional:"" name:"coefficient" help:"Coefficients a b c (use -- before negative values)"`
}

func (c *SolveCmd) coefficients() (quadratic.Coefficients, error) {
	if c.Equation != "" {
		if len(c.Coefficients) > 0 {
			return quadratic.Coefficients{}, errors.New("give either --equation or three coefficients, not both")
		}
		return quadratic.ParseEquation(c.Equation)
	}
	if len(c.Coefficients) != 3 {
		return quadratic.Coefficients{}, fmt.Errorf("need 3 coefficients, got %d", len(c.Coefficients))
	}
	var xs [3]float64
	for i, s := range c.Coefficients {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return quadratic.Coefficients{}, fmt.Errorf("coefficient %q: %w", s, shared.ErrNotNumeric)
		}
		xs[i] = x
	}
	return quadratic.Coefficients{A: xs[0], B: xs[1], C: xs[2]}, nil
}

func (c *SolveCmd) Run(ctx context.Context) error {
	coeffs, err := c.coefficients()
	if err != nil {
		printJSON(response.EncodeError("invalid request: " + err.Error()))
		return err
	}

	if c.remote() {
		cl, err := c.client()
		if err != nil {
			return err
		}
		logging.FromContext(ctx, nil).Debug("solving remotely", "server", cl.Cfg.ServerURL,
			"a", coeffs.A, "b", coeffs.B, "c", coeffs.C)
		resp, err := cl.Solve(ctx, coeffs.A, coeffs.B, coeffs.C)
		if resp != nil {
			printJSON(response.Marshal(*resp))
		}
		if err != nil {
			return err
		}
		return responseError(resp)
	}

	res, err := coeffs.Solve()
	if err != nil {
		printJSON(response.EncodeError("invalid request: " + err.Error()))
		return err
	}
	out, err := response.MarshalReport(response.New(res.Roots, res.Discriminant, nil))
	printJSON(out)
	return err
}

type HealthCmd struct {
	RemoteFlags `embed:""`
}

func (c *HealthCmd) Run(ctx context.Context) error {
	cl, err := c.client()
	if err != nil {
		return err
	}
	if err := cl.Health(ctx); err != nil {
		return err
	}
	fmt.Printf("%s ok\n", cl.Cfg.ServerURL)
	return nil
}

type ConfigCmd struct {
	Path    string `arg:"" help:"Where to write the config" type:"path"`
	Server  string `help:"qs-server base URL" default:"http://localhost:8000"`
	Timeout int    `help:"Request timeout in seconds" default:"20"`
}

func (c *ConfigCmd) Run() error {
	cfg := &shared.ClientConfig{ServerURL: c.Server, TimeoutSeconds: c.Timeout}
	cfg.ApplyDefaults()
	if err := shared.SaveClientConfig(c.Path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", c.Path)
	return nil
}

func responseError(resp *response.Response) error {
	if resp.Error != nil {
		return errors.New(*resp.Error)
	}
	return nil
}

func printJSON(b []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		buf.Reset()
		buf.Write(b)
	}
	buf.WriteByte('\n')
	_, _ = os.Stdout.Write(buf.Bytes())
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("qs-solve"),
		kong.Description("Solve quadratic equations"),
		kong.UsageOnError(),
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	kctx.FatalIfErrorf(err)
	logging.Init(os.Stderr, level, logging.FormatText)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	kctx.BindTo(ctx, (*context.Context)(nil))

	err = kctx.Run()
	stop()
	kctx.FatalIfErrorf(err)
}
