package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"quadsolve/internal/logging"
	"quadsolve/internal/response"
	"quadsolve/internal/shared"
)

const (
	maxBodyBytes = 1 << 20
	usageHint    = "use POST /calculate?quadratic"
)

var errBodyTooLarge = errors.New("request body too large")

type API struct {
	// Logger receives request and error logs; nil means logging.Default().
	Logger *slog.Logger
	// AllowOrigin is sent as Access-Control-Allow-Origin on /calculate and
	// checked against the Origin of /ws upgrades. Empty means "*".
	AllowOrigin string
}

func (a *API) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, a.Logger)
}

func (a *API) allowOrigin() string {
	if a.AllowOrigin == "" {
		return "*"
	}
	return a.AllowOrigin
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeWire writes an already encoded response contract.
func writeWire(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeWire(w, code, response.EncodeError(msg))
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	b, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(b) > maxBodyBytes {
		return nil, errBodyTooLarge
	}
	return b, nil
}

// solve runs one request contract through coercion, the solver and the
// encoder, returning the HTTP status and the wire body.
func (a *API) solve(ctx context.Context, body []byte) (int, []byte) {
	coeffs, err := shared.ParseSolveRequest(body)
	if err != nil {
		a.log(ctx).Warn("invalid request", "error", err)
		return http.StatusBadRequest, response.EncodeError("invalid request: " + err.Error())
	}

	res, err := coeffs.Solve()
	if err != nil {
		a.log(ctx).Warn("solve rejected", "error", err)
		return http.StatusBadRequest, response.EncodeError("invalid request: " + err.Error())
	}

	out, encErr := response.MarshalReport(response.New(res.Roots, res.Discriminant, nil))
	if encErr != nil {
		a.log(ctx).Error("response encoding failed",
			"a", coeffs.A, "b", coeffs.B, "c", coeffs.C, "error", encErr)
		return http.StatusOK, out
	}

	a.log(ctx).Debug("solved",
		"a", coeffs.A, "b", coeffs.B, "c", coeffs.C,
		"roots", len(res.Roots), "discriminant", res.Discriminant)
	return http.StatusOK, out
}

// Calculate serves POST /calculate?quadratic.
func (a *API) Calculate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", a.allowOrigin())

	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !r.URL.Query().Has("quadratic") {
		writeError(w, http.StatusNotFound, usageHint)
		return
	}

	body, err := readBody(r)
	if err != nil {
		a.log(r.Context()).Warn("read body failed", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	code, out := a.solve(r.Context(), body)
	writeWire(w, code, out)
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Handler returns the routed mux wrapped in request-ID and access logging.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/calculate", a.Calculate)
	mux.HandleFunc("/health", a.Health)
	mux.HandleFunc("/ws", a.Live)
	mux.HandleFunc("/", a.Static) // prefix last
	return logging.Middleware(a.Logger, mux)
}
