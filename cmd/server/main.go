// Command server exposes the ScriptlyX converters as a JSON REST API.
//
// Endpoints:
//
//	POST /api/convert      body: {"text":"...","conversion":"uzbek-latin-to-cyrillic"}
//	GET  /api/analyze?text=<text>
//	GET  /api/converters
//	GET  /api/tables?alphabet=<generic|uzbek>
//	GET  /healthz
//	GET  /metrics
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"

	"github.com/abdulaziz-sultonmurodov/ScriptlyX/convert"
	"github.com/abdulaziz-sultonmurodov/ScriptlyX/detect"
	"github.com/abdulaziz-sultonmurodov/ScriptlyX/internal/logger"
	"github.com/abdulaziz-sultonmurodov/ScriptlyX/internal/metrics"
	"github.com/abdulaziz-sultonmurodov/ScriptlyX/translit"
)

// ---- JSON request/response types ----------------------------------------

type convertRequest struct {
	Text       string     `json:"text"`
	Conversion convert.ID `json:"conversion"`
}

type convertResponse struct {
	Conversion convert.ID `json:"conversion"`
	Result     string     `json:"result"`
}

type analyzeResponse struct {
	detect.Analysis
	Suggestion detect.Suggestion `json:"suggestion"`
}

type convertersResponse struct {
	Converters []convert.ID `json:"converters"`
}

type mappingJSON struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type tableResponse struct {
	Alphabet string        `json:"alphabet"`
	Mappings []mappingJSON `json:"mappings"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusRecorder captures the response status for metrics and access logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request metrics and access logging.
func instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		elapsed := time.Since(start)
		metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())
		slog.Debug("request", "route", route, "method", r.Method, "status", rec.status, "elapsed", elapsed)
	}
}

// ---- handlers -----------------------------------------------------------

func handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		metrics.ConversionsTotal.WithLabelValues("invalid", "error").Inc()
		return
	}

	result, err := convert.Convert(norm.NFC.String(req.Text), req.Conversion)
	if err != nil {
		if errors.Is(err, convert.ErrUnknownConverter) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		metrics.ConversionsTotal.WithLabelValues(req.Conversion.String(), "error").Inc()
		return
	}

	metrics.ConversionsTotal.WithLabelValues(req.Conversion.String(), "ok").Inc()
	metrics.ConversionInputBytes.Observe(float64(len(req.Text)))
	writeJSON(w, http.StatusOK, convertResponse{Conversion: req.Conversion, Result: result})
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	text := r.URL.Query().Get("text")
	writeJSON(w, http.StatusOK, analyzeResponse{
		Analysis:   detect.Analyze(text),
		Suggestion: detect.Suggest(text),
	})
}

func handleConverters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	ids := lo.Map(convert.Converters(), func(c convert.Converter, _ int) convert.ID {
		return c.ID
	})
	writeJSON(w, http.StatusOK, convertersResponse{Converters: ids})
}

func handleTables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	alphabet := r.URL.Query().Get("alphabet")
	pairs := translit.Pairs(alphabet)
	if pairs == nil {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unknown alphabet %q (supported: %v)", alphabet, translit.Alphabets()))
		return
	}

	writeJSON(w, http.StatusOK, tableResponse{
		Alphabet: alphabet,
		Mappings: lo.Map(pairs, func(m translit.Mapping, _ int) mappingJSON {
			return mappingJSON{Source: m.Source, Target: m.Target}
		}),
	})
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- main ---------------------------------------------------------------

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	logger.Init()

	fs := ff.NewFlagSet("scriptlyx-server")
	var (
		addr           = fs.StringLong("addr", ":8080", "listen address")
		allowedOrigins = fs.StringLong("allowed-origins", "*", "comma-separated CORS origins")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", instrument("convert", handleConvert))
	mux.HandleFunc("/api/analyze", instrument("analyze", handleAnalyze))
	mux.HandleFunc("/api/converters", instrument("converters", handleConverters))
	mux.HandleFunc("/api/tables", instrument("tables", handleTables))
	mux.HandleFunc("/healthz", handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: splitOrigins(*allowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	})

	slog.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, c.Handler(mux)); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

func splitOrigins(s string) []string {
	if s == "" || s == "*" {
		return []string{"*"}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
