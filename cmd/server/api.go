package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/padezh/padezh"
)

// ---- JSON response types ------------------------------------------------

type resultResponse struct {
	Input  string `json:"input"`
	Case   string `json:"case,omitempty"`
	Result string `json:"result"`
}

type paradigmResponse struct {
	Input string            `json:"input"`
	Forms map[string]string `json:"forms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, status int, msg string) {
	writeJSON(w, log, status, errorResponse{Error: msg})
}

// errorStatus maps library errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, padezh.ErrInvalidArgument),
		errors.Is(err, padezh.ErrNumberTooBig),
		errors.Is(err, padezh.ErrNumberTooSmall):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// query reads the request parameters shared by several endpoints.
type query struct {
	r *http.Request
}

func (q query) required(name string) (string, error) {
	v := strings.TrimSpace(q.r.URL.Query().Get(name))
	if v == "" {
		return "", fmt.Errorf("%w: missing %q query parameter", padezh.ErrInvalidArgument, name)
	}
	return v, nil
}

func (q query) get(name string) string { return q.r.URL.Query().Get(name) }

func (q query) grammaticalCase() (padezh.Case, error) {
	v, err := q.required("case")
	if err != nil {
		return 0, err
	}
	return padezh.ParseCase(v)
}

func (q query) attrs() (padezh.Attrs, error) {
	var a padezh.Attrs
	var err error
	if a.Gender, err = padezh.ParseGender(q.get("gender")); err != nil {
		return a, err
	}
	if a.Animate, err = padezh.ParseTernary(q.get("animate")); err != nil {
		return a, err
	}
	if a.Plural, err = padezh.ParseTernary(q.get("plural")); err != nil {
		return a, err
	}
	return a, nil
}

// ---- handlers -----------------------------------------------------------

type api struct {
	in  *padezh.Inflector
	log *slog.Logger
}

// fail writes err with the status it maps to.
func (h *api) fail(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", "err", err)
	}
	writeError(w, h.log, status, err.Error())
}

func (h *api) ok(w http.ResponseWriter, v any) {
	writeJSON(w, h.log, http.StatusOK, v)
}

// handleInflect serves GET /api/inflect?word=&type=&case=[&gender=&animate=&plural=].
func (h *api) handleInflect(w http.ResponseWriter, r *http.Request) {
	q := query{r}
	word, err := q.required("word")
	if err != nil {
		h.fail(w, err)
		return
	}
	wt := padezh.Generic
	if s := q.get("type"); s != "" {
		if wt, err = padezh.ParseWordType(s); err != nil {
			h.fail(w, err)
			return
		}
	}
	c, err := q.grammaticalCase()
	if err != nil {
		h.fail(w, err)
		return
	}
	a, err := q.attrs()
	if err != nil {
		h.fail(w, err)
		return
	}
	out, err := h.in.Inflect(word, wt, c, a)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, resultResponse{Input: word, Case: c.String(), Result: out})
}

// handlePhrase serves GET /api/phrase?text=&case=[&kind=&animate=].
// kind is profession, organization, term or any (the default).
func (h *api) handlePhrase(w http.ResponseWriter, r *http.Request) {
	q := query{r}
	text, err := q.required("text")
	if err != nil {
		h.fail(w, err)
		return
	}
	c, err := q.grammaticalCase()
	if err != nil {
		h.fail(w, err)
		return
	}
	var out string
	switch kind := q.get("kind"); kind {
	case "", "any":
		out, err = h.in.InflectAny(text, c)
	case "profession":
		out, err = h.in.InflectNameOfProfession(text, c)
	case "organization":
		out, err = h.in.InflectNameOfOrganization(text, c)
	case "term":
		var animate padezh.Ternary
		if animate, err = padezh.ParseTernary(q.get("animate")); err == nil {
			out, err = h.in.InflectRegularTerm(text, c, animate)
		}
	default:
		err = fmt.Errorf("%w: unknown phrase kind %q", padezh.ErrInvalidArgument, kind)
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, resultResponse{Input: text, Case: c.String(), Result: out})
}

// handleName serves GET /api/name?name=&case=[&part=&gender=].
// part is full (the default), first, patronymic or surname.
func (h *api) handleName(w http.ResponseWriter, r *http.Request) {
	q := query{r}
	name, err := q.required("name")
	if err != nil {
		h.fail(w, err)
		return
	}
	c, err := q.grammaticalCase()
	if err != nil {
		h.fail(w, err)
		return
	}
	g, err := padezh.ParseGender(q.get("gender"))
	if err != nil {
		h.fail(w, err)
		return
	}
	var out string
	switch part := q.get("part"); part {
	case "", "full":
		out, err = h.in.InflectFullname(name, c)
	case "first":
		out, err = h.in.InflectFirstname(name, c, g)
	case "patronymic":
		out, err = h.in.InflectPatronymic(name, c, g)
	case "surname":
		out, err = h.in.InflectSurname(name, c, g)
	default:
		err = fmt.Errorf("%w: unknown name part %q", padezh.ErrInvalidArgument, part)
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, resultResponse{Input: name, Case: c.String(), Result: out})
}

// handleNumeral serves GET /api/numeral?n=&case=[&unit=].
func (h *api) handleNumeral(w http.ResponseWriter, r *http.Request) {
	q := query{r}
	s, err := q.required("n")
	if err != nil {
		h.fail(w, err)
		return
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		h.fail(w, fmt.Errorf("%w: n: %v", padezh.ErrInvalidArgument, err))
		return
	}
	c, err := q.grammaticalCase()
	if err != nil {
		h.fail(w, err)
		return
	}
	out, err := h.in.InflectNumeral(n, q.get("unit"), c)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, resultResponse{Input: s, Case: c.String(), Result: out})
}

// handleSpell serves GET /api/spell?number=.
func (h *api) handleSpell(w http.ResponseWriter, r *http.Request) {
	q := query{r}
	s, err := q.required("number")
	if err != nil {
		h.fail(w, err)
		return
	}
	d, err := padezh.ParseDecimal(s)
	if err != nil {
		h.fail(w, err)
		return
	}
	out, err := padezh.Spell(d)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, resultResponse{Input: s, Result: out})
}

// handleOrdinal serves GET /api/ordinal?number=[&gender=].
func (h *api) handleOrdinal(w http.ResponseWriter, r *http.Request) {
	q := query{r}
	s, err := q.required("number")
	if err != nil {
		h.fail(w, err)
		return
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		h.fail(w, fmt.Errorf("%w: malformed integer %q", padezh.ErrInvalidArgument, s))
		return
	}
	g, err := padezh.ParseGender(q.get("gender"))
	if err != nil {
		h.fail(w, err)
		return
	}
	out, err := padezh.SpellOrdinal(n, g)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, resultResponse{Input: s, Result: out})
}

// handleParadigm serves GET /api/paradigm?text=.
func (h *api) handleParadigm(w http.ResponseWriter, r *http.Request) {
	text, err := query{r}.required("text")
	if err != nil {
		h.fail(w, err)
		return
	}
	forms, err := h.in.Paradigm(text)
	if err != nil {
		h.fail(w, err)
		return
	}
	resp := paradigmResponse{Input: text, Forms: make(map[string]string, len(forms))}
	for c, f := range forms {
		resp.Forms[padezh.Case(c).String()] = f
	}
	h.ok(w, resp)
}

// ---- metrics ------------------------------------------------------------

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "padezh",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "padezh",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// instrument records metrics and a log line for every request.
func instrument(m *metrics, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			elapsed := time.Since(start)
			m.requests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
			m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
			log.Info("request",
				"method", r.Method,
				"route", route,
				"status", ww.Status(),
				"duration", elapsed,
				"request_id", chimw.GetReqID(r.Context()))
		})
	}
}

// ---- router -------------------------------------------------------------

// newRouter builds the HTTP handler tree.
func newRouter(in *padezh.Inflector, origins []string, log *slog.Logger) http.Handler {
	h := &api{in: in, log: log}
	m := newMetrics()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet},
	}).Handler)
	r.Use(instrument(m, log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		h.ok(w, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", m.handler())

	r.Route("/api", func(sub chi.Router) {
		sub.Get("/inflect", h.handleInflect)
		sub.Get("/phrase", h.handlePhrase)
		sub.Get("/name", h.handleName)
		sub.Get("/numeral", h.handleNumeral)
		sub.Get("/spell", h.handleSpell)
		sub.Get("/ordinal", h.handleOrdinal)
		sub.Get("/paradigm", h.handleParadigm)
	})
	return r
}
