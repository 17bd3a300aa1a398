// Package ui holds the form logic shared by every front end: collecting
// input, submitting it, and the cosmetic reveal and hover rules.
package ui

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/tripplan/tripplan-terminal/pkg/client"
	"github.com/tripplan/tripplan-terminal/pkg/models"
	"github.com/tripplan/tripplan-terminal/pkg/planner"
	"github.com/tripplan/tripplan-terminal/pkg/render"
)

// FormInput is the raw state of the trip form
type FormInput struct {
	Budget     string
	Duration   string
	Experience []string // checkbox values of the selected experience types
}

// ResultKind classifies the outcome of a submission
type ResultKind int

const (
	KindResults ResultKind = iota
	KindValidation
	KindHTTP
	KindNetwork
	KindTimeout
	KindBusy
	KindError
)

func (k ResultKind) String() string {
	switch k {
	case KindResults:
		return "results"
	case KindValidation:
		return "validation"
	case KindHTTP:
		return "http"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindBusy:
		return "busy"
	default:
		return "error"
	}
}

// IsError reports whether the outcome should be shown as a failure
func (k ResultKind) IsError() bool {
	return k != KindResults
}

const MsgBusy = "A search is already in progress."

// SubmitResult is everything a front end needs to update its view
type SubmitResult struct {
	Kind    ResultKind
	Message string
	Field   planner.Field // set for validation failures
	Results models.ResultList
	HTML    string
}

// Collect trims the text fields and converts the checkbox values
func Collect(in FormInput) (budget, duration string, experienceTypes []int) {
	return strings.TrimSpace(in.Budget),
		strings.TrimSpace(in.Duration),
		planner.CollectExperienceTypes(in.Experience)
}

// FormHandler runs collector, validator, request issuer and renderer for one form
type FormHandler struct {
	recommender client.Recommender
	render      render.Options
	logger      *zap.Logger
	onLoading   func(bool)
	inFlight    atomic.Bool
}

// NewFormHandler wires a handler to a recommender
func NewFormHandler(r client.Recommender, opts render.Options, logger *zap.Logger) *FormHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormHandler{
		recommender: r,
		render:      opts,
		logger:      logger,
	}
}

// OnLoading registers a callback invoked with true before the request and false after
func (h *FormHandler) OnLoading(fn func(bool)) {
	h.onLoading = fn
}

// Loading reports whether a submission is in flight
func (h *FormHandler) Loading() bool {
	return h.inFlight.Load()
}

// Submit processes one form submission. Concurrent calls while a request is
// in flight return KindBusy without touching the network.
func (h *FormHandler) Submit(ctx context.Context, in FormInput) SubmitResult {
	budget, duration, types := Collect(in)

	query, err := planner.ParseQuery(budget, duration, types)
	if err != nil {
		var verr *planner.ValidationError
		if errors.As(err, &verr) {
			return SubmitResult{
				Kind:    KindValidation,
				Message: verr.Message,
				Field:   verr.Field,
				HTML:    render.MessageHTML(verr.Message),
			}
		}
		return h.failure(KindError, err.Error())
	}

	if !h.inFlight.CompareAndSwap(false, true) {
		return SubmitResult{Kind: KindBusy, Message: MsgBusy}
	}
	defer h.inFlight.Store(false)

	h.setLoading(true)
	defer h.setLoading(false)

	results, err := h.recommender.FetchRecommendations(ctx, query)
	if err != nil {
		kind := classify(err)
		h.logger.Debug("Submission failed", zap.Stringer("kind", kind), zap.Error(err))
		return h.failure(kind, err.Error())
	}

	page, err := render.HTML(results, h.render)
	if err != nil {
		return h.failure(KindError, err.Error())
	}

	return SubmitResult{
		Kind:    KindResults,
		Results: results,
		HTML:    page,
	}
}

func (h *FormHandler) setLoading(state bool) {
	if h.onLoading != nil {
		h.onLoading(state)
	}
}

func (h *FormHandler) failure(kind ResultKind, msg string) SubmitResult {
	return SubmitResult{
		Kind:    kind,
		Message: msg,
		HTML:    render.ErrorHTML(msg),
	}
}

func classify(err error) ResultKind {
	var (
		herr *client.HTTPError
		terr *client.TimeoutError
		nerr *client.NetworkError
	)
	switch {
	case errors.As(err, &terr):
		return KindTimeout
	case errors.As(err, &nerr):
		return KindNetwork
	case errors.As(err, &herr):
		return KindHTTP
	default:
		return KindError
	}
}
