package problems

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/registry"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	module "github.com/louisbranch/practice.space/internal/services/practice/module"
	apperrors "github.com/louisbranch/practice.space/internal/services/practice/platform/errors"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/flash"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/httpx"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/observability"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/pagerender"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/sessioncookie"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/weberror"
	"github.com/louisbranch/practice.space/internal/services/practice/routepath"
	"github.com/louisbranch/practice.space/internal/services/practice/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// NoticeHeader carries widget notices on fragment responses.
const NoticeHeader = "X-Practice-Notice"

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleProblem(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.deps.Languages.Resolve(w, r)
	entry, ok := h.lookup(r)
	if !ok {
		h.writePage(w, r, pagerender.Page{Lang: lang, Loc: loc, Fragment: templates.NotFound(loc)})
		return
	}
	inst := h.instance(entry, sessioncookie.Ensure(w, r, h.deps.SchemePolicy), nil)
	h.writePage(w, r, pagerender.Page{
		Title: entry.Title,
		Lang:  lang,
		Loc:   loc,
		Fragment: templates.ProblemPage(templates.ProblemView{
			Title:    entry.Title,
			ResetURL: routepath.ProblemReset(entry.Slug),
			Body:     h.view(r, entry, inst, loc),
		}, loc),
	})
}

func (h handlers) handleAction(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.deps.Languages.Resolve(w, r)
	entry, ok := h.lookup(r)
	if !ok {
		weberror.WriteAppError(w, r, http.StatusNotFound, loc, lang)
		return
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "core.error.body", err), loc, lang)
		return
	}
	action := strings.TrimSpace(r.PathValue("action"))

	var notices []string
	inst := h.instance(entry, sessioncookie.Ensure(w, r, h.deps.SchemePolicy), func(message string) {
		notices = append(notices, message)
	})

	ctx, span := h.deps.Tracer.Start(r.Context(), "problems.action", trace.WithAttributes(
		attribute.String("widget.id", entry.ID),
		attribute.String("widget.action", action),
	))
	err := entry.Component.Handle(ctx, inst, action, r.PostForm)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	switch {
	case err == nil:
		h.deps.Metrics.ObserveAction(entry.ID, action, observability.OutcomeOK)
	case errors.Is(err, widget.ErrUnknownAction):
		h.deps.Metrics.ObserveAction(entry.ID, action, observability.OutcomeRejected)
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "problems.invalid_action", err), loc, lang)
		return
	default:
		h.deps.Metrics.ObserveAction(entry.ID, action, observability.OutcomeFailed)
		h.deps.Logger.Error("widget action failed",
			zap.String("widget", entry.ID),
			zap.String("action", action),
			zap.Error(err),
		)
		weberror.WriteModuleError(w, r, err, loc, lang)
		return
	}

	if httpx.IsHTMXRequest(r) {
		if len(notices) > 0 {
			w.Header().Set(NoticeHeader, url.PathEscape(notices[len(notices)-1]))
		}
		h.writePage(w, r, pagerender.Page{Lang: lang, Loc: loc, Fragment: h.view(r, entry, inst, loc)})
		return
	}
	if len(notices) > 0 {
		flash.Write(w, r, flash.Success(notices[len(notices)-1]), h.deps.SchemePolicy)
	}
	httpx.WriteSeeOther(w, r, entry.Path)
}

func (h handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.deps.Languages.Resolve(w, r)
	entry, ok := h.lookup(r)
	if !ok {
		weberror.WriteAppError(w, r, http.StatusNotFound, loc, lang)
		return
	}
	sessionID, ok := sessioncookie.Read(r)
	if ok {
		inst := h.instance(entry, sessionID, nil)
		if err := widget.Unmount(r.Context(), inst); err != nil {
			h.deps.Logger.Error("widget reset failed", zap.String("widget", entry.ID), zap.Error(err))
			weberror.WriteModuleError(w, r, err, loc, lang)
			return
		}
		h.deps.Metrics.ObserveAction(entry.ID, "reset", observability.OutcomeOK)
		if httpx.IsHTMXRequest(r) {
			h.writePage(w, r, pagerender.Page{Lang: lang, Loc: loc, Fragment: h.view(r, entry, inst, loc)})
			return
		}
	}
	httpx.WriteSeeOther(w, r, entry.Path)
}

// handleTrailingSlash sends /frontend/{slug}/ to the canonical problem path.
func (h handlers) handleTrailingSlash(w http.ResponseWriter, r *http.Request) {
	target := routepath.Problem(r.PathValue("slug"))
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.deps.Languages.Resolve(w, r)
	weberror.WriteAppError(w, r, http.StatusNotFound, loc, lang)
}

func (h handlers) lookup(r *http.Request) (registry.Entry, bool) {
	entry, ok := h.deps.Registry.Lookup(r.PathValue("slug"))
	if !ok || entry.Category != registry.CategoryFrontend {
		return registry.Entry{}, false
	}
	return entry, true
}

func (h handlers) instance(entry registry.Entry, sessionID string, notify func(string)) widget.Instance {
	return widget.Instance{
		WidgetID:  entry.ID,
		SessionID: sessionID,
		ActionURL: func(action string) string { return routepath.ProblemAction(entry.Slug, action) },
		Store:     h.deps.Store,
		Notify:    notify,
	}
}

// view renders the widget, containing failures to the widget frame.
func (h handlers) view(r *http.Request, entry registry.Entry, inst widget.Instance, loc i18n.Localizer) templ.Component {
	view, err := entry.Component.View(r.Context(), inst)
	if err != nil {
		h.deps.Logger.Error("widget view failed", zap.String("widget", entry.ID), zap.Error(err))
		return templates.WidgetError(entry.ID, loc)
	}
	return view
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, h.deps.SchemePolicy, page); err != nil {
		h.deps.Logger.Error("render problem page", zap.String("path", r.URL.Path), zap.Error(err))
		weberror.WriteAppError(w, r, http.StatusInternalServerError, page.Loc, page.Lang)
	}
}
