package web

import (
	"database/sql"
	stderrors "errors"
	"net/http"

	"github.com/thantzin/linklet/internal/config"
	"github.com/thantzin/linklet/internal/errors"
	"github.com/thantzin/linklet/internal/history"
	"github.com/thantzin/linklet/internal/ops"
	"github.com/thantzin/linklet/internal/router"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	renderer *Renderer
}

// HandleCreate handles GET / — the share form with recent history.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var errMsg string
	if r.URL.Query().Get("err") == "decode" {
		errMsg = "That link could not be decoded. It may be corrupted or truncated."
	}

	h.renderer.renderPage(w, "create", CreatePageData{
		PageData: PageData{
			Title:   "Share",
			Version: h.renderer.version,
			Nav:     "create",
		},
		ErrorMsg: errMsg,
		History:  h.recentHistory(),
		MaxChars: h.cfg.MaxTextChars,
	})
}

// HandleShare handles POST /share — encode the submitted text into a link.
func (h *Handlers) HandleShare(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	result, err := ops.Share(h.db, h.cfg, ops.ShareInput{
		Text: r.PostFormValue("text"),
	})

	data := CreatePageData{
		PageData: PageData{
			Title:   "Share",
			Version: h.renderer.version,
			Nav:     "create",
		},
		MaxChars: h.cfg.MaxTextChars,
	}

	if err != nil {
		data.ErrorMsg = err.Error()
		data.History = h.recentHistory()
		h.renderer.renderPageStatus(w, errorStatus(err), "create", data)
		return
	}

	data.Result = result
	data.History = h.recentHistory()
	h.renderer.renderPage(w, "create", data)
}

// HandleView handles GET /v/{token} — decode the token and show the text.
func (h *Handlers) HandleView(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	result, err := ops.Resolve(ops.ResolveInput{Target: token})
	if err != nil {
		// A bad link falls back to the create page with a notice.
		http.Redirect(w, r, "/?err=decode", http.StatusSeeOther)
		return
	}
	if result.Mode != string(router.ModeView) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.renderer.renderPage(w, "view", ViewPageData{
		PageData: PageData{
			Title:   "View",
			Version: h.renderer.version,
		},
		Text:         result.Text,
		RenderedHTML: renderMarkdown(result.Text),
		Token:        token,
		Chars:        result.Chars,
	})
}

// HandleResolveAPI handles GET /api/resolve — JSON decode of a link or token.
func (h *Handlers) HandleResolveAPI(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("fragment")
	if target == "" {
		target = r.URL.Query().Get("target")
	}

	result, err := ops.Resolve(ops.ResolveInput{Target: target})
	if err != nil {
		h.renderer.renderError(w, withJSONAccept(r), err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// HandleClear handles POST /clear — wipe the share history.
func (h *Handlers) HandleClear(w http.ResponseWriter, r *http.Request) {
	if _, err := ops.Clear(h.db); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// recentHistory loads history entries for page rendering. History is
// best-effort in the UI: a load failure shows an empty list.
func (h *Handlers) recentHistory() []history.Entry {
	result, err := ops.History(h.db, ops.HistoryInput{Limit: history.Capacity})
	if err != nil {
		return nil
	}
	return result.Items
}

// errorStatus extracts the HTTP status from a structured error, defaulting to 500.
func errorStatus(err error) int {
	var lErr *errors.LinkError
	if stderrors.As(err, &lErr) {
		return lErr.Status
	}
	return http.StatusInternalServerError
}

// withJSONAccept forces JSON content negotiation for API routes.
func withJSONAccept(r *http.Request) *http.Request {
	r2 := r.Clone(r.Context())
	r2.Header.Set("Accept", "application/json")
	return r2
}
