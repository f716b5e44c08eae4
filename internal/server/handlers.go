package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/ppiankov/notmytype/internal/catalog"
	"github.com/ppiankov/notmytype/internal/export"
	"github.com/ppiankov/notmytype/internal/gallery"
	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/share"
	"github.com/ppiankov/notmytype/internal/store"
)

// pairRequest is the JSON body of POST /validate and POST /saved
type pairRequest struct {
	Heading string   `json:"heading"`
	Body    string   `json:"body"`
	Tags    []string `json:"tags,omitempty"`
	UseCase string   `json:"useCase,omitempty"`
}

// pairingDetail is a curated pairing together with its validation
type pairingDetail struct {
	Pairing    model.FontPairing      `json:"pairing"`
	Validation model.ValidationResult `json:"validation"`
}

type shareResponse struct {
	Query string `json:"query"`
	Link  string `json:"link"`
}

const errPairRequired = "heading and body are required"

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSONResponse(ctx, fasthttp.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleValidate(ctx *fasthttp.RequestCtx) {
	var heading, body string

	switch {
	case ctx.IsGet():
		var ok bool
		heading, body, ok = queryPair(ctx)
		if !ok {
			writeJSONError(ctx, fasthttp.StatusBadRequest, errPairRequired)
			return
		}
	case ctx.IsPost():
		req, ok := decodePairRequest(ctx)
		if !ok {
			return
		}
		heading, body = req.Heading, req.Body
	default:
		methodNotAllowed(ctx)
		return
	}

	report := model.Report{
		Validation: s.validator.Validate(heading, body),
		ShareQuery: share.Encode(heading, body),
	}
	if s.critic != nil && ctx.QueryArgs().GetBool("critique") {
		report.Critique = s.critic.Critique(ctx, report.Validation)
	}

	writeJSONResponse(ctx, fasthttp.StatusOK, report)
}

func (s *Server) handlePairings(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		methodNotAllowed(ctx)
		return
	}

	args := ctx.QueryArgs()
	pairings := s.gallery.Search(string(args.Peek("q")), string(args.Peek("tag")))
	if pairings == nil {
		pairings = []model.FontPairing{}
	}
	writeJSONResponse(ctx, fasthttp.StatusOK, pairings)
}

func (s *Server) handlePairing(ctx *fasthttp.RequestCtx, id string) {
	if !ctx.IsGet() {
		methodNotAllowed(ctx)
		return
	}

	p, err := s.gallery.Get(id)
	if errors.Is(err, gallery.ErrNotFound) {
		writeJSONError(ctx, fasthttp.StatusNotFound, fmt.Sprintf("pairing %q not found", id))
		return
	}
	if err != nil {
		s.internalError(ctx, err)
		return
	}

	writeJSONResponse(ctx, fasthttp.StatusOK, pairingDetail{
		Pairing:    p,
		Validation: s.validator.Validate(p.HeadingFont, p.BodyFont),
	})
}

func (s *Server) handleTags(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		methodNotAllowed(ctx)
		return
	}
	writeJSONResponse(ctx, fasthttp.StatusOK, s.gallery.Tags())
}

func (s *Server) handleSaved(ctx *fasthttp.RequestCtx) {
	if s.store == nil {
		writeJSONError(ctx, fasthttp.StatusServiceUnavailable, "store not configured")
		return
	}

	switch {
	case ctx.IsGet():
		saved, err := s.store.List(ctx)
		if err != nil {
			s.storeError(ctx, err)
			return
		}
		if saved == nil {
			saved = []model.SavedPairing{}
		}
		writeJSONResponse(ctx, fasthttp.StatusOK, saved)

	case ctx.IsPost():
		req, ok := decodePairRequest(ctx)
		if !ok {
			return
		}
		saved, err := s.store.Save(ctx, model.FontPairing{
			HeadingFont: req.Heading,
			BodyFont:    req.Body,
			Tags:        req.Tags,
			UseCase:     req.UseCase,
		})
		if err != nil {
			s.storeError(ctx, err)
			return
		}
		writeJSONResponse(ctx, fasthttp.StatusCreated, saved)

	default:
		methodNotAllowed(ctx)
	}
}

func (s *Server) handleSavedItem(ctx *fasthttp.RequestCtx, id string) {
	if s.store == nil {
		writeJSONError(ctx, fasthttp.StatusServiceUnavailable, "store not configured")
		return
	}

	switch {
	case ctx.IsGet():
		saved, err := s.store.Get(ctx, id)
		if err != nil {
			s.storeError(ctx, err)
			return
		}
		writeJSONResponse(ctx, fasthttp.StatusOK, saved)

	case ctx.IsDelete():
		if err := s.store.Delete(ctx, id); err != nil {
			s.storeError(ctx, err)
			return
		}
		ctx.SetStatusCode(fasthttp.StatusNoContent)

	default:
		methodNotAllowed(ctx)
	}
}

func (s *Server) handleExport(ctx *fasthttp.RequestCtx, name string) {
	if !ctx.IsGet() {
		methodNotAllowed(ctx)
		return
	}

	format, err := export.ParseFormat(name)
	if err != nil {
		writeJSONError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	heading, body, ok := queryPair(ctx)
	if !ok {
		writeJSONError(ctx, fasthttp.StatusBadRequest, errPairRequired)
		return
	}

	content, err := export.Render(format, heading, body)
	if err != nil {
		s.internalError(ctx, err)
		return
	}

	ctx.Response.Header.Set("Content-Type", format.ContentType())
	if format != export.FormatEmbed {
		ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(content)
}

func (s *Server) handleShare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		methodNotAllowed(ctx)
		return
	}

	heading, body, ok := queryPair(ctx)
	if !ok {
		writeJSONError(ctx, fasthttp.StatusBadRequest, errPairRequired)
		return
	}

	writeJSONResponse(ctx, fasthttp.StatusOK, shareResponse{
		Query: share.Encode(heading, body),
		Link:  share.Link(s.cfg.BaseURL, heading, body),
	})
}

func (s *Server) handleFonts(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		methodNotAllowed(ctx)
		return
	}

	fonts := []model.CatalogFont{}
	if s.fonts != nil {
		args := ctx.QueryArgs()
		fonts = catalog.FilterByCategory(s.fonts.Search(ctx, string(args.Peek("q"))), string(args.Peek("category")))
	}
	writeJSONResponse(ctx, fasthttp.StatusOK, fonts)
}

func (s *Server) handleCategories(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		methodNotAllowed(ctx)
		return
	}
	writeJSONResponse(ctx, fasthttp.StatusOK, catalog.Categories())
}

func (s *Server) storeError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSONError(ctx, fasthttp.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrLocked):
		writeJSONError(ctx, fasthttp.StatusServiceUnavailable, err.Error())
	default:
		s.internalError(ctx, err)
	}
}

func (s *Server) internalError(ctx *fasthttp.RequestCtx, err error) {
	s.logger.Error("Request failed", "path", string(ctx.Path()), "error", err)
	writeJSONError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
}

func queryPair(ctx *fasthttp.RequestCtx) (heading, body string, ok bool) {
	return share.DecodeQuery(string(ctx.URI().QueryString()))
}

func decodePairRequest(ctx *fasthttp.RequestCtx) (pairRequest, bool) {
	var req pairRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeJSONError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return req, false
	}
	if req.Heading == "" || req.Body == "" {
		writeJSONError(ctx, fasthttp.StatusBadRequest, errPairRequired)
		return req, false
	}
	return req, true
}
