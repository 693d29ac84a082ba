// Package server exposes map generation over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/internal/store"
	"mapgen/internal/terrain"
)

const maxDrawScale = 16

// Handler serves the map API.
type Handler struct {
	Store    store.Store
	Defaults terrain.Config
	// MaxSize caps the map size a request may ask for.
	MaxSize int
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	maps := s.Group("/api/maps")
	maps.POST("", h.create)
	maps.GET("", h.list)
	maps.GET("/:id", h.get)
	maps.GET("/:id/image", h.image)
	maps.GET("/:id/text", h.text)
}

type createRequest struct {
	Seed    string `json:"seed"`
	Size    int    `json:"size"`
	Walkers int    `json:"walkers"`
	Steps   int    `json:"steps"`
	Strict  bool   `json:"strict"`
}

type mapSummary struct {
	ID        string         `json:"id"`
	Seed      string         `json:"seed"`
	Size      int            `json:"size"`
	Walkers   int            `json:"walkers"`
	Steps     int            `json:"steps"`
	Kinds     map[string]int `json:"kinds"`
	CreatedAt time.Time      `json:"created_at"`
}

var errSizeTooLarge = errors.New("map size exceeds server limit")

func (h Handler) create(c context.Context, ctx *app.RequestContext) {
	var body createRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "invalid json")
		return
	}
	cfg, err := h.config(body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	id := store.MapID(cfg)

	if rec, err := h.Store.Get(c, id); err == nil {
		writeSummary(ctx, consts.StatusOK, rec)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		writeError(ctx, err)
		return
	}

	start := time.Now()
	gen, err := terrain.New(cfg)
	if err != nil {
		writeError(ctx, err)
		return
	}
	m, err := gen.Generate(c)
	if err != nil {
		hlog.CtxWarnf(c, "generate map %s: %v", id, err)
		writeError(ctx, err)
		return
	}
	rec := store.NewRecord(id, cfg, m)
	if err := h.Store.Save(c, rec); err != nil {
		writeError(ctx, err)
		return
	}
	hlog.CtxInfof(c, "generated map %s seed=%q size=%d in %s", id, cfg.Seed, cfg.MapSize, time.Since(start).Round(time.Millisecond))
	writeSummary(ctx, consts.StatusCreated, rec)
}

// config merges a request over the server defaults.
func (h Handler) config(body createRequest) (terrain.Config, error) {
	cfg := h.Defaults
	cfg.Seed = body.Seed
	if cfg.Seed == "" {
		cfg.Seed = core.RandomSeed(32)
	}
	if body.Size != 0 {
		cfg.MapSize = body.Size
	}
	if body.Walkers != 0 {
		cfg.Walkers = body.Walkers
	}
	if body.Steps != 0 {
		cfg.Steps = body.Steps
	}
	cfg.Strict = body.Strict
	if h.MaxSize > 0 && cfg.MapSize > h.MaxSize {
		return cfg, fmt.Errorf("%w: %d > %d", errSizeTooLarge, cfg.MapSize, h.MaxSize)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (h Handler) list(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	recs, err := h.Store.List(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	out := make([]mapSummary, 0, len(recs))
	for _, rec := range recs {
		s, err := summarize(rec)
		if err != nil {
			writeError(ctx, err)
			return
		}
		out = append(out, s)
	}
	ctx.JSON(consts.StatusOK, map[string]any{"maps": out})
}

func (h Handler) get(c context.Context, ctx *app.RequestContext) {
	rec, err := h.Store.Get(c, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeSummary(ctx, consts.StatusOK, rec)
}

func (h Handler) image(c context.Context, ctx *app.RequestContext) {
	m, err := h.load(c, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	format, err := render.ParseFormat(string(ctx.Query("format")))
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
		return
	}
	opts := render.Options{Scale: h.Defaults.DrawScale}
	if v := ctx.Query("scale"); v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil || scale < 1 || scale > maxDrawScale {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "scale must be between 1 and "+strconv.Itoa(maxDrawScale))
			return
		}
		opts.Scale = scale
	}
	if v := ctx.Query("debug"); v != "" {
		opts.Debug, _ = strconv.ParseBool(v)
	}
	if v := ctx.Query("relief"); v != "" {
		relief, err := strconv.ParseFloat(v, 64)
		if err != nil || relief < 0 || relief > 1 {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "relief must be between 0 and 1")
			return
		}
		opts.Relief = relief
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, render.Image(m, opts), format); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(consts.StatusOK, format.ContentType(), buf.Bytes())
}

func (h Handler) text(c context.Context, ctx *app.RequestContext) {
	m, err := h.load(c, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	var buf bytes.Buffer
	if err := render.WriteText(&buf, m); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(consts.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (h Handler) load(c context.Context, id string) (*terrain.Map, error) {
	rec, err := h.Store.Get(c, id)
	if err != nil {
		return nil, err
	}
	return terrain.Restore(rec.Snapshot)
}

func summarize(rec store.Record) (mapSummary, error) {
	m, err := terrain.Restore(rec.Snapshot)
	if err != nil {
		return mapSummary{}, err
	}
	kinds := make(map[string]int)
	for k, n := range m.Kinds() {
		kinds[k.Name()] = n
	}
	return mapSummary{
		ID:        rec.ID,
		Seed:      rec.Seed,
		Size:      rec.Size,
		Walkers:   rec.Walkers,
		Steps:     rec.Steps,
		Kinds:     kinds,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func writeSummary(ctx *app.RequestContext, status int, rec store.Record) {
	s, err := summarize(rec)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(status, s)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, terrain.ErrInvalidConfig), errors.Is(err, errSizeTooLarge):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, terrain.ErrInsufficientGeography):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "insufficient_geography", err.Error())
	default:
		hlog.Errorf("request failed: %v", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
