package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"
	"github.com/stretchr/testify/require"

	"mapgen/internal/store"
	"mapgen/internal/terrain"
)

func testHandler() Handler {
	cfg := terrain.DefaultConfig()
	cfg.MapSize = 24
	cfg.Walkers = 4
	cfg.Steps = 40
	cfg.DrawScale = 2
	return Handler{Store: store.NewMemoryStore(), Defaults: cfg, MaxSize: 64}
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, ctx *app.RequestContext) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	return body
}

func createMap(t *testing.T, h Handler, body string) (*app.RequestContext, mapSummary) {
	t.Helper()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(body))
	h.create(context.Background(), ctx)
	var out mapSummary
	if ctx.Response.StatusCode() < 300 {
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &out))
	}
	return ctx, out
}

func TestCreateMap(t *testing.T) {
	h := testHandler()
	ctx, summary := createMap(t, h, `{"seed":"http","walkers":3}`)
	require.Equal(t, consts.StatusCreated, ctx.Response.StatusCode())
	require.Equal(t, "http", summary.Seed)
	require.Equal(t, 24, summary.Size)
	require.Equal(t, 3, summary.Walkers)
	require.Equal(t, 40, summary.Steps)
	require.NotZero(t, summary.Kinds["Salt Water"])
	require.Zero(t, summary.Kinds["Void"])

	total := 0
	for _, n := range summary.Kinds {
		total += n
	}
	require.Equal(t, 24*24, total)

	again, repeat := createMap(t, h, `{"seed":"http","walkers":3}`)
	require.Equal(t, consts.StatusOK, again.Response.StatusCode(), "identical parameters address the stored map")
	require.Equal(t, summary.ID, repeat.ID)
}

func TestCreateMapRandomSeed(t *testing.T) {
	ctx, summary := createMap(t, testHandler(), ``)
	require.Equal(t, consts.StatusCreated, ctx.Response.StatusCode())
	require.Len(t, summary.Seed, 32)
}

func TestCreateMapErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"invalid json", `{"seed":`, consts.StatusBadRequest, "bad_request"},
		{"negative size", `{"size":-5}`, consts.StatusBadRequest, "bad_request"},
		{"too large", `{"size":100}`, consts.StatusBadRequest, "bad_request"},
		{"no fresh water", `{"seed":"tiny","size":3,"walkers":1,"steps":1,"strict":true}`, consts.StatusUnprocessableEntity, "insufficient_geography"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := createMap(t, testHandler(), tc.body)
			require.Equal(t, tc.status, ctx.Response.StatusCode())
			require.Equal(t, tc.code, decodeError(t, ctx).Error.Code)
		})
	}
}

func TestGetMap(t *testing.T) {
	h := testHandler()
	_, created := createMap(t, h, `{"seed":"get"}`)

	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: created.ID}}
	h.get(context.Background(), ctx)
	require.Equal(t, consts.StatusOK, ctx.Response.StatusCode())
	var got mapSummary
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Kinds, got.Kinds)

	ctx = &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "missing"}}
	h.get(context.Background(), ctx)
	require.Equal(t, consts.StatusNotFound, ctx.Response.StatusCode())
	require.Equal(t, "not_found", decodeError(t, ctx).Error.Code)
}

func TestListMaps(t *testing.T) {
	h := testHandler()
	createMap(t, h, `{"seed":"one"}`)
	createMap(t, h, `{"seed":"two"}`)

	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/maps?limit=1")
	h.list(context.Background(), ctx)
	require.Equal(t, consts.StatusOK, ctx.Response.StatusCode())
	var body struct {
		Maps []mapSummary `json:"maps"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	require.Len(t, body.Maps, 1)
}

func TestMapImage(t *testing.T) {
	h := testHandler()
	_, created := createMap(t, h, `{"seed":"image"}`)

	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: created.ID}}
	ctx.Request.SetRequestURI("/api/maps/" + created.ID + "/image?scale=3&debug=1")
	h.image(context.Background(), ctx)
	require.Equal(t, consts.StatusOK, ctx.Response.StatusCode())
	require.Equal(t, "image/png", string(ctx.Response.Header.ContentType()))

	img, err := png.Decode(bytes.NewReader(ctx.Response.Body()))
	require.NoError(t, err)
	require.Equal(t, 72, img.Bounds().Dx())
	require.Equal(t, 216, img.Bounds().Dy())
}

func TestMapImageBadQuery(t *testing.T) {
	h := testHandler()
	_, created := createMap(t, h, `{"seed":"bad-query"}`)
	for _, query := range []string{"format=gif", "scale=0", "scale=99", "relief=2"} {
		ctx := &app.RequestContext{}
		ctx.Params = param.Params{{Key: "id", Value: created.ID}}
		ctx.Request.SetRequestURI("/api/maps/" + created.ID + "/image?" + query)
		h.image(context.Background(), ctx)
		require.Equal(t, consts.StatusBadRequest, ctx.Response.StatusCode(), query)
	}
}

func TestMapText(t *testing.T) {
	h := testHandler()
	_, created := createMap(t, h, `{"seed":"text"}`)

	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: created.ID}}
	h.text(context.Background(), ctx)
	require.Equal(t, consts.StatusOK, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	require.True(t, strings.HasPrefix(body, "Seed: text\n\nElevation:\n"))
	require.True(t, strings.HasSuffix(body, "\n\nSeed: text"))
	require.Contains(t, body, "\n\nsymbols:\n~~~~")
}
