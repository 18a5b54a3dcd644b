package router

import (
	"context"
	"errors"
	"testing"

	"github.com/BrandonKowalski/canter/pkg/canter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_RenderPassesRequest(t *testing.T) {
	var got Request
	r := New().Register("/search", func(_ context.Context, req Request) (canter.Props, error) {
		got = req
		return canter.Props{canter.TitleKey: "Search"}, nil
	})

	props, err := r.Render(context.Background(), "/search?q=go&page=2#results", true, func(ctx canter.RenderContext) canter.RenderContext {
		return canter.MergeContext(ctx, canter.RenderContext{"user": "ann"})
	})
	require.NoError(t, err)
	assert.Equal(t, "Search", props.Title())

	assert.Equal(t, "/search?q=go&page=2#results", got.FullPath)
	assert.Equal(t, "/search", got.Path)
	assert.Equal(t, "go", got.Query.Get("q"))
	assert.Equal(t, "2", got.Query.Get("page"))
	assert.Equal(t, "results", got.Fragment)
	assert.True(t, got.Initial)
	assert.Equal(t, canter.RenderContext{"path": "/search", "initial": true, "user": "ann"}, got.Context)
}

func TestRouter_NilModifierUsesBaseline(t *testing.T) {
	var got Request
	r := New().Register("/", func(_ context.Context, req Request) (canter.Props, error) {
		got = req
		return nil, nil
	})

	_, err := r.Render(context.Background(), "", false, nil)
	require.NoError(t, err)
	assert.Equal(t, canter.RenderContext{"path": "/", "initial": false}, got.Context)
}

func TestRouter_NotFound(t *testing.T) {
	r := New()

	_, err := r.Render(context.Background(), "/missing", false, nil)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "/missing")

	r.NotFound(Static(canter.Props{canter.TitleKey: "Not found"}))
	props, err := r.Render(context.Background(), "/missing", false, nil)
	require.NoError(t, err)
	assert.Equal(t, "Not found", props.Title())
}

func TestRouter_ViewError(t *testing.T) {
	cause := errors.New("db down")
	r := New().Register("/orders", func(context.Context, Request) (canter.Props, error) {
		return nil, cause
	})

	_, err := r.Render(context.Background(), "/orders", false, nil)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, `router: view "/orders" error: db down`, err.Error())
}

func TestRouter_BadURL(t *testing.T) {
	_, err := New().Render(context.Background(), "%zz", false, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
