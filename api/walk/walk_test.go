package walkapi

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWalks struct {
	owner   uuid.UUID
	walk    *domain.Walk
	maze    *maze.Maze
	moveErr error
	deleted bool
}

func (f *fakeWalks) Start(_ context.Context, owner uuid.UUID, req i.WalkRequest) (*domain.Walk, *maze.Maze, error) {
	m, err := maze.New(req.Rows, req.Cols, &maze.Options{Start: req.Start, Goal: req.Goal, Seed: 3})
	if err != nil {
		return nil, nil, err
	}
	f.maze = m
	f.walk = &domain.Walk{
		ID: uuid.New(), OwnerID: owner, Rows: req.Rows, Cols: req.Cols,
		Start: m.Start(), Goal: m.Goal(), Seed: 3, Position: m.Start(),
	}
	return f.walk, m, nil
}

func (f *fakeWalks) Get(_ context.Context, owner, id uuid.UUID) (*domain.Walk, *maze.Maze, error) {
	if f.walk == nil || f.walk.ID != id {
		return nil, nil, domain.ErrWalkNotFound
	}
	if owner != f.walk.OwnerID {
		return nil, nil, service.ErrWalkForbidden
	}
	return f.walk, f.maze, nil
}

func (f *fakeWalks) Move(ctx context.Context, owner, id uuid.UUID, d maze.Direction) (bool, *domain.Walk, error) {
	if f.moveErr != nil {
		return false, nil, f.moveErr
	}
	w, m, err := f.Get(ctx, owner, id)
	if err != nil {
		return false, nil, err
	}
	moved, next := m.Move(w.Position, d)
	if moved {
		w.Advance(next)
	}
	return moved, w, nil
}

func (f *fakeWalks) Delete(ctx context.Context, owner, id uuid.UUID) error {
	if _, _, err := f.Get(ctx, owner, id); err != nil {
		return err
	}
	f.deleted = true
	return nil
}

func newTestRouter(t *testing.T, svc i.WalkService, caller uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)

	wc, err := NewWalkController(svc, 64)
	require.NoError(t, err)

	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		if caller != uuid.Nil {
			c.Set(identity.ContextUserID, caller)
		}
		c.Next()
	})
	wc.RegisterProtected(group)
	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func startWalk(t *testing.T, router *gin.Engine) WalkResponse {
	rec := doJSON(router, http.MethodPost, "/api/v1/walks", StartRequest{Rows: 3, Cols: 4})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp WalkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestStartWalk(t *testing.T) {
	caller := uuid.New()

	t.Run("Creates a walk", func(t *testing.T) {
		svc := &fakeWalks{}
		router := newTestRouter(t, svc, caller)

		resp := startWalk(t, router)
		assert.Equal(t, svc.walk.ID.String(), resp.ID)
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, resp.Position)
		assert.Equal(t, maze.CellPosition{Row: 2, Col: 3}, resp.Goal)
		assert.Equal(t, svc.maze.String(), resp.Maze)
		assert.NotEmpty(t, resp.Exits)
	})

	t.Run("Rejects malformed bodies", func(t *testing.T) {
		router := newTestRouter(t, &fakeWalks{}, caller)

		rec := doJSON(router, http.MethodPost, "/api/v1/walks", gin.H{"rows": 0, "cols": 2})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Maps maze errors to bad request", func(t *testing.T) {
		router := newTestRouter(t, &fakeWalks{}, caller)

		rec := doJSON(router, http.MethodPost, "/api/v1/walks", StartRequest{
			Rows: 2, Cols: 2, Goal: &maze.CellPosition{Row: 5, Col: 5},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Requires a caller", func(t *testing.T) {
		router := newTestRouter(t, &fakeWalks{}, uuid.Nil)

		rec := doJSON(router, http.MethodPost, "/api/v1/walks", StartRequest{Rows: 2, Cols: 2})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestReadWalk(t *testing.T) {
	caller := uuid.New()
	svc := &fakeWalks{}
	router := newTestRouter(t, svc, caller)
	walk := startWalk(t, router)

	t.Run("Get", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/api/v1/walks/"+walk.ID, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown and malformed ids", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/api/v1/walks/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(router, http.MethodGet, "/api/v1/walks/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Other users are forbidden", func(t *testing.T) {
		other := newTestRouter(t, svc, uuid.New())
		rec := doJSON(other, http.MethodGet, "/api/v1/walks/"+walk.ID, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Connectivity map", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/api/v1/walks/"+walk.ID+"/map", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MapResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 5, resp.Rows)
		assert.Equal(t, 7, resp.Cols)
		assert.Equal(t, 1, resp.Map[0][0])
		assert.Equal(t, 0, resp.Map[1][1])
	})

	t.Run("Image", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/api/v1/walks/"+walk.ID+"/image?size=90", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

		img, err := png.Decode(rec.Body)
		require.NoError(t, err)
		assert.Equal(t, 90, img.Bounds().Dx())
		assert.Equal(t, 90, img.Bounds().Dy())
	})

	t.Run("Image rejects bad parameters", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/api/v1/walks/"+walk.ID+"/image?size=big", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(router, http.MethodGet, "/api/v1/walks/"+walk.ID+"/image?kernel=sinc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMoveWalk(t *testing.T) {
	caller := uuid.New()
	svc := &fakeWalks{}
	router := newTestRouter(t, svc, caller)
	walk := startWalk(t, router)
	path := "/api/v1/walks/" + walk.ID + "/moves"

	t.Run("Blocked at the border", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, path, MoveRequest{Direction: "north"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MoveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Moved)
		assert.Equal(t, walk.Position, resp.Position)
	})

	t.Run("Steps through an exit", func(t *testing.T) {
		require.NotEmpty(t, walk.Exits)

		rec := doJSON(router, http.MethodPost, path, MoveRequest{Direction: walk.Exits[0]})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MoveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Moved)
		assert.Equal(t, 1, resp.Steps)
		assert.NotEqual(t, walk.Position, resp.Position)
	})

	t.Run("Unknown direction", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, path, MoveRequest{Direction: "up"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Finished walk conflicts", func(t *testing.T) {
		svc.moveErr = service.ErrWalkFinished
		defer func() { svc.moveErr = nil }()

		rec := doJSON(router, http.MethodPost, path, MoveRequest{Direction: "s"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestDeleteWalk(t *testing.T) {
	caller := uuid.New()
	svc := &fakeWalks{}
	router := newTestRouter(t, svc, caller)
	walk := startWalk(t, router)

	rec := doJSON(router, http.MethodDelete, "/api/v1/walks/"+walk.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, svc.deleted)
}
