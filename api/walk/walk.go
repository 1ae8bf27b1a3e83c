// Package walkapi exposes walk sessions over HTTP.
package walkapi

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/raster"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalkController manages walk operations.
type WalkController struct {
	walkService i.WalkService
	imageSize   int
}

// NewWalkController initializes a WalkController. imageSize is the default edge length
// of rendered images.
func NewWalkController(ws i.WalkService, imageSize int) (*WalkController, error) {
	if ws == nil {
		return nil, errors.New("walk controller: nil walk service")
	}
	return &WalkController{
		walkService: ws,
		imageSize:   imageSize,
	}, nil
}

// RegisterPublic registers public routes.
func (wc *WalkController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (wc *WalkController) RegisterProtected(route *gin.RouterGroup) {
	walks := route.Group("/walks")
	{
		walks.POST("", wc.start)
		walks.GET("/:ID", wc.get)
		walks.GET("/:ID/map", wc.connectivityMap)
		walks.GET("/:ID/image", wc.image)
		walks.POST("/:ID/moves", wc.move)
		walks.DELETE("/:ID", wc.delete)
	}
}

// start creates a walk for the caller.
func (wc *WalkController) start(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request StartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	walk, m, err := wc.walkService.Start(ctx, owner, i.WalkRequest{
		Rows:  request.Rows,
		Cols:  request.Cols,
		Start: request.Start,
		Goal:  request.Goal,
		Seed:  request.Seed,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newWalkResponse(walk, m))
}

// get returns a walk with its text rendering.
func (wc *WalkController) get(ctx *gin.Context) {
	walk, m, ok := wc.load(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newWalkResponse(walk, m))
}

// connectivityMap returns the walk's maze as a 0/1 grid.
func (wc *WalkController) connectivityMap(ctx *gin.Context) {
	_, m, ok := wc.load(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMapResponse(m))
}

// image renders the walk's maze as a PNG.
func (wc *WalkController) image(ctx *gin.Context) {
	size := wc.imageSize
	if raw := ctx.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
			return
		}
		size = n
	}

	_, m, ok := wc.load(ctx)
	if !ok {
		return
	}

	img, err := raster.Render(m.ConnectivityMap(), raster.Options{
		Width:  size,
		Height: size,
		Kernel: ctx.DefaultQuery("kernel", "box"),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := raster.Encode(&buf, img, "png"); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// move applies one step.
func (wc *WalkController) move(ctx *gin.Context) {
	owner, id, ok := walkParams(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := maze.ParseDirection(request.Direction)
	if err != nil {
		writeError(ctx, err)
		return
	}

	moved, walk, err := wc.walkService.Move(ctx, owner, id, d)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &MoveResponse{
		Moved:    moved,
		Position: walk.Position,
		Steps:    walk.Steps,
		Finished: walk.Finished,
	})
}

// delete abandons a walk.
func (wc *WalkController) delete(ctx *gin.Context) {
	owner, id, ok := walkParams(ctx)
	if !ok {
		return
	}

	if err := wc.walkService.Delete(ctx, owner, id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (wc *WalkController) load(ctx *gin.Context) (*domain.Walk, *maze.Maze, bool) {
	owner, id, ok := walkParams(ctx)
	if !ok {
		return nil, nil, false
	}

	walk, m, err := wc.walkService.Get(ctx, owner, id)
	if err != nil {
		writeError(ctx, err)
		return nil, nil, false
	}
	return walk, m, true
}

// walkParams reads the caller and the walk ID, writing the error response itself.
func walkParams(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid walk id"})
		return uuid.Nil, uuid.Nil, false
	}
	return owner, id, true
}

func writeError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrWalkNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrWalkForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrWalkFinished):
		return http.StatusConflict
	case errors.Is(err, service.ErrMazeTooLarge),
		errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, maze.ErrInvalidDirection),
		errors.Is(err, raster.ErrInvalidSize),
		errors.Is(err, raster.ErrUnknownKernel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
