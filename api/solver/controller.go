package solverapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SolverController serves solve requests and stored mazes.
type SolverController struct {
	solver i.MazeSolver
}

// NewSolverController initializes a SolverController.
func NewSolverController(solver i.MazeSolver) (*SolverController, error) {
	if solver == nil {
		return nil, errors.New("maze solver is required")
	}
	return &SolverController{solver: solver}, nil
}

// RegisterPublic registers public routes.
func (sc *SolverController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/solve", sc.solve)
}

// RegisterProtected registers protected routes.
func (sc *SolverController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", sc.saveMaze)
		mazes.GET("/:ID", sc.maze)
		mazes.POST("/:ID/solve", sc.solveSaved)
	}
}

func (sc *SolverController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solution, err := sc.solver.Solve(ctx.Request.Context(), request.Grid, *request.Start, *request.Goal)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	ctx.JSON(http.StatusOK, toSolveResponse(solution))
}

func (sc *SolverController) saveMaze(ctx *gin.Context) {
	owner, ok := identity.AccountID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request SaveMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := sc.solver.SaveMaze(ctx.Request.Context(), owner, request.Name, request.Grid)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": record.ID.String()})
}

func (sc *SolverController) maze(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	record, err := sc.solver.Maze(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		ID:        record.ID.String(),
		OwnerID:   record.OwnerID.String(),
		Name:      record.Name,
		Grid:      record.Grid,
		Rows:      record.Rows,
		Cols:      record.Cols,
		CreatedAt: record.CreatedAt,
	})
}

func (sc *SolverController) solveSaved(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	var request SolveSavedRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solution, err := sc.solver.SolveSaved(ctx.Request.Context(), id, *request.Start, *request.Goal)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	ctx.JSON(http.StatusOK, toSolveResponse(solution))
}

func toSolveResponse(s *dmn.Solution) *SolveResponse {
	return &SolveResponse{
		Found:         s.Found,
		Path:          s.Path,
		ExpandedCells: s.ExpandedCells,
		Cached:        s.Cached,
	}
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrEmptyGrid),
		errors.Is(err, maze.ErrRaggedGrid),
		errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, service.ErrGridTooLarge),
		errors.Is(err, dmn.ErrEmptyMazeName),
		errors.Is(err, dmn.ErrMazeNameTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides internal error details from clients.
func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}
