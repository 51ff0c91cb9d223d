// Package httpapi exposes the Engine API over HTTP with gin, and pushes
// board-state updates to connected browsers over a websocket after
// every move, the way statefullgame pushes game state to its clients.
package httpapi

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hexmind/hexengine/internal/engine"
	"github.com/hexmind/hexengine/pkg/hexboard"
)

// Server holds every in-progress game and the engine used to create
// more of them.
type Server struct {
	engine *engine.Engine
	logger engine.Logger

	mu    sync.Mutex
	games map[string]*engine.Game
	hubs  map[string]*hub
}

// NewServer builds a Server. A nil logger discards log output.
func NewServer(eng *engine.Engine, logger engine.Logger) *Server {
	return &Server{
		engine: eng,
		logger: logger,
		games:  make(map[string]*engine.Game),
		hubs:   make(map[string]*hub),
	}
}

// Router builds the gin engine exposing the HTTP surface.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api/games")
	api.POST("", s.createGame)
	api.GET("/:id", s.getState)
	api.POST("/:id/human-move", s.humanMove)
	api.POST("/:id/engine-move", s.engineMove)
	api.POST("/:id/swap", s.applySwap)
	api.GET("/:id/ws", s.watch)

	return r
}

type createGameRequest struct {
	BoardSize  int    `json:"board_size"`
	HumanColor string `json:"human_color"`
	Difficulty string `json:"difficulty"`
}

func (s *Server) createGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.BoardSize <= 0 {
		req.BoardSize = 11
	}
	color := hexboard.ColorA
	if req.HumanColor == "B" {
		color = hexboard.ColorB
	}
	difficulty, ok := engine.ParseDifficulty(req.Difficulty)
	if !ok {
		difficulty = engine.Medium
	}

	game := s.engine.NewGame(req.BoardSize, color, difficulty)

	s.mu.Lock()
	s.games[game.ID] = game
	s.hubs[game.ID] = newHub()
	s.mu.Unlock()

	c.JSON(http.StatusCreated, game.State())
}

func (s *Server) lookupGame(c *gin.Context) (*engine.Game, *hub, bool) {
	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such game"})
		return nil, nil, false
	}
	return game, s.hubs[id], true
}

func (s *Server) getState(c *gin.Context) {
	game, _, ok := s.lookupGame(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, game.State())
}

type moveRequest struct {
	Move string `json:"move"`
}

func respondWithError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	default:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	}
}

func (s *Server) humanMove(c *gin.Context) {
	game, h, ok := s.lookupGame(c)
	if !ok {
		return
	}
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := game.HumanMove(req.Move); err != nil {
		respondWithError(c, err)
		return
	}
	state := game.State()
	h.broadcast(state)
	c.JSON(http.StatusOK, state)
}

func (s *Server) engineMove(c *gin.Context) {
	game, h, ok := s.lookupGame(c)
	if !ok {
		return
	}
	if _, _, err := game.EngineMove(); err != nil {
		respondWithError(c, err)
		return
	}
	state := game.State()
	h.broadcast(state)
	c.JSON(http.StatusOK, state)
}

func (s *Server) applySwap(c *gin.Context) {
	game, h, ok := s.lookupGame(c)
	if !ok {
		return
	}
	if err := game.ApplySwap(); err != nil {
		respondWithError(c, err)
		return
	}
	state := game.State()
	h.broadcast(state)
	c.JSON(http.StatusOK, state)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) watch(c *gin.Context) {
	_, h, ok := s.lookupGame(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("websocket upgrade failed", engine.String("error", err.Error()))
		}
		return
	}
	h.register(conn)
}
