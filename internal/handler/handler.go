package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"euchre/internal/engine"
	"euchre/internal/player"
)

// Handler serves game sessions over HTTP. Sessions live in memory only.
type Handler struct {
	mu    sync.Mutex
	games map[string]*Game
	log   *zap.Logger
	hub   *Hub
}

func New(log *zap.Logger) *Handler {
	return &Handler{
		games: map[string]*Game{},
		log:   log,
		hub:   NewHub(log),
	}
}

// Register wires the routes onto the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.POST("/game", h.CreateGame)
	e.GET("/game/:id", h.GetGame)
	e.POST("/game/:id/action", h.Action)
	e.GET("/game/:id/watch", h.Watch)
}

type createResponse struct {
	ID   string      `json:"id"`
	View engine.View `json:"view"`
}

// CreateGame starts a session with the human at seat 0 and heuristic
// bots at seats 1 through 3, and deals the first hand.
func (h *Handler) CreateGame(c echo.Context) error {
	id := uuid.NewString()
	gm := NewGame(id, engine.Seat(0), player.NewHeuristicBot, h.log)
	gm.SetOnChange(func(g *Game) {
		h.hub.Broadcast(g.ID, g.state.ViewFor(engine.NoSeat))
	})
	if err := gm.Start(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.mu.Lock()
	h.games[id] = gm
	h.mu.Unlock()
	h.log.Info("game created", zap.String("game", id))
	return c.JSON(http.StatusCreated, createResponse{ID: id, View: gm.View()})
}

// GetGame returns the human-seat snapshot.
func (h *Handler) GetGame(c echo.Context) error {
	gm, err := h.game(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gm.View())
}

type actionRequest struct {
	Type  string `json:"type"` // orderUp, pass, callSuit, dealerDiscard, playCard, nextHand
	Suit  string `json:"suit,omitempty"`
	Alone bool   `json:"alone,omitempty"`
	Card  string `json:"card,omitempty"`
}

// Action applies one human action and then drives the bots.
func (h *Handler) Action(c echo.Context) error {
	gm, err := h.game(c.Param("id"))
	if err != nil {
		return err
	}
	var req actionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	switch req.Type {
	case "orderUp":
		err = gm.OrderUp(req.Alone)
	case "pass":
		err = gm.Pass()
	case "callSuit":
		suit, ok := parseSuit(req.Suit)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown suit")
		}
		err = gm.CallSuit(suit, req.Alone)
	case "dealerDiscard":
		card, perr := engine.ParseCard(req.Card)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, perr.Error())
		}
		err = gm.Discard(card)
	case "playCard":
		card, perr := engine.ParseCard(req.Card)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, perr.Error())
		}
		err = gm.Play(card)
	case "nextHand":
		err = gm.NextHand()
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown action type "+req.Type)
	}

	var rule engine.RuleError
	if errors.As(err, &rule) {
		return echo.NewHTTPError(http.StatusConflict, rule.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, gm.View())
}

// Watch upgrades to a websocket and streams spectator snapshots after
// every accepted action.
func (h *Handler) Watch(c echo.Context) error {
	gm, err := h.game(c.Param("id"))
	if err != nil {
		return err
	}
	conn, uerr := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if uerr != nil {
		return uerr
	}
	w := h.hub.Add(gm.ID, conn)
	h.hub.Send(w, gm.SpectatorView())
	return nil
}

func (h *Handler) game(id string) (*Game, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	gm, ok := h.games[id]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "no such game")
	}
	return gm, nil
}

func parseSuit(code string) (engine.Suit, bool) {
	for _, s := range engine.Suits {
		if s.Code() == code || s.String() == code {
			return s, true
		}
	}
	return 0, false
}
