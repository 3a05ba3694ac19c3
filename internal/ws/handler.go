package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
	"github.com/projectforge/forge/internal/generation"
	"github.com/projectforge/forge/internal/infrastructure/monitoring"
	"github.com/projectforge/forge/internal/orchestrator"
)

const runTimeout = 5 * time.Minute

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// message is a client request frame.
type message struct {
	Type      string               `json:"type"`
	PRD       string               `json:"prd,omitempty"`
	Blueprint *blueprint.Blueprint `json:"blueprint,omitempty"`
}

// Handler manages WebSocket connections
type Handler struct {
	svc     *generation.Service
	metrics *monitoring.Metrics
	log     *zap.Logger
}

// NewHandler creates a new WebSocket handler. metrics may be nil.
func NewHandler(svc *generation.Service, metrics *monitoring.Metrics, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, metrics: metrics, log: log}
}

// conn serializes writes: orchestration events arrive from worker
// goroutines while the read loop owns the socket.
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *conn) send(data interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(data)
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer ws.Close()

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	cn := &conn{ws: ws}
	reqCtx := c.Request.Context()

	cn.send(map[string]interface{}{
		"type":    "system",
		"message": "Connected to generation service",
	})

	for {
		var msg message
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		if h.metrics != nil {
			h.metrics.RecordWSMessage("in", msg.Type)
		}

		switch msg.Type {
		case "generate":
			h.handleGenerate(reqCtx, cn, msg)
		case "ping":
			cn.send(map[string]interface{}{"type": "pong"})
		default:
			h.sendError(cn, "unknown message type")
		}
	}
}

func (h *Handler) handleGenerate(reqCtx context.Context, cn *conn, msg message) {
	if msg.PRD == "" && msg.Blueprint == nil {
		h.sendError(cn, "generate requires prd text or a blueprint")
		return
	}

	cn.send(map[string]interface{}{
		"type":      "generation_start",
		"timestamp": time.Now().Unix(),
	})

	ctx, cancel := context.WithTimeout(reqCtx, runTimeout)
	defer cancel()

	obs := func(e orchestrator.Event) {
		if e.Type == orchestrator.EventRunFinished {
			return // the complete frame carries the full output
		}
		out := map[string]interface{}{
			"type":      string(e.Type),
			"agent":     e.Agent,
			"timestamp": time.Now().Unix(),
		}
		if e.Result != nil {
			out["result"] = e.Result
		}
		cn.send(out)
		if h.metrics != nil {
			h.metrics.RecordWSMessage("out", string(e.Type))
		}
	}

	var output *generation.Output
	if msg.PRD != "" {
		var err error
		output, err = h.svc.FromPRD(ctx, msg.PRD, obs)
		if err != nil {
			h.sendError(cn, err.Error())
			return
		}
	} else {
		output = h.svc.FromBlueprint(ctx, msg.Blueprint, obs)
	}

	cn.send(map[string]interface{}{
		"type":      "complete",
		"output":    output,
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) sendError(cn *conn, msg string) {
	cn.send(map[string]interface{}{
		"type":      "error",
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
