package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projectforge/forge/internal/blueprint"
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "forge",
		"status":  "running",
		"endpoints": []string{
			"/health",
			"/metrics",
			"/v1/agents",
			"/v1/blueprint/normalize",
			"/v1/generate",
			"/ws",
		},
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"agents": len(s.orch.Agents()),
	})
}

func (s *Server) listAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"agents": s.orch.Agents(),
	})
}

type normalizeRequest struct {
	Text string `json:"text" binding:"required"`
}

func (s *Server) normalizeBlueprint(c *gin.Context) {
	var req normalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bp := s.norm.Normalize(req.Text)
	c.JSON(http.StatusOK, gin.H{"blueprint": bp})
}

type generateRequest struct {
	PRD       string               `json:"prd,omitempty"`
	Blueprint *blueprint.Blueprint `json:"blueprint,omitempty"`
}

func (s *Server) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PRD == "" && req.Blueprint == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prd text or blueprint is required"})
		return
	}

	ctx := c.Request.Context()

	if req.PRD != "" {
		output, err := s.svc.FromPRD(ctx, req.PRD, nil)
		if err != nil {
			s.log.Error("generation from PRD failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, output)
		return
	}

	c.JSON(http.StatusOK, s.svc.FromBlueprint(ctx, req.Blueprint, nil))
}
