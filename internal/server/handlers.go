package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuandriy/symptom-gate/internal/engine"
)

type relatedRequest struct {
	Symptoms []any `json:"symptoms"`
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type diseaseResponse struct {
	Disease     string   `json:"disease"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model": s.engine.Stats()})
}

func (s *Server) listSymptoms(c *gin.Context) {
	var list []string
	if prefix := c.Query("prefix"); prefix != "" {
		list = s.engine.SymptomsWithPrefix(prefix)
	} else {
		list = s.engine.ListSymptoms()
	}
	if list == nil {
		list = []string{}
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) relatedSymptoms(c *gin.Context) {
	var req relatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "No symptoms provided or invalid format", err)
		return
	}
	var symptoms []string
	for _, v := range req.Symptoms {
		if str, ok := v.(string); ok {
			symptoms = append(symptoms, str)
		}
	}
	if len(symptoms) == 0 {
		s.badRequest(c, "No symptoms provided or invalid format", nil)
		return
	}
	c.JSON(http.StatusOK, s.engine.Related(symptoms))
}

func (s *Server) analyzeText(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "No text provided", err)
		return
	}
	if engine.IsBlank(req.Text) {
		s.badRequest(c, "No text provided", nil)
		return
	}
	c.JSON(http.StatusOK, s.engine.Analyze(req.Text))
}

func (s *Server) disease(c *gin.Context) {
	name := c.Param("name")
	symptoms := s.engine.DiseaseSymptoms(name)
	desc, described := s.engine.Describe(name)
	if symptoms == nil && !described {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown disease"})
		return
	}
	if symptoms == nil {
		symptoms = []string{}
	}
	c.JSON(http.StatusOK, diseaseResponse{Disease: name, Description: desc, Symptoms: symptoms})
}
