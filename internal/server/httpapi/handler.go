package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/docport/internal/common"
)

// Client-facing messages. The 401 body is identical for an unknown email and
// a wrong password; the 409 body does not say which constraint fired.
const (
	MsgFieldsRequired     = "Email and password are required."
	MsgRegistered         = "User registered successfully."
	MsgEmailExists        = "Email already exists."
	MsgInvalidCredentials = "Invalid email or password."
	MsgLoginSuccessful    = "Login successful!"
	MsgDocumentNotFound   = "Document not found for the specified country and type."
	MsgInternalError      = "Internal server error."
)

// credentialsRequest covers both /register and /login. binding:"required"
// rejects missing and empty fields before any datastore contact.
type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgFieldsRequired})
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": MsgEmailExists})
			return
		}
		s.requestLogger(c).Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": MsgInternalError})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": MsgRegistered, "userId": user.ID})
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgFieldsRequired})
		return
	}

	if err := s.users.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": MsgInvalidCredentials})
			return
		}
		s.requestLogger(c).Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": MsgInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MsgLoginSuccessful})
}

func (s *Server) document(c *gin.Context) {
	country := c.Param("country")
	documentType := c.Param("type")

	doc, err := s.documents.Get(c.Request.Context(), country, documentType)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": MsgDocumentNotFound})
			return
		}
		s.requestLogger(c).Error(c.Request.Context(), "document lookup failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": MsgInternalError})
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "docport"})
}
