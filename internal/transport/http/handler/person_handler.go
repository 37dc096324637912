package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "person-service/internal/domain/person"
	featperson "person-service/internal/feature/person"
	"person-service/internal/transport/http/response"
)

// PersonService is the slice of the service layer the handler needs.
type PersonService interface {
	Create(ctx context.Context, req *featperson.CreatePersonRequest) (*featperson.PersonResponse, error)
	Update(ctx context.Context, personID uuid.UUID, req *featperson.UpdatePersonRequest) (*featperson.PersonResponse, error)
	GetByID(ctx context.Context, personID uuid.UUID) (*featperson.PersonResponse, error)
	GetAll(ctx context.Context) ([]*featperson.PersonResponse, error)
	Delete(ctx context.Context, personID uuid.UUID) (*featperson.PersonResponse, error)
	AddWorkExperience(ctx context.Context, personID uuid.UUID, req *featperson.WorkExperienceRequest) (*featperson.PersonResponse, error)
	UpdateWorkExperience(ctx context.Context, personID, workExperienceID uuid.UUID, req *featperson.WorkExperienceRequest) (*featperson.PersonResponse, error)
	DeleteWorkExperience(ctx context.Context, personID, workExperienceID uuid.UUID) (*featperson.PersonResponse, error)
}

type PersonHandler struct {
	svc PersonService
	log *zap.Logger
}

func NewPersonHandler(svc PersonService, log *zap.Logger) *PersonHandler {
	return &PersonHandler{svc: svc, log: log}
}

func (h *PersonHandler) Register(g *gin.RouterGroup) {
	persons := g.Group("/persons")
	persons.POST("", h.create)
	persons.GET("", h.list)
	persons.GET("/:id", h.get)
	persons.PUT("/:id", h.update)
	persons.DELETE("/:id", h.delete)
	persons.POST("/:id/work-experiences", h.addWorkExperience)
	persons.PUT("/:id/work-experiences/:weId", h.updateWorkExperience)
	persons.DELETE("/:id/work-experiences/:weId", h.deleteWorkExperience)
}

func (h *PersonHandler) create(c *gin.Context) {
	var req featperson.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeBadRequest, err.Error()))
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(resp))
}

func (h *PersonHandler) list(c *gin.Context) {
	resp, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(resp))
}

func (h *PersonHandler) get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(resp))
}

func (h *PersonHandler) update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req featperson.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeBadRequest, err.Error()))
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(resp))
}

func (h *PersonHandler) delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(nil))
}

func (h *PersonHandler) addWorkExperience(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req featperson.WorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeBadRequest, err.Error()))
		return
	}
	resp, err := h.svc.AddWorkExperience(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(resp))
}

func (h *PersonHandler) updateWorkExperience(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	weID, ok := h.pathID(c, "weId")
	if !ok {
		return
	}
	var req featperson.WorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeBadRequest, err.Error()))
		return
	}
	resp, err := h.svc.UpdateWorkExperience(c.Request.Context(), id, weID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(resp))
}

func (h *PersonHandler) deleteWorkExperience(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	weID, ok := h.pathID(c, "weId")
	if !ok {
		return
	}
	resp, err := h.svc.DeleteWorkExperience(c.Request.Context(), id, weID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(resp))
}

func (h *PersonHandler) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeBadRequest, "invalid "+name+" parameter"))
		return uuid.Nil, false
	}
	return id, true
}

// writeError translates domain errors to HTTP statuses. Anything unexpected is
// logged with detail and returned as an opaque 500.
func (h *PersonHandler) writeError(c *gin.Context, err error) {
	switch {
	case domain.IsDuplicate(err):
		c.JSON(http.StatusConflict, response.Error(response.CodeConflict, err.Error()))
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, response.Error(response.CodeNotFound, err.Error()))
	case domain.IsInvalid(err):
		c.JSON(http.StatusBadRequest, response.Error(response.CodeBadRequest, err.Error()))
	default:
		h.log.Error("request failed",
			zap.String("rid", c.GetString("rid")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, response.Error(response.CodeServerError, ""))
	}
}
