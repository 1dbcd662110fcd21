package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/schema"
)

type categoryParams struct {
	Name        string `json:"name" binding:"required,max=100"`
	Icon        string `json:"icon" binding:"max=100"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
	Description string `json:"description" binding:"max=1000"`
	Type        string `json:"type" binding:"max=50"`
	IsActive    *bool  `json:"isActive"`
}

func (p categoryParams) category() schema.Category {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return schema.Category{
		Name:        p.Name,
		Icon:        p.Icon,
		Color:       p.Color,
		Description: p.Description,
		Type:        p.Type,
		IsActive:    active,
	}
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.store.ListCategories()
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, categories)
}

func (s *Server) categoryDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	category, err := s.store.GetCategory(id)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, category)
}

func (s *Server) createCategory(c *gin.Context) {
	var params categoryParams
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	category := params.category()
	if shouldInterupt(s.store.CreateCategory(&category), c) {
		return
	}

	responseCreated(c, category)
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params categoryParams
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	category, err := s.store.UpdateCategory(id, params.category())
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, category)
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if shouldInterupt(s.store.DeleteCategory(id), c) {
		return
	}

	responseMessage(c, "category deleted")
}

// initializeCategories seeds the default categories when there are none
func (s *Server) initializeCategories(c *gin.Context) {
	categories, err := s.store.InitializeCategories()
	if shouldInterupt(err, c) {
		return
	}

	responseWithEncoding(c, http.StatusCreated, Response{
		IsSuccess: true,
		Data:      categories,
	})
}
