package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/frilo-app/frilo-api/schema"
)

// requestLanguage picks the language query argument, then the first
// Accept-Language entry
func requestLanguage(c *gin.Context) string {
	if lang := c.Query("language"); lang != "" {
		return lang
	}

	tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return ""
	}
	base, _ := tags[0].Base()
	return base.String()
}

func (s *Server) placeAutocomplete(c *gin.Context) {
	var params struct {
		Input string `form:"input" binding:"required,max=200"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithBindError(c, err)
		return
	}

	predictions, err := s.geo.Autocomplete(params.Input, requestLanguage(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, predictions)
}

func (s *Server) placeDetails(c *gin.Context) {
	var params struct {
		PlaceID string `form:"placeId" binding:"required"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithBindError(c, err)
		return
	}

	place, err := s.geo.PlaceDetails(params.PlaceID, requestLanguage(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, place)
}

func (s *Server) reverseGeocode(c *gin.Context) {
	var params struct {
		Latitude  *float64 `form:"latitude" binding:"required,latitude"`
		Longitude *float64 `form:"longitude" binding:"required,longitude"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithBindError(c, err)
		return
	}

	address, err := s.geo.ReverseGeocode(schema.Location{
		Latitude:  *params.Latitude,
		Longitude: *params.Longitude,
	}, requestLanguage(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{"address": address})
}
