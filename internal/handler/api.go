package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/reelfind/internal/utils"
)

// ==================== movie proxy endpoints ====================
//
// These forward to the metadata provider with the server-held API key.
// Provider failures surface as a 5xx with a generic body; the same
// request can simply be retried.

// Popular returns one page of the popular listing.
func (h *Handler) Popular(c *gin.Context) {
	page := parsePage(c.Query("page"))

	result, err := h.TMDB.Popular(c.Request.Context(), page)
	if err != nil {
		utils.BadGateway(c, "")
		return
	}
	c.JSON(200, result)
}

// SearchMovies returns one page of title-search results.
func (h *Handler) SearchMovies(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.BadRequest(c, "query is required")
		return
	}
	page := parsePage(c.Query("page"))

	result, err := h.TMDB.Search(c.Request.Context(), query, page)
	if err != nil {
		utils.BadGateway(c, "")
		return
	}
	c.JSON(200, result)
}

// MovieDetails returns the full record for one movie.
func (h *Handler) MovieDetails(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	result, err := h.TMDB.Details(c.Request.Context(), movieID)
	if err != nil {
		utils.BadGateway(c, "")
		return
	}
	c.JSON(200, result)
}

// MovieCredits returns cast and crew for one movie.
func (h *Handler) MovieCredits(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	result, err := h.TMDB.Credits(c.Request.Context(), movieID)
	if err != nil {
		utils.BadGateway(c, "")
		return
	}
	c.JSON(200, result)
}

// parsePage applies the 1-indexed page convention. Whether a page beyond
// the last exists is the provider's concern; it is forwarded as-is.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
