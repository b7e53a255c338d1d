package handler

import (
	"net/http"
	"strconv"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/query"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type AccessibilityInput struct {
	Subtitles       bool `json:"subtitles"`
	Colorblind      bool `json:"colorblind"`
	ControllerRemap bool `json:"controllerRemap"`
}

type GameInput struct {
	Title         string             `json:"title" binding:"required" example:"Celeste"`
	Genre         string             `json:"genre" binding:"required" example:"Platformer"`
	Platforms     []string           `json:"platforms" binding:"omitempty,dive,oneof=PC PS5 Xbox Switch Mobile"`
	Accessibility AccessibilityInput `json:"accessibility"`
	Description   string             `json:"description"`
}

func (in GameInput) draft() models.Draft {
	return models.Draft{
		Title:     in.Title,
		Genre:     in.Genre,
		Platforms: in.Platforms,
		Accessibility: models.Accessibility{
			Subtitles:       in.Accessibility.Subtitles,
			Colorblind:      in.Accessibility.Colorblind,
			ControllerRemap: in.Accessibility.ControllerRemap,
		},
		Description: in.Description,
	}
}

type AccessibilityResponse struct {
	Subtitles       bool `json:"subtitles"`
	Colorblind      bool `json:"colorblind"`
	ControllerRemap bool `json:"controllerRemap"`
}

type GameResponse struct {
	ID            string                `json:"id" example:"g1"`
	Title         string                `json:"title" example:"Celeste"`
	Genre         string                `json:"genre" example:"Platformer"`
	Platforms     []string              `json:"platforms"`
	Accessibility AccessibilityResponse `json:"accessibility"`
	Description   string                `json:"description"`
}

func newGameResponse(game models.Game) GameResponse {
	platforms := game.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	return GameResponse{
		ID:        game.ID,
		Title:     game.Title,
		Genre:     game.Genre,
		Platforms: platforms,
		Accessibility: AccessibilityResponse{
			Subtitles:       game.Accessibility.Subtitles,
			Colorblind:      game.Accessibility.Colorblind,
			ControllerRemap: game.Accessibility.ControllerRemap,
		},
		Description: game.Description,
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// CreateGame godoc
// @Summary      Add a game
// @Description  Validates the draft, assigns an id, appends it to the catalog and persists the catalog.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.Catalog.Add(c.Request.Context(), input.draft())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves the details of one game.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	game, ok := h.Catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, newGameResponse(game))
}

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves the games whose title contains q (case-insensitive) and whose genre equals genre, in catalog order.
// @Tags         games
// @Produce      json
// @Param        q      query     string  false  "Search text for the title"
// @Param        genre  query     string  false  "Exact genre"
// @Param        page   query     int     false  "Page number" default(1)
// @Param        limit  query     int     false  "Items per page" default(50)
// @Success      200 {object} PaginatedGameResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(query.DefaultLimit)))
	if err != nil || limit < 1 {
		limit = query.DefaultLimit
	}

	filtered := query.Filter(h.Catalog.List(), c.Query("q"), c.Query("genre"))
	p := query.Paginate(filtered, page, limit)

	response := make([]GameResponse, 0, len(p.Items))
	for _, game := range p.Items {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, p))
}

// GetGenres godoc
// @Summary      Get all genres
// @Description  Lists the distinct genres of the catalog in first-seen order.
// @Tags         games
// @Produce      json
// @Success      200  {array}   string
// @Router       /genres [get]
func (h *Handler) GetGenres(c *gin.Context) {
	c.JSON(http.StatusOK, query.Genres(h.Catalog.List()))
}
