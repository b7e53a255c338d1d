package handler

import (
	"net/http"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/preferences"

	"github.com/gin-gonic/gin"
)

// ShortcutKey opens the add-game form when pressed outside a text input.
const ShortcutKey = "n"

type PreferenceInput struct {
	// Pointer so that an explicit false passes the required check.
	Value *bool `json:"value" binding:"required"`
}

type PreferenceResponse struct {
	Name  string `json:"name" example:"isHighContrast"`
	Value bool   `json:"value"`
}

type UIConfigResponse struct {
	ShortcutKey string          `json:"shortcut_key" example:"n"`
	Platforms   []string        `json:"platforms"`
	Preferences map[string]bool `json:"preferences"`
}

func (h *Handler) preferenceMap(c *gin.Context) map[string]bool {
	out := make(map[string]bool, len(preferences.Names))
	for name, value := range h.Preferences.All(c.Request.Context()) {
		out[string(name)] = value
	}
	return out
}

// GetPreferences godoc
// @Summary      Get display preferences
// @Description  Returns every display toggle; absent or unreadable values are false.
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /preferences [get]
func (h *Handler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.preferenceMap(c))
}

// SetPreference godoc
// @Summary      Set a display preference
// @Description  Persists one toggle. Setting the current value again has no observable effect.
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        name  path      string           true  "isLargeText or isHighContrast"
// @Param        input body      PreferenceInput  true  "New value"
// @Success      200   {object}  PreferenceResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Unknown preference"
// @Router       /preferences/{name} [put]
func (h *Handler) SetPreference(c *gin.Context) {
	name, err := preferences.ParseName(c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var input PreferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Preferences.SetFlag(c.Request.Context(), name, *input.Value); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, PreferenceResponse{Name: string(name), Value: *input.Value})
}

// GetUIConfig godoc
// @Summary      Get UI settings
// @Description  Returns the add-form shortcut key, the platform vocabulary and the current preferences.
// @Tags         ui
// @Produce      json
// @Success      200  {object}  UIConfigResponse
// @Router       /ui [get]
func (h *Handler) GetUIConfig(c *gin.Context) {
	platforms := make([]string, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		platforms = append(platforms, string(p))
	}
	c.JSON(http.StatusOK, UIConfigResponse{
		ShortcutKey: ShortcutKey,
		Platforms:   platforms,
		Preferences: h.preferenceMap(c),
	})
}
