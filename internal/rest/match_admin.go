package rest

import (
	"net/http"

	"github.com/SaiPranav00/EVMATCHFINAL/business/quiz"
	"github.com/SaiPranav00/EVMATCHFINAL/domain"

	"github.com/labstack/echo/v4"
)

type MatchAdminHandler struct {
	cfgRepo quiz.ConfigRepository
}

func NewMatchAdminHandler(cfgRepo quiz.ConfigRepository) *MatchAdminHandler {
	return &MatchAdminHandler{
		cfgRepo: cfgRepo,
	}
}

// GET /api/v1/admin/match/config?name=default
func (h *MatchAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()

	name := c.QueryParam("name")
	if name == "" {
		name = quiz.ActiveConfigName
	}

	cfg, ok, err := h.cfgRepo.GetConfig(ctx, name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "config not found",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/match/config
// body: MatchConfig JSON
func (h *MatchAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.MatchConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Name == "" {
		body.Name = quiz.ActiveConfigName
	}

	if err := h.cfgRepo.UpsertConfig(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
