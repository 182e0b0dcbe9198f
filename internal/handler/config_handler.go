package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

type ConfigHandler struct {
	repo domain.NotificationConfigRepository
}

func NewConfigHandler(repo domain.NotificationConfigRepository) *ConfigHandler {
	return &ConfigHandler{repo: repo}
}

func (h *ConfigHandler) HandleGet(c *gin.Context) {
	ctx := c.Request.Context()
	studyID := c.Param("studyId")

	cfg, err := h.repo.GetNotificationConfig(ctx, studyID)
	if err != nil {
		status, code := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.ErrorContext(ctx, "failed to get notification config",
				slog.String("study_id", studyID),
				slog.String("error", err.Error()),
			)
		}
		respondError(c, status, code, err.Error())
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// HandlePut stores a config. The study id in the path wins over the body.
func (h *ConfigHandler) HandlePut(c *gin.Context) {
	ctx := c.Request.Context()
	studyID := c.Param("studyId")

	var cfg domain.StudyNotificationConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	cfg.StudyID = studyID
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		slog.WarnContext(ctx, "notification config validation failed",
			slog.String("study_id", studyID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.repo.SaveNotificationConfig(ctx, &cfg); err != nil {
		slog.ErrorContext(ctx, "failed to save notification config",
			slog.String("study_id", studyID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	slog.InfoContext(ctx, "notification config saved", slog.String("study_id", studyID))

	c.JSON(http.StatusOK, &cfg)
}
