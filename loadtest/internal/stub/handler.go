package stub

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-burst-notification/internal/domain"
)

const defaultPageSize = 10

type Handler struct {
	storage *Storage
	now     func() time.Time
}

func NewHandler(storage *Storage) *Handler {
	return &Handler{storage: storage, now: time.Now}
}

// Register mounts the seed endpoints under /stub and the study platform API
// under /v3.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/stub/studies/:studyId/seed", h.HandleSeed)
	r.POST("/stub/studies/:studyId/reset", h.HandleReset)
	r.GET("/stub/studies/:studyId/sms", h.HandleListSMS)

	v3 := r.Group("/v3/studies/:studyId/participants")
	{
		v3.GET("", h.HandleAccountSummaries)
		v3.GET("/:userId", h.HandleGetParticipant)
		v3.GET("/:userId/activityEvents", h.HandleActivityEvents)
		v3.GET("/:userId/activities/:taskId", h.HandleTaskHistory)
		v3.GET("/:userId/reports/:reportId", h.HandleReports)
		v3.POST("/:userId/sms", h.HandleSendSMS)
	}
}

func (h *Handler) HandleReset(c *gin.Context) {
	studyID := c.Param("studyId")

	h.storage.Reset(studyID)

	slog.Info("reset data", slog.String("study_id", studyID))

	c.JSON(http.StatusOK, gin.H{
		"status":   "reset complete",
		"study_id": studyID,
	})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	studyID := c.Param("studyId")

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, p := range req.Participants {
		if p.Participant.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "participant id is required"})
			return
		}
	}

	h.storage.Seed(studyID, req.Participants)

	slog.Info("seeded data",
		slog.String("study_id", studyID),
		slog.Int("participant_count", len(req.Participants)),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":            "seeded",
		"study_id":          studyID,
		"participant_count": len(req.Participants),
	})
}

func (h *Handler) HandleListSMS(c *gin.Context) {
	sent := h.storage.Sent(c.Param("studyId"))
	c.JSON(http.StatusOK, itemList[SentSMS]{Items: sent})
}

// GET /v3/studies/:studyId/participants?offsetBy=...&pageSize=...
func (h *Handler) HandleAccountSummaries(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offsetBy", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offsetBy"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pageSize"})
		return
	}

	items, total := h.storage.Accounts(c.Param("studyId"), offset, pageSize)
	c.JSON(http.StatusOK, accountSummaryPage{Items: items, Total: total})
}

func (h *Handler) participant(c *gin.Context) (*ParticipantSeed, bool) {
	seed, ok := h.storage.Participant(c.Param("studyId"), c.Param("userId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "participant not found"})
		return nil, false
	}
	return seed, true
}

func (h *Handler) HandleGetParticipant(c *gin.Context) {
	seed, ok := h.participant(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, seed.Participant)
}

func (h *Handler) HandleActivityEvents(c *gin.Context) {
	seed, ok := h.participant(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, itemList[domain.ActivityEvent]{Items: seed.Events})
}

// GET /v3/studies/:studyId/participants/:userId/activities/:taskId
// The offset key is the index of the next item.
func (h *Handler) HandleTaskHistory(c *gin.Context) {
	if _, ok := h.participant(c); !ok {
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("scheduledOnStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduledOnStart"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("scheduledOnEnd"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduledOnEnd"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pageSize"})
		return
	}
	offset := 0
	if key := c.Query("offsetKey"); key != "" {
		offset, err = strconv.Atoi(key)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offsetKey"})
			return
		}
	}

	all := h.storage.Activities(c.Param("studyId"), c.Param("userId"), start, end)
	if offset > len(all) {
		offset = len(all)
	}
	next := min(offset+pageSize, len(all))

	page := scheduledActivityPage{Items: all[offset:next]}
	if next < len(all) {
		page.HasNext = true
		page.NextPageOffsetKey = strconv.Itoa(next)
	}

	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleReports(c *gin.Context) {
	seed, ok := h.participant(c)
	if !ok {
		return
	}

	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	var items []domain.ReportData
	for _, r := range seed.Reports[c.Param("reportId")] {
		if r.Date >= startDate && r.Date <= endDate {
			items = append(items, r)
		}
	}
	c.JSON(http.StatusOK, itemList[domain.ReportData]{Items: items})
}

func (h *Handler) HandleSendSMS(c *gin.Context) {
	if _, ok := h.participant(c); !ok {
		return
	}

	var req smsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sms := SentSMS{
		StudyID: c.Param("studyId"),
		UserID:  c.Param("userId"),
		Message: req.Message,
		SentAt:  h.now(),
	}
	h.storage.RecordSMS(sms)

	slog.Debug("sms captured",
		slog.String("study_id", sms.StudyID),
		slog.String("user_id", sms.UserID),
	)

	c.Status(http.StatusAccepted)
}
