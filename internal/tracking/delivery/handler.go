package delivery

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kranuabs13/Emailtrackmaster/internal/guard"
	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/presenter"
	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/usecase"
	"github.com/kranuabs13/Emailtrackmaster/pkg/mailbody"

	"github.com/gin-gonic/gin"
)

// TrackingHandler handles the two mail-client events plus the read-side
// endpoints the taskpane polls.
type TrackingHandler struct {
	trackingUsecase usecase.TrackingUsecase
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(trackingUsecase usecase.TrackingUsecase) *TrackingHandler {
	return &TrackingHandler{trackingUsecase: trackingUsecase}
}

// SelectionEventRequest is the taskpane's ItemChanged payload
type SelectionEventRequest struct {
	ConversationID string    `json:"conversation_id" binding:"required"`
	SenderEmail    string    `json:"sender_email" binding:"required,email"`
	ReceivedAt     time.Time `json:"received_at" binding:"required"`
}

// SendEventRequest is the ItemSend payload. The add-in sends either the
// pre-extracted body text and attachment count, or the raw RFC 822 message
// for the server to parse.
type SendEventRequest struct {
	ConversationID  string `json:"conversation_id" binding:"required"`
	BodyText        string `json:"body_text"`
	AttachmentCount int    `json:"attachment_count"`
	RawMessage      string `json:"raw_message"`
}

// SendEventResponse tells the add-in whether the send may proceed. Allow is
// false only for the attachment-guard veto; store failures never block mail.
type SendEventResponse struct {
	Allow   bool   `json:"allow"`
	Message string `json:"message,omitempty"`
	Replied bool   `json:"replied"`
}

// HandleSelectionChanged materializes/reads the record for the selected item
// POST /api/events/selection
func (h *TrackingHandler) HandleSelectionChanged(c *gin.Context) {
	userEmail := c.GetString("userEmail")

	var req SelectionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.trackingUsecase.HandleSelectionChanged(userEmail, req.ConversationID, req.SenderEmail, req.ReceivedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"record": record}
	if record.IsPending() {
		resp["timer"] = presenter.Compute(record.ConversationID, record.ReceivedAt, record.SLAMinutes, time.Now())
	}
	c.JSON(http.StatusOK, resp)
}

// HandleSend runs the attachment guard, then reply reconciliation
// POST /api/events/send
func (h *TrackingHandler) HandleSend(c *gin.Context) {
	var req SendEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bodyText := req.BodyText
	attachmentCount := req.AttachmentCount
	if req.RawMessage != "" {
		parsed, count, err := mailbody.Extract(strings.NewReader(req.RawMessage))
		if err == nil {
			bodyText = parsed
			attachmentCount = count
		}
		// An unparseable message falls back to whatever the add-in extracted;
		// a parse failure must not veto the send.
	}

	if guard.ShouldBlock(bodyText, attachmentCount) {
		c.JSON(http.StatusOK, SendEventResponse{
			Allow:   false,
			Message: guard.BlockMessage,
		})
		return
	}

	replied := h.trackingUsecase.HandleSend(req.ConversationID, time.Now())
	c.JSON(http.StatusOK, SendEventResponse{
		Allow:   true,
		Replied: replied,
	})
}

// GetTimer returns the live timer snapshot for a pending conversation
// GET /api/conversations/:id/timer
func (h *TrackingHandler) GetTimer(c *gin.Context) {
	conversationID := c.Param("id")

	record, err := h.trackingUsecase.GetByConversation(conversationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not tracked"})
		return
	}
	if !record.IsPending() {
		c.JSON(http.StatusOK, gin.H{"status": record.Status})
		return
	}

	snapshot := presenter.Compute(record.ConversationID, record.ReceivedAt, record.SLAMinutes, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"status": record.Status,
		"timer":  snapshot,
	})
}

// channelSink bridges session renders into the SSE stream. Late renders are
// dropped rather than queued; only the freshest snapshot matters.
type channelSink struct {
	ch chan presenter.Snapshot
}

func (s *channelSink) Render(snapshot presenter.Snapshot) {
	select {
	case s.ch <- snapshot:
	default:
	}
}

// StreamTimer pushes 1 Hz timer snapshots over SSE until the client
// disconnects. The taskpane uses this instead of polling while an item
// stays selected; closing the stream is how a selection switch cancels
// the previous item's timer.
// GET /api/conversations/:id/timer/stream
func (h *TrackingHandler) StreamTimer(c *gin.Context) {
	conversationID := c.Param("id")

	record, err := h.trackingUsecase.GetByConversation(conversationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not tracked"})
		return
	}
	if !record.IsPending() {
		c.JSON(http.StatusOK, gin.H{"status": record.Status})
		return
	}

	sink := &channelSink{ch: make(chan presenter.Snapshot, 1)}
	session := presenter.NewSession(sink)
	session.Start(record.ConversationID, record.ReceivedAt, record.SLAMinutes)
	defer session.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot := <-sink.ch:
			c.SSEvent("timer", snapshot)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// GetDashboard returns aggregate stats for the authenticated mailbox
// GET /api/dashboard
func (h *TrackingHandler) GetDashboard(c *gin.Context) {
	userEmail := c.GetString("userEmail")

	stats, err := h.trackingUsecase.DashboardStats(userEmail, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
