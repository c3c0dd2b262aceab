package handlers

import (
	"net/http"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// Message list filters accepted by GET /api/v1/admin/messages.
const (
	FilterAll    = "all"
	FilterUnread = "unread"
	FilterRecent = "recent"
)

const msgContactReceived = "Thanks for your message. I will get back to you soon."

// ContactHandler handles public contact form submissions and the admin inbox.
type ContactHandler struct {
	svc     ports.ContactService
	metrics *telemetry.Metrics
}

// NewContactHandler creates a new ContactHandler. metrics may be nil.
func NewContactHandler(svc ports.ContactService, metrics *telemetry.Metrics) *ContactHandler {
	return &ContactHandler{svc: svc, metrics: metrics}
}

// Send handles POST /api/v1/contact.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !decodeAndValidate(w, r, &req) {
		h.record(r, "rejected")
		return
	}

	c, err := h.svc.SendMessage(r.Context(), req.ToInput())
	if err != nil {
		h.record(r, "error")
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.record(r, "accepted")
	writeJSON(w, http.StatusCreated, dto.ContactReceivedResponse{
		ID:      c.ID(),
		Message: msgContactReceived,
	})
}

// List handles GET /api/v1/admin/messages?filter=all|unread|recent.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		messages []*contact.Contact
		err      error
	)
	switch filter := r.URL.Query().Get("filter"); filter {
	case "", FilterAll:
		messages, err = h.svc.ListMessages(r.Context())
	case FilterUnread:
		messages, err = h.svc.ListUnreadMessages(r.Context())
	case FilterRecent:
		messages, err = h.svc.ListRecentMessages(r.Context())
	default:
		err = domain.NewValidationError("filter", "must be one of all, unread, recent")
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContactListResponse(messages))
}

// UnreadCount handles GET /api/v1/admin/messages/unread-count.
func (h *ContactHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CountUnread(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UnreadCountResponse{Count: n})
}

// Get handles GET /api/v1/admin/messages/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		respondContact(w, r)(h.svc.GetMessage(r.Context(), id))
	})
}

// MarkRead handles POST /api/v1/admin/messages/{id}/read.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		respondContact(w, r)(h.svc.MarkAsRead(r.Context(), id))
	})
}

// MarkUnread handles POST /api/v1/admin/messages/{id}/unread.
func (h *ContactHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		respondContact(w, r)(h.svc.MarkAsUnread(r.Context(), id))
	})
}

// Delete handles DELETE /api/v1/admin/messages/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		if err := h.svc.DeleteMessage(r.Context(), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func (h *ContactHandler) record(r *http.Request, result string) {
	if h.metrics == nil {
		return
	}
	h.metrics.ContactMessageTotal.Add(r.Context(), 1,
		metric.WithAttributes(telemetry.AttrResult.String(result)))
}

func respondContact(w http.ResponseWriter, r *http.Request) func(*contact.Contact, error) {
	return func(c *contact.Contact, err error) {
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToContactResponse(c))
	}
}
