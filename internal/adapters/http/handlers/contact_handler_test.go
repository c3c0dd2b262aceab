package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
	"github.com/jsamuelsen11/portfolio-service/mocks"
)

const validContactBody = `{"name":"Ada Lovelace","email":"ada@example.com",` +
	`"subject":"Collaboration","message":"I would love to work together on a project."}`

func newContactHandler(t *testing.T) (*handlers.ContactHandler, *mocks.MockContactService) {
	t.Helper()
	svc := mocks.NewMockContactService(t)
	return handlers.NewContactHandler(svc, nil), svc
}

func TestSend_Created(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	svc.EXPECT().SendMessage(mock.Anything, mock.AnythingOfType("ports.ContactMessageInput")).
		RunAndReturn(func(_ context.Context, in ports.ContactMessageInput) (*contact.Contact, error) {
			if in.Email != "ada@example.com" {
				t.Errorf("Email = %q, want %q", in.Email, "ada@example.com")
			}
			return validContact(t), nil
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(validContactBody))
	h.Send(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ContactReceivedResponse](t, rec)
	if resp.ID != 9 || resp.Message == "" {
		t.Errorf("response = %+v, want id 9 and a message", resp)
	}
}

func TestSend_Invalid(t *testing.T) {
	t.Parallel()
	h, _ := newContactHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact",
		strings.NewReader(`{"name":"Ada","email":"nope","subject":"Hi there","message":"short"}`))
	h.Send(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.email" {
		t.Errorf("Errors = %+v, want one email error", resp.Errors)
	}
}

func TestSend_DomainValidation(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	svc.EXPECT().SendMessage(mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("message", "must be at least 20 characters"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(validContactBody))
	h.Send(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestListMessages_Filters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filter string
		expect func(svc *mocks.MockContactService, msgs []*contact.Contact)
	}{
		{filter: "", expect: func(svc *mocks.MockContactService, msgs []*contact.Contact) {
			svc.EXPECT().ListMessages(mock.Anything).Return(msgs, nil)
		}},
		{filter: "all", expect: func(svc *mocks.MockContactService, msgs []*contact.Contact) {
			svc.EXPECT().ListMessages(mock.Anything).Return(msgs, nil)
		}},
		{filter: "unread", expect: func(svc *mocks.MockContactService, msgs []*contact.Contact) {
			svc.EXPECT().ListUnreadMessages(mock.Anything).Return(msgs, nil)
		}},
		{filter: "recent", expect: func(svc *mocks.MockContactService, msgs []*contact.Contact) {
			svc.EXPECT().ListRecentMessages(mock.Anything).Return(msgs, nil)
		}},
	}

	for _, tt := range tests {
		t.Run("filter="+tt.filter, func(t *testing.T) {
			t.Parallel()
			h, svc := newContactHandler(t)
			tt.expect(svc, []*contact.Contact{validContact(t)})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages?filter="+tt.filter, nil)
			h.List(rec, req)

			requireStatus(t, rec, http.StatusOK)
			if resp := decodeJSON[dto.ContactListResponse](t, rec); resp.Count != 1 {
				t.Errorf("Count = %d, want 1", resp.Count)
			}
		})
	}
}

func TestListMessages_UnknownFilter(t *testing.T) {
	t.Parallel()
	h, _ := newContactHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages?filter=starred", nil)
	h.List(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestUnreadCount(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	svc.EXPECT().CountUnread(mock.Anything).Return(4, nil)

	rec := httptest.NewRecorder()
	h.UnreadCount(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages/unread-count", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.UnreadCountResponse](t, rec); resp.Count != 4 {
		t.Errorf("Count = %d, want 4", resp.Count)
	}
}

func TestMessageByID(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	read := validContact(t)
	read.MarkAsRead()

	svc.EXPECT().GetMessage(mock.Anything, int64(9)).Return(validContact(t), nil)
	svc.EXPECT().MarkAsRead(mock.Anything, int64(9)).Return(read, nil)
	svc.EXPECT().MarkAsUnread(mock.Anything, int64(9)).Return(validContact(t), nil)
	svc.EXPECT().DeleteMessage(mock.Anything, int64(9)).Return(nil)

	params := map[string]string{"id": "9"}

	rec := httptest.NewRecorder()
	h.Get(rec, withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages/9", nil), params))
	requireStatus(t, rec, http.StatusOK)

	rec = httptest.NewRecorder()
	h.MarkRead(rec, withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/admin/messages/9/read", nil), params))
	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ContactResponse](t, rec); !resp.IsRead {
		t.Error("IsRead = false after MarkRead")
	}

	rec = httptest.NewRecorder()
	h.MarkUnread(rec, withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/admin/messages/9/unread", nil), params))
	requireStatus(t, rec, http.StatusOK)

	rec = httptest.NewRecorder()
	h.Delete(rec, withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/messages/9", nil), params))
	requireStatus(t, rec, http.StatusNoContent)
}
