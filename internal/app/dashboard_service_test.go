package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/mocks"
)

func TestDashboardService_Overview(t *testing.T) {
	t.Parallel()

	t.Run("aggregates counts and truncates lists", func(t *testing.T) {
		t.Parallel()
		projects := mocks.NewMockProjectRepository(t)
		contacts := mocks.NewMockContactRepository(t)
		svc := NewDashboardService(projects, contacts, discardLogger())

		var all []*project.Project
		for i := range 7 {
			all = append(all, storedProject(t, int64(i+1), fmt.Sprintf("Project %d", i+1), project.StatusDraft, ""))
		}
		var unread []*contact.Contact
		for i := range 6 {
			unread = append(unread, storedContact(t, int64(i+1), nil))
		}

		projects.EXPECT().CountByStatus(mock.Anything).Return(map[project.Status]int{
			project.StatusDraft:     4,
			project.StatusPublished: 2,
			project.StatusArchived:  1,
		}, nil)
		projects.EXPECT().FindAll(mock.Anything).Return(all, nil)
		contacts.EXPECT().CountUnread(mock.Anything).Return(6, nil)
		contacts.EXPECT().FindUnread(mock.Anything).Return(unread, nil)

		ov, err := svc.Overview(context.Background())
		if err != nil {
			t.Fatalf("Overview() error = %v", err)
		}
		if ov.TotalProjects != 7 || ov.PublishedProjects != 2 || ov.DraftProjects != 4 || ov.ArchivedProjects != 1 {
			t.Errorf("counts = %+v", ov)
		}
		if ov.UnreadMessages != 6 {
			t.Errorf("UnreadMessages = %d, want 6", ov.UnreadMessages)
		}
		if len(ov.RecentProjects) != dashboardListSize || len(ov.UnreadInbox) != dashboardListSize {
			t.Errorf("list sizes = %d, %d, want %d", len(ov.RecentProjects), len(ov.UnreadInbox), dashboardListSize)
		}
	})

	t.Run("propagates failure", func(t *testing.T) {
		t.Parallel()
		projects := mocks.NewMockProjectRepository(t)
		contacts := mocks.NewMockContactRepository(t)
		svc := NewDashboardService(projects, contacts, discardLogger())
		projects.EXPECT().CountByStatus(mock.Anything).Return(nil, domain.ErrUnavailable)
		projects.EXPECT().FindAll(mock.Anything).Return(nil, nil).Maybe()
		contacts.EXPECT().CountUnread(mock.Anything).Return(0, nil).Maybe()
		contacts.EXPECT().FindUnread(mock.Anything).Return(nil, nil).Maybe()

		if _, err := svc.Overview(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Overview() error = %v, want ErrUnavailable", err)
		}
	})
}
