package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/portfolio-service/internal/app/fanout"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// dashboardListSize caps the recent project and unread message lists.
const dashboardListSize = 5

var _ ports.DashboardService = (*DashboardService)(nil)

// DashboardService implements ports.DashboardService.
type DashboardService struct {
	projects ports.ProjectRepository
	contacts ports.ContactRepository
	logger   *slog.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(projects ports.ProjectRepository, contacts ports.ContactRepository, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DashboardService{projects: projects, contacts: contacts, logger: logger}
}

// Overview gathers project counts by status, the unread message count, the
// latest projects and the latest unread messages. The four reads run
// concurrently; the first failure cancels the rest.
func (s *DashboardService) Overview(ctx context.Context) (*ports.Overview, error) {
	s.logger.InfoContext(ctx, "building dashboard overview")

	var (
		counts map[project.Status]int
		unread int
		recent []*project.Project
		inbox  []*contact.Contact
	)
	err := fanout.All(ctx, 0,
		func(ctx context.Context) (err error) {
			counts, err = s.projects.CountByStatus(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			unread, err = s.contacts.CountUnread(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			recent, err = s.projects.FindAll(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			inbox, err = s.contacts.FindUnread(ctx)
			return err
		},
	)
	if err != nil {
		logFailure(ctx, s.logger, "failed to build dashboard overview", "Overview", err)
		return nil, err
	}

	ov := &ports.Overview{
		PublishedProjects: counts[project.StatusPublished],
		DraftProjects:     counts[project.StatusDraft],
		ArchivedProjects:  counts[project.StatusArchived],
		UnreadMessages:    unread,
		RecentProjects:    head(recent, dashboardListSize),
		UnreadInbox:       head(inbox, dashboardListSize),
	}
	ov.TotalProjects = ov.PublishedProjects + ov.DraftProjects + ov.ArchivedProjects
	return ov, nil
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
