// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// ImageURLs resolves a stored image path to its public URL.
type ImageURLs interface {
	URL(path string) string
}

// ProjectResponse is the flat project record plus presentation fields.
type ProjectResponse struct {
	project.Record
	ImageURL    *string `json:"image_url"`
	StatusLabel string  `json:"status_label"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project to its response form.
func ToProjectResponse(p *project.Project, urls ImageURLs) ProjectResponse {
	resp := ProjectResponse{
		Record:      p.ToRecord(),
		StatusLabel: p.Status().Label(),
	}
	if p.HasImage() {
		u := urls.URL(p.Image())
		resp.ImageURL = &u
	}
	return resp
}

// ToProjectListResponse converts a slice of domain Projects to a list response.
func ToProjectListResponse(projects []*project.Project, urls ImageURLs) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = ToProjectResponse(p, urls)
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// SkillResponse is the flat skill record plus level presentation data.
type SkillResponse struct {
	skill.Record
	LevelLabel      string `json:"level_label"`
	LevelPercentage int    `json:"level_percentage"`
	LevelColor      string `json:"level_color"`
}

// SkillListResponse represents a flat list of skills.
type SkillListResponse struct {
	Skills []SkillResponse `json:"skills"`
	Count  int             `json:"count"`
}

// SkillGroupResponse is one category of skills.
type SkillGroupResponse struct {
	Category string          `json:"category"`
	Skills   []SkillResponse `json:"skills"`
}

// SkillGroupsResponse lists skills grouped by category.
type SkillGroupsResponse struct {
	Categories []SkillGroupResponse `json:"categories"`
	Count      int                  `json:"count"`
}

// ToSkillResponse converts a domain Skill to its response form.
func ToSkillResponse(s *skill.Skill) SkillResponse {
	return SkillResponse{
		Record:          s.ToRecord(),
		LevelLabel:      s.Level().Label(),
		LevelPercentage: s.Level().Percentage(),
		LevelColor:      s.Level().Color(),
	}
}

func toSkillResponses(skills []*skill.Skill) []SkillResponse {
	items := make([]SkillResponse, len(skills))
	for i, s := range skills {
		items[i] = ToSkillResponse(s)
	}
	return items
}

// ToSkillListResponse converts a slice of domain Skills to a list response.
func ToSkillListResponse(skills []*skill.Skill) SkillListResponse {
	items := toSkillResponses(skills)
	return SkillListResponse{Skills: items, Count: len(items)}
}

// ToSkillGroupsResponse converts grouped skills. Count is the number of
// skills across all groups.
func ToSkillGroupsResponse(groups []ports.SkillGroup) SkillGroupsResponse {
	resp := SkillGroupsResponse{Categories: make([]SkillGroupResponse, len(groups))}
	for i, g := range groups {
		resp.Categories[i] = SkillGroupResponse{
			Category: g.Category,
			Skills:   toSkillResponses(g.Skills),
		}
		resp.Count += len(g.Skills)
	}
	return resp
}

// ContactResponse is the flat message record plus its read state.
type ContactResponse struct {
	contact.Record
	IsRead   bool `json:"is_read"`
	IsRecent bool `json:"is_recent"`
}

// ContactListResponse represents a list of contact messages.
type ContactListResponse struct {
	Messages []ContactResponse `json:"messages"`
	Count    int               `json:"count"`
}

// ToContactResponse converts a domain Contact to its response form.
func ToContactResponse(c *contact.Contact) ContactResponse {
	return ContactResponse{
		Record:   c.ToRecord(),
		IsRead:   c.IsRead(),
		IsRecent: c.IsRecent(),
	}
}

// ToContactListResponse converts a slice of domain Contacts to a list response.
func ToContactListResponse(messages []*contact.Contact) ContactListResponse {
	items := make([]ContactResponse, len(messages))
	for i, c := range messages {
		items[i] = ToContactResponse(c)
	}
	return ContactListResponse{Messages: items, Count: len(items)}
}

// ContactReceivedResponse acknowledges a public contact form submission
// without echoing the stored message.
type ContactReceivedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// UnreadCountResponse reports how many messages are unread.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// DashboardResponse is the admin overview.
type DashboardResponse struct {
	TotalProjects     int               `json:"total_projects"`
	PublishedProjects int               `json:"published_projects"`
	DraftProjects     int               `json:"draft_projects"`
	ArchivedProjects  int               `json:"archived_projects"`
	UnreadMessages    int               `json:"unread_messages"`
	RecentProjects    []ProjectResponse `json:"recent_projects"`
	UnreadInbox       []ContactResponse `json:"unread_inbox"`
}

// ToDashboardResponse converts the service overview.
func ToDashboardResponse(o *ports.Overview, urls ImageURLs) DashboardResponse {
	return DashboardResponse{
		TotalProjects:     o.TotalProjects,
		PublishedProjects: o.PublishedProjects,
		DraftProjects:     o.DraftProjects,
		ArchivedProjects:  o.ArchivedProjects,
		UnreadMessages:    o.UnreadMessages,
		RecentProjects:    ToProjectListResponse(o.RecentProjects, urls).Projects,
		UnreadInbox:       ToContactListResponse(o.UnreadInbox).Messages,
	}
}
