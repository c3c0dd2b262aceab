package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

const msgDuplicateSkill = "a skill with this name already exists"

var _ ports.SkillService = (*SkillService)(nil)

// SkillService implements ports.SkillService.
type SkillService struct {
	repo   ports.SkillRepository
	logger *slog.Logger
}

// NewSkillService creates a SkillService.
func NewSkillService(repo ports.SkillRepository, logger *slog.Logger) *SkillService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SkillService{repo: repo, logger: logger}
}

// ListSkills returns every skill in display order.
func (s *SkillService) ListSkills(ctx context.Context) ([]*skill.Skill, error) {
	s.logger.InfoContext(ctx, "listing skills")

	skills, err := s.repo.FindAll(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list skills", "ListSkills", err)
		return nil, err
	}
	return skills, nil
}

// ListSkillsByCategory groups every skill by category. Groups are sorted by
// category name; within a group the repository order is kept.
func (s *SkillService) ListSkillsByCategory(ctx context.Context) ([]ports.SkillGroup, error) {
	skills, err := s.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []ports.SkillGroup
	for _, sk := range skills {
		i, ok := index[sk.Category()]
		if !ok {
			i = len(groups)
			index[sk.Category()] = i
			groups = append(groups, ports.SkillGroup{Category: sk.Category()})
		}
		groups[i].Skills = append(groups[i].Skills, sk)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Category < groups[b].Category
	})
	for i := range groups {
		sort.SliceStable(groups[i].Skills, func(a, b int) bool {
			return groups[i].Skills[a].Order() < groups[i].Skills[b].Order()
		})
	}
	return groups, nil
}

// GetSkill returns one skill by ID.
func (s *SkillService) GetSkill(ctx context.Context, id int64) (*skill.Skill, error) {
	s.logger.InfoContext(ctx, "fetching skill", slog.Int64("id", id))
	return s.load(ctx, "GetSkill", id)
}

// CreateSkill validates the input and persists a new skill. The slug derived
// from the name must be unused.
func (s *SkillService) CreateSkill(ctx context.Context, in ports.CreateSkillInput) (*skill.Skill, error) {
	s.logger.InfoContext(ctx, "creating skill", slog.String("name", in.Name))

	sk, err := skill.New(in.Name, in.Category, in.Level)
	if err != nil {
		return nil, err
	}
	sk.SetIcon(in.Icon)
	if err := sk.Reorder(in.Order); err != nil {
		return nil, err
	}

	if err := s.ensureSlugFree(ctx, "CreateSkill", sk.Slug(), 0); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, sk)
	if err != nil {
		logFailure(ctx, s.logger, "failed to create skill", "CreateSkill", err, slog.String("slug", sk.Slug()))
		return nil, err
	}
	return created, nil
}

// UpdateSkill applies the non-nil fields of in and saves the skill.
func (s *SkillService) UpdateSkill(ctx context.Context, id int64, in ports.UpdateSkillInput) (*skill.Skill, error) {
	s.logger.InfoContext(ctx, "updating skill", slog.Int64("id", id))

	sk, err := s.load(ctx, "UpdateSkill", id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != sk.Name() {
		if err := s.ensureSlugFree(ctx, "UpdateSkill", domain.Slugify(*in.Name), id); err != nil {
			return nil, err
		}
		if err := sk.UpdateName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Category != nil {
		if err := sk.UpdateCategory(*in.Category); err != nil {
			return nil, err
		}
	}
	if in.Level != nil {
		if err := sk.UpdateLevel(*in.Level); err != nil {
			return nil, err
		}
	}
	if in.Icon != nil {
		sk.SetIcon(*in.Icon)
	}
	if in.Order != nil {
		if err := sk.Reorder(*in.Order); err != nil {
			return nil, err
		}
	}

	saved, err := s.repo.Update(ctx, sk)
	if err != nil {
		logFailure(ctx, s.logger, "failed to save skill", "UpdateSkill", err, slog.Int64("id", id))
		return nil, err
	}
	return saved, nil
}

// DeleteSkill removes a skill.
func (s *SkillService) DeleteSkill(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting skill", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "failed to delete skill", "DeleteSkill", err, slog.Int64("id", id))
		return err
	}
	return nil
}

func (s *SkillService) load(ctx context.Context, operation string, id int64) (*skill.Skill, error) {
	sk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch skill", operation, err, slog.Int64("id", id))
		return nil, err
	}
	return sk, nil
}

func (s *SkillService) ensureSlugFree(ctx context.Context, operation, slug string, excludeID int64) error {
	exists, err := s.repo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		logFailure(ctx, s.logger, "failed to check slug", operation, err, slog.String("slug", slug))
		return fmt.Errorf("checking slug: %w", err)
	}
	if exists {
		return domain.NewValidationError("name", msgDuplicateSkill)
	}
	return nil
}
