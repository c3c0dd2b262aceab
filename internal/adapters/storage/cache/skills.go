package cache

import (
	"context"

	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

var _ ports.SkillRepository = (*SkillRepository)(nil)

// SkillRepository caches FindAll, which backs the public skills page.
type SkillRepository struct {
	ports.SkillRepository
	cache *Cache
}

// Skills wraps next with the cache.
func (c *Cache) Skills(next ports.SkillRepository) *SkillRepository {
	return &SkillRepository{SkillRepository: next, cache: c}
}

// FindAll serves the skill list from the cache, loading it on a miss.
func (r *SkillRepository) FindAll(ctx context.Context) ([]*skill.Skill, error) {
	recs, err := remember(ctx, r.cache, nsSkills, "all", func(ctx context.Context) ([]skill.Record, error) {
		skills, err := r.SkillRepository.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		recs := make([]skill.Record, len(skills))
		for i, s := range skills {
			recs[i] = s.ToRecord()
		}
		return recs, nil
	})
	if err != nil {
		return nil, err
	}

	skills := make([]*skill.Skill, 0, len(recs))
	for _, rec := range recs {
		s, err := skill.FromRecord(rec)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// Create inserts through and invalidates the skills namespace.
func (r *SkillRepository) Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	created, err := r.SkillRepository.Create(ctx, s)
	if err == nil {
		r.cache.invalidate(ctx, nsSkills)
	}
	return created, err
}

// Update saves through and invalidates the skills namespace.
func (r *SkillRepository) Update(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	updated, err := r.SkillRepository.Update(ctx, s)
	if err == nil {
		r.cache.invalidate(ctx, nsSkills)
	}
	return updated, err
}

// Delete removes through and invalidates the skills namespace.
func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	err := r.SkillRepository.Delete(ctx, id)
	if err == nil {
		r.cache.invalidate(ctx, nsSkills)
	}
	return err
}
