package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

const skillColumns = `id, name, slug, category, level, icon, "order", created_at, updated_at`

var _ ports.SkillRepository = (*SkillRepository)(nil)

// SkillRepository implements ports.SkillRepository.
type SkillRepository struct {
	store *Store
}

// FindAll returns every skill ordered by category, then position.
func (r *SkillRepository) FindAll(ctx context.Context) ([]*skill.Skill, error) {
	skills, err := queryAll(ctx, r.store,
		`SELECT `+skillColumns+` FROM skills ORDER BY category ASC, "order" ASC, name ASC`, scanSkill)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// FindByID returns domain.ErrNotFound when no skill has id.
func (r *SkillRepository) FindByID(ctx context.Context, id int64) (*skill.Skill, error) {
	s, err := scanSkill(r.store.queryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("skill %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get skill %d: %w", id, err)
	}
	return s, nil
}

// FindByCategory returns the skills of one category in position order.
func (r *SkillRepository) FindByCategory(ctx context.Context, category string) ([]*skill.Skill, error) {
	skills, err := queryAll(ctx, r.store,
		`SELECT `+skillColumns+` FROM skills WHERE category = ? ORDER BY "order" ASC, name ASC`,
		scanSkill, category)
	if err != nil {
		return nil, fmt.Errorf("list skills in %q: %w", category, err)
	}
	return skills, nil
}

// Categories returns the distinct categories in use, sorted.
func (r *SkillRepository) Categories(ctx context.Context) ([]string, error) {
	cats, err := queryAll(ctx, r.store, `SELECT DISTINCT category FROM skills ORDER BY category ASC`,
		func(sc scanner) (string, error) {
			var c string
			err := sc.Scan(&c)
			return c, err
		})
	if err != nil {
		return nil, fmt.Errorf("list skill categories: %w", err)
	}
	return cats, nil
}

// Create inserts s and returns it with its ID and timestamps.
func (r *SkillRepository) Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	rec := s.ToRecord()
	var id int64
	err := r.store.queryRow(ctx,
		`INSERT INTO skills (name, slug, category, level, icon, "order", created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		rec.Name, rec.Slug, rec.Category, rec.Level, nullString(rec.Icon), rec.Order,
		rec.CreatedAt, nullString(rec.UpdatedAt),
	).Scan(&id)
	if err != nil {
		return nil, writeErr("create skill", err)
	}
	return r.FindByID(ctx, id)
}

// Update saves s and returns domain.ErrNotFound when the row is gone.
func (r *SkillRepository) Update(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	rec := s.ToRecord()
	res, err := r.store.exec(ctx,
		`UPDATE skills
		    SET name = ?, slug = ?, category = ?, level = ?, icon = ?, "order" = ?, updated_at = ?
		  WHERE id = ?`,
		rec.Name, rec.Slug, rec.Category, rec.Level, nullString(rec.Icon), rec.Order,
		nullString(rec.UpdatedAt), s.ID(),
	)
	if err != nil {
		return nil, writeErr(fmt.Sprintf("update skill %d", s.ID()), err)
	}
	if err := affectOne(res, fmt.Errorf("skill %d: %w", s.ID(), domain.ErrNotFound)); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, s.ID())
}

// Delete returns domain.ErrNotFound when no row was removed.
func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.exec(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete skill %d: %w", id, err)
	}
	return affectOne(res, fmt.Errorf("skill %d: %w", id, domain.ErrNotFound))
}

// SlugExists reports whether a skill other than excludeID uses slug.
func (r *SkillRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var found int
	err := r.store.queryRow(ctx, `SELECT 1 FROM skills WHERE slug = ? AND id <> ? LIMIT 1`, slug, excludeID).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check skill slug: %w", err)
	}
	return true, nil
}

func scanSkill(sc scanner) (*skill.Skill, error) {
	var (
		rec           skill.Record
		id            int64
		icon, updated sql.NullString
	)
	err := sc.Scan(&id, &rec.Name, &rec.Slug, &rec.Category, &rec.Level, &icon, &rec.Order,
		&rec.CreatedAt, &updated)
	if err != nil {
		return nil, err
	}
	rec.ID = &id
	rec.Icon = stringPtr(icon)
	rec.UpdatedAt = stringPtr(updated)
	return skill.FromRecord(rec)
}
