package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"careertrack/internal/domain"
	"careertrack/internal/model"

	"github.com/google/uuid"
)

type ProfileRepo interface {
	FindByUser(ctx context.Context, userID string) (*model.Profile, error)
	Upsert(ctx context.Context, userID string, p *model.Profile) error
}

// ProfileService maintains the structured profile sections and the
// profile photo. Section writes are validate-then-mutate: the entry's
// required fields are checked synchronously before the array changes.
type ProfileService struct {
	repo  ProfileRepo
	blobs BlobStore
}

func NewProfileService(repo ProfileRepo, blobs BlobStore) *ProfileService {
	return &ProfileService{repo: repo, blobs: blobs}
}

// Get returns the user's profile, or a fresh empty one if none has been
// written yet.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	p, err := s.repo.FindByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &model.Profile{
			UserID:     userID,
			Experience: []model.Experience{},
			Education:  []model.Education{},
			Skills:     []model.Skill{},
			Projects:   []model.Project{},
		}, nil
	}
	return p, err
}

func (s *ProfileService) AddExperience(ctx context.Context, userID string, e model.Experience) error {
	if err := model.ValidateExperienceEntry(&e); err != nil {
		return err
	}
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		p.Experience = append(p.Experience, e)
		return nil
	})
}

func (s *ProfileService) UpdateExperience(ctx context.Context, userID string, e model.Experience) error {
	if err := model.ValidateExperienceEntry(&e); err != nil {
		return err
	}
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		for i := range p.Experience {
			if p.Experience[i].ID == e.ID {
				p.Experience[i] = e
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID string) error {
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		kept := p.Experience[:0]
		for _, e := range p.Experience {
			if e.ID != entryID {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(p.Experience) {
			return domain.ErrNotFound
		}
		p.Experience = kept
		return nil
	})
}

func (s *ProfileService) AddEducation(ctx context.Context, userID string, e model.Education) error {
	if err := model.ValidateEducationEntry(&e); err != nil {
		return err
	}
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		p.Education = append(p.Education, e)
		return nil
	})
}

func (s *ProfileService) UpdateEducation(ctx context.Context, userID string, e model.Education) error {
	if err := model.ValidateEducationEntry(&e); err != nil {
		return err
	}
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		for i := range p.Education {
			if p.Education[i].ID == e.ID {
				p.Education[i] = e
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID string) error {
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		kept := p.Education[:0]
		for _, e := range p.Education {
			if e.ID != entryID {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(p.Education) {
			return domain.ErrNotFound
		}
		p.Education = kept
		return nil
	})
}

func (s *ProfileService) AddSkill(ctx context.Context, userID string, sk model.Skill) error {
	if err := model.ValidateSkillEntry(&sk); err != nil {
		return err
	}
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		p.Skills = append(p.Skills, sk)
		return nil
	})
}

func (s *ProfileService) RemoveSkill(ctx context.Context, userID, entryID string) error {
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		kept := p.Skills[:0]
		for _, sk := range p.Skills {
			if sk.ID != entryID {
				kept = append(kept, sk)
			}
		}
		if len(kept) == len(p.Skills) {
			return domain.ErrNotFound
		}
		p.Skills = kept
		return nil
	})
}

func (s *ProfileService) AddProject(ctx context.Context, userID string, pr model.Project) error {
	if err := model.ValidateProjectEntry(&pr); err != nil {
		return err
	}
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		p.Projects = append(p.Projects, pr)
		return nil
	})
}

func (s *ProfileService) RemoveProject(ctx context.Context, userID, entryID string) error {
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		kept := p.Projects[:0]
		for _, pr := range p.Projects {
			if pr.ID != entryID {
				kept = append(kept, pr)
			}
		}
		if len(kept) == len(p.Projects) {
			return domain.ErrNotFound
		}
		p.Projects = kept
		return nil
	})
}

// SetPhoto uploads a new profile photo and records its public URL,
// removing the previous photo object when one exists.
func (s *ProfileService) SetPhoto(ctx context.Context, userID, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("photos/%s/%s%s", userID, uuid.New().String(), filepath.Ext(filename))
	if err := s.blobs.Put(ctx, key, contentType, data); err != nil {
		return "", &domain.StorageError{Op: "put photo", Err: err}
	}

	url := s.blobs.PublicURL(key)
	err := s.mutate(ctx, userID, func(p *model.Profile) error {
		if p.PhotoURL != "" {
			if old, ok := s.blobs.KeyFromURL(p.PhotoURL); ok {
				if err := s.blobs.Remove(ctx, old); err != nil {
					log.WithError(err).Warn("failed to remove previous photo")
				}
			}
		}
		p.PhotoURL = url
		return nil
	})
	if err != nil {
		return "", err
	}
	return url, nil
}

// mutate loads (or initializes) the profile, applies fn and writes the
// whole record back.
func (s *ProfileService) mutate(ctx context.Context, userID string, fn func(*model.Profile) error) error {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, userID, p)
}
