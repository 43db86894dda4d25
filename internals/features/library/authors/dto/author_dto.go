package dto

import (
	"strings"
	"time"

	model "pustakaku_backend/internals/features/library/authors/model"
)

const dateLayout = "2006-01-02"

/* =========================
   REQUEST
   ========================= */

type AuthorCreateRequest struct {
	AuthorFirstName   string  `json:"author_first_name" validate:"required,max=100"`
	AuthorLastName    string  `json:"author_last_name"  validate:"required,max=100"`
	AuthorBiography   string  `json:"author_biography"`
	AuthorDateOfBirth *string `json:"author_date_of_birth,omitempty"` // "2006-01-02"
	AuthorDateOfDeath *string `json:"author_date_of_death,omitempty"`
}

func (r *AuthorCreateRequest) Normalize() {
	r.AuthorFirstName = strings.TrimSpace(r.AuthorFirstName)
	r.AuthorLastName = strings.TrimSpace(r.AuthorLastName)
	r.AuthorBiography = strings.TrimSpace(r.AuthorBiography)
}

func (r *AuthorCreateRequest) ToModel() (*model.AuthorModel, error) {
	m := &model.AuthorModel{
		AuthorFirstName: r.AuthorFirstName,
		AuthorLastName:  r.AuthorLastName,
		AuthorBiography: r.AuthorBiography,
	}
	var err error
	if m.AuthorDateOfBirth, err = parseDate(r.AuthorDateOfBirth); err != nil {
		return nil, err
	}
	if m.AuthorDateOfDeath, err = parseDate(r.AuthorDateOfDeath); err != nil {
		return nil, err
	}
	return m, nil
}

type AuthorUpdateRequest struct {
	AuthorFirstName   *string `json:"author_first_name,omitempty" validate:"omitempty,max=100"`
	AuthorLastName    *string `json:"author_last_name,omitempty"  validate:"omitempty,max=100"`
	AuthorBiography   *string `json:"author_biography,omitempty"`
	AuthorDateOfBirth *string `json:"author_date_of_birth,omitempty"`
	AuthorDateOfDeath *string `json:"author_date_of_death,omitempty"`
}

func (r *AuthorUpdateRequest) Apply(m *model.AuthorModel) error {
	if r.AuthorFirstName != nil {
		m.AuthorFirstName = strings.TrimSpace(*r.AuthorFirstName)
	}
	if r.AuthorLastName != nil {
		m.AuthorLastName = strings.TrimSpace(*r.AuthorLastName)
	}
	if r.AuthorBiography != nil {
		m.AuthorBiography = strings.TrimSpace(*r.AuthorBiography)
	}
	var err error
	if r.AuthorDateOfBirth != nil {
		if m.AuthorDateOfBirth, err = parseDate(r.AuthorDateOfBirth); err != nil {
			return err
		}
	}
	if r.AuthorDateOfDeath != nil {
		if m.AuthorDateOfDeath, err = parseDate(r.AuthorDateOfDeath); err != nil {
			return err
		}
	}
	return nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

/* =========================
   RESPONSE
   ========================= */

type AuthorResponse struct {
	AuthorID          uint    `json:"author_id"`
	AuthorFirstName   string  `json:"author_first_name"`
	AuthorLastName    string  `json:"author_last_name"`
	AuthorBiography   string  `json:"author_biography"`
	AuthorDateOfBirth *string `json:"author_date_of_birth,omitempty"`
	AuthorDateOfDeath *string `json:"author_date_of_death,omitempty"`
}

func ToAuthorResponse(m *model.AuthorModel) AuthorResponse {
	return AuthorResponse{
		AuthorID:          m.AuthorID,
		AuthorFirstName:   m.AuthorFirstName,
		AuthorLastName:    m.AuthorLastName,
		AuthorBiography:   m.AuthorBiography,
		AuthorDateOfBirth: formatDate(m.AuthorDateOfBirth),
		AuthorDateOfDeath: formatDate(m.AuthorDateOfDeath),
	}
}

func ToAuthorResponses(ms []model.AuthorModel) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToAuthorResponse(&ms[i]))
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
