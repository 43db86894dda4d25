package dto

import (
	"strings"

	model "pustakaku_backend/internals/features/library/genres/model"
)

type GenreCreateRequest struct {
	GenreName        string `json:"genre_name" validate:"required,max=100"`
	GenreDescription string `json:"genre_description"`
}

func (r *GenreCreateRequest) Normalize() {
	r.GenreName = strings.TrimSpace(r.GenreName)
	r.GenreDescription = strings.TrimSpace(r.GenreDescription)
}

func (r *GenreCreateRequest) ToModel() *model.GenreModel {
	return &model.GenreModel{
		GenreName:        r.GenreName,
		GenreDescription: r.GenreDescription,
	}
}

type GenreResponse struct {
	GenreID          uint   `json:"genre_id"`
	GenreName        string `json:"genre_name"`
	GenreDescription string `json:"genre_description"`
}

func ToGenreResponse(m *model.GenreModel) GenreResponse {
	return GenreResponse{
		GenreID:          m.GenreID,
		GenreName:        m.GenreName,
		GenreDescription: m.GenreDescription,
	}
}

func ToGenreResponses(ms []model.GenreModel) []GenreResponse {
	out := make([]GenreResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToGenreResponse(&ms[i]))
	}
	return out
}
