package client

import (
	"context"

	domain "github.com/BruksfildServices01/clients-api/internal/domain/client"
	"github.com/BruksfildServices01/clients-api/internal/dto"
)

type InsertClient struct {
	repo domain.Repository
}

func NewInsertClient(repo domain.Repository) *InsertClient {
	return &InsertClient{repo: repo}
}

func (uc *InsertClient) Execute(
	ctx context.Context,
	in dto.ClientDTO,
) (*dto.ClientDTO, error) {

	c := dto.ToClientEntity(in)

	err := uc.repo.Transaction(ctx, false, func(repo domain.Repository) error {
		return repo.Save(ctx, c)
	})
	if err != nil {
		return nil, translate(err)
	}

	out := dto.ToClientDTO(c)
	return &out, nil
}
