package client

import (
	"context"

	domain "github.com/BruksfildServices01/clients-api/internal/domain/client"
	"github.com/BruksfildServices01/clients-api/internal/dto"
	"github.com/BruksfildServices01/clients-api/internal/models"
	"github.com/BruksfildServices01/clients-api/internal/pagination"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(
	ctx context.Context,
	req pagination.Request,
) (pagination.Page[dto.ClientDTO], error) {

	var (
		items []models.Client
		total int64
	)

	// Count and slice come from the same snapshot.
	err := uc.repo.Transaction(ctx, true, func(repo domain.Repository) error {
		var err error
		items, total, err = repo.FindAll(ctx, req)
		return err
	})
	if err != nil {
		return pagination.Page[dto.ClientDTO]{}, translate(err)
	}

	page := pagination.NewPage(items, req, total)
	return pagination.Map(page, func(c models.Client) dto.ClientDTO {
		return dto.ToClientDTO(&c)
	}), nil
}
