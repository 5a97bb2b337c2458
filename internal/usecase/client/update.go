package client

import (
	"context"

	domain "github.com/BruksfildServices01/clients-api/internal/domain/client"
	"github.com/BruksfildServices01/clients-api/internal/dto"
	"github.com/BruksfildServices01/clients-api/internal/models"
)

type UpdateClient struct {
	repo domain.Repository
}

func NewUpdateClient(repo domain.Repository) *UpdateClient {
	return &UpdateClient{repo: repo}
}

// Execute overwrites every mutable field with the values in `in`. There is
// no partial update and no version check; in.ID is ignored.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	id uint,
	in dto.ClientDTO,
) (*dto.ClientDTO, error) {

	var c *models.Client
	err := uc.repo.Transaction(ctx, false, func(repo domain.Repository) error {
		ref, err := repo.GetReferenceByID(ctx, id)
		if err != nil {
			return err
		}

		dto.CopyToClient(in, ref)
		if err := repo.Save(ctx, ref); err != nil {
			return err
		}

		c = ref
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	out := dto.ToClientDTO(c)
	return &out, nil
}
