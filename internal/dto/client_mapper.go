package dto

import (
	"time"

	"github.com/BruksfildServices01/clients-api/internal/models"
	"github.com/BruksfildServices01/clients-api/internal/timezone"
)

func ToClientDTO(c *models.Client) ClientDTO {
	id := c.ID
	bd := Date(dateOnly(c.BirthDate))

	return ClientDTO{
		ID:        &id,
		Name:      c.Name,
		CPF:       c.CPF,
		Income:    c.Income,
		Children:  c.Children,
		BirthDate: &bd,
	}
}

// ToClientEntity builds a fresh entity. The DTO id is never copied.
func ToClientEntity(d ClientDTO) *models.Client {
	c := &models.Client{}
	CopyToClient(d, c)
	return c
}

// CopyToClient overwrites every mutable field of c and leaves c.ID alone.
func CopyToClient(d ClientDTO, c *models.Client) {
	c.Name = d.Name
	c.CPF = d.CPF
	c.Income = d.Income
	c.Children = d.Children

	if d.BirthDate != nil {
		c.BirthDate = dateOnly(d.BirthDate.Time())
	} else {
		c.BirthDate = time.Time{}
	}
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return timezone.DateOf(t)
}
