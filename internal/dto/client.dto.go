package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as "YYYY-MM-DD".
type Date time.Time

func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date must use YYYY-MM-DD: %w", err)
	}

	*d = Date(t)
	return nil
}

// ClientDTO is both the request and the response body of /clients.
// ID is ignored on input.
type ClientDTO struct {
	ID        *uint   `json:"id"`
	Name      string  `json:"name" binding:"required,max=100"`
	CPF       string  `json:"cpf" binding:"required,cpf"`
	Income    float64 `json:"income" binding:"gte=0"`
	Children  int     `json:"children" binding:"gte=0"`
	BirthDate *Date   `json:"birthDate" binding:"required"`
}
