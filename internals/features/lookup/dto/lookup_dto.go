// file: internals/features/lookup/dto/lookup_dto.go
package dto

import "github.com/google/uuid"

type LookupRequestDTO struct {
	Mobile string `json:"mobile"`
}

// LookupFee is the public projection of one fee record. Payment method,
// transaction ids and internal ids stay server-side.
type LookupFee struct {
	Month  int    `json:"month"`
	Year   int    `json:"year"`
	Amount int    `json:"amount"`
	Status string `json:"status"`
}

type LookupStudent struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Class string      `json:"class"`
	Fees  []LookupFee `json:"fees"`
}

type LookupResponse struct {
	Students []LookupStudent `json:"students"`
}

type LookupErrorResponse struct {
	Error    string          `json:"error"`
	Students []LookupStudent `json:"students"`
}
