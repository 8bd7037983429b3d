package server

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/matst80/gilded-rose/pkg/inventory"
)

type AdvanceRequest struct {
	Days int `schema:"days,default:1"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func advanceRequestFromQuery(query url.Values) (*AdvanceRequest, error) {
	req := &AdvanceRequest{}
	if err := decoder.Decode(req, query); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	if req.Days < 1 || req.Days > inventory.MaxDays {
		return nil, inventory.ErrInvalidDays
	}
	return req, nil
}
