package transport

import (
	"context"

	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LookupService interface {
		Lookup(ctx context.Context, raw string) (*model.LookupResult, error)
	}
)
