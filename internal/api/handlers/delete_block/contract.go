package delete_block

import (
	"context"

	"github.com/google/uuid"
)

type BlockService interface {
	Delete(ctx context.Context, tenantID int64, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
