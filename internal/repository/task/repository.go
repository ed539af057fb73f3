package task

import (
	"context"

	"henawys-art/internal/domain"
)

type Repository interface {
	// Process applies the task's counter increment exactly once. The dedup
	// record and the increment commit in the same transaction, so a
	// redelivered task returns applied=false and changes nothing.
	Process(ctx context.Context, t domain.SideEffectTask) (applied bool, err error)
}
