// Package barcode enforces barcode uniqueness inside a product write.
package barcode

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// EnsureFree returns domain.ErrBarcodeTaken when code belongs to a product
// other than selfID. A nil code is always free.
func EnsureFree(ctx context.Context, repo contracts.ProductRepository, r committer.Reader, code *string, selfID string) error {
	if code == nil {
		return nil
	}
	owner, found, err := repo.BarcodeOwner(ctx, r, *code)
	if err != nil {
		return err
	}
	if found && owner != selfID {
		return domain.ErrBarcodeTaken
	}
	return nil
}

// TranslateCommit maps a unique index violation at commit to ErrBarcodeTaken.
// Two writers can both pass EnsureFree before either commits.
func TranslateCommit(err error) error {
	if errors.Is(err, committer.ErrDuplicateKey) {
		return fmt.Errorf("%w: %w", domain.ErrBarcodeTaken, err)
	}
	return err
}
