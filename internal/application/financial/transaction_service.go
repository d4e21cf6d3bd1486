package financial

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// TransactionService handles transaction CRUD and listing
type TransactionService struct {
	txRepo      financial.TransactionRepository
	categorizer *Categorizer
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txRepo financial.TransactionRepository, categorizer *Categorizer) *TransactionService {
	return &TransactionService{txRepo: txRepo, categorizer: categorizer}
}

// Create records a new transaction. An empty category is filled by the
// rule categorizer.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req CreateTransactionRequest) (*TransactionResponse, error) {
	category := req.Category
	if category == "" && s.categorizer != nil {
		suggestion := s.categorizer.Categorize(req.Description, req.Merchant, req.Amount)
		category = suggestion.Category
	}

	tx, err := financial.NewTransaction(
		userID,
		financial.TransactionType(req.Type),
		req.Amount,
		category,
		req.Description,
		req.Merchant,
		req.OccurredOn,
	)
	if err != nil {
		return nil, err
	}
	if req.Recurring {
		tx.MarkRecurring(true)
	}

	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// Get returns a single transaction
func (s *TransactionService) Get(ctx context.Context, userID, id uuid.UUID) (*TransactionResponse, error) {
	tx, err := s.txRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// List returns transactions matching the filter, with the total count
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[TransactionResponse], error) {
	txs, err := s.txRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.txRepo.CountForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(ToTransactionResponses(txs), total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update replaces a transaction's fields
func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	tx, err := s.txRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Update(
		financial.TransactionType(req.Type),
		req.Amount,
		req.Category,
		req.Description,
		req.Merchant,
		req.OccurredOn,
	); err != nil {
		return nil, err
	}
	if req.Recurring != nil {
		tx.MarkRecurring(*req.Recurring)
	}

	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// Delete removes a transaction
func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.txRepo.DeleteForUser(ctx, userID, id)
}

// Categorize suggests a category without creating a transaction
func (s *TransactionService) Categorize(req CategorizeRequest) CategorizeResponse {
	return s.categorizer.Categorize(req.Description, req.Merchant, req.Amount)
}
