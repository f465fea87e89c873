package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"abacus/internal/domain/repository"
	mockRepo "abacus/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFactory is a transaction-scoped factory whose repositories are mocks.
type txFactory struct {
	factory  *mockRepo.MockRepositoryFactory
	userRepo *mockRepo.MockUserRepository
	calcRepo *mockRepo.MockCalculationRepository
}

// expectTransaction makes txManager run the callback against a mocked factory
// and return whatever the callback returns.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) txFactory {
	t.Helper()

	tx := txFactory{
		factory:  mockRepo.NewMockRepositoryFactory(t),
		userRepo: mockRepo.NewMockUserRepository(t),
		calcRepo: mockRepo.NewMockCalculationRepository(t),
	}
	tx.factory.EXPECT().UserRepo().Return(tx.userRepo).Maybe()
	tx.factory.EXPECT().CalculationRepo().Return(tx.calcRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		}).
		Once()

	return tx
}
