package postgres

import (
	"context"
	"testing"

	"abacus/internal/domain/entity"
	"abacus/internal/domain/repository"
	"abacus/internal/errors"
	"abacus/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	tm := NewTransactionManager(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(ctx, entity.NewUser("kept", "kept@example.com", "K", "K", "digest"))
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, entity.NewUser("dropped", "dropped@example.com", "D", "D", "digest")); err != nil {
			return err
		}

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	_, err = users.FindByUsernameOrEmail(ctx, "kept", "")
	assert.NoError(t, err)
	_, err = users.FindByUsernameOrEmail(ctx, "dropped", "")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.UserRepo().Create(ctx, entity.NewUser("panicky", "p@example.com", "P", "P", "digest")); err != nil {
				return err
			}
			panic("boom")
		})
	})

	_, err := NewUserRepository(db).FindByUsernameOrEmail(ctx, "panicky", "")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}
