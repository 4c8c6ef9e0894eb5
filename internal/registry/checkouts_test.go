package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saifltr/library-management-system/internal/registry"
	regerrors "github.com/saifltr/library-management-system/internal/registry/errors"
	"github.com/saifltr/library-management-system/internal/storage"
)

type fixture struct {
	books *registry.BookRegistry
	users *registry.UserRegistry
	loans *registry.CheckoutCoordinator

	booksStore *storage.MemStore
	usersStore *storage.MemStore
	loansStore *storage.MemStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		booksStore: storage.NewMemStore(),
		usersStore: storage.NewMemStore(),
		loansStore: storage.NewMemStore(),
	}
	var err error
	f.books, err = registry.NewBookRegistry(f.booksStore)
	require.NoError(t, err)
	f.users, err = registry.NewUserRegistry(f.usersStore)
	require.NoError(t, err)
	f.loans, err = registry.NewCheckoutCoordinator(f.loansStore, f.books, f.users)
	require.NoError(t, err)
	return f
}

// reload rebuilds everything from the same stores, as a process restart would.
func (f *fixture) reload(t *testing.T) {
	t.Helper()
	var err error
	f.books, err = registry.NewBookRegistry(f.booksStore)
	require.NoError(t, err)
	f.users, err = registry.NewUserRegistry(f.usersStore)
	require.NoError(t, err)
	f.loans, err = registry.NewCheckoutCoordinator(f.loansStore, f.books, f.users)
	require.NoError(t, err)
}

func TestCheckoutAndReturn(t *testing.T) {
	f := newFixture(t)

	_, err := f.books.Add("Dune", "Frank Herbert", "1111111111")
	require.NoError(t, err)
	user, err := f.users.Add("Alice")
	require.NoError(t, err)
	require.Equal(t, "1", user.UserID)

	checkout, err := f.loans.Checkout("1", "1111111111")
	require.NoError(t, err)
	assert.False(t, f.books.GetByISBN("1111111111").Available)
	assert.Len(t, f.loans.List(), 1)
	assert.Equal(t, registry.LoanPeriod, checkout.DueDate.Sub(checkout.CheckoutDate))

	_, err = f.loans.Checkout("1", "1111111111")
	assert.ErrorIs(t, err, regerrors.ErrBookUnavailable)

	require.NoError(t, f.loans.Return("1111111111"))
	assert.True(t, f.books.GetByISBN("1111111111").Available)
	assert.Empty(t, f.loans.List())

	assert.ErrorIs(t, f.loans.Return("1111111111"), regerrors.ErrNoActiveCheckout)
}

func TestCheckoutUnknownUserOrBook(t *testing.T) {
	f := newFixture(t)

	_, err := f.books.Add("Dune", "Frank Herbert", "1111111111")
	require.NoError(t, err)
	_, err = f.users.Add("Alice")
	require.NoError(t, err)

	_, err = f.loans.Checkout("42", "1111111111")
	assert.ErrorIs(t, err, regerrors.ErrUserNotFound)

	_, err = f.loans.Checkout("1", "9999999999")
	assert.ErrorIs(t, err, regerrors.ErrBookNotFound)
}

func TestCheckedOutBooks(t *testing.T) {
	f := newFixture(t)

	_, err := f.books.Add("Dune", "Frank Herbert", "1111111111")
	require.NoError(t, err)
	_, err = f.books.Add("Hyperion", "Dan Simmons", "2222222222")
	require.NoError(t, err)
	_, err = f.users.Add("Alice")
	require.NoError(t, err)

	assert.Empty(t, f.loans.CheckedOutBooks())

	_, err = f.loans.Checkout("1", "2222222222")
	require.NoError(t, err)

	out := f.loans.CheckedOutBooks()
	require.Len(t, out, 1)
	assert.Equal(t, "Hyperion", out[0].Title)
}

func TestCheckoutsSurviveReload(t *testing.T) {
	f := newFixture(t)

	_, err := f.books.Add("Dune", "Frank Herbert", "1111111111")
	require.NoError(t, err)
	_, err = f.users.Add("Alice")
	require.NoError(t, err)
	_, err = f.loans.Checkout("1", "1111111111")
	require.NoError(t, err)

	f.reload(t)

	require.Len(t, f.loans.List(), 1)
	checkout := f.loans.List()[0]
	assert.Equal(t, "Alice", checkout.User.Name)
	assert.Equal(t, "1111111111", checkout.Book.ISBN)
	assert.False(t, f.books.GetByISBN("1111111111").Available)
}

func TestDanglingCheckoutDroppedOnReload(t *testing.T) {
	f := newFixture(t)

	_, err := f.books.Add("Dune", "Frank Herbert", "1111111111")
	require.NoError(t, err)
	_, err = f.users.Add("Alice")
	require.NoError(t, err)
	_, err = f.loans.Checkout("1", "1111111111")
	require.NoError(t, err)

	// Deleting the user does not cascade; the stale checkout stays until the
	// next reload reconciles it away.
	require.NoError(t, f.users.Delete("1"))
	require.Len(t, f.loans.List(), 1)

	f.reload(t)

	assert.Empty(t, f.loans.List())
	// The stale availability flag on disk is not repaired by the drop.
	assert.False(t, f.books.GetByISBN("1111111111").Available)
}

func TestDeletedBookDropsCheckoutOnReload(t *testing.T) {
	f := newFixture(t)

	_, err := f.books.Add("Dune", "Frank Herbert", "1111111111")
	require.NoError(t, err)
	_, err = f.users.Add("Alice")
	require.NoError(t, err)
	_, err = f.loans.Checkout("1", "1111111111")
	require.NoError(t, err)

	require.NoError(t, f.books.Delete("1111111111"))

	f.reload(t)

	assert.Empty(t, f.loans.List())
}
