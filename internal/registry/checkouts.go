package registry

import (
	"time"

	"github.com/saifltr/library-management-system/internal/domain/models"
	"github.com/saifltr/library-management-system/internal/logger"
	regerrors "github.com/saifltr/library-management-system/internal/registry/errors"
	"github.com/saifltr/library-management-system/internal/storage"
)

// LoanPeriod is how long a checkout runs before its due date.
const LoanPeriod = 14 * 24 * time.Hour

// CheckoutCoordinator owns the active checkout list and drives the only two
// transitions a book knows: Available -> CheckedOut on checkout and back on
// return. It resolves user ids and ISBNs through the injected registries.
type CheckoutCoordinator struct {
	store     storage.Store
	books     *BookRegistry
	users     *UserRegistry
	checkouts []*models.Checkout
	now       func() time.Time
}

func NewCheckoutCoordinator(store storage.Store, books *BookRegistry, users *UserRegistry) (*CheckoutCoordinator, error) {
	cc := &CheckoutCoordinator{
		store: store,
		books: books,
		users: users,
		now:   time.Now,
	}
	if err := cc.load(); err != nil {
		return nil, err
	}
	return cc, nil
}

// load resolves persisted records against the registries. A record whose user
// or book no longer resolves is dropped; that is how deletions made while a
// checkout existed are reconciled.
func (cc *CheckoutCoordinator) load() error {
	log := logger.Get()
	var records []models.CheckoutRecord
	if err := cc.store.Load(&records); err != nil {
		return err
	}
	for _, rec := range records {
		var user *models.User
		var book *models.Book
		if rec.UserID != nil {
			user = cc.users.GetByID(*rec.UserID)
		}
		if rec.BookISBN != nil {
			book = cc.books.GetByISBN(*rec.BookISBN)
		}
		if user == nil || book == nil {
			log.Warn().Any("record", rec).Msg("dropping checkout with unresolvable user or book")
			continue
		}
		cc.checkouts = append(cc.checkouts, &models.Checkout{
			User:         user,
			Book:         book,
			CheckoutDate: rec.CheckoutDate,
			DueDate:      rec.DueDate,
		})
	}
	return nil
}

func (cc *CheckoutCoordinator) persist() error {
	records := make([]models.CheckoutRecord, 0, len(cc.checkouts))
	for _, checkout := range cc.checkouts {
		if checkout.User == nil || checkout.Book == nil {
			continue
		}
		records = append(records, checkout.Record())
	}
	return cc.store.Save(records)
}

// Checkout lends the book to the user for LoanPeriod. The checkout list and
// the book collection are persisted as two independent writes; a crash in
// between can leave them out of sync.
func (cc *CheckoutCoordinator) Checkout(userID, isbn string) (*models.Checkout, error) {
	log := logger.Get()
	user := cc.users.GetByID(userID)
	if user == nil {
		return nil, regerrors.ErrUserNotFound
	}
	book := cc.books.GetByISBN(isbn)
	if book == nil {
		return nil, regerrors.ErrBookNotFound
	}
	if !book.Available {
		return nil, regerrors.ErrBookUnavailable
	}

	now := cc.now()
	checkout := &models.Checkout{
		User:         user,
		Book:         book,
		CheckoutDate: now,
		DueDate:      now.Add(LoanPeriod),
	}
	book.Available = false
	cc.checkouts = append(cc.checkouts, checkout)
	if err := cc.persist(); err != nil {
		return nil, err
	}
	if err := cc.books.Persist(); err != nil {
		return nil, err
	}
	log.Info().Str("uid", userID).Str("isbn", isbn).Time("due", checkout.DueDate).Msg("book checked out")
	return checkout, nil
}

// Return closes the active checkout for the ISBN. It only matches a checkout
// whose book is currently unavailable, so a stale duplicate cannot be
// returned twice.
func (cc *CheckoutCoordinator) Return(isbn string) error {
	log := logger.Get()
	idx := -1
	for i, checkout := range cc.checkouts {
		if checkout.Book != nil && checkout.Book.ISBN == isbn && !checkout.Book.Available {
			idx = i
			break
		}
	}
	if idx == -1 {
		return regerrors.ErrNoActiveCheckout
	}
	checkout := cc.checkouts[idx]
	if checkout.Book == nil {
		return regerrors.ErrCheckoutCorrupted
	}

	checkout.Book.Available = true
	cc.checkouts = append(cc.checkouts[:idx], cc.checkouts[idx+1:]...)
	if err := cc.persist(); err != nil {
		return err
	}
	if err := cc.books.Persist(); err != nil {
		return err
	}
	log.Info().Str("isbn", isbn).Msg("book returned")
	return nil
}

// CheckedOutBooks is a derived view over the active list.
func (cc *CheckoutCoordinator) CheckedOutBooks() []*models.Book {
	var books []*models.Book
	for _, checkout := range cc.checkouts {
		if checkout.Book != nil && !checkout.Book.Available {
			books = append(books, checkout.Book)
		}
	}
	return books
}

func (cc *CheckoutCoordinator) List() []*models.Checkout {
	return cc.checkouts
}
