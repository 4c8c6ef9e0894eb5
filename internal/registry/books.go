package registry

import (
	"strings"

	"github.com/saifltr/library-management-system/internal/domain/models"
	"github.com/saifltr/library-management-system/internal/logger"
	regerrors "github.com/saifltr/library-management-system/internal/registry/errors"
	"github.com/saifltr/library-management-system/internal/storage"
)

// BookRegistry owns the ordered book collection. Every mutation writes the
// whole collection back through the store before returning.
type BookRegistry struct {
	store storage.Store
	books []*models.Book
}

func NewBookRegistry(store storage.Store) (*BookRegistry, error) {
	var books []*models.Book
	if err := store.Load(&books); err != nil {
		return nil, err
	}
	return &BookRegistry{store: store, books: books}, nil
}

func (br *BookRegistry) persist() error {
	return br.store.Save(br.books)
}

func (br *BookRegistry) Add(title, author, isbn string) (*models.Book, error) {
	log := logger.Get()
	if title == "" || author == "" || isbn == "" {
		return nil, regerrors.ErrBookFieldsRequired
	}
	if br.GetByISBN(isbn) != nil {
		return nil, regerrors.ErrBookExists
	}
	book := &models.Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Available: true,
	}
	br.books = append(br.books, book)
	if err := br.persist(); err != nil {
		return nil, err
	}
	log.Debug().Str("isbn", isbn).Str("title", title).Msg("book added")
	return book, nil
}

// GetByISBN returns nil when no book carries the given ISBN.
func (br *BookRegistry) GetByISBN(isbn string) *models.Book {
	for _, book := range br.books {
		if book.ISBN == isbn {
			return book
		}
	}
	return nil
}

func (br *BookRegistry) List() []*models.Book {
	return br.books
}

// Update replaces title and author where non-empty; availability is never
// touched here, that belongs to the checkout coordinator.
func (br *BookRegistry) Update(isbn, title, author string) (*models.Book, error) {
	book := br.GetByISBN(isbn)
	if book == nil {
		return nil, regerrors.ErrBookNotFound
	}
	if title != "" {
		book.Title = title
	}
	if author != "" {
		book.Author = author
	}
	if err := br.persist(); err != nil {
		return nil, err
	}
	return book, nil
}

func (br *BookRegistry) Delete(isbn string) error {
	log := logger.Get()
	for i, book := range br.books {
		if book.ISBN == isbn {
			br.books = append(br.books[:i], br.books[i+1:]...)
			if err := br.persist(); err != nil {
				return err
			}
			log.Debug().Str("isbn", isbn).Msg("book deleted")
			return nil
		}
	}
	return regerrors.ErrBookNotFound
}

// Search matches the keyword case-insensitively against title or author and
// returns hits in registry order.
func (br *BookRegistry) Search(keyword string) []*models.Book {
	keyword = strings.ToLower(keyword)
	var result []*models.Book
	for _, book := range br.books {
		if strings.Contains(strings.ToLower(book.Title), keyword) ||
			strings.Contains(strings.ToLower(book.Author), keyword) {
			result = append(result, book)
		}
	}
	return result
}

// Persist flushes the current collection. The checkout coordinator calls this
// after flipping a book's availability.
func (br *BookRegistry) Persist() error {
	return br.persist()
}
