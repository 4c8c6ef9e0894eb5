package regerrors

import "errors"

var (
	ErrBookFieldsRequired = errors.New("title, author and ISBN are required")
	ErrBookExists         = errors.New("book with this ISBN already exists")
	ErrBookNotFound       = errors.New("book not found")
	ErrBookUnavailable    = errors.New("book is not available for checkout")

	ErrUserNameRequired = errors.New("user name is required")
	ErrUserNotFound     = errors.New("user not found")

	ErrNoActiveCheckout  = errors.New("book not found or already returned")
	ErrCheckoutCorrupted = errors.New("invalid checkout: book information is missing")
)
