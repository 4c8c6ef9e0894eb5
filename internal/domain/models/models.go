package models

import "time"

type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Available bool   `json:"available"`
}

type User struct {
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

// Checkout is the live form of a loan. It borrows the registries' Book and
// User values rather than owning copies, so flipping Book.Available here is
// visible through the book registry too.
type Checkout struct {
	User         *User
	Book         *Book
	CheckoutDate time.Time
	DueDate      time.Time
}

// CheckoutRecord is the persisted form of a Checkout. The links are nullable:
// a record may outlive the user or book it points at.
type CheckoutRecord struct {
	UserID       *string   `json:"user_id"`
	BookISBN     *string   `json:"book_isbn"`
	CheckoutDate time.Time `json:"checkout_date"`
	DueDate      time.Time `json:"due_date"`
}

func (c *Checkout) Record() CheckoutRecord {
	rec := CheckoutRecord{
		CheckoutDate: c.CheckoutDate,
		DueDate:      c.DueDate,
	}
	if c.User != nil {
		rec.UserID = &c.User.UserID
	}
	if c.Book != nil {
		rec.BookISBN = &c.Book.ISBN
	}
	return rec
}
