package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/saifltr/library-management-system/internal/domain/models"
	"github.com/saifltr/library-management-system/internal/registry"
)

var (
	isbnRegexp = regexp.MustCompile(`^\d{10}$`)
	nameRegexp = regexp.MustCompile(`^[a-zA-Z ]+$`)
)

// CLI is the interactive menu front end. It validates ISBN and name formats
// at the boundary; everything else is delegated to the registries.
type CLI struct {
	books *registry.BookRegistry
	users *registry.UserRegistry
	loans *registry.CheckoutCoordinator

	in  *bufio.Scanner
	out io.Writer
}

func New(books *registry.BookRegistry, users *registry.UserRegistry, loans *registry.CheckoutCoordinator) *CLI {
	return &CLI{
		books: books,
		users: users,
		loans: loans,
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
	}
}

func (c *CLI) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func formatBook(b *models.Book) string {
	return fmt.Sprintf("%s by %s (ISBN: %s)", b.Title, b.Author, b.ISBN)
}

func formatUser(u *models.User) string {
	return fmt.Sprintf("%s (ID: %s)", u.Name, u.UserID)
}

func (c *CLI) Run() {
	for {
		c.printf("\nLibrary Management System")
		c.printf("1. Manage Books")
		c.printf("2. Manage Users")
		c.printf("3. Exit")
		switch c.prompt("Enter choice: ") {
		case "1":
			if c.manageBooks() {
				return
			}
		case "2":
			if c.manageUsers() {
				return
			}
		case "3", "":
			c.printf("Exiting. Goodbye!")
			return
		default:
			c.printf("Invalid choice, please try again.")
		}
	}
}

// manageBooks returns true when the user chose to exit the whole program.
func (c *CLI) manageBooks() bool {
	for {
		c.printf("\nManage Books")
		c.printf("1. Add Book")
		c.printf("2. Update Book")
		c.printf("3. Delete Book")
		c.printf("4. Checkout Book")
		c.printf("5. Return Book")
		c.printf("6. List Books")
		c.printf("7. Search Book")
		c.printf("8. Return to Main Menu")
		c.printf("9. Exit")
		switch c.prompt("Enter choice: ") {
		case "1":
			c.addBook()
		case "2":
			c.updateBook()
		case "3":
			c.deleteBook()
		case "4":
			c.checkoutBook()
		case "5":
			c.returnBook()
		case "6":
			c.listBooks()
		case "7":
			c.searchBooks()
		case "8":
			return false
		case "9", "":
			c.printf("Exiting. Goodbye!")
			return true
		default:
			c.printf("Invalid choice, please try again.")
		}
	}
}

func (c *CLI) manageUsers() bool {
	for {
		c.printf("\nManage Users")
		c.printf("1. Add User")
		c.printf("2. Update User")
		c.printf("3. Delete User")
		c.printf("4. List Users")
		c.printf("5. Search User")
		c.printf("6. Return to Main Menu")
		c.printf("7. Exit")
		switch c.prompt("Enter choice: ") {
		case "1":
			c.addUser()
		case "2":
			c.updateUser()
		case "3":
			c.deleteUser()
		case "4":
			c.listUsers()
		case "5":
			c.searchUsers()
		case "6":
			return false
		case "7", "":
			c.printf("Exiting. Goodbye!")
			return true
		default:
			c.printf("Invalid choice, please try again.")
		}
	}
}

func (c *CLI) addBook() {
	title := c.prompt("Enter title: ")
	author := c.prompt("Enter author: ")
	isbn := c.prompt("Enter ISBN (10 digits): ")

	if !isbnRegexp.MatchString(isbn) {
		c.printf("Error: ISBN must be a 10-digit number.")
		return
	}
	if !nameRegexp.MatchString(author) {
		c.printf("Error: Author name must contain only letters and spaces.")
		return
	}

	book, err := c.books.Add(title, author, isbn)
	if err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("Book added: %s", formatBook(book))
}

func (c *CLI) updateBook() {
	isbn := c.prompt("Enter ISBN of book to update: ")
	title := c.prompt("Enter new title (leave blank to keep current): ")
	author := c.prompt("Enter new author (leave blank to keep current): ")

	if author != "" && !nameRegexp.MatchString(author) {
		c.printf("Error: Author name must contain only letters and spaces.")
		return
	}

	book, err := c.books.Update(isbn, title, author)
	if err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("Book updated: %s", formatBook(book))
}

func (c *CLI) deleteBook() {
	isbn := c.prompt("Enter ISBN of book to delete: ")
	if err := c.books.Delete(isbn); err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("Book deleted.")
}

func (c *CLI) checkoutBook() {
	userID := c.prompt("Enter user ID: ")
	isbn := c.prompt("Enter ISBN of book to checkout: ")

	checkout, err := c.loans.Checkout(userID, isbn)
	if err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("%s checked out by %s until %s",
		checkout.Book.Title, checkout.User.Name, checkout.DueDate.Format("2006-01-02"))
}

func (c *CLI) returnBook() {
	isbn := c.prompt("Enter ISBN of book to return: ")
	if err := c.loans.Return(isbn); err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("Book returned.")
}

func (c *CLI) listBooks() {
	books := c.books.List()
	if len(books) == 0 {
		c.printf("No books in the library.")
		return
	}
	for _, book := range books {
		status := "Available"
		if !book.Available {
			status = "Checked out"
		}
		c.printf("%s - %s", formatBook(book), status)
	}
}

func (c *CLI) searchBooks() {
	keyword := c.prompt("Enter search keyword: ")
	books := c.books.Search(keyword)
	if len(books) == 0 {
		c.printf("No books found.")
		return
	}
	for _, book := range books {
		c.printf("%s", formatBook(book))
	}
}

func (c *CLI) addUser() {
	name := c.prompt("Enter user name: ")
	if !nameRegexp.MatchString(name) {
		c.printf("Error: Name must contain only letters and spaces.")
		return
	}
	user, err := c.users.Add(name)
	if err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("User added: %s", formatUser(user))
}

func (c *CLI) updateUser() {
	userID := c.prompt("Enter user ID to update: ")
	name := c.prompt("Enter new name: ")
	if !nameRegexp.MatchString(name) {
		c.printf("Error: Name must contain only letters and spaces.")
		return
	}
	user, err := c.users.Update(userID, name)
	if err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("User updated: %s", formatUser(user))
}

func (c *CLI) deleteUser() {
	userID := c.prompt("Enter user ID to delete: ")
	if err := c.users.Delete(userID); err != nil {
		c.printf("Error: %v", err)
		return
	}
	c.printf("User deleted.")
}

func (c *CLI) listUsers() {
	users := c.users.List()
	if len(users) == 0 {
		c.printf("No users registered.")
		return
	}
	for _, user := range users {
		c.printf("%s", formatUser(user))
	}
}

func (c *CLI) searchUsers() {
	name := c.prompt("Enter name to search: ")
	users := c.users.Search(name)
	if len(users) == 0 {
		c.printf("No users found.")
		return
	}
	for _, user := range users {
		c.printf("%s", formatUser(user))
	}
}
