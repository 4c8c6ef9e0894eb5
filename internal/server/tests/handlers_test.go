package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saifltr/library-management-system/internal/config"
	"github.com/saifltr/library-management-system/internal/domain/models"
	regerrors "github.com/saifltr/library-management-system/internal/registry/errors"
	"github.com/saifltr/library-management-system/internal/server"
	"github.com/saifltr/library-management-system/internal/server/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type env struct {
	serv  *server.Server
	books *mocks.MockCatalog
	users *mocks.MockAccounts
	loans *mocks.MockLending
}

func setup(t *testing.T) *env {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	books := mocks.NewMockCatalog(ctrl)
	users := mocks.NewMockAccounts(ctrl)
	loans := mocks.NewMockLending(ctrl)

	cfg := config.Config{
		Addr:          ":8080",
		SecretKey:     "test-secret",
		LibrarianPass: "letmein",
	}
	serv, err := server.New(cfg, books, users, loans)
	require.NoError(t, err)
	return &env{serv: serv, books: books, users: users, loans: loans}
}

func setupRouter(s *server.Server) *gin.Engine {
	r := gin.New()
	r.POST("/login", s.Login)
	r.GET("/books/", s.AllBooks)
	r.GET("/books/search", s.SearchBooks)
	r.GET("/books/:isbn", s.BookInfo)
	r.POST("/books/", s.JWTAuthMiddleware(), s.AddBook)
	r.DELETE("/books/:isbn", s.JWTAuthMiddleware(), s.RemoveBook)
	r.POST("/users/", s.JWTAuthMiddleware(), s.AddUser)
	r.GET("/checkouts/", s.CheckedOutBooks)
	r.POST("/checkouts/", s.JWTAuthMiddleware(), s.CheckoutBook)
	r.POST("/checkouts/return/:isbn", s.JWTAuthMiddleware(), s.ReturnBook)
	return r
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"password":"letmein"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func TestLogin(t *testing.T) {
	e := setup(t)
	router := setupRouter(e.serv)

	t.Run("success", func(t *testing.T) {
		login(t, router)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`invalid json`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAllBooks(t *testing.T) {
	e := setup(t)
	router := setupRouter(e.serv)

	t.Run("success", func(t *testing.T) {
		books := []*models.Book{{Title: "Dune"}, {Title: "Hyperion"}}
		e.books.EXPECT().List().Return(books)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Dune")
		assert.Contains(t, w.Body.String(), "Hyperion")
	})

	t.Run("empty", func(t *testing.T) {
		e.books.EXPECT().List().Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestBookInfo(t *testing.T) {
	e := setup(t)
	router := setupRouter(e.serv)

	t.Run("found", func(t *testing.T) {
		e.books.EXPECT().GetByISBN("1111111111").Return(&models.Book{Title: "Dune", ISBN: "1111111111"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/1111111111", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Dune")
	})

	t.Run("not found", func(t *testing.T) {
		e.books.EXPECT().GetByISBN("9999999999").Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/9999999999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAddBook(t *testing.T) {
	e := setup(t)
	router := setupRouter(e.serv)
	token := login(t, router)

	body := `{"title":"Dune","author":"Frank Herbert","isbn":"1111111111"}`

	t.Run("unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/books/", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		e.books.EXPECT().
			Add("Dune", "Frank Herbert", "1111111111").
			Return(&models.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "1111111111", Available: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/books/", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		e.books.EXPECT().
			Add("Dune", "Frank Herbert", "1111111111").
			Return(nil, regerrors.ErrBookExists)

		req := httptest.NewRequest(http.MethodPost, "/books/", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid isbn", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/books/",
			strings.NewReader(`{"title":"Dune","author":"Frank Herbert","isbn":"12345"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid author", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/books/",
			strings.NewReader(`{"title":"Dune","author":"Frank Herbert 2","isbn":"1111111111"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAddUser(t *testing.T) {
	e := setup(t)
	router := setupRouter(e.serv)
	token := login(t, router)

	t.Run("success", func(t *testing.T) {
		e.users.EXPECT().Add("John Doe").Return(&models.User{Name: "John Doe", UserID: "1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(`{"name":"John Doe"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"1"`)
	})

	t.Run("invalid name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(`{"name":"R2-D2"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCheckoutBook(t *testing.T) {
	e := setup(t)
	router := setupRouter(e.serv)
	token := login(t, router)

	body := `{"user_id":"1","isbn":"1111111111"}`

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		e.loans.EXPECT().Checkout("1", "1111111111").Return(&models.Checkout{
			User:         &models.User{Name: "Alice", UserID: "1"},
			Book:         &models.Book{Title: "Dune", ISBN: "1111111111"},
			CheckoutDate: now,
			DueDate:      now.Add(14 * 24 * time.Hour),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/checkouts/", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"book_isbn":"1111111111"`)
	})

	t.Run("conflict", func(t *testing.T) {
		e.loans.EXPECT().Checkout("1", "1111111111").Return(nil, regerrors.ErrBookUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/checkouts/", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		e.loans.EXPECT().Checkout("1", "1111111111").Return(nil, regerrors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodPost, "/checkouts/", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReturnBook(t *testing.T) {
	e := setup(t)
	router := setupRouter(e.serv)
	token := login(t, router)

	t.Run("success", func(t *testing.T) {
		e.loans.EXPECT().Return("1111111111").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/checkouts/return/1111111111", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no active checkout", func(t *testing.T) {
		e.loans.EXPECT().Return("1111111111").Return(regerrors.ErrNoActiveCheckout)

		req := httptest.NewRequest(http.MethodPost, "/checkouts/return/1111111111", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCheckedOutBooks(t *testing.T) {
	e := setup(t)
	router := setupRouter(e.serv)

	e.loans.EXPECT().CheckedOutBooks().Return([]*models.Book{{Title: "Dune", Available: false}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkouts/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")
}
