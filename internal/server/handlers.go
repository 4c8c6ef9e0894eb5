package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/saifltr/library-management-system/internal/domain/models"
	"github.com/saifltr/library-management-system/internal/logger"
	regerrors "github.com/saifltr/library-management-system/internal/registry/errors"
)

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type bookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required,personname"`
	ISBN   string `json:"isbn" validate:"required,len=10,numeric"`
}

type bookUpdateRequest struct {
	Title  string `json:"title"`
	Author string `json:"author" validate:"omitempty,personname"`
}

type userRequest struct {
	Name string `json:"name" validate:"required,personname"`
}

type checkoutRequest struct {
	UserID string `json:"user_id" validate:"required"`
	ISBN   string `json:"isbn" validate:"required,len=10,numeric"`
}

func (s *Server) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := bcrypt.CompareHashAndPassword(s.passHash, []byte(req.Password)); err != nil {
		ctx.String(http.StatusUnauthorized, "invalid password")
		return
	}
	token, err := s.issueToken()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// registryStatus maps the registry error taxonomy onto HTTP codes: invalid
// input 400, duplicates and conflicts 409, unknown keys 404, corruption 500.
func registryStatus(err error) int {
	switch {
	case errors.Is(err, regerrors.ErrBookFieldsRequired),
		errors.Is(err, regerrors.ErrUserNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, regerrors.ErrBookExists),
		errors.Is(err, regerrors.ErrBookUnavailable):
		return http.StatusConflict
	case errors.Is(err, regerrors.ErrBookNotFound),
		errors.Is(err, regerrors.ErrUserNotFound),
		errors.Is(err, regerrors.ErrNoActiveCheckout):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) AllBooks(ctx *gin.Context) {
	s.mu.Lock()
	books := s.Books.List()
	s.mu.Unlock()
	if books == nil {
		books = []*models.Book{}
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) SearchBooks(ctx *gin.Context) {
	keyword := ctx.DefaultQuery("q", "")
	s.mu.Lock()
	books := s.Books.Search(keyword)
	s.mu.Unlock()
	if books == nil {
		books = []*models.Book{}
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) BookInfo(ctx *gin.Context) {
	isbn := ctx.Param("isbn")
	s.mu.Lock()
	book := s.Books.GetByISBN(isbn)
	s.mu.Unlock()
	if book == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": regerrors.ErrBookNotFound.Error()})
		return
	}
	ctx.JSON(http.StatusOK, book)
}

func (s *Server) AddBook(ctx *gin.Context) {
	log := logger.Get()
	var req bookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		log.Error().Err(err).Msg("invalid book payload")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	book, err := s.Books.Add(req.Title, req.Author, req.ISBN)
	s.mu.Unlock()
	if err != nil {
		ctx.JSON(registryStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, book)
}

func (s *Server) UpdateBook(ctx *gin.Context) {
	var req bookUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	book, err := s.Books.Update(ctx.Param("isbn"), req.Title, req.Author)
	s.mu.Unlock()
	if err != nil {
		ctx.JSON(registryStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, book)
}

func (s *Server) RemoveBook(ctx *gin.Context) {
	log := logger.Get()
	isbn := ctx.Param("isbn")
	s.mu.Lock()
	err := s.Books.Delete(isbn)
	s.mu.Unlock()
	if err != nil {
		log.Error().Err(err).Str("isbn", isbn).Msg("failed to delete book")
		ctx.JSON(registryStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "book deleted"})
}

func (s *Server) AllUsers(ctx *gin.Context) {
	s.mu.Lock()
	users := s.Users.List()
	s.mu.Unlock()
	if users == nil {
		users = []*models.User{}
	}
	ctx.JSON(http.StatusOK, users)
}

func (s *Server) SearchUsers(ctx *gin.Context) {
	name := ctx.DefaultQuery("q", "")
	s.mu.Lock()
	users := s.Users.Search(name)
	s.mu.Unlock()
	if users == nil {
		users = []*models.User{}
	}
	ctx.JSON(http.StatusOK, users)
}

func (s *Server) UserInfo(ctx *gin.Context) {
	s.mu.Lock()
	user := s.Users.GetByID(ctx.Param("id"))
	s.mu.Unlock()
	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": regerrors.ErrUserNotFound.Error()})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (s *Server) AddUser(ctx *gin.Context) {
	var req userRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	user, err := s.Users.Add(req.Name)
	s.mu.Unlock()
	if err != nil {
		ctx.JSON(registryStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

func (s *Server) UpdateUser(ctx *gin.Context) {
	var req userRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	user, err := s.Users.Update(ctx.Param("id"), req.Name)
	s.mu.Unlock()
	if err != nil {
		ctx.JSON(registryStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (s *Server) RemoveUser(ctx *gin.Context) {
	s.mu.Lock()
	err := s.Users.Delete(ctx.Param("id"))
	s.mu.Unlock()
	if err != nil {
		ctx.JSON(registryStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (s *Server) CheckedOutBooks(ctx *gin.Context) {
	s.mu.Lock()
	books := s.Loans.CheckedOutBooks()
	s.mu.Unlock()
	if books == nil {
		books = []*models.Book{}
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) CheckoutBook(ctx *gin.Context) {
	log := logger.Get()
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	checkout, err := s.Loans.Checkout(req.UserID, req.ISBN)
	s.mu.Unlock()
	if err != nil {
		log.Error().Err(err).Str("uid", req.UserID).Str("isbn", req.ISBN).Msg("checkout failed")
		ctx.JSON(registryStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, checkout.Record())
}

func (s *Server) ReturnBook(ctx *gin.Context) {
	s.mu.Lock()
	err := s.Loans.Return(ctx.Param("isbn"))
	s.mu.Unlock()
	if err != nil {
		ctx.JSON(registryStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "book returned"})
}
