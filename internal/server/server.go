package server

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/saifltr/library-management-system/internal/config"
	"github.com/saifltr/library-management-system/internal/domain/models"
	"github.com/saifltr/library-management-system/internal/logger"
)

//go:generate mockgen -source=server.go -destination=./mocks/service_mock.go -package=mocks

var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	Role string
}

// Catalog is the book registry as the handlers see it.
type Catalog interface {
	Add(title, author, isbn string) (*models.Book, error)
	GetByISBN(isbn string) *models.Book
	List() []*models.Book
	Update(isbn, title, author string) (*models.Book, error)
	Delete(isbn string) error
	Search(keyword string) []*models.Book
}

// Accounts is the user registry as the handlers see it.
type Accounts interface {
	Add(name string) (*models.User, error)
	GetByID(userID string) *models.User
	List() []*models.User
	Update(userID, name string) (*models.User, error)
	Delete(userID string) error
	Search(name string) []*models.User
}

// Lending is the checkout coordinator as the handlers see it.
type Lending interface {
	Checkout(userID, isbn string) (*models.Checkout, error)
	Return(isbn string) error
	CheckedOutBooks() []*models.Book
}

var nameRegexp = regexp.MustCompile(`^[a-zA-Z ]+$`)

type Server struct {
	serv     *http.Server
	valid    *validator.Validate
	secret   string
	passHash []byte

	// The registries assume a single writer; one lock over all three keeps
	// that true under concurrent requests.
	mu    sync.Mutex
	Books Catalog
	Users Accounts
	Loans Lending

	ErrChan chan error
}

func New(cfg config.Config, books Catalog, users Accounts, loans Lending) (*Server, error) {
	serv := http.Server{ //nolint:gosec // no timeouts, same as upstream services
		Addr: cfg.Addr,
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.LibrarianPass), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	valid := validator.New()
	if err := valid.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return nameRegexp.MatchString(fl.Field().String())
	}); err != nil {
		return nil, err
	}
	return &Server{
		serv:     &serv,
		valid:    valid,
		secret:   cfg.SecretKey,
		passHash: hash,
		Books:    books,
		Users:    users,
		Loans:    loans,
		ErrChan:  make(chan error),
	}, nil
}

func (s *Server) ShutdownServer() error {
	return s.serv.Shutdown(context.Background())
}

func (s *Server) Run(_ context.Context) error {
	log := logger.Get()
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.RequestIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", s.Login)
	books := router.Group("/books")
	{
		books.GET("/", s.AllBooks)
		books.GET("/search", s.SearchBooks)
		books.GET("/:isbn", s.BookInfo)
		books.POST("/", s.JWTAuthMiddleware(), s.AddBook)
		books.PUT("/:isbn", s.JWTAuthMiddleware(), s.UpdateBook)
		books.DELETE("/:isbn", s.JWTAuthMiddleware(), s.RemoveBook)
	}
	users := router.Group("/users")
	{
		users.GET("/", s.AllUsers)
		users.GET("/search", s.SearchUsers)
		users.GET("/:id", s.UserInfo)
		users.POST("/", s.JWTAuthMiddleware(), s.AddUser)
		users.PUT("/:id", s.JWTAuthMiddleware(), s.UpdateUser)
		users.DELETE("/:id", s.JWTAuthMiddleware(), s.RemoveUser)
	}
	checkouts := router.Group("/checkouts")
	{
		checkouts.GET("/", s.CheckedOutBooks)
		checkouts.POST("/", s.JWTAuthMiddleware(), s.CheckoutBook)
		checkouts.POST("/return/:isbn", s.JWTAuthMiddleware(), s.ReturnBook)
	}

	s.serv.Handler = router
	log.Info().Str("host", s.serv.Addr).Msg("server started")
	if err := s.serv.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		ctx.Set("request_id", rid)
		ctx.Header("X-Request-ID", rid)
		ctx.Next()
	}
}

func (s *Server) JWTAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenHeader := ctx.GetHeader("Authorization")
		if tokenHeader == "" {
			ctx.String(http.StatusUnauthorized, "Authorization header is required")
			ctx.Abort()
			return
		}

		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			ctx.String(http.StatusUnauthorized, "Invalid token format")
			ctx.Abort()
			return
		}

		role, err := s.validToken(tokenParts[1])
		if err != nil {
			ctx.String(http.StatusUnauthorized, "Invalid token")
			ctx.Abort()
			return
		}

		ctx.Set("role", role)
		ctx.Next()
	}
}

func (s *Server) validToken(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Role, nil
}

func (s *Server) issueToken() (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: "librarian",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
