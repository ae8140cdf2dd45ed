package api

import (
	"net/http"
	"time"

	"ledgerhub/internal/api/handler"
	"ledgerhub/internal/api/middleware"
	"ledgerhub/internal/app/service"
	"ledgerhub/internal/common/security"
	"ledgerhub/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokens *security.TokenService,
	userRepo repository.UserRepository,
	authService *service.AuthService,
	categoryService *service.CategoryService,
	expenseService *service.ExpenseService,
	libraryService *service.LibraryService,
	studentService *service.StudentService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(authService)
	r.Route("/auth", authHandler.RegisterRoutes)

	// Expense tracker routes: bearer token required, every query scoped
	// to the resolved user.
	categoryHandler := handler.NewCategoryHandler(categoryService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	r.Group(func(protected chi.Router) {
		protected.Use(jwtauth.Verifier(tokens.JWTAuth()))
		protected.Use(middleware.Authenticator(userRepo))

		protected.Route("/categories", categoryHandler.RegisterRoutes)
		protected.Route("/expenses", expenseHandler.RegisterRoutes)
		protected.Get("/summary", expenseHandler.Summary)
	})

	// Library and roster routes run without authentication, matching the
	// original catalog services they replace.
	bookHandler := handler.NewBookHandler(libraryService)
	r.Route("/books", bookHandler.RegisterRoutes)

	studentHandler := handler.NewStudentHandler(studentService)
	r.Route("/students", studentHandler.RegisterRoutes)

	return r
}
