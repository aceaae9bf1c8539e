package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/truethari/SocialMedia-API/app/config"
	"github.com/truethari/SocialMedia-API/app/controllers"
	"github.com/truethari/SocialMedia-API/app/middleware"
	"github.com/truethari/SocialMedia-API/app/repositories"
	"github.com/truethari/SocialMedia-API/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// SetupRoutes wires repositories, services and controllers onto a router.
// Every mutating route runs the same pipeline: authenticate the caller,
// load the resource, check ownership, then hand off to the controller.
// Gates are composed as subrouter middleware so a route's protections are
// visible where the route is declared.
func SetupRoutes(db *badger.DB, cfg *config.Config, log *logrus.Logger) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	statsRepo := repositories.NewBadgerStatsRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(userRepo, postRepo, commentRepo, statsRepo)
	postService := services.NewPostService(postRepo, commentRepo, statsRepo)
	commentService := services.NewCommentService(commentRepo, statsRepo)

	authController := controllers.NewAuthController(authService, userService)
	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	statsController := controllers.NewStatsController(statsRepo)

	authenticate := middleware.Authenticate(authService, userRepo)
	loadPost := middleware.LoadPost(postService)
	loadComment := middleware.LoadComment(commentService)
	loadUser := middleware.LoadUser(userService)

	router := mux.NewRouter()
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"msg": "not found"})
			return
		}
		http.NotFound(w, r)
	})

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Open routes.
	api.HandleFunc("/signup", userController.Signup).Methods("POST")
	api.HandleFunc("/signin", authController.Signin).Methods("POST")
	api.HandleFunc("/users", userController.Index).Methods("GET")
	api.HandleFunc("/posts", postController.Index).Methods("GET")

	// Authenticated, no resource gate.
	authed := api.NewRoute().Subrouter()
	authed.Use(authenticate)
	authed.HandleFunc("/me", authController.Me).Methods("GET")
	authed.HandleFunc("/stats", statsController.Show).Methods("GET")
	authed.HandleFunc("/posts", postController.Create).Methods("POST")

	// Existence gate only.
	userShow := api.NewRoute().Subrouter()
	userShow.Use(loadUser)
	userShow.HandleFunc("/users/{id:[0-9]+}", userController.Show).Methods("GET")

	postShow := api.NewRoute().Subrouter()
	postShow.Use(loadPost)
	postShow.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods("GET")
	postShow.HandleFunc("/posts/{id:[0-9]+}/comments", commentController.IndexByPost).Methods("GET")

	commentShow := api.NewRoute().Subrouter()
	commentShow.Use(loadComment)
	commentShow.HandleFunc("/comments/{id:[0-9]+}", commentController.Show).Methods("GET")

	// Authentication plus existence gate.
	commentCreate := api.NewRoute().Subrouter()
	commentCreate.Use(authenticate, loadPost)
	commentCreate.HandleFunc("/posts/{id:[0-9]+}/comments", commentController.Create).Methods("POST")

	// Full pipeline: authenticate, load, require ownership.
	userWrite := api.NewRoute().Subrouter()
	userWrite.Use(authenticate, loadUser, middleware.RequireSelf)
	userWrite.HandleFunc("/users/{id:[0-9]+}", userController.Update).Methods("PUT")
	userWrite.HandleFunc("/users/{id:[0-9]+}", userController.Delete).Methods("DELETE")

	postWrite := api.NewRoute().Subrouter()
	postWrite.Use(authenticate, loadPost, middleware.RequirePostOwner)
	postWrite.HandleFunc("/posts/{id:[0-9]+}", postController.Update).Methods("PUT")
	postWrite.HandleFunc("/posts/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	commentWrite := api.NewRoute().Subrouter()
	commentWrite.Use(authenticate, loadComment, middleware.RequireCommentOwner)
	commentWrite.HandleFunc("/comments/{id:[0-9]+}", commentController.Update).Methods("PUT")
	commentWrite.HandleFunc("/comments/{id:[0-9]+}", commentController.Delete).Methods("DELETE")

	return router
}
