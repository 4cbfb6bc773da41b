// Package server assembles the HTTP router of the recipe and fridge API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/handler"
	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/middleware"
)

// Deps are the services behind the router. Verifier may be nil, in which
// case only session cookies identify users.
type Deps struct {
	Auth      service.AuthIface
	Verifier  service.TokenVerifier
	Bookmarks service.BookmarkServiceIface
	Recipes   service.RecipeServiceIface
	Fridges   service.FridgeServiceIface
	Profiles  service.ProfileServiceIface
	System    service.SystemServiceIface

	// TrustedSubnet guards /api/internal, in CIDR notation.
	TrustedSubnet string
}

func Init(logger *zap.Logger, enableProfiler bool, d Deps) *chi.Mux {
	recipes := handler.NewRecipe(d.Recipes, d.Bookmarks, logger)
	bookmarks := handler.NewBookmark(d.Bookmarks, logger)
	fridges := handler.NewFridge(d.Fridges, logger)
	profile := handler.NewProfile(d.Profiles, logger)
	system := handler.NewSystem(d.System, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzipRequest)
	r.Use(middleware.WithGzipResponse)

	if enableProfiler {
		r.Mount("/debug", chimw.Profiler())
	}

	r.Get("/ping", system.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Route("/internal", func(r chi.Router) {
			r.Use(middleware.WithSubnet(d.TrustedSubnet))
			r.Get("/stats", system.Stats)
		})

		r.Group(func(r chi.Router) {
			if d.Verifier != nil {
				r.Use(middleware.WithIDToken(d.Verifier, logger))
			}
			r.Use(middleware.WithJWT(d.Auth, logger))

			r.Get("/recipes/{recipeID}", recipes.Recipe)
			r.Get("/mealdb/{mealID}/ingredients", recipes.IngredientOptions)

			r.Post("/fridges", fridges.Create)
			r.Route("/fridges/{fridgeID}", func(r chi.Router) {
				r.Get("/recipes", recipes.FridgeRecipes)
				r.Post("/recipes/import", recipes.Import)
				r.Get("/recipes/{recipeID}", recipes.FridgeRecipe)

				r.Get("/ingredients", fridges.Ingredients)
				r.Post("/ingredients", fridges.AddIngredient)
				r.Delete("/ingredients", fridges.DeleteIngredients)
			})

			r.Route("/user", func(r chi.Router) {
				r.Get("/feed", recipes.Feed)

				r.Get("/profile", profile.Get)
				r.Put("/profile", profile.Save)

				r.Get("/fridges", fridges.List)
				r.Post("/fridges/join", fridges.Join)
				r.Delete("/fridges/{fridgeID}", fridges.Leave)

				r.Get("/bookmarks", bookmarks.List)
				r.Get("/bookmarks/status", bookmarks.Status)
				r.Post("/bookmarks/toggle", bookmarks.Toggle)
			})
		})
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
