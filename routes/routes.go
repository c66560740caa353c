package routes

import (
	"starwars/handlers"
	"starwars/utils"

	"github.com/gin-gonic/gin"
)

// Setup registers all endpoints. Serve the engine wrapped in
// utils.TrimTrailingSlash so "/planets/" and "/planets" are the same route
func Setup(router *gin.Engine) {
	router.RedirectTrailingSlash = false
	router.RemoveExtraSlash = true
	router.GET("/", utils.CacheControl(utils.CacheSitemap), handlers.Sitemap(router))
	// Users
	router.GET("/user", handlers.UserList)
	router.POST("/user", handlers.UserCreate)
	router.GET("/user/:id", handlers.UserGet)
	// Favorites of a user
	router.GET("/user/:id/favorites", handlers.FavoriteList)
	router.GET("/user/:id/favoriteplanets", handlers.FavoritePlanetList)
	router.POST("/user/:id/favoriteplanets", handlers.FavoritePlanetCreate)
	router.GET("/user/:id/favoritecharacters", handlers.FavoriteCharacterList)
	router.POST("/user/:id/favoritecharacters", handlers.FavoriteCharacterCreate)
	// Favorites are deleted by their own ID
	router.DELETE("/favorite/planet/:id", handlers.FavoritePlanetDelete)
	router.DELETE("/favorite/character/:id", handlers.FavoriteCharacterDelete)
	// Planets
	router.GET("/planets", handlers.PlanetList)
	router.POST("/planets", handlers.PlanetCreate)
	router.GET("/planets/:id", handlers.PlanetGet)
	// Characters
	router.GET("/characters", handlers.CharacterList)
	router.POST("/characters", handlers.CharacterCreate)
	router.GET("/characters/:id", handlers.CharacterGet)
}
