package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"starwars/models"
	"starwars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoritePlanetRequest struct {
	PlanetID *uint64 `json:"planet_id" binding:"required"`
}

type FavoriteCharacterRequest struct {
	CharacterID *uint64 `json:"character_id" binding:"required"`
}

type FavoritesInfo struct {
	Planets    []models.FavoritePlanet    `json:"planets"`
	Characters []models.FavoriteCharacter `json:"characters"`
}

// FavoriteList returns both kinds of favorites of a user
func FavoriteList(c *gin.Context) {
	userID := existingUserID(c)
	if userID == 0 {
		return
	}
	planets, err := models.FavoritePlanetsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	characters, err := models.FavoriteCharactersByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Msg: "OK", Data: FavoritesInfo{Planets: planets, Characters: characters}})
}

func FavoritePlanetList(c *gin.Context) {
	userID := existingUserID(c)
	if userID == 0 {
		return
	}
	planets, err := models.FavoritePlanetsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Msg: "OK", Data: planets})
}

func FavoriteCharacterList(c *gin.Context) {
	userID := existingUserID(c)
	if userID == 0 {
		return
	}
	characters, err := models.FavoriteCharactersByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Msg: "OK", Data: characters})
}

func FavoritePlanetCreate(c *gin.Context) {
	// User is checked before the body, same for characters
	userID := existingUserID(c)
	if userID == 0 {
		return
	}
	r := FavoritePlanetRequest{}
	if !bindBody(c, &r) {
		return
	}
	found, err := models.PlanetExists(*r.PlanetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	// Clients rely on 400 (not 404) for an unknown planet here
	if !found {
		c.JSON(http.StatusBadRequest, planetNotFoundResponse(*r.PlanetID))
		return
	}
	fav, err := models.FavoritePlanetCreate(userID, *r.PlanetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusCreated, DataResponse{Msg: "favorite planet added", Data: fav})
}

func FavoriteCharacterCreate(c *gin.Context) {
	userID := existingUserID(c)
	if userID == 0 {
		return
	}
	r := FavoriteCharacterRequest{}
	if !bindBody(c, &r) {
		return
	}
	found, err := models.CharacterExists(*r.CharacterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, characterNotFoundResponse(*r.CharacterID))
		return
	}
	fav, err := models.FavoriteCharacterCreate(userID, *r.CharacterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusCreated, DataResponse{Msg: "favorite character added", Data: fav})
}

// FavoritePlanetDelete takes the ID of the favorite row itself, not the planet ID.
// The deleted row is returned
func FavoritePlanetDelete(c *gin.Context) {
	fav, err := models.FavoritePlanetGet(utils.ParseID(c.Param("id")))
	if err == nil {
		err = models.FavoritePlanetDelete(fav.ID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, Response{Msg: fmt.Sprintf("the favorite planet with ID %s does not exist", c.Param("id"))})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Msg: "favorite planet deleted", Data: fav})
}

// FavoriteCharacterDelete takes the ID of the favorite row itself, not the character ID
func FavoriteCharacterDelete(c *gin.Context) {
	fav, err := models.FavoriteCharacterGet(utils.ParseID(c.Param("id")))
	if err == nil {
		err = models.FavoriteCharacterDelete(fav.ID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, Response{Msg: fmt.Sprintf("the favorite character with ID %s does not exist", c.Param("id"))})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Msg: "favorite character deleted", Data: fav})
}
