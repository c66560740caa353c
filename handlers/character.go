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

type CharacterCreateRequest struct {
	Name   *string  `json:"name" binding:"required"`
	Height *float64 `json:"height" binding:"required"`
}

func characterNotFoundResponse(id any) Response {
	return Response{Msg: fmt.Sprintf("the character with ID %v does not exist", id)}
}

func CharacterList(c *gin.Context) {
	characters, err := models.CharacterList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, characters)
}

func CharacterGet(c *gin.Context) {
	character, err := models.CharacterGet(utils.ParseID(c.Param("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, characterNotFoundResponse(c.Param("id")))
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: character})
}

func CharacterCreate(c *gin.Context) {
	r := CharacterCreateRequest{}
	if !bindBody(c, &r) {
		return
	}
	character, err := models.CharacterCreate(*r.Name, *r.Height)
	if models.IsDuplicate(err) {
		c.JSON(http.StatusConflict, Response{Msg: "a character named " + *r.Name + " already exists"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusCreated, DataResponse{Msg: "new character created", Data: character})
}
