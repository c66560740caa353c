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

type UserCreateRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
	IsActive *bool   `json:"is_active" binding:"required"`
}

func userNotFoundResponse(id string) Response {
	return Response{Msg: fmt.Sprintf("the user with ID %s does not exist", id)}
}

func UserList(c *gin.Context) {
	users, err := models.UserList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, users)
}

func UserGet(c *gin.Context) {
	user, err := models.UserGet(utils.ParseID(c.Param("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, userNotFoundResponse(c.Param("id")))
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: user})
}

func UserCreate(c *gin.Context) {
	r := UserCreateRequest{}
	if !bindBody(c, &r) {
		return
	}
	user, err := models.UserCreate(*r.Email, *r.Password, *r.IsActive)
	if models.IsDuplicate(err) {
		c.JSON(http.StatusConflict, Response{Msg: "a user with email " + *r.Email + " already exists"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusCreated, DataResponse{Msg: "new user created", Data: user})
}

// existingUserID resolves the :id path parameter to a stored user.
// Writes the 404 (or 500 on a store failure) and returns 0 otherwise
func existingUserID(c *gin.Context) uint64 {
	userID := utils.ParseID(c.Param("id"))
	found, err := models.UserExists(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return 0
	}
	if !found {
		c.JSON(http.StatusNotFound, userNotFoundResponse(c.Param("id")))
		return 0
	}
	return userID
}
