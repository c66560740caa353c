package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"starwars/models"
	"starwars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanetCreateRequest struct {
	Name       *string  `json:"name" binding:"required"`
	Population *float64 `json:"population" binding:"required"` // any JSON number, e.g. 1e3
}

func planetNotFoundResponse(id any) Response {
	return Response{Msg: fmt.Sprintf("the planet with ID %v does not exist", id)}
}

func PlanetList(c *gin.Context) {
	planets, err := models.PlanetList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, planets)
}

func PlanetGet(c *gin.Context) {
	planet, err := models.PlanetGet(utils.ParseID(c.Param("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, planetNotFoundResponse(c.Param("id")))
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: planet})
}

func PlanetCreate(c *gin.Context) {
	r := PlanetCreateRequest{}
	if !bindBody(c, &r) {
		return
	}
	population, ok := wholeNumber(*r.Population)
	if !ok {
		c.JSON(http.StatusBadRequest, fieldTypeResponse("population", reflect.Int64))
		return
	}
	planet, err := models.PlanetCreate(*r.Name, population)
	if models.IsDuplicate(err) {
		c.JSON(http.StatusConflict, Response{Msg: "a planet named " + *r.Name + " already exists"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusCreated, DataResponse{Msg: "new planet created", Data: planet})
}

func wholeNumber(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
