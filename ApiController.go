package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vadimeg/ElTable/contracts"
)

type ApiController struct {
	SheetRepository contracts.SheetRepository
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SetCellRequest struct {
	Value string `json:"value"`
}

func NewApiController(sheetRepository contracts.SheetRepository) *ApiController {
	return &ApiController{SheetRepository: sheetRepository}
}

// UploadSheetAction replaces a sheet with the table read from the request
// body (header line `rows cols`, then tab-delimited cells) and returns the
// evaluated sheet.
func (api *ApiController) UploadSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response contracts.CellList

	err := c.ShouldBindUri(&params)

	var grid *Grid
	if err == nil {
		grid, err = ReadGrid(c.Request.Body)
	}
	if err == nil {
		err = api.SheetRepository.SaveSheet(params.SheetId, grid)
	}
	if err == nil {
		response, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if errors.Is(err, TableHeaderError) || errors.Is(err, GridBoundsError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response contracts.CellList

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.CellId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) || errors.Is(err, contracts.CellNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.CellIdError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		response, err = api.SheetRepository.SetCell(params.SheetId, params.CellId, request.Value)
	}

	if errors.Is(err, contracts.SheetNotFoundError) || errors.Is(err, contracts.CellNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusCreated, response)
	}
}
