package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	UploadSheetAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	SetCellAction(c *gin.Context)
}
