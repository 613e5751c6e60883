package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"

	"github.com/vadimeg/ElTable/contracts"
)

type ServiceContainer struct {
	Database        *bbolt.DB
	SheetRepository contracts.SheetRepository
	ApiController   contracts.ApiController
	Router          *gin.Engine
}

func BuildServiceContainer(config *Config) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabasePath, 0600, nil)

	serializer := NewGridBinarySerializer()
	sink := NewWriterDiagnosticSink(os.Stderr)

	container.SheetRepository = NewSheetRepository(container.Database, serializer, sink, config.MaxReferenceDepth)
	container.ApiController = NewApiController(container.SheetRepository)

	container.Router = SetupRouter(container.ApiController)

	return
}
