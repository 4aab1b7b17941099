package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/docchat-ai/docchat/app/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
