package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the envelope of every response.
type Body struct {
	Code int    `json:"code"`
	Data any    `json:"data"`
	Msg  string `json:"msg"`
}

func success(c *gin.Context, data any) {
	respond(c, http.StatusOK, data, "")
}

func failure(c *gin.Context, status int, msg string) {
	respond(c, status, gin.H{}, msg)
}

func respond(c *gin.Context, status int, data any, msg string) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, Body{
		Code: status,
		Data: data,
		Msg:  msg,
	})
}
