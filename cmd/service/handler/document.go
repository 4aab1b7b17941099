package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/docchat-ai/docchat/app/logic/v1"
	"github.com/docchat-ai/docchat/app/response"
	"github.com/docchat-ai/docchat/pkg/errors"
	"github.com/docchat-ai/docchat/pkg/i18n"
	"github.com/docchat-ai/docchat/pkg/utils"
)

type UploadDocumentResponse struct {
	DocumentID string `json:"document_id"`
}

// UploadDocument accepts a multipart form with a "file" part and an
// optional "workspace_id" field.
func (s *HttpSrv) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.APIError(c, errors.New("HttpSrv.UploadDocument.FormFile", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}

	if fileHeader.Size > v1.MAX_UPLOAD_SIZE {
		response.APIError(c, errors.New("HttpSrv.UploadDocument.Size", i18n.ERROR_MORE_THAN_MAX, nil).Code(http.StatusBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.APIError(c, errors.New("HttpSrv.UploadDocument.Open", i18n.ERROR_INTERNAL, err))
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		response.APIError(c, errors.New("HttpSrv.UploadDocument.ReadAll", i18n.ERROR_INTERNAL, err))
		return
	}

	docID, err := v1.NewDocumentLogic(c, s.Core).Upload(c.PostForm("workspace_id"), fileHeader.Filename, raw)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, UploadDocumentResponse{
		DocumentID: docID,
	})
}

type ListDocumentsRequest struct {
	WorkspaceID string `json:"workspace_id" form:"workspace_id"`
	Page        uint64 `json:"page" form:"page" binding:"required"`
	Pagesize    uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

func (s *HttpSrv) ListDocuments(c *gin.Context) {
	var (
		err error
		req ListDocumentsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewDocumentLogic(c, s.Core).ListDocuments(req.WorkspaceID, req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}

type ListWorkspaceDocumentsRequest struct {
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

func (s *HttpSrv) ListWorkspaceDocuments(c *gin.Context) {
	var (
		err error
		req ListWorkspaceDocumentsRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	workspaceID, _ := c.Params.Get("workspaceid")
	result, err := v1.NewDocumentLogic(c, s.Core).ListDocuments(workspaceID, req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}

func (s *HttpSrv) GetDocument(c *gin.Context) {
	docID, _ := c.Params.Get("docid")
	doc, err := v1.NewDocumentLogic(c, s.Core).GetDocument(docID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, doc)
}

func (s *HttpSrv) DeleteDocument(c *gin.Context) {
	docID, _ := c.Params.Get("docid")
	if err := v1.NewDocumentLogic(c, s.Core).Delete(docID); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
