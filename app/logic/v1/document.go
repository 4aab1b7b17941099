package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/docchat-ai/docchat/app/core"
	"github.com/docchat-ai/docchat/app/core/srv"
	"github.com/docchat-ai/docchat/pkg/errors"
	"github.com/docchat-ai/docchat/pkg/i18n"
	"github.com/docchat-ai/docchat/pkg/reader"
	"github.com/docchat-ai/docchat/pkg/types"
	"github.com/docchat-ai/docchat/pkg/utils"
)

const (
	// raw upload cap, keeps pdf parsing memory bounded
	MAX_UPLOAD_SIZE = 20 << 20
)

type DocumentLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewDocumentLogic(ctx context.Context, core *core.Core) *DocumentLogic {
	return &DocumentLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// Upload parses the file body and stores its extracted text. An empty
// workspaceID keeps the document personal.
func (l *DocumentLogic) Upload(workspaceID, fileName string, raw []byte) (string, error) {
	if len(raw) == 0 || len(raw) > MAX_UPLOAD_SIZE {
		return "", errors.New("DocumentLogic.Upload.size", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	kind, err := reader.Kind(fileName)
	if err != nil {
		return "", errors.New("DocumentLogic.Upload.reader.Kind", i18n.ERROR_UNSUPPORTED_FILE_TYPE, err).Code(http.StatusBadRequest)
	}

	if workspaceID != "" {
		if err := l.VerifyWorkspacePermission(workspaceID, srv.PermissionEdit); err != nil {
			return "", err
		}
	}

	content, err := reader.Extract(fileName, raw)
	if err != nil {
		return "", errors.New("DocumentLogic.Upload.reader.Extract", i18n.ERROR_FILE_READ_FAIL, err).Code(http.StatusBadRequest)
	}

	claims := l.GetUserInfo()
	docID := utils.GenUniqIDStr()
	err = l.core.Store().DocumentStore().Create(l.ctx, types.Document{
		ID:          docID,
		Appid:       claims.Appid,
		UserID:      claims.User,
		WorkspaceID: sqlNullString(workspaceID),
		FileName:    fileName,
		Kind:        types.DocumentKind(kind),
		Content:     content,
		FileSize:    int64(len(raw)),
		CreatedAt:   time.Now().Unix(),
	})
	if err != nil {
		return "", errors.New("DocumentLogic.Upload.DocumentStore.Create", i18n.ERROR_INTERNAL, err)
	}

	l.core.Metrics().DocumentUploadedSize(kind, float64(len(raw)))
	return docID, nil
}

type DocumentListResult struct {
	List  []types.DocumentLite `json:"list"`
	Total int64                `json:"total"`
}

// ListDocuments returns the requester's documents, or a workspace's
// documents when workspaceID is set.
func (l *DocumentLogic) ListDocuments(workspaceID string, page, pageSize uint64) (*DocumentListResult, error) {
	opts, err := l.scopedOptions(workspaceID)
	if err != nil {
		return nil, err
	}

	list, err := l.core.Store().DocumentStore().ListDocuments(l.ctx, opts, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("DocumentLogic.ListDocuments.DocumentStore.ListDocuments", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().DocumentStore().Total(l.ctx, opts)
	if err != nil {
		return nil, errors.New("DocumentLogic.ListDocuments.DocumentStore.Total", i18n.ERROR_INTERNAL, err)
	}

	return &DocumentListResult{
		List:  list,
		Total: total,
	}, nil
}

func (l *DocumentLogic) GetDocument(id string) (*types.Document, error) {
	claims := l.GetUserInfo()

	doc, err := l.core.Store().DocumentStore().GetDocument(l.ctx, claims.Appid, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("DocumentLogic.GetDocument.DocumentStore.GetDocument", i18n.ERROR_DOCUMENT_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("DocumentLogic.GetDocument.DocumentStore.GetDocument", i18n.ERROR_INTERNAL, err)
	}

	if err := l.verifyDocumentAccess(doc, srv.PermissionView); err != nil {
		return nil, err
	}
	return doc, nil
}

func (l *DocumentLogic) Delete(id string) error {
	claims := l.GetUserInfo()

	doc, err := l.core.Store().DocumentStore().GetDocument(l.ctx, claims.Appid, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.New("DocumentLogic.Delete.DocumentStore.GetDocument", i18n.ERROR_DOCUMENT_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return errors.New("DocumentLogic.Delete.DocumentStore.GetDocument", i18n.ERROR_INTERNAL, err)
	}

	if doc.UserID != claims.User {
		if err := l.verifyDocumentAccess(doc, srv.PermissionEdit); err != nil {
			return err
		}
	}

	if err = l.core.Store().DocumentStore().Delete(l.ctx, claims.Appid, id); err != nil {
		return errors.New("DocumentLogic.Delete.DocumentStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// scopedOptions limits document queries to what the requester may see.
// Missing or unauthorized scopes surface as empty results elsewhere,
// workspace membership violations fail here.
func (l *DocumentLogic) scopedOptions(workspaceID string) (types.ListDocumentOptions, error) {
	claims := l.GetUserInfo()
	if workspaceID == "" {
		return types.ListDocumentOptions{UserID: claims.User}, nil
	}

	if err := l.VerifyWorkspacePermission(workspaceID, srv.PermissionView); err != nil {
		return types.ListDocumentOptions{}, err
	}
	return types.ListDocumentOptions{WorkspaceID: workspaceID}, nil
}

func (l *DocumentLogic) verifyDocumentAccess(doc *types.Document, permission string) error {
	claims := l.GetUserInfo()
	if doc.UserID == claims.User {
		return nil
	}
	if !doc.WorkspaceID.Valid || doc.WorkspaceID.String == "" {
		return errors.New("DocumentLogic.verifyDocumentAccess.owner", i18n.ERROR_DOCUMENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}
	return l.VerifyWorkspacePermission(doc.WorkspaceID.String, permission)
}

func sqlNullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}
