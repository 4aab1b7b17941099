package v1

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/docchat-ai/docchat/app/core"
	"github.com/docchat-ai/docchat/app/core/srv"
	"github.com/docchat-ai/docchat/pkg/ai"
	"github.com/docchat-ai/docchat/pkg/errors"
	"github.com/docchat-ai/docchat/pkg/i18n"
	"github.com/docchat-ai/docchat/pkg/retrieval"
	"github.com/docchat-ai/docchat/pkg/safe"
	"github.com/docchat-ai/docchat/pkg/searcher"
	"github.com/docchat-ai/docchat/pkg/security"
	"github.com/docchat-ai/docchat/pkg/types"
)

const (
	QUERY_RATE_PER_MINUTE = 30
)

type QueryLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewQueryLogic(ctx context.Context, core *core.Core) *QueryLogic {
	return &QueryLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type QueryArgs struct {
	Question      string   `json:"question" binding:"required"`
	WorkspaceID   string   `json:"workspace_id"`
	DocumentIDs   []string `json:"document_ids"`
	TopK          int      `json:"top_k"`
	WithWebSearch bool     `json:"with_web_search"`
}

type QueryResult struct {
	Answer    string               `json:"answer"`
	Model     string               `json:"model"`
	Citations []retrieval.Citation `json:"citations"`
}

// Query answers a question over the documents in scope. Scope is the
// requester's own documents, or one workspace's documents, optionally
// narrowed to explicit document ids.
func (l *QueryLogic) Query(args QueryArgs) (*QueryResult, error) {
	if !retrieval.ValidQuestion(args.Question) {
		return nil, errors.New("QueryLogic.Query.question", i18n.ERROR_QUESTION_TOO_SHORT, nil).Code(http.StatusBadRequest)
	}

	claims := l.GetUserInfo()
	if !l.core.UseLimiter("query:"+claims.User, core.WithLimit(QUERY_RATE_PER_MINUTE)).Allow() {
		return nil, errors.New("QueryLogic.Query.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests)
	}

	docs, err := l.documentsInScope(args)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errors.New("QueryLogic.Query.documents", i18n.ERROR_DOCUMENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	retrievalTimer := l.core.Metrics().RetrievalTimer()
	selection, err := retrieval.TopK(lo.Map(docs, func(doc types.Document, _ int) retrieval.Document {
		return retrieval.Document{
			ID:       doc.ID,
			FileName: doc.FileName,
			Content:  doc.Content,
		}
	}), args.Question, retrieval.Options{TopK: args.TopK})
	retrievalTimer.ObserveDuration()
	if err != nil {
		return nil, errors.New("QueryLogic.Query.retrieval.TopK", i18n.ERROR_INTERNAL, err)
	}

	web := l.searchWeb(args)

	aiDriver := l.core.Srv().AI()
	promptLang := GetContentByClientLanguage(l.ctx, aiDriver.Lang(), ai.MODEL_BASE_LANGUAGE_CN)
	messages := ai.BuildQAMessages(promptLang, args.Question, selection.Chunks, web)
	if aiDriver.MsgIsOverLimit(messages) {
		return nil, errors.New("QueryLogic.Query.MsgIsOverLimit", i18n.ERROR_AI_CONTEXT_OVER_LIMIT, nil).Code(http.StatusBadRequest)
	}

	completionTimer := l.core.Metrics().CompletionTimer(aiDriver.ChatModel())
	resp, err := aiDriver.Complete(l.ctx, messages)
	completionTimer.ObserveDuration()
	if err != nil {
		l.core.Metrics().CompletionErrorInc(lo.If(errors.Is(err, ai.ErrExhausted), "exhausted").Else("request"))
		if errors.Is(err, ai.ErrExhausted) {
			return nil, errors.New("QueryLogic.Query.Complete", i18n.ERROR_AI_SERVICE_UNAVAILABLE, err).Code(http.StatusServiceUnavailable)
		}
		return nil, errors.New("QueryLogic.Query.Complete", i18n.ERROR_INTERNAL, err)
	}

	answer, err := ai.ChoiceContent(resp)
	if err != nil {
		return nil, errors.New("QueryLogic.Query.ChoiceContent", i18n.ERROR_INTERNAL, err)
	}

	l.saveQueryRecord(claims, args, answer, resp.Model, selection.Citations)

	return &QueryResult{
		Answer:    answer,
		Model:     resp.Model,
		Citations: selection.Citations,
	}, nil
}

func (l *QueryLogic) documentsInScope(args QueryArgs) ([]types.Document, error) {
	claims := l.GetUserInfo()

	opts := types.ListDocumentOptions{
		IDs: args.DocumentIDs,
	}
	if args.WorkspaceID != "" {
		if err := l.VerifyWorkspacePermission(args.WorkspaceID, srv.PermissionView); err != nil {
			return nil, err
		}
		opts.WorkspaceID = args.WorkspaceID
	} else {
		opts.UserID = claims.User
	}

	docs, err := l.core.Store().DocumentStore().ListDocumentContents(l.ctx, opts)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("QueryLogic.documentsInScope.DocumentStore.ListDocumentContents", i18n.ERROR_INTERNAL, err)
	}
	return docs, nil
}

// searchWeb never fails the question. Missing credentials or a broken
// search backend degrade to zero web context.
func (l *QueryLogic) searchWeb(args QueryArgs) []ai.WebResult {
	if !args.WithWebSearch || !l.core.Searcher().Enabled() {
		return nil
	}

	results, err := l.core.Searcher().Search(l.ctx, args.Question)
	if err != nil {
		slog.Warn("web search failed, answering from documents only", slog.String("error", err.Error()))
		return nil
	}

	return lo.Map(results, func(item searcher.Result, _ int) ai.WebResult {
		return ai.WebResult{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: item.Snippet,
		}
	})
}

// saveQueryRecord is best effort, a failed insert never fails the
// answer already produced.
func (l *QueryLogic) saveQueryRecord(claims security.TokenClaims, args QueryArgs, answer, model string, citations []retrieval.Citation) {
	raw, err := json.Marshal(citations)
	if err != nil {
		slog.Error("Failed to marshal citations", slog.String("error", err.Error()))
		raw = []byte("[]")
	}

	go safe.Run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		if err := l.core.Store().QueryRecordStore().Create(ctx, types.QueryRecord{
			Appid:       claims.Appid,
			UserID:      claims.User,
			WorkspaceID: args.WorkspaceID,
			Question:    args.Question,
			Answer:      answer,
			Model:       model,
			Citations:   raw,
			CreatedAt:   time.Now().Unix(),
		}); err != nil {
			slog.Error("Failed to save query record", slog.String("error", err.Error()), slog.String("user", claims.User))
		}
	})
}

type QueryHistoryResult struct {
	List  []types.QueryRecord `json:"list"`
	Total int64               `json:"total"`
}

func (l *QueryLogic) History(workspaceID string, page, pageSize uint64) (*QueryHistoryResult, error) {
	claims := l.GetUserInfo()

	opts := types.ListQueryRecordOptions{
		UserID: claims.User,
	}
	if workspaceID != "" {
		if err := l.VerifyWorkspacePermission(workspaceID, srv.PermissionView); err != nil {
			return nil, err
		}
		opts.WorkspaceID = workspaceID
	}

	list, err := l.core.Store().QueryRecordStore().List(l.ctx, opts, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("QueryLogic.History.QueryRecordStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().QueryRecordStore().Total(l.ctx, opts)
	if err != nil {
		return nil, errors.New("QueryLogic.History.QueryRecordStore.Total", i18n.ERROR_INTERNAL, err)
	}

	return &QueryHistoryResult{
		List:  list,
		Total: total,
	}, nil
}
