package service

import (
	"github.com/gin-gonic/gin"

	"github.com/docchat-ai/docchat/app/core"
	"github.com/docchat-ai/docchat/app/core/srv"
	v1 "github.com/docchat-ai/docchat/app/logic/v1"
	"github.com/docchat-ai/docchat/app/response"
	"github.com/docchat-ai/docchat/cmd/service/handler"
	"github.com/docchat-ai/docchat/cmd/service/middleware"
	"github.com/docchat-ai/docchat/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		}, opts...)
	}
}

func GetUserLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			return key + ":" + token.User
		}, opts...)
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.AcceptLanguage())
	s.Engine.Use(middleware.SetAppid(s.Core))
	s.Engine.Use(middleware.ApiMetrics(s.Core))

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.POST("/register", ipLimit("register", core.WithLimit(10)), s.Register)
		apiV1.POST("/login", ipLimit("login", core.WithLimit(20)), s.Login)

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		user := authed.Group("/user")
		{
			user.GET("/info", s.GetUser)
			user.PUT("/profile", userLimit("profile"), s.UpdateUserProfile)
			user.PUT("/password", userLimit("profile"), s.UpdateUserPassword)
			user.POST("/logout", s.Logout)
		}

		admin := authed.Group("/admin")
		{
			admin.GET("/users", s.ListUsers)
			admin.PUT("/user/approve", s.ApproveUser)
			admin.PUT("/user/reject", s.RejectUser)
			admin.PUT("/user/role", s.SetGlobalRole)
			admin.DELETE("/user", s.DeleteUser)
		}

		workspace := authed.Group("/workspace")
		{
			workspace.GET("/list", s.ListUserWorkspaces)
			workspace.POST("", userLimit("modify_workspace"), s.CreateWorkspace)
			workspace.GET("/:workspaceid", s.GetWorkspace)
			workspace.PUT("/:workspaceid", userLimit("modify_workspace"), s.UpdateWorkspace)
			workspace.DELETE("/:workspaceid", s.DeleteWorkspace)
			workspace.DELETE("/:workspaceid/leave", s.LeaveWorkspace)
			workspace.POST("/:workspaceid/member", userLimit("modify_workspace"), s.AddWorkspaceMember)
			workspace.PUT("/:workspaceid/member/role", userLimit("modify_workspace"), s.SetWorkspaceMemberRole)

			members := workspace.Group("/:workspaceid")
			members.Use(middleware.VerifyWorkspaceIDPermission(s.Core, srv.PermissionView))
			members.GET("/documents", s.ListWorkspaceDocuments)
		}

		document := authed.Group("/document")
		{
			document.POST("/upload", userLimit("upload", core.WithLimit(20)), s.UploadDocument)
			document.GET("/list", s.ListDocuments)
			document.GET("/:docid", s.GetDocument)
			document.DELETE("/:docid", s.DeleteDocument)
		}

		query := authed.Group("/query")
		{
			query.POST("", s.Query)
			query.GET("/history", s.QueryHistory)
		}
	}
}
