package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "docchat_"

const (
	TABLE_USER             = TableName("user")
	TABLE_USER_GLOBAL_ROLE = TableName("user_global_role")
	TABLE_ACCESS_TOKEN     = TableName("access_token")
	TABLE_WORKSPACE        = TableName("workspace")
	TABLE_USER_WORKSPACE   = TableName("user_workspace")
	TABLE_DOCUMENT         = TableName("document")
	TABLE_QUERY_RECORD     = TableName("query_record")
)
