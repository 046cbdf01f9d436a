package tableinfo

const (
	PostsTableName = "posts"

	PostIDColumn              = "id"
	PostUserIDColumn          = "user_id"
	PostTitleColumn           = "title"
	PostBodyColumn            = "body"
	PostMarkdownColumn        = "markdown"
	PostStatusColumn          = "status"
	PostPublishedAtColumn     = "published_at"
	PostCommentsEnabledColumn = "comments_enabled"
	PostAccessRuleColumn      = "access_rule"
	PostCreatedAtColumn       = "created_at"
)

const (
	CommentsTableName = "comments"

	CommentIDColumn        = "id"
	CommentPostIDColumn    = "post_id"
	CommentUserIDColumn    = "user_id"
	CommentAuthorColumn    = "author"
	CommentEmailColumn     = "email"
	CommentURLColumn       = "url"
	CommentIPColumn        = "ip"
	CommentBodyColumn      = "body"
	CommentStatusColumn    = "status"
	CommentCreatedAtColumn = "created_at"
)
