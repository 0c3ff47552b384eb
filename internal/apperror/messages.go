package apperror

// User-facing messages.
const (
	MsgAuthRequired       = "認証が必要です"
	MsgInvalidCredentials = "メールアドレスまたはパスワードが正しくありません"
	MsgInvalidRequest     = "リクエストの形式が正しくありません"

	MsgEmailTaken    = "このメールアドレスは既に登録されています"
	MsgUserNotFound  = "ユーザーが見つかりません"
	MsgRegisterError = "登録処理中にエラーが発生しました"

	MsgPostNotFound    = "記事が見つかりません"
	MsgEditForbidden   = "編集権限がありません"
	MsgDeleteForbidden = "削除権限がありません"
	MsgPostsFetchError = "記事の取得に失敗しました"
	MsgPostCreateError = "記事の作成に失敗しました"
	MsgPostUpdateError = "記事の更新に失敗しました"
	MsgPostDeleteError = "記事の削除に失敗しました"

	MsgAlreadyLiked    = "既にいいねしています"
	MsgLikeCreateError = "いいねの追加に失敗しました"
	MsgLikeDeleteError = "いいねの削除に失敗しました"

	MsgInternal = "サーバーエラーが発生しました"
)
