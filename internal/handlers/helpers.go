package handlers

import (
	"log/slog"
	"net/http"

	"scrum_sensei/internal/webutil"
)

// decodeAndValidate はボディのデコードとバリデーションを行い、失敗時はエラーレスポンスを書き込みます。
// 戻り値が false の場合、呼び出し側はそのまま return すること。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(w, r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
