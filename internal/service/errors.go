package service

import (
	"errors"
	"fmt"

	"scrum_sensei/internal/model"
)

// internalError はDB障害などの原因を保持したまま 500 扱いの AppError にします。
func internalError(message string, cause error) error {
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", fmt.Errorf("%w: %w", model.ErrInternalServer, cause))
}

func invalidInput(code, message, field string) error {
	return model.NewAppError(code, message, field, model.ErrInvalidInput)
}

func notFound(code, message string) error {
	return model.NewAppError(code, message, "", model.ErrNotFound)
}

// passThrough はトランザクション内で作られた AppError はそのまま返し、
// それ以外は internalError に包みます。
func passThrough(message string, err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return internalError(message, err)
}
