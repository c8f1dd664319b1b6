package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"scrum_sensei/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"userId":               "ユーザーID",
	"contentId":            "コンテンツID",
	"sectionId":            "セクションID",
	"quizId":               "クイズID",
	"questionId":           "設問ID",
	"status":               "ステータス",
	"timeSpent":            "学習時間",
	"completionPercentage": "進捗率",
	"score":                "スコア",
	"totalQuestions":       "設問数",
	"correctAnswers":       "正解数",
	"title":                "タイトル",
	"questions":            "設問",
	"question":             "問題文",
	"type":                 "種類",
	"difficulty":           "難易度",
	"estimatedTime":        "想定学習時間",
	"order":                "表示順",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別メッセージの上書き。{0} は日本語フィールド名、{1} はタグのパラメータ。
	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("oneof", "{0}は[{1}]のいずれかを指定してください。")
	registerTranslation("gte", "{0}は{1}以上で入力してください。")
	registerTranslation("lte", "{0}は{1}以下で入力してください。")
	registerTranslation("max", "{0}は{1}文字以下で入力してください。")
	registerTranslation("ltefield", "{0}は{1}以下である必要があります。")
}

func registerTranslation(tag, msg string) {
	Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, translateFieldName(fe.Field()), translateFieldName(fe.Param()))
		return t
	})
}

func translateFieldName(name string) string {
	if translated, ok := fieldNameTranslations[name]; ok {
		return translated
	}
	return name
}

// ValidateStruct はバリデーションを実行し、最初のエラーを AppError として返します。
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		// InvalidValidationError など (呼び出し側のバグ)
		return err
	}

	first := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		first.Translate(Trans),
		first.Field(),
		model.ErrInvalidInput,
	)
}
