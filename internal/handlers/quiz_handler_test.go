package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scrum_sensei/internal/handlers"
	"scrum_sensei/internal/model"
	svc_mocks "scrum_sensei/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuizHandler_PostQuiz(t *testing.T) {
	validBody := map[string]interface{}{
		"contentId": "c-1",
		"title":     "確認テスト",
		"questions": []map[string]interface{}{
			{
				"id":       "q1",
				"type":     "multiple-choice",
				"question": "スプリントの最大期間は?",
				"options": []map[string]interface{}{
					{"id": "a", "text": "1週間"},
					{"id": "b", "text": "1か月", "isCorrect": true},
				},
			},
		},
	}

	tests := []struct {
		name          string
		body          interface{}
		setupMock     func(m *svc_mocks.QuizService)
		expectedCode  int
		expectedErr   string
		expectedField string
	}{
		{
			name: "正常系: 作成は201",
			body: validBody,
			setupMock: func(m *svc_mocks.QuizService) {
				m.On("CreateQuiz", mock.Anything, mock.MatchedBy(func(req *model.CreateQuizRequest) bool {
					return req.ContentID == "c-1" && len(req.Questions) == 1 && req.Questions[0].Options[1].IsCorrect
				})).Return(&model.Quiz{ID: "quiz-1", ContentID: "c-1", Title: "確認テスト"}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "異常系: 設問なし",
			body:          map[string]interface{}{"contentId": "c-1", "title": "x", "questions": []interface{}{}},
			setupMock:     func(m *svc_mocks.QuizService) {},
			expectedCode:  http.StatusBadRequest,
			expectedErr:   "VALIDATION_ERROR",
			expectedField: "questions",
		},
		{
			name: "異常系: 設問タイプが不正",
			body: map[string]interface{}{
				"contentId": "c-1", "title": "x",
				"questions": []map[string]interface{}{{"id": "q1", "type": "essay", "question": "?"}},
			},
			setupMock:     func(m *svc_mocks.QuizService) {},
			expectedCode:  http.StatusBadRequest,
			expectedErr:   "VALIDATION_ERROR",
			expectedField: "type",
		},
		{
			name: "異常系: サービスでの整合性エラー",
			body: validBody,
			setupMock: func(m *svc_mocks.QuizService) {
				m.On("CreateQuiz", mock.Anything, mock.Anything).Return(nil, appErr("INVALID_OPTIONS", model.ErrInvalidInput)).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_OPTIONS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewQuizService(t)
			tt.setupMock(mockService)
			handler := handlers.NewQuizHandler(mockService, discardLogger())

			rr := httptest.NewRecorder()
			handler.PostQuiz(rr, newJSONRequest(t, http.MethodPost, "/api/quizzes", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				detail := decodeErrorResponse(t, rr.Body.Bytes())
				assert.Equal(t, tt.expectedErr, detail.Code)
				if tt.expectedField != "" {
					assert.Equal(t, tt.expectedField, detail.Field)
				}
			}
		})
	}
}

func TestQuizHandler_GetAndList(t *testing.T) {
	t.Run("正常系: 取得", func(t *testing.T) {
		mockService := svc_mocks.NewQuizService(t)
		mockService.On("GetQuiz", mock.Anything, "quiz-1").Return(&model.Quiz{ID: "quiz-1", Title: "確認"}, nil).Once()
		handler := handlers.NewQuizHandler(mockService, discardLogger())

		rr := httptest.NewRecorder()
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/quizzes/quiz-1", nil), map[string]string{"quizId": "quiz-1"})
		handler.GetQuiz(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"quiz-1"`)
	})

	t.Run("異常系: 存在しない", func(t *testing.T) {
		mockService := svc_mocks.NewQuizService(t)
		mockService.On("GetQuiz", mock.Anything, "missing").Return(nil, appErr("QUIZ_NOT_FOUND", model.ErrNotFound)).Once()
		handler := handlers.NewQuizHandler(mockService, discardLogger())

		rr := httptest.NewRecorder()
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/quizzes/missing", nil), map[string]string{"quizId": "missing"})
		handler.GetQuiz(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("正常系: コンテンツのクイズ一覧 0件は空配列", func(t *testing.T) {
		mockService := svc_mocks.NewQuizService(t)
		mockService.On("ListQuizzes", mock.Anything, "c-1").Return(nil, nil).Once()
		handler := handlers.NewQuizHandler(mockService, discardLogger())

		rr := httptest.NewRecorder()
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/contents/c-1/quizzes", nil), map[string]string{"contentId": "c-1"})
		handler.ListContentQuizzes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestQuizHandler_PostAttempt(t *testing.T) {
	tests := []struct {
		name          string
		body          interface{}
		setupMock     func(m *svc_mocks.QuizService)
		expectedCode  int
		expectedErr   string
		expectedField string
	}{
		{
			name: "正常系: 採点のみ",
			body: map[string]interface{}{
				"answers": []map[string]interface{}{
					{"questionId": "q1", "answer": "b", "timeSpent": 5},
					{"questionId": "q2", "answer": []string{"a", "b"}},
				},
			},
			setupMock: func(m *svc_mocks.QuizService) {
				m.On("SubmitAttempt", mock.Anything, "quiz-1", mock.MatchedBy(func(req *model.SubmitAttemptRequest) bool {
					return !req.Save && len(req.Answers) == 2 && string(req.Answers[1].Answer) == `["a","b"]`
				})).Return(&model.AttemptResponse{Result: &model.QuizResult{QuizID: "quiz-1", Score: 67}}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "異常系: 保存なのに userId なし",
			body:          map[string]interface{}{"save": true},
			setupMock:     func(m *svc_mocks.QuizService) {},
			expectedCode:  http.StatusBadRequest,
			expectedErr:   "VALIDATION_ERROR",
			expectedField: "userId",
		},
		{
			name:          "異常系: 設問IDなしの回答",
			body:          map[string]interface{}{"answers": []map[string]interface{}{{"answer": "b"}}},
			setupMock:     func(m *svc_mocks.QuizService) {},
			expectedCode:  http.StatusBadRequest,
			expectedErr:   "VALIDATION_ERROR",
			expectedField: "questionId",
		},
		{
			name: "異常系: 前回結果なしで復習",
			body: map[string]interface{}{"userId": "user-1", "review": true},
			setupMock: func(m *svc_mocks.QuizService) {
				m.On("SubmitAttempt", mock.Anything, "quiz-1", mock.Anything).Return(nil, appErr("NO_PREVIOUS_RESULT", model.ErrInvalidInput)).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "NO_PREVIOUS_RESULT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewQuizService(t)
			tt.setupMock(mockService)
			handler := handlers.NewQuizHandler(mockService, discardLogger())

			req := withURLParams(newJSONRequest(t, http.MethodPost, "/api/quizzes/quiz-1/attempts", tt.body), map[string]string{"quizId": "quiz-1"})
			rr := httptest.NewRecorder()
			handler.PostAttempt(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				detail := decodeErrorResponse(t, rr.Body.Bytes())
				assert.Equal(t, tt.expectedErr, detail.Code)
				if tt.expectedField != "" {
					assert.Equal(t, tt.expectedField, detail.Field)
				}
				return
			}
			var got model.AttemptResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, 67, got.Result.Score)
			assert.Nil(t, got.Progress)
		})
	}
}
