package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"scrum_sensei/internal/config"
	"scrum_sensei/internal/handlers"
	"scrum_sensei/internal/model"
	"scrum_sensei/internal/repository"
	"scrum_sensei/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer は実DB (インメモリSQLite) と実サービスで組み立てたサーバーを起動します。
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := discardLogger()

	db, err := repository.NewDB(config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		URL:         fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		AutoMigrate: true,
	}, logger)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	contentRepo := repository.NewGormContentRepository()
	progressRepo := repository.NewGormProgressRepository()
	quizRepo := repository.NewGormQuizRepository()

	progressService := service.NewProgressService(db, progressRepo, contentRepo, nil, config.DefaultTopicLimit)
	contentService := service.NewContentService(db, contentRepo, progressRepo, quizRepo, nil)
	quizService := service.NewQuizService(db, quizRepo, contentRepo, progressRepo, progressService)

	router := handlers.NewRouter(db, config.CORSConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}, logger, handlers.Handlers{
		Progress: handlers.NewProgressHandler(progressService, logger),
		Content:  handlers.NewContentHandler(contentService, logger),
		Quiz:     handlers.NewQuizHandler(quizService, logger),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// doJSON はリクエストを送り、ステータスを検証してボディを out にデコードします。
func doJSON(t *testing.T, server *httptest.Server, method, path string, body interface{}, wantCode int, out interface{}) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantCode, resp.StatusCode, "%s %s", method, path)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

func TestRouter_Health(t *testing.T) {
	server := newTestServer(t)

	var got map[string]string
	doJSON(t, server, http.MethodGet, "/health", nil, http.StatusOK, &got)
	assert.Equal(t, "ok", got["status"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/user/progress", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

// 学習からクイズ保存、統計までの一連の流れ
func TestRouter_LearningFlow(t *testing.T) {
	server := newTestServer(t)

	var content model.Content
	doJSON(t, server, http.MethodPost, "/api/contents", model.CreateContentRequest{
		Title: "スクラム入門",
		Tags:  []string{"scrum"},
		Sections: []model.SectionRequest{
			{ID: "sec-1", Title: "役割", Order: 0},
			{ID: "sec-2", Title: "イベント", Order: 1},
		},
	}, http.StatusCreated, &content)
	require.Len(t, content.Sections, 2)

	var published model.Content
	doJSON(t, server, http.MethodPost, "/api/contents/"+content.ID+"/publish", nil, http.StatusOK, &published)
	assert.True(t, published.Published)

	var progress model.UserProgress
	doJSON(t, server, http.MethodPost, "/api/user/progress", model.CreateProgressRequest{
		UserID: "user-1", ContentID: content.ID, TimeSpent: 60,
	}, http.StatusOK, &progress)
	assert.Equal(t, model.ProgressStatusInProgress, progress.Status)

	doJSON(t, server, http.MethodPut, "/api/user/progress?id="+progress.ID, model.UpdateProgressRequest{
		SectionProgress: []model.SectionProgressRequest{
			{SectionID: "sec-1", Completed: true, TimeSpent: 30},
			{SectionID: "sec-2", Completed: true, TimeSpent: 30},
		},
	}, http.StatusOK, &progress)
	assert.Equal(t, 100, progress.CompletionPercentage)
	assert.Equal(t, model.ProgressStatusCompleted, progress.Status)

	var quiz model.Quiz
	doJSON(t, server, http.MethodPost, "/api/quizzes", model.CreateQuizRequest{
		ContentID: content.ID,
		Title:     "確認",
		Questions: []model.Question{
			{ID: "q1", Type: model.QuestionTypeShortAnswer, Text: "毎日行うイベントは?", CorrectAnswer: "Daily Scrum"},
			{ID: "q2", Type: model.QuestionTypeShortAnswer, Text: "振り返りは?", CorrectAnswer: "Retrospective"},
		},
	}, http.StatusCreated, &quiz)

	var quizzes []model.Quiz
	doJSON(t, server, http.MethodGet, "/api/contents/"+content.ID+"/quizzes", nil, http.StatusOK, &quizzes)
	assert.Len(t, quizzes, 1)

	var attempt model.AttemptResponse
	doJSON(t, server, http.MethodPost, "/api/quizzes/"+quiz.ID+"/attempts", map[string]interface{}{
		"userId": "user-1",
		"save":   true,
		"answers": []map[string]interface{}{
			{"questionId": "q1", "answer": "daily scrum"},
			{"questionId": "q2", "answer": "review"},
		},
	}, http.StatusOK, &attempt)
	assert.Equal(t, 50, attempt.Result.Score)
	require.NotNil(t, attempt.Progress)
	assert.Len(t, attempt.Progress.QuizResults, 1)

	var stats model.LearningStatistics
	doJSON(t, server, http.MethodGet, "/api/user/stats?userId=user-1", nil, http.StatusOK, &stats)
	assert.Equal(t, 60, stats.TotalTimeSpent, "セクションの学習時間は合算しない")
	assert.Equal(t, 1, stats.CompletedContents)
	assert.Equal(t, 50, stats.AverageScore)
	assert.Equal(t, 1, stats.TotalQuizzes)

	doJSON(t, server, http.MethodDelete, "/api/contents/"+content.ID, nil, http.StatusNoContent, nil)

	var list []model.UserProgress
	doJSON(t, server, http.MethodGet, "/api/user/progress?userId=user-1", nil, http.StatusOK, &list)
	assert.Empty(t, list)
	doJSON(t, server, http.MethodGet, "/api/quizzes/"+quiz.ID, nil, http.StatusNotFound, nil)
}
