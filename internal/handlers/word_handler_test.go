package handlers_test

import (
	"net/http"
	"testing"

	"go_vocab_trivia/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWordHandler_GetLibrary(t *testing.T) {
	userID := uuid.New()
	stageID := uint(2)
	difficulty := 3

	tests := []struct {
		name           string
		query          string
		expectedFilter *model.LibraryFilter
		expectedCode   int
		expectedErr    string
	}{
		{
			name:           "正常系: 絞り込みなし",
			query:          "",
			expectedFilter: &model.LibraryFilter{},
			expectedCode:   http.StatusOK,
		},
		{
			name:           "正常系: all は絞り込みなし扱い",
			query:          "?stage_id=all&difficulty=all&stars=all",
			expectedFilter: &model.LibraryFilter{},
			expectedCode:   http.StatusOK,
		},
		{
			name:           "正常系: 全条件を指定",
			query:          "?stage_id=2&difficulty=3&stars=weak&q=app",
			expectedFilter: &model.LibraryFilter{StageID: &stageID, Difficulty: &difficulty, Stars: "weak", Query: "app"},
			expectedCode:   http.StatusOK,
		},
		{
			name:         "異常系: stage_id が数値でない",
			query:        "?stage_id=abc",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_QUERY_PARAM",
		},
		{
			name:         "異常系: difficulty が範囲外",
			query:        "?difficulty=5",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_QUERY_PARAM",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			if tc.expectedFilter != nil {
				app.word.On("GetLibrary", mock.Anything, userID, *tc.expectedFilter).Return(&model.LibraryResponse{
					Words:  []*model.WordWithProgress{{WordID: uuid.New(), StageID: 2, StageName: "Stage 2", Term: "apple", Translation: "りんご", DifficultyLevel: 3}},
					Stages: []model.LibraryStage{{StageID: 2, Name: "Stage 2"}},
				}, nil).Once()
			}

			_, body := sendRequest(t, app.server, httpRequestDetails{
				Method:  http.MethodGet,
				Path:    "/api/v1/library" + tc.query,
				Headers: userHeader(userID),
			}, tc.expectedCode)

			if tc.expectedErr != "" {
				verifyErrorCode(t, body, tc.expectedErr)
				return
			}
			got := decodeBody[model.LibraryResponse](t, body)
			assert.Len(t, got.Words, 1)
			assert.Nil(t, got.Words[0].Progress)
		})
	}
}

func TestWordHandler_PutProgress(t *testing.T) {
	userID := uuid.New()
	wordID := uuid.New()
	path := "/api/v1/words/" + wordID.String() + "/progress"

	tests := []struct {
		name         string
		path         string
		body         interface{}
		setupMock    func(app *testApp)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "正常系: 星評価とメモを更新",
			path: path,
			body: model.UpdateWordProgressRequest{StarRating: intPtr(4), Notes: strPtr("memo")},
			setupMock: func(app *testApp) {
				app.word.On("UpdateWordProgress", mock.Anything, userID, wordID, mock.MatchedBy(func(req *model.UpdateWordProgressRequest) bool {
					return *req.StarRating == 4 && *req.Notes == "memo"
				})).Return(&model.WordProgressView{StarRating: 4, Notes: "memo"}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "異常系: 星評価が範囲外",
			path: path,
			body: model.UpdateWordProgressRequest{StarRating: intPtr(6)},
			setupMock: func(app *testApp) {
				app.word.On("UpdateWordProgress", mock.Anything, userID, wordID, mock.Anything).
					Return(nil, model.NewAppError("VALIDATION_ERROR", "星評価は1〜5で指定してください。", "star_rating", model.ErrInvalidInput)).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name: "異常系: 単語が存在しない",
			path: path,
			body: model.UpdateWordProgressRequest{StarRating: intPtr(2)},
			setupMock: func(app *testApp) {
				app.word.On("UpdateWordProgress", mock.Anything, userID, wordID, mock.Anything).
					Return(nil, model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "word_id", model.ErrNotFound)).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "WORD_NOT_FOUND",
		},
		{
			name:         "異常系: word_id の形式が不正",
			path:         "/api/v1/words/123/progress",
			body:         model.UpdateWordProgressRequest{StarRating: intPtr(2)},
			setupMock:    func(app *testApp) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_PATH_PARAM",
		},
		{
			name:         "異常系: ボディなし",
			path:         path,
			setupMock:    func(app *testApp) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_REQUEST_BODY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			tc.setupMock(app)

			_, body := sendRequest(t, app.server, httpRequestDetails{
				Method:  http.MethodPut,
				Path:    tc.path,
				Body:    tc.body,
				Headers: userHeader(userID),
			}, tc.expectedCode)

			if tc.expectedErr != "" {
				verifyErrorCode(t, body, tc.expectedErr)
				return
			}
			got := decodeBody[model.WordProgressView](t, body)
			assert.Equal(t, 4, got.StarRating)
			assert.Equal(t, "memo", got.Notes)
		})
	}
}
