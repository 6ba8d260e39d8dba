package http

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"chatlog/internal/service/mocks"
	"chatlog/internal/storage"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockChatService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockChatService := mocks.NewMockChatService(ctrl)

	db, err := storage.New(filepath.Join(t.TempDir(), "router.db"), storage.DefaultOptions())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	router := NewRouter(&Deps{
		ChatService:    mockChatService,
		DB:             db,
		AllowedOrigins: []string{"*"},
	})
	return router, mockChatService
}

func TestNewRouter(t *testing.T) {
	router, _ := newTestRouter(t)
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		mockSetup  func(*mocks.MockChatService)
		wantStatus int
	}{
		{
			name:       "GET /api/health",
			method:     http.MethodGet,
			path:       "/api/health",
			mockSetup:  func(m *mocks.MockChatService) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /api/chats",
			method: http.MethodGet,
			path:   "/api/chats",
			mockSetup: func(m *mocks.MockChatService) {
				m.EXPECT().ListChats(gomock.Any()).Return([]storage.ChatInfo{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/chats with bad body",
			method:     http.MethodPost,
			path:       "/api/chats",
			body:       "not json",
			mockSetup:  func(m *mocks.MockChatService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "GET /api/chats/{chatID}",
			method: http.MethodGet,
			path:   "/api/chats/7",
			mockSetup: func(m *mocks.MockChatService) {
				m.EXPECT().GetChat(gomock.Any(), int64(7)).Return(storage.ChatInfo{ChatID: 7}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "DELETE /api/chats/{chatID}",
			method: http.MethodDelete,
			path:   "/api/chats/7",
			mockSetup: func(m *mocks.MockChatService) {
				m.EXPECT().DeleteChat(gomock.Any(), int64(7)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "POST /api/chats/batch-delete is not a chat id",
			method: http.MethodPost,
			path:   "/api/chats/batch-delete",
			body:   `{"chatIds":[7]}`,
			mockSetup: func(m *mocks.MockChatService) {
				m.EXPECT().DeleteChats(gomock.Any(), []int64{7}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "POST /api/chats/{chatID}/logs",
			method: http.MethodPost,
			path:   "/api/chats/7/logs",
			body:   `{"message":"hi","sender":"user"}`,
			mockSetup: func(m *mocks.MockChatService) {
				m.EXPECT().AppendLog(gomock.Any(), int64(7), gomock.Any()).Return(storage.ChatLog{ID: 1, ChatID: 7}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "PUT /api/chats/{chatID} not allowed",
			method:     http.MethodPut,
			path:       "/api/chats/7",
			mockSetup:  func(m *mocks.MockChatService) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/unknown",
			mockSetup:  func(m *mocks.MockChatService) {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tt.mockSetup(m)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router, m := newTestRouter(t)
	m.EXPECT().ListChats(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/chats", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("Router should set a request id")
	}
}
