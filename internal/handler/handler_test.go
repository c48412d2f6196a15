package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/koungkub/notification-relay/internal/service"
	mockservice "github.com/koungkub/notification-relay/internal/service/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(handler *Notification) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/fcm", handler.SendPushHandler)
	router.POST("/api/mail", handler.SendMailHandler)
	router.GET("/api/mail/query", handler.SendMailQueryHandler)

	return router
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestNewNotificationHandler(t *testing.T) {
	t.Run("creates handler with service dependencies", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockPush := mockservice.NewMockPushProvider(ctrl)
		mockMail := mockservice.NewMockMailProvider(ctrl)

		handler := NewNotificationHandler(NotificationParams{
			Push: mockPush,
			Mail: mockMail,
		})

		assert.NotNil(t, handler)
		assert.Equal(t, mockPush, handler.push)
		assert.Equal(t, mockMail, handler.mail)
		assert.NotNil(t, handler.logger)
	})
}

func TestNotification_SendPushHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        string
		setupMocks         func(*mockservice.MockPushProvider)
		expectedStatusCode int
		expectedResponse   map[string]any
	}{
		{
			name:        "minimal request",
			requestBody: `{"token":"abc","title":"Hi","body":"Hello"}`,
			setupMocks: func(mockPush *mockservice.MockPushProvider) {
				mockPush.EXPECT().Send(gomock.Any(), service.PushRequest{
					Token: "abc",
					Title: "Hi",
					Body:  "Hello",
				}).Return("projects/demo/messages/1", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedResponse: map[string]any{
				"success":   true,
				"messageId": "projects/demo/messages/1",
			},
		},
		{
			name:        "optional fields are forwarded",
			requestBody: `{"token":"abc","title":"Hi","body":"Hello","imageUrl":"https://cdn.example.com/a.png","clickAction":"OPEN","data":{"orderId":"A-1","count":2}}`,
			setupMocks: func(mockPush *mockservice.MockPushProvider) {
				mockPush.EXPECT().Send(gomock.Any(), service.PushRequest{
					Token:       "abc",
					Title:       "Hi",
					Body:        "Hello",
					ImageURL:    "https://cdn.example.com/a.png",
					ClickAction: "OPEN",
					Data:        map[string]any{"orderId": "A-1", "count": float64(2)},
				}).Return("projects/demo/messages/2", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedResponse: map[string]any{
				"success":   true,
				"messageId": "projects/demo/messages/2",
			},
		},
		{
			name:        "missing token",
			requestBody: `{"title":"Hi","body":"Hello"}`,
			setupMocks: func(mockPush *mockservice.MockPushProvider) {
				// No service calls expected
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse: map[string]any{
				"success":    false,
				"error_code": "E101",
				"error":      "token, title and body are required",
			},
		},
		{
			name:        "empty body",
			requestBody: ``,
			setupMocks: func(mockPush *mockservice.MockPushProvider) {
				// No service calls expected
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse: map[string]any{
				"success":    false,
				"error_code": "E101",
				"error":      "token, title and body are required",
			},
		},
		{
			name:        "provider failure",
			requestBody: `{"token":"stale","title":"Hi","body":"Hello"}`,
			setupMocks: func(mockPush *mockservice.MockPushProvider) {
				mockPush.EXPECT().Send(gomock.Any(), gomock.Any()).
					Return("", errors.New("Requested entity was not found."))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedResponse: map[string]any{
				"success":    false,
				"error_code": "E102",
				"error":      "Requested entity was not found.",
			},
		},
		{
			name:        "service-side validation maps to 400",
			requestBody: `{"token":"abc","title":"Hi","body":"Hello"}`,
			setupMocks: func(mockPush *mockservice.MockPushProvider) {
				mockPush.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", service.ErrInvalidRequest)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse: map[string]any{
				"success":    false,
				"error_code": "E101",
				"error":      "token, title and body are required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockPush := mockservice.NewMockPushProvider(ctrl)
			mockMail := mockservice.NewMockMailProvider(ctrl)
			tt.setupMocks(mockPush)

			router := newTestRouter(NewNotificationHandler(NotificationParams{
				Push:   mockPush,
				Mail:   mockMail,
				Logger: zap.NewNop(),
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/fcm", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatusCode, w.Code)
			assert.Equal(t, tt.expectedResponse, decodeBody(t, w))
		})
	}
}

func TestNotification_SendPushHandler_MalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)

	router := newTestRouter(NewNotificationHandler(NotificationParams{
		Push: mockservice.NewMockPushProvider(ctrl),
		Mail: mockservice.NewMockMailProvider(ctrl),
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/fcm", bytes.NewBufferString(`{"token": "abc", "title": `))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "E101", response["error_code"])
	assert.NotEmpty(t, response["error"])
}

func TestNotification_SendMailHandlers(t *testing.T) {
	successResult := service.MailResult{
		UID:     "user-1",
		Email:   "user1@example.com",
		Message: "Email sent successfully",
	}
	successResponse := map[string]any{
		"success": true,
		"uid":     "user-1",
		"email":   "user1@example.com",
		"message": "Email sent successfully",
	}

	tests := []struct {
		name               string
		fields             map[string]string
		setupMocks         func(*mockservice.MockMailProvider)
		expectedStatusCode int
		expectedResponse   map[string]any
	}{
		{
			name:   "mail sent",
			fields: map[string]string{"uid": "user-1", "title": "Report", "content": "line one\nline two"},
			setupMocks: func(mockMail *mockservice.MockMailProvider) {
				mockMail.EXPECT().SendToUser(gomock.Any(), service.MailRequest{
					UID:     "user-1",
					Title:   "Report",
					Content: "line one\nline two",
				}).Return(successResult, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedResponse:   successResponse,
		},
		{
			name:   "missing content",
			fields: map[string]string{"uid": "user-1", "title": "Report"},
			setupMocks: func(mockMail *mockservice.MockMailProvider) {
				// No service calls expected
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse: map[string]any{
				"success":    false,
				"error_code": "E101",
				"error":      "uid, title and content are required",
			},
		},
		{
			name:   "user without email",
			fields: map[string]string{"uid": "user-2", "title": "Report", "content": "body"},
			setupMocks: func(mockMail *mockservice.MockMailProvider) {
				mockMail.EXPECT().SendToUser(gomock.Any(), gomock.Any()).
					Return(service.MailResult{}, service.ErrMissingEmail)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse: map[string]any{
				"success":    false,
				"error_code": "E101",
				"error":      "User does not have an email",
			},
		},
		{
			name:   "unknown user",
			fields: map[string]string{"uid": "missing-user", "title": "Report", "content": "body"},
			setupMocks: func(mockMail *mockservice.MockMailProvider) {
				mockMail.EXPECT().SendToUser(gomock.Any(), gomock.Any()).
					Return(service.MailResult{}, errors.New(`no user exists with the uid: "missing-user"`))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedResponse: map[string]any{
				"success":    false,
				"error_code": "E102",
				"error":      `no user exists with the uid: "missing-user"`,
			},
		},
	}

	entryPoints := []struct {
		name       string
		newRequest func(t *testing.T, fields map[string]string) *http.Request
	}{
		{
			name: "json body",
			newRequest: func(t *testing.T, fields map[string]string) *http.Request {
				body, err := json.Marshal(fields)
				require.NoError(t, err)

				req := httptest.NewRequest(http.MethodPost, "/api/mail", bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
		},
		{
			name: "query parameters",
			newRequest: func(t *testing.T, fields map[string]string) *http.Request {
				query := url.Values{}
				for key, value := range fields {
					query.Set(key, value)
				}
				return httptest.NewRequest(http.MethodGet, "/api/mail/query?"+query.Encode(), nil)
			},
		},
	}

	for _, entry := range entryPoints {
		for _, tt := range tests {
			t.Run(entry.name+"/"+tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)

				mockPush := mockservice.NewMockPushProvider(ctrl)
				mockMail := mockservice.NewMockMailProvider(ctrl)
				tt.setupMocks(mockMail)

				router := newTestRouter(NewNotificationHandler(NotificationParams{
					Push:   mockPush,
					Mail:   mockMail,
					Logger: zap.NewNop(),
				}))

				w := httptest.NewRecorder()
				router.ServeHTTP(w, entry.newRequest(t, tt.fields))

				assert.Equal(t, tt.expectedStatusCode, w.Code)
				assert.Equal(t, tt.expectedResponse, decodeBody(t, w))
			})
		}
	}
}

func TestNotification_SendMailHandler_ContextPropagation(t *testing.T) {
	type ctxKey struct{}

	ctrl := gomock.NewController(t)
	mockMail := mockservice.NewMockMailProvider(ctrl)

	mockMail.EXPECT().SendToUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req service.MailRequest) (service.MailResult, error) {
			assert.Equal(t, "trace-1", ctx.Value(ctxKey{}))
			return service.MailResult{UID: req.UID, Email: "user1@example.com", Message: "Email sent successfully"}, nil
		})

	router := newTestRouter(NewNotificationHandler(NotificationParams{
		Push: mockservice.NewMockPushProvider(ctrl),
		Mail: mockMail,
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/mail", bytes.NewBufferString(`{"uid":"user-1","title":"t","content":"c"}`))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "trace-1"))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
