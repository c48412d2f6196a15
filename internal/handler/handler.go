package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koungkub/notification-relay/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("handler",
	fx.Provide(
		NewNotificationHandler,
	),
)

type Notification struct {
	push   service.PushProvider
	mail   service.MailProvider
	logger *zap.Logger
}

type NotificationParams struct {
	fx.In

	Push   service.PushProvider
	Mail   service.MailProvider
	Logger *zap.Logger `optional:"true"`
}

func NewNotificationHandler(params NotificationParams) *Notification {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Notification{
		push:   params.Push,
		mail:   params.Mail,
		logger: logger,
	}
}

func (n *Notification) SendPushHandler(c *gin.Context) {
	var req PushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err, pushFieldsRequired))
		return
	}

	messageID, err := n.push.Send(c.Request.Context(), service.PushRequest{
		Token:       req.Token,
		Title:       req.Title,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		ClickAction: req.ClickAction,
		Data:        req.Data,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, GetRequestError(errors.New(pushFieldsRequired)))
			return
		}
		n.logger.Error("push notification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, GetInternalError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"messageId": messageID,
	})
}

func (n *Notification) SendMailHandler(c *gin.Context) {
	var req MailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err, mailFieldsRequired))
		return
	}

	n.relayMail(c, req)
}

func (n *Notification) SendMailQueryHandler(c *gin.Context) {
	var req MailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err, mailFieldsRequired))
		return
	}

	n.relayMail(c, req)
}

func (n *Notification) relayMail(c *gin.Context, req MailRequest) {
	result, err := n.mail.SendToUser(c.Request.Context(), service.MailRequest{
		UID:     req.UID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, GetRequestError(errors.New(mailFieldsRequired)))
		case errors.Is(err, service.ErrMissingEmail):
			c.JSON(http.StatusBadRequest, GetRequestError(errors.New(missingEmail)))
		default:
			n.logger.Error("mail relay failed", zap.String("uid", req.UID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, GetInternalError(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"uid":     result.UID,
		"email":   result.Email,
		"message": result.Message,
	})
}
